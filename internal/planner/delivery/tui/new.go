package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"adhd-planner/internal/appointment"
	"adhd-planner/internal/checklist"
	"adhd-planner/internal/planner"
	"adhd-planner/pkg/log"
)

// pollInterval is how often the view re-reads state while open.
const pollInterval = 500 * time.Millisecond

// Model is the terminal view of the planner.
type Model struct {
	ctx          context.Context
	l            log.Logger
	planner      planner.UseCase
	checklists   checklist.UseCase
	appointments appointment.UseCase

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	overview   planner.Overview
	cursor     int
	itemCursor int
	focusItems bool
	status     string
}

// New creates the terminal view. ctx is used for every use case call.
func New(
	ctx context.Context,
	l log.Logger,
	p planner.UseCase,
	checklists checklist.UseCase,
	appointments appointment.UseCase,
) Model {
	return Model{
		ctx:          ctx,
		l:            l,
		planner:      p,
		checklists:   checklists,
		appointments: appointments,
		keys:         defaultKeyMap(),
		help:         help.New(),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		overview:     p.Overview(ctx),
	}
}

// Run starts the program on the alternate screen and blocks until the user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx)).Run()
	return err
}
