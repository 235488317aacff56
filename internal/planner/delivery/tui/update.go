package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg time.Time

type loadedMsg struct {
	err error
}

func tick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.reload()
		return m, tick()

	case loadedMsg:
		if msg.err != nil {
			m.status = errorStyle.Render("Could not load appointments")
		} else {
			m.status = successStyle.Render("Appointments reloaded")
		}
		m.reload()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.focusItems {
			if m.itemCursor > 0 {
				m.itemCursor--
			}
		} else if m.cursor > 0 {
			m.cursor--
			m.itemCursor = 0
		}

	case key.Matches(msg, m.keys.Down):
		if m.focusItems {
			if m.itemCursor < m.itemCount()-1 {
				m.itemCursor++
			}
		} else if m.cursor < len(m.overview.Appointments)-1 {
			m.cursor++
			m.itemCursor = 0
		}

	case key.Matches(msg, m.keys.Focus):
		m.focusItems = !m.focusItems && m.itemCount() > 0

	case key.Matches(msg, m.keys.Generate):
		row, ok := m.selected()
		// Disabled while this appointment is already generating.
		if !ok || row.Generating {
			return m, nil
		}
		if err := m.checklists.Start(m.ctx, row.Appointment.ID); err != nil {
			m.l.Warnf(m.ctx, "planner.delivery.tui: generate %s: %v", row.Appointment.ID, err)
			m.status = errorStyle.Render("Could not start generation")
			return m, nil
		}
		m.status = ""
		m.reload()

	case key.Matches(msg, m.keys.Toggle):
		row, ok := m.selected()
		if !ok || !m.focusItems {
			return m, nil
		}
		if _, err := m.checklists.Toggle(m.ctx, toggleInput(row.Appointment.ID, m.itemCursor)); err != nil {
			m.l.Warnf(m.ctx, "planner.delivery.tui: toggle: %v", err)
		}
		m.reload()

	case key.Matches(msg, m.keys.Refresh):
		m.status = mutedStyle.Render("Reloading...")
		return m, m.loadAppointments()
	}

	return m, nil
}

func (m Model) loadAppointments() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{err: m.appointments.Load(m.ctx)}
	}
}

// reload re-reads the overview and keeps cursors in range.
func (m *Model) reload() {
	m.overview = m.planner.Overview(m.ctx)

	if n := len(m.overview.Appointments); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
	n := m.itemCount()
	if m.itemCursor >= n {
		m.itemCursor = max(n-1, 0)
	}
	if n == 0 {
		m.focusItems = false
	}
}
