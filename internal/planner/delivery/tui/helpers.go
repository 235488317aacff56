package tui

import (
	"adhd-planner/internal/checklist"
	"adhd-planner/internal/planner"
)

func (m Model) selected() (planner.AppointmentView, bool) {
	if m.cursor < 0 || m.cursor >= len(m.overview.Appointments) {
		return planner.AppointmentView{}, false
	}
	return m.overview.Appointments[m.cursor], true
}

func (m Model) itemCount() int {
	row, ok := m.selected()
	if !ok || row.Checklist == nil {
		return 0
	}
	return len(row.Checklist.Entry.Items)
}

func toggleInput(appointmentID string, index int) checklist.ToggleInput {
	return checklist.ToggleInput{AppointmentID: appointmentID, Index: index}
}
