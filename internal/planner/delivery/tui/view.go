package tui

import (
	"fmt"
	"strings"

	"adhd-planner/internal/checklist"
	"adhd-planner/internal/planner"
)

func (m Model) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s   %s\n\n", titleStyle.Render("Appointments"), mutedStyle.Render("Today is "+m.overview.CurrentDate))

	if len(m.overview.Appointments) == 0 {
		b.WriteString("No appointments available.\n")
	}

	for i, row := range m.overview.Appointments {
		b.WriteString(m.renderAppointment(i, row))
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	b.WriteString("\n" + m.help.View(m.keys))

	return panelString(b.String())
}

func (m Model) renderAppointment(i int, row planner.AppointmentView) string {
	var b strings.Builder

	line := fmt.Sprintf("%s: %s", accentStyle.Render(row.Appointment.Start), row.Appointment.Summary)
	prefix := "  "
	if i == m.cursor {
		prefix = selectedStyle.Render("> ")
	}
	b.WriteString(prefix + line)

	switch {
	case row.Generating:
		b.WriteString("  " + m.spinner.View() + pendingStyle.Render(" Generating..."))
	case row.Checklist != nil:
		s := row.Checklist.Stats
		b.WriteString("  " + mutedStyle.Render(progressBar(s.Completed, s.Total, 10)))
	}
	b.WriteString("\n")

	if i != m.cursor {
		return b.String()
	}

	if row.Checklist == nil {
		b.WriteString(mutedStyle.Render("    No tasks generated yet.") + "\n")
		return b.String()
	}

	b.WriteString(m.renderChecklist(*row.Checklist))
	return b.String()
}

func (m Model) renderChecklist(out checklist.GetOutput) string {
	var b strings.Builder

	if out.Entry.IntroText != "" {
		b.WriteString(bubbleStyle.Render(out.Entry.IntroText) + "\n")
	}
	for j, item := range out.Entry.Items {
		box, text := mutedStyle.Render(boxUnchecked), item.Text
		if item.Completed {
			box, text = successStyle.Render(boxChecked), doneStyle.Render(item.Text)
		}
		prefix := "    "
		if m.focusItems && j == m.itemCursor {
			prefix = "  " + selectedStyle.Render("> ")
		}
		b.WriteString(prefix + box + " " + text + "\n")
	}
	if out.Completed {
		b.WriteString("    " + successStyle.Render("✔ All done!") + "\n")
	}
	return b.String()
}
