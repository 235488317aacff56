package http

import (
	"html/template"
	"strings"

	"adhd-planner/internal/checklist"
	"adhd-planner/internal/model"
	"adhd-planner/internal/planner"
	"adhd-planner/pkg/response"
)

// --- Requests ---

type generateReq struct {
	AppointmentID string `json:"appointment_id" form:"appointment_id"`
}

func (r generateReq) validate() error {
	if strings.TrimSpace(r.AppointmentID) == "" {
		return errMissingAppointment
	}
	return nil
}

type toggleReq struct {
	AppointmentID string `json:"appointment_id" form:"appointment_id"`
	Index         *int   `json:"index" form:"index" binding:"required"`
}

func (r toggleReq) validate() error {
	if strings.TrimSpace(r.AppointmentID) == "" {
		return errMissingAppointment
	}
	return nil
}

type getChecklistReq struct {
	AppointmentID string `form:"appointment_id"`
}

func (r getChecklistReq) validate() error {
	if strings.TrimSpace(r.AppointmentID) == "" {
		return errMissingAppointment
	}
	return nil
}

// --- JSON responses ---

type itemResp struct {
	Index     int    `json:"index"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type statsResp struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Pending   int     `json:"pending"`
	Progress  float64 `json:"progress"`
}

type checklistResp struct {
	IntroText string     `json:"intro_text"`
	Items     []itemResp `json:"items"`
	Stats     statsResp  `json:"stats"`
	Completed bool       `json:"completed"`
}

type appointmentResp struct {
	ID         string         `json:"id"`
	Summary    string         `json:"summary"`
	Start      string         `json:"start"`
	Generating bool           `json:"generating"`
	Checklist  *checklistResp `json:"checklist"`
}

type listAppointmentsResp struct {
	CurrentDate  string            `json:"current_date"`
	Loaded       bool              `json:"loaded"`
	FetchedAt    response.DateTime `json:"fetched_at" swaggertype:"string"`
	Generating   string            `json:"generating"`
	Appointments []appointmentResp `json:"appointments"`
}

type generateResp struct {
	AppointmentID string `json:"appointment_id"`
	Status        string `json:"status"`
}

type toggleResp struct {
	checklistResp
	Toggled bool `json:"toggled"`
}

func newChecklistResp(entry model.ChecklistEntry, stats checklist.Stats) checklistResp {
	items := make([]itemResp, len(entry.Items))
	for i, it := range entry.Items {
		items[i] = itemResp{Index: i, Text: it.Text, Completed: it.Completed}
	}
	return checklistResp{
		IntroText: entry.IntroText,
		Items:     items,
		Stats: statsResp{
			Total:     stats.Total,
			Completed: stats.Completed,
			Pending:   stats.Pending,
			Progress:  stats.Progress,
		},
		Completed: checklist.IsFullyCompleted(entry),
	}
}

func (h *handler) newListAppointmentsResp(o planner.Overview) listAppointmentsResp {
	appts := make([]appointmentResp, len(o.Appointments))
	for i, v := range o.Appointments {
		appts[i] = appointmentResp{
			ID:         v.Appointment.ID,
			Summary:    v.Appointment.Summary,
			Start:      v.Appointment.Start,
			Generating: v.Generating,
		}
		if v.Checklist != nil {
			cl := newChecklistResp(v.Checklist.Entry, v.Checklist.Stats)
			appts[i].Checklist = &cl
		}
	}
	return listAppointmentsResp{
		CurrentDate:  o.CurrentDate,
		Loaded:       o.Loaded,
		FetchedAt:    response.DateTime(o.FetchedAt),
		Generating:   o.Generating,
		Appointments: appts,
	}
}

func (h *handler) newGetChecklistResp(out checklist.GetOutput) checklistResp {
	return newChecklistResp(out.Entry, out.Stats)
}

func (h *handler) newToggleResp(out checklist.ToggleOutput) toggleResp {
	return toggleResp{
		checklistResp: newChecklistResp(out.Entry, out.Stats),
		Toggled:       out.Toggled,
	}
}

// --- HTML view model ---

type pageData struct {
	CurrentDate  string
	Generating   bool
	Appointments []pageAppointment
}

type pageAppointment struct {
	ID           string
	Start        string
	Summary      string
	Generating   bool
	HasChecklist bool
	Intro        template.HTML
	Items        []model.ChecklistItem
	Stats        checklist.Stats
}

func (h *handler) newPageData(o planner.Overview) pageData {
	data := pageData{
		CurrentDate:  o.CurrentDate,
		Generating:   o.Generating != "",
		Appointments: make([]pageAppointment, len(o.Appointments)),
	}
	for i, v := range o.Appointments {
		row := pageAppointment{
			ID:         v.Appointment.ID,
			Start:      v.Appointment.Start,
			Summary:    v.Appointment.Summary,
			Generating: v.Generating,
		}
		if v.Checklist != nil {
			row.HasChecklist = true
			row.Intro = h.renderMarkdown(v.Checklist.Entry.IntroText)
			row.Items = v.Checklist.Entry.Items
			row.Stats = v.Checklist.Stats
		}
		data.Appointments[i] = row
	}
	return data
}
