package http

import (
	"adhd-planner/internal/appointment"
	"adhd-planner/pkg/response"
)

// eventResp mirrors the events endpoint wire shape.
type eventResp struct {
	Summary string `json:"summary"`
	Start   string `json:"start"`
}

func (h *handler) newEventsResp(out appointment.ListOutput) []eventResp {
	events := make([]eventResp, len(out.Appointments))
	for i, a := range out.Appointments {
		events[i] = eventResp{Summary: a.Summary, Start: a.Start}
	}
	return events
}

type refreshResp struct {
	Count     int               `json:"count"`
	FetchedAt response.DateTime `json:"fetched_at" swaggertype:"string"`
}

func (h *handler) newRefreshResp(out appointment.ListOutput) refreshResp {
	return refreshResp{
		Count:     len(out.Appointments),
		FetchedAt: response.DateTime(out.FetchedAt),
	}
}
