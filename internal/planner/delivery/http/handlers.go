package http

import (
	"github.com/gin-gonic/gin"

	"adhd-planner/internal/checklist"
	"adhd-planner/pkg/response"
)

const statusGenerating = "generating"

// ListAppointments godoc
// @Summary     List appointments
// @Description Returns the held appointments with generation state and any generated checklist.
// @Tags        Planner
// @Produce     json
// @Success     200 {object} listAppointmentsResp
// @Router      /api/v1/appointments [GET]
func (h *handler) ListAppointments(c *gin.Context) {
	overview := h.uc.Overview(c.Request.Context())
	response.OK(c, h.newListAppointmentsResp(overview))
}

// GenerateChecklist godoc
// @Summary     Generate a checklist
// @Description Starts checklist generation for an appointment in the background.
// @Description Poll GET /api/v1/appointments until generating is false.
// @Tags        Checklists
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Appointment to generate for"
// @Success     202 {object} generateResp
// @Failure     400 {object} response.Resp "Missing appointment_id"
// @Failure     404 {object} response.Resp "Unknown appointment"
// @Failure     429 {object} response.Resp "Rate limit exceeded"
// @Router      /api/v1/checklists/generate [POST]
func (h *handler) GenerateChecklist(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		h.l.Warnf(ctx, "planner.delivery.http.GenerateChecklist: %v", err)
		h.mapError(c, err)
		return
	}

	if err := h.checklists.Start(ctx, req.AppointmentID); err != nil {
		h.l.Warnf(ctx, "planner.delivery.http.GenerateChecklist: %v", err)
		h.mapError(c, err)
		return
	}

	response.Accepted(c, generateResp{AppointmentID: req.AppointmentID, Status: statusGenerating})
}

// GetChecklist godoc
// @Summary     Get a checklist
// @Description Returns the generated checklist of an appointment with its progress.
// @Tags        Checklists
// @Produce     json
// @Param       appointment_id query string true "Appointment ID (its start value)"
// @Success     200 {object} checklistResp
// @Failure     400 {object} response.Resp "Missing appointment_id"
// @Failure     404 {object} response.Resp "No checklist generated yet"
// @Router      /api/v1/checklists [GET]
func (h *handler) GetChecklist(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetChecklistReq(c)
	if err != nil {
		h.l.Warnf(ctx, "planner.delivery.http.GetChecklist: %v", err)
		h.mapError(c, err)
		return
	}

	out, err := h.checklists.Get(ctx, req.AppointmentID)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newGetChecklistResp(out))
}

// ToggleChecklist godoc
// @Summary     Toggle a checklist item
// @Description Flips the completion flag of one item. Unknown appointments and
// @Description out-of-range indexes change nothing and report toggled=false.
// @Tags        Checklists
// @Accept      json
// @Produce     json
// @Param       body body toggleReq true "Item to toggle"
// @Success     200 {object} toggleResp
// @Failure     400 {object} response.Resp "Invalid body"
// @Router      /api/v1/checklists/toggle [POST]
func (h *handler) ToggleChecklist(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processToggleReq(c)
	if err != nil {
		h.l.Warnf(ctx, "planner.delivery.http.ToggleChecklist: %v", err)
		h.mapError(c, err)
		return
	}

	out, err := h.checklists.Toggle(ctx, toggleInput(req))
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newToggleResp(out))
}

func toggleInput(req toggleReq) checklist.ToggleInput {
	return checklist.ToggleInput{AppointmentID: req.AppointmentID, Index: *req.Index}
}
