package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

// Page renders the appointment list with each appointment's checklist.
func (h *handler) Page(c *gin.Context) {
	overview := h.uc.Overview(c.Request.Context())

	c.Render(http.StatusOK, render.HTML{
		Template: h.tmpl,
		Name:     pageTemplate,
		Data:     h.newPageData(overview),
	})
}

// GenerateForm starts a generation from the page and redirects back to it.
// Failures are logged; the page then shows the unchanged state.
func (h *handler) GenerateForm(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		h.l.Warnf(ctx, "planner.delivery.http.GenerateForm: %v", err)
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	if err := h.checklists.Start(ctx, req.AppointmentID); err != nil {
		h.l.Warnf(ctx, "planner.delivery.http.GenerateForm: %v", err)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// ToggleForm flips one item from the page and redirects back to it.
func (h *handler) ToggleForm(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processToggleReq(c)
	if err != nil {
		h.l.Warnf(ctx, "planner.delivery.http.ToggleForm: %v", err)
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	if _, err := h.checklists.Toggle(ctx, toggleInput(req)); err != nil {
		h.l.Warnf(ctx, "planner.delivery.http.ToggleForm: %v", err)
	}
	c.Redirect(http.StatusSeeOther, "/")
}
