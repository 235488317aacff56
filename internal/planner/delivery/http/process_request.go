package http

import (
	"github.com/gin-gonic/gin"
)

// processGenerateReq binds the generate request from JSON or a form post.
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq
	if err := c.ShouldBind(&req); err != nil {
		return req, errWrongBody
	}
	return req, req.validate()
}

// processToggleReq binds the toggle request from JSON or a form post.
func (h *handler) processToggleReq(c *gin.Context) (toggleReq, error) {
	var req toggleReq
	if err := c.ShouldBind(&req); err != nil {
		return req, errWrongBody
	}
	return req, req.validate()
}

// processGetChecklistReq binds the checklist query parameters.
func (h *handler) processGetChecklistReq(c *gin.Context) (getChecklistReq, error) {
	var req getChecklistReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errWrongQuery
	}
	return req, req.validate()
}
