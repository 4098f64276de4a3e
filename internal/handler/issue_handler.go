package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/moradahub/backend-resident/internal/domain"
	"github.com/moradahub/backend-resident/internal/dto"
	"github.com/moradahub/backend-resident/internal/service"
	"github.com/moradahub/backend-resident/pkg/response"
)

// IssueHandler handles issue report HTTP requests
type IssueHandler struct {
	issueService service.IssueService
}

// NewIssueHandler creates a new issue handler
func NewIssueHandler(issueService service.IssueService) *IssueHandler {
	return &IssueHandler{issueService: issueService}
}

// ReportIssue handles POST /issues
func (h *IssueHandler) ReportIssue(c *gin.Context) {
	var req dto.CreateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.issueService.ReportIssue(c.Request.Context(), c.GetString(ctxResidentID), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, result)
}

// ListIssues handles GET /issues
func (h *IssueHandler) ListIssues(c *gin.Context) {
	result, err := h.issueService.ListIssues(
		c.Request.Context(),
		c.GetString(ctxResidentID),
		domain.Role(c.GetString(ctxRole)),
	)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, result)
}

// AdvanceStatus handles PATCH /issues/:id/status (manager only)
func (h *IssueHandler) AdvanceStatus(c *gin.Context) {
	var req dto.AdvanceIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.issueService.AdvanceStatus(
		c.Request.Context(),
		c.Param("id"),
		req.Status,
		req.Comment,
		c.GetString(ctxEmail),
	)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, result)
}
