package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/moradahub/backend-resident/internal/service"
	"github.com/moradahub/backend-resident/pkg/response"
)

// AnnouncementHandler handles notification feed HTTP requests
type AnnouncementHandler struct {
	announcementService service.AnnouncementService
}

// NewAnnouncementHandler creates a new announcement handler
func NewAnnouncementHandler(announcementService service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

// Feed handles GET /announcements
func (h *AnnouncementHandler) Feed(c *gin.Context) {
	result, err := h.announcementService.Feed(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, result)
}

// MarkRead handles POST /announcements/:id/read
func (h *AnnouncementHandler) MarkRead(c *gin.Context) {
	result, err := h.announcementService.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, result)
}
