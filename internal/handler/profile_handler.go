package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/moradahub/backend-resident/internal/dto"
	"github.com/moradahub/backend-resident/internal/service"
	"github.com/moradahub/backend-resident/pkg/response"
)

// ProfileHandler handles resident profile HTTP requests
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetProfile handles GET /profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	result, err := h.profileService.GetProfile(c.Request.Context(), c.GetString(ctxResidentID))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, result)
}

// UpdateProfile handles PUT /profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.profileService.UpdateProfile(c.Request.Context(), c.GetString(ctxResidentID), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, result)
}
