package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moradahub/backend-resident/internal/domain"
	"github.com/moradahub/backend-resident/pkg/response"
)

// handleError maps domain errors to HTTP responses.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotOwner):
		response.Forbidden(c, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	case domain.IsAuthError(err):
		response.Unauthorized(c, err.Error())
	case domain.IsNotFoundError(err):
		response.NotFound(c, err.Error())
	case errors.Is(err, domain.ErrSlotTaken):
		response.Error(c, http.StatusConflict, "SLOT_TAKEN", err.Error(), "")
	case errors.Is(err, domain.ErrEnvironmentUnavailable):
		response.Error(c, http.StatusConflict, "ENVIRONMENT_UNAVAILABLE", err.Error(), "")
	case errors.Is(err, domain.ErrAlreadyCancelled):
		response.Error(c, http.StatusConflict, "ALREADY_CANCELLED", err.Error(), "")
	case errors.Is(err, domain.ErrInvalidTransition):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", err.Error(), "")
	case domain.IsConflictError(err):
		response.Conflict(c, err.Error())
	case domain.IsValidationError(err):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
