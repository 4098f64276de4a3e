package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/moradahub/backend-resident/internal/domain"
	"github.com/moradahub/backend-resident/internal/dto"
	"github.com/moradahub/backend-resident/internal/service"
	"github.com/moradahub/backend-resident/pkg/response"
)

// ReservationHandler handles reservation HTTP requests
type ReservationHandler struct {
	reservationService service.ReservationService
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(reservationService service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

// ListEnvironments handles GET /environments
func (h *ReservationHandler) ListEnvironments(c *gin.Context) {
	environments, err := h.reservationService.ListEnvironments(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, environments)
}

// AvailableSlots handles GET /environments/:ref/slots?date=YYYY-MM-DD
func (h *ReservationHandler) AvailableSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		response.BadRequest(c, "date query parameter is required")
		return
	}

	availability, err := h.reservationService.AvailableSlots(c.Request.Context(), c.Param("ref"), date)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, availability)
}

// CreateReservation handles POST /reservations
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.reservationService.CreateReservation(c.Request.Context(), c.GetString(ctxResidentID), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, result)
}

// ListReservations handles GET /reservations
// Residents see their own reservations; managers see everything.
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	query := service.ListReservationsQuery{
		EnvironmentRef: c.Query("environment"),
		DateFrom:       c.Query("from"),
		DateTo:         c.Query("to"),
		Status:         c.Query("status"),
		Descending:     c.Query("order") == "desc",
	}
	if domain.Role(c.GetString(ctxRole)) != domain.RoleManager {
		query.ResidentID = c.GetString(ctxResidentID)
	}

	result, err := h.reservationService.ListReservations(c.Request.Context(), query)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, result)
}

// GetReservation handles GET /reservations/:id
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	result, err := h.reservationService.GetReservation(
		c.Request.Context(),
		c.Param("id"),
		c.GetString(ctxResidentID),
		domain.Role(c.GetString(ctxRole)),
	)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, result)
}

// CancelReservation handles DELETE /reservations/:id
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	err := h.reservationService.CancelReservation(
		c.Request.Context(),
		c.Param("id"),
		c.GetString(ctxResidentID),
		domain.Role(c.GetString(ctxRole)),
	)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"cancelled": true})
}

// AddComment handles POST /reservations/:id/comments
func (h *ReservationHandler) AddComment(c *gin.Context) {
	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	err := h.reservationService.AddComment(c.Request.Context(), c.Param("id"), c.GetString(ctxEmail), req.Text)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, gin.H{"added": true})
}

// AdvanceStatus handles PATCH /reservations/:id/status (manager only)
func (h *ReservationHandler) AdvanceStatus(c *gin.Context) {
	var req dto.AdvanceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.reservationService.AdvanceStatus(
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
