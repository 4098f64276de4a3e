package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/moradahub/backend-resident/internal/service"
	"github.com/moradahub/backend-resident/pkg/response"
)

// ParcelHandler handles package tracking HTTP requests
type ParcelHandler struct {
	parcelService service.ParcelService
}

// NewParcelHandler creates a new parcel handler
func NewParcelHandler(parcelService service.ParcelService) *ParcelHandler {
	return &ParcelHandler{parcelService: parcelService}
}

// ListParcels handles GET /parcels?status=awaiting_pickup
func (h *ParcelHandler) ListParcels(c *gin.Context) {
	result, err := h.parcelService.ListParcels(c.Request.Context(), c.GetString(ctxResidentID), c.Query("status"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, result)
}

// MarkPickedUp handles POST /parcels/:id/pickup
func (h *ParcelHandler) MarkPickedUp(c *gin.Context) {
	result, err := h.parcelService.MarkPickedUp(c.Request.Context(), c.Param("id"), c.GetString(ctxResidentID))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, result)
}
