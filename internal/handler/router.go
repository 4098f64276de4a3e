package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moradahub/backend-resident/internal/logger"
	"github.com/moradahub/backend-resident/internal/service"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth         *AuthHandler
	Reservation  *ReservationHandler
	Announcement *AnnouncementHandler
	Parcel       *ParcelHandler
	Issue        *IssueHandler
	Profile      *ProfileHandler
	AuthService  service.AuthService
	Log          *logger.Logger
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(h *Handlers, debug bool) *gin.Engine {
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(h.Log))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.POST("/auth/login", h.Auth.Login)

	protected := v1.Group("")
	protected.Use(AuthMiddleware(h.AuthService))
	{
		protected.GET("/environments", h.Reservation.ListEnvironments)
		protected.GET("/environments/:ref/slots", h.Reservation.AvailableSlots)

		protected.GET("/reservations", h.Reservation.ListReservations)
		protected.POST("/reservations", h.Reservation.CreateReservation)
		protected.GET("/reservations/:id", h.Reservation.GetReservation)
		protected.DELETE("/reservations/:id", h.Reservation.CancelReservation)
		protected.POST("/reservations/:id/comments", h.Reservation.AddComment)

		protected.GET("/announcements", h.Announcement.Feed)
		protected.POST("/announcements/:id/read", h.Announcement.MarkRead)

		protected.GET("/parcels", h.Parcel.ListParcels)
		protected.POST("/parcels/:id/pickup", h.Parcel.MarkPickedUp)

		protected.GET("/issues", h.Issue.ListIssues)
		protected.POST("/issues", h.Issue.ReportIssue)

		protected.GET("/profile", h.Profile.GetProfile)
		protected.PUT("/profile", h.Profile.UpdateProfile)
	}

	manager := protected.Group("")
	manager.Use(RequireManager())
	{
		manager.PATCH("/reservations/:id/status", h.Reservation.AdvanceStatus)
		manager.PATCH("/issues/:id/status", h.Issue.AdvanceStatus)
	}

	return router
}
