package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/moradahub/backend-resident/internal/clock"
	"github.com/moradahub/backend-resident/internal/domain"
	"github.com/moradahub/backend-resident/internal/repository"
	"github.com/moradahub/backend-resident/internal/service"
	"github.com/moradahub/backend-resident/pkg/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 8, 20, 10, 0, 0, 0, time.UTC)

// fakeClaims injects resident claims the way AuthMiddleware would.
func fakeClaims(residentID, email string, role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxResidentID, residentID)
		c.Set(ctxEmail, email)
		c.Set(ctxRole, string(role))
		c.Next()
	}
}

func newReservationTestRouter(claims gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	clk := clock.NewFixed(testNow)
	environments := []*domain.Environment{
		{ID: "env-001", Name: "Salão de Festas", Available: true},
		{ID: "env-002", Name: "Churrasqueira", Available: true},
		{ID: "env-003", Name: "Academia", Available: false},
	}
	svc := service.NewReservationService(
		repository.NewMemoryReservationRepository(clk),
		repository.NewMemoryEnvironmentRepository(environments),
		nil,
		clk,
	)
	h := NewReservationHandler(svc)

	router := gin.New()
	router.Use(claims)
	router.GET("/environments", h.ListEnvironments)
	router.GET("/environments/:ref/slots", h.AvailableSlots)
	router.GET("/reservations", h.ListReservations)
	router.POST("/reservations", h.CreateReservation)
	router.GET("/reservations/:id", h.GetReservation)
	router.DELETE("/reservations/:id", h.CancelReservation)
	router.POST("/reservations/:id/comments", h.AddComment)
	router.PATCH("/reservations/:id/status", h.AdvanceStatus)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeResponse(t *testing.T, resp *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var out response.Response
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	return out
}

func TestReservationHandler_ListEnvironments(t *testing.T) {
	router := newReservationTestRouter(fakeClaims("res-001", "ana@email.com", domain.RoleResident))

	resp := doJSON(t, router, http.MethodGet, "/environments", nil)
	assert.Equal(t, http.StatusOK, resp.Code)

	body := decodeResponse(t, resp)
	assert.True(t, body.Success)
}

func TestReservationHandler_AvailableSlots(t *testing.T) {
	router := newReservationTestRouter(fakeClaims("res-001", "ana@email.com", domain.RoleResident))

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"full window", "/environments/env-002/slots?date=2025-08-22", http.StatusOK},
		{"by name", "/environments/Churrasqueira/slots?date=2025-08-22", http.StatusOK},
		{"missing date", "/environments/env-002/slots", http.StatusBadRequest},
		{"unknown environment", "/environments/env-999/slots?date=2025-08-22", http.StatusNotFound},
		{"malformed date", "/environments/env-002/slots?date=22-08-2025", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, router, http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.wantStatus, resp.Code)
		})
	}
}

func TestReservationHandler_CreateReservation(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantCode   string
	}{
		{
			name:       "created",
			body:       gin.H{"environment_ref": "env-002", "date": "2025-08-22", "time_slot": "12:00"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing fields",
			body:       gin.H{"environment_ref": "env-002"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unavailable environment",
			body:       gin.H{"environment_ref": "env-003", "date": "2025-08-22", "time_slot": "12:00"},
			wantStatus: http.StatusConflict,
			wantCode:   "ENVIRONMENT_UNAVAILABLE",
		},
		{
			name:       "slot outside window",
			body:       gin.H{"environment_ref": "env-002", "date": "2025-08-22", "time_slot": "23:00"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "past date",
			body:       gin.H{"environment_ref": "env-002", "date": "2025-08-01", "time_slot": "12:00"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newReservationTestRouter(fakeClaims("res-001", "ana@email.com", domain.RoleResident))
			resp := doJSON(t, router, http.MethodPost, "/reservations", tt.body)
			assert.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantCode != "" {
				body := decodeResponse(t, resp)
				require.NotNil(t, body.Error)
				assert.Equal(t, tt.wantCode, body.Error.Code)
			}
		})
	}
}

func TestReservationHandler_CreateReservation_SlotTaken(t *testing.T) {
	router := newReservationTestRouter(fakeClaims("res-001", "ana@email.com", domain.RoleResident))
	body := gin.H{"environment_ref": "env-002", "date": "2025-08-22", "time_slot": "12:00"}

	resp := doJSON(t, router, http.MethodPost, "/reservations", body)
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = doJSON(t, router, http.MethodPost, "/reservations", body)
	assert.Equal(t, http.StatusConflict, resp.Code)
	decoded := decodeResponse(t, resp)
	require.NotNil(t, decoded.Error)
	assert.Equal(t, "SLOT_TAKEN", decoded.Error.Code)
}

func TestReservationHandler_CancelFlow(t *testing.T) {
	router := newReservationTestRouter(fakeClaims("res-001", "ana@email.com", domain.RoleResident))

	resp := doJSON(t, router, http.MethodPost, "/reservations", gin.H{
		"environment_ref": "env-002", "date": "2025-08-22", "time_slot": "12:00",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	id := created.Data.ID
	require.NotEmpty(t, id)

	resp = doJSON(t, router, http.MethodDelete, "/reservations/"+id, nil)
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, router, http.MethodDelete, "/reservations/"+id, nil)
	assert.Equal(t, http.StatusConflict, resp.Code)
	decoded := decodeResponse(t, resp)
	require.NotNil(t, decoded.Error)
	assert.Equal(t, "ALREADY_CANCELLED", decoded.Error.Code)

	resp = doJSON(t, router, http.MethodDelete, "/reservations/missing", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	// Comments still work after cancellation.
	resp = doJSON(t, router, http.MethodPost, "/reservations/"+id+"/comments", gin.H{"text": "Cancelei pela chuva"})
	assert.Equal(t, http.StatusCreated, resp.Code)
}

func TestReservationHandler_OwnershipIsEnforced(t *testing.T) {
	clk := clock.NewFixed(testNow)
	environments := []*domain.Environment{{ID: "env-002", Name: "Churrasqueira", Available: true}}
	svc := service.NewReservationService(
		repository.NewMemoryReservationRepository(clk),
		repository.NewMemoryEnvironmentRepository(environments),
		nil,
		clk,
	)
	h := NewReservationHandler(svc)

	buildRouter := func(claims gin.HandlerFunc) *gin.Engine {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.Use(claims)
		router.POST("/reservations", h.CreateReservation)
		router.GET("/reservations/:id", h.GetReservation)
		router.DELETE("/reservations/:id", h.CancelReservation)
		return router
	}

	owner := buildRouter(fakeClaims("res-001", "ana@email.com", domain.RoleResident))
	stranger := buildRouter(fakeClaims("res-002", "bruno@email.com", domain.RoleResident))
	manager := buildRouter(fakeClaims("res-900", "sindico@email.com", domain.RoleManager))

	resp := doJSON(t, owner, http.MethodPost, "/reservations", gin.H{
		"environment_ref": "env-002", "date": "2025-08-22", "time_slot": "12:00",
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	id := created.Data.ID

	resp = doJSON(t, stranger, http.MethodGet, "/reservations/"+id, nil)
	assert.Equal(t, http.StatusForbidden, resp.Code)
	resp = doJSON(t, stranger, http.MethodDelete, "/reservations/"+id, nil)
	assert.Equal(t, http.StatusForbidden, resp.Code)

	resp = doJSON(t, manager, http.MethodGet, "/reservations/"+id, nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	resp = doJSON(t, owner, http.MethodGet, "/reservations/"+id, nil)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestReservationHandler_AdvanceStatus(t *testing.T) {
	router := newReservationTestRouter(fakeClaims("res-900", "sindico@email.com", domain.RoleManager))

	resp := doJSON(t, router, http.MethodPost, "/reservations", gin.H{
		"environment_ref": "env-002", "date": "2025-08-22", "time_slot": "12:00",
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	id := created.Data.ID

	resp = doJSON(t, router, http.MethodPatch, "/reservations/"+id+"/status", gin.H{
		"status": "confirmed", "comment": "Aprovado",
	})
	assert.Equal(t, http.StatusOK, resp.Code)

	// Confirmed cannot go back to pending.
	resp = doJSON(t, router, http.MethodPatch, "/reservations/"+id+"/status", gin.H{
		"status": "pending", "comment": "volta",
	})
	assert.Equal(t, http.StatusConflict, resp.Code)
	decoded := decodeResponse(t, resp)
	require.NotNil(t, decoded.Error)
	assert.Equal(t, "INVALID_TRANSITION", decoded.Error.Code)

	resp = doJSON(t, router, http.MethodPatch, "/reservations/"+id+"/status", gin.H{"status": "confirmed"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestReservationHandler_ListReservations_Scoping(t *testing.T) {
	clk := clock.NewFixed(testNow)
	environments := []*domain.Environment{{ID: "env-002", Name: "Churrasqueira", Available: true}}
	svc := service.NewReservationService(
		repository.NewMemoryReservationRepository(clk),
		repository.NewMemoryEnvironmentRepository(environments),
		nil,
		clk,
	)
	h := NewReservationHandler(svc)

	buildRouter := func(claims gin.HandlerFunc) *gin.Engine {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.Use(claims)
		router.GET("/reservations", h.ListReservations)
		router.POST("/reservations", h.CreateReservation)
		return router
	}
	ana := buildRouter(fakeClaims("res-001", "ana@email.com", domain.RoleResident))
	bruno := buildRouter(fakeClaims("res-002", "bruno@email.com", domain.RoleResident))
	manager := buildRouter(fakeClaims("res-900", "sindico@email.com", domain.RoleManager))

	require.Equal(t, http.StatusCreated, doJSON(t, ana, http.MethodPost, "/reservations", gin.H{
		"environment_ref": "env-002", "date": "2025-08-22", "time_slot": "12:00",
	}).Code)
	require.Equal(t, http.StatusCreated, doJSON(t, bruno, http.MethodPost, "/reservations", gin.H{
		"environment_ref": "env-002", "date": "2025-08-23", "time_slot": "12:00",
	}).Code)

	count := func(resp *httptest.ResponseRecorder) int {
		var out struct {
			Data []json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
		return len(out.Data)
	}

	assert.Equal(t, 1, count(doJSON(t, ana, http.MethodGet, "/reservations", nil)))
	assert.Equal(t, 1, count(doJSON(t, bruno, http.MethodGet, "/reservations", nil)))
	assert.Equal(t, 2, count(doJSON(t, manager, http.MethodGet, "/reservations", nil)))
	assert.Equal(t, 1, count(doJSON(t, manager, http.MethodGet, "/reservations?from=2025-08-23", nil)))
	assert.Equal(t, 2, count(doJSON(t, manager, http.MethodGet, "/reservations?status=pending", nil)))
}
