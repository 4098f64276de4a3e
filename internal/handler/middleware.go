package handler

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/moradahub/backend-resident/internal/domain"
	"github.com/moradahub/backend-resident/internal/logger"
	"github.com/moradahub/backend-resident/internal/service"
	"github.com/moradahub/backend-resident/pkg/response"
	"go.uber.org/zap"
)

// Context keys set by AuthMiddleware.
const (
	ctxResidentID = "resident_id"
	ctxEmail      = "email"
	ctxRole       = "role"
)

// AuthMiddleware validates the bearer token and sets resident claims in context
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}
		token := authHeader[len(bearerPrefix):]

		claims, err := authService.ValidateToken(c.Request.Context(), token)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ctxResidentID, claims.ResidentID)
		c.Set(ctxEmail, claims.Email)
		c.Set(ctxRole, string(claims.Role))
		c.Next()
	}
}

// RequireManager rejects requests whose token does not carry the manager role
func RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		if domain.Role(c.GetString(ctxRole)) != domain.RoleManager {
			response.Forbidden(c, "manager role required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequestLogger logs request details
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		fields := []zap.Field{
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", latency),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			log.Error("Server error", fields...)
		case status >= 400:
			log.Warn("Client error", fields...)
		default:
			log.Info("Request completed", fields...)
		}
	}
}
