package handler

import (
	"net/http"

	"delegated-treasury/internal/adapter/http/dto"
	"delegated-treasury/internal/adapter/http/middleware"
	"delegated-treasury/internal/core/ports"
	"delegated-treasury/pkg/apperror"
	"delegated-treasury/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler issues session tokens to signature-authenticated callers.
type AuthHandler struct {
	tokenSvc ports.TokenService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(tokenSvc ports.TokenService) *AuthHandler {
	return &AuthHandler{tokenSvc: tokenSvc}
}

// IssueToken handles POST /api/v1/auth/token.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	id, ok := middleware.Principal(c)
	if !ok {
		response.Error(c, apperror.ErrMissingCredentials())
		return
	}

	token, expiry, err := h.tokenSvc.Generate(id)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, dto.TokenResponse{
		Token:    token,
		Identity: id,
		Expiry:   expiry.Unix(),
	})
}

// HealthCheck handles GET /health by pinging every dependency.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
