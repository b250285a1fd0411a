package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samikassu/crewboard/internal/handler/http/dto"
	"github.com/samikassu/crewboard/internal/ledger"
	"github.com/samikassu/crewboard/internal/usecase"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// UsecaseErrorHandler maps use case errors to HTTP status codes.
func UsecaseErrorHandler(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		ErrorHandler(c, http.StatusUnauthorized, "Session not found")
	case errors.Is(err, usecase.ErrSessionNotActive):
		ErrorHandler(c, http.StatusForbidden, "Session is not active")
	case errors.Is(err, usecase.ErrNotAuthorized):
		ErrorHandler(c, http.StatusForbidden, "Admin privileges required")
	case errors.Is(err, ledger.ErrAccessDenied):
		ErrorHandler(c, http.StatusForbidden, "Access denied")
	case errors.Is(err, usecase.ErrSyncFailure):
		ErrorHandler(c, http.StatusServiceUnavailable, "Backend is unreachable, try again")
	default:
		ErrorHandler(c, http.StatusBadRequest, err.Error())
	}
}

// SessionIDFromContext reads the session ID set by the auth middleware.
func SessionIDFromContext(c *gin.Context) (string, bool) {
	sessionID, exists := c.Get("sessionID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return "", false
	}
	return sessionID.(string), true
}
