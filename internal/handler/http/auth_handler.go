package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samikassu/crewboard/internal/handler/http/dto"
	usecasecontract "github.com/samikassu/crewboard/internal/usecase/contract"
)

// AuthHandlerInterface defines the methods for auth handler to allow interface-based dependency injection (for testing/mocking)
type AuthHandlerInterface interface {
	Login(*gin.Context)
	Resolve(*gin.Context)
	Me(*gin.Context)
	CancelPending(*gin.Context)
	Logout(*gin.Context)
}

// Ensure AuthHandler implements AuthHandlerInterface
var _ AuthHandlerInterface = (*AuthHandler)(nil)

type AuthHandler struct {
	sessionUsecase usecasecontract.ISessionUseCase
}

func NewAuthHandler(sessionUsecase usecasecontract.ISessionUseCase) *AuthHandler {
	return &AuthHandler{
		sessionUsecase: sessionUsecase,
	}
}

// Login connects with a display name only. An unknown name creates a pending
// recruit; a rejected name is refused outright.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	view, token, err := h.sessionUsecase.Login(c.Request.Context(), req.Name, req.DeviceDetails)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.LoginResponse{
		Token:   token,
		Session: dto.ToSessionResponse(*view),
	})
}

// Resolve restores a session from a stored token, for clients reconnecting
// after a page reload.
func (h *AuthHandler) Resolve(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		ErrorHandler(c, http.StatusUnauthorized, "Bearer token required")
		return
	}

	view, err := h.sessionUsecase.Resolve(c.Request.Context(), parts[1])
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToSessionResponse(*view))
}

// Me reports the current session state, including any forced-logout notice.
func (h *AuthHandler) Me(c *gin.Context) {
	sessionID, ok := SessionIDFromContext(c)
	if !ok {
		return
	}

	view, err := h.sessionUsecase.Me(c.Request.Context(), sessionID)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToSessionResponse(*view))
}

// CancelPending abandons a not-yet-approved login attempt.
func (h *AuthHandler) CancelPending(c *gin.Context) {
	sessionID, ok := SessionIDFromContext(c)
	if !ok {
		return
	}

	if err := h.sessionUsecase.CancelPending(c.Request.Context(), sessionID); err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Pending login cancelled")
}

// Logout ends the session and stops its sync loop.
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, ok := SessionIDFromContext(c)
	if !ok {
		return
	}

	if err := h.sessionUsecase.Logout(c.Request.Context(), sessionID); err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Logged out successfully")
}
