package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samikassu/crewboard/internal/handler/http/dto"
	usecasecontract "github.com/samikassu/crewboard/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	ListUsers(*gin.Context)
	ListPendingUsers(*gin.Context)
	ApproveUser(*gin.Context)
	RejectUser(*gin.Context)
	UpdateProfile(*gin.Context)
	Leaderboard(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	sessionUsecase usecasecontract.ISessionUseCase
}

func NewUserHandler(sessionUsecase usecasecontract.ISessionUseCase) *UserHandler {
	return &UserHandler{
		sessionUsecase: sessionUsecase,
	}
}

// ListUsers returns every active member.
func (h *UserHandler) ListUsers(c *gin.Context) {
	sessionID, ok := SessionIDFromContext(c)
	if !ok {
		return
	}

	users, err := h.sessionUsecase.ListUsers(c.Request.Context(), sessionID)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponses(users))
}

// ListPendingUsers returns recruits awaiting an admin decision.
func (h *UserHandler) ListPendingUsers(c *gin.Context) {
	sessionID, ok := SessionIDFromContext(c)
	if !ok {
		return
	}

	users, err := h.sessionUsecase.ListPendingUsers(c.Request.Context(), sessionID)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponses(users))
}

// ApproveUser promotes a pending recruit to member.
func (h *UserHandler) ApproveUser(c *gin.Context) {
	sessionID, ok := SessionIDFromContext(c)
	if !ok {
		return
	}

	targetID := c.Param("id")
	if err := h.sessionUsecase.ApproveUser(c.Request.Context(), sessionID, targetID); err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "User approved")
}

// RejectUser marks a user rejected; their session is terminated on the next poll.
func (h *UserHandler) RejectUser(c *gin.Context) {
	sessionID, ok := SessionIDFromContext(c)
	if !ok {
		return
	}

	targetID := c.Param("id")
	if err := h.sessionUsecase.RejectUser(c.Request.Context(), sessionID, targetID); err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "User rejected")
}

// UpdateProfile updates the caller's avatar and custom tags.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	sessionID, ok := SessionIDFromContext(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.sessionUsecase.UpdateProfile(c.Request.Context(), sessionID, req.Avatar, req.CustomTags)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// Leaderboard returns active members ranked by points.
func (h *UserHandler) Leaderboard(c *gin.Context) {
	entries, err := h.sessionUsecase.Leaderboard(c.Request.Context())
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, entries)
}
