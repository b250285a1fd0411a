package dto

import (
	"time"

	"github.com/samikassu/crewboard/internal/domain/entity"
	usecasecontract "github.com/samikassu/crewboard/internal/usecase/contract"
)

// LoginRequest carries the display name a player connects with.
type LoginRequest struct {
	Name          string `json:"name" binding:"required"`
	DeviceDetails string `json:"device_details"`
}

// LoginResponse returns the session token plus the initial session view.
type LoginResponse struct {
	Token   string          `json:"token"`
	Session SessionResponse `json:"session"`
}

// SessionResponse mirrors a session view for the client.
type SessionResponse struct {
	SessionID string       `json:"session_id"`
	State     string       `json:"state"`
	User      UserResponse `json:"user"`
	Notice    string       `json:"notice,omitempty"`
}

// UserResponse is the public shape of a user.
type UserResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Points     int       `json:"points"`
	Level      int       `json:"level"`
	JoinedAt   time.Time `json:"joined_at"`
	Avatar     string    `json:"avatar,omitempty"`
	CustomTags []string  `json:"custom_tags,omitempty"`
}

// UpdateProfileRequest updates only the fields that are present.
type UpdateProfileRequest struct {
	Avatar     *string   `json:"avatar"`
	CustomTags *[]string `json:"custom_tags"`
}

// CreateTaskRequest is the admin task creation payload.
type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Points      int        `json:"points" binding:"required,min=1"`
	Type        string     `json:"type" binding:"required"`
	Category    string     `json:"category" binding:"required"`
	IsGroupTask bool       `json:"is_group_task"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

// ClaimTaskResponse reports what a claim actually did.
type ClaimTaskResponse struct {
	Applied       bool `json:"applied"`
	PointsAwarded int  `json:"points_awarded"`
}

// PostQuestionRequest creates a council question.
type PostQuestionRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

// VoteQuestionRequest casts an up or down vote.
type VoteQuestionRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

// VoteQuestionResponse reports the vote outcome including a triggered drop.
type VoteQuestionResponse struct {
	Applied        bool `json:"applied"`
	Dropped        bool `json:"dropped"`
	PenaltyApplied bool `json:"penalty_applied"`
}

// AddSolutionRequest proposes an answer under a question.
type AddSolutionRequest struct {
	Content string `json:"content" binding:"required"`
}

// ChatRequest is one mentor chat turn with optional history.
type ChatRequest struct {
	Message string                     `json:"message" binding:"required"`
	History []usecasecontract.ChatTurn `json:"history"`
}

// ChatResponse carries the mentor reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// GenerateImageRequest asks for an image at 1K, 2K or 4K.
type GenerateImageRequest struct {
	Prompt     string `json:"prompt" binding:"required"`
	Resolution string `json:"resolution" binding:"required,oneof=1K 2K 4K"`
}

// ToUserResponse maps a user entity to its public shape.
func ToUserResponse(u entity.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Role:       string(u.Role),
		Points:     u.Points,
		Level:      u.Level,
		JoinedAt:   u.JoinedAt,
		Avatar:     u.Avatar,
		CustomTags: u.CustomTags,
	}
}

// ToUserResponses maps a user slice.
func ToUserResponses(users []entity.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = ToUserResponse(u)
	}
	return out
}

// ToSessionResponse maps a session view.
func ToSessionResponse(v usecasecontract.SessionView) SessionResponse {
	return SessionResponse{
		SessionID: v.SessionID,
		State:     string(v.State),
		User:      ToUserResponse(v.User),
		Notice:    v.Notice,
	}
}
