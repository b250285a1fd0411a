package usecasecontract

import (
	"context"

	"github.com/samikassu/crewboard/internal/domain/entity"
	"github.com/samikassu/crewboard/internal/ledger"
)

// SessionState is the lifecycle state of one connected session.
type SessionState string

const (
	SessionLoading   SessionState = "loading"
	SessionPending   SessionState = "pending"
	SessionActive    SessionState = "active"
	SessionLoggedOut SessionState = "logged_out"
)

// SessionView is the handler-facing picture of a session: its state, the
// session's own user as held in the local snapshot, and any pending notice
// (forced-logout alerts surface here).
type SessionView struct {
	SessionID string
	State     SessionState
	User      entity.User
	Notice    string
}

// ISessionUseCase is every ledger action as seen through a session context.
// All authorization is role-gated here; handlers only translate HTTP.
type ISessionUseCase interface {
	Login(ctx context.Context, name, deviceDetails string) (*SessionView, string, error)
	CancelPending(ctx context.Context, sessionID string) error
	Logout(ctx context.Context, sessionID string) error
	Resolve(ctx context.Context, token string) (*SessionView, error)
	Me(ctx context.Context, sessionID string) (*SessionView, error)

	ListUsers(ctx context.Context, sessionID string) ([]entity.User, error)
	ListPendingUsers(ctx context.Context, sessionID string) ([]entity.User, error)
	ApproveUser(ctx context.Context, sessionID, targetID string) error
	RejectUser(ctx context.Context, sessionID, targetID string) error
	UpdateProfile(ctx context.Context, sessionID string, avatar *string, tags *[]string) (*entity.User, error)
	Leaderboard(ctx context.Context) ([]LeaderboardEntry, error)

	ListTasks(ctx context.Context, sessionID string) ([]entity.Task, error)
	CreateTask(ctx context.Context, sessionID string, draft ledger.TaskDraft) (*entity.Task, error)
	ClaimTask(ctx context.Context, sessionID, taskID string) (*ledger.ClaimResult, error)

	ListQuestions(ctx context.Context, sessionID string) ([]entity.Question, error)
	PostQuestion(ctx context.Context, sessionID, title, content string) (*entity.Question, error)
	VoteQuestion(ctx context.Context, sessionID, questionID string, direction ledger.VoteDirection) (*ledger.VoteResult, error)
	AddSolution(ctx context.Context, sessionID, questionID, content string) (*entity.Solution, error)
	VoteSolution(ctx context.Context, sessionID, questionID, solutionID string) (bool, error)
	MarkBestAnswer(ctx context.Context, sessionID, questionID, solutionID string) (bool, error)
}
