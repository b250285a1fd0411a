package mocks

import (
	"context"

	"github.com/samikassu/crewboard/internal/domain/entity"
	"github.com/samikassu/crewboard/internal/ledger"
	usecasecontract "github.com/samikassu/crewboard/internal/usecase/contract"
)

// MockSessionUsecase is a hand-written mock of ISessionUseCase. Tests set
// only the function fields they need; unset methods return zero values.
type MockSessionUsecase struct {
	LoginFn            func(ctx context.Context, name, deviceDetails string) (*usecasecontract.SessionView, string, error)
	CancelPendingFn    func(ctx context.Context, sessionID string) error
	LogoutFn           func(ctx context.Context, sessionID string) error
	ResolveFn          func(ctx context.Context, token string) (*usecasecontract.SessionView, error)
	MeFn               func(ctx context.Context, sessionID string) (*usecasecontract.SessionView, error)
	ListUsersFn        func(ctx context.Context, sessionID string) ([]entity.User, error)
	ListPendingUsersFn func(ctx context.Context, sessionID string) ([]entity.User, error)
	ApproveUserFn      func(ctx context.Context, sessionID, targetID string) error
	RejectUserFn       func(ctx context.Context, sessionID, targetID string) error
	UpdateProfileFn    func(ctx context.Context, sessionID string, avatar *string, tags *[]string) (*entity.User, error)
	LeaderboardFn      func(ctx context.Context) ([]usecasecontract.LeaderboardEntry, error)
	ListTasksFn        func(ctx context.Context, sessionID string) ([]entity.Task, error)
	CreateTaskFn       func(ctx context.Context, sessionID string, draft ledger.TaskDraft) (*entity.Task, error)
	ClaimTaskFn        func(ctx context.Context, sessionID, taskID string) (*ledger.ClaimResult, error)
	ListQuestionsFn    func(ctx context.Context, sessionID string) ([]entity.Question, error)
	PostQuestionFn     func(ctx context.Context, sessionID, title, content string) (*entity.Question, error)
	VoteQuestionFn     func(ctx context.Context, sessionID, questionID string, direction ledger.VoteDirection) (*ledger.VoteResult, error)
	AddSolutionFn      func(ctx context.Context, sessionID, questionID, content string) (*entity.Solution, error)
	VoteSolutionFn     func(ctx context.Context, sessionID, questionID, solutionID string) (bool, error)
	MarkBestAnswerFn   func(ctx context.Context, sessionID, questionID, solutionID string) (bool, error)
}

// make sure the mock satisfies the interface
var _ usecasecontract.ISessionUseCase = (*MockSessionUsecase)(nil)

func (m *MockSessionUsecase) Login(ctx context.Context, name, deviceDetails string) (*usecasecontract.SessionView, string, error) {
	if m.LoginFn == nil {
		return nil, "", nil
	}
	return m.LoginFn(ctx, name, deviceDetails)
}

func (m *MockSessionUsecase) CancelPending(ctx context.Context, sessionID string) error {
	if m.CancelPendingFn == nil {
		return nil
	}
	return m.CancelPendingFn(ctx, sessionID)
}

func (m *MockSessionUsecase) Logout(ctx context.Context, sessionID string) error {
	if m.LogoutFn == nil {
		return nil
	}
	return m.LogoutFn(ctx, sessionID)
}

func (m *MockSessionUsecase) Resolve(ctx context.Context, token string) (*usecasecontract.SessionView, error) {
	if m.ResolveFn == nil {
		return nil, nil
	}
	return m.ResolveFn(ctx, token)
}

func (m *MockSessionUsecase) Me(ctx context.Context, sessionID string) (*usecasecontract.SessionView, error) {
	if m.MeFn == nil {
		return nil, nil
	}
	return m.MeFn(ctx, sessionID)
}

func (m *MockSessionUsecase) ListUsers(ctx context.Context, sessionID string) ([]entity.User, error) {
	if m.ListUsersFn == nil {
		return nil, nil
	}
	return m.ListUsersFn(ctx, sessionID)
}

func (m *MockSessionUsecase) ListPendingUsers(ctx context.Context, sessionID string) ([]entity.User, error) {
	if m.ListPendingUsersFn == nil {
		return nil, nil
	}
	return m.ListPendingUsersFn(ctx, sessionID)
}

func (m *MockSessionUsecase) ApproveUser(ctx context.Context, sessionID, targetID string) error {
	if m.ApproveUserFn == nil {
		return nil
	}
	return m.ApproveUserFn(ctx, sessionID, targetID)
}

func (m *MockSessionUsecase) RejectUser(ctx context.Context, sessionID, targetID string) error {
	if m.RejectUserFn == nil {
		return nil
	}
	return m.RejectUserFn(ctx, sessionID, targetID)
}

func (m *MockSessionUsecase) UpdateProfile(ctx context.Context, sessionID string, avatar *string, tags *[]string) (*entity.User, error) {
	if m.UpdateProfileFn == nil {
		return nil, nil
	}
	return m.UpdateProfileFn(ctx, sessionID, avatar, tags)
}

func (m *MockSessionUsecase) Leaderboard(ctx context.Context) ([]usecasecontract.LeaderboardEntry, error) {
	if m.LeaderboardFn == nil {
		return nil, nil
	}
	return m.LeaderboardFn(ctx)
}

func (m *MockSessionUsecase) ListTasks(ctx context.Context, sessionID string) ([]entity.Task, error) {
	if m.ListTasksFn == nil {
		return nil, nil
	}
	return m.ListTasksFn(ctx, sessionID)
}

func (m *MockSessionUsecase) CreateTask(ctx context.Context, sessionID string, draft ledger.TaskDraft) (*entity.Task, error) {
	if m.CreateTaskFn == nil {
		return nil, nil
	}
	return m.CreateTaskFn(ctx, sessionID, draft)
}

func (m *MockSessionUsecase) ClaimTask(ctx context.Context, sessionID, taskID string) (*ledger.ClaimResult, error) {
	if m.ClaimTaskFn == nil {
		return nil, nil
	}
	return m.ClaimTaskFn(ctx, sessionID, taskID)
}

func (m *MockSessionUsecase) ListQuestions(ctx context.Context, sessionID string) ([]entity.Question, error) {
	if m.ListQuestionsFn == nil {
		return nil, nil
	}
	return m.ListQuestionsFn(ctx, sessionID)
}

func (m *MockSessionUsecase) PostQuestion(ctx context.Context, sessionID, title, content string) (*entity.Question, error) {
	if m.PostQuestionFn == nil {
		return nil, nil
	}
	return m.PostQuestionFn(ctx, sessionID, title, content)
}

func (m *MockSessionUsecase) VoteQuestion(ctx context.Context, sessionID, questionID string, direction ledger.VoteDirection) (*ledger.VoteResult, error) {
	if m.VoteQuestionFn == nil {
		return nil, nil
	}
	return m.VoteQuestionFn(ctx, sessionID, questionID, direction)
}

func (m *MockSessionUsecase) AddSolution(ctx context.Context, sessionID, questionID, content string) (*entity.Solution, error) {
	if m.AddSolutionFn == nil {
		return nil, nil
	}
	return m.AddSolutionFn(ctx, sessionID, questionID, content)
}

func (m *MockSessionUsecase) VoteSolution(ctx context.Context, sessionID, questionID, solutionID string) (bool, error) {
	if m.VoteSolutionFn == nil {
		return false, nil
	}
	return m.VoteSolutionFn(ctx, sessionID, questionID, solutionID)
}

func (m *MockSessionUsecase) MarkBestAnswer(ctx context.Context, sessionID, questionID, solutionID string) (bool, error) {
	if m.MarkBestAnswerFn == nil {
		return false, nil
	}
	return m.MarkBestAnswerFn(ctx, sessionID, questionID, solutionID)
}
