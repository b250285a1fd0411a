package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/samikassu/crewboard/internal/domain/contract"
	"github.com/samikassu/crewboard/internal/domain/entity"
	"github.com/samikassu/crewboard/internal/ledger"
	"github.com/samikassu/crewboard/internal/metrics"
	usecasecontract "github.com/samikassu/crewboard/internal/usecase/contract"
)

// SessionUsecase owns the session registry and runs every ledger action
// inside a session context. Mutations are applied optimistically to the
// session's local snapshot and then persisted with replace-all writes; a
// single mutex per collection serializes writers within this process. Across
// processes there is no coordination: concurrent replaces are last-writer-
// wins, which is the documented contract of the entity store.
type SessionUsecase struct {
	store     contract.IEntityStore
	engine    *ledger.Engine
	tokens    TokenService
	logger    usecasecontract.IAppLogger
	config    usecasecontract.IConfigProvider
	validator usecasecontract.IValidator
	ids       contract.IUUIDGenerator

	mail    contract.IEmailService            // optional
	lbCache usecasecontract.ILeaderboardCache // optional

	sessions *sessionRegistry

	// one write-serialization point per collection per process
	usersWriteMu     sync.Mutex
	tasksWriteMu     sync.Mutex
	questionsWriteMu sync.Mutex
}

// check if SessionUsecase implements ISessionUseCase
var _ usecasecontract.ISessionUseCase = (*SessionUsecase)(nil)

// NewSessionUsecase creates a new SessionUsecase instance.
func NewSessionUsecase(
	store contract.IEntityStore,
	engine *ledger.Engine,
	tokens TokenService,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	validator usecasecontract.IValidator,
	ids contract.IUUIDGenerator,
) *SessionUsecase {
	return &SessionUsecase{
		store:     store,
		engine:    engine,
		tokens:    tokens,
		logger:    logger,
		config:    cfg,
		validator: validator,
		ids:       ids,
		sessions:  newSessionRegistry(),
	}
}

// SetMailService wires the optional admin-notification mail service.
func (uc *SessionUsecase) SetMailService(mail contract.IEmailService) {
	uc.mail = mail
}

// SetLeaderboardCache wires the optional Redis leaderboard cache.
func (uc *SessionUsecase) SetLeaderboardCache(cache usecasecontract.ILeaderboardCache) {
	uc.lbCache = cache
}

// EnsureAdmin creates the bootstrap ADMIN user if it does not exist yet.
// ADMIN is never reachable by promotion, so this is the only way in.
func (uc *SessionUsecase) EnsureAdmin(ctx context.Context) error {
	name := uc.config.GetAdminName()
	if name == "" {
		return nil
	}
	users, err := uc.store.GetUsers(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSyncFailure, err)
	}
	for _, u := range users {
		if u.Role == entity.UserRoleAdmin {
			return nil
		}
	}
	admin := entity.User{
		ID:       uc.ids.NewUUID(),
		Name:     name,
		Role:     entity.UserRoleAdmin,
		Points:   0,
		Level:    entity.LevelForPoints(0),
		JoinedAt: time.Now(),
	}
	uc.usersWriteMu.Lock()
	defer uc.usersWriteMu.Unlock()
	if err := uc.store.ReplaceUsers(ctx, append(users, admin)); err != nil {
		return fmt.Errorf("%w: %v", ErrSyncFailure, err)
	}
	uc.logger.Infof("bootstrap admin %q created", name)
	return nil
}

// Login resolves a name against the user collection and opens a session.
// The session blocks in a loading state until the initial full fetch of all
// three collections completes.
func (uc *SessionUsecase) Login(ctx context.Context, name, deviceDetails string) (*usecasecontract.SessionView, string, error) {
	if err := uc.validator.ValidateName(name); err != nil {
		return nil, "", err
	}

	snap, err := uc.loadSnapshot(ctx)
	if err != nil {
		return nil, "", err
	}

	next, dirty, result, err := uc.engine.Login(snap, name, deviceDetails)
	if err != nil {
		if errors.Is(err, ledger.ErrAccessDenied) {
			uc.logger.Warnf("login denied for blacklisted name %q", name)
		}
		return nil, "", err
	}

	s := &session{
		id:     uc.ids.NewUUID(),
		userID: result.User.ID,
		snap:   next,
		state:  usecasecontract.SessionActive,
	}
	if result.Status == ledger.StatusPending {
		s.state = usecasecontract.SessionPending
	}

	if dirty.Users {
		if err := uc.persistUsers(ctx, next.Users); err != nil {
			return nil, "", err
		}
		uc.notifyAdminOfRecruit(result.User)
	}

	syncCtx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	uc.sessions.put(s)
	metrics.ActiveSessions.Inc()
	go uc.runSync(syncCtx, s)

	token, err := uc.tokens.GenerateSessionToken(s.id, s.userID, result.User.Role)
	if err != nil {
		uc.logger.Errorf("failed to sign session token: %v", err)
		uc.dropSession(s)
		return nil, "", errors.New("failed to create session")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	metrics.ActionsTotal.WithLabelValues("login").Inc()
	return s.view(), token, nil
}

// Resolve maps a signed token to its live session view.
func (uc *SessionUsecase) Resolve(ctx context.Context, token string) (*usecasecontract.SessionView, error) {
	claims, err := uc.tokens.ParseSessionToken(token)
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}
	s, ok := uc.sessions.get(claims.SessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(), nil
}

// Me returns the session view. A forced-logout notice is delivered exactly
// once: reporting a logged-out session also removes it.
func (uc *SessionUsecase) Me(ctx context.Context, sessionID string) (*usecasecontract.SessionView, error) {
	s, ok := uc.sessions.get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.mu.Lock()
	v := s.view()
	s.mu.Unlock()
	if v.State == usecasecontract.SessionLoggedOut {
		uc.dropSession(s)
	}
	return v, nil
}

// CancelPending abandons the approval wait state. The PENDING user record
// stays in the store; only the session goes away.
func (uc *SessionUsecase) CancelPending(ctx context.Context, sessionID string) error {
	s, ok := uc.sessions.get(sessionID)
	if !ok {
		return ErrSessionNotFound
	}
	s.mu.Lock()
	pending := s.state == usecasecontract.SessionPending
	s.mu.Unlock()
	if !pending {
		return ErrSessionNotActive
	}
	uc.dropSession(s)
	return nil
}

// Logout closes the session.
func (uc *SessionUsecase) Logout(ctx context.Context, sessionID string) error {
	s, ok := uc.sessions.get(sessionID)
	if !ok {
		return ErrSessionNotFound
	}
	uc.dropSession(s)
	metrics.ActionsTotal.WithLabelValues("logout").Inc()
	return nil
}

// --- user actions ---

// ListUsers returns the session's local copy of the user collection.
func (uc *SessionUsecase) ListUsers(ctx context.Context, sessionID string) ([]entity.User, error) {
	s, err := uc.activeSession(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Clone().Users, nil
}

// ListPendingUsers returns waiting recruits. Admin only.
func (uc *SessionUsecase) ListPendingUsers(ctx context.Context, sessionID string) ([]entity.User, error) {
	s, err := uc.adminSession(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var pending []entity.User
	for _, u := range s.snap.Users {
		if u.Role == entity.UserRolePending {
			pending = append(pending, u.Clone())
		}
	}
	return pending, nil
}

// ApproveUser promotes a pending recruit to BOY. Admin only.
func (uc *SessionUsecase) ApproveUser(ctx context.Context, sessionID, targetID string) error {
	s, err := uc.adminSession(sessionID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next, dirty := uc.engine.Approve(s.snap, targetID)
	s.snap = next
	metrics.ActionsTotal.WithLabelValues("approve_user").Inc()
	return uc.persistDirty(ctx, s, dirty)
}

// RejectUser blacklists a user. Admin only.
func (uc *SessionUsecase) RejectUser(ctx context.Context, sessionID, targetID string) error {
	s, err := uc.adminSession(sessionID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next, dirty := uc.engine.Reject(s.snap, targetID)
	s.snap = next
	metrics.ActionsTotal.WithLabelValues("reject_user").Inc()
	return uc.persistDirty(ctx, s, dirty)
}

// UpdateProfile sets the session user's avatar and/or custom tags.
func (uc *SessionUsecase) UpdateProfile(ctx context.Context, sessionID string, avatar *string, tags *[]string) (*entity.User, error) {
	s, err := uc.activeSession(sessionID)
	if err != nil {
		return nil, err
	}
	if avatar != nil {
		if err := uc.validator.ValidateAvatar(*avatar); err != nil {
			return nil, err
		}
	}
	if tags != nil {
		if err := uc.validator.ValidateCustomTags(*tags); err != nil {
			return nil, err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next, dirty, _ := uc.engine.UpdateProfile(s.snap, s.userID, ledger.ProfileUpdate{Avatar: avatar, CustomTags: tags})
	s.snap = next
	metrics.ActionsTotal.WithLabelValues("update_profile").Inc()
	if err := uc.persistDirty(ctx, s, dirty); err != nil {
		return nil, err
	}
	return &s.view().User, nil
}

// Leaderboard ranks active members by points, cached briefly in Redis when
// a cache is wired.
func (uc *SessionUsecase) Leaderboard(ctx context.Context) ([]usecasecontract.LeaderboardEntry, error) {
	if uc.lbCache != nil {
		if entries, ok, err := uc.lbCache.GetLeaderboard(ctx); err == nil && ok {
			return entries, nil
		}
	}
	users, err := uc.store.GetUsers(ctx)
	if err != nil {
		metrics.SyncFailuresTotal.Inc()
		return nil, fmt.Errorf("%w: %v", ErrSyncFailure, err)
	}
	var entries []usecasecontract.LeaderboardEntry
	for _, u := range users {
		if !u.IsActiveMember() {
			continue
		}
		entries = append(entries, usecasecontract.LeaderboardEntry{
			UserID: u.ID,
			Name:   u.Name,
			Points: u.Points,
			Level:  u.Level,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Points > entries[j].Points })
	if uc.lbCache != nil {
		if err := uc.lbCache.SetLeaderboard(ctx, entries); err != nil {
			uc.logger.Warnf("failed to cache leaderboard: %v", err)
		}
	}
	return entries, nil
}

// --- task actions ---

// ListTasks returns the session's local copy of the task collection.
func (uc *SessionUsecase) ListTasks(ctx context.Context, sessionID string) ([]entity.Task, error) {
	s, err := uc.activeSession(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Clone().Tasks, nil
}

// CreateTask adds a new task. Admin only.
func (uc *SessionUsecase) CreateTask(ctx context.Context, sessionID string, draft ledger.TaskDraft) (*entity.Task, error) {
	s, err := uc.adminSession(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next, dirty, task := uc.engine.CreateTask(s.snap, s.userID, draft)
	s.snap = next
	metrics.ActionsTotal.WithLabelValues("create_task").Inc()
	if err := uc.persistDirty(ctx, s, dirty); err != nil {
		return nil, err
	}
	return &task, nil
}

// ClaimTask collects a task reward for the session user.
func (uc *SessionUsecase) ClaimTask(ctx context.Context, sessionID, taskID string) (*ledger.ClaimResult, error) {
	s, err := uc.activeSession(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next, dirty, result := uc.engine.ClaimTask(s.snap, s.userID, taskID)
	s.snap = next
	metrics.ActionsTotal.WithLabelValues("claim_task").Inc()
	if err := uc.persistDirty(ctx, s, dirty); err != nil {
		return &result, err
	}
	return &result, nil
}

// --- question actions ---

// ListQuestions returns the session's local copy of the question collection.
func (uc *SessionUsecase) ListQuestions(ctx context.Context, sessionID string) ([]entity.Question, error) {
	s, err := uc.activeSession(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Clone().Questions, nil
}

// PostQuestion submits a council question authored by the session user.
func (uc *SessionUsecase) PostQuestion(ctx context.Context, sessionID, title, content string) (*entity.Question, error) {
	s, err := uc.activeSession(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next, dirty, question, ok := uc.engine.PostQuestion(s.snap, s.userID, title, content)
	if !ok {
		return nil, ErrSessionNotActive
	}
	s.snap = next
	metrics.ActionsTotal.WithLabelValues("post_question").Inc()
	if err := uc.persistDirty(ctx, s, dirty); err != nil {
		return nil, err
	}
	return &question, nil
}

// VoteQuestion casts an up or down vote for the session user.
func (uc *SessionUsecase) VoteQuestion(ctx context.Context, sessionID, questionID string, direction ledger.VoteDirection) (*ledger.VoteResult, error) {
	s, err := uc.activeSession(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next, dirty, result := uc.engine.VoteQuestion(s.snap, s.userID, questionID, direction)
	s.snap = next
	metrics.ActionsTotal.WithLabelValues("vote_question").Inc()
	if err := uc.persistDirty(ctx, s, dirty); err != nil {
		return &result, err
	}
	return &result, nil
}

// AddSolution proposes a solution authored by the session user.
func (uc *SessionUsecase) AddSolution(ctx context.Context, sessionID, questionID, content string) (*entity.Solution, error) {
	s, err := uc.activeSession(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next, dirty, solution, ok := uc.engine.AddSolution(s.snap, s.userID, questionID, content)
	if !ok {
		return nil, nil
	}
	s.snap = next
	metrics.ActionsTotal.WithLabelValues("add_solution").Inc()
	if err := uc.persistDirty(ctx, s, dirty); err != nil {
		return nil, err
	}
	return &solution, nil
}

// VoteSolution casts the session user's single solution vote on a question.
func (uc *SessionUsecase) VoteSolution(ctx context.Context, sessionID, questionID, solutionID string) (bool, error) {
	s, err := uc.activeSession(sessionID)
	if err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next, dirty, applied := uc.engine.VoteSolution(s.snap, s.userID, questionID, solutionID)
	s.snap = next
	metrics.ActionsTotal.WithLabelValues("vote_solution").Inc()
	if err := uc.persistDirty(ctx, s, dirty); err != nil {
		return applied, err
	}
	return applied, nil
}

// MarkBestAnswer designates the winning solution. Admin only.
func (uc *SessionUsecase) MarkBestAnswer(ctx context.Context, sessionID, questionID, solutionID string) (bool, error) {
	s, err := uc.adminSession(sessionID)
	if err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next, dirty, applied := uc.engine.MarkBestAnswer(s.snap, questionID, solutionID)
	s.snap = next
	metrics.ActionsTotal.WithLabelValues("mark_best_answer").Inc()
	if err := uc.persistDirty(ctx, s, dirty); err != nil {
		return applied, err
	}
	return applied, nil
}

// --- internals ---

// loadSnapshot is the blocking initial fetch of all three collections.
func (uc *SessionUsecase) loadSnapshot(ctx context.Context) (entity.Snapshot, error) {
	users, err := uc.store.GetUsers(ctx)
	if err != nil {
		metrics.SyncFailuresTotal.Inc()
		return entity.Snapshot{}, fmt.Errorf("%w: users: %v", ErrSyncFailure, err)
	}
	tasks, err := uc.store.GetTasks(ctx)
	if err != nil {
		metrics.SyncFailuresTotal.Inc()
		return entity.Snapshot{}, fmt.Errorf("%w: tasks: %v", ErrSyncFailure, err)
	}
	questions, err := uc.store.GetQuestions(ctx)
	if err != nil {
		metrics.SyncFailuresTotal.Inc()
		return entity.Snapshot{}, fmt.Errorf("%w: questions: %v", ErrSyncFailure, err)
	}
	return entity.Snapshot{Users: users, Tasks: tasks, Questions: questions}, nil
}

// persistDirty writes back every collection an action changed. The local
// snapshot was already updated optimistically; a failed write leaves it
// stale-but-functional and surfaces the failure to the caller.
func (uc *SessionUsecase) persistDirty(ctx context.Context, s *session, dirty ledger.Dirty) error {
	if !dirty.Any() {
		return nil
	}
	if dirty.Users {
		if err := uc.persistUsers(ctx, s.snap.Users); err != nil {
			return err
		}
	}
	if dirty.Tasks {
		uc.tasksWriteMu.Lock()
		err := uc.store.ReplaceTasks(ctx, s.snap.Tasks)
		uc.tasksWriteMu.Unlock()
		if err != nil {
			metrics.SyncFailuresTotal.Inc()
			uc.logger.Errorf("failed to replace tasks: %v", err)
			return fmt.Errorf("%w: tasks: %v", ErrSyncFailure, err)
		}
	}
	if dirty.Questions {
		uc.questionsWriteMu.Lock()
		err := uc.store.ReplaceQuestions(ctx, s.snap.Questions)
		uc.questionsWriteMu.Unlock()
		if err != nil {
			metrics.SyncFailuresTotal.Inc()
			uc.logger.Errorf("failed to replace questions: %v", err)
			return fmt.Errorf("%w: questions: %v", ErrSyncFailure, err)
		}
	}
	return nil
}

func (uc *SessionUsecase) persistUsers(ctx context.Context, users []entity.User) error {
	uc.usersWriteMu.Lock()
	err := uc.store.ReplaceUsers(ctx, users)
	uc.usersWriteMu.Unlock()
	if err != nil {
		metrics.SyncFailuresTotal.Inc()
		uc.logger.Errorf("failed to replace users: %v", err)
		return fmt.Errorf("%w: users: %v", ErrSyncFailure, err)
	}
	if uc.lbCache != nil {
		if err := uc.lbCache.InvalidateLeaderboard(context.WithoutCancel(ctx)); err != nil {
			uc.logger.Warnf("failed to invalidate leaderboard cache: %v", err)
		}
	}
	return nil
}

// notifyAdminOfRecruit emails the admin about a new pending recruit.
// Best effort only; a failure is logged and forgotten.
func (uc *SessionUsecase) notifyAdminOfRecruit(recruit entity.User) {
	if uc.mail == nil || uc.config.GetAdminEmail() == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		subject := "New recruit awaiting approval"
		body := fmt.Sprintf("Recruit %q requested access.\nDevice: %s\nReview at %s", recruit.Name, recruit.DeviceDetails, uc.config.GetAppBaseURL())
		if err := uc.mail.SendEmail(ctx, uc.config.GetAdminEmail(), subject, body); err != nil {
			uc.logger.Warnf("failed to notify admin of recruit %s: %v", recruit.ID, err)
		}
	}()
}

func (uc *SessionUsecase) activeSession(sessionID string) (*session, error) {
	s, ok := uc.sessions.get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != usecasecontract.SessionActive {
		return nil, ErrSessionNotActive
	}
	me := s.snap.UserByID(s.userID)
	if me == nil || !me.IsActiveMember() {
		return nil, ErrNotAuthorized
	}
	return s, nil
}

func (uc *SessionUsecase) adminSession(sessionID string) (*session, error) {
	s, err := uc.activeSession(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	admin := s.role() == entity.UserRoleAdmin
	s.mu.Unlock()
	if !admin {
		return nil, ErrNotAuthorized
	}
	return s, nil
}

func (uc *SessionUsecase) dropSession(s *session) {
	if s.cancel != nil {
		s.cancel()
	}
	if uc.sessions.remove(s.id) {
		metrics.ActiveSessions.Dec()
	}
}
