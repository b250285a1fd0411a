package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/samikassu/crewboard/internal/domain/entity"
	usecasecontract "github.com/samikassu/crewboard/internal/usecase/contract"
)

// Constants for common error messages
const (
	errSessionNotFound = "session not found"
)

var (
	// ErrSessionNotFound means the token did not resolve to a live session.
	ErrSessionNotFound = errors.New(errSessionNotFound)
	// ErrNotAuthorized means the session's role does not permit the action.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrSessionNotActive means the session is pending or logged out.
	ErrSessionNotActive = errors.New("session not active")
	// ErrSyncFailure wraps a failed fetch or replace against the entity
	// store. Local state is left as it was; the caller sees the alert.
	ErrSyncFailure = errors.New("sync failure")
)

// TokenService signs and verifies session tokens.
type TokenService interface {
	GenerateSessionToken(sessionID, userID string, role entity.UserRole) (string, error)
	ParseSessionToken(token string) (*entity.Claims, error)
}

// session is one connected participant: its lifecycle state, the local
// working snapshot of the shared collections, and the poll-loop handle.
// All field access goes through mu; the sync goroutine and action handlers
// never run concurrently on the same session's state.
type session struct {
	id     string
	userID string

	mu     sync.Mutex
	state  usecasecontract.SessionState
	snap   entity.Snapshot
	notice string

	cancel context.CancelFunc
}

// view builds the handler-facing picture. Caller holds s.mu.
func (s *session) view() *usecasecontract.SessionView {
	v := &usecasecontract.SessionView{
		SessionID: s.id,
		State:     s.state,
		Notice:    s.notice,
	}
	if u := s.snap.UserByID(s.userID); u != nil {
		v.User = u.Clone()
	}
	return v
}

// role reads the session's own role from the local snapshot. Authorization
// always uses this live value, never the token claim.
func (s *session) role() entity.UserRole {
	if u := s.snap.UserByID(s.userID); u != nil {
		return u.Role
	}
	return entity.UserRolePending
}
