package usecase

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/samikassu/crewboard/internal/domain/entity"
	"github.com/samikassu/crewboard/internal/metrics"
	usecasecontract "github.com/samikassu/crewboard/internal/usecase/contract"
)

// sessionRegistry is the live session map.
type sessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{sessions: make(map[string]*session)}
}

func (r *sessionRegistry) put(s *session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.id] = s
}

func (r *sessionRegistry) get(id string) (*session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

func (r *sessionRegistry) remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return false
	}
	delete(r.sessions, id)
	return true
}

// runSync is the per-session poll loop: every interval it re-fetches the
// user collection and reconciles it into the local snapshot. Overlapping
// polls are avoided by the interval being longer than an expected round
// trip, not by mutual exclusion; an in-flight poll is never cancelled.
func (uc *SessionUsecase) runSync(ctx context.Context, s *session) {
	ticker := time.NewTicker(uc.config.GetPollInterval())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			uc.pollOnce(ctx, s)
		}
	}
}

// pollOnce fetches fresh users and merges them in. A failed fetch leaves
// local state untouched; the next interval simply retries. While the session
// is pending, each poll also checks the session's own record for an admin
// decision.
func (uc *SessionUsecase) pollOnce(ctx context.Context, s *session) {
	remote, err := uc.store.GetUsers(ctx)
	if err != nil {
		metrics.SyncFailuresTotal.Inc()
		uc.logger.Warnf("user poll failed for session %s: %v", s.id, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.Users = mergeUsers(s.snap.Users, remote)

	if s.state != usecasecontract.SessionPending {
		return
	}
	me := s.snap.UserByID(s.userID)
	if me == nil {
		return
	}
	switch me.Role {
	case entity.UserRoleBoy, entity.UserRoleAdmin:
		s.state = usecasecontract.SessionActive
		uc.logger.Infof("session %s approved, now active", s.id)
	case entity.UserRoleRejected:
		s.state = usecasecontract.SessionLoggedOut
		s.notice = "CONNECTION TERMINATED: ACCESS DENIED BY ADMIN."
		if s.cancel != nil {
			s.cancel()
		}
		uc.logger.Infof("session %s rejected, forcing logout", s.id)
	}
}

// mergeUsers reconciles the local user list with a freshly fetched one.
// Semantics are wholesale last-writer-wins: if anything differs the remote
// copy replaces the local copy entirely. Local mutations racing with the
// poll can therefore be lost; that risk is part of the store contract and
// deliberately not hidden here.
func mergeUsers(local, remote []entity.User) []entity.User {
	if reflect.DeepEqual(local, remote) {
		return local
	}
	return remote
}
