package ledger

import (
	"strings"

	"github.com/samikassu/crewboard/internal/domain/entity"
)

// SessionStatus is the session state a login lands in.
type SessionStatus string

const (
	StatusActive  SessionStatus = "active"
	StatusPending SessionStatus = "pending"
)

// LoginResult describes the outcome of a login/register transform.
type LoginResult struct {
	User    entity.User
	Status  SessionStatus
	Created bool
}

// Login resolves a candidate name against the user collection. Names are
// matched trimmed and case-insensitively. A REJECTED record blocks the name
// forever; a PENDING record re-enters the wait state unchanged; BOY/ADMIN
// log straight in. An unknown name registers a new PENDING user with the
// device fingerprint captured verbatim.
func (e *Engine) Login(snap entity.Snapshot, name, deviceDetails string) (entity.Snapshot, Dirty, LoginResult, error) {
	name = strings.TrimSpace(name)
	for i := range snap.Users {
		if !strings.EqualFold(snap.Users[i].Name, name) {
			continue
		}
		existing := snap.Users[i].Clone()
		switch existing.Role {
		case entity.UserRoleRejected:
			return snap, Dirty{}, LoginResult{}, ErrAccessDenied
		case entity.UserRolePending:
			return snap, Dirty{}, LoginResult{User: existing, Status: StatusPending}, nil
		default:
			return snap, Dirty{}, LoginResult{User: existing, Status: StatusActive}, nil
		}
	}

	next := snap.Clone()
	newUser := entity.User{
		ID:            e.ids.NewUUID(),
		Name:          name,
		Role:          entity.UserRolePending,
		Points:        0,
		Level:         entity.LevelForPoints(0),
		JoinedAt:      e.now(),
		DeviceDetails: deviceDetails,
	}
	next.Users = append(next.Users, newUser)
	return next, Dirty{Users: true}, LoginResult{User: newUser, Status: StatusPending, Created: true}, nil
}

// Approve moves a PENDING user to BOY. Approving an already-BOY user is a
// no-op, and REJECTED is terminal, so only the PENDING edge mutates.
func (e *Engine) Approve(snap entity.Snapshot, targetID string) (entity.Snapshot, Dirty) {
	target := snap.UserByID(targetID)
	if target == nil || target.Role != entity.UserRolePending {
		return snap, Dirty{}
	}
	next := snap.Clone()
	next.UserByID(targetID).Role = entity.UserRoleBoy
	return next, Dirty{Users: true}
}

// Reject sets the target's role to REJECTED. Rejecting an already-REJECTED
// user is a no-op; an ADMIN cannot be rejected.
func (e *Engine) Reject(snap entity.Snapshot, targetID string) (entity.Snapshot, Dirty) {
	target := snap.UserByID(targetID)
	if target == nil || target.Role == entity.UserRoleRejected || target.Role == entity.UserRoleAdmin {
		return snap, Dirty{}
	}
	next := snap.Clone()
	next.UserByID(targetID).Role = entity.UserRoleRejected
	return next, Dirty{Users: true}
}
