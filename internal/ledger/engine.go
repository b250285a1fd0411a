// Package ledger implements the pure shared-state transforms of the tracker:
// every action takes the current snapshot and returns a new one, leaving the
// input untouched. Persistence, serialization and authorization are the
// caller's concern.
package ledger

import (
	"errors"
	"time"

	"github.com/samikassu/crewboard/internal/domain/contract"
)

// ErrAccessDenied is returned when a blacklisted (REJECTED) name tries to
// log in. It is the only ledger condition surfaced as an error; everything
// else is a silent no-op by design.
var ErrAccessDenied = errors.New("access denied")

// Dirty names the collections an action changed, so the caller knows which
// replace-all writes to issue.
type Dirty struct {
	Users     bool
	Tasks     bool
	Questions bool
}

// Any reports whether the action changed anything at all.
func (d Dirty) Any() bool {
	return d.Users || d.Tasks || d.Questions
}

// Engine computes snapshot transforms. It holds no mutable state; the ID
// generator and clock are injected so transforms stay deterministic in tests.
type Engine struct {
	ids contract.IUUIDGenerator
	now func() time.Time
}

// NewEngine creates a ledger engine. A nil clock defaults to time.Now.
func NewEngine(ids contract.IUUIDGenerator, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{ids: ids, now: now}
}

