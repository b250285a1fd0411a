package ledger

import (
	"time"

	"github.com/samikassu/crewboard/internal/domain/entity"
)

// TaskDraft is the admin-supplied definition of a new task.
type TaskDraft struct {
	Title       string
	Description string
	Points      int
	Type        entity.TaskType
	Category    entity.TaskCategory
	IsGroupTask bool
	ExpiresAt   *time.Time
}

// CreateTask prepends a new task authored by the given admin.
func (e *Engine) CreateTask(snap entity.Snapshot, adminID string, draft TaskDraft) (entity.Snapshot, Dirty, entity.Task) {
	task := entity.Task{
		ID:          e.ids.NewUUID(),
		Title:       draft.Title,
		Description: draft.Description,
		Points:      draft.Points,
		Type:        draft.Type,
		Category:    draft.Category,
		CreatedBy:   adminID,
		IsGroupTask: draft.IsGroupTask,
		CompletedBy: []string{},
		CreatedAt:   e.now(),
		ExpiresAt:   draft.ExpiresAt,
	}
	next := snap.Clone()
	next.Tasks = append([]entity.Task{task}, next.Tasks...)
	return next, Dirty{Tasks: true}, task
}

// ClaimResult reports what a claim did.
type ClaimResult struct {
	Applied       bool
	PointsAwarded int
}

// ClaimTask records that a user completed a task and collects the reward.
// Claims are irreversible and idempotent: a missing task or a repeat claim
// is a silent no-op. For group tasks the fixed pool is re-split among all
// completers with floor division, so every prior completer is adjusted by
// the difference between the new share and their old share. The prior
// completer count is read before the claimant is appended, which keeps the
// claimant out of the adjustment pass.
func (e *Engine) ClaimTask(snap entity.Snapshot, claimantID, taskID string) (entity.Snapshot, Dirty, ClaimResult) {
	task := snap.TaskByID(taskID)
	if task == nil || task.CompletedByUser(claimantID) {
		return snap, Dirty{}, ClaimResult{}
	}
	if snap.UserByID(claimantID) == nil {
		return snap, Dirty{}, ClaimResult{}
	}

	next := snap.Clone()
	nextTask := next.TaskByID(taskID)

	awarded := nextTask.Points
	if nextTask.IsGroupTask {
		prior := append([]string(nil), nextTask.CompletedBy...)
		newShare := nextTask.Points / (len(prior) + 1)
		awarded = newShare
		if len(prior) > 0 {
			oldShare := nextTask.Points / len(prior)
			delta := newShare - oldShare
			for _, id := range prior {
				if u := next.UserByID(id); u != nil {
					u.Points += delta
					u.Level = entity.LevelForPoints(u.Points)
				}
			}
		}
	}

	nextTask.CompletedBy = append(nextTask.CompletedBy, claimantID)
	claimant := next.UserByID(claimantID)
	claimant.Points += awarded
	claimant.Level = entity.LevelForPoints(claimant.Points)

	return next, Dirty{Users: true, Tasks: true}, ClaimResult{Applied: true, PointsAwarded: awarded}
}
