package entity

import (
	"time"
)

// TaskType classifies how long a task is expected to live.
type TaskType string

const (
	TaskTypeWeekly   TaskType = "WEEKLY"
	TaskTypeLongTerm TaskType = "LONG_TERM"
	TaskTypeSubGoal  TaskType = "SUB_GOAL"
)

// TaskCategory groups tasks by area of effort.
type TaskCategory string

const (
	TaskCategoryStudy   TaskCategory = "STUDY"
	TaskCategoryFitness TaskCategory = "FITNESS"
	TaskCategoryCoding  TaskCategory = "CODING"
	TaskCategoryOther   TaskCategory = "OTHER"
)

// Task is an admin-created objective with a fixed reward pool. Claims are
// monotonic: CompletedBy only ever grows, and a user appears in it at most
// once. Insertion order is meaningful for group reward redistribution.
type Task struct {
	ID          string       `bson:"_id,omitempty" json:"id"`
	Title       string       `bson:"title" json:"title"`
	Description string       `bson:"description" json:"description"`
	Points      int          `bson:"points" json:"points"`
	Type        TaskType     `bson:"type" json:"type"`
	Category    TaskCategory `bson:"category" json:"category"`
	CreatedBy   string       `bson:"created_by" json:"created_by"`
	IsGroupTask bool         `bson:"is_group_task" json:"is_group_task"`
	CompletedBy []string     `bson:"completed_by" json:"completed_by"`
	CreatedAt   time.Time    `bson:"created_at" json:"created_at"`
	ExpiresAt   *time.Time   `bson:"expires_at,omitempty" json:"expires_at,omitempty"`
}

// CompletedByUser reports whether the user already claimed this task.
func (t *Task) CompletedByUser(userID string) bool {
	for _, id := range t.CompletedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the task.
func (t Task) Clone() Task {
	c := t
	if t.CompletedBy != nil {
		c.CompletedBy = append([]string(nil), t.CompletedBy...)
	}
	if t.ExpiresAt != nil {
		exp := *t.ExpiresAt
		c.ExpiresAt = &exp
	}
	return c
}
