package contract

import (
	"context"

	"github.com/samikassu/crewboard/internal/domain/entity"
)

// IEntityStore is the durable home of the shared collections. The contract is
// deliberately coarse: get the whole collection, replace the whole collection.
// Replace is last-writer-wins with no cross-request isolation; two sessions
// replacing the same collection from stale snapshots can clobber each other's
// writes. The names say "replace", not "patch", to keep that risk visible.
type IEntityStore interface {
	GetUsers(ctx context.Context) ([]entity.User, error)
	ReplaceUsers(ctx context.Context, users []entity.User) error

	GetTasks(ctx context.Context) ([]entity.Task, error)
	ReplaceTasks(ctx context.Context, tasks []entity.Task) error

	GetQuestions(ctx context.Context) ([]entity.Question, error)
	ReplaceQuestions(ctx context.Context, questions []entity.Question) error
}
