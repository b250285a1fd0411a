package memory

import (
	"context"
	"sync"

	"github.com/samikassu/crewboard/internal/domain/contract"
	"github.com/samikassu/crewboard/internal/domain/entity"
)

// MemoryEntityStore is an in-process entity store with the same
// replace-all, last-writer-wins contract as the Mongo store. It backs tests
// and local development without a database.
type MemoryEntityStore struct {
	mu        sync.Mutex
	users     []entity.User
	tasks     []entity.Task
	questions []entity.Question
}

// NewMemoryEntityStore creates an empty store.
func NewMemoryEntityStore() *MemoryEntityStore {
	return &MemoryEntityStore{}
}

// Ensure MemoryEntityStore implements the store contract
var _ contract.IEntityStore = (*MemoryEntityStore)(nil)

func (s *MemoryEntityStore) GetUsers(ctx context.Context) ([]entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneUsers(s.users), nil
}

func (s *MemoryEntityStore) ReplaceUsers(ctx context.Context, users []entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = cloneUsers(users)
	return nil
}

func (s *MemoryEntityStore) GetTasks(ctx context.Context) ([]entity.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTasks(s.tasks), nil
}

func (s *MemoryEntityStore) ReplaceTasks(ctx context.Context, tasks []entity.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = cloneTasks(tasks)
	return nil
}

func (s *MemoryEntityStore) GetQuestions(ctx context.Context) ([]entity.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneQuestions(s.questions), nil
}

func (s *MemoryEntityStore) ReplaceQuestions(ctx context.Context, questions []entity.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions = cloneQuestions(questions)
	return nil
}

func cloneUsers(users []entity.User) []entity.User {
	out := make([]entity.User, len(users))
	for i, u := range users {
		out[i] = u.Clone()
	}
	return out
}

func cloneTasks(tasks []entity.Task) []entity.Task {
	out := make([]entity.Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}

func cloneQuestions(questions []entity.Question) []entity.Question {
	out := make([]entity.Question, len(questions))
	for i, q := range questions {
		out[i] = q.Clone()
	}
	return out
}
