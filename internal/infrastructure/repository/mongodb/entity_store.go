package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/samikassu/crewboard/internal/domain/contract"
	"github.com/samikassu/crewboard/internal/domain/entity"
)

// MongoEntityStore persists the three shared collections. Replace is
// upsert-by-id per document: every document is rewritten wholesale, so
// nested completion and vote sets are fully re-synced on each write.
// Documents are never deleted; the tracker never removes entities.
type MongoEntityStore struct {
	users     *mongo.Collection
	tasks     *mongo.Collection
	questions *mongo.Collection
}

// NewMongoEntityStore builds the store over a database handle.
func NewMongoEntityStore(db *mongo.Database) *MongoEntityStore {
	return &MongoEntityStore{
		users:     db.Collection("users"),
		tasks:     db.Collection("tasks"),
		questions: db.Collection("questions"),
	}
}

// Ensure MongoEntityStore implements the store contract
var _ contract.IEntityStore = (*MongoEntityStore)(nil)

func (s *MongoEntityStore) GetUsers(ctx context.Context) ([]entity.User, error) {
	cursor, err := s.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	defer cursor.Close(ctx)
	users := []entity.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

func (s *MongoEntityStore) ReplaceUsers(ctx context.Context, users []entity.User) error {
	return replaceAll(ctx, s.users, users, func(u entity.User) string { return u.ID })
}

func (s *MongoEntityStore) GetTasks(ctx context.Context) ([]entity.Task, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.tasks.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}
	defer cursor.Close(ctx)
	tasks := []entity.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}
	return tasks, nil
}

func (s *MongoEntityStore) ReplaceTasks(ctx context.Context, tasks []entity.Task) error {
	return replaceAll(ctx, s.tasks, tasks, func(t entity.Task) string { return t.ID })
}

func (s *MongoEntityStore) GetQuestions(ctx context.Context) ([]entity.Question, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.questions.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch questions: %w", err)
	}
	defer cursor.Close(ctx)
	questions := []entity.Question{}
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, fmt.Errorf("failed to decode questions: %w", err)
	}
	return questions, nil
}

func (s *MongoEntityStore) ReplaceQuestions(ctx context.Context, questions []entity.Question) error {
	return replaceAll(ctx, s.questions, questions, func(q entity.Question) string { return q.ID })
}

// replaceAll writes the whole collection back as one unordered bulk of
// upsert-by-id replaces. There is no isolation across callers; the last
// replace wins.
func replaceAll[T any](ctx context.Context, coll *mongo.Collection, docs []T, id func(T) string) error {
	if len(docs) == 0 {
		return nil
	}
	models := make([]mongo.WriteModel, 0, len(docs))
	for _, doc := range docs {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": id(doc)}).
			SetReplacement(doc).
			SetUpsert(true))
	}
	opts := options.BulkWrite().SetOrdered(false)
	if _, err := coll.BulkWrite(ctx, models, opts); err != nil {
		return fmt.Errorf("failed to replace collection: %w", err)
	}
	return nil
}
