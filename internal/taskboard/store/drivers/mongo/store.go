package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection    = "users"
	tasksCollection    = "tasks"
	countersCollection = "counters"
)

// Store keeps users and tasks as documents. A task embeds its share list,
// so every multi-field write is a single-document update.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewStore connects to uri and verifies the server is reachable.
func NewStore(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &Store{client: client, db: client.Database(database)}, nil
}

func (s *Store) Close() error { return s.client.Disconnect(context.Background()) }

func (s *Store) Ping(ctx context.Context) error { return s.client.Ping(ctx, nil) }

func (s *Store) Users() store.Users {
	return &usersRepo{c: s.db.Collection(usersCollection)}
}

func (s *Store) Tasks() store.Tasks {
	return &tasksRepo{
		c:        s.db.Collection(tasksCollection),
		counters: s.db.Collection(countersCollection),
	}
}

// ApplyMigrations creates the indexes the repos rely on. Creating an index
// that already exists with the same spec is a no-op.
func (s *Store) ApplyMigrations(ctx context.Context) error {
	_, err := s.db.Collection(usersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "google_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	})
	if err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}

	_, err = s.db.Collection(tasksCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "shared_with.user_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "priority_rank", Value: 1}}},
		{Keys: bson.D{{Key: "due_date", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create task indexes: %w", err)
	}

	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return store.ErrNotFound
	}
	return err
}

func mapDuplicate(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", store.ErrAlreadyExists, err)
	}
	return err
}
