package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/dairyfarm/internal/repository"
)

// Collection names.
const (
	usersCollection         = "users"
	cattleCollection        = "cattles"
	milkCollection          = "milks"
	expensesCollection      = "expenses"
	notificationsCollection = "notifications"
)

// Store owns the process-wide MongoDB client shared by every repository.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewStore connects to MongoDB and verifies the connection.
func NewStore(ctx context.Context, uri string, dbName string, timeout time.Duration) (*Store, error) {
	clientOptions := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(timeout).
		SetConnectTimeout(timeout)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Store{client: client, db: client.Database(dbName)}, nil
}

// EnsureIndexes creates the indexes the repositories rely on. The email
// index is not unique; duplicate signups are rejected by the user service.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create users email index: %w", err)
	}

	_, err = s.db.Collection(notificationsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "datetime", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create notifications datetime index: %w", err)
	}

	return nil
}

// Repositories builds every repository on top of the shared database handle.
func (s *Store) Repositories() repository.Repositories {
	return NewRepositories(s.db)
}

// NewRepositories builds the MongoDB repositories for db.
func NewRepositories(db *mongo.Database) repository.Repositories {
	return repository.Repositories{
		Users:         NewUserRepository(db),
		Cattle:        NewCattleRepository(db),
		Milk:          NewMilkRepository(db),
		Expenses:      NewExpenseRepository(db),
		Notifications: NewNotificationRepository(db),
	}
}

// Ping checks that the server is still reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Close closes the MongoDB connection.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
