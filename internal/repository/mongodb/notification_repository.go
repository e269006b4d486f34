package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mamadbah2/dairyfarm/internal/domain/models"
)

// NotificationRepository stores scheduled notifications.
type NotificationRepository struct {
	collection *mongo.Collection
}

// NewNotificationRepository creates a new instance of NotificationRepository.
func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{collection: db.Collection(notificationsCollection)}
}

// CreateNotification inserts a notification and assigns the generated id.
func (r *NotificationRepository) CreateNotification(ctx context.Context, notification *models.Notification) error {
	result, err := r.collection.InsertOne(ctx, notification)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		notification.ID = id
	}
	return nil
}

// ListNotifications returns every notification.
func (r *NotificationRepository) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	return r.find(ctx, bson.M{})
}

// FindDue returns notifications whose datetime is at or before now.
func (r *NotificationRepository) FindDue(ctx context.Context, now time.Time) ([]models.Notification, error) {
	return r.find(ctx, bson.M{"datetime": bson.M{"$lte": now}})
}

func (r *NotificationRepository) find(ctx context.Context, filter bson.M) ([]models.Notification, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}
	defer cursor.Close(ctx)

	notifications := []models.Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return notifications, nil
}
