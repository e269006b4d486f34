package notifications

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/mamadbah2/dairyfarm/internal/domain/models"
	"github.com/mamadbah2/dairyfarm/internal/repository"
)

// Sender delivers a due notification somewhere.
type Sender interface {
	Send(ctx context.Context, notification models.Notification) error
}

// Service stores notifications and reports the due ones.
//
// Notifications carry no "sent" marker: ScanDue reports a due notification
// on every call, forever (at-least-once, unbounded repeat).
type Service struct {
	repo    repository.NotificationRepository
	senders []Sender
	logger  *zap.Logger
	now     func() time.Time
}

// NewService wires a notification service. With no senders, due notifications
// are only logged.
func NewService(repo repository.NotificationRepository, logger *zap.Logger, senders ...Sender) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(senders) == 0 {
		senders = []Sender{NewLogSender(logger)}
	}
	return &Service{
		repo:    repo,
		senders: senders,
		logger:  logger,
		now:     time.Now,
	}
}

// List returns every notification.
func (s *Service) List(ctx context.Context) ([]models.Notification, error) {
	notifications, err := s.repo.ListNotifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

// Create stores a notification as received.
func (s *Service) Create(ctx context.Context, notification models.Notification) (*models.Notification, error) {
	notification.ID = primitive.NilObjectID
	if err := s.repo.CreateNotification(ctx, &notification); err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return &notification, nil
}

// ScanDue hands every notification due at the current time to each sender
// and returns them. A failing sender is logged and does not stop the scan.
func (s *Service) ScanDue(ctx context.Context) ([]models.Notification, error) {
	now := s.now()

	due, err := s.repo.FindDue(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("find due notifications: %w", err)
	}

	for _, notification := range due {
		for _, sender := range s.senders {
			if err := sender.Send(ctx, notification); err != nil {
				s.logger.Error("failed to send notification",
					zap.String("notification_id", notification.ID.Hex()),
					zap.Error(err))
			}
		}
	}

	return due, nil
}
