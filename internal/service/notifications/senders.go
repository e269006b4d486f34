package notifications

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/dairyfarm/internal/domain/models"
	"github.com/mamadbah2/dairyfarm/pkg/clients/whatsapp"
)

const sendTimeout = 10 * time.Second

// LogSender reports due notifications in the application log.
type LogSender struct {
	logger *zap.Logger
}

// NewLogSender builds a LogSender.
func NewLogSender(logger *zap.Logger) *LogSender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSender{logger: logger}
}

// Send logs the notification as sent.
func (l *LogSender) Send(_ context.Context, n models.Notification) error {
	fields := []zap.Field{
		zap.String("notification_id", n.ID.Hex()),
		zap.String("title", n.Title),
		zap.String("description", n.Description),
	}
	if n.Datetime != nil {
		fields = append(fields, zap.Time("datetime", *n.Datetime))
	}
	l.logger.Info("sending notification", fields...)
	return nil
}

// WhatsAppSender pushes due notifications to a single WhatsApp recipient.
type WhatsAppSender struct {
	client whatsapp.Client
	to     string
}

// NewWhatsAppSender builds a sender delivering to the given phone number.
func NewWhatsAppSender(client whatsapp.Client, to string) *WhatsAppSender {
	return &WhatsAppSender{client: client, to: to}
}

// Send delivers the notification title and description as a text message.
func (w *WhatsAppSender) Send(ctx context.Context, n models.Notification) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	_, err := w.client.SendTextMessage(ctxWithTimeout, whatsapp.SendTextMessageRequest{
		To:   w.to,
		Body: formatMessage(n),
	})
	if err != nil {
		return fmt.Errorf("whatsapp notification %s: %w", n.ID.Hex(), err)
	}
	return nil
}

func formatMessage(n models.Notification) string {
	if n.Description == "" {
		return n.Title
	}
	return fmt.Sprintf("%s\n%s", n.Title, n.Description)
}
