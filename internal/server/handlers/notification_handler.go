package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/dairyfarm/internal/domain/models"
)

// NotificationService describes the notification store operations.
type NotificationService interface {
	List(ctx context.Context) ([]models.Notification, error)
	Create(ctx context.Context, notification models.Notification) (*models.Notification, error)
}

// NotificationHandler serves /notifications.
type NotificationHandler struct {
	svc    NotificationService
	logger *zap.Logger
}

// NewNotificationHandler constructs the HTTP handler adapter.
func NewNotificationHandler(svc NotificationService, logger *zap.Logger) *NotificationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationHandler{svc: svc, logger: logger}
}

type notificationPayload struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Datetime    jsonDate `json:"datetime"`
}

// List returns every notification.
func (h *NotificationHandler) List(c *gin.Context) {
	notifications, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list notifications", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// Create stores a notification.
func (h *NotificationHandler) Create(c *gin.Context) {
	var payload notificationPayload
	if !bindJSON(c, h.logger, &payload) {
		return
	}

	datetime, err := payload.Datetime.Time()
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.svc.Create(c.Request.Context(), models.Notification{
		Title:       payload.Title,
		Description: payload.Description,
		Datetime:    datetime,
	})
	if err != nil {
		h.logger.Error("failed to create notification", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusCreated, created)
}
