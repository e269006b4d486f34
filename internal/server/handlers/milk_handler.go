package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/dairyfarm/internal/domain/models"
	"github.com/mamadbah2/dairyfarm/internal/service/milk"
)

// MilkService describes the milk ledger operations.
type MilkService interface {
	RecordProduction(ctx context.Context, req models.ProductionRequest) (*models.MilkEntry, error)
	RecordUsage(ctx context.Context, req models.UsageRequest) (*models.MilkEntry, error)
	GenerateStatements(ctx context.Context) string
}

// MilkHandler serves the milk ledger routes.
type MilkHandler struct {
	svc    MilkService
	logger *zap.Logger
}

// NewMilkHandler constructs the HTTP handler adapter.
func NewMilkHandler(svc MilkService, logger *zap.Logger) *MilkHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MilkHandler{svc: svc, logger: logger}
}

type productionPayload struct {
	TimeOfDay string      `json:"timeOfDay"`
	Amount    *jsonNumber `json:"amount"`
	Date      jsonDate    `json:"date"`
}

type usagePayload struct {
	Usage    string      `json:"usage"`
	Quantity *jsonNumber `json:"quantity"`
}

// TimeOfDayOptions returns the fixed time of day catalog.
func (h *MilkHandler) TimeOfDayOptions(c *gin.Context) {
	c.JSON(http.StatusOK, milk.TimeOfDayOptions())
}

// UsageOptions returns the fixed usage catalog.
func (h *MilkHandler) UsageOptions(c *gin.Context) {
	c.JSON(http.StatusOK, milk.UsageOptions())
}

// RecordProduction appends a production entry. A zero or negative amount is
// answered like a missing one.
func (h *MilkHandler) RecordProduction(c *gin.Context) {
	var payload productionPayload
	if !bindJSON(c, h.logger, &payload) {
		return
	}

	date, err := payload.Date.Time()
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	_, err = h.svc.RecordProduction(c.Request.Context(), models.ProductionRequest{
		TimeOfDay: payload.TimeOfDay,
		Amount:    payload.Amount.Float(),
		Date:      date,
	})
	switch {
	case errors.Is(err, milk.ErrTimeOfDayRequired), errors.Is(err, milk.ErrAmountRequired):
		respondError(c, http.StatusBadRequest, capitalize(err.Error()))
		return
	case err != nil:
		h.logger.Error("failed to record milk production", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to record milk production")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Milk production recorded successfully"})
}

// RecordUsage appends a usage entry when enough milk was produced. A zero or
// negative quantity is answered like a missing one.
func (h *MilkHandler) RecordUsage(c *gin.Context) {
	var payload usagePayload
	if !bindJSON(c, h.logger, &payload) {
		return
	}

	entry, err := h.svc.RecordUsage(c.Request.Context(), models.UsageRequest{
		Usage:    payload.Usage,
		Quantity: payload.Quantity.Float(),
	})
	switch {
	case errors.Is(err, milk.ErrUsageRequired), errors.Is(err, milk.ErrUsageExceedsProduction):
		respondError(c, http.StatusBadRequest, capitalize(err.Error()))
		return
	case err != nil:
		h.logger.Error("failed to record milk usage", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to record milk usage.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Milk usage recorded successfully.", "milkUsage": entry})
}

// GenerateStatements acknowledges a statement request.
func (h *MilkHandler) GenerateStatements(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": h.svc.GenerateStatements(c.Request.Context())})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
