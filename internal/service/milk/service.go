package milk

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/dairyfarm/internal/domain/models"
	"github.com/mamadbah2/dairyfarm/internal/repository"
)

// StatementsMessage is returned by every statement generation request.
const StatementsMessage = "Milk statements generated successfully."

var (
	// ErrTimeOfDayRequired indicates a production entry without time of day.
	ErrTimeOfDayRequired = errors.New("please select a time of day")
	// ErrAmountRequired indicates a production entry without a positive amount.
	ErrAmountRequired = errors.New("please enter the amount")
	// ErrUsageRequired indicates a usage entry without usage or a positive quantity.
	ErrUsageRequired = errors.New("usage and quantity are required fields")
	// ErrUsageExceedsProduction indicates the requested quantity is above the produced amount.
	ErrUsageExceedsProduction = errors.New("milk usage cannot exceed milk production")
)

// StatementExporter publishes production totals outside the database.
type StatementExporter interface {
	ExportStatement(ctx context.Context, generatedAt time.Time, totals []models.ProductionTotal) error
}

// Service implements the milk ledger.
type Service struct {
	repo     repository.MilkRepository
	exporter StatementExporter
	logger   *zap.Logger
	now      func() time.Time
}

// NewService wires a new milk ledger. exporter may be nil.
func NewService(repo repository.MilkRepository, exporter StatementExporter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:     repo,
		exporter: exporter,
		logger:   logger,
		now:      time.Now,
	}
}

// TimeOfDayOptions lists the choices for a production entry, placeholder first.
func TimeOfDayOptions() []models.Option {
	return []models.Option{
		{Label: "Select Time of Day", Value: ""},
		{Label: "Morning", Value: "Morning"},
		{Label: "Afternoon", Value: "Afternoon"},
		{Label: "Evening", Value: "Evening"},
	}
}

// UsageOptions lists the choices for a usage entry, placeholder first.
func UsageOptions() []models.Option {
	return []models.Option{
		{Label: "Select Usage", Value: ""},
		{Label: "Cattle Feeding", Value: "Cattle Feeding"},
		{Label: "Selling", Value: "Selling"},
		{Label: "Home Consumption", Value: "Home Consumption"},
	}
}

// RecordProduction appends a production entry. date defaults to now. An amount
// that is absent, zero or negative fails with ErrAmountRequired.
func (s *Service) RecordProduction(ctx context.Context, req models.ProductionRequest) (*models.MilkEntry, error) {
	if strings.TrimSpace(req.TimeOfDay) == "" {
		return nil, ErrTimeOfDayRequired
	}
	if req.Amount == nil || *req.Amount <= 0 {
		return nil, ErrAmountRequired
	}

	entry := &models.MilkEntry{
		TimeOfDay: req.TimeOfDay,
		Amount:    *req.Amount,
		Date:      s.now(),
	}
	if req.Date != nil {
		entry.Date = *req.Date
	}

	if err := s.repo.CreateMilkEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("record milk production: %w", err)
	}

	s.logger.Debug("milk production recorded",
		zap.String("time_of_day", entry.TimeOfDay),
		zap.Float64("amount", entry.Amount))
	return entry, nil
}

// RecordUsage checks quantity against aggregated production and appends a
// usage entry. Production is summed over the whole ledger per time of day and
// only the first bucket (lowest time of day key) is compared.
func (s *Service) RecordUsage(ctx context.Context, req models.UsageRequest) (*models.MilkEntry, error) {
	if strings.TrimSpace(req.Usage) == "" || req.Quantity == nil || *req.Quantity <= 0 {
		return nil, ErrUsageRequired
	}

	totals, err := s.repo.ProductionTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("aggregate milk production: %w", err)
	}

	var produced models.ProductionTotal
	if len(totals) > 0 {
		produced = totals[0]
	}
	if len(totals) > 1 {
		s.logger.Warn("several time of day buckets, comparing usage against the first",
			zap.String("time_of_day", produced.TimeOfDay),
			zap.Int("buckets", len(totals)))
	}

	if *req.Quantity > produced.TotalAmount {
		return nil, ErrUsageExceedsProduction
	}

	entry := &models.MilkEntry{
		TimeOfDay: produced.TimeOfDay,
		Amount:    produced.TotalAmount,
		Date:      s.now(),
		Usage:     req.Usage,
		Quantity:  *req.Quantity,
	}

	if err := s.repo.CreateMilkEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("record milk usage: %w", err)
	}

	s.logger.Debug("milk usage recorded",
		zap.String("usage", entry.Usage),
		zap.Float64("quantity", entry.Quantity),
		zap.Float64("produced", entry.Amount))
	return entry, nil
}

// GenerateStatements returns the fixed statement message. When an exporter is
// configured the current totals are exported first; export failures are only logged.
func (s *Service) GenerateStatements(ctx context.Context) string {
	if s.exporter == nil {
		return StatementsMessage
	}

	totals, err := s.repo.ProductionTotals(ctx)
	if err != nil {
		s.logger.Warn("milk statement export skipped", zap.Error(err))
		return StatementsMessage
	}

	if err := s.exporter.ExportStatement(ctx, s.now(), totals); err != nil {
		s.logger.Warn("milk statement export failed", zap.Error(err))
		return StatementsMessage
	}

	s.logger.Info("milk statement exported", zap.Int("rows", len(totals)))
	return StatementsMessage
}
