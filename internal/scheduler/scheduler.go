package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/dairyfarm/internal/config"
	"github.com/mamadbah2/dairyfarm/internal/domain/models"
	"github.com/mamadbah2/dairyfarm/internal/metrics"
)

const scanTimeout = 30 * time.Second

// DueScanner reports due notifications.
type DueScanner interface {
	ScanDue(ctx context.Context) ([]models.Notification, error)
}

// Scheduler runs the notification due-scanner on a cron schedule.
type Scheduler struct {
	cron     *cron.Cron
	schedule string
	scanner  DueScanner
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewScheduler creates a scheduler in the configured timezone. m may be nil.
func NewScheduler(cfg config.NotificationsConfig, scanner DueScanner, m *metrics.Metrics, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", cfg.Timezone, err)
	}

	// Standard 5-field parser; runs never overlap.
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	return &Scheduler{
		cron:     c,
		schedule: cfg.CronSchedule,
		scanner:  scanner,
		metrics:  m,
		logger:   logger,
	}, nil
}

// Start registers the due-scanner and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.scanDue); err != nil {
		return fmt.Errorf("schedule notification scan %q: %w", s.schedule, err)
	}

	s.logger.Info("starting scheduler", zap.String("schedule", s.schedule))
	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running scan to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) scanDue() {
	ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
	defer cancel()

	due, err := s.scanner.ScanDue(ctx)
	if err != nil {
		s.metrics.ScanFailed()
		s.logger.Error("notification scan failed", zap.Error(err))
		return
	}

	s.metrics.NotificationsDue(len(due))
	s.logger.Debug("notification scan completed", zap.Int("due", len(due)))
}
