// Package app assembles the dairy farm backend from its configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/dairyfarm/internal/config"
	"github.com/mamadbah2/dairyfarm/internal/metrics"
	"github.com/mamadbah2/dairyfarm/internal/repository"
	"github.com/mamadbah2/dairyfarm/internal/repository/memory"
	"github.com/mamadbah2/dairyfarm/internal/repository/mongodb"
	"github.com/mamadbah2/dairyfarm/internal/repository/sheets"
	"github.com/mamadbah2/dairyfarm/internal/scheduler"
	"github.com/mamadbah2/dairyfarm/internal/server/handlers"
	"github.com/mamadbah2/dairyfarm/internal/server/router"
	"github.com/mamadbah2/dairyfarm/internal/service/cattle"
	"github.com/mamadbah2/dairyfarm/internal/service/expenses"
	"github.com/mamadbah2/dairyfarm/internal/service/milk"
	"github.com/mamadbah2/dairyfarm/internal/service/notifications"
	"github.com/mamadbah2/dairyfarm/internal/service/users"
	whatsappclient "github.com/mamadbah2/dairyfarm/pkg/clients/whatsapp"
)

const shutdownTimeout = 10 * time.Second

// App owns every long lived component of the process.
type App struct {
	cfg       *config.Config
	logger    *zap.Logger
	metrics   *metrics.Metrics
	server    *http.Server
	scheduler *scheduler.Scheduler
	closers   []func(context.Context) error

	Notifications *notifications.Service
}

// New builds the application. The returned App must be closed by the caller.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	a := &App{cfg: cfg, logger: logger, metrics: metrics.New()}

	repos, err := a.openStorage(ctx)
	if err != nil {
		return nil, err
	}

	var exporter milk.StatementExporter
	if cfg.Sheets.Enabled() {
		sheetRepo, err := sheets.NewGoogleSheetRepository(ctx, cfg.Sheets, logger.Named("repo.sheets"))
		if err != nil {
			a.Close(ctx)
			return nil, fmt.Errorf("failed to init sheets repository: %w", err)
		}
		exporter = sheets.NewStatementExporter(sheetRepo)
		logger.Info("milk statement export enabled")
	}

	senders := []notifications.Sender{notifications.NewLogSender(logger.Named("notify.log"))}
	if cfg.WhatsApp.Enabled() {
		client := whatsappclient.NewClient(cfg.WhatsApp)
		senders = append(senders, notifications.NewWhatsAppSender(client, cfg.WhatsApp.NotifyTo))
		logger.Info("whatsapp notification sender enabled")
	}

	a.Notifications = notifications.NewService(repos.Notifications, logger.Named("svc.notifications"), senders...)

	engine := router.New(router.Handlers{
		Users:         handlers.NewUserHandler(users.NewService(repos.Users, logger.Named("svc.users")), logger.Named("handlers.users")),
		Cattle:        handlers.NewCattleHandler(cattle.NewService(repos.Cattle, logger.Named("svc.cattle")), logger.Named("handlers.cattle")),
		Milk:          handlers.NewMilkHandler(milk.NewService(repos.Milk, exporter, logger.Named("svc.milk")), logger.Named("handlers.milk")),
		Expenses:      handlers.NewExpenseHandler(expenses.NewService(repos.Expenses, logger.Named("svc.expenses")), logger.Named("handlers.expenses")),
		Notifications: handlers.NewNotificationHandler(a.Notifications, logger.Named("handlers.notifications")),
	}, a.metrics, logger.Named("router"))

	a.server = &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.WithCORS(engine, cfg.Server.AllowedOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.scheduler, err = scheduler.NewScheduler(cfg.Notifications, a.Notifications, a.metrics, logger.Named("scheduler"))
	if err != nil {
		a.Close(ctx)
		return nil, err
	}

	return a, nil
}

func (a *App) openStorage(ctx context.Context) (repository.Repositories, error) {
	switch a.cfg.Storage.Driver {
	case config.StorageMemory:
		a.logger.Warn("using in-memory storage, data is lost on restart")
		return memory.NewStore().Repositories(), nil
	default:
		store, err := mongodb.NewStore(ctx, a.cfg.MongoDB.URI, a.cfg.MongoDB.DBName, a.cfg.MongoDB.ConnectTimeout)
		if err != nil {
			return repository.Repositories{}, fmt.Errorf("failed to init mongodb repository: %w", err)
		}
		a.closers = append(a.closers, store.Close)

		if err := store.EnsureIndexes(ctx); err != nil {
			a.Close(ctx)
			return repository.Repositories{}, err
		}
		a.logger.Info("connected to mongodb", zap.String("db", a.cfg.MongoDB.DBName))
		return store.Repositories(), nil
	}
}

// Handler exposes the HTTP handler served by Run.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run starts the scheduler and serves HTTP until ctx is cancelled, then shuts
// both down gracefully.
func (a *App) Run(ctx context.Context) error {
	if err := a.scheduler.Start(); err != nil {
		return err
	}
	defer a.scheduler.Stop()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server starting", zap.String("port", a.cfg.Server.Port))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server crashed: %w", err)
		}
		return nil
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// Close releases storage connections.
func (a *App) Close(ctx context.Context) {
	for _, closeFn := range a.closers {
		if err := closeFn(ctx); err != nil {
			a.logger.Error("failed to close resource", zap.Error(err))
		}
	}
	a.closers = nil
}
