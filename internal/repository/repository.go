package repository

import (
	"context"
	"errors"
	"time"

	"github.com/mamadbah2/dairyfarm/internal/domain/models"
)

// ErrNotFound is returned by lookups that match no document.
var ErrNotFound = errors.New("document not found")

// UserRepository persists farm accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// CattleRepository persists herd records.
type CattleRepository interface {
	CreateCattle(ctx context.Context, cattle *models.Cattle) error
	ListCattle(ctx context.Context) ([]models.Cattle, error)
}

// MilkRepository persists milk ledger entries.
type MilkRepository interface {
	CreateMilkEntry(ctx context.Context, entry *models.MilkEntry) error
	// ProductionTotals sums production amounts (usage entries excluded) per
	// time of day, ordered by time of day.
	ProductionTotals(ctx context.Context) ([]models.ProductionTotal, error)
}

// ExpenseRepository persists the expense ledger.
type ExpenseRepository interface {
	CreateExpense(ctx context.Context, expense *models.Expense) error
	ListExpenses(ctx context.Context) ([]models.Expense, error)
}

// NotificationRepository persists scheduled notifications.
type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *models.Notification) error
	ListNotifications(ctx context.Context) ([]models.Notification, error)
	// FindDue returns notifications whose datetime is at or before now.
	FindDue(ctx context.Context, now time.Time) ([]models.Notification, error)
}

// Repositories groups one implementation of every repository so the
// application can be wired against a single backend.
type Repositories struct {
	Users         UserRepository
	Cattle        CattleRepository
	Milk          MilkRepository
	Expenses      ExpenseRepository
	Notifications NotificationRepository
}
