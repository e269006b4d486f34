// Package memory provides map-backed repositories used for local runs
// (STORAGE_DRIVER=memory) and tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mamadbah2/dairyfarm/internal/domain/models"
	"github.com/mamadbah2/dairyfarm/internal/repository"
)

// Store keeps every collection in memory, in insertion order.
type Store struct {
	mu            sync.RWMutex
	users         []models.User
	cattle        []models.Cattle
	milk          []models.MilkEntry
	expenses      []models.Expense
	notifications []models.Notification
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Repositories exposes the store through the repository contracts.
func (s *Store) Repositories() repository.Repositories {
	return repository.Repositories{
		Users:         s,
		Cattle:        s,
		Milk:          s,
		Expenses:      s,
		Notifications: s,
	}
}

// CreateUser stores a copy of the user and assigns its id.
func (s *Store) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = primitive.NewObjectID()
	s.users = append(s.users, *user)
	return nil
}

// FindUserByEmail returns the first user registered with email.
func (s *Store) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

// CountUsers is a test helper reporting how many accounts exist.
func (s *Store) CountUsers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// CreateCattle stores a copy of the animal and assigns its id.
func (s *Store) CreateCattle(_ context.Context, cattle *models.Cattle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cattle.ID = primitive.NewObjectID()
	s.cattle = append(s.cattle, *cattle)
	return nil
}

// ListCattle returns the herd in insertion order.
func (s *Store) ListCattle(_ context.Context) ([]models.Cattle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Cattle{}, s.cattle...), nil
}

// CreateMilkEntry appends a ledger entry and assigns its id.
func (s *Store) CreateMilkEntry(_ context.Context, entry *models.MilkEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry.ID = primitive.NewObjectID()
	s.milk = append(s.milk, *entry)
	return nil
}

// MilkEntries returns a snapshot of the ledger.
func (s *Store) MilkEntries() []models.MilkEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.MilkEntry{}, s.milk...)
}

// ProductionTotals sums production amounts per time of day, skipping usage
// entries, sorted by time of day.
func (s *Store) ProductionTotals(_ context.Context) ([]models.ProductionTotal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sums := make(map[string]float64)
	for _, e := range s.milk {
		if e.IsUsage() {
			continue
		}
		sums[e.TimeOfDay] += e.Amount
	}

	totals := make([]models.ProductionTotal, 0, len(sums))
	for timeOfDay, amount := range sums {
		totals = append(totals, models.ProductionTotal{TimeOfDay: timeOfDay, TotalAmount: amount})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].TimeOfDay < totals[j].TimeOfDay })
	return totals, nil
}

// CreateExpense stores a copy of the expense and assigns its id.
func (s *Store) CreateExpense(_ context.Context, expense *models.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	expense.ID = primitive.NewObjectID()
	s.expenses = append(s.expenses, *expense)
	return nil
}

// ListExpenses returns every expense in insertion order.
func (s *Store) ListExpenses(_ context.Context) ([]models.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Expense{}, s.expenses...), nil
}

// CreateNotification stores a copy of the notification and assigns its id.
func (s *Store) CreateNotification(_ context.Context, notification *models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	notification.ID = primitive.NewObjectID()
	s.notifications = append(s.notifications, *notification)
	return nil
}

// ListNotifications returns every notification in insertion order.
func (s *Store) ListNotifications(_ context.Context) ([]models.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Notification{}, s.notifications...), nil
}

// FindDue returns the notifications due at or before now.
func (s *Store) FindDue(_ context.Context, now time.Time) ([]models.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	due := []models.Notification{}
	for _, n := range s.notifications {
		if n.DueAt(now) {
			due = append(due, n)
		}
	}
	return due, nil
}
