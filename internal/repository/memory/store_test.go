package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/dairyfarm/internal/domain/models"
	"github.com/mamadbah2/dairyfarm/internal/repository"
)

func TestStoreFindUserByEmail(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	_, err := store.FindUserByEmail(ctx, "kezie@farm.test")
	require.ErrorIs(t, err, repository.ErrNotFound)

	user := &models.User{Email: "kezie@farm.test", FarmName: "Green Acres"}
	require.NoError(t, store.CreateUser(ctx, user))
	assert.False(t, user.ID.IsZero())

	found, err := store.FindUserByEmail(ctx, "kezie@farm.test")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "Green Acres", found.FarmName)
}

func TestStoreProductionTotalsSkipsUsageAndSortsByTimeOfDay(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	for _, e := range []models.MilkEntry{
		{TimeOfDay: "Morning", Amount: 10},
		{TimeOfDay: "Evening", Amount: 4},
		{TimeOfDay: "Morning", Amount: 2.5},
		{TimeOfDay: "Morning", Amount: 12.5, Usage: "Selling", Quantity: 5},
	} {
		entry := e
		require.NoError(t, store.CreateMilkEntry(ctx, &entry))
	}

	totals, err := store.ProductionTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.ProductionTotal{
		{TimeOfDay: "Evening", TotalAmount: 4},
		{TimeOfDay: "Morning", TotalAmount: 12.5},
	}, totals)
}

func TestStoreFindDue(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	for _, n := range []models.Notification{
		{Title: "vet visit", Datetime: &past},
		{Title: "exact", Datetime: &now},
		{Title: "feed order", Datetime: &future},
		{Title: "no date"},
	} {
		notification := n
		require.NoError(t, store.CreateNotification(ctx, &notification))
	}

	due, err := store.FindDue(ctx, now)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, "vet visit", due[0].Title)
	assert.Equal(t, "exact", due[1].Title)

	all, err := store.ListNotifications(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
