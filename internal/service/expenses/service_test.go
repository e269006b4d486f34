package expenses

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/dairyfarm/internal/domain/models"
	"github.com/mamadbah2/dairyfarm/internal/repository/memory"
)

func TestCreateAndList(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.NewStore(), nil)
	when := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)

	created, err := svc.Create(ctx, models.Expense{Description: "dairy meal", Amount: 2500, Date: &when})
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())

	// No validation: an empty expense is accepted.
	_, err = svc.Create(ctx, models.Expense{})
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "dairy meal", all[0].Description)
}

type brokenRepo struct{}

func (brokenRepo) CreateExpense(context.Context, *models.Expense) error { return errors.New("down") }

func (brokenRepo) ListExpenses(context.Context) ([]models.Expense, error) {
	return nil, errors.New("down")
}

func TestStorageFailure(t *testing.T) {
	svc := NewService(brokenRepo{}, nil)

	_, err := svc.Create(context.Background(), models.Expense{Description: "fuel"})
	require.Error(t, err)

	_, err = svc.List(context.Background())
	require.Error(t, err)
}
