package expenses

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/mamadbah2/dairyfarm/internal/domain/models"
	"github.com/mamadbah2/dairyfarm/internal/repository"
)

// Service manages the expense ledger. Records are stored as received.
type Service struct {
	repo   repository.ExpenseRepository
	logger *zap.Logger
}

// NewService wires a new expense service instance.
func NewService(repo repository.ExpenseRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// Create appends an expense to the ledger.
func (s *Service) Create(ctx context.Context, expense models.Expense) (*models.Expense, error) {
	expense.ID = primitive.NilObjectID
	if err := s.repo.CreateExpense(ctx, &expense); err != nil {
		return nil, fmt.Errorf("save expense: %w", err)
	}

	s.logger.Debug("expense recorded", zap.String("expense_id", expense.ID.Hex()), zap.Float64("amount", expense.Amount))
	return &expense, nil
}

// List returns every expense record.
func (s *Service) List(ctx context.Context) ([]models.Expense, error) {
	expenses, err := s.repo.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}
