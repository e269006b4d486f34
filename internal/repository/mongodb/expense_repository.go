package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mamadbah2/dairyfarm/internal/domain/models"
)

// ExpenseRepository stores the expense ledger.
type ExpenseRepository struct {
	collection *mongo.Collection
}

// NewExpenseRepository creates a new instance of ExpenseRepository.
func NewExpenseRepository(db *mongo.Database) *ExpenseRepository {
	return &ExpenseRepository{collection: db.Collection(expensesCollection)}
}

// CreateExpense inserts an expense and assigns the generated id.
func (r *ExpenseRepository) CreateExpense(ctx context.Context, expense *models.Expense) error {
	result, err := r.collection.InsertOne(ctx, expense)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		expense.ID = id
	}
	return nil
}

// ListExpenses returns every expense record.
func (r *ExpenseRepository) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expenses: %w", err)
	}
	defer cursor.Close(ctx)

	expenses := []models.Expense{}
	if err := cursor.All(ctx, &expenses); err != nil {
		return nil, fmt.Errorf("failed to decode expenses: %w", err)
	}
	return expenses, nil
}
