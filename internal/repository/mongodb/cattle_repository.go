package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mamadbah2/dairyfarm/internal/domain/models"
)

// CattleRepository stores the herd registry.
type CattleRepository struct {
	collection *mongo.Collection
}

// NewCattleRepository creates a new instance of CattleRepository.
func NewCattleRepository(db *mongo.Database) *CattleRepository {
	return &CattleRepository{collection: db.Collection(cattleCollection)}
}

// CreateCattle inserts a cattle record and assigns the generated id.
func (r *CattleRepository) CreateCattle(ctx context.Context, cattle *models.Cattle) error {
	result, err := r.collection.InsertOne(ctx, cattle)
	if err != nil {
		return fmt.Errorf("failed to insert cattle: %w", err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		cattle.ID = id
	}
	return nil
}

// ListCattle returns every cattle record.
func (r *CattleRepository) ListCattle(ctx context.Context) ([]models.Cattle, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cattle: %w", err)
	}
	defer cursor.Close(ctx)

	cattle := []models.Cattle{}
	if err := cursor.All(ctx, &cattle); err != nil {
		return nil, fmt.Errorf("failed to decode cattle: %w", err)
	}
	return cattle, nil
}
