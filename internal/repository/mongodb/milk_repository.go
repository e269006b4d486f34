package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mamadbah2/dairyfarm/internal/domain/models"
)

// MilkRepository stores production and usage entries in one ledger collection.
type MilkRepository struct {
	collection *mongo.Collection
}

// NewMilkRepository creates a new instance of MilkRepository.
func NewMilkRepository(db *mongo.Database) *MilkRepository {
	return &MilkRepository{collection: db.Collection(milkCollection)}
}

// CreateMilkEntry inserts a ledger entry and assigns the generated id.
func (r *MilkRepository) CreateMilkEntry(ctx context.Context, entry *models.MilkEntry) error {
	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return fmt.Errorf("failed to insert milk entry: %w", err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		entry.ID = id
	}
	return nil
}

// ProductionTotals groups production entries by time of day over the whole ledger.
func (r *MilkRepository) ProductionTotals(ctx context.Context) ([]models.ProductionTotal, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "usage", Value: bson.D{{Key: "$exists", Value: false}}}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$timeOfDay"},
			{Key: "totalAmount", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate milk production: %w", err)
	}
	defer cursor.Close(ctx)

	totals := []models.ProductionTotal{}
	if err := cursor.All(ctx, &totals); err != nil {
		return nil, fmt.Errorf("failed to decode milk production totals: %w", err)
	}
	return totals, nil
}
