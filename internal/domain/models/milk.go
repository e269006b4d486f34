package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MilkEntry is one line of the milk ledger. Production entries only carry
// TimeOfDay, Amount and Date; usage entries also set Usage and Quantity.
type MilkEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	TimeOfDay string             `bson:"timeOfDay" json:"timeOfDay"`
	Amount    float64            `bson:"amount" json:"amount"`
	Date      time.Time          `bson:"date" json:"date"`
	Usage     string             `bson:"usage,omitempty" json:"usage,omitempty"`
	Quantity  float64            `bson:"quantity,omitempty" json:"quantity,omitempty"`
}

// IsUsage reports whether the entry records milk leaving the farm rather than production.
func (e MilkEntry) IsUsage() bool {
	return e.Usage != ""
}

// ProductionTotal is the aggregated production amount for one time of day.
type ProductionTotal struct {
	TimeOfDay   string  `bson:"_id" json:"timeOfDay"`
	TotalAmount float64 `bson:"totalAmount" json:"totalAmount"`
}

// ProductionRequest is the /recordMilkProduction payload. Pointers distinguish
// absent fields from zero values.
type ProductionRequest struct {
	TimeOfDay string     `json:"timeOfDay"`
	Amount    *float64   `json:"amount"`
	Date      *time.Time `json:"date"`
}

// UsageRequest is the /recordMilkUsage payload.
type UsageRequest struct {
	Usage    string   `json:"usage"`
	Quantity *float64 `json:"quantity"`
}
