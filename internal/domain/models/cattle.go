package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Cattle is a single animal in the herd registry.
type Cattle struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name       string             `bson:"name" json:"name"`
	Age        string             `bson:"age" json:"age"`
	Breed      string             `bson:"breed" json:"breed"`
	Gender     string             `bson:"gender" json:"gender"`
	IsPregnant bool               `bson:"isPregnant" json:"isPregnant"`
}
