package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a farm account registered through /signup.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FarmName    string             `bson:"farmName" json:"farmName"`
	FarmOwner   string             `bson:"farmOwner" json:"farmOwner"`
	Email       string             `bson:"email" json:"email"`
	Password    string             `bson:"password" json:"password,omitempty"`
	PhoneNumber string             `bson:"phoneNumber" json:"phoneNumber"`
	Address     string             `bson:"address" json:"address"`
}

// Credentials carries the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
