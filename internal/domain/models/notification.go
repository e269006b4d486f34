package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification is a reminder due at Datetime. Notifications are never marked
// as sent, so a due notification is reported on every scan.
type Notification struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Datetime    *time.Time         `bson:"datetime,omitempty" json:"datetime,omitempty"`
}

// DueAt reports whether the notification should be reported at now.
func (n Notification) DueAt(now time.Time) bool {
	return n.Datetime != nil && !n.Datetime.After(now)
}
