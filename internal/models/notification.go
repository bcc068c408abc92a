package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification is the persisted history record of a delivered alert
// notification. Alerts themselves are transient; only deliveries are
// stored.
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Subject   string             `bson:"subject" json:"subject"`
	Category  string             `bson:"category" json:"category"`
	Severity  string             `bson:"severity" json:"severity"`
	Priority  string             `bson:"priority" json:"priority"`
	Message   string             `bson:"message" json:"message"`
	SentAt    time.Time          `bson:"sent_at" json:"sentAt"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
