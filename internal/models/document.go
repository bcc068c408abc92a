package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TruckDocument is a dated document attached to a truck (permiso de
// circulación, revisión técnica, seguro, etc). Documents are tracked
// independently of the truck's own built-in expiry fields; both feed
// the alert engine.
type TruckDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TruckID    string             `bson:"truck_id" json:"truckId" validate:"required"`
	Type       string             `bson:"type" json:"type" validate:"required"`
	ExpiryDate time.Time          `bson:"expiry_date" json:"expiryDate" validate:"required"`
	Notes      string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updatedAt"`
}
