package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Operation is a truck's month-end operational reading. Month is a
// zero-padded "YYYY-MM" string so lexicographic order matches
// chronological order; repositories and the alert engine rely on this.
type Operation struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TruckID       string             `bson:"truck_id" json:"truckId" validate:"required"`
	Month         string             `bson:"month" json:"month" validate:"required"`
	Products      int                `bson:"products" json:"products"`
	Clients       int                `bson:"clients" json:"clients"`
	Recharges     int                `bson:"recharges" json:"recharges"`
	FinalKm       int                `bson:"final_km" json:"finalKm" validate:"min=0"`
	MonthlyKm     int                `bson:"monthly_km" json:"monthlyKm"`
	IsReplacement bool               `bson:"is_replacement" json:"isReplacement"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}
