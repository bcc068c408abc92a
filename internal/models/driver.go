package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Driver struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name" validate:"required"`
	Rut           string             `bson:"rut" json:"rut"`
	Phone         string             `bson:"phone" json:"phone"`
	LicenseType   string             `bson:"license_type" json:"licenseType"`
	LicenseExpiry *time.Time         `bson:"license_expiry,omitempty" json:"licenseExpiry,omitempty"`
	TruckID       string             `bson:"truck_id,omitempty" json:"truckId,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}
