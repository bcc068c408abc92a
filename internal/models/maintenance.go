package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Repair struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TruckID     string             `bson:"truck_id" json:"truckId" validate:"required"`
	Description string             `bson:"description" json:"description" validate:"required"`
	Status      string             `bson:"status" json:"status"`
	Cost        float64            `bson:"cost" json:"cost"`
	Km          int                `bson:"km" json:"km"`
	Date        time.Time          `bson:"date" json:"date"`
	Workshop    string             `bson:"workshop,omitempty" json:"workshop,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Repair status values. Only RepairStatusPending counts as outstanding
// for alerting.
const (
	RepairStatusPending    = "Pendiente"
	RepairStatusInProgress = "En Proceso"
	RepairStatusCompleted  = "Completada"
)

type OilChange struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TruckID   string             `bson:"truck_id" json:"truckId" validate:"required"`
	Date      time.Time          `bson:"date" json:"date" validate:"required"`
	Km        int                `bson:"km" json:"km"`
	OilType   string             `bson:"oil_type,omitempty" json:"oilType,omitempty"`
	Liters    float64            `bson:"liters" json:"liters"`
	Cost      float64            `bson:"cost" json:"cost"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

type FuelEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TruckID   string             `bson:"truck_id" json:"truckId" validate:"required"`
	Date      time.Time          `bson:"date" json:"date" validate:"required"`
	Liters    float64            `bson:"liters" json:"liters" validate:"min=0"`
	Cost      float64            `bson:"cost" json:"cost" validate:"min=0"`
	Station   string             `bson:"station,omitempty" json:"station,omitempty"`
	Invoice   string             `bson:"invoice,omitempty" json:"invoice,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

type AdBlueEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TruckID   string             `bson:"truck_id" json:"truckId" validate:"required"`
	Date      time.Time          `bson:"date" json:"date" validate:"required"`
	Liters    float64            `bson:"liters" json:"liters" validate:"min=0"`
	Cost      float64            `bson:"cost" json:"cost" validate:"min=0"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}
