package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Truck struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Number               string             `bson:"number" json:"number" validate:"required"`
	Brand                string             `bson:"brand" json:"brand"`
	Model                string             `bson:"model" json:"model"`
	Year                 int                `bson:"year" json:"year"`
	Mileage              int                `bson:"mileage" json:"mileage"`
	Status               string             `bson:"status" json:"status"`
	RevisionTecnica      *time.Time         `bson:"revision_tecnica,omitempty" json:"revisionTecnica,omitempty"`
	SeguroObligatorio    *time.Time         `bson:"seguro_obligatorio,omitempty" json:"seguroObligatorio,omitempty"`
	ImpuestosMunicipales *time.Time         `bson:"impuestos_municipales,omitempty" json:"impuestosMunicipales,omitempty"`
	CreatedAt            time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt            time.Time          `bson:"updated_at" json:"updatedAt"`
}

const (
	TruckStatusActive      = "Activo"
	TruckStatusMaintenance = "Mantenimiento"
	TruckStatusInactive    = "Inactivo"
)
