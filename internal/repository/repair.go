package repository

import (
	"context"
	"errors"
	"time"

	"tvar-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RepairRepository struct {
	collection *mongo.Collection
}

func NewRepairRepository(db *mongo.Database) *RepairRepository {
	return &RepairRepository{
		collection: db.Collection("repairs"),
	}
}

func (r *RepairRepository) Create(repair *models.Repair) (*models.Repair, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := r.collection.InsertOne(ctx, repair)
	if err != nil {
		return nil, err
	}

	repair.ID = result.InsertedID.(primitive.ObjectID)
	return repair, nil
}

func (r *RepairRepository) FindByID(id string) (*models.Repair, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid repair ID")
	}

	var repair models.Repair
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&repair)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("repair not found")
		}
		return nil, err
	}

	return &repair, nil
}

func (r *RepairRepository) FindAll() ([]*models.Repair, error) {
	return r.find(bson.M{})
}

func (r *RepairRepository) FindByTruckID(truckID string) ([]*models.Repair, error) {
	return r.find(bson.M{"truck_id": truckID})
}

func (r *RepairRepository) FindByStatus(status string) ([]*models.Repair, error) {
	return r.find(bson.M{"status": status})
}

func (r *RepairRepository) find(filter bson.M) ([]*models.Repair, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var repairs []*models.Repair
	for cursor.Next(ctx) {
		var repair models.Repair
		if err := cursor.Decode(&repair); err != nil {
			return nil, err
		}
		repairs = append(repairs, &repair)
	}

	return repairs, nil
}

func (r *RepairRepository) Update(id string, repair *models.Repair) (*models.Repair, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid repair ID")
	}

	repair.UpdatedAt = time.Now()
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": repair})
	if err != nil {
		return nil, err
	}

	return repair, nil
}

func (r *RepairRepository) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid repair ID")
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("repair not found")
	}

	return nil
}
