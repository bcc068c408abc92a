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

type FuelRepository struct {
	collection *mongo.Collection
}

func NewFuelRepository(db *mongo.Database) *FuelRepository {
	return &FuelRepository{
		collection: db.Collection("fuel"),
	}
}

func (r *FuelRepository) Create(entry *models.FuelEntry) (*models.FuelEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return nil, err
	}

	entry.ID = result.InsertedID.(primitive.ObjectID)
	return entry, nil
}

func (r *FuelRepository) FindByID(id string) (*models.FuelEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid fuel entry ID")
	}

	var entry models.FuelEntry
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&entry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("fuel entry not found")
		}
		return nil, err
	}

	return &entry, nil
}

func (r *FuelRepository) FindAll() ([]*models.FuelEntry, error) {
	return r.find(bson.M{})
}

func (r *FuelRepository) FindByTruckID(truckID string) ([]*models.FuelEntry, error) {
	return r.find(bson.M{"truck_id": truckID})
}

func (r *FuelRepository) find(filter bson.M) ([]*models.FuelEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*models.FuelEntry
	for cursor.Next(ctx) {
		var entry models.FuelEntry
		if err := cursor.Decode(&entry); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}

func (r *FuelRepository) Update(id string, entry *models.FuelEntry) (*models.FuelEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid fuel entry ID")
	}

	entry.UpdatedAt = time.Now()
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": entry})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (r *FuelRepository) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid fuel entry ID")
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("fuel entry not found")
	}

	return nil
}
