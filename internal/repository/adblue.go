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

type AdBlueRepository struct {
	collection *mongo.Collection
}

func NewAdBlueRepository(db *mongo.Database) *AdBlueRepository {
	return &AdBlueRepository{
		collection: db.Collection("adblue"),
	}
}

func (r *AdBlueRepository) Create(entry *models.AdBlueEntry) (*models.AdBlueEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return nil, err
	}

	entry.ID = result.InsertedID.(primitive.ObjectID)
	return entry, nil
}

func (r *AdBlueRepository) FindByID(id string) (*models.AdBlueEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid adblue entry ID")
	}

	var entry models.AdBlueEntry
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&entry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("adblue entry not found")
		}
		return nil, err
	}

	return &entry, nil
}

func (r *AdBlueRepository) FindAll() ([]*models.AdBlueEntry, error) {
	return r.find(bson.M{})
}

func (r *AdBlueRepository) FindByTruckID(truckID string) ([]*models.AdBlueEntry, error) {
	return r.find(bson.M{"truck_id": truckID})
}

func (r *AdBlueRepository) find(filter bson.M) ([]*models.AdBlueEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*models.AdBlueEntry
	for cursor.Next(ctx) {
		var entry models.AdBlueEntry
		if err := cursor.Decode(&entry); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}

func (r *AdBlueRepository) Update(id string, entry *models.AdBlueEntry) (*models.AdBlueEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid adblue entry ID")
	}

	entry.UpdatedAt = time.Now()
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": entry})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (r *AdBlueRepository) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid adblue entry ID")
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("adblue entry not found")
	}

	return nil
}
