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

type OilChangeRepository struct {
	collection *mongo.Collection
}

func NewOilChangeRepository(db *mongo.Database) *OilChangeRepository {
	return &OilChangeRepository{
		collection: db.Collection("oil"),
	}
}

func (r *OilChangeRepository) Create(change *models.OilChange) (*models.OilChange, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := r.collection.InsertOne(ctx, change)
	if err != nil {
		return nil, err
	}

	change.ID = result.InsertedID.(primitive.ObjectID)
	return change, nil
}

func (r *OilChangeRepository) FindByID(id string) (*models.OilChange, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid oil change ID")
	}

	var change models.OilChange
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&change)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("oil change not found")
		}
		return nil, err
	}

	return &change, nil
}

func (r *OilChangeRepository) FindAll() ([]*models.OilChange, error) {
	return r.find(bson.M{})
}

func (r *OilChangeRepository) FindByTruckID(truckID string) ([]*models.OilChange, error) {
	return r.find(bson.M{"truck_id": truckID})
}

func (r *OilChangeRepository) find(filter bson.M) ([]*models.OilChange, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var changes []*models.OilChange
	for cursor.Next(ctx) {
		var change models.OilChange
		if err := cursor.Decode(&change); err != nil {
			return nil, err
		}
		changes = append(changes, &change)
	}

	return changes, nil
}

func (r *OilChangeRepository) Update(id string, change *models.OilChange) (*models.OilChange, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid oil change ID")
	}

	change.UpdatedAt = time.Now()
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": change})
	if err != nil {
		return nil, err
	}

	return change, nil
}

func (r *OilChangeRepository) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid oil change ID")
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("oil change not found")
	}

	return nil
}
