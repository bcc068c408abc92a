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

type TruckRepository struct {
	collection *mongo.Collection
}

func NewTruckRepository(db *mongo.Database) *TruckRepository {
	return &TruckRepository{
		collection: db.Collection("trucks"),
	}
}

func (r *TruckRepository) Create(truck *models.Truck) (*models.Truck, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := r.collection.InsertOne(ctx, truck)
	if err != nil {
		return nil, err
	}

	truck.ID = result.InsertedID.(primitive.ObjectID)
	return truck, nil
}

func (r *TruckRepository) FindByID(id string) (*models.Truck, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid truck ID")
	}

	var truck models.Truck
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&truck)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("truck not found")
		}
		return nil, err
	}

	return &truck, nil
}

func (r *TruckRepository) FindByNumber(number string) (*models.Truck, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var truck models.Truck
	err := r.collection.FindOne(ctx, bson.M{"number": number}).Decode(&truck)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("truck not found")
		}
		return nil, err
	}

	return &truck, nil
}

func (r *TruckRepository) FindAll() ([]*models.Truck, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "number", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var trucks []*models.Truck
	for cursor.Next(ctx) {
		var truck models.Truck
		if err := cursor.Decode(&truck); err != nil {
			return nil, err
		}
		trucks = append(trucks, &truck)
	}

	return trucks, nil
}

func (r *TruckRepository) Update(id string, truck *models.Truck) (*models.Truck, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid truck ID")
	}

	truck.UpdatedAt = time.Now()
	update := bson.M{"$set": truck}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return nil, err
	}

	return truck, nil
}

func (r *TruckRepository) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid truck ID")
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("truck not found")
	}

	return nil
}

func (r *TruckRepository) Count() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return r.collection.CountDocuments(ctx, bson.M{})
}
