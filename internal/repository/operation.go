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

type OperationRepository struct {
	collection *mongo.Collection
}

func NewOperationRepository(db *mongo.Database) *OperationRepository {
	return &OperationRepository{
		collection: db.Collection("operations"),
	}
}

func (r *OperationRepository) Create(operation *models.Operation) (*models.Operation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := r.collection.InsertOne(ctx, operation)
	if err != nil {
		return nil, err
	}

	operation.ID = result.InsertedID.(primitive.ObjectID)
	return operation, nil
}

func (r *OperationRepository) FindByID(id string) (*models.Operation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid operation ID")
	}

	var operation models.Operation
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&operation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("operation not found")
		}
		return nil, err
	}

	return &operation, nil
}

func (r *OperationRepository) FindAll() ([]*models.Operation, error) {
	return r.find(bson.M{})
}

func (r *OperationRepository) FindByTruckID(truckID string) ([]*models.Operation, error) {
	return r.find(bson.M{"truck_id": truckID})
}

func (r *OperationRepository) FindByMonth(month string) ([]*models.Operation, error) {
	return r.find(bson.M{"month": month})
}

// FindPreviousForTruck returns the truck's latest operation strictly
// before the given month. Months are zero-padded YYYY-MM strings, so
// string comparison orders them chronologically.
func (r *OperationRepository) FindPreviousForTruck(truckID, month string) (*models.Operation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "month", Value: -1}})
	filter := bson.M{"truck_id": truckID, "month": bson.M{"$lt": month}}

	var operation models.Operation
	err := r.collection.FindOne(ctx, filter, opts).Decode(&operation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &operation, nil
}

func (r *OperationRepository) find(filter bson.M) ([]*models.Operation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "month", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var operations []*models.Operation
	for cursor.Next(ctx) {
		var operation models.Operation
		if err := cursor.Decode(&operation); err != nil {
			return nil, err
		}
		operations = append(operations, &operation)
	}

	return operations, nil
}

func (r *OperationRepository) Update(id string, operation *models.Operation) (*models.Operation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid operation ID")
	}

	operation.UpdatedAt = time.Now()
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": operation})
	if err != nil {
		return nil, err
	}

	return operation, nil
}

func (r *OperationRepository) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid operation ID")
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("operation not found")
	}

	return nil
}
