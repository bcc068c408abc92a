package database

import (
	"context"
	"log"
	"os"
	"time"

	"tvar-backend/internal/models"
	"tvar-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

const databaseName = "tvar"

func Connect(uri string) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, err
	}

	log.Println("Connected to MongoDB")
	return client, client.Database(databaseName), nil
}

func Disconnect(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		log.Printf("Error disconnecting from MongoDB: %v", err)
	}
}

// EnsureIndexes creates the indexes the repositories rely on. Safe to
// call on every startup.
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		"trucks": {
			{Keys: bson.D{{Key: "number", Value: 1}}, Options: unique},
		},
		"users": {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
		},
		"truck_documents": {
			{Keys: bson.D{{Key: "truck_id", Value: 1}}},
			{Keys: bson.D{{Key: "expiry_date", Value: 1}}},
		},
		"repairs": {
			{Keys: bson.D{{Key: "truck_id", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		"fuel": {
			{Keys: bson.D{{Key: "truck_id", Value: 1}, {Key: "date", Value: -1}}},
		},
		"adblue": {
			{Keys: bson.D{{Key: "truck_id", Value: 1}, {Key: "date", Value: -1}}},
		},
		"oil": {
			{Keys: bson.D{{Key: "truck_id", Value: 1}, {Key: "date", Value: -1}}},
		},
		"operations": {
			{Keys: bson.D{{Key: "truck_id", Value: 1}, {Key: "month", Value: -1}}},
		},
		"notifications": {
			{Keys: bson.D{{Key: "sent_at", Value: -1}}},
		},
	}

	for collection, idx := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, idx); err != nil {
			return err
		}
	}

	return nil
}

// SeedUsers creates the default admin and read-only accounts when the
// users collection is empty.
func SeedUsers(repo *repository.UserRepository) error {
	count, err := repo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []struct {
		username string
		envVar   string
		fallback string
		name     string
		email    string
		role     string
	}{
		{"admin", "ADMIN_PASSWORD", "admin123", "Administrador", "admin@tvar.cl", models.RoleAdmin},
		{"consulta", "CONSULTA_PASSWORD", "consulta123", "Consulta", "consulta@tvar.cl", models.RoleConsult},
	}

	for _, d := range defaults {
		password := os.Getenv(d.envVar)
		if password == "" {
			password = d.fallback
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		now := time.Now()
		user := &models.User{
			Username:  d.username,
			Password:  string(hashed),
			Name:      d.name,
			Email:     d.email,
			Role:      d.role,
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if _, err := repo.Create(user); err != nil {
			return err
		}
		log.Printf("Seeded default user %q", d.username)
	}

	return nil
}
