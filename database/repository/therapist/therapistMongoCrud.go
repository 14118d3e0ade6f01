// File: database/repository/therapist/therapistMongoCrud.go
package therapistRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mindhaven/config"
	"mindhaven/database"
	"mindhaven/models"
	"mindhaven/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoTherapistRepo implements TherapistRepository using MongoDB.
type MongoTherapistRepo struct {
	coll *mongo.Collection
}

// NewMongoTherapistRepo creates a new instance of TherapistRepository using MongoDB.
func NewMongoTherapistRepo() TherapistRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("therapists")
	return &MongoTherapistRepo{coll: coll}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetByID retrieves a therapist by their unique ID.
func (r *MongoTherapistRepo) GetByID(id string) (*models.Therapist, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var t models.Therapist
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &utils.NotFoundError{Message: fmt.Sprintf("therapist %s not found", id)}
		}
		return nil, fmt.Errorf("failed to fetch therapist %s: %w", id, err)
	}
	return &t, nil
}

// Create inserts a new therapist document with an idle ledger.
func (r *MongoTherapistRepo) Create(t *models.Therapist) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	t.CurrentSession = models.SessionState{}

	if _, err := r.coll.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("failed to create therapist: %w", err)
	}
	return nil
}

// FindWithActiveSession returns all therapists whose ledger is active.
func (r *MongoTherapistRepo) FindWithActiveSession() ([]models.Therapist, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"currentSession.isActive": true})
	if err != nil {
		return nil, fmt.Errorf("failed to query active sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var therapists []models.Therapist
	if err := cursor.All(ctx, &therapists); err != nil {
		return nil, fmt.Errorf("failed to decode active sessions: %w", err)
	}
	return therapists, nil
}
