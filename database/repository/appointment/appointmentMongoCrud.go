// File: database/repository/appointment/appointmentMongoCrud.go
package appointmentRepo

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

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo creates a new instance of AppointmentRepository using MongoDB.
func NewMongoAppointmentRepo() AppointmentRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("appointments")
	return &MongoAppointmentRepo{coll: coll}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetByID retrieves an appointment by its unique ID.
func (r *MongoAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var a models.Appointment
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &utils.NotFoundError{Message: fmt.Sprintf("appointment %s not found", id)}
		}
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", id, err)
	}
	return &a, nil
}

// Create inserts a new appointment document.
func (r *MongoAppointmentRepo) Create(a *models.Appointment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

// UpdateStatus moves a scheduled appointment to the given status. The filter
// only matches while the appointment is still scheduled, so a concurrent
// cancel or end makes this a no-match instead of an overwrite; transitions
// out of a terminal status can never happen at the write layer.
func (r *MongoAppointmentRepo) UpdateStatus(id string, status models.AppointmentStatus) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id":     id,
		"status": models.AppointmentScheduled,
	}
	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now(),
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to update appointment %s: %w", id, err)
	}
	return res.MatchedCount > 0, nil
}
