// File: database/repository/appointment/appointmentMongoQueries.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"mindhaven/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoAppointmentRepo) findAll(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.M{"date": -1})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appointments, nil
}

// FindByUser returns all appointments booked by the given user.
func (r *MongoAppointmentRepo) FindByUser(userID string) ([]models.Appointment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	return r.findAll(ctx, bson.M{"userId": userID})
}

// FindByTherapist returns all appointments assigned to the given therapist.
func (r *MongoAppointmentRepo) FindByTherapist(therapistID string) ([]models.Appointment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	return r.findAll(ctx, bson.M{"therapistId": therapistID})
}

// FindOverdueScheduled returns appointments still marked scheduled whose
// start instant is at or before now.
func (r *MongoAppointmentRepo) FindOverdueScheduled(now time.Time) ([]models.Appointment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	return r.findAll(ctx, bson.M{
		"status": models.AppointmentScheduled,
		"date":   bson.M{"$lte": now},
	})
}
