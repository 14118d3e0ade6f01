// File: database/repository/therapist/ledgerMongo.go
package therapistRepo

import (
	"fmt"
	"time"

	"mindhaven/models"

	"go.mongodb.org/mongo-driver/bson"
)

// OccupyIfIdle writes the occupancy state with a conditional update: the
// filter only matches while the ledger is idle (or absent), so a concurrent
// booking that already took the therapist makes this a no-match instead of
// an overwrite.
func (r *MongoTherapistRepo) OccupyIfIdle(id string, state models.SessionState) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id": id,
		"$or": []bson.M{
			{"currentSession.isActive": false},
			{"currentSession.isActive": bson.M{"$exists": false}},
		},
	}
	update := bson.M{"$set": bson.M{
		"currentSession": state,
		"updatedAt":      time.Now(),
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to occupy therapist %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrOccupied
	}
	return nil
}

// BeginCooldown replaces the ledger with a cooldown hold, conditional on the
// ledger still referencing the given appointment. An out-of-order end call
// for an older appointment therefore cannot clobber a newer occupancy.
func (r *MongoTherapistRepo) BeginCooldown(id, appointmentID string, endsAt time.Time) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id":                           id,
		"currentSession.appointmentId": appointmentID,
	}
	update := bson.M{"$set": bson.M{
		"currentSession": models.SessionState{
			IsActive: true,
			EndsAt:   &endsAt,
		},
		"updatedAt": time.Now(),
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to begin cooldown for therapist %s: %w", id, err)
	}
	return res.MatchedCount > 0, nil
}

// ClearSession resets the ledger to fully idle.
func (r *MongoTherapistRepo) ClearSession(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"currentSession": models.SessionState{},
		"updatedAt":      time.Now(),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to clear ledger for therapist %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("therapist %s not found", id)
	}
	return nil
}
