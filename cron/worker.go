// File: cron/worker.go
package cron

import (
	"fmt"
	"log"
	"time"

	appointmentRepo "mindhaven/database/repository/appointment"
	therapistRepo "mindhaven/database/repository/therapist"
	"mindhaven/services/session"
	"mindhaven/utils"

	robfig "github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Sweeper is the periodic reconciliation job. It force-completes overdue
// appointments that nobody explicitly ended (crashed client, closed tab)
// and clears availability-ledger entries the explicit paths missed.
type Sweeper struct {
	Appointments appointmentRepo.AppointmentRepository
	Therapists   therapistRepo.TherapistRepository
	Sessions     session.SessionService
	Buffer       time.Duration // cooldown buffer, mirrors the ledger's
	Now          func() time.Time
}

func (s *Sweeper) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// RunOnce executes both reconciliation passes. A failure in one item must
// not abort the rest of the sweep.
func (s *Sweeper) RunOnce() {
	s.SweepAppointments()
	s.SweepLedgers()
}

// SweepAppointments completes every scheduled appointment whose session end
// has passed, routing through ForceEnd so the ledger cooldown rules apply
// exactly as they do for an explicit hangup.
func (s *Sweeper) SweepAppointments() {
	logger := utils.GetLogger()
	now := s.now()

	overdue, err := s.Appointments.FindOverdueScheduled(now)
	if err != nil {
		logger.Error("appointment sweep query failed", zap.Error(err))
		return
	}

	for _, a := range overdue {
		// Started but still inside its window: leave it live.
		if !now.After(a.EndsAt()) {
			continue
		}
		if _, err := s.Sessions.ForceEnd(a.ID); err != nil {
			logger.Error("failed to auto-complete overdue appointment",
				zap.String("appointmentId", a.ID), zap.Error(err))
			continue
		}
		logger.Info("auto-completed overdue appointment",
			zap.String("appointmentId", a.ID),
			zap.String("therapistId", a.TherapistID))
	}
}

// SweepLedgers clears stale availability-ledger entries.
//
// Cooldown holds carry a buffer-inclusive EndsAt, so they clear as soon as
// it passes. Live entries (an appointment still bound, meaning no end call
// ever arrived) get the buffer added here instead, so the total block is one
// buffer either way. Active entries without an EndsAt are corrupt and clear
// immediately.
func (s *Sweeper) SweepLedgers() {
	logger := utils.GetLogger()
	now := s.now()

	therapists, err := s.Therapists.FindWithActiveSession()
	if err != nil {
		logger.Error("ledger sweep query failed", zap.Error(err))
		return
	}

	for _, t := range therapists {
		cs := t.CurrentSession
		expired := cs.EndsAt == nil ||
			(cs.InCooldown() && now.After(*cs.EndsAt)) ||
			(!cs.InCooldown() && now.After(cs.EndsAt.Add(s.Buffer)))
		if !expired {
			continue
		}
		if err := s.Therapists.ClearSession(t.ID); err != nil {
			logger.Error("failed to clear stale ledger",
				zap.String("therapistId", t.ID), zap.Error(err))
			continue
		}
		logger.Info("cleared stale availability ledger",
			zap.String("therapistId", t.ID))
	}
}

// Start schedules the sweeper on a fixed tick. SkipIfStillRunning serializes
// ticks: a slow sweep is skipped rather than run concurrently, so the same
// appointment can never be double-transitioned.
func Start(s *Sweeper, interval time.Duration) *robfig.Cron {
	c := robfig.New(robfig.WithChain(
		robfig.SkipIfStillRunning(robfig.PrintfLogger(log.Default())),
	))
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", interval), s.RunOnce); err != nil {
		log.Fatalf("failed to schedule reconciliation sweeper: %v", err)
	}
	c.Start()
	log.Printf("[Sweeper] reconciliation running every %s", interval)
	return c
}
