package session

import (
	"fmt"
	"time"

	therapistRepo "mindhaven/database/repository/therapist"
	"mindhaven/models"
	"mindhaven/services/availability"
	"mindhaven/utils"
)

type memTherapistRepo struct {
	therapists map[string]*models.Therapist
}

func newMemTherapistRepo(ts ...*models.Therapist) *memTherapistRepo {
	r := &memTherapistRepo{therapists: map[string]*models.Therapist{}}
	for _, t := range ts {
		r.therapists[t.ID] = t
	}
	return r
}

func (r *memTherapistRepo) GetByID(id string) (*models.Therapist, error) {
	t, ok := r.therapists[id]
	if !ok {
		return nil, &utils.NotFoundError{Message: fmt.Sprintf("therapist %s not found", id)}
	}
	return t, nil
}

func (r *memTherapistRepo) Create(t *models.Therapist) error {
	r.therapists[t.ID] = t
	return nil
}

func (r *memTherapistRepo) FindWithActiveSession() ([]models.Therapist, error) {
	var out []models.Therapist
	for _, t := range r.therapists {
		if t.CurrentSession.IsActive {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *memTherapistRepo) OccupyIfIdle(id string, state models.SessionState) error {
	t := r.therapists[id]
	if t.CurrentSession.IsActive {
		return therapistRepo.ErrOccupied
	}
	t.CurrentSession = state
	return nil
}

func (r *memTherapistRepo) BeginCooldown(id, appointmentID string, endsAt time.Time) (bool, error) {
	t, ok := r.therapists[id]
	if !ok {
		return false, fmt.Errorf("therapist %s not found", id)
	}
	cs := t.CurrentSession
	if cs.AppointmentID == nil || *cs.AppointmentID != appointmentID {
		return false, nil
	}
	t.CurrentSession = models.SessionState{IsActive: true, EndsAt: &endsAt}
	return true, nil
}

func (r *memTherapistRepo) ClearSession(id string) error {
	r.therapists[id].CurrentSession = models.SessionState{}
	return nil
}

type memAppointmentRepo struct {
	appointments map[string]*models.Appointment
	failStatus   map[string]bool
	beforeStatus func()
}

func newMemAppointmentRepo(as ...*models.Appointment) *memAppointmentRepo {
	r := &memAppointmentRepo{
		appointments: map[string]*models.Appointment{},
		failStatus:   map[string]bool{},
	}
	for _, a := range as {
		r.appointments[a.ID] = a
	}
	return r
}

func (r *memAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	a, ok := r.appointments[id]
	if !ok {
		return nil, &utils.NotFoundError{Message: fmt.Sprintf("appointment %s not found", id)}
	}
	copied := *a
	return &copied, nil
}

func (r *memAppointmentRepo) Create(a *models.Appointment) error {
	r.appointments[a.ID] = a
	return nil
}

func (r *memAppointmentRepo) UpdateStatus(id string, status models.AppointmentStatus) (bool, error) {
	if r.beforeStatus != nil {
		r.beforeStatus()
	}
	if r.failStatus[id] {
		return false, fmt.Errorf("update failed for %s", id)
	}
	a, ok := r.appointments[id]
	if !ok || a.Status != models.AppointmentScheduled {
		return false, nil
	}
	a.Status = status
	return true, nil
}

func (r *memAppointmentRepo) FindByUser(userID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appointments {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *memAppointmentRepo) FindByTherapist(therapistID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appointments {
		if a.TherapistID == therapistID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *memAppointmentRepo) FindOverdueScheduled(now time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appointments {
		if a.Status == models.AppointmentScheduled && !a.Date.After(now) {
			out = append(out, *a)
		}
	}
	return out, nil
}

type memUserRepo struct {
	users map[string]*models.User
}

func newMemUserRepo(us ...*models.User) *memUserRepo {
	r := &memUserRepo{users: map[string]*models.User{}}
	for _, u := range us {
		r.users[u.ID] = u
	}
	return r
}

func (r *memUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, &utils.NotFoundError{Message: fmt.Sprintf("user %s not found", id)}
	}
	return u, nil
}

func (r *memUserRepo) Create(u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func newTestSessionService(
	therapists *memTherapistRepo,
	appointments *memAppointmentRepo,
	users *memUserRepo,
	now time.Time,
) *DefaultSessionService {
	clock := func() time.Time { return now }
	return &DefaultSessionService{
		Appointments: appointments,
		Therapists:   therapists,
		Users:        users,
		Ledger: &availability.DefaultLedgerService{
			Repo:   therapists,
			Buffer: 10 * time.Minute,
			Now:    clock,
		},
		Now: clock,
	}
}
