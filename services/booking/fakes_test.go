package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	therapistRepo "mindhaven/database/repository/therapist"
	"mindhaven/models"
	"mindhaven/utils"
)

type fakeTherapistRepo struct {
	mu           sync.Mutex
	therapists   map[string]*models.Therapist
	beforeOccupy func()
}

func newFakeTherapistRepo() *fakeTherapistRepo {
	return &fakeTherapistRepo{therapists: map[string]*models.Therapist{}}
}

func (f *fakeTherapistRepo) add(t *models.Therapist) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *t
	f.therapists[t.ID] = &copied
}

func (f *fakeTherapistRepo) GetByID(id string) (*models.Therapist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.therapists[id]
	if !ok {
		return nil, &utils.NotFoundError{Message: fmt.Sprintf("therapist %s not found", id)}
	}
	copied := *t
	return &copied, nil
}

func (f *fakeTherapistRepo) Create(t *models.Therapist) error {
	f.add(t)
	return nil
}

func (f *fakeTherapistRepo) FindWithActiveSession() ([]models.Therapist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Therapist
	for _, t := range f.therapists {
		if t.CurrentSession.IsActive {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTherapistRepo) OccupyIfIdle(id string, state models.SessionState) error {
	if f.beforeOccupy != nil {
		f.beforeOccupy()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.therapists[id]
	if !ok {
		return fmt.Errorf("therapist %s not found", id)
	}
	if t.CurrentSession.IsActive {
		return therapistRepo.ErrOccupied
	}
	t.CurrentSession = state
	return nil
}

func (f *fakeTherapistRepo) BeginCooldown(id, appointmentID string, endsAt time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.therapists[id]
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

func (f *fakeTherapistRepo) ClearSession(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.therapists[id]
	if !ok {
		return fmt.Errorf("therapist %s not found", id)
	}
	t.CurrentSession = models.SessionState{}
	return nil
}

func (f *fakeTherapistRepo) session(id string) models.SessionState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.therapists[id].CurrentSession
}

type fakeAppointmentRepo struct {
	mu           sync.Mutex
	appointments map[string]*models.Appointment
	failCreate   bool
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: map[string]*models.Appointment{}}
}

func (f *fakeAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.appointments[id]
	if !ok {
		return nil, &utils.NotFoundError{Message: fmt.Sprintf("appointment %s not found", id)}
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAppointmentRepo) Create(a *models.Appointment) error {
	if f.failCreate {
		return errors.New("insert failed")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *a
	f.appointments[a.ID] = &copied
	return nil
}

func (f *fakeAppointmentRepo) UpdateStatus(id string, status models.AppointmentStatus) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.appointments[id]
	if !ok || a.Status != models.AppointmentScheduled {
		return false, nil
	}
	a.Status = status
	return true, nil
}

func (f *fakeAppointmentRepo) FindByUser(userID string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) FindByTherapist(therapistID string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.TherapistID == therapistID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) FindOverdueScheduled(now time.Time) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.Status == models.AppointmentScheduled && !a.Date.After(now) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.appointments)
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	f := &fakeUserRepo{users: map[string]*models.User{}}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, &utils.NotFoundError{Message: fmt.Sprintf("user %s not found", id)}
	}
	return u, nil
}

func (f *fakeUserRepo) Create(u *models.User) error {
	f.users[u.ID] = u
	return nil
}

type fakeNotifier struct {
	err   error
	calls chan string
}

func newFakeNotifier(err error) *fakeNotifier {
	return &fakeNotifier{err: err, calls: make(chan string, 4)}
}

func (f *fakeNotifier) SendBookingConfirmation(_ context.Context, _ *models.User, _ *models.Therapist, a *models.Appointment) error {
	f.calls <- a.ID
	return f.err
}
