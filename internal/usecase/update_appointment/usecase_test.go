package update_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	apptRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SchedulingService/internal/overlap"
)

// --- Фейки ---

type fakeLogger struct{}

func (fakeLogger) Info(string, ...interface{})  {}
func (fakeLogger) Warn(string, ...interface{})  {}
func (fakeLogger) Error(string, ...interface{}) {}

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time { return p.now }

type fakeApptRepo struct {
	appts       []*domain.Appointment
	updated     *domain.Appointment
	updateCalls int
}

func (r *fakeApptRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	for _, a := range r.appts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, apptRepo.ErrAppointmentNotFound
}

func (r *fakeApptRepo) Update(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	r.updateCalls++
	stored := *appt
	stored.UpdatedAt = time.Now()
	r.updated = &stored
	return &stored, nil
}

func (r *fakeApptRepo) GetByParticipants(_ context.Context, customerID, contactID int64) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, a := range r.appts {
		if a.CustomerID == customerID || a.ContactID == contactID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeExistsRepo struct {
	exists bool
}

func (r *fakeExistsRepo) ExistsID(context.Context, int64) (bool, error) {
	return r.exists, nil
}

type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

// --- Хелперы ---

func nyTime(t *testing.T, day, hour, min int) time.Time {
	t.Helper()
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return time.Date(2025, time.October, day, hour, min, 0, 0, ny)
}

func newTestUseCase(t *testing.T, repo *fakeApptRepo) *UseCase {
	t.Helper()
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	uc := NewUseCase(
		repo,
		&fakeExistsRepo{exists: true},
		&fakeExistsRepo{exists: true},
		&fakeTxManager{},
		domain.CompanyHours{
			Location:        ny,
			OpenHour:        8,
			OpenMinute:      0,
			DurationMinutes: 840,
		},
		domain.OverlapPolicy{CheckByCustomer: true},
		fakeLogger{},
	)
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2025, time.October, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func existingAppt(t *testing.T) *domain.Appointment {
	return &domain.Appointment{
		ID:            10,
		Title:         "Initial meeting",
		Type:          "Planning",
		CustomerID:    7,
		ContactID:     3,
		UserID:        42,
		Start:         nyTime(t, 15, 10, 0).UTC(),
		End:           nyTime(t, 15, 11, 0).UTC(),
		CreatedBy:     "42",
		LastUpdatedBy: "42",
	}
}

func validRequest() *Request {
	return &Request{
		ID:              10,
		UserID:          77,
		Title:           "Rescheduled meeting",
		Type:            "Planning",
		CustomerID:      7,
		ContactID:       3,
		Date:            time.Date(2025, time.October, 16, 0, 0, 0, 0, time.UTC),
		Hour:            14,
		Minute:          0,
		DurationMinutes: 90,
		Timezone:        "America/New_York",
	}
}

// --- Тесты ---

func TestExecute_Success(t *testing.T) {
	repo := &fakeApptRepo{appts: []*domain.Appointment{existingAppt(t)}}
	uc := newTestUseCase(t, repo)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "Rescheduled meeting", resp.Title)
	assert.Equal(t, 90, resp.DurationMinutes)
	assert.Equal(t, 1, repo.updateCalls)

	// 14:00 EDT = 18:00 UTC
	assert.Equal(t, time.Date(2025, time.October, 16, 18, 0, 0, 0, time.UTC), resp.Start)
}

func TestExecute_PreservesCreatedBy(t *testing.T) {
	repo := &fakeApptRepo{appts: []*domain.Appointment{existingAppt(t)}}
	uc := newTestUseCase(t, repo)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Автор создания сохраняется, автор изменения - новый пользователь
	assert.Equal(t, "42", repo.updated.CreatedBy)
	assert.Equal(t, "77", repo.updated.LastUpdatedBy)
}

func TestExecute_NotFound(t *testing.T) {
	repo := &fakeApptRepo{}
	uc := newTestUseCase(t, repo)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.Equal(t, 0, repo.updateCalls)
}

func TestExecute_IgnoresOwnPriorVersion(t *testing.T) {
	// Перенос на слот, пересекающийся с собственной прежней версией
	repo := &fakeApptRepo{appts: []*domain.Appointment{existingAppt(t)}}
	uc := newTestUseCase(t, repo)

	req := validRequest()
	req.Date = time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC)
	req.Hour = 10
	req.Minute = 30

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.updateCalls)
}

func TestExecute_ConflictWithOther(t *testing.T) {
	other := &domain.Appointment{
		ID:         11,
		CustomerID: 7,
		ContactID:  8,
		Start:      nyTime(t, 16, 14, 30).UTC(),
		End:        nyTime(t, 16, 15, 30).UTC(),
	}
	repo := &fakeApptRepo{appts: []*domain.Appointment{existingAppt(t), other}}
	uc := newTestUseCase(t, repo)

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchedulingConflict)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, int64(11), conflict.ConflictingID)
	assert.Equal(t, overlap.KindCustomer, conflict.EntityKind)

	assert.Equal(t, 0, repo.updateCalls)
}

func TestExecute_PastStartTime(t *testing.T) {
	repo := &fakeApptRepo{appts: []*domain.Appointment{existingAppt(t)}}
	uc := newTestUseCase(t, repo)

	req := validRequest()
	req.Date = time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastStartTime)
	assert.Equal(t, 0, repo.updateCalls)
}

func TestExecute_OutsideBusinessHours(t *testing.T) {
	repo := &fakeApptRepo{appts: []*domain.Appointment{existingAppt(t)}}
	uc := newTestUseCase(t, repo)

	req := validRequest()
	req.Hour = 21
	req.Minute = 30

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)
}

func TestExecute_StartsBeforeOpen(t *testing.T) {
	repo := &fakeApptRepo{appts: []*domain.Appointment{existingAppt(t)}}
	uc := newTestUseCase(t, repo)

	// Перенос на 05:00: компания открывается только в 08:00
	req := validRequest()
	req.Hour = 5
	req.Minute = 0

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)
	assert.Equal(t, 0, repo.updateCalls)
}
