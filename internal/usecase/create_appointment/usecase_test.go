package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
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
	created     *domain.Appointment
	createCalls int
}

func (r *fakeApptRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	r.createCalls++
	stored := *appt
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.created = &stored
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

func (r *fakeApptRepo) ExistsID(_ context.Context, id int64) (bool, error) {
	for _, a := range r.appts {
		if a.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApptRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.appts)), nil
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

func testHours(t *testing.T) domain.CompanyHours {
	t.Helper()
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return domain.CompanyHours{
		Location:        ny,
		OpenHour:        8,
		OpenMinute:      0,
		DurationMinutes: 840, // 08:00 - 22:00
	}
}

func newTestUseCase(t *testing.T, apptRepo *fakeApptRepo) (*UseCase, *fakeTxManager) {
	t.Helper()
	txMgr := &fakeTxManager{}
	uc := NewUseCase(
		apptRepo,
		&fakeExistsRepo{exists: true},
		&fakeExistsRepo{exists: true},
		txMgr,
		testHours(t),
		domain.OverlapPolicy{CheckByCustomer: true},
		fakeLogger{},
	)
	// Фиксируем часы: полдень UTC 1 октября 2025
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2025, time.October, 1, 12, 0, 0, 0, time.UTC)}
	return uc, txMgr
}

func validRequest() *Request {
	return &Request{
		UserID:          42,
		Title:           "Planning session",
		Type:            "Planning",
		CustomerID:      7,
		ContactID:       3,
		Date:            time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC),
		Hour:            10,
		Minute:          0,
		DurationMinutes: 60,
		Timezone:        "America/New_York",
	}
}

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func nyTime(t *testing.T, day, hour, min int) time.Time {
	t.Helper()
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return time.Date(2025, time.October, day, hour, min, 0, 0, ny)
}

// --- Тесты ---

func TestExecute_Success(t *testing.T) {
	repo := &fakeApptRepo{}
	uc, txMgr := newTestUseCase(t, repo)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, 1, txMgr.calls)
	assert.Equal(t, 1, repo.createCalls)

	// Начало хранится в UTC: 10:00 EDT = 14:00 UTC
	assert.Equal(t, time.Date(2025, time.October, 15, 14, 0, 0, 0, time.UTC), resp.Start)
	assert.Equal(t, time.UTC, repo.created.Start.Location())

	// Автор записывается как строковый ID пользователя
	assert.Equal(t, "42", repo.created.CreatedBy)
	assert.Equal(t, "42", repo.created.LastUpdatedBy)
}

func TestExecute_PastStartTime(t *testing.T) {
	repo := &fakeApptRepo{}
	uc, txMgr := newTestUseCase(t, repo)

	req := validRequest()
	req.Date = time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastStartTime)

	// Отказ до транзакции: хранилище не тронуто
	assert.Equal(t, 0, txMgr.calls)
	assert.Equal(t, 0, repo.createCalls)
}

func TestExecute_OutsideBusinessHours(t *testing.T) {
	repo := &fakeApptRepo{}
	uc, txMgr := newTestUseCase(t, repo)

	// 21:30 + 60 минут = 22:30, компания закрывается в 22:00
	req := validRequest()
	req.Hour = 21
	req.Minute = 30

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)
	assert.Equal(t, 0, txMgr.calls)
}

func TestExecute_StartsBeforeOpen(t *testing.T) {
	repo := &fakeApptRepo{}
	uc, txMgr := newTestUseCase(t, repo)

	// 05:00 + 60 минут: заканчивается задолго до закрытия,
	// но компания открывается только в 08:00
	req := validRequest()
	req.Hour = 5
	req.Minute = 0

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)
	assert.Equal(t, 0, txMgr.calls)
}

func TestExecute_EndsExactlyAtClose(t *testing.T) {
	repo := &fakeApptRepo{}
	uc, _ := newTestUseCase(t, repo)

	// 21:00 + 60 минут = ровно 22:00 - допустимо
	req := validRequest()
	req.Hour = 21
	req.Minute = 0

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_WallClockRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		hour     int
		minute   int
	}{
		{"same zone", "America/New_York", 10, 30},
		{"fractional offset", "Asia/Kolkata", 18, 45},
		{"utc viewer", "UTC", 13, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeApptRepo{}
			uc, _ := newTestUseCase(t, repo)

			req := validRequest()
			req.Timezone = tt.timezone
			req.Hour = tt.hour
			req.Minute = tt.minute

			resp, err := uc.Execute(context.Background(), req)
			require.NoError(t, err)

			// Конвертация стенных часов в абсолютный момент и обратно
			// через ту же таймзону восстанавливает исходные поля
			back := resp.Start.In(mustLoad(t, tt.timezone))
			year, month, day := req.Date.Date()
			assert.Equal(t, year, back.Year())
			assert.Equal(t, month, back.Month())
			assert.Equal(t, day, back.Day())
			assert.Equal(t, tt.hour, back.Hour())
			assert.Equal(t, tt.minute, back.Minute())
		})
	}
}

func TestExecute_SchedulingConflict(t *testing.T) {
	repo := &fakeApptRepo{
		appts: []*domain.Appointment{
			{
				ID:         5,
				CustomerID: 7,
				ContactID:  9,
				Start:      nyTime(t, 15, 9, 30).UTC(),
				End:        nyTime(t, 15, 10, 30).UTC(),
			},
		},
	}
	uc, _ := newTestUseCase(t, repo)

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchedulingConflict)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, int64(5), conflict.ConflictingID)
	assert.Equal(t, overlap.KindCustomer, conflict.EntityKind)

	assert.Equal(t, 0, repo.createCalls)
}

func TestExecute_BackToBackAllowed(t *testing.T) {
	// Существующая встреча 09:00-10:00, кандидат 10:00-11:00
	repo := &fakeApptRepo{
		appts: []*domain.Appointment{
			{
				ID:         1,
				CustomerID: 7,
				ContactID:  3,
				Start:      nyTime(t, 15, 9, 0).UTC(),
				End:        nyTime(t, 15, 10, 0).UTC(),
			},
		},
	}
	uc, _ := newTestUseCase(t, repo)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.ID)
}

func TestExecute_ReusesFreedID(t *testing.T) {
	// Занятые ID {1, 2, 4}: выделение начинается с count=3 и находит дыру
	mk := func(id int64, hour int) *domain.Appointment {
		return &domain.Appointment{
			ID:         id,
			CustomerID: 100 + id,
			ContactID:  200 + id,
			Start:      nyTime(t, 16, hour, 0).UTC(),
			End:        nyTime(t, 16, hour+1, 0).UTC(),
		}
	}
	repo := &fakeApptRepo{
		appts: []*domain.Appointment{mk(1, 8), mk(2, 9), mk(4, 10)},
	}
	uc, _ := newTestUseCase(t, repo)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.ID)
}

func TestExecute_InvalidTimezone(t *testing.T) {
	repo := &fakeApptRepo{}
	uc, _ := newTestUseCase(t, repo)

	req := validRequest()
	req.Timezone = "Mars/Olympus_Mons"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}

func TestExecute_CustomerNotFound(t *testing.T) {
	repo := &fakeApptRepo{}
	uc, _ := newTestUseCase(t, repo)
	uc.customerRepo = &fakeExistsRepo{exists: false}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCustomerNotFound)
	assert.Equal(t, 0, repo.createCalls)
}

func TestExecute_ContactNotFound(t *testing.T) {
	repo := &fakeApptRepo{}
	uc, _ := newTestUseCase(t, repo)
	uc.contactRepo = &fakeExistsRepo{exists: false}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing title", func(r *Request) { r.Title = "" }},
		{"missing type", func(r *Request) { r.Type = "" }},
		{"zero user", func(r *Request) { r.UserID = 0 }},
		{"zero customer", func(r *Request) { r.CustomerID = 0 }},
		{"zero contact", func(r *Request) { r.ContactID = 0 }},
		{"hour out of range", func(r *Request) { r.Hour = 24 }},
		{"minute out of range", func(r *Request) { r.Minute = 60 }},
		{"duration too short", func(r *Request) { r.DurationMinutes = 3 }},
		{"duration too long", func(r *Request) { r.DurationMinutes = 481 }},
		{"missing timezone", func(r *Request) { r.Timezone = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeApptRepo{}
			uc, txMgr := newTestUseCase(t, repo)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, 0, txMgr.calls)
		})
	}
}
