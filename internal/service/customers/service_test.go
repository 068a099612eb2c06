package customers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	customerRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/customer"
	"github.com/m04kA/SMC-SchedulingService/internal/service/customers/models"
)

// --- Фейки ---

type fakeLogger struct{}

func (fakeLogger) Info(string, ...interface{})  {}
func (fakeLogger) Warn(string, ...interface{})  {}
func (fakeLogger) Error(string, ...interface{}) {}

type fakeCustomerRepo struct {
	customers map[int64]*domain.Customer
	created   *domain.Customer
}

func newFakeCustomerRepo(ids ...int64) *fakeCustomerRepo {
	r := &fakeCustomerRepo{customers: make(map[int64]*domain.Customer)}
	for _, id := range ids {
		r.customers[id] = &domain.Customer{ID: id, Name: "existing"}
	}
	return r
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	stored := *c
	r.customers[c.ID] = &stored
	r.created = &stored
	return &stored, nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, customerRepo.ErrCustomerNotFound
	}
	return c, nil
}

func (r *fakeCustomerRepo) List(context.Context) ([]*domain.Customer, error) {
	out := make([]*domain.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.customers[id]; !ok {
		return customerRepo.ErrCustomerNotFound
	}
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) ExistsID(_ context.Context, id int64) (bool, error) {
	_, ok := r.customers[id]
	return ok, nil
}

func (r *fakeCustomerRepo) Count(context.Context) (int64, error) {
	return int64(len(r.customers)), nil
}

type fakeApptRepo struct {
	deletedFor map[int64]int64
}

func (r *fakeApptRepo) DeleteByCustomerID(_ context.Context, customerID int64) (int64, error) {
	n := r.deletedFor[customerID]
	delete(r.deletedFor, customerID)
	return n, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(custRepo *fakeCustomerRepo, apptRepo *fakeApptRepo) *Service {
	if apptRepo == nil {
		apptRepo = &fakeApptRepo{deletedFor: map[int64]int64{}}
	}
	return NewService(custRepo, apptRepo, fakeTxManager{}, fakeLogger{})
}

func validCreateRequest() *models.CreateCustomerRequest {
	return &models.CreateCustomerRequest{
		UserID:     42,
		Name:       "Acme Corp",
		Address:    "123 Main St",
		PostalCode: "10001",
		Phone:      "+1 555 0100",
		Division:   "East",
	}
}

// --- Тесты ---

func TestCreate_AllocatesSequentialID(t *testing.T) {
	svc := newTestService(newFakeCustomerRepo(), nil)

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Acme Corp", resp.Name)
	assert.Equal(t, "42", resp.CreatedBy)
}

func TestCreate_ReusesFreedID(t *testing.T) {
	// Занятые ID {1, 2, 4}: дыра на 3 переиспользуется
	svc := newTestService(newFakeCustomerRepo(1, 2, 4), nil)

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.ID)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.CreateCustomerRequest)
	}{
		{"missing name", func(r *models.CreateCustomerRequest) { r.Name = "" }},
		{"blank name", func(r *models.CreateCustomerRequest) { r.Name = "   " }},
		{"missing address", func(r *models.CreateCustomerRequest) { r.Address = "" }},
		{"missing postal code", func(r *models.CreateCustomerRequest) { r.PostalCode = "" }},
		{"missing phone", func(r *models.CreateCustomerRequest) { r.Phone = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeCustomerRepo()
			svc := newTestService(repo, nil)

			req := validCreateRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, repo.created)
		})
	}
}

func TestDelete_CascadesAppointments(t *testing.T) {
	custRepo := newFakeCustomerRepo(7)
	apptRepo := &fakeApptRepo{deletedFor: map[int64]int64{7: 3}}
	svc := newTestService(custRepo, apptRepo)

	resp, err := svc.Delete(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.CustomerID)
	assert.Equal(t, int64(3), resp.DeletedAppointments)

	_, err = svc.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	svc := newTestService(newFakeCustomerRepo(), nil)

	_, err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(newFakeCustomerRepo(), nil)

	_, err := svc.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}
