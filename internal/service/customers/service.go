package customers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/idalloc"
	customerRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/customer"
	"github.com/m04kA/SMC-SchedulingService/internal/service/customers/models"
)

// Service сервис для работы с клиентами
type Service struct {
	customerRepo CustomerRepository
	apptRepo     AppointmentRepository
	txManager    TxManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(
	customerRepo CustomerRepository,
	apptRepo AppointmentRepository,
	txManager TxManager,
	logger Logger,
) *Service {
	return &Service{
		customerRepo: customerRepo,
		apptRepo:     apptRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Create создает нового клиента.
// ID выделяется последовательно внутри сериализуемой транзакции,
// чтобы конкурентные запросы не получили одинаковый ID.
func (s *Service) Create(ctx context.Context, req *models.CreateCustomerRequest) (*models.CustomerResponse, error) {
	s.logger.Info("Create: creating customer name=%q for user=%d", req.Name, req.UserID)

	if err := s.validateCreate(req); err != nil {
		s.logger.Warn("Create: invalid request: %v", err)
		return nil, err
	}

	author := strconv.FormatInt(req.UserID, 10)
	var created *domain.Customer

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		count, err := s.customerRepo.Count(txCtx)
		if err != nil {
			return fmt.Errorf("count customers: %w", err)
		}

		id, err := idalloc.Allocate(txCtx, count, s.customerRepo.ExistsID)
		if err != nil {
			return fmt.Errorf("allocate customer id: %w", err)
		}

		customer := &domain.Customer{
			ID:            id,
			Name:          strings.TrimSpace(req.Name),
			Address:       strings.TrimSpace(req.Address),
			PostalCode:    strings.TrimSpace(req.PostalCode),
			Phone:         strings.TrimSpace(req.Phone),
			Division:      strings.TrimSpace(req.Division),
			CreatedBy:     author,
			LastUpdatedBy: author,
		}

		created, err = s.customerRepo.Create(txCtx, customer)
		if err != nil {
			return fmt.Errorf("create customer: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, idalloc.ErrExhausted) {
			s.logger.Error("Create: customer id space exhausted")
			return nil, fmt.Errorf("%w: Create - id allocation: %v", ErrInternal, err)
		}
		s.logger.Error("Create: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: Create - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created customer id=%d", created.ID)
	return models.FromDomainCustomer(created), nil
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CustomerResponse, error) {
	s.logger.Info("GetByID: fetching customer id=%d", id)

	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("GetByID: customer id=%d not found", id)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("GetByID: repository error for customer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched customer id=%d", id)
	return models.FromDomainCustomer(customer), nil
}

// List получает список всех клиентов
func (s *Service) List(ctx context.Context) (*models.CustomerListResponse, error) {
	s.logger.Info("List: fetching customers")

	items, err := s.customerRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d customers", len(items))
	return models.FromDomainCustomers(items), nil
}

// Delete удаляет клиента вместе со всеми его встречами.
// Обе операции выполняются в одной транзакции.
func (s *Service) Delete(ctx context.Context, id int64) (*models.DeleteCustomerResponse, error) {
	s.logger.Info("Delete: deleting customer id=%d", id)

	var deletedAppts int64

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		n, err := s.apptRepo.DeleteByCustomerID(txCtx, id)
		if err != nil {
			return fmt.Errorf("delete customer appointments: %w", err)
		}
		deletedAppts = n

		if err := s.customerRepo.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete customer: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("Delete: customer id=%d not found", id)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("Delete: transaction failed for customer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Delete - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted customer id=%d with %d appointments", id, deletedAppts)
	return &models.DeleteCustomerResponse{
		CustomerID:          id,
		DeletedAppointments: deletedAppts,
	}, nil
}

// validateCreate проверяет поля запроса на создание клиента
func (s *Service) validateCreate(req *models.CreateCustomerRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxTitleLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}
	if strings.TrimSpace(req.Address) == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.PostalCode) == "" {
		return fmt.Errorf("%w: postal code is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	return nil
}
