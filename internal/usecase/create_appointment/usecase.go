package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/idalloc"
	"github.com/m04kA/SMC-SchedulingService/internal/overlap"
	"github.com/m04kA/SMC-SchedulingService/internal/schedule"
)

// UseCase use case для создания встречи
type UseCase struct {
	apptRepo     AppointmentRepository
	customerRepo CustomerRepository
	contactRepo  ContactRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
	companyHours domain.CompanyHours
	policy       domain.OverlapPolicy
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	customerRepo CustomerRepository,
	contactRepo ContactRepository,
	txManager TransactionManager,
	companyHours domain.CompanyHours,
	policy domain.OverlapPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:     apptRepo,
		customerRepo: customerRepo,
		contactRepo:  contactRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		companyHours: companyHours,
		policy:       policy,
	}
}

// Execute выполняет use case создания встречи
// Проверка пересечений и запись выполняются в сериализуемой транзакции,
// чтобы конкурентные запросы не создали конфликтующие встречи
// При любом отказе хранилище не изменяется и идентификатор не выделяется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%d, customer=%d, contact=%d, date=%s, time=%02d:%02d, duration=%dm",
		req.UserID, req.CustomerID, req.ContactID, req.Date.Format(domain.DateFormat),
		req.Hour, req.Minute, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Резолвим таймзону клиента
	// Таймзона компании валидируется при старте, таймзона клиента - на каждый запрос
	viewerLoc, err := time.LoadLocation(req.Timezone)
	if err != nil {
		uc.logger.Warn("CreateAppointment: unknown timezone %q", req.Timezone)
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, req.Timezone)
	}

	// 3. Собираем абсолютный момент начала из локальных стенных часов клиента
	year, month, day := req.Date.Date()
	start := time.Date(year, month, day, req.Hour, req.Minute, 0, 0, viewerLoc)
	end := start.Add(time.Duration(req.DurationMinutes) * time.Minute)

	// 4. Время начала должно быть строго в будущем
	now := uc.timeProvider.Now()
	if !start.After(now) {
		uc.logger.Warn("CreateAppointment: start time %s already passed", start.Format(time.RFC3339))
		return nil, ErrPastStartTime
	}

	// 5. Встреча должна целиком попадать в локализованное рабочее окно
	localized := schedule.Localize(uc.companyHours, viewerLoc, req.Date)
	if start.Before(localized.LocalOpen) {
		uc.logger.Warn("CreateAppointment: appointment starts %s, company opens %s",
			start.Format(time.RFC3339), localized.LocalOpen.Format(time.RFC3339))
		return nil, ErrOutsideBusinessHours
	}
	if end.After(localized.LocalClose) {
		uc.logger.Warn("CreateAppointment: appointment ends %s, company closes %s",
			end.Format(time.RFC3339), localized.LocalClose.Format(time.RFC3339))
		return nil, ErrOutsideBusinessHours
	}

	// 6. Проверяем существование клиента и контакта
	if err := uc.checkParticipants(ctx, req.CustomerID, req.ContactID); err != nil {
		return nil, err
	}

	username := strconv.FormatInt(req.UserID, 10)
	candidate := &domain.Appointment{
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		Type:          req.Type,
		CustomerID:    req.CustomerID,
		ContactID:     req.ContactID,
		UserID:        req.UserID,
		Start:         start.UTC(),
		End:           end.UTC(),
		CreatedBy:     username,
		LastUpdatedBy: username,
	}

	var result *domain.Appointment

	// 7. Проверка пересечений + выделение ID + запись атомарно
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Достаем все встречи, разделяющие с кандидатом клиента или контакта
		existing, err := uc.apptRepo.GetByParticipants(txCtx, req.CustomerID, req.ContactID)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get existing appointments: %v", err)
			return fmt.Errorf("%w: failed to get existing appointments: %v", ErrInternal, err)
		}

		// 7.2. Детектор пересечений; excludeID = 0 - ничего не исключаем
		if res := overlap.Detect(candidate, existing, uc.policy, 0); res.Conflict {
			uc.logger.Warn("CreateAppointment: conflict with appointment id=%d (%s)",
				res.ConflictingID, res.EntityKind)
			return &ConflictError{EntityKind: res.EntityKind, ConflictingID: res.ConflictingID}
		}

		// 7.3. Выделяем наименьший свободный идентификатор
		count, err := uc.apptRepo.Count(txCtx)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to count appointments: %v", err)
			return fmt.Errorf("%w: failed to count appointments: %v", ErrInternal, err)
		}

		id, err := idalloc.Allocate(txCtx, count, uc.apptRepo.ExistsID)
		if err != nil {
			if errors.Is(err, idalloc.ErrExhausted) {
				uc.logger.Error("CreateAppointment: id space exhausted")
				return err
			}
			uc.logger.Error("CreateAppointment: failed to allocate id: %v", err)
			return fmt.Errorf("%w: failed to allocate id: %v", ErrInternal, err)
		}
		candidate.ID = id

		// 7.4. Сохраняем встречу
		created, err := uc.apptRepo.Create(txCtx, candidate)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return toResponse(result), nil
}

// checkParticipants проверяет существование клиента и контакта встречи
func (uc *UseCase) checkParticipants(ctx context.Context, customerID, contactID int64) error {
	customerExists, err := uc.customerRepo.ExistsID(ctx, customerID)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to check customer id=%d: %v", customerID, err)
		return fmt.Errorf("%w: failed to check customer: %v", ErrInternal, err)
	}
	if !customerExists {
		uc.logger.Warn("CreateAppointment: customer id=%d not found", customerID)
		return ErrCustomerNotFound
	}

	contactExists, err := uc.contactRepo.ExistsID(ctx, contactID)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to check contact id=%d: %v", contactID, err)
		return fmt.Errorf("%w: failed to check contact: %v", ErrInternal, err)
	}
	if !contactExists {
		uc.logger.Warn("CreateAppointment: contact id=%d not found", contactID)
		return ErrContactNotFound
	}

	return nil
}

func toResponse(appt *domain.Appointment) *Response {
	return &Response{
		ID:              appt.ID,
		Title:           appt.Title,
		Description:     appt.Description,
		Location:        appt.Location,
		Type:            appt.Type,
		CustomerID:      appt.CustomerID,
		ContactID:       appt.ContactID,
		UserID:          appt.UserID,
		Start:           appt.Start,
		End:             appt.End,
		DurationMinutes: appt.DurationMinutes(),
		CreatedAt:       appt.CreatedAt,
		UpdatedAt:       appt.UpdatedAt,
	}
}
