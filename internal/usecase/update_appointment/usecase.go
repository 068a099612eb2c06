package update_appointment

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	apptRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SchedulingService/internal/overlap"
	"github.com/m04kA/SMC-SchedulingService/internal/schedule"
)

// UseCase use case для обновления встречи
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
	repo AppointmentRepository,
	customerRepo CustomerRepository,
	contactRepo ContactRepository,
	txManager TransactionManager,
	companyHours domain.CompanyHours,
	policy domain.OverlapPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:     repo,
		customerRepo: customerRepo,
		contactRepo:  contactRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		companyHours: companyHours,
		policy:       policy,
	}
}

// Execute выполняет use case обновления встречи
// Прежняя версия встречи исключается из проверки пересечений по её ID
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointment: id=%d, user=%d, customer=%d, contact=%d, date=%s, time=%02d:%02d",
		req.ID, req.UserID, req.CustomerID, req.ContactID,
		req.Date.Format(domain.DateFormat), req.Hour, req.Minute)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Резолвим таймзону клиента
	viewerLoc, err := time.LoadLocation(req.Timezone)
	if err != nil {
		uc.logger.Warn("UpdateAppointment: unknown timezone %q", req.Timezone)
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, req.Timezone)
	}

	// 3. Собираем абсолютный момент начала из локальных стенных часов клиента
	year, month, day := req.Date.Date()
	start := time.Date(year, month, day, req.Hour, req.Minute, 0, 0, viewerLoc)
	end := start.Add(time.Duration(req.DurationMinutes) * time.Minute)

	// 4. Время начала должно быть строго в будущем
	now := uc.timeProvider.Now()
	if !start.After(now) {
		uc.logger.Warn("UpdateAppointment: start time %s already passed", start.Format(time.RFC3339))
		return nil, ErrPastStartTime
	}

	// 5. Встреча должна целиком попадать в локализованное рабочее окно
	localized := schedule.Localize(uc.companyHours, viewerLoc, req.Date)
	if start.Before(localized.LocalOpen) {
		uc.logger.Warn("UpdateAppointment: appointment starts %s, company opens %s",
			start.Format(time.RFC3339), localized.LocalOpen.Format(time.RFC3339))
		return nil, ErrOutsideBusinessHours
	}
	if end.After(localized.LocalClose) {
		uc.logger.Warn("UpdateAppointment: appointment ends %s, company closes %s",
			end.Format(time.RFC3339), localized.LocalClose.Format(time.RFC3339))
		return nil, ErrOutsideBusinessHours
	}

	// 6. Проверяем существование клиента и контакта
	if err := uc.checkParticipants(ctx, req.CustomerID, req.ContactID); err != nil {
		return nil, err
	}

	var result *domain.Appointment

	// 7. Проверка пересечений + перезапись атомарно
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Прежняя версия должна существовать
		previous, err := uc.apptRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("UpdateAppointment: appointment id=%d not found", req.ID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get appointment id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		updated := &domain.Appointment{
			ID:            req.ID,
			Title:         req.Title,
			Description:   req.Description,
			Location:      req.Location,
			Type:          req.Type,
			CustomerID:    req.CustomerID,
			ContactID:     req.ContactID,
			UserID:        req.UserID,
			Start:         start.UTC(),
			End:           end.UTC(),
			CreatedBy:     previous.CreatedBy,
			LastUpdatedBy: strconv.FormatInt(req.UserID, 10),
		}

		// 7.2. Достаем все встречи, разделяющие с кандидатом клиента или контакта
		existing, err := uc.apptRepo.GetByParticipants(txCtx, req.CustomerID, req.ContactID)
		if err != nil {
			uc.logger.Error("UpdateAppointment: failed to get existing appointments: %v", err)
			return fmt.Errorf("%w: failed to get existing appointments: %v", ErrInternal, err)
		}

		// 7.3. Детектор пересечений; собственная прежняя версия исключается по ID
		if res := overlap.Detect(updated, existing, uc.policy, req.ID); res.Conflict {
			uc.logger.Warn("UpdateAppointment: conflict with appointment id=%d (%s)",
				res.ConflictingID, res.EntityKind)
			return &ConflictError{EntityKind: res.EntityKind, ConflictingID: res.ConflictingID}
		}

		// 7.4. Перезаписываем встречу под тем же ID
		saved, err := uc.apptRepo.Update(txCtx, updated)
		if err != nil {
			uc.logger.Error("UpdateAppointment: failed to update appointment id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		result = saved
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateAppointment: successfully updated appointment id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		Title:           result.Title,
		Description:     result.Description,
		Location:        result.Location,
		Type:            result.Type,
		CustomerID:      result.CustomerID,
		ContactID:       result.ContactID,
		UserID:          result.UserID,
		Start:           result.Start,
		End:             result.End,
		DurationMinutes: result.DurationMinutes(),
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// checkParticipants проверяет существование клиента и контакта встречи
func (uc *UseCase) checkParticipants(ctx context.Context, customerID, contactID int64) error {
	customerExists, err := uc.customerRepo.ExistsID(ctx, customerID)
	if err != nil {
		uc.logger.Error("UpdateAppointment: failed to check customer id=%d: %v", customerID, err)
		return fmt.Errorf("%w: failed to check customer: %v", ErrInternal, err)
	}
	if !customerExists {
		uc.logger.Warn("UpdateAppointment: customer id=%d not found", customerID)
		return ErrCustomerNotFound
	}

	contactExists, err := uc.contactRepo.ExistsID(ctx, contactID)
	if err != nil {
		uc.logger.Error("UpdateAppointment: failed to check contact id=%d: %v", contactID, err)
		return fmt.Errorf("%w: failed to check contact: %v", ErrInternal, err)
	}
	if !contactExists {
		uc.logger.Warn("UpdateAppointment: contact id=%d not found", contactID)
		return ErrContactNotFound
	}

	return nil
}
