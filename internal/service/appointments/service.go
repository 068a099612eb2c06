package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	apptRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SchedulingService/internal/service/appointments/models"
)

// Service сервис для чтения и удаления встреч
type Service struct {
	apptRepo AppointmentRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса встреч
func NewService(apptRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		apptRepo: apptRepo,
		logger:   logger,
	}
}

// GetByID получает встречу по ID.
// Время в ответе приводится к часовому поясу наблюдателя.
func (s *Service) GetByID(ctx context.Context, id int64, timezone string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	viewer, err := s.resolveTimezone(timezone)
	if err != nil {
		return nil, err
	}

	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appt, viewer), nil
}

// List получает список встреч с фильтрацией по клиенту, контакту, типу и месяцу
func (s *Service) List(ctx context.Context, filter domain.AppointmentsFilter, timezone string) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments, filter=%+v", filter)

	viewer, err := s.resolveTimezone(timezone)
	if err != nil {
		return nil, err
	}

	items, err := s.apptRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments", len(items))
	return models.FromDomainAppointments(items, viewer), nil
}

// Delete удаляет встречу по ID
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting appointment id=%d", id)

	if err := s.apptRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%d", id)
	return nil
}

// resolveTimezone загружает часовой пояс наблюдателя, UTC по умолчанию
func (s *Service) resolveTimezone(timezone string) (*time.Location, error) {
	if timezone == "" {
		return time.UTC, nil
	}
	viewer, err := time.LoadLocation(timezone)
	if err != nil {
		s.logger.Warn("resolveTimezone: unknown timezone %q: %v", timezone, err)
		return nil, fmt.Errorf("%w: unknown timezone %q", ErrInvalidInput, timezone)
	}
	return viewer, nil
}
