package reports

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	contactRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/contact"
	"github.com/m04kA/SMC-SchedulingService/internal/service/reports/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

// Service сервис построения отчетов по встречам
type Service struct {
	apptRepo    AppointmentRepository
	contactRepo ContactRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(apptRepo AppointmentRepository, contactRepo ContactRepository, logger Logger) *Service {
	return &Service{
		apptRepo:    apptRepo,
		contactRepo: contactRepo,
		logger:      logger,
	}
}

// CountByTypeAndMonth возвращает количество встреч заданного типа в заданном месяце
func (s *Service) CountByTypeAndMonth(ctx context.Context, apptType string, month time.Month) (*models.TypeMonthReportResponse, error) {
	s.logger.Info("CountByTypeAndMonth: type=%q, month=%d", apptType, month)

	apptType = strings.TrimSpace(apptType)
	if apptType == "" {
		return nil, fmt.Errorf("%w: appointment type is required", ErrInvalidInput)
	}
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month out of range: %d", ErrInvalidInput, month)
	}

	filter := domain.AppointmentsFilter{
		Type:  ptr.Ptr(apptType),
		Month: ptr.Ptr(month),
	}

	items, err := s.apptRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("CountByTypeAndMonth: repository error: %v", err)
		return nil, fmt.Errorf("%w: CountByTypeAndMonth - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CountByTypeAndMonth: type=%q, month=%d, count=%d", apptType, month, len(items))
	return &models.TypeMonthReportResponse{
		Type:  apptType,
		Month: int(month),
		Count: len(items),
	}, nil
}

// ContactSchedule возвращает расписание встреч контакта
// в часовом поясе наблюдателя.
func (s *Service) ContactSchedule(ctx context.Context, contactID int64, timezone string) (*models.ContactScheduleResponse, error) {
	s.logger.Info("ContactSchedule: contact_id=%d, timezone=%q", contactID, timezone)

	viewer := time.UTC
	if timezone != "" {
		loc, err := time.LoadLocation(timezone)
		if err != nil {
			s.logger.Warn("ContactSchedule: unknown timezone %q: %v", timezone, err)
			return nil, fmt.Errorf("%w: unknown timezone %q", ErrInvalidInput, timezone)
		}
		viewer = loc
	}

	contact, err := s.contactRepo.GetByID(ctx, contactID)
	if err != nil {
		if errors.Is(err, contactRepo.ErrContactNotFound) {
			s.logger.Warn("ContactSchedule: contact id=%d not found", contactID)
			return nil, ErrContactNotFound
		}
		s.logger.Error("ContactSchedule: repository error for contact id=%d: %v", contactID, err)
		return nil, fmt.Errorf("%w: ContactSchedule - repository error: %v", ErrInternal, err)
	}

	filter := domain.AppointmentsFilter{ContactID: ptr.Ptr(contactID)}
	items, err := s.apptRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ContactSchedule: repository error listing appointments: %v", err)
		return nil, fmt.Errorf("%w: ContactSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ContactSchedule: contact_id=%d has %d appointments", contactID, len(items))
	return models.ScheduleFromDomain(contact, items, viewer), nil
}
