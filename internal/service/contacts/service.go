package contacts

import (
	"context"
	"errors"
	"fmt"

	contactRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/contact"
	"github.com/m04kA/SMC-SchedulingService/internal/service/contacts/models"
)

// Service сервис для чтения справочника контактов
type Service struct {
	contactRepo ContactRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса контактов
func NewService(contactRepo ContactRepository, logger Logger) *Service {
	return &Service{
		contactRepo: contactRepo,
		logger:      logger,
	}
}

// GetByID получает контакт по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ContactResponse, error) {
	s.logger.Info("GetByID: fetching contact id=%d", id)

	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, contactRepo.ErrContactNotFound) {
			s.logger.Warn("GetByID: contact id=%d not found", id)
			return nil, ErrContactNotFound
		}
		s.logger.Error("GetByID: repository error for contact id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainContact(contact), nil
}

// List получает список всех контактов
func (s *Service) List(ctx context.Context) (*models.ContactListResponse, error) {
	s.logger.Info("List: fetching contacts")

	items, err := s.contactRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d contacts", len(items))
	return models.FromDomainContacts(items), nil
}
