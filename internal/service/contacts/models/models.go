package models

import "github.com/m04kA/SMC-SchedulingService/internal/domain"

// ContactResponse ответ с данными контакта
type ContactResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ContactListResponse ответ со списком контактов
type ContactListResponse struct {
	Contacts []ContactResponse `json:"contacts"`
}

// FromDomainContact конвертирует domain модель в DTO
func FromDomainContact(c *domain.Contact) *ContactResponse {
	if c == nil {
		return nil
	}
	return &ContactResponse{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
	}
}

// FromDomainContacts конвертирует список domain моделей в DTO
func FromDomainContacts(items []*domain.Contact) *ContactListResponse {
	resp := &ContactListResponse{
		Contacts: make([]ContactResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Contacts = append(resp.Contacts, *FromDomainContact(item))
	}
	return resp
}
