package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// CreateCustomerRequest запрос на создание клиента
type CreateCustomerRequest struct {
	UserID     int64  `json:"-"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone"`
	Division   string `json:"division,omitempty"`
}

// CustomerResponse ответ с данными клиента
type CustomerResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone"`
	Division   string `json:"division,omitempty"`

	CreatedBy     string    `json:"createdBy"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CustomerListResponse ответ со списком клиентов
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

// DeleteCustomerResponse результат каскадного удаления клиента
type DeleteCustomerResponse struct {
	CustomerID          int64 `json:"customerId"`
	DeletedAppointments int64 `json:"deletedAppointments"`
}

// FromDomainCustomer конвертирует domain модель в DTO
func FromDomainCustomer(c *domain.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}
	return &CustomerResponse{
		ID:            c.ID,
		Name:          c.Name,
		Address:       c.Address,
		PostalCode:    c.PostalCode,
		Phone:         c.Phone,
		Division:      c.Division,
		CreatedBy:     c.CreatedBy,
		LastUpdatedBy: c.LastUpdatedBy,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// FromDomainCustomers конвертирует список domain моделей в DTO
func FromDomainCustomers(items []*domain.Customer) *CustomerListResponse {
	resp := &CustomerListResponse{
		Customers: make([]CustomerResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Customers = append(resp.Customers, *FromDomainCustomer(item))
	}
	return resp
}
