package domain

import "time"

// Customer represents a customer record.
// Appointments reference customers by ID only.
type Customer struct {
	ID         int64
	Name       string
	Address    string
	PostalCode string
	Phone      string
	Division   string

	CreatedBy     string
	LastUpdatedBy string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Contact represents a company contact who attends appointments.
// Contacts are reference data managed outside this service.
type Contact struct {
	ID    int64
	Name  string
	Email string
}
