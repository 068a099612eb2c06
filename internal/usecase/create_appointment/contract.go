package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория встреч
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetByParticipants(ctx context.Context, customerID, contactID int64) ([]*domain.Appointment, error)
	ExistsID(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	ExistsID(ctx context.Context, id int64) (bool, error)
}

// ContactRepository интерфейс репозитория контактов
type ContactRepository interface {
	ExistsID(ctx context.Context, id int64) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
