package customers

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// CustomerRepository интерфейс для работы с хранилищем клиентов
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
	ExistsID(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// AppointmentRepository интерфейс для каскадного удаления встреч клиента
type AppointmentRepository interface {
	DeleteByCustomerID(ctx context.Context, customerID int64) (int64, error)
}

// TxManager интерфейс для управления транзакциями
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
