package contacts

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ContactRepository интерфейс для работы со справочником контактов
type ContactRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Contact, error)
	List(ctx context.Context) ([]*domain.Contact, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
