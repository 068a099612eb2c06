package update_appointment

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/overlap"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_appointment: invalid input data")

	// ErrInvalidTimezone возвращается при неизвестной таймзоне клиента
	ErrInvalidTimezone = errors.New("update_appointment: invalid timezone")

	// ErrAppointmentNotFound возвращается, когда обновляемая встреча не найдена
	ErrAppointmentNotFound = errors.New("update_appointment: appointment not found")

	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("update_appointment: customer not found")

	// ErrContactNotFound возвращается, когда контакт не найден
	ErrContactNotFound = errors.New("update_appointment: contact not found")

	// ErrPastStartTime возвращается, когда время начала встречи уже прошло
	ErrPastStartTime = errors.New("update_appointment: start time is in the past")

	// ErrOutsideBusinessHours возвращается, когда встреча заканчивается после закрытия компании
	ErrOutsideBusinessHours = errors.New("update_appointment: appointment ends outside business hours")

	// ErrSchedulingConflict возвращается, когда встреча пересекается с существующей
	ErrSchedulingConflict = errors.New("update_appointment: scheduling conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_appointment: internal error")
)

// ConflictError детализирует пересечение: какая сущность и с какой встречей
// Совместима с errors.Is(err, ErrSchedulingConflict)
type ConflictError struct {
	EntityKind    overlap.EntityKind
	ConflictingID int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: %s has overlapping appointment id=%d",
		ErrSchedulingConflict, e.EntityKind, e.ConflictingID)
}

func (e *ConflictError) Unwrap() error {
	return ErrSchedulingConflict
}
