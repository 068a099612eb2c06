package update_appointment

import (
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: appointment ID must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.ContactID <= 0 {
		return fmt.Errorf("%w: contactID must be positive", ErrInvalidInput)
	}

	if req.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	if len(req.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title exceeds %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}

	if len(req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}

	if len(req.Location) > domain.MaxLocationLength {
		return fmt.Errorf("%w: location exceeds %d characters", ErrInvalidInput, domain.MaxLocationLength)
	}

	if req.Type == "" {
		return fmt.Errorf("%w: type is required", ErrInvalidInput)
	}

	if len(req.Type) > domain.MaxTypeLength {
		return fmt.Errorf("%w: type exceeds %d characters", ErrInvalidInput, domain.MaxTypeLength)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Hour < 0 || req.Hour > 23 {
		return fmt.Errorf("%w: hour must be 0-23", ErrInvalidInput)
	}

	if req.Minute < 0 || req.Minute > 59 {
		return fmt.Errorf("%w: minute must be 0-59", ErrInvalidInput)
	}

	if req.DurationMinutes < domain.MinAppointmentDurationMinutes {
		return fmt.Errorf("%w: duration must be at least %d minutes",
			ErrInvalidInput, domain.MinAppointmentDurationMinutes)
	}

	if req.DurationMinutes > domain.MaxAppointmentDurationMinutes {
		return fmt.Errorf("%w: duration must not exceed %d minutes",
			ErrInvalidInput, domain.MaxAppointmentDurationMinutes)
	}

	if req.Timezone == "" {
		return fmt.Errorf("%w: timezone is required", ErrInvalidInput)
	}

	return nil
}
