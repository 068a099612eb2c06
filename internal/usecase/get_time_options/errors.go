package get_time_options

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_time_options: invalid input data")

	// ErrInvalidTimezone возвращается при неизвестной таймзоне клиента
	ErrInvalidTimezone = errors.New("get_time_options: invalid timezone")
)
