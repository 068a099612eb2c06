package contacts

import "errors"

var (
	// ErrContactNotFound возвращается, когда контакт не найден
	ErrContactNotFound = errors.New("contact not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
