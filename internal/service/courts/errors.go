package courts

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("courts.service: court not found")

	// ErrInvalidStatus возвращается при неизвестном статусе корта
	ErrInvalidStatus = errors.New("courts.service: invalid court status")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("courts.service: internal error")
)
