package extend_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("extend_booking: booking not found")

	// ErrBookingCancelled возвращается при попытке продлить отмененное бронирование
	ErrBookingCancelled = errors.New("extend_booking: booking is cancelled")

	// ErrCourtNotFound возвращается, когда корт бронирования не найден
	ErrCourtNotFound = errors.New("extend_booking: court not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("extend_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("extend_booking: internal error")
)
