package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrBookingCancelled возвращается при попытке изменить отмененное бронирование
	ErrBookingCancelled = errors.New("update_booking: booking is cancelled")

	// ErrCourtNotFound возвращается, когда корт бронирования не найден
	ErrCourtNotFound = errors.New("update_booking: court not found")

	// ErrCourtUnavailable возвращается, когда статус корта закрывает его для бронирования
	ErrCourtUnavailable = errors.New("update_booking: court is not available for booking")

	// ErrAccessoryNotFound возвращается, когда запрошенный аксессуар не найден
	ErrAccessoryNotFound = errors.New("update_booking: accessory not found")

	// ErrTotalBelowPaid возвращается, когда новая стоимость меньше уже внесенной суммы
	ErrTotalBelowPaid = errors.New("update_booking: new total is less than amount already paid")

	// ErrDiscountTooLarge возвращается, когда скидка превышает стоимость корта
	ErrDiscountTooLarge = errors.New("update_booking: discount exceeds court price")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
