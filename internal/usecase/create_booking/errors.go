package create_booking

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("create_booking: court not found")

	// ErrCourtUnavailable возвращается, когда статус корта закрывает его для бронирования
	ErrCourtUnavailable = errors.New("create_booking: court is not available for booking")

	// ErrAccessoryNotFound возвращается, когда запрошенный аксессуар не найден
	ErrAccessoryNotFound = errors.New("create_booking: accessory not found")

	// ErrOverpayment возвращается, когда начальный платеж превышает итоговую стоимость
	ErrOverpayment = errors.New("create_booking: amount paid exceeds total price")

	// ErrDiscountTooLarge возвращается, когда скидка превышает стоимость корта
	ErrDiscountTooLarge = errors.New("create_booking: discount exceeds court price")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
