package compute_price

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("compute_price: court not found")

	// ErrAccessoryNotFound возвращается, когда запрошенный аксессуар не найден
	ErrAccessoryNotFound = errors.New("compute_price: accessory not found")

	// ErrDiscountTooLarge возвращается, когда скидка превышает стоимость корта
	ErrDiscountTooLarge = errors.New("compute_price: discount exceeds court price")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("compute_price: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("compute_price: internal error")
)
