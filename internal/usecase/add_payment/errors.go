package add_payment

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("add_payment: booking not found")

	// ErrBookingCancelled возвращается при попытке оплаты отмененного бронирования
	ErrBookingCancelled = errors.New("add_payment: booking is cancelled")

	// ErrAlreadyPaid возвращается, когда бронирование уже полностью оплачено
	ErrAlreadyPaid = errors.New("add_payment: booking is already fully paid")

	// ErrOverpayment возвращается, когда платеж превышает остаток
	ErrOverpayment = errors.New("add_payment: payment exceeds outstanding balance")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("add_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("add_payment: internal error")
)
