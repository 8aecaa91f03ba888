package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrBookingNumberConflict возвращается при коллизии номера бронирования
	// (нарушение уникального индекса booking_number)
	ErrBookingNumberConflict = errors.New("booking.repository: booking number already exists")

	// ErrPaymentIDConflict возвращается, когда paymentId уже привязан к другому бронированию
	ErrPaymentIDConflict = errors.New("booking.repository: payment id already attached to another booking")

	// ErrPaymentAlreadyAttached возвращается при повторной попытке привязать платеж
	// к бронированию, у которого paymentId уже выставлен
	ErrPaymentAlreadyAttached = errors.New("booking.repository: booking already has a payment attached")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
