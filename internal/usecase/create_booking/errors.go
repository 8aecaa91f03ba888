package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrRoomUnavailable возвращается, когда номер не найден или у него некорректная цена
	ErrRoomUnavailable = errors.New("create_booking: room is unavailable")

	// ErrInvalidDateRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidDateRange = errors.New("create_booking: check-out must be after check-in")

	// ErrReceiptDataMissing возвращается, когда у гостя нет ни корректного email,
	// ни пригодного для чека телефона
	ErrReceiptDataMissing = errors.New("create_booking: no valid contact for payment receipt")

	// ErrPaymentGateway возвращается при ошибке создания платежа в ЮKassa
	ErrPaymentGateway = errors.New("create_booking: payment gateway error")

	// ErrInternal возвращается при внутренних ошибках (репозиторий и т.п.)
	ErrInternal = errors.New("create_booking: internal error")
)

// PaymentDeclinedError возвращается, когда шлюз отклонил запрос из-за конкретного
// поля. Наружу можно показывать только имя поля, без деталей шлюза.
type PaymentDeclinedError struct {
	Parameter string
}

// Error возвращает строковое представление ошибки
func (e *PaymentDeclinedError) Error() string {
	return fmt.Sprintf("create_booking: payment declined by gateway, parameter=%s", e.Parameter)
}

// Unwrap позволяет errors.Is(err, ErrPaymentGateway)
func (e *PaymentDeclinedError) Unwrap() error {
	return ErrPaymentGateway
}
