package yookassa

import (
	"errors"
	"fmt"
)

var (
	// ErrInternal возвращается при внутренних ошибках клиента (сеть, таймаут)
	ErrInternal = errors.New("yookassa client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("yookassa client: invalid response")
)

// APIError структурированная ошибка API ЮKassa.
// Parameter заполнен, когда шлюз отклонил запрос из-за конкретного поля
// (например "receipt.customer") - только это имя поля можно показывать клиенту.
type APIError struct {
	Code        string
	Description string
	Parameter   string
}

// Error возвращает строковое представление ошибки
func (e *APIError) Error() string {
	if e.Parameter != "" {
		return fmt.Sprintf("yookassa api error: code=%s, parameter=%s: %s", e.Code, e.Parameter, e.Description)
	}
	return fmt.Sprintf("yookassa api error: code=%s: %s", e.Code, e.Description)
}
