package process_webhook

import "errors"

var (
	// ErrInvalidNotification возвращается при некорректном конверте уведомления.
	// Единственный случай, когда провайдеру отвечают клиентской ошибкой.
	ErrInvalidNotification = errors.New("process_webhook: invalid notification payload")

	// ErrInternal возвращается при внутренних ошибках (репозиторий и т.п.).
	// Уведомление не считается обработанным, провайдер повторит доставку.
	ErrInternal = errors.New("process_webhook: internal error")
)
