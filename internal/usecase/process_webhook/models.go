package process_webhook

// Request уведомление платежного провайдера после валидации формы конверта
type Request struct {
	Type          string // тип уведомления, ожидается "notification"
	Event         string // событие, например "payment.succeeded" (информационно)
	PaymentID     string // ID платежа ЮKassa
	PaymentStatus string // статус платежа из уведомления
}

// Outcome результат обработки уведомления
type Outcome string

const (
	// OutcomePaid бронирование переведено в paid
	OutcomePaid Outcome = "paid"
	// OutcomeCancelled бронирование переведено в cancelled
	OutcomeCancelled Outcome = "cancelled"
	// OutcomeAlreadyProcessed повторное уведомление, переход уже выполнен ранее
	OutcomeAlreadyProcessed Outcome = "already_processed"
	// OutcomeIgnored информационный или нераспознанный статус, состояние не менялось
	OutcomeIgnored Outcome = "ignored"
	// OutcomeUnknownPayment платеж не относится к известным бронированиям
	OutcomeUnknownPayment Outcome = "unknown_payment"
)

// Response результат обработки уведомления.
// Любой Outcome означает, что уведомление понято и провайдеру
// следует ответить успехом (без повторных доставок).
type Response struct {
	Outcome       Outcome
	PaymentStatus string
	BookingNumber string // пустой для unknown_payment
}
