package payment_webhook

import (
	processWebhook "github.com/lesnoy-dvorik/booking-service/internal/usecase/process_webhook"
)

// WebhookRequest тело уведомления ЮKassa
// Провайдер присылает больше полей, разбираем только нужные
type WebhookRequest struct {
	Type   string        `json:"type"`
	Event  string        `json:"event"`
	Object WebhookObject `json:"object"`
}

// WebhookObject объект платежа внутри уведомления
type WebhookObject struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ToUseCaseRequest конвертирует тело уведомления в модель use case
func (r *WebhookRequest) ToUseCaseRequest() *processWebhook.Request {
	return &processWebhook.Request{
		Type:          r.Type,
		Event:         r.Event,
		PaymentID:     r.Object.ID,
		PaymentStatus: r.Object.Status,
	}
}
