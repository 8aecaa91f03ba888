package payment_webhook

import (
	"context"

	processWebhook "github.com/lesnoy-dvorik/booking-service/internal/usecase/process_webhook"
)

type ProcessWebhookUseCase interface {
	Execute(ctx context.Context, req *processWebhook.Request) (*processWebhook.Response, error)
}

type Metrics interface {
	IncWebhook(paymentStatus, outcome string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
