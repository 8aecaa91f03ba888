package payment_webhook

import (
	"errors"
	"net/http"

	"github.com/lesnoy-dvorik/booking-service/internal/api/handlers"
	processWebhook "github.com/lesnoy-dvorik/booking-service/internal/usecase/process_webhook"
)

const (
	msgInvalidRequestBody  = "некорректное тело уведомления"
	msgInvalidNotification = "некорректное уведомление платежного провайдера"

	// Тело успешного ответа. Провайдер ждет любой 200, текст не важен
	responseOK = "OK"
)

type Handler struct {
	useCase ProcessWebhookUseCase
	metrics Metrics
	logger  Logger
}

func NewHandler(useCase ProcessWebhookUseCase, metrics Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: metrics,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/yookassa/webhook
//
// Любой осмысленно обработанный исход подтверждается статусом 200,
// иначе провайдер будет присылать уведомление повторно. 500 возвращаем
// только при сбое на нашей стороне, чтобы провайдер повторил доставку.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req WebhookRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/yookassa/webhook - Invalid request body: %v", err)
		h.metrics.IncWebhook("unknown", "malformed")
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, processWebhook.ErrInvalidNotification):
			h.logger.Warn("POST /payments/yookassa/webhook - Invalid notification: type=%s, event=%s, error=%v",
				req.Type, req.Event, err)
			h.metrics.IncWebhook(req.Object.Status, "malformed")
			handlers.RespondBadRequest(w, msgInvalidNotification)

		default:
			h.logger.Error("POST /payments/yookassa/webhook - Failed to process notification: payment_id=%s, error=%v",
				req.Object.ID, err)
			h.metrics.IncWebhook(req.Object.Status, "error")
			handlers.RespondInternalError(w)
		}
		return
	}

	h.metrics.IncWebhook(result.PaymentStatus, string(result.Outcome))
	h.logger.Info("POST /payments/yookassa/webhook - Notification processed: payment_id=%s, status=%s, outcome=%s",
		req.Object.ID, result.PaymentStatus, result.Outcome)
	handlers.RespondText(w, http.StatusOK, responseOK)
}
