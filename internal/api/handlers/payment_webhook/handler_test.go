package payment_webhook

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	processWebhook "github.com/lesnoy-dvorik/booking-service/internal/usecase/process_webhook"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *processWebhook.Request) (*processWebhook.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*processWebhook.Response), args.Error(1)
}

type nopMetrics struct{}

func (nopMetrics) IncWebhook(string, string) {}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func postWebhook(t *testing.T, handler *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/yookassa/webhook", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.Handle(w, req)
	return w
}

const succeededBody = `{
	"type": "notification",
	"event": "payment.succeeded",
	"object": {"id": "2d7a3e1f-000f-5000-8000-18db351245c7", "status": "succeeded"}
}`

func TestHandler_Handle_Success(t *testing.T) {
	useCase := &mockUseCase{}
	handler := NewHandler(useCase, nopMetrics{}, nopLogger{})

	useCase.On("Execute", mock.Anything, &processWebhook.Request{
		Type:          "notification",
		Event:         "payment.succeeded",
		PaymentID:     "2d7a3e1f-000f-5000-8000-18db351245c7",
		PaymentStatus: "succeeded",
	}).Return(&processWebhook.Response{
		Outcome:       processWebhook.OutcomePaid,
		PaymentStatus: "succeeded",
		BookingNumber: "BK-123456",
	}, nil)

	w := postWebhook(t, handler, succeededBody)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
	useCase.AssertExpectations(t)
}

func TestHandler_Handle_MalformedBody(t *testing.T) {
	useCase := &mockUseCase{}
	handler := NewHandler(useCase, nopMetrics{}, nopLogger{})

	w := postWebhook(t, handler, `{"type": "notification", "object":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	useCase.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandler_Handle_InvalidNotification(t *testing.T) {
	useCase := &mockUseCase{}
	handler := NewHandler(useCase, nopMetrics{}, nopLogger{})

	useCase.On("Execute", mock.Anything, mock.Anything).
		Return(nil, processWebhook.ErrInvalidNotification)

	w := postWebhook(t, handler, `{"type": "refund", "object": {"id": "x", "status": "succeeded"}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Handle_UnknownPaymentAcknowledged(t *testing.T) {
	useCase := &mockUseCase{}
	handler := NewHandler(useCase, nopMetrics{}, nopLogger{})

	useCase.On("Execute", mock.Anything, mock.Anything).Return(&processWebhook.Response{
		Outcome:       processWebhook.OutcomeUnknownPayment,
		PaymentStatus: "succeeded",
	}, nil)

	w := postWebhook(t, handler, succeededBody)

	// Чужой платеж подтверждаем, чтобы провайдер не повторял доставку
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Handle_InternalErrorTriggersRetry(t *testing.T) {
	useCase := &mockUseCase{}
	handler := NewHandler(useCase, nopMetrics{}, nopLogger{})

	useCase.On("Execute", mock.Anything, mock.Anything).
		Return(nil, errors.New("repository failure"))

	w := postWebhook(t, handler, succeededBody)

	// 500 заставляет провайдера повторить уведомление позже
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
