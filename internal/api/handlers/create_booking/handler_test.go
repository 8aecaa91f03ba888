package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	createBooking "github.com/lesnoy-dvorik/booking-service/internal/usecase/create_booking"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createBooking.Response), args.Error(1)
}

type nopMetrics struct{}

func (nopMetrics) IncBookingCreated(string) {}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func postBooking(t *testing.T, handler *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.Handle(w, req)
	return w
}

const validBody = `{
	"roomId": "standard",
	"checkIn": "2024-06-01",
	"checkOut": "2024-06-04",
	"adults": 2,
	"children": 0,
	"guestName": "Иван Петров",
	"guestEmail": "ivan@example.com",
	"guestPhone": "+79001234567"
}`

func TestHandler_Handle_Created(t *testing.T) {
	useCase := &mockUseCase{}
	handler := NewHandler(useCase, nopMetrics{}, nopLogger{})

	useCase.On("Execute", mock.Anything, mock.AnythingOfType("*create_booking.Request")).
		Return(&createBooking.Response{
			ID:              42,
			BookingNumber:   "BK-123456",
			Status:          "waiting_for_payment",
			ConfirmationURL: "https://yoomoney.ru/checkout/payments/v2/contract?orderId=abc",
			RoomTitle:       "Стандарт",
			TotalCost:       7200,
			Nights:          3,
		}, nil)

	w := postBooking(t, handler, validBody)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "BK-123456", resp.BookingNumber)
	assert.Equal(t, 3, resp.NumberOfNights)
	assert.Equal(t, 7200.0, resp.TotalPrice)
	assert.NotEmpty(t, resp.ConfirmationURL)

	// Даты распарсены в модель use case
	parsed := useCase.Calls[0].Arguments.Get(1).(*createBooking.Request)
	assert.Equal(t, "2024-06-01", parsed.CheckIn.Format("2006-01-02"))
	assert.Equal(t, "2024-06-04", parsed.CheckOut.Format("2006-01-02"))
}

func TestHandler_Handle_MalformedBody(t *testing.T) {
	useCase := &mockUseCase{}
	handler := NewHandler(useCase, nopMetrics{}, nopLogger{})

	w := postBooking(t, handler, `{"roomId":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	useCase.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandler_Handle_BadDateFormat(t *testing.T) {
	useCase := &mockUseCase{}
	handler := NewHandler(useCase, nopMetrics{}, nopLogger{})

	w := postBooking(t, handler, strings.Replace(validBody, "2024-06-01", "01.06.2024", 1))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	useCase.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandler_Handle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid input", createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"invalid date range", createBooking.ErrInvalidDateRange, http.StatusBadRequest},
		{"room unavailable", createBooking.ErrRoomUnavailable, http.StatusBadRequest},
		{"receipt data missing", createBooking.ErrReceiptDataMissing, http.StatusBadRequest},
		{"gateway error", createBooking.ErrPaymentGateway, http.StatusInternalServerError},
		{"internal error", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := &mockUseCase{}
			handler := NewHandler(useCase, nopMetrics{}, nopLogger{})

			useCase.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := postBooking(t, handler, validBody)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestHandler_Handle_PaymentDeclinedNamesParameter(t *testing.T) {
	useCase := &mockUseCase{}
	handler := NewHandler(useCase, nopMetrics{}, nopLogger{})

	useCase.On("Execute", mock.Anything, mock.Anything).
		Return(nil, &createBooking.PaymentDeclinedError{Parameter: "receipt.customer"})

	w := postBooking(t, handler, validBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// В ответе называется только имя поля, без деталей шлюза
	assert.Contains(t, w.Body.String(), "receipt.customer")
}
