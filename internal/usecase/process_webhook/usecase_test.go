package process_webhook

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lesnoy-dvorik/booking-service/internal/domain"
	bookingRepo "github.com/lesnoy-dvorik/booking-service/internal/infra/storage/booking"
	roomRepo "github.com/lesnoy-dvorik/booking-service/internal/infra/storage/room"
)

type mockBookingRepository struct {
	mock.Mock
}

func (m *mockBookingRepository) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Booking, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepository) UpdateStatusIfCurrent(ctx context.Context, id int64, expected, newStatus domain.BookingStatus, paidAt *time.Time) (bool, error) {
	args := m.Called(ctx, id, expected, newStatus, paidAt)
	return args.Bool(0), args.Error(1)
}

type mockRoomRepository struct {
	mock.Mock
}

func (m *mockRoomRepository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

type mockNotificationSender struct {
	mock.Mock
}

func (m *mockNotificationSender) Send(to, subject, htmlBody string) error {
	args := m.Called(to, subject, htmlBody)
	return args.Error(0)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type useCaseMocks struct {
	bookings *mockBookingRepository
	rooms    *mockRoomRepository
	notifier *mockNotificationSender
}

func newTestUseCase() (*UseCase, *useCaseMocks) {
	m := &useCaseMocks{
		bookings: &mockBookingRepository{},
		rooms:    &mockRoomRepository{},
		notifier: &mockNotificationSender{},
	}
	uc := NewUseCase(m.bookings, m.rooms, m.notifier, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc, m
}

func awaitingBooking() *domain.Booking {
	return &domain.Booking{
		ID:            42,
		BookingNumber: "BK-123456",
		RoomID:        "standard",
		GuestName:     "Иван Петров",
		GuestEmail:    "ivan@example.com",
		TotalCost:     7200,
		Status:        domain.StatusWaitingForPayment,
	}
}

func succeededNotification() *Request {
	return &Request{
		Type:          "notification",
		Event:         "payment.succeeded",
		PaymentID:     "2d7a3e1f-000f-5000-8000-18db351245c7",
		PaymentStatus: "succeeded",
	}
}

func TestUseCase_Execute_SucceededMarksPaid(t *testing.T) {
	uc, m := newTestUseCase()
	ctx := context.Background()
	req := succeededNotification()

	m.bookings.On("GetByPaymentID", ctx, req.PaymentID).Return(awaitingBooking(), nil)
	m.bookings.On("UpdateStatusIfCurrent", ctx, int64(42),
		domain.StatusWaitingForPayment, domain.StatusPaid, &testNow).Return(true, nil)
	m.rooms.On("GetByID", ctx, "standard").Return(&domain.Room{ID: "standard", Title: "Стандарт"}, nil)
	m.notifier.On("Send", "ivan@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return(nil)

	resp, err := uc.Execute(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, OutcomePaid, resp.Outcome)
	assert.Equal(t, "succeeded", resp.PaymentStatus)
	assert.Equal(t, "BK-123456", resp.BookingNumber)
	m.bookings.AssertExpectations(t)
	m.notifier.AssertNumberOfCalls(t, "Send", 1)
}

func TestUseCase_Execute_DuplicateSucceededIsIdempotent(t *testing.T) {
	uc, m := newTestUseCase()
	ctx := context.Background()
	req := succeededNotification()

	// Переход уже выполнен ранее, CAS не срабатывает
	m.bookings.On("GetByPaymentID", ctx, req.PaymentID).Return(awaitingBooking(), nil)
	m.bookings.On("UpdateStatusIfCurrent", ctx, int64(42),
		domain.StatusWaitingForPayment, domain.StatusPaid, &testNow).Return(false, nil)

	resp, err := uc.Execute(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, OutcomeAlreadyProcessed, resp.Outcome)

	// Повторное уведомление не порождает второго письма
	m.notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Execute_UnknownPaymentAcknowledged(t *testing.T) {
	uc, m := newTestUseCase()
	ctx := context.Background()
	req := succeededNotification()

	m.bookings.On("GetByPaymentID", ctx, req.PaymentID).Return(nil, bookingRepo.ErrBookingNotFound)

	resp, err := uc.Execute(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, OutcomeUnknownPayment, resp.Outcome)
	assert.Empty(t, resp.BookingNumber)
	m.bookings.AssertNotCalled(t, "UpdateStatusIfCurrent",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Execute_CanceledCancelsBooking(t *testing.T) {
	uc, m := newTestUseCase()
	ctx := context.Background()

	req := succeededNotification()
	req.Event = "payment.canceled"
	req.PaymentStatus = "canceled"

	m.bookings.On("GetByPaymentID", ctx, req.PaymentID).Return(awaitingBooking(), nil)
	m.bookings.On("UpdateStatusIfCurrent", ctx, int64(42),
		domain.StatusWaitingForPayment, domain.StatusCancelled, (*time.Time)(nil)).Return(true, nil)

	resp, err := uc.Execute(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, OutcomeCancelled, resp.Outcome)
	m.notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Execute_CanceledAfterPaidIgnored(t *testing.T) {
	uc, m := newTestUseCase()
	ctx := context.Background()

	req := succeededNotification()
	req.PaymentStatus = "canceled"

	paid := awaitingBooking()
	paid.Status = domain.StatusPaid

	m.bookings.On("GetByPaymentID", ctx, req.PaymentID).Return(paid, nil)

	resp, err := uc.Execute(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, OutcomeAlreadyProcessed, resp.Outcome)
	m.bookings.AssertNotCalled(t, "UpdateStatusIfCurrent",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Execute_InformationalStatusesIgnored(t *testing.T) {
	for _, status := range []string{"pending", "waiting_for_capture", "totally_new_status"} {
		t.Run(status, func(t *testing.T) {
			uc, m := newTestUseCase()
			ctx := context.Background()

			req := succeededNotification()
			req.PaymentStatus = status

			m.bookings.On("GetByPaymentID", ctx, req.PaymentID).Return(awaitingBooking(), nil)

			resp, err := uc.Execute(ctx, req)

			require.NoError(t, err)
			assert.Equal(t, OutcomeIgnored, resp.Outcome)
			assert.Equal(t, status, resp.PaymentStatus)
			m.bookings.AssertNotCalled(t, "UpdateStatusIfCurrent",
				mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUseCase_Execute_InvalidEnvelope(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"wrong type", func(r *Request) { r.Type = "refund" }},
		{"missing payment id", func(r *Request) { r.PaymentID = "" }},
		{"missing payment status", func(r *Request) { r.PaymentStatus = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, m := newTestUseCase()

			req := succeededNotification()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.True(t, errors.Is(err, ErrInvalidNotification))
			m.bookings.AssertNotCalled(t, "GetByPaymentID", mock.Anything, mock.Anything)
		})
	}
}

func TestUseCase_Execute_RepositoryErrorPropagates(t *testing.T) {
	uc, m := newTestUseCase()
	ctx := context.Background()
	req := succeededNotification()

	m.bookings.On("GetByPaymentID", ctx, req.PaymentID).Return(nil, errors.New("connection refused"))

	_, err := uc.Execute(ctx, req)
	assert.True(t, errors.Is(err, ErrInternal))
}

func TestUseCase_Execute_StatusUpdateErrorPropagates(t *testing.T) {
	uc, m := newTestUseCase()
	ctx := context.Background()
	req := succeededNotification()

	m.bookings.On("GetByPaymentID", ctx, req.PaymentID).Return(awaitingBooking(), nil)
	m.bookings.On("UpdateStatusIfCurrent", ctx, int64(42),
		domain.StatusWaitingForPayment, domain.StatusPaid, &testNow).Return(false, errors.New("connection reset"))

	_, err := uc.Execute(ctx, req)
	assert.True(t, errors.Is(err, ErrInternal))
	m.notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Execute_EmailFailureDoesNotFailTransition(t *testing.T) {
	uc, m := newTestUseCase()
	ctx := context.Background()
	req := succeededNotification()

	m.bookings.On("GetByPaymentID", ctx, req.PaymentID).Return(awaitingBooking(), nil)
	m.bookings.On("UpdateStatusIfCurrent", ctx, int64(42),
		domain.StatusWaitingForPayment, domain.StatusPaid, &testNow).Return(true, nil)
	m.rooms.On("GetByID", ctx, "standard").Return(nil, roomRepo.ErrRoomNotFound)
	m.notifier.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp: timeout"))

	resp, err := uc.Execute(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, OutcomePaid, resp.Outcome)
}
