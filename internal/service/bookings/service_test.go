package bookings

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

func (m *mockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepository) GetByNumber(ctx context.Context, number string) (*domain.Booking, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:            42,
		BookingNumber: "BK-123456",
		RoomID:        "standard",
		CheckIn:       time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
		Nights:        3,
		Adults:        2,
		GuestName:     "Иван Петров",
		GuestEmail:    "ivan@example.com",
		TotalCost:     7200,
		Status:        domain.StatusWaitingForPayment,
	}
}

func TestService_GetByNumber(t *testing.T) {
	bookings := &mockBookingRepository{}
	rooms := &mockRoomRepository{}
	svc := NewService(bookings, rooms, nopLogger{})
	ctx := context.Background()

	bookings.On("GetByNumber", ctx, "BK-123456").Return(testBooking(), nil)
	rooms.On("GetByID", ctx, "standard").Return(&domain.Room{ID: "standard", Title: "Стандарт"}, nil)

	resp, err := svc.GetByNumber(ctx, "BK-123456")

	require.NoError(t, err)
	assert.Equal(t, "BK-123456", resp.BookingNumber)
	assert.Equal(t, "Стандарт", resp.RoomTitle)
	assert.Equal(t, "2024-06-01", resp.CheckIn)
	assert.Equal(t, 3, resp.Nights)
	assert.Equal(t, 7200.0, resp.TotalCost)
}

func TestService_GetByNumber_NotFound(t *testing.T) {
	bookings := &mockBookingRepository{}
	rooms := &mockRoomRepository{}
	svc := NewService(bookings, rooms, nopLogger{})
	ctx := context.Background()

	bookings.On("GetByNumber", ctx, "BK-000000").Return(nil, bookingRepo.ErrBookingNotFound)

	_, err := svc.GetByNumber(ctx, "BK-000000")
	assert.True(t, errors.Is(err, ErrBookingNotFound))
}

func TestService_GetByID_DeletedRoomFallsBack(t *testing.T) {
	bookings := &mockBookingRepository{}
	rooms := &mockRoomRepository{}
	svc := NewService(bookings, rooms, nopLogger{})
	ctx := context.Background()

	bookings.On("GetByID", ctx, int64(42)).Return(testBooking(), nil)
	rooms.On("GetByID", ctx, "standard").Return(nil, roomRepo.ErrRoomNotFound)

	resp, err := svc.GetByID(ctx, 42)

	require.NoError(t, err)
	assert.Equal(t, unknownRoomTitle, resp.RoomTitle)
}

func TestService_GetByID_RepositoryError(t *testing.T) {
	bookings := &mockBookingRepository{}
	rooms := &mockRoomRepository{}
	svc := NewService(bookings, rooms, nopLogger{})
	ctx := context.Background()

	bookings.On("GetByID", ctx, int64(42)).Return(nil, errors.New("connection refused"))

	_, err := svc.GetByID(ctx, 42)
	assert.True(t, errors.Is(err, ErrInternal))
}
