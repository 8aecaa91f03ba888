package create_booking

import (
	"context"

	"github.com/lesnoy-dvorik/booking-service/internal/domain"
	"github.com/lesnoy-dvorik/booking-service/internal/integrations/yookassa"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	AttachPayment(ctx context.Context, id int64, paymentID string) error
	Delete(ctx context.Context, id int64) error
}

// RoomRepository интерфейс репозитория номеров (read-only)
type RoomRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Room, error)
}

// PaymentGateway интерфейс платежного шлюза
type PaymentGateway interface {
	CreatePayment(ctx context.Context, payment *yookassa.CreatePaymentRequest, idempotenceKey string) (*yookassa.Payment, error)
}

// NotificationSender интерфейс отправки писем гостю (best-effort)
type NotificationSender interface {
	Send(to, subject, htmlBody string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
