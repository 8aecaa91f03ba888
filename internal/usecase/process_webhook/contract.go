package process_webhook

import (
	"context"
	"time"

	"github.com/lesnoy-dvorik/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByPaymentID(ctx context.Context, paymentID string) (*domain.Booking, error)
	UpdateStatusIfCurrent(ctx context.Context, id int64, expected, newStatus domain.BookingStatus, paidAt *time.Time) (bool, error)
}

// RoomRepository интерфейс репозитория номеров (для письма гостю)
type RoomRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Room, error)
}

// NotificationSender интерфейс отправки писем гостю (best-effort)
type NotificationSender interface {
	Send(to, subject, htmlBody string) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
