package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	// StatusWaitingForPayment начальный статус: бронирование создано, ожидается оплата
	StatusWaitingForPayment BookingStatus = "waiting_for_payment"
	// StatusPaid терминальный статус: оплата подтверждена провайдером
	StatusPaid BookingStatus = "paid"
	// StatusCancelled терминальный статус: платеж отменен или не состоялся
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a hotel room booking
type Booking struct {
	ID            int64
	BookingNumber string // человекочитаемый номер вида BK-XXXXXX, неизменяемый

	RoomID   string
	CheckIn  time.Time
	CheckOut time.Time
	Nights   int // вычисляется при создании и кэшируется

	Adults   int
	Children int

	GuestName  string
	GuestEmail string
	GuestPhone string
	Notes      *string

	TotalCost float64

	// Привязка к платежу: paymentId выставляется ровно один раз
	// после успешного создания платежа в ЮKassa
	PaymentID *string
	PaidAt    *time.Time

	Status BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal сообщает, что дальнейшие переходы статуса запрещены
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusPaid || b.Status == StatusCancelled
}
