package models

import (
	"time"

	"github.com/lesnoy-dvorik/booking-service/internal/domain"
)

// BookingResponse проекция бронирования для чтения
type BookingResponse struct {
	ID            int64   `json:"id"`
	BookingNumber string  `json:"bookingNumber"`
	RoomID        string  `json:"roomId"`
	RoomTitle     string  `json:"roomTitle"`
	CheckIn       string  `json:"checkIn"`
	CheckOut      string  `json:"checkOut"`
	Nights        int     `json:"numberOfNights"`
	Adults        int     `json:"adults"`
	Children      int     `json:"children"`
	GuestName     string  `json:"guestName"`
	GuestEmail    string  `json:"guestEmail"`
	GuestPhone    string  `json:"guestPhone"`
	Notes         *string `json:"notes,omitempty"`
	TotalCost     float64 `json:"totalPrice"`
	Status        string  `json:"status"`
	PaidAt        *string `json:"paidAt,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// FromDomainBooking конвертирует domain модель в проекцию с названием номера
func FromDomainBooking(b *domain.Booking, roomTitle string) *BookingResponse {
	resp := &BookingResponse{
		ID:            b.ID,
		BookingNumber: b.BookingNumber,
		RoomID:        b.RoomID,
		RoomTitle:     roomTitle,
		CheckIn:       b.CheckIn.Format(domain.DateFormat),
		CheckOut:      b.CheckOut.Format(domain.DateFormat),
		Nights:        b.Nights,
		Adults:        b.Adults,
		Children:      b.Children,
		GuestName:     b.GuestName,
		GuestEmail:    b.GuestEmail,
		GuestPhone:    b.GuestPhone,
		Notes:         b.Notes,
		TotalCost:     b.TotalCost,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     b.UpdatedAt.Format(time.RFC3339),
	}

	if b.PaidAt != nil {
		paidAt := b.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &paidAt
	}

	return resp
}
