package create_booking

import (
	"time"

	"github.com/lesnoy-dvorik/booking-service/internal/domain"
	createBooking "github.com/lesnoy-dvorik/booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID     string  `json:"roomId"`
	CheckIn    string  `json:"checkIn"`  // "2024-06-01"
	CheckOut   string  `json:"checkOut"` // "2024-06-04"
	Adults     int     `json:"adults"`
	Children   int     `json:"children"`
	GuestName  string  `json:"guestName"`
	GuestEmail string  `json:"guestEmail"`
	GuestPhone string  `json:"guestPhone"`
	Notes      *string `json:"notes,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	ID              int64   `json:"id"`
	BookingNumber   string  `json:"bookingNumber"`
	Status          string  `json:"status"`
	RoomTitle       string  `json:"roomTitle"`
	NumberOfNights  int     `json:"numberOfNights"`
	TotalPrice      float64 `json:"totalPrice"`
	ConfirmationURL string  `json:"confirmationUrl"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		RoomID:     r.RoomID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Adults:     r.Adults,
		Children:   r.Children,
		GuestName:  r.GuestName,
		GuestEmail: r.GuestEmail,
		GuestPhone: r.GuestPhone,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:              resp.ID,
		BookingNumber:   resp.BookingNumber,
		Status:          resp.Status,
		RoomTitle:       resp.RoomTitle,
		NumberOfNights:  resp.Nights,
		TotalPrice:      resp.TotalCost,
		ConfirmationURL: resp.ConfirmationURL,
	}
}
