package create_booking

import (
	"fmt"
	"strings"

	"github.com/lesnoy-dvorik/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Выполняется до любых побочных эффектов: невалидный запрос
// не оставляет следов ни в БД, ни в платежном шлюзе.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.RoomID) == "" {
		return fmt.Errorf("%w: roomId is required", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() {
		return fmt.Errorf("%w: checkIn is required", ErrInvalidInput)
	}

	if req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkOut is required", ErrInvalidInput)
	}

	if req.Adults < domain.MinAdults {
		return fmt.Errorf("%w: adults must be at least %d", ErrInvalidInput, domain.MinAdults)
	}

	if req.Adults > domain.MaxAdults {
		return fmt.Errorf("%w: adults must not exceed %d", ErrInvalidInput, domain.MaxAdults)
	}

	if req.Children < 0 {
		return fmt.Errorf("%w: children must not be negative", ErrInvalidInput)
	}

	if req.Children > domain.MaxChildren {
		return fmt.Errorf("%w: children must not exceed %d", ErrInvalidInput, domain.MaxChildren)
	}

	if strings.TrimSpace(req.GuestName) == "" {
		return fmt.Errorf("%w: guest name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.GuestEmail) == "" {
		return fmt.Errorf("%w: guest email is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.GuestPhone) == "" {
		return fmt.Errorf("%w: guest phone is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
