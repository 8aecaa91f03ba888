package get_booking_by_number

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/gorilla/mux"

	"github.com/lesnoy-dvorik/booking-service/internal/api/handlers"
	"github.com/lesnoy-dvorik/booking-service/internal/service/bookings"
)

const (
	msgInvalidBookingNumber = "некорректный номер бронирования, ожидается формат BK-XXXXXX"
	msgNotFound             = "бронирование не найдено"
)

var bookingNumberPattern = regexp.MustCompile(`^BK-\d{6}$`)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingNumber}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	number := vars["bookingNumber"]

	if !bookingNumberPattern.MatchString(number) {
		h.logger.Warn("GET /bookings/{number} - Invalid booking number: %s", number)
		handlers.RespondBadRequest(w, msgInvalidBookingNumber)
		return
	}

	booking, err := h.service.GetByNumber(r.Context(), number)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{number} - Booking not found: number=%s", number)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/{number} - Failed to get booking: number=%s, error=%v", number, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{number} - Booking retrieved: number=%s, status=%s", number, booking.Status)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
