package create_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/lesnoy-dvorik/booking-service/internal/api/handlers"
	createBooking "github.com/lesnoy-dvorik/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput         = "некорректные данные бронирования"
	msgInvalidDateRange     = "дата выезда должна быть позже даты заезда"
	msgRoomUnavailable      = "выбранный номер недоступен для бронирования"
	msgReceiptDataMissing   = "укажите корректный email или телефон для отправки чека"
	msgPaymentDeclinedField = "платежная система отклонила запрос, проверьте поле: %s"
	msgPaymentUnavailable   = "платежная система временно недоступна, попробуйте позже"
)

const (
	resultCreated          = "created"
	resultValidationFailed = "validation_failed"
	resultPaymentFailed    = "payment_failed"
	resultError            = "error"
)

type Handler struct {
	useCase CreateBookingUseCase
	metrics Metrics
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, metrics Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: metrics,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		h.metrics.IncBookingCreated(resultValidationFailed)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		h.metrics.IncBookingCreated(resultValidationFailed)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.respondError(w, &req, err)
		return
	}

	h.metrics.IncBookingCreated(resultCreated)
	h.logger.Info("POST /bookings - Booking created: booking_number=%s, room_id=%s, total=%.2f",
		result.BookingNumber, req.RoomID, result.TotalCost)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func (h *Handler) respondError(w http.ResponseWriter, req *CreateBookingRequest, err error) {
	var declined *createBooking.PaymentDeclinedError

	switch {
	case errors.Is(err, createBooking.ErrInvalidInput):
		h.logger.Warn("POST /bookings - Invalid input: room_id=%s, error=%v", req.RoomID, err)
		h.metrics.IncBookingCreated(resultValidationFailed)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, createBooking.ErrInvalidDateRange):
		h.logger.Warn("POST /bookings - Invalid date range: room_id=%s, check_in=%s, check_out=%s",
			req.RoomID, req.CheckIn, req.CheckOut)
		h.metrics.IncBookingCreated(resultValidationFailed)
		handlers.RespondBadRequest(w, msgInvalidDateRange)

	case errors.Is(err, createBooking.ErrRoomUnavailable):
		h.logger.Warn("POST /bookings - Room unavailable: room_id=%s", req.RoomID)
		h.metrics.IncBookingCreated(resultValidationFailed)
		handlers.RespondBadRequest(w, msgRoomUnavailable)

	case errors.Is(err, createBooking.ErrReceiptDataMissing):
		h.logger.Warn("POST /bookings - Receipt data missing: room_id=%s", req.RoomID)
		h.metrics.IncBookingCreated(resultValidationFailed)
		handlers.RespondBadRequest(w, msgReceiptDataMissing)

	case errors.As(err, &declined):
		h.logger.Error("POST /bookings - Payment declined: room_id=%s, parameter=%s, error=%v",
			req.RoomID, declined.Parameter, err)
		h.metrics.IncBookingCreated(resultPaymentFailed)
		handlers.RespondError(w, http.StatusInternalServerError,
			fmt.Sprintf(msgPaymentDeclinedField, declined.Parameter))

	case errors.Is(err, createBooking.ErrPaymentGateway):
		h.logger.Error("POST /bookings - Payment gateway failure: room_id=%s, error=%v", req.RoomID, err)
		h.metrics.IncBookingCreated(resultPaymentFailed)
		handlers.RespondError(w, http.StatusInternalServerError, msgPaymentUnavailable)

	default:
		h.logger.Error("POST /bookings - Failed to create booking: room_id=%s, error=%v", req.RoomID, err)
		h.metrics.IncBookingCreated(resultError)
		handlers.RespondInternalError(w)
	}
}
