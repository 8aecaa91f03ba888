package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/lesnoy-dvorik/booking-service/internal/domain"
	bookingRepo "github.com/lesnoy-dvorik/booking-service/internal/infra/storage/booking"
	roomRepo "github.com/lesnoy-dvorik/booking-service/internal/infra/storage/room"
	"github.com/lesnoy-dvorik/booking-service/internal/integrations/yookassa"
)

// UseCase use case создания бронирования с платежом.
//
// Порядок шагов фиксирован: валидация -> расчет стоимости -> запись
// бронирования в waiting_for_payment -> создание платежа в ЮKassa ->
// привязка paymentId. Любая ошибка после записи бронирования, но до
// привязки платежа, компенсируется удалением записи: в БД не должно
// оставаться бронирований, ожидающих оплату без маршрута оплаты.
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	gateway     PaymentGateway
	notifier    NotificationSender
	logger      Logger

	returnURL           string
	extraGuestSurcharge float64
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	gateway PaymentGateway,
	notifier NotificationSender,
	returnURL string,
	extraGuestSurcharge float64,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:         bookingRepo,
		roomRepo:            roomRepo,
		gateway:             gateway,
		notifier:            notifier,
		returnURL:           returnURL,
		extraGuestSurcharge: extraGuestSurcharge,
		logger:              logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: room=%s, checkIn=%s, checkOut=%s, adults=%d, children=%d",
		req.RoomID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat),
		req.Adults, req.Children)

	// 1. Валидация входных данных (без побочных эффектов)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем номер
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room id=%s not found", req.RoomID)
			return nil, fmt.Errorf("%w: room not found", ErrRoomUnavailable)
		}
		uc.logger.Error("CreateBooking: failed to get room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	if room.PricePerNight <= 0 {
		uc.logger.Warn("CreateBooking: room id=%s has non-positive price %f", req.RoomID, room.PricePerNight)
		return nil, fmt.Errorf("%w: room has no valid price", ErrRoomUnavailable)
	}

	// 3. Считаем ночи и стоимость
	quote, err := computeStay(req.CheckIn, req.CheckOut, req.Adults, room.PricePerNight, uc.extraGuestSurcharge)
	if err != nil {
		uc.logger.Warn("CreateBooking: stay computation failed: %v", err)
		return nil, err
	}

	// 4-5. Генерируем номер бронирования и сохраняем запись.
	// Коллизия номера разрешается повторной генерацией, ограниченное число попыток.
	created, err := uc.persistBooking(ctx, req, quote)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: booking persisted, id=%d, number=%s, total=%.2f, nights=%d",
		created.ID, created.BookingNumber, created.TotalCost, created.Nights)

	// 6. Создаем платеж в ЮKassa
	payment, err := uc.createPayment(ctx, created, room)
	if err != nil {
		// 8. Компенсация: бронирование без платежа не должно остаться в БД
		uc.compensate(ctx, created)
		return nil, err
	}

	// 7. Привязываем платеж к бронированию
	if err := uc.bookingRepo.AttachPayment(ctx, created.ID, payment.ID); err != nil {
		uc.logger.Error("CreateBooking: failed to attach payment id=%s to booking id=%d: %v",
			payment.ID, created.ID, err)
		uc.compensate(ctx, created)
		return nil, fmt.Errorf("%w: failed to attach payment: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: payment attached, booking=%s, payment=%s",
		created.BookingNumber, payment.ID)

	// Письмо о созданном бронировании - best-effort, на результат не влияет
	uc.sendCreatedEmail(created, room)

	confirmationURL := ""
	if payment.Confirmation != nil {
		confirmationURL = payment.Confirmation.ConfirmationURL
	}

	return &Response{
		ID:              created.ID,
		BookingNumber:   created.BookingNumber,
		Status:          string(created.Status),
		ConfirmationURL: confirmationURL,
		RoomTitle:       room.Title,
		TotalCost:       created.TotalCost,
		Nights:          created.Nights,
	}, nil
}

// persistBooking сохраняет бронирование, повторяя генерацию номера при коллизии
func (uc *UseCase) persistBooking(ctx context.Context, req *Request, quote *stayQuote) (*domain.Booking, error) {
	for attempt := 1; attempt <= domain.BookingNumberAttempts; attempt++ {
		number, err := generateBookingNumber()
		if err != nil {
			return nil, err
		}

		booking := &domain.Booking{
			BookingNumber: number,
			RoomID:        req.RoomID,
			CheckIn:       req.CheckIn,
			CheckOut:      req.CheckOut,
			Nights:        quote.Nights,
			Adults:        req.Adults,
			Children:      req.Children,
			GuestName:     req.GuestName,
			GuestEmail:    req.GuestEmail,
			GuestPhone:    req.GuestPhone,
			Notes:         req.Notes,
			TotalCost:     quote.TotalCost,
			Status:        domain.StatusWaitingForPayment,
		}

		created, err := uc.bookingRepo.Create(ctx, booking)
		if err == nil {
			return created, nil
		}

		if errors.Is(err, bookingRepo.ErrBookingNumberConflict) {
			uc.logger.Warn("CreateBooking: booking number collision %s, attempt %d/%d",
				number, attempt, domain.BookingNumberAttempts)
			continue
		}

		uc.logger.Error("CreateBooking: failed to persist booking: %v", err)
		return nil, fmt.Errorf("%w: failed to persist booking: %v", ErrInternal, err)
	}

	uc.logger.Error("CreateBooking: exhausted %d booking number attempts", domain.BookingNumberAttempts)
	return nil, fmt.Errorf("%w: failed to generate unique booking number", ErrInternal)
}

// createPayment создает платеж в ЮKassa для бронирования
func (uc *UseCase) createPayment(ctx context.Context, booking *domain.Booking, room *domain.Room) (*yookassa.Payment, error) {
	description := fmt.Sprintf("Проживание в номере «%s», %s — %s (ночей: %d)",
		room.Title,
		booking.CheckIn.Format(domain.DateFormat),
		booking.CheckOut.Format(domain.DateFormat),
		booking.Nights,
	)

	receipt, err := buildReceipt(booking.GuestEmail, booking.GuestPhone, description, booking.TotalCost)
	if err != nil {
		uc.logger.Warn("CreateBooking: receipt data missing for booking=%s", booking.BookingNumber)
		return nil, err
	}

	paymentReq := &yookassa.CreatePaymentRequest{
		Amount: yookassa.Amount{
			Value:    formatAmount(booking.TotalCost),
			Currency: domain.DefaultCurrency,
		},
		Capture: true,
		Confirmation: yookassa.Confirmation{
			Type:      "redirect",
			ReturnURL: fmt.Sprintf("%s?bookingId=%d", uc.returnURL, booking.ID),
		},
		Description: fmt.Sprintf("Оплата бронирования %s", booking.BookingNumber),
		Metadata: map[string]string{
			"bookingId":     strconv.FormatInt(booking.ID, 10),
			"bookingNumber": booking.BookingNumber,
		},
		Receipt: receipt,
	}

	// Свежий ключ идемпотентности на каждый вызов: каждая попытка
	// бронирования - отдельная денежная операция, ключи не переиспользуются
	idempotenceKey := uuid.NewString()

	payment, err := uc.gateway.CreatePayment(ctx, paymentReq, idempotenceKey)
	if err != nil {
		var apiErr *yookassa.APIError
		if errors.As(err, &apiErr) && apiErr.Parameter != "" {
			uc.logger.Warn("CreateBooking: gateway declined payment for booking=%s, parameter=%s",
				booking.BookingNumber, apiErr.Parameter)
			return nil, &PaymentDeclinedError{Parameter: apiErr.Parameter}
		}

		uc.logger.Error("CreateBooking: gateway error for booking=%s: %v", booking.BookingNumber, err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}

	return payment, nil
}

// compensate удаляет бронирование, для которого не удалось создать или
// привязать платеж. Неудачная компенсация не повторяется автоматически
// (повтор рискует удалить уже оплачиваемое бронирование) и требует ручной
// сверки - поэтому логируется максимально громко.
func (uc *UseCase) compensate(ctx context.Context, booking *domain.Booking) {
	if err := uc.bookingRepo.Delete(ctx, booking.ID); err != nil {
		uc.logger.Error("CreateBooking: COMPENSATION FAILED, manual reconciliation required: booking id=%d, number=%s: %v",
			booking.ID, booking.BookingNumber, err)
		return
	}
	uc.logger.Info("CreateBooking: compensating delete applied, booking id=%d, number=%s",
		booking.ID, booking.BookingNumber)
}

// sendCreatedEmail отправляет гостю письмо о созданном бронировании
func (uc *UseCase) sendCreatedEmail(booking *domain.Booking, room *domain.Room) {
	subject, body := buildCreatedEmail(booking, room)
	if err := uc.notifier.Send(booking.GuestEmail, subject, body); err != nil {
		uc.logger.Warn("CreateBooking: failed to send confirmation email for booking=%s: %v",
			booking.BookingNumber, err)
	}
}
