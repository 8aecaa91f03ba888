package process_webhook

import (
	"context"
	"errors"
	"fmt"

	"github.com/lesnoy-dvorik/booking-service/internal/domain"
	bookingRepo "github.com/lesnoy-dvorik/booking-service/internal/infra/storage/booking"
	"github.com/lesnoy-dvorik/booking-service/internal/integrations/yookassa"
)

// UseCase реконсилиация бронирований по webhook-уведомлениям ЮKassa.
//
// Переходы статуса условны по текущему персистентному состоянию
// (compare-and-swap в репозитории), поэтому повторные и конкурентные
// доставки одного уведомления безопасны: переход waiting_for_payment -> paid
// выполняется не более одного раза, как и отправка письма гостю.
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	notifier     NotificationSender
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	notifier NotificationSender,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute обрабатывает уведомление о платеже
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация конверта: некорректную форму отклоняем клиентской
	// ошибкой, чтобы провайдер не ретраил заведомо битые уведомления
	if err := validateNotification(req); err != nil {
		uc.logger.Warn("ProcessWebhook: invalid notification: %v", err)
		return nil, err
	}

	// 2. Ищем бронирование по ID платежа
	booking, err := uc.bookingRepo.GetByPaymentID(ctx, req.PaymentID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			// Платеж не из нашей системы (например, тестовый) - подтверждаем
			// получение, чтобы провайдер не устроил шторм повторов
			uc.logger.Warn("ProcessWebhook: no booking for payment id=%s, acknowledging", req.PaymentID)
			return &Response{
				Outcome:       OutcomeUnknownPayment,
				PaymentStatus: req.PaymentStatus,
			}, nil
		}
		uc.logger.Error("ProcessWebhook: failed to get booking by payment id=%s: %v", req.PaymentID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Диспетчеризация по статусу платежа
	switch req.PaymentStatus {
	case yookassa.PaymentStatusSucceeded:
		return uc.handleSucceeded(ctx, booking, req)

	case yookassa.PaymentStatusCanceled:
		return uc.handleCanceled(ctx, booking, req)

	case yookassa.PaymentStatusWaitingForCapture:
		uc.logger.Info("ProcessWebhook: payment for booking=%s is waiting for capture", booking.BookingNumber)
		return uc.ignored(booking, req), nil

	case yookassa.PaymentStatusPending:
		uc.logger.Info("ProcessWebhook: payment for booking=%s is still pending", booking.BookingNumber)
		return uc.ignored(booking, req), nil

	default:
		uc.logger.Warn("ProcessWebhook: unrecognized payment status %q for booking=%s",
			req.PaymentStatus, booking.BookingNumber)
		return uc.ignored(booking, req), nil
	}
}

// handleSucceeded переводит бронирование в paid и уведомляет гостя
func (uc *UseCase) handleSucceeded(ctx context.Context, booking *domain.Booking, req *Request) (*Response, error) {
	// Быстрый путь для повторной доставки: состояние уже терминальное.
	// Гонку двух одновременных доставок все равно разрешает CAS ниже.
	if booking.IsTerminal() {
		uc.logger.Info("ProcessWebhook: booking=%s already in terminal status %s",
			booking.BookingNumber, booking.Status)
		return &Response{
			Outcome:       OutcomeAlreadyProcessed,
			PaymentStatus: req.PaymentStatus,
			BookingNumber: booking.BookingNumber,
		}, nil
	}

	now := uc.timeProvider.Now()

	transitioned, err := uc.bookingRepo.UpdateStatusIfCurrent(
		ctx, booking.ID, domain.StatusWaitingForPayment, domain.StatusPaid, &now,
	)
	if err != nil {
		uc.logger.Error("ProcessWebhook: failed to mark booking=%s as paid: %v", booking.BookingNumber, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	if !transitioned {
		// Повторное уведомление об оплате - состояние уже терминальное
		uc.logger.Info("ProcessWebhook: duplicate succeeded notification for booking=%s, ignoring",
			booking.BookingNumber)
		return &Response{
			Outcome:       OutcomeAlreadyProcessed,
			PaymentStatus: req.PaymentStatus,
			BookingNumber: booking.BookingNumber,
		}, nil
	}

	uc.logger.Info("ProcessWebhook: booking=%s marked as paid", booking.BookingNumber)

	// Письмо об успешной оплате: отправляется только при фактическом переходе,
	// ошибка отправки не откатывает переход и не влияет на ответ провайдеру
	uc.sendPaidEmail(ctx, booking)

	return &Response{
		Outcome:       OutcomePaid,
		PaymentStatus: req.PaymentStatus,
		BookingNumber: booking.BookingNumber,
	}, nil
}

// handleCanceled переводит бронирование в cancelled, если оплата еще ожидалась
func (uc *UseCase) handleCanceled(ctx context.Context, booking *domain.Booking, req *Request) (*Response, error) {
	if booking.IsTerminal() {
		uc.logger.Info("ProcessWebhook: cancel notification for booking=%s in terminal status %s",
			booking.BookingNumber, booking.Status)
		return &Response{
			Outcome:       OutcomeAlreadyProcessed,
			PaymentStatus: req.PaymentStatus,
			BookingNumber: booking.BookingNumber,
		}, nil
	}

	transitioned, err := uc.bookingRepo.UpdateStatusIfCurrent(
		ctx, booking.ID, domain.StatusWaitingForPayment, domain.StatusCancelled, nil,
	)
	if err != nil {
		uc.logger.Error("ProcessWebhook: failed to cancel booking=%s: %v", booking.BookingNumber, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	if !transitioned {
		uc.logger.Info("ProcessWebhook: cancel notification for booking=%s in status %s, ignoring",
			booking.BookingNumber, booking.Status)
		return &Response{
			Outcome:       OutcomeAlreadyProcessed,
			PaymentStatus: req.PaymentStatus,
			BookingNumber: booking.BookingNumber,
		}, nil
	}

	uc.logger.Info("ProcessWebhook: booking=%s cancelled after payment cancellation", booking.BookingNumber)

	return &Response{
		Outcome:       OutcomeCancelled,
		PaymentStatus: req.PaymentStatus,
		BookingNumber: booking.BookingNumber,
	}, nil
}

// ignored формирует ответ для уведомлений, не меняющих состояние
func (uc *UseCase) ignored(booking *domain.Booking, req *Request) *Response {
	return &Response{
		Outcome:       OutcomeIgnored,
		PaymentStatus: req.PaymentStatus,
		BookingNumber: booking.BookingNumber,
	}
}

// sendPaidEmail отправляет гостю письмо об успешной оплате
func (uc *UseCase) sendPaidEmail(ctx context.Context, booking *domain.Booking) {
	roomTitle := "Выбранный номер"
	if room, err := uc.roomRepo.GetByID(ctx, booking.RoomID); err == nil {
		roomTitle = room.Title
	} else {
		uc.logger.Warn("ProcessWebhook: failed to resolve room id=%s for email: %v", booking.RoomID, err)
	}

	subject, body := buildPaidEmail(booking, roomTitle)
	if err := uc.notifier.Send(booking.GuestEmail, subject, body); err != nil {
		uc.logger.Error("ProcessWebhook: failed to send payment email for booking=%s: %v",
			booking.BookingNumber, err)
	}
}
