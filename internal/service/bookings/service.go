package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/lesnoy-dvorik/booking-service/internal/domain"
	bookingRepo "github.com/lesnoy-dvorik/booking-service/internal/infra/storage/booking"
	roomRepo "github.com/lesnoy-dvorik/booking-service/internal/infra/storage/room"
	"github.com/lesnoy-dvorik/booking-service/internal/service/bookings/models"
)

// unknownRoomTitle подставляется, если номер был удален из каталога
const unknownRoomTitle = "Неизвестный номер"

// Service сервис проекций бронирований для чтения
type Service struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		logger:      logger,
	}
}

// GetByNumber получает бронирование по человекочитаемому номеру
func (s *Service) GetByNumber(ctx context.Context, number string) (*models.BookingResponse, error) {
	s.logger.Info("GetByNumber: fetching booking number=%s", number)

	booking, err := s.bookingRepo.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByNumber: booking number=%s not found", number)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByNumber: repository error for number=%s: %v", number, err)
		return nil, fmt.Errorf("%w: GetByNumber - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking, s.resolveRoomTitle(ctx, booking)), nil
}

// GetByID получает бронирование по внутреннему ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking, s.resolveRoomTitle(ctx, booking)), nil
}

// resolveRoomTitle возвращает название номера или подстановку,
// если номер больше не существует в каталоге
func (s *Service) resolveRoomTitle(ctx context.Context, booking *domain.Booking) string {
	room, err := s.roomRepo.GetByID(ctx, booking.RoomID)
	if err != nil {
		if !errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("resolveRoomTitle: failed to get room id=%s: %v", booking.RoomID, err)
		}
		return unknownRoomTitle
	}
	return room.Title
}
