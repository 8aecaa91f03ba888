package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/lesnoy-dvorik/booking-service/internal/domain"
	"github.com/lesnoy-dvorik/booking-service/pkg/psqlbuilder"
)

const (
	pqUniqueViolation = "23505"

	constraintBookingNumber = "bookings_booking_number_key"
	constraintPaymentID     = "bookings_payment_id_key"
)

var bookingColumns = []string{
	"id",
	"booking_number",
	"room_id",
	"check_in",
	"check_out",
	"nights",
	"adults",
	"children",
	"guest_name",
	"guest_email",
	"guest_phone",
	"notes",
	"total_cost",
	"payment_id",
	"paid_at",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование в статусе waiting_for_payment.
// Уникальность booking_number обеспечивается индексом: при коллизии
// возвращается ErrBookingNumberConflict, и вызывающая сторона может
// сгенерировать новый номер и повторить попытку.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"booking_number",
			"room_id",
			"check_in",
			"check_out",
			"nights",
			"adults",
			"children",
			"guest_name",
			"guest_email",
			"guest_phone",
			"notes",
			"total_cost",
			"status",
		).
		Values(
			b.BookingNumber,
			b.RoomID,
			b.CheckIn,
			b.CheckOut,
			b.Nights,
			b.Adults,
			b.Children,
			b.GuestName,
			b.GuestEmail,
			b.GuestPhone,
			b.Notes,
			b.TotalCost,
			b.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err, constraintBookingNumber) {
			return nil, ErrBookingNumberConflict
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по внутреннему ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByNumber получает бронирование по человекочитаемому номеру
func (r *Repository) GetByNumber(ctx context.Context, number string) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"booking_number": number}, "GetByNumber")
}

// GetByPaymentID получает бронирование по ID платежа ЮKassa
// Используется реконсилиацией webhook-уведомлений
func (r *Repository) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"payment_id": paymentID}, "GetByPaymentID")
}

// AttachPayment привязывает платеж к бронированию.
// Выполняется ровно один раз: условие payment_id IS NULL гарантирует,
// что повторная привязка не перезапишет существующий платеж.
func (r *Repository) AttachPayment(ctx context.Context, id int64, paymentID string) error {
	query, args, err := psqlbuilder.Update("bookings").
		Set("payment_id", paymentID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where("payment_id IS NULL").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AttachPayment - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err, constraintPaymentID) {
			return ErrPaymentIDConflict
		}
		return fmt.Errorf("%w: AttachPayment - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: AttachPayment - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Либо бронирования нет, либо платеж уже привязан - различаем по выборке
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrPaymentAlreadyAttached
	}

	return nil
}

// UpdateStatusIfCurrent атомарно переводит бронирование из expected в newStatus.
// Условная запись (compare-and-swap по статусу) делает переход безопасным при
// конкурентной доставке дублирующихся уведомлений: переход выполняется не более
// одного раза, повторный вызов вернет transitioned=false.
// paidAt выставляется только если передан (переход в paid).
func (r *Repository) UpdateStatusIfCurrent(
	ctx context.Context,
	id int64,
	expected domain.BookingStatus,
	newStatus domain.BookingStatus,
	paidAt *time.Time,
) (bool, error) {
	updateBuilder := psqlbuilder.Update("bookings").
		Set("status", newStatus).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": expected})

	if paidAt != nil {
		updateBuilder = updateBuilder.Set("paid_at", *paidAt)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: UpdateStatusIfCurrent - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: UpdateStatusIfCurrent - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: UpdateStatusIfCurrent - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

// Delete физически удаляет бронирование.
// Используется только как компенсирующее действие при неудачном создании
// платежа, чтобы не оставлять "осиротевшие" записи в waiting_for_payment.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// getOne выполняет выборку одного бронирования по условию
func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, op string) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.BookingNumber,
		&b.RoomID,
		&b.CheckIn,
		&b.CheckOut,
		&b.Nights,
		&b.Adults,
		&b.Children,
		&b.GuestName,
		&b.GuestEmail,
		&b.GuestPhone,
		&b.Notes,
		&b.TotalCost,
		&b.PaymentID,
		&b.PaidAt,
		&b.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// isUniqueViolation проверяет, что ошибка - нарушение конкретного уникального индекса
func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == pqUniqueViolation && pqErr.Constraint == constraint
}
