package room

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/lesnoy-dvorik/booking-service/internal/domain"
	"github.com/lesnoy-dvorik/booking-service/pkg/dbmetrics"
	"github.com/lesnoy-dvorik/booking-service/pkg/psqlbuilder"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository read-only репозиторий номеров отеля.
// Управление номерами (CRUD, медиа) живет в админской части системы,
// сервису бронирования нужны только цена и название.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория номеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает номер по его идентификатору
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"title",
		"price_per_night",
		"capacity",
		"is_available",
	).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var room domain.Room
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&room.ID,
		&room.Title,
		&room.PricePerNight,
		&room.Capacity,
		&room.IsAvailable,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	return &room, nil
}
