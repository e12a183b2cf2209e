package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения бронирований.
// Бронирования создаёт визитёрская часть системы,
// этот сервис только читает их для агрегатов и deletion guard
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var bookingColumns = []string{
	"bk.id",
	"bk.slot_id",
	"bk.guest_name",
	"bk.guest_email",
	"bk.status",
	"bk.created_at",
}

// ListByMenu получает все бронирования всех слотов меню
func (r *Repository) ListByMenu(ctx context.Context, menuID int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings bk").
		Join("slots s ON s.id = bk.slot_id").
		Where(squirrel.Eq{"s.menu_id": menuID}).
		OrderBy("bk.created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByMenu - build select query: %v", ErrBuildQuery, err)
	}

	return r.list(ctx, executor, query, args)
}

// ListBySlot получает бронирования одного слота
func (r *Repository) ListBySlot(ctx context.Context, slotID int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings bk").
		Where(squirrel.Eq{"bk.slot_id": slotID}).
		OrderBy("bk.created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBySlot - build select query: %v", ErrBuildQuery, err)
	}

	return r.list(ctx, executor, query, args)
}

func (r *Repository) list(ctx context.Context, executor DBExecutor, query string, args []interface{}) ([]*domain.Booking, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		var (
			bk        domain.Booking
			createdAt sql.NullTime
		)

		err := rows.Scan(
			&bk.ID,
			&bk.SlotID,
			&bk.GuestName,
			&bk.GuestEmail,
			&bk.Status,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scan booking: %v", ErrScanRow, err)
		}

		bk.CreatedAt = createdAt.Time
		bookings = append(bookings, &bk)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate rows: %v", ErrScanRow, err)
	}

	return bookings, nil
}
