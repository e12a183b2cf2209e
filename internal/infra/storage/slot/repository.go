package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Repository репозиторий для работы со слотами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// activeBookingPredicate условие "бронирование занимает место",
// построенное из доменного списка активных статусов: подсчёт
// current_bookings и deletion guard используют один и тот же предикат
var activeBookingPredicate = func() string {
	quoted := make([]string, len(domain.ActiveBookingStatuses))
	for i, status := range domain.ActiveBookingStatuses {
		quoted[i] = "'" + string(status) + "'"
	}
	return "b.status IN (" + strings.Join(quoted, ", ") + ")"
}()

// countActiveBookings подзапрос: количество активных бронирований слота
var countActiveBookings = "(SELECT COUNT(*) FROM bookings b " +
	"WHERE b.slot_id = s.id AND " + activeBookingPredicate + ")"

// ListByMenu получает все слоты меню.
// current_bookings считается на стороне БД и является авторитетным значением
func (r *Repository) ListByMenu(ctx context.Context, menuID int64) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"s.id",
		"s.menu_id",
		"s.slot_date",
		"s.start_time",
		"s.end_time",
		"s.max_capacity",
		countActiveBookings+" AS current_bookings",
		"s.created_at",
		"s.updated_at",
	).
		From("slots s").
		Where(squirrel.Eq{"s.menu_id": menuID}).
		OrderBy("s.slot_date", "s.start_time").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByMenu - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByMenu - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.Slot, 0)
	for rows.Next() {
		var (
			slot      domain.Slot
			id        int64
			startTime string
			endTime   string
			createdAt sql.NullTime
			updatedAt sql.NullTime
		)

		err := rows.Scan(
			&id,
			&slot.MenuID,
			&slot.Date,
			&startTime,
			&endTime,
			&slot.MaxCapacity,
			&slot.CurrentBookings,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByMenu - scan slot: %v", ErrScanRow, err)
		}

		slot.ID = strconv.FormatInt(id, 10)
		slot.StartTime = types.TimeString(startTime)
		slot.EndTime = types.TimeString(endTime)
		slot.Lifecycle = domain.LifecyclePersisted
		slot.CreatedAt = createdAt.Time
		slot.UpdatedAt = updatedAt.Time

		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByMenu - iterate rows: %v", ErrScanRow, err)
	}

	return slots, nil
}

// Create сохраняет один слот и возвращает его с идентификатором хранилища.
// Если в контексте передана активная транзакция, использует её -
// пакетное создание заворачивается в сериализуемую транзакцию выше
func (r *Repository) Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("slots").
		Columns(
			"menu_id",
			"slot_date",
			"start_time",
			"end_time",
			"max_capacity",
		).
		Values(
			slot.MenuID,
			slot.Date,
			slot.StartTime.String(),
			slot.EndTime.String(),
			slot.MaxCapacity,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var (
		id        int64
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	persisted := *slot
	persisted.ID = strconv.FormatInt(id, 10)
	persisted.Lifecycle = domain.LifecyclePersisted
	persisted.CurrentBookings = 0
	persisted.CreatedAt = createdAt.Time
	persisted.UpdatedAt = updatedAt.Time

	return &persisted, nil
}

// Delete удаляет слот с серверной проверкой deletion guard:
// удаление и проверка активных бронирований выполняются одним запросом,
// поэтому гонка с параллельным созданием бронирования исключена
func (r *Repository) Delete(ctx context.Context, slotID string) error {
	id, err := parsePersistedID(slotID)
	if err != nil {
		return err
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query := "DELETE FROM slots s WHERE s.id = $1 AND NOT EXISTS " +
		"(SELECT 1 FROM bookings b WHERE b.slot_id = s.id AND " + activeBookingPredicate + ")"

	result, err := executor.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}

	if affected > 0 {
		return nil
	}

	// Ничего не удалено: либо слот не существует, либо guard сработал
	exists, err := r.exists(ctx, id)
	if err != nil {
		return err
	}
	if exists {
		return ErrSlotHasBookings
	}
	return ErrSlotNotFound
}

func (r *Repository) exists(ctx context.Context, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: exists - scan: %v", ErrScanRow, err)
	}
	return true, nil
}

// parsePersistedID разбирает идентификатор сохранённого слота.
// Черновики в хранилище не существуют, их идентификаторы не принимаются
func parsePersistedID(slotID string) (int64, error) {
	if domain.IsDraftID(slotID) {
		return 0, fmt.Errorf("%w: %q is a draft id", ErrInvalidSlotID, slotID)
	}

	id, err := strconv.ParseInt(slotID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSlotID, slotID)
	}
	return id, nil
}
