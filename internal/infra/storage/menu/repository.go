package menu

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с меню бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория меню
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var menuColumns = []string{
	"id",
	"title",
	"description",
	"contact_method",
	"duration_minutes",
	"mode",
	"is_active",
	"notification_email",
	"created_at",
	"updated_at",
}

// Create создает новое меню бронирования
func (r *Repository) Create(ctx context.Context, menu *domain.BookingMenu) (*domain.BookingMenu, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_menus").
		Columns(
			"title",
			"description",
			"contact_method",
			"duration_minutes",
			"mode",
			"is_active",
			"notification_email",
		).
		Values(
			menu.Title,
			menu.Description,
			menu.ContactMethod,
			menu.DurationMinutes,
			menu.Mode,
			menu.IsActive,
			menu.NotificationEmail,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&menu.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	menu.CreatedAt = createdAt.Time
	menu.UpdatedAt = updatedAt.Time

	return menu, nil
}

// GetByID получает меню по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BookingMenu, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(menuColumns...).
		From("booking_menus").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	menu, err := scanMenu(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMenuNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan menu: %v", ErrScanRow, err)
	}

	return menu, nil
}

// Update обновляет меню целиком
func (r *Repository) Update(ctx context.Context, menu *domain.BookingMenu) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("booking_menus").
		Set("title", menu.Title).
		Set("description", menu.Description).
		Set("contact_method", menu.ContactMethod).
		Set("duration_minutes", menu.DurationMinutes).
		Set("mode", menu.Mode).
		Set("is_active", menu.IsActive).
		Set("notification_email", menu.NotificationEmail).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": menu.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - rows affected: %v", ErrExecQuery, err)
	}

	if affected == 0 {
		return ErrMenuNotFound
	}

	return nil
}

// List получает все меню (активные и неактивные)
func (r *Repository) List(ctx context.Context) ([]*domain.BookingMenu, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(menuColumns...).
		From("booking_menus").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	menus := make([]*domain.BookingMenu, 0)
	for rows.Next() {
		menu, err := scanMenu(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan menu: %v", ErrScanRow, err)
		}
		menus = append(menus, menu)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return menus, nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMenu(row rowScanner) (*domain.BookingMenu, error) {
	var menu domain.BookingMenu
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&menu.ID,
		&menu.Title,
		&menu.Description,
		&menu.ContactMethod,
		&menu.DurationMinutes,
		&menu.Mode,
		&menu.IsActive,
		&menu.NotificationEmail,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	menu.CreatedAt = createdAt.Time
	menu.UpdatedAt = updatedAt.Time

	return &menu, nil
}
