package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/barberhub/booking-service/internal/domain"
	"github.com/barberhub/booking-service/pkg/dbmetrics"
	"github.com/barberhub/booking-service/pkg/psqlbuilder"
)

var scheduleColumns = []string{
	"id",
	"barber_id",
	"day_of_week",
	"start_time",
	"end_time",
	"break_start",
	"break_end",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с недельным расписанием барберов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByBarber получает все записи недельного расписания барбера
func (r *Repository) GetByBarber(ctx context.Context, barberID uuid.UUID) ([]domain.ScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("barber_schedules").
		Where(squirrel.Eq{"barber_id": barberID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarber - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarber - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]domain.ScheduleEntry, 0)

	for rows.Next() {
		var entry domain.ScheduleEntry
		var dayOfWeek int
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&entry.ID,
			&entry.BarberID,
			&dayOfWeek,
			&entry.StartTime,
			&entry.EndTime,
			&entry.BreakStart,
			&entry.BreakEnd,
			&entry.IsActive,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: GetByBarber - scan row: %v", ErrScanRow, err)
		}

		entry.DayOfWeek = time.Weekday(dayOfWeek)
		entry.CreatedAt = createdAt.Time
		entry.UpdatedAt = updatedAt.Time

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBarber - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}

// ReplaceForBarber полностью заменяет недельное расписание барбера:
// удаляет старые записи и вставляет новые одним набором.
// Семантика "replace wholesale" повторяет то, как барбер сохраняет
// конфигурацию недели целиком; вызывается внутри транзакции, чтобы между
// удалением и вставкой никто не увидел пустое расписание.
func (r *Repository) ReplaceForBarber(ctx context.Context, barberID uuid.UUID, entries []domain.ScheduleEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("barber_schedules").
		Where(squirrel.Eq{"barber_id": barberID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceForBarber - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForBarber - execute delete: %v", ErrExecQuery, err)
	}

	if len(entries) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("barber_schedules").
		Columns(
			"barber_id",
			"day_of_week",
			"start_time",
			"end_time",
			"break_start",
			"break_end",
			"is_active",
		)

	for _, entry := range entries {
		insertBuilder = insertBuilder.Values(
			barberID,
			int(entry.DayOfWeek),
			entry.StartTime,
			entry.EndTime,
			entry.BreakStart,
			entry.BreakEnd,
			entry.IsActive,
		)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForBarber - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForBarber - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
