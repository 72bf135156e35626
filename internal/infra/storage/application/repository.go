package application

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/VP-ApprovalService/internal/domain"
	"github.com/m04kA/VP-ApprovalService/pkg/dbmetrics"
	"github.com/m04kA/VP-ApprovalService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с заявками на VP слоты
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет одобренную заявку
// Если в контексте передана активная транзакция (через context.Value), использует её
func (r *Repository) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("applications").
		Columns(
			"name",
			"federation",
			"start_time",
			"end_time",
		).
		Values(
			app.Name,
			app.Federation,
			app.StartTime,
			app.EndTime,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&app.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	app.CreatedAt = createdAt.Time
	app.UpdatedAt = updatedAt.Time

	return app, nil
}

// GetByID получает заявку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"federation",
		"start_time",
		"end_time",
		"created_at",
		"updated_at",
	).
		From("applications").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var app domain.Application
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&app.ID,
		&app.Name,
		&app.Federation,
		&app.StartTime,
		&app.EndTime,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan application: %v", ErrScanRow, err)
	}

	app.CreatedAt = createdAt.Time
	app.UpdatedAt = updatedAt.Time

	return &app, nil
}

// GetOverlapping получает заявки, чьи интервалы пересекают полуоткрытый
// диапазон [From, To). Используется валидацией перед созданием заявки.
//
// Диапазон обязан покрывать объединение интервала кандидата и его полных
// локальных суток - сужение диапазона ломает проверку дневной квоты.
//
// Внутри транзакции строки блокируются (FOR UPDATE), чтобы параллельные
// заявки не прошли валидацию по одному и тому же снимку данных
func (r *Repository) GetOverlapping(ctx context.Context, rng domain.OverlapRange) ([]*domain.Application, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"name",
		"federation",
		"start_time",
		"end_time",
		"created_at",
		"updated_at",
	).
		From("applications").
		Where(squirrel.Lt{"start_time": rng.To}).
		Where(squirrel.Gt{"end_time": rng.From}).
		OrderBy("start_time ASC", "id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanApplications(rows)
}

// GetByScheduleWindow получает заявки, попадающие в окно видимости
// расписания: end_time в (EndsAfter, EndsAtOrBefore].
// Результат отсортирован по времени начала, затем по ID
func (r *Repository) GetByScheduleWindow(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.Application, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"federation",
		"start_time",
		"end_time",
		"created_at",
		"updated_at",
	).
		From("applications").
		Where(squirrel.Gt{"end_time": filter.EndsAfter}).
		Where(squirrel.LtOrEq{"end_time": filter.EndsAtOrBefore}).
		OrderBy("start_time ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByScheduleWindow - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByScheduleWindow - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanApplications(rows)
}

// Delete удаляет заявку (физическое удаление)
// Заявки не имеют жизненного цикла статусов: создание и удаление - единственные операции
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("applications").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrApplicationNotFound
	}

	return nil
}

// scanApplications сканирует результаты запроса в слайс заявок
func (r *Repository) scanApplications(rows *sql.Rows) ([]*domain.Application, error) {
	applications := make([]*domain.Application, 0)

	for rows.Next() {
		var app domain.Application
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&app.ID,
			&app.Name,
			&app.Federation,
			&app.StartTime,
			&app.EndTime,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanApplications - scan row: %v", ErrScanRow, err)
		}

		app.CreatedAt = createdAt.Time
		app.UpdatedAt = updatedAt.Time

		applications = append(applications, &app)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanApplications - rows error: %v", ErrScanRow, err)
	}

	return applications, nil
}
