package application

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VP-ApprovalService/internal/domain"
	"github.com/m04kA/VP-ApprovalService/pkg/dbmetrics"
)

var appColumns = []string{"id", "name", "federation", "start_time", "end_time", "created_at", "updated_at"}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC)
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantID  int64
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO applications \(name,federation,start_time,end_time\)`).
					WithArgs("Alice", "FedX", start, end).
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
						AddRow(int64(1), now, now))
			},
			wantID: 1,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO applications`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: ErrExecQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewRepository(db)

			created, err := repo.Create(ctx, &domain.Application{
				Name:       "Alice",
				Federation: "FedX",
				StartTime:  start,
				EndTime:    end,
			})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, created.ID)
			require.Equal(t, now, created.CreatedAt)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC)
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, name, federation, start_time, end_time, created_at, updated_at FROM applications`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(appColumns).
				AddRow(int64(1), "Alice", "FedX", start, end, now, now))

		repo := NewRepository(db)
		app, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, "Alice", app.Name)
		require.Equal(t, "FedX", app.Federation)
		require.True(t, app.StartTime.Equal(start))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, name, federation, start_time, end_time, created_at, updated_at FROM applications`).
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		repo := NewRepository(db)
		_, err = repo.GetByID(ctx, 99)
		require.ErrorIs(t, err, ErrApplicationNotFound)
	})
}

func TestRepository_GetOverlapping(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	t.Run("without transaction no row lock", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT .+ FROM applications WHERE start_time < \$1 AND end_time > \$2 ORDER BY start_time ASC, id ASC$`).
			WithArgs(to, from).
			WillReturnRows(sqlmock.NewRows(appColumns).
				AddRow(int64(1), "Alice", "FedX", from, to, now, now))

		repo := NewRepository(db)
		apps, err := repo.GetOverlapping(ctx, domain.OverlapRange{From: from, To: to})
		require.NoError(t, err)
		require.Len(t, apps, 1)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("inside transaction locks rows", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT .+ FROM applications WHERE start_time < \$1 AND end_time > \$2 ORDER BY start_time ASC, id ASC FOR UPDATE$`).
			WithArgs(to, from).
			WillReturnRows(sqlmock.NewRows(appColumns))
		mock.ExpectRollback()

		tx, err := db.BeginTx(ctx, nil)
		require.NoError(t, err)
		txCtx := dbmetrics.ContextWithTx(ctx, tx)

		repo := NewRepository(db)
		apps, err := repo.GetOverlapping(txCtx, domain.OverlapRange{From: from, To: to})
		require.NoError(t, err)
		require.Empty(t, apps)

		require.NoError(t, tx.Rollback())
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetByScheduleWindow(t *testing.T) {
	ctx := context.Background()
	endsAfter := time.Date(2024, 1, 1, 7, 0, 0, 0, time.UTC)
	endsAtOrBefore := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM applications WHERE end_time > \$1 AND end_time <= \$2 ORDER BY start_time ASC, id ASC$`).
		WithArgs(endsAfter, endsAtOrBefore).
		WillReturnRows(sqlmock.NewRows(appColumns).
			AddRow(int64(1), "Alice", "FedX", now, now.Add(time.Hour), now, now).
			AddRow(int64(2), "Bob", "FedY", now.Add(2*time.Hour), now.Add(3*time.Hour), now, now))

	repo := NewRepository(db)
	apps, err := repo.GetByScheduleWindow(ctx, domain.ScheduleFilter{
		EndsAfter:      endsAfter,
		EndsAtOrBefore: endsAtOrBefore,
	})
	require.NoError(t, err)
	require.Len(t, apps, 2)
	require.Equal(t, int64(1), apps[0].ID)
	require.Equal(t, int64(2), apps[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM applications`).
					WithArgs(int64(42)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM applications`).
					WithArgs(int64(42)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrApplicationNotFound,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM applications`).
					WithArgs(int64(42)).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: ErrExecQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewRepository(db)

			err = repo.Delete(ctx, 42)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
