package list_schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/VP-ApprovalService/internal/domain"
)

// stubRepo репозиторий для тестов use case
type stubRepo struct {
	apps       []*domain.Application
	err        error
	lastFilter domain.ScheduleFilter
}

func (s *stubRepo) GetByScheduleWindow(_ context.Context, filter domain.ScheduleFilter) ([]*domain.Application, error) {
	s.lastFilter = filter
	if s.err != nil {
		return nil, s.err
	}
	return s.apps, nil
}

// fixedTimeProvider возвращает заранее заданное время
type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

// stubLogger no-op логгер
type stubLogger struct{}

func (l *stubLogger) Info(string, ...interface{})  {}
func (l *stubLogger) Warn(string, ...interface{})  {}
func (l *stubLogger) Error(string, ...interface{}) {}

func TestUseCase_Execute_ReturnsSortedWindow(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	window := domain.ScheduleWindow{Before: 5 * time.Hour, After: 24 * time.Hour}

	// Репозиторий возвращает записи не по порядку - use case сортирует сам
	repo := &stubRepo{
		apps: []*domain.Application{
			{ID: 2, Name: "Bob", Federation: "FedY", StartTime: now.Add(3 * time.Hour), EndTime: now.Add(4 * time.Hour)},
			{ID: 1, Name: "Alice", Federation: "FedX", StartTime: now.Add(time.Hour), EndTime: now.Add(2 * time.Hour)},
		},
	}

	uc := NewUseCase(repo, window, &stubLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Applications, 2)
	require.Equal(t, "Alice", resp.Applications[0].Name)
	require.Equal(t, "Bob", resp.Applications[1].Name)

	// Фильтр репозитория совпадает с окном видимости
	require.True(t, repo.lastFilter.EndsAfter.Equal(now.Add(-5*time.Hour)))
	require.True(t, repo.lastFilter.EndsAtOrBefore.Equal(now.Add(24*time.Hour)))
}

func TestUseCase_Execute_FiltersOutsideWindow(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	window := domain.ScheduleWindow{Before: 5 * time.Hour, After: 24 * time.Hour}

	// Даже если репозиторий вернул лишние записи, селектор их отбрасывает
	repo := &stubRepo{
		apps: []*domain.Application{
			{ID: 1, Name: "Old", StartTime: now.Add(-7 * time.Hour), EndTime: now.Add(-6 * time.Hour)},
			{ID: 2, Name: "Current", StartTime: now, EndTime: now.Add(time.Hour)},
		},
	}

	uc := NewUseCase(repo, window, &stubLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Applications, 1)
	require.Equal(t, "Current", resp.Applications[0].Name)
}

func TestUseCase_Execute_RepositoryError(t *testing.T) {
	repo := &stubRepo{err: errors.New("connection refused")}

	uc := NewUseCase(repo, domain.ScheduleWindow{Before: 5 * time.Hour, After: 24 * time.Hour}, &stubLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Now()}

	_, err := uc.Execute(context.Background())
	require.ErrorIs(t, err, ErrInternal)
}
