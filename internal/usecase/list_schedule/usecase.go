package list_schedule

import (
	"context"
	"fmt"

	"github.com/m04kA/VP-ApprovalService/internal/domain"
)

// UseCase use case получения видимой части расписания VP слотов
type UseCase struct {
	appRepo      ApplicationRepository
	window       domain.ScheduleWindow
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appRepo ApplicationRepository,
	window domain.ScheduleWindow,
	logger Logger,
) *UseCase {
	return &UseCase{
		appRepo:      appRepo,
		window:       window,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает заявки, попадающие в окно видимости вокруг текущего времени
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now().UTC()

	apps, err := uc.appRepo.GetByScheduleWindow(ctx, uc.window.FilterAt(now))
	if err != nil {
		uc.logger.Error("ListSchedule: failed to get applications: %v", err)
		return nil, fmt.Errorf("%w: failed to get applications: %v", ErrInternal, err)
	}

	visible := selectVisible(now, apps, uc.window)

	entries := make([]Entry, len(visible))
	for i, app := range visible {
		entries[i] = Entry{
			ID:         app.ID,
			Name:       app.Name,
			Federation: app.Federation,
			StartTime:  app.StartTime,
			EndTime:    app.EndTime,
		}
	}

	uc.logger.Info("ListSchedule: returning %d applications", len(entries))
	return &Response{Applications: entries}, nil
}
