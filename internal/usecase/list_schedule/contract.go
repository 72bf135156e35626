package list_schedule

import (
	"context"
	"time"

	"github.com/m04kA/VP-ApprovalService/internal/domain"
)

// ApplicationRepository интерфейс репозитория заявок
type ApplicationRepository interface {
	GetByScheduleWindow(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.Application, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
