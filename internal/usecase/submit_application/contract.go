package submit_application

import (
	"context"

	"github.com/m04kA/VP-ApprovalService/internal/domain"
)

// ApplicationRepository интерфейс репозитория заявок
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
	GetOverlapping(ctx context.Context, rng domain.OverlapRange) ([]*domain.Application, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
