package applications

import "context"

// ApplicationRepository интерфейс репозитория заявок
type ApplicationRepository interface {
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
