package applications

import (
	"context"
	"errors"
	"fmt"

	appRepo "github.com/m04kA/VP-ApprovalService/internal/infra/storage/application"
)

// Service сервис для административных операций над заявками
type Service struct {
	appRepo       ApplicationRepository
	adminPassword string
	logger        Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(
	appRepo ApplicationRepository,
	adminPassword string,
	logger Logger,
) *Service {
	return &Service{
		appRepo:       appRepo,
		adminPassword: adminPassword,
		logger:        logger,
	}
}

// Delete удаляет заявку из расписания
// Пароль администратора передается с каждым запросом и сверяется до
// обращения к хранилищу: сначала проверяется наличие, затем значение.
// Это общий секрет сообщества, а не механизм аутентификации
func (s *Service) Delete(ctx context.Context, id int64, password string) error {
	s.logger.Info("Delete: deleting application id=%d", id)

	if password == "" {
		s.logger.Warn("Delete: missing admin password for application id=%d", id)
		return ErrPasswordRequired
	}

	if password != s.adminPassword {
		s.logger.Warn("Delete: invalid admin password for application id=%d", id)
		return ErrInvalidPassword
	}

	if err := s.appRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appRepo.ErrApplicationNotFound) {
			s.logger.Warn("Delete: application id=%d not found", id)
			return ErrApplicationNotFound
		}
		s.logger.Error("Delete: repository error for application id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted application id=%d", id)
	return nil
}
