package submit_application

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/VP-ApprovalService/internal/domain"
)

// UseCase use case подачи заявки на VP слот
type UseCase struct {
	appRepo   ApplicationRepository
	txManager TransactionManager
	location  *time.Location
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appRepo ApplicationRepository,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		appRepo:   appRepo,
		txManager: txManager,
		location:  location,
		logger:    logger,
	}
}

// Execute выполняет use case подачи заявки
// Использует сериализуемую транзакцию, чтобы две параллельные заявки
// не прошли валидацию по одному и тому же снимку расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitApplication: name=%s, federation=%s, start=%s, end=%s",
		req.Name, req.Federation, req.StartTime.Format(time.RFC3339), req.EndTime.Format(time.RFC3339))

	// 1. Валидация без обращения к хранилищу (поля, порядок времён, длительность)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitApplication: validation failed: %v", err)
		return nil, err
	}

	// Нормализуем времена в UTC - в хранилище всегда UTC
	req.StartTime = req.StartTime.UTC()
	req.EndTime = req.EndTime.UTC()

	// Переменная для хранения результата
	var result *domain.Application

	// 2. Проверки против расписания и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Читаем все заявки, способные повлиять на решение:
		// пересекающие интервал кандидата либо начинающиеся в его локальных сутках
		rng := validationRange(req, uc.location)

		existing, err := uc.appRepo.GetOverlapping(txCtx, rng)
		if err != nil {
			uc.logger.Error("SubmitApplication: failed to get existing applications: %v", err)
			return fmt.Errorf("%w: failed to get existing applications: %v", ErrInternal, err)
		}

		// 2.2. Проверка пересечения интервалов
		if conflict := findConflict(req, existing); conflict != nil {
			uc.logger.Warn("SubmitApplication: time conflict with application id=%d (%s - %s)",
				conflict.ID, conflict.StartTime.Format(time.RFC3339), conflict.EndTime.Format(time.RFC3339))
			return ErrTimeConflict
		}

		// 2.3. Проверка дневной квоты федерации
		sameDay := countFederationSlotsOnDay(req, existing, uc.location)
		if sameDay >= domain.MaxFederationPerDay {
			uc.logger.Warn("SubmitApplication: federation %s already holds %d/%d slots on this day",
				req.Federation, sameDay, domain.MaxFederationPerDay)
			return ErrFederationQuotaExceeded
		}

		// 2.4. Сохраняем одобренную заявку
		app := &domain.Application{
			Name:       req.Name,
			Federation: req.Federation,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
		}

		created, err := uc.appRepo.Create(txCtx, app)
		if err != nil {
			uc.logger.Error("SubmitApplication: failed to create application: %v", err)
			return fmt.Errorf("%w: failed to create application: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("SubmitApplication: successfully approved application id=%d", result.ID)

	return &Response{
		ID:         result.ID,
		Name:       result.Name,
		Federation: result.Federation,
		StartTime:  result.StartTime,
		EndTime:    result.EndTime,
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}
