package submit_application

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/VP-ApprovalService/internal/domain"
)

// validateRequest валидирует заявку без обращения к хранилищу
// Проверки выполняются по порядку, возвращается первая нарушенная:
// заполненность полей, порядок времён, максимальная длительность
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrMissingField)
	}

	if strings.TrimSpace(req.Federation) == "" {
		return fmt.Errorf("%w: federation is required", ErrMissingField)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: start_time is required", ErrMissingField)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: end_time is required", ErrMissingField)
	}

	if !req.StartTime.Before(req.EndTime) {
		return ErrInvertedInterval
	}

	if req.EndTime.Sub(req.StartTime) > domain.MaxApplicationDuration {
		return fmt.Errorf("%w: slot must be at most %s", ErrDurationExceeded, domain.MaxApplicationDuration)
	}

	return nil
}

// validationRange вычисляет диапазон чтения для валидации:
// объединение интервала кандидата и его полных локальных суток.
// Диапазон покрывает и все потенциально пересекающиеся слоты,
// и все слоты федерации в тех же сутках - сужать его нельзя
func validationRange(req *Request, loc *time.Location) domain.OverlapRange {
	dayStart, dayEnd := domain.LocalDayBounds(req.StartTime, loc)

	from := req.StartTime
	if dayStart.Before(from) {
		from = dayStart
	}

	to := req.EndTime
	if dayEnd.After(to) {
		to = dayEnd
	}

	return domain.OverlapRange{From: from, To: to}
}

// findConflict возвращает первую одобренную заявку, пересекающую интервал кандидата
// Интервалы полуоткрытые [start, end): слот, заканчивающийся ровно в момент
// начала кандидата (или наоборот), конфликтом не считается
func findConflict(req *Request, existing []*domain.Application) *domain.Application {
	for _, app := range existing {
		if app.Overlaps(req.StartTime, req.EndTime) {
			return app
		}
	}
	return nil
}

// countFederationSlotsOnDay подсчитывает заявки федерации кандидата,
// начинающиеся в те же локальные сутки, что и заявка кандидата
func countFederationSlotsOnDay(req *Request, existing []*domain.Application, loc *time.Location) int {
	count := 0
	for _, app := range existing {
		if app.Federation != req.Federation {
			continue
		}
		if domain.SameLocalDay(app.StartTime, req.StartTime, loc) {
			count++
		}
	}
	return count
}
