package submit_application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/VP-ApprovalService/internal/domain"
)

func TestValidationRange_CoversCandidateAndLocalDay(t *testing.T) {
	// Кандидат пересекает границу локальных суток UTC+9 (15:00Z)
	req := &Request{
		Name:       "Alice",
		Federation: "FedX",
		StartTime:  time.Date(2024, 1, 1, 14, 30, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC),
	}

	rng := validationRange(req, jst)

	// Локальные сутки начала кандидата: [2023-12-31T15:00Z, 2024-01-01T15:00Z)
	// Диапазон - объединение суток и интервала кандидата
	require.True(t, rng.From.Equal(time.Date(2023, 12, 31, 15, 0, 0, 0, time.UTC)))
	require.True(t, rng.To.Equal(time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC)))
}

func TestValidationRange_DayContainsCandidate(t *testing.T) {
	req := &Request{
		Name:       "Alice",
		Federation: "FedX",
		StartTime:  time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 1, 1, 2, 0, 0, 0, time.UTC),
	}

	rng := validationRange(req, jst)

	// Интервал кандидата целиком внутри локальных суток -
	// диапазон совпадает с границами суток
	require.True(t, rng.From.Equal(time.Date(2023, 12, 31, 15, 0, 0, 0, time.UTC)))
	require.True(t, rng.To.Equal(time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC)))
}

func TestCountFederationSlotsOnDay(t *testing.T) {
	req := &Request{
		Name:       "Carol",
		Federation: "FedX",
		StartTime:  time.Date(2024, 1, 2, 1, 0, 0, 0, time.UTC), // 2 января 10:00 по UTC+9
		EndTime:    time.Date(2024, 1, 2, 2, 0, 0, 0, time.UTC),
	}

	existing := []*domain.Application{
		// 2 января по UTC+9 (01:00 по локальному) - считается
		{Federation: "FedX", StartTime: time.Date(2024, 1, 1, 16, 0, 0, 0, time.UTC)},
		// 1 января по UTC+9 - не считается
		{Federation: "FedX", StartTime: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		// Те же сутки, другая федерация - не считается
		{Federation: "FedY", StartTime: time.Date(2024, 1, 2, 3, 0, 0, 0, time.UTC)},
	}

	require.Equal(t, 1, countFederationSlotsOnDay(req, existing, jst))
}
