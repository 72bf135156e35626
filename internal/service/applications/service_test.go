package applications

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	appRepo "github.com/m04kA/VP-ApprovalService/internal/infra/storage/application"
)

// stubRepo репозиторий для тестов сервиса
type stubRepo struct {
	deleteErr   error
	deleteCalls int
}

func (s *stubRepo) Delete(_ context.Context, _ int64) error {
	s.deleteCalls++
	return s.deleteErr
}

// stubLogger no-op логгер
type stubLogger struct{}

func (l *stubLogger) Info(string, ...interface{})  {}
func (l *stubLogger) Warn(string, ...interface{})  {}
func (l *stubLogger) Error(string, ...interface{}) {}

const adminPassword = "s3cret"

func TestService_Delete(t *testing.T) {
	tests := []struct {
		name            string
		password        string
		deleteErr       error
		wantErr         error
		wantDeleteCalls int
	}{
		{
			name:            "success",
			password:        adminPassword,
			wantDeleteCalls: 1,
		},
		{
			name:     "missing password",
			password: "",
			wantErr:  ErrPasswordRequired,
			// Хранилище не трогаем до проверки пароля
			wantDeleteCalls: 0,
		},
		{
			name:            "wrong password",
			password:        "guess",
			wantErr:         ErrInvalidPassword,
			wantDeleteCalls: 0,
		},
		{
			name:            "application not found",
			password:        adminPassword,
			deleteErr:       appRepo.ErrApplicationNotFound,
			wantErr:         ErrApplicationNotFound,
			wantDeleteCalls: 1,
		},
		{
			name:            "repository fault",
			password:        adminPassword,
			deleteErr:       errors.New("connection refused"),
			wantErr:         ErrInternal,
			wantDeleteCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepo{deleteErr: tt.deleteErr}
			svc := NewService(repo, adminPassword, &stubLogger{})

			err := svc.Delete(context.Background(), 42, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.wantDeleteCalls, repo.deleteCalls)
		})
	}
}
