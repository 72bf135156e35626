package submit_application

import (
	"fmt"
	"time"

	submitApplication "github.com/m04kA/VP-ApprovalService/internal/usecase/submit_application"
)

// SubmitApplicationRequest HTTP request model
// Времена передаются в ISO-8601 (RFC 3339), например "2024-01-01T10:00:00Z"
type SubmitApplicationRequest struct {
	Name       string `json:"name"`
	Federation string `json:"federation"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

// ApplicationResponse HTTP response model
type ApplicationResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Federation string `json:"federation"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	CreatedAt  string `json:"createdAt"`
}

// SubmitApplicationResponse тело успешного ответа
type SubmitApplicationResponse struct {
	Message     string              `json:"message"`
	Application ApplicationResponse `json:"application"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Пустые значения времени пропускаются как нулевые - их отлавливает
// валидация use case, чтобы клиент получил ошибку о пропущенном поле
func (r *SubmitApplicationRequest) ToUseCaseRequest() (*submitApplication.Request, error) {
	req := &submitApplication.Request{
		Name:       r.Name,
		Federation: r.Federation,
	}

	if r.StartTime != "" {
		startTime, err := time.Parse(time.RFC3339, r.StartTime)
		if err != nil {
			return nil, fmt.Errorf("invalid start_time: %w", err)
		}
		req.StartTime = startTime
	}

	if r.EndTime != "" {
		endTime, err := time.Parse(time.RFC3339, r.EndTime)
		if err != nil {
			return nil, fmt.Errorf("invalid end_time: %w", err)
		}
		req.EndTime = endTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitApplication.Response) *SubmitApplicationResponse {
	return &SubmitApplicationResponse{
		Message: msgApplicationApproved,
		Application: ApplicationResponse{
			ID:         resp.ID,
			Name:       resp.Name,
			Federation: resp.Federation,
			StartTime:  resp.StartTime.Format(time.RFC3339),
			EndTime:    resp.EndTime.Format(time.RFC3339),
			CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		},
	}
}
