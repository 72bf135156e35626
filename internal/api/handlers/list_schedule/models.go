package list_schedule

import (
	"time"

	listSchedule "github.com/m04kA/VP-ApprovalService/internal/usecase/list_schedule"
)

// ScheduleEntryResponse HTTP модель записи расписания
type ScheduleEntryResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Federation string `json:"federation"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *listSchedule.Response) []ScheduleEntryResponse {
	entries := make([]ScheduleEntryResponse, len(resp.Applications))
	for i, app := range resp.Applications {
		entries[i] = ScheduleEntryResponse{
			ID:         app.ID,
			Name:       app.Name,
			Federation: app.Federation,
			StartTime:  app.StartTime.Format(time.RFC3339),
			EndTime:    app.EndTime.Format(time.RFC3339),
		}
	}
	return entries
}
