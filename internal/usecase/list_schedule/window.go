package list_schedule

import (
	"sort"
	"time"

	"github.com/m04kA/VP-ApprovalService/internal/domain"
)

// selectVisible отбирает заявки, видимые в окне расписания вокруг now,
// и сортирует их по времени начала (при равенстве - по ID).
//
// Тот же предикат, что и в фильтре репозитория: заявка видима, если её
// end_time попадает в (now - window.Before, now + window.After].
// Фильтр применяется и здесь, чтобы решение о видимости жило в одном
// месте независимо от того, насколько широким был запрос к хранилищу
func selectVisible(now time.Time, apps []*domain.Application, window domain.ScheduleWindow) []*domain.Application {
	visible := make([]*domain.Application, 0, len(apps))

	for _, app := range apps {
		if window.Contains(now, app.EndTime) {
			visible = append(visible, app)
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		if visible[i].StartTime.Equal(visible[j].StartTime) {
			return visible[i].ID < visible[j].ID
		}
		return visible[i].StartTime.Before(visible[j].StartTime)
	})

	return visible
}
