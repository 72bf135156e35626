package submit_application

import "time"

// Request модель запроса на подачу заявки
type Request struct {
	Name       string    // Имя подающего заявку
	Federation string    // Федерация (альянс) подающего
	StartTime  time.Time // Начало слота (UTC)
	EndTime    time.Time // Конец слота (UTC)
}

// Response модель ответа с одобренной заявкой
type Response struct {
	ID         int64     // ID одобренной заявки
	Name       string    // Имя
	Federation string    // Федерация
	StartTime  time.Time // Начало слота
	EndTime    time.Time // Конец слота

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
