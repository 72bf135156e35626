package list_schedule

import "time"

// Entry одна запись расписания
type Entry struct {
	ID         int64     // ID заявки
	Name       string    // Имя
	Federation string    // Федерация
	StartTime  time.Time // Начало слота
	EndTime    time.Time // Конец слота
}

// Response модель ответа с видимой частью расписания
// Записи отсортированы по времени начала по возрастанию
type Response struct {
	Applications []Entry
}
