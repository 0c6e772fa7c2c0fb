package models

import (
	"time"
)

// PostedDateLayout — формат дат для отображения (dd/mm/yyyy).
// Разрешение в один день сохранено для совместимости; для упорядочивания
// сообщений он не используется.
const PostedDateLayout = "02/01/2006"

// DueDateLayout — формат даты сдачи во входных данных (yyyy-mm-dd).
const DueDateLayout = "2006-01-02"

// FormatPostedDate форматирует момент времени в отображаемую дату.
func FormatPostedDate(t time.Time) string {
	return t.UTC().Format(PostedDateLayout)
}

// ParseDueDate разбирает дату сдачи из формы.
func ParseDueDate(s string) (time.Time, error) {
	return time.Parse(DueDateLayout, s)
}

// Today возвращает текущий календарный день UTC (время обнулено).
func Today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}
