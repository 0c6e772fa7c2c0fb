package tasks

import (
	"log"

	"class_hub/internal/handlers"
	"class_hub/internal/models"
	"class_hub/internal/storage"

	"github.com/robfig/cron/v3"
)

// InitScheduler инициализирует планировщик cron-задач.
func InitScheduler() *cron.Cron {
	c := cron.New(cron.WithSeconds())

	// Опрос новостного API каждые 10 минут. Неудачный опрос оставляет
	// в кэше предыдущее значение и не трогает путь обслуживания запросов.
	_, err := c.AddFunc("0 */10 * * * *", handlers.RefreshNewsCache)
	if err != nil {
		log.Println("Ошибка запуска cron-задачи RefreshNewsCache:", err)
	}

	// Ночная чистка просроченных заданий в 03:00. Основной механизм —
	// sweep при чтении списка; ночной проход подбирает группы, которые
	// давно никто не открывал.
	_, err = c.AddFunc("0 0 3 * * *", SweepAllExpiredAssignments)
	if err != nil {
		log.Println("Ошибка запуска cron-задачи SweepAllExpiredAssignments:", err)
	}

	c.Start()
	log.Println("Cron-планировщик запущен.")

	// Первое наполнение кэша новостей сразу при старте.
	go handlers.RefreshNewsCache()

	return c
}

// SweepAllExpiredAssignments удаляет просроченные задания во всех группах.
func SweepAllExpiredAssignments() {
	if err := storage.DB.Unscoped().
		Where("due_date < ?", models.Today()).
		Delete(&models.Assignment{}).Error; err != nil {
		log.Println("Ошибка при удалении просроченных заданий:", err)
	} else {
		log.Println("Просроченные задания успешно удалены.")
	}
}
