package models

import (
	"time"

	"gorm.io/gorm"
)

// Assignment — задание с дедлайном. Просроченные задания (DueDate строго
// раньше текущей даты UTC) удаляются при каждом чтении списка.
type Assignment struct {
	gorm.Model
	Topic    string    `gorm:"not null"`
	Remark   string    `gorm:"size:200;not null"`
	DueDate  time.Time `gorm:"index;not null"` // Дата сдачи (календарный день)
	GroupID  uint      `gorm:"index;not null"`
	AuthorID uint      `gorm:"not null"`
}
