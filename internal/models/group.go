package models

import (
	"gorm.io/gorm"
)

// Group — учебная группа, корневая сущность.
// Все пользователи, предметы, файлы, объявления и задания принадлежат группе.
type Group struct {
	gorm.Model
	Name    string `gorm:"not null"`            // Название группы
	JoinKey string `gorm:"uniqueIndex;not null"` // Ключ для самостоятельного вступления в группу
}
