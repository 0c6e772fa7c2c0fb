package models

import (
	"gorm.io/gorm"
)

// Unit — предмет (дисциплина) группы. Владеет конспектами (File типа note).
type Unit struct {
	gorm.Model
	Name     string `gorm:"not null"` // Название предмета
	Lecturer string // Преподаватель (опционально)
	Phone    string
	Email    string
	GroupID  uint `gorm:"index;not null"`
}
