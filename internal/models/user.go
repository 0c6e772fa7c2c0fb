package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name            string  `gorm:"not null"`             // Имя пользователя
	Username        string  `gorm:"uniqueIndex;not null"` // Логин (для вступивших по ключу — номер зачётки)
	AdmissionNumber *string `gorm:"uniqueIndex"`          // Номер зачётки, уникален глобально (nil у первого администратора)
	Email           string  `gorm:"uniqueIndex;not null"`
	PasswordHash    string  `gorm:"not null"`
	IsAdmin         bool    `gorm:"default:false"` // Первый пользователь группы всегда администратор
	GroupID         uint    `gorm:"index;not null"`
	Group           Group   `gorm:"foreignKey:GroupID"`
}
