package models

import (
	"gorm.io/gorm"
)

// Notice — объявление. Каждому объявлению соответствует чат-комната
// с идентификатором, равным ID объявления.
type Notice struct {
	gorm.Model
	Topic    string `gorm:"not null"`
	Remark   string `gorm:"size:200;not null"`
	GroupID  uint   `gorm:"index;not null"`
	AuthorID uint   `gorm:"not null"`
}
