package models

import (
	"gorm.io/gorm"
)

// Message — сообщение в чате объявления. После создания не изменяется.
// Порядок сообщений определяется первичным ключом (монотонный, присваивается
// при вставке); дата dd/mm/yyyy используется только для отображения.
type Message struct {
	gorm.Model
	Content  string `gorm:"size:500;not null"`
	NoticeID uint   `gorm:"index;not null"`
}
