package models

import (
	"gorm.io/gorm"
)

// Типы загружаемых файлов.
const (
	FileTypeNote           = "note"
	FileTypeClassTimetable = "class_timetable"
	FileTypeExamTimetable  = "exam_timetable"
)

// File — загруженный файл. Для типов class_timetable и exam_timetable
// в группе хранится не более одного файла: новая загрузка замещает старую.
type File struct {
	gorm.Model
	Filename   string `gorm:"not null"`       // Исходное имя файла
	Type       string `gorm:"index;not null"` // note | class_timetable | exam_timetable
	StoredPath string `gorm:"not null"`       // Путь в файловом хранилище
	UnitID     *uint  `gorm:"index"`          // Предмет, только для конспектов
	GroupID    uint   `gorm:"index;not null"`
}
