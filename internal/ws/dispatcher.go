package ws

import (
	"errors"
	"fmt"
	"log"

	"class_hub/internal/models"
	"class_hub/internal/relay"

	"gorm.io/gorm"
)

// Ошибки валидации входящего сообщения.
var (
	ErrEmptyMessage   = errors.New("пустое сообщение")
	ErrNoticeNotFound = errors.New("объявление не найдено")
)

// Dispatch проводит входящее сообщение чата по конвейеру
// Received -> Validated -> Persisted -> Broadcast.
//
// Порядок принципиален: сначала запись в базу, потом рассылка. Клиент,
// запросивший историю сразу после получения рассылки, всегда найдёт в ней
// это сообщение. Ошибка записи обрывает конвейер без рассылки; после
// успешной записи ошибки рассылки и релея только логируются — сообщение
// уже долговечно и видно при следующем чтении.
func Dispatch(db *gorm.DB, hub *Hub, room, content string) (*models.Message, error) {
	// Validated: объявление должно существовать, текст — быть непустым
	// после очистки от разметки.
	content = SanitizeContent(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}

	var notice models.Notice
	if err := db.First(&notice, "id = ?", room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoticeNotFound
		}
		return nil, err
	}

	// Persisted: отметка времени присваивается сервером при вставке.
	message := models.Message{
		Content:  content,
		NoticeID: notice.ID,
	}
	if err := db.Create(&message).Error; err != nil {
		return nil, err
	}

	// Broadcast: текст события несёт дату в отображаемом формате dd/mm/yyyy.
	text := fmt.Sprintf("%s (%s)", message.Content, models.FormatPostedDate(message.CreatedAt))
	hub.Broadcast(Event{
		Event: EventMessage,
		Room:  room,
		Text:  text,
	})

	// Релей во внешний бот — best effort после рассылки.
	if err := relay.Send(room, text); err != nil {
		log.Println("Ошибка релея сообщения во внешний бот:", err)
	}

	return &message, nil
}
