package relay

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// Клиент внешнего релея push-уведомлений: принимает чат-полезную нагрузку
// с идентификатором получателя и возвращает статус доставки.

var httpClient = &http.Client{Timeout: 10 * time.Second}

type chatPayload struct {
	ChatID string `json:"chat_id"`
	Room   string `json:"room"`
	Text   string `json:"text"`
}

// Send пересылает сообщение чата внешнему релею. Если BOT_RELAY_URL не задан,
// релей отключён и вызов — no-op.
func Send(room, text string) error {
	url := os.Getenv("BOT_RELAY_URL")
	if url == "" {
		return nil
	}

	payload, err := json.Marshal(chatPayload{
		ChatID: os.Getenv("BOT_CHAT_ID"),
		Room:   room,
		Text:   text,
	})
	if err != nil {
		return err
	}

	resp, err := httpClient.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("релей вернул статус %d", resp.StatusCode)
	}
	return nil
}
