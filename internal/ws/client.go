package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"class_hub/internal/models"
	"class_hub/internal/response"
	"class_hub/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Client представляет одно подключение через WebSocket.
// Одно подключение может состоять сразу в нескольких комнатах:
// клиент управляет членством действиями join/leave.
type Client struct {
	Hub  *Hub
	Conn *websocket.Conn
	Send chan []byte
	// Группа, от имени которой открыто соединение; чужие объявления
	// для него не существуют.
	GroupID uint
}

// readPump читает действия клиента из WebSocket-соединения
// и отслеживает разрыв соединения.
func (c *Client) readPump() {
	defer func() {
		c.Hub.Detach(c)
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(1024)
	c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})
	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			break
		}

		var action ClientAction
		if err := json.Unmarshal(raw, &action); err != nil {
			log.Printf("Нечитаемое действие клиента: %s", raw)
			continue
		}

		switch action.Action {
		case ActionJoin:
			if room, ok := canonicalRoom(action.Room); ok && c.roomVisible(room) {
				c.Hub.Join(room, c)
			}
		case ActionLeave:
			if room, ok := canonicalRoom(action.Room); ok {
				c.Hub.Leave(room, c)
			}
		case ActionMessage:
			room, ok := canonicalRoom(action.Room)
			if !ok || !c.roomVisible(room) {
				continue
			}
			if _, err := Dispatch(storage.DB, c.Hub, room, action.Content); err != nil {
				log.Println("Сообщение отклонено:", err)
			}
		default:
			// Неизвестные действия игнорируются.
		}
	}
}

// roomVisible проверяет, что комната соответствует объявлению группы клиента.
func (c *Client) roomVisible(room string) bool {
	var notice models.Notice
	return storage.DB.Where("id = ? AND group_id = ?", room, c.GroupID).First(&notice).Error == nil
}

// canonicalRoom приводит идентификатор комнаты к каноническому виду.
// Рассылки идут по строке strconv.Itoa(noticeID), поэтому подписка на
// "007" вместо "7" оставила бы клиента в комнате без сообщений.
func canonicalRoom(room string) (string, bool) {
	id, err := strconv.Atoi(room)
	if err != nil || id <= 0 {
		return "", false
	}
	return strconv.Itoa(id), true
}

// writePump отправляет события клиенту из канала Send.
func (c *Client) writePump() {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()
	for {
		select {
		case payload, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				// Канал закрыт.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			// Ping для поддержания соединения.
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Апгрейдер для WebSocket с разрешением всех источников.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ChatWebSocketHandler обновляет соединение до WebSocket и подключает клиента
// к комнате объявления. URL-пример: /api/notices/{id}/ws
func ChatWebSocketHandler(c *gin.Context) {
	room, ok := canonicalRoom(c.Param("id"))
	groupID := c.GetUint("groupID")

	var notice models.Notice
	if !ok || storage.DB.Where("id = ? AND group_id = ?", room, groupID).First(&notice).Error != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "NOTICE_NOT_FOUND",
			Message: "Объявление не найдено",
		})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		http.Error(c.Writer, "Ошибка обновления до WebSocket", http.StatusInternalServerError)
		return
	}

	client := &Client{
		Hub:     HubInstance,
		Conn:    conn,
		Send:    make(chan []byte, 256),
		GroupID: groupID,
	}

	// Соединение сразу вступает в комнату своего объявления.
	HubInstance.Join(room, client)

	go client.writePump()
	client.readPump()
}
