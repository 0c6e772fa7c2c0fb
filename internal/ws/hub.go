package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// Протокол комнат. Входящие действия клиента и исходящие события —
// перечислимый набор имён, а не произвольные строки.
const (
	ActionJoin    = "join"
	ActionLeave   = "leave"
	ActionMessage = "message"

	EventJoined  = "joined"
	EventMessage = "message"
)

// ClientAction — входящее сообщение клиента.
type ClientAction struct {
	Action  string `json:"action"`
	Room    string `json:"room"`
	Content string `json:"content,omitempty"`
}

// Event — исходящее событие, рассылаемое подписчикам комнаты.
type Event struct {
	Event string `json:"event"`
	Room  string `json:"room"`
	Text  string `json:"text,omitempty"`
}

// Hub хранит подключения клиентов, сгруппированные по комнатам.
// Комната соответствует объявлению; её идентификатор — ID объявления строкой.
// Членство в комнатах живёт только в памяти: после рестарта процесса все
// комнаты пусты, клиенты переподключаются сами.
type Hub struct {
	// Для каждой комнаты храним множество подключений.
	rooms map[string]map[*Client]bool
	// Канал вступления в комнату.
	join chan subscription
	// Канал выхода из комнаты.
	leave chan subscription
	// Канал полного отключения клиента (разрыв соединения).
	detach chan *Client
	// Канал для трансляции событий по конкретной комнате.
	broadcast chan Event
	// Mutex для защиты карты комнат.
	mu sync.RWMutex
}

type subscription struct {
	room   string
	client *Client
}

// Глобальный экземпляр хаба.
var HubInstance = NewHub()

// NewHub создает новый Hub.
func NewHub() *Hub {
	return &Hub{
		rooms:     make(map[string]map[*Client]bool),
		join:      make(chan subscription),
		leave:     make(chan subscription),
		detach:    make(chan *Client),
		broadcast: make(chan Event),
	}
}

// Run запускает цикл обработки каналов хаба. Вся мутация карты комнат
// происходит только здесь — один писатель на весь процесс, поэтому события
// одной комнаты доставляются в порядке поступления в каналы.
func (h *Hub) Run() {
	for {
		select {
		case sub := <-h.join:
			h.mu.Lock()
			if h.rooms[sub.room] == nil {
				h.rooms[sub.room] = make(map[*Client]bool)
			}
			already := h.rooms[sub.room][sub.client]
			h.rooms[sub.room][sub.client] = true
			h.mu.Unlock()
			// Подтверждение вступления получает вся комната, не только
			// вступивший. Повторный join той же комнаты — no-op.
			if !already {
				h.deliver(Event{Event: EventJoined, Room: sub.room})
			}
		case sub := <-h.leave:
			h.mu.Lock()
			if clients, ok := h.rooms[sub.room]; ok {
				delete(clients, sub.client)
				if len(clients) == 0 {
					delete(h.rooms, sub.room)
				}
			}
			h.mu.Unlock()
		case client := <-h.detach:
			// Разрыв соединения: клиент покидает все свои комнаты.
			h.mu.Lock()
			for room, clients := range h.rooms {
				delete(clients, client)
				if len(clients) == 0 {
					delete(h.rooms, room)
				}
			}
			h.mu.Unlock()
			close(client.Send)
		case event := <-h.broadcast:
			h.deliver(event)
		}
	}
}

// deliver рассылает событие всем текущим подписчикам комнаты,
// включая отправителя (эхо намеренное: клиент дедуплицирует сам).
func (h *Hub) deliver(event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Println("Ошибка сериализации события:", err)
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.rooms[event.Room] {
		select {
		case client.Send <- payload:
		default:
			// Буфер клиента переполнен — событие пропускается,
			// соединение закроют дедлайны в writePump.
		}
	}
}

// Join добавляет клиента в комнату (идемпотентно).
func (h *Hub) Join(room string, client *Client) {
	h.join <- subscription{room: room, client: client}
}

// Leave убирает клиента из комнаты; выход из комнаты, где клиента нет — no-op.
func (h *Hub) Leave(room string, client *Client) {
	h.leave <- subscription{room: room, client: client}
}

// Detach убирает клиента из всех комнат и закрывает его канал отправки.
func (h *Hub) Detach(client *Client) {
	h.detach <- client
}

// Broadcast рассылает событие подписчикам комнаты.
func (h *Hub) Broadcast(event Event) {
	h.broadcast <- event
}
