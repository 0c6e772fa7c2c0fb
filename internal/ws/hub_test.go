package ws_test

import (
	"encoding/json"
	"testing"
	"time"

	"class_hub/internal/ws"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(h *ws.Hub) *ws.Client {
	return &ws.Client{
		Hub:  h,
		Send: make(chan []byte, 16),
	}
}

// recvEvent читает одно событие из канала клиента или валит тест по таймауту.
func recvEvent(t *testing.T, c *ws.Client) ws.Event {
	t.Helper()
	select {
	case payload, ok := <-c.Send:
		require.True(t, ok, "Канал клиента неожиданно закрыт")
		var event ws.Event
		require.NoError(t, json.Unmarshal(payload, &event), "Нечитаемое событие")
		return event
	case <-time.After(time.Second):
		t.Fatal("Событие не получено за отведённое время")
		return ws.Event{}
	}
}

func assertNoEvent(t *testing.T, c *ws.Client) {
	t.Helper()
	select {
	case payload := <-c.Send:
		t.Fatalf("Неожиданное событие: %s", payload)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestJoinBroadcastsAckToWholeRoom(t *testing.T) {
	hub := ws.NewHub()
	go hub.Run()

	first := newTestClient(hub)
	second := newTestClient(hub)

	hub.Join("1", first)
	event := recvEvent(t, first)
	assert.Equal(t, ws.EventJoined, event.Event)
	assert.Equal(t, "1", event.Room)

	// Подтверждение о втором участнике получают оба.
	hub.Join("1", second)
	assert.Equal(t, ws.EventJoined, recvEvent(t, first).Event)
	assert.Equal(t, ws.EventJoined, recvEvent(t, second).Event)
}

func TestJoinIsIdempotent(t *testing.T) {
	hub := ws.NewHub()
	go hub.Run()

	client := newTestClient(hub)
	hub.Join("1", client)
	recvEvent(t, client)

	// Повторный join той же комнаты не порождает второго подтверждения.
	hub.Join("1", client)
	assertNoEvent(t, client)
}

func TestBroadcastReachesEverySubscriberIncludingSender(t *testing.T) {
	hub := ws.NewHub()
	go hub.Run()

	sender := newTestClient(hub)
	receiver := newTestClient(hub)
	outsider := newTestClient(hub)

	hub.Join("7", sender)
	recvEvent(t, sender)
	hub.Join("7", receiver)
	recvEvent(t, sender)
	recvEvent(t, receiver)
	hub.Join("8", outsider)
	recvEvent(t, outsider)

	hub.Broadcast(ws.Event{Event: ws.EventMessage, Room: "7", Text: "good luck (25/12/2025)"})

	// Эхо отправителю — намеренное поведение, не дубликат.
	for _, c := range []*ws.Client{sender, receiver} {
		event := recvEvent(t, c)
		assert.Equal(t, ws.EventMessage, event.Event)
		assert.Equal(t, "7", event.Room)
		assert.Equal(t, "good luck (25/12/2025)", event.Text)
	}

	// Подписчик другой комнаты ничего не получает.
	assertNoEvent(t, outsider)
}

func TestLeaveStopsDelivery(t *testing.T) {
	hub := ws.NewHub()
	go hub.Run()

	client := newTestClient(hub)
	hub.Join("3", client)
	recvEvent(t, client)

	hub.Leave("3", client)
	hub.Broadcast(ws.Event{Event: ws.EventMessage, Room: "3", Text: "после выхода"})
	assertNoEvent(t, client)

	// Повторный leave — no-op, не паника.
	hub.Leave("3", client)
}

func TestDetachRemovesClientFromAllRoomsAndClosesSend(t *testing.T) {
	hub := ws.NewHub()
	go hub.Run()

	client := newTestClient(hub)
	witness := newTestClient(hub)

	hub.Join("1", client)
	recvEvent(t, client)
	hub.Join("2", client)
	recvEvent(t, client)
	hub.Join("1", witness)
	recvEvent(t, client)
	recvEvent(t, witness)

	hub.Detach(client)

	// Канал отключённого клиента закрывается.
	select {
	case _, ok := <-client.Send:
		assert.False(t, ok, "Канал должен быть закрыт")
	case <-time.After(time.Second):
		t.Fatal("Канал не закрыт за отведённое время")
	}

	// Рассылки идут только оставшимся.
	hub.Broadcast(ws.Event{Event: ws.EventMessage, Room: "1", Text: "остальным"})
	assert.Equal(t, "остальным", recvEvent(t, witness).Text)
}
