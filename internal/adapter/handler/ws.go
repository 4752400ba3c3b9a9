package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/srgjo27/seatflow/internal/core/domain"
)

type MessageType string

const (
	MessageTypeState     MessageType = "state"
	MessageTypeCountdown MessageType = "countdown"
)

// Message is one frame pushed to a selection stream.
type Message struct {
	Type      MessageType    `json:"type"`
	EventID   int64          `json:"event_id"`
	State     *selectionView `json:"state,omitempty"`
	Remaining *int64         `json:"remaining,omitempty"`
	Timestamp int64          `json:"timestamp"`
}

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	clientSendSize = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// tickHub fans countdown ticks out to every stream watching an event.
type tickHub struct {
	mu      sync.Mutex
	clients map[int64]map[chan int64]struct{}
}

func newTickHub() *tickHub {
	return &tickHub{clients: make(map[int64]map[chan int64]struct{})}
}

func (t *tickHub) subscribe(eventID int64) chan int64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	ch := make(chan int64, clientSendSize)
	if t.clients[eventID] == nil {
		t.clients[eventID] = make(map[chan int64]struct{})
	}
	t.clients[eventID][ch] = struct{}{}

	return ch
}

func (t *tickHub) unsubscribe(eventID int64, ch chan int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	clients, ok := t.clients[eventID]
	if !ok {
		return
	}
	if _, ok := clients[ch]; ok {
		delete(clients, ch)
		close(ch)
	}
	if len(clients) == 0 {
		delete(t.clients, eventID)
	}
}

// publish drops the tick for clients whose buffer is full.
func (t *tickHub) publish(eventID int64, remaining int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for ch := range t.clients[eventID] {
		select {
		case ch <- remaining:
		default:
		}
	}
}

func (t *tickHub) closeEvent(eventID int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for ch := range t.clients[eventID] {
		close(ch)
	}
	delete(t.clients, eventID)
}

// StreamSelection handles GET /api/events/{id}/selection/ws
func (h *Handler) StreamSelection(w http.ResponseWriter, r *http.Request) {
	eventID, err := eventIDParam(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	coordinator, ok := h.registry.Get(eventID)
	if !ok {
		h.respondError(w, r, domain.NewError(domain.KindNotFound, "selection session not found", nil))
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", slog.Int64("event_id", eventID), slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	states, unsubscribe := coordinator.Subscribe()
	defer unsubscribe()

	ticks := h.ticks.subscribe(eventID)
	defer h.ticks.unsubscribe(eventID, ticks)

	h.logger.Debug("selection stream opened", slog.Int64("event_id", eventID))

	done := make(chan struct{})
	go func() {
		defer close(done)
		conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-done:
			return
		case <-r.Context().Done():
			return
		case state, ok := <-states:
			if !ok {
				h.closeStream(conn)
				return
			}
			view := newSelectionView(state, h.now())
			if err := h.writeMessage(conn, Message{Type: MessageTypeState, EventID: eventID, State: &view}); err != nil {
				return
			}
		case remaining, ok := <-ticks:
			if !ok {
				h.closeStream(conn)
				return
			}
			if err := h.writeMessage(conn, Message{Type: MessageTypeCountdown, EventID: eventID, Remaining: &remaining}); err != nil {
				return
			}
		case <-ping.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Handler) writeMessage(conn *websocket.Conn, msg Message) error {
	msg.Timestamp = h.now().UnixMilli()

	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("failed to marshal stream message", slog.String("error", err.Error()))
		return err
	}

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.TextMessage, data)
}

func (h *Handler) closeStream(conn *websocket.Conn) {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed"))
}
