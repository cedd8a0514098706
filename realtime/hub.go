package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const writeWait = 10 * time.Second

// Event is the message pushed to every connected client.
type Event struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Hub keeps the connected websocket clients and fans product events out to
// them. Run must be running for events to be delivered.
type Hub struct {
	upgrader  websocket.Upgrader
	mu        sync.Mutex
	clients   map[*websocket.Conn]bool
	broadcast chan []byte
	log       *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // admin clients are served from another origin
			},
		},
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan []byte, 100), // Buffered channel to prevent blocking
		log:       log,
	}
}

// ServeHTTP upgrades the request and holds the connection until the client
// goes away. Messages sent by clients are discarded.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
	h.log.Debug("websocket client connected", zap.String("remote", conn.RemoteAddr().String()))

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Warn("websocket read error", zap.Error(err))
			}
			break
		}
	}

	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	h.log.Debug("websocket client disconnected", zap.String("remote", conn.RemoteAddr().String()))
}

// Run delivers queued events until ctx is done, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case message := <-h.broadcast:
			h.send(message)
		}
	}
}

func (h *Hub) send(message []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		client.SetWriteDeadline(time.Now().Add(writeWait))
		if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
			h.log.Warn("websocket write error", zap.Error(err))
			client.Close()
			delete(h.clients, client)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		client.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
		client.Close()
		delete(h.clients, client)
	}
}

// Notify queues an event for broadcast. Events are dropped when the queue is
// full so request handlers never block on slow clients.
func (h *Hub) Notify(eventType, id string) {
	message, err := json.Marshal(Event{Type: eventType, ID: id})
	if err != nil {
		h.log.Error("marshal event", zap.Error(err))
		return
	}
	select {
	case h.broadcast <- message:
	default:
		h.log.Warn("event queue full, dropping event", zap.String("type", eventType), zap.String("id", id))
	}
}

func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
