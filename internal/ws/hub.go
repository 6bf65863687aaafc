package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"life-sim-game/backend/internal/models"
	"life-sim-game/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 4 * 1024
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Browser clients connect cross-origin during development
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// AgeUpEvent is the wire format pushed to subscribers when a character
// ages up.
type AgeUpEvent struct {
	Type        string            `json:"type"`
	CharacterID uint              `json:"character_id"`
	Age         int               `json:"age"`
	Event       *models.LifeEvent `json:"event,omitempty"`
	Timestamp   time.Time         `json:"timestamp"`
}

// client is one WebSocket subscriber watching a single character.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans age-up notifications out to subscribers, keyed by character
// id. It satisfies the service layer's notifier interface.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[uint]map[*client]struct{}
	log         *logger.Logger
}

// NewHub creates an empty hub.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		subscribers: make(map[uint]map[*client]struct{}),
		log:         log,
	}
}

// NotifyAgeUp serializes the event once and queues it on every
// subscriber of the character. Slow clients are dropped rather than
// blocking the age-up request.
func (h *Hub) NotifyAgeUp(characterID uint, age int, event *models.LifeEvent) {
	payload := AgeUpEvent{
		Type:        "age_up",
		CharacterID: characterID,
		Age:         age,
		Event:       event,
		Timestamp:   time.Now().UTC(),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		h.log.Error("Failed to marshal age-up event", "characterId", characterID, "error", err.Error())
		return
	}

	h.mu.RLock()
	clients := h.subscribers[characterID]
	var stale []*client
	for c := range clients {
		select {
		case c.send <- data:
		default:
			stale = append(stale, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range stale {
		h.unsubscribe(characterID, c)
	}
}

// Serve upgrades a request into a subscription for one character.
func (h *Hub) Serve(c *gin.Context, characterID uint) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("WebSocket upgrade failed", "characterId", characterID, "error", err.Error())
		return
	}

	cl := &client{conn: conn, send: make(chan []byte, 16)}
	h.subscribe(characterID, cl)
	h.log.Info("Live event subscriber connected", "characterId", characterID)

	go h.writePump(characterID, cl)
	go h.readPump(characterID, cl)
}

func (h *Hub) subscribe(characterID uint, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subscribers[characterID] == nil {
		h.subscribers[characterID] = make(map[*client]struct{})
	}
	h.subscribers[characterID][cl] = struct{}{}
}

func (h *Hub) unsubscribe(characterID uint, cl *client) {
	h.mu.Lock()
	clients, ok := h.subscribers[characterID]
	if ok {
		if _, present := clients[cl]; present {
			delete(clients, cl)
			close(cl.send)
		}
		if len(clients) == 0 {
			delete(h.subscribers, characterID)
		}
	}
	h.mu.Unlock()

	cl.conn.Close()
}

// readPump drains the connection so pong handlers run and detects
// client disconnects. Subscribers never send application messages.
func (h *Hub) readPump(characterID uint, cl *client) {
	defer h.unsubscribe(characterID, cl)

	cl.conn.SetReadLimit(maxMessageSize)
	cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	cl.conn.SetPongHandler(func(string) error {
		cl.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Debug("Live event subscriber read error", "characterId", characterID, "error", err.Error())
			}
			return
		}
	}
}

func (h *Hub) writePump(characterID uint, cl *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		h.unsubscribe(characterID, cl)
	}()

	for {
		select {
		case message, ok := <-cl.send:
			cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := cl.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// SubscriberCount reports how many clients watch a character.
func (h *Hub) SubscriberCount(characterID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[characterID])
}
