package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"life-sim-game/backend/internal/models"
	"life-sim-game/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHubServer(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewHub(logger.New(logger.Config{Level: "error"}))
	router := gin.New()
	router.GET("/ws/characters/:id", func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		hub.Serve(c, uint(id))
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server, characterID uint) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/characters/" + strconv.FormatUint(uint64(characterID), 10)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForSubscribers(t *testing.T, hub *Hub, characterID uint, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.SubscriberCount(characterID) == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected %d subscribers for character %d, have %d", want, characterID, hub.SubscriberCount(characterID))
}

func TestHubDeliversAgeUpEvents(t *testing.T) {
	hub, srv := newTestHubServer(t)

	conn := dial(t, srv, 7)
	waitForSubscribers(t, hub, 7, 1)

	fired := &models.LifeEvent{Title: "Minor Illness", Description: "You caught a cold and felt unwell."}
	hub.NotifyAgeUp(7, 25, fired)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var event AgeUpEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "age_up", event.Type)
	assert.Equal(t, uint(7), event.CharacterID)
	assert.Equal(t, 25, event.Age)
	require.NotNil(t, event.Event)
	assert.Equal(t, "Minor Illness", event.Event.Title)
}

func TestHubScopesEventsToCharacter(t *testing.T) {
	hub, srv := newTestHubServer(t)

	watching := dial(t, srv, 1)
	other := dial(t, srv, 2)
	waitForSubscribers(t, hub, 1, 1)
	waitForSubscribers(t, hub, 2, 1)

	hub.NotifyAgeUp(1, 30, nil)

	watching.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := watching.ReadMessage()
	require.NoError(t, err)

	var event AgeUpEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, uint(1), event.CharacterID)
	assert.Nil(t, event.Event)

	other.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, _, err = other.ReadMessage()
	assert.Error(t, err, "subscriber of another character must not receive the event")
}

func TestHubDropsDisconnectedSubscribers(t *testing.T) {
	hub, srv := newTestHubServer(t)

	conn := dial(t, srv, 3)
	waitForSubscribers(t, hub, 3, 1)

	conn.Close()
	waitForSubscribers(t, hub, 3, 0)

	// Notifying with no subscribers is a no-op
	hub.NotifyAgeUp(3, 40, nil)
}
