package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func startFeed(t *testing.T) (*Hub, string) {
	t.Helper()
	hub := NewHub(quietLogger())
	go hub.Run()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ServeWs(hub, w, r)
	}))
	t.Cleanup(srv.Close)

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) string {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	return string(msg)
}

func TestHubBroadcast(t *testing.T) {
	hub, url := startFeed(t)

	first := dial(t, url)
	second := dial(t, url)
	// Give the hub a moment to register both before broadcasting.
	time.Sleep(50 * time.Millisecond)

	hub.Broadcast([]byte(`{"type":"deal"}`))

	assert.Equal(t, `{"type":"deal"}`, readMessage(t, first))
	assert.Equal(t, `{"type":"deal"}`, readMessage(t, second))
}

func TestHubReplaysToLateJoiner(t *testing.T) {
	hub, url := startFeed(t)

	hub.Broadcast([]byte(`{"type":"game_start"}`))
	hub.Broadcast([]byte(`{"type":"deal"}`))
	time.Sleep(50 * time.Millisecond)

	late := dial(t, url)
	assert.Equal(t, `{"type":"game_start"}`, readMessage(t, late))
	assert.Equal(t, `{"type":"deal"}`, readMessage(t, late))

	// New broadcasts still flow after the replay.
	time.Sleep(50 * time.Millisecond)
	hub.Broadcast([]byte(`{"type":"trump_chosen"}`))
	assert.Equal(t, `{"type":"trump_chosen"}`, readMessage(t, late))
}

func TestHubIgnoresSpectatorInput(t *testing.T) {
	hub, url := startFeed(t)

	conn := dial(t, url)
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("play a card for me")))

	hub.Broadcast([]byte(`{"type":"deal"}`))
	assert.Equal(t, `{"type":"deal"}`, readMessage(t, conn))
}
