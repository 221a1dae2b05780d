package brackets

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newTestHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	go hub.Run()
	return hub
}

func TestHub_BroadcastToRoom(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub := newTestHub(t)
	room := CompetitionRoom(7)

	inRoom := &Client{Hub: hub, Send: make(chan []byte, 4), Room: room}
	otherRoom := &Client{Hub: hub, Send: make(chan []byte, 4), Room: CompetitionRoom(8)}
	hub.Register <- inRoom
	hub.Register <- otherRoom

	require.Eventually(t, func() bool { return hub.RoomSize(room) == 1 }, time.Second, 5*time.Millisecond)

	hub.BroadcastToRoom(room, WebSocketMessage{Type: MessageMedalTallyUpdated, Payload: map[string]int{"gold": 2}, RoomID: room})

	select {
	case raw := <-inRoom.Send:
		var msg WebSocketMessage
		require.NoError(t, json.Unmarshal(raw, &msg))
		assert.Equal(t, MessageMedalTallyUpdated, msg.Type)
		assert.Equal(t, room, msg.RoomID)
	case <-time.After(time.Second):
		t.Fatal("expected message in room")
	}
	assert.Empty(t, otherRoom.Send)

	hub.Stop()
	require.Eventually(t, func() bool { return hub.RoomSize(room) == 0 }, time.Second, 5*time.Millisecond)
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub := newTestHub(t)
	defer hub.Stop()

	client := &Client{Hub: hub, Send: make(chan []byte, 1), Room: CompetitionRoom(1)}
	hub.Register <- client
	hub.Unregister <- client

	require.Eventually(t, func() bool {
		client.Mu.Lock()
		defer client.Mu.Unlock()
		return client.IsClosed
	}, time.Second, 5*time.Millisecond)

	_, open := <-client.Send
	assert.False(t, open)
	assert.Equal(t, 0, hub.RoomSize(CompetitionRoom(1)))
}

func TestHub_BroadcastToEmptyRoomIsNoop(t *testing.T) {
	hub := NewHub(nil)
	assert.NotPanics(t, func() {
		hub.BroadcastToRoom(CompetitionRoom(3), WebSocketMessage{Type: MessageMedalTallyUpdated})
	})
}

func TestHub_JoinAfterStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub := newTestHub(t)
	client := &Client{Hub: hub, Send: make(chan []byte, 1), Room: CompetitionRoom(2)}
	require.True(t, hub.Join(client))
	require.Eventually(t, func() bool { return hub.RoomSize(CompetitionRoom(2)) == 1 }, time.Second, 5*time.Millisecond)

	hub.Stop()
	require.Eventually(t, func() bool { return hub.RoomSize(CompetitionRoom(2)) == 0 }, time.Second, 5*time.Millisecond)
	late := &Client{Hub: hub, Send: make(chan []byte, 1), Room: CompetitionRoom(2)}
	assert.False(t, hub.Join(late))
}

func TestHub_RoomRecreatedAfterLastClientLeaves(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub := newTestHub(t)
	defer hub.Stop()
	room := CompetitionRoom(5)

	first := &Client{Hub: hub, Send: make(chan []byte, 1), Room: room}
	require.True(t, hub.Join(first))
	hub.Unregister <- first
	require.Eventually(t, func() bool { return hub.RoomSize(room) == 0 }, time.Second, 5*time.Millisecond)

	second := &Client{Hub: hub, Send: make(chan []byte, 1), Room: room}
	require.True(t, hub.Join(second))
	require.Eventually(t, func() bool { return hub.RoomSize(room) == 1 }, time.Second, 5*time.Millisecond)

	hub.BroadcastToRoom(room, WebSocketMessage{Type: MessageMedalTallyUpdated, RoomID: room})
	select {
	case <-second.Send:
	case <-time.After(time.Second):
		t.Fatal("expected message for the rejoined room")
	}
	_, open := <-first.Send
	assert.False(t, open)
}
