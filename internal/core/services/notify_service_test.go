package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNotify(debounce time.Duration) *NotifyService {
	n := NewNotifyService()
	n.debounce = debounce
	return n
}

func connect(t *testing.T, hub *SSEHub, id string, userID uint) *SSEClient {
	t.Helper()
	client := &SSEClient{
		ID:      id,
		UserID:  userID,
		Channel: make(chan SSEEvent, 10),
	}
	hub.Register(client)
	return client
}

func waitEvent(t *testing.T, ch chan SSEEvent) SSEEvent {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(500 * time.Millisecond):
		t.Fatal("expected an event before timeout")
		return SSEEvent{}
	}
}

func TestSSEHub_RegisterUnregister(t *testing.T) {
	hub := NewSSEHub()
	connect(t, hub, "a", 1)
	connect(t, hub, "b", 2)
	assert.Equal(t, 2, hub.GetClientCount())

	hub.Unregister("a")
	assert.Equal(t, 1, hub.GetClientCount())
}

func TestSSEHub_BroadcastReachesAllClients(t *testing.T) {
	hub := NewSSEHub()
	c1 := connect(t, hub, "a", 1)
	c2 := connect(t, hub, "b", 2)

	hub.Broadcast(SSEEvent{Event: "round_saved"})

	assert.Equal(t, "round_saved", waitEvent(t, c1.Channel).Event)
	assert.Equal(t, "round_saved", waitEvent(t, c2.Channel).Event)
}

func TestSSEHub_SendToUserTargetsOneUser(t *testing.T) {
	hub := NewSSEHub()
	c1 := connect(t, hub, "a", 1)
	c2 := connect(t, hub, "b", 2)

	hub.SendToUser(2, SSEEvent{Event: "ping"})

	assert.Equal(t, "ping", waitEvent(t, c2.Channel).Event)
	select {
	case ev := <-c1.Channel:
		t.Fatalf("user 1 should not receive targeted event, got %q", ev.Event)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestNotifyService_DebounceCoalescesBurst(t *testing.T) {
	n := newTestNotify(30 * time.Millisecond)
	client := connect(t, n.Hub, "a", 1)

	// a round save dirties several views in quick succession
	n.MarkDirty("round_saved")
	n.MarkDirty("hat_changed")
	n.MarkDirty("standings")

	ev := waitEvent(t, client.Channel)
	require.Equal(t, "season_changed", ev.Event)

	data, ok := ev.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Len(t, data["reasons"], 3)

	// the burst collapses to exactly one event
	select {
	case extra := <-client.Channel:
		t.Fatalf("expected a single coalesced event, got extra %q", extra.Event)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestNotifyService_SeparateBurstsFireSeparately(t *testing.T) {
	n := newTestNotify(20 * time.Millisecond)
	client := connect(t, n.Hub, "a", 1)

	n.MarkDirty("first")
	waitEvent(t, client.Channel)

	n.MarkDirty("second")
	ev := waitEvent(t, client.Channel)
	assert.Equal(t, "season_changed", ev.Event)
}
