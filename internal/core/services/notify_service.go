package services

import (
	"log"
	"sync"
	"time"
)

// ============================================================
// SSE Hub
// ============================================================

// SSEEvent represents a server-sent event
type SSEEvent struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

// SSEClient represents a connected SSE client
type SSEClient struct {
	ID      string
	UserID  uint
	Channel chan SSEEvent
}

// SSEHub manages all SSE connections
type SSEHub struct {
	mu      sync.RWMutex
	clients map[string]*SSEClient
}

// NewSSEHub creates a new SSE hub
func NewSSEHub() *SSEHub {
	return &SSEHub{
		clients: make(map[string]*SSEClient),
	}
}

// Register adds a new SSE client
func (h *SSEHub) Register(client *SSEClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client.ID] = client
	log.Printf("📡 SSE client registered: %s (user=%d) | total=%d",
		client.ID, client.UserID, len(h.clients))
}

// Unregister removes an SSE client
func (h *SSEHub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[clientID]; ok {
		close(client.Channel)
		delete(h.clients, clientID)
		log.Printf("📡 SSE client unregistered: %s | total=%d", clientID, len(h.clients))
	}
}

// Broadcast sends an event to every connected client
func (h *SSEHub) Broadcast(event SSEEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	sent := 0
	for _, client := range h.clients {
		select {
		case client.Channel <- event:
			sent++
		default:
			// Client channel full, skip
			log.Printf("⚠️ SSE channel full for client %s, skipping", client.ID)
		}
	}
	if sent > 0 {
		log.Printf("📡 SSE broadcast [%s] → %d clients", event.Event, sent)
	}
}

// SendToUser sends an event to a specific user
func (h *SSEHub) SendToUser(userID uint, event SSEEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients {
		if client.UserID == userID {
			select {
			case client.Channel <- event:
				log.Printf("📡 SSE sent [%s] to user %d", event.Event, userID)
			default:
				log.Printf("⚠️ SSE channel full for user %d, skipping", userID)
			}
		}
	}
}

// GetClientCount returns the number of connected clients
func (h *SSEHub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ============================================================
// NotifyService — debounced season-changed broadcasts
// ============================================================

// defaultDebounce coalesces a burst of writes (a round save touches
// several tables) into a single season_changed event.
const defaultDebounce = 300 * time.Millisecond

// NotifyService owns the SSE hub and the dirty-signal debounce. Writers
// call MarkDirty; connected clients get one season_changed event per
// burst and re-fetch whatever view they are on.
type NotifyService struct {
	Hub *SSEHub

	mu       sync.Mutex
	timer    *time.Timer
	reasons  []string
	debounce time.Duration
}

// NewNotifyService creates a new notification service
func NewNotifyService() *NotifyService {
	return &NotifyService{
		Hub:      NewSSEHub(),
		debounce: defaultDebounce,
	}
}

// MarkDirty schedules a season_changed broadcast. Calls arriving within
// the debounce window collapse into one event; the reasons accumulate.
func (n *NotifyService) MarkDirty(reason string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.reasons = append(n.reasons, reason)
	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(n.debounce, n.flush)
}

// flush fires the coalesced broadcast
func (n *NotifyService) flush() {
	n.mu.Lock()
	reasons := n.reasons
	n.reasons = nil
	n.timer = nil
	n.mu.Unlock()

	if len(reasons) == 0 {
		return
	}

	n.Hub.Broadcast(SSEEvent{
		Event: "season_changed",
		Data:  map[string]interface{}{"reasons": reasons},
	})
}

// NotifyRoundSaved announces a saved round immediately, then marks the
// season dirty for the refresh signal.
func (n *NotifyService) NotifyRoundSaved(roundID uint, course string) {
	n.Hub.Broadcast(SSEEvent{
		Event: "round_saved",
		Data: map[string]interface{}{
			"round_id": roundID,
			"course":   course,
		},
	})
	n.MarkDirty("round_saved")
}

// NotifyHatChanged announces a hat handover
func (n *NotifyService) NotifyHatChanged(memberID uint, memberName string) {
	n.Hub.Broadcast(SSEEvent{
		Event: "hat_changed",
		Data: map[string]interface{}{
			"member_id": memberID,
			"name":      memberName,
		},
	})
}
