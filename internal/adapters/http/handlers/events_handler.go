package handlers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gjb-leaguehub/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// EventsHandler serves the live-update SSE stream
type EventsHandler struct {
	notifyService *services.NotifyService
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(notifyService *services.NotifyService) *EventsHandler {
	return &EventsHandler{notifyService: notifyService}
}

// ============================================================
// GET /api/v1/events — SSE 실시간 갱신 스트림
// ============================================================
func (h *EventsHandler) Stream(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	clientID := fmt.Sprintf("web-%d-%d", userID, time.Now().UnixNano())

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("Transfer-Encoding", "chunked")

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		client := &services.SSEClient{
			ID:      clientID,
			UserID:  userID,
			Channel: make(chan services.SSEEvent, 50),
		}

		h.notifyService.Hub.Register(client)
		defer h.notifyService.Hub.Unregister(clientID)

		fmt.Fprintf(w, "event: connected\ndata: {\"client_id\":\"%s\"}\n\n", clientID)
		w.Flush()

		heartbeat := time.NewTicker(30 * time.Second)
		defer heartbeat.Stop()

		for {
			select {
			case event, ok := <-client.Channel:
				if !ok {
					return
				}
				writeSSEEvent(w, event)
				if err := w.Flush(); err != nil {
					return
				}

			case <-heartbeat.C:
				fmt.Fprintf(w, ": heartbeat\n\n")
				if err := w.Flush(); err != nil {
					log.Printf("📡 SSE client disconnected: %s", clientID)
					return
				}
			}
		}
	})

	return nil
}

// writeSSEEvent writes a formatted SSE event to the writer
func writeSSEEvent(w *bufio.Writer, event services.SSEEvent) {
	fmt.Fprintf(w, "event: %s\n", event.Event)
	if event.Data != nil {
		payload, err := json.Marshal(event.Data)
		if err != nil {
			payload = []byte("{}")
		}
		fmt.Fprintf(w, "data: %s\n\n", payload)
	} else {
		fmt.Fprintf(w, "data: {}\n\n")
	}
	w.Flush()
}
