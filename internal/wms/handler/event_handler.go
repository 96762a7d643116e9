package handler

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/shared/notify"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/shared/sse"
)

// EventSource lists recently published order events.
type EventSource interface {
	Recent(ctx context.Context, n int64) ([]notify.Event, error)
}

// EventHandler exposes the order event feed.
type EventHandler struct {
	events    EventSource
	hub       *sse.Hub
	heartbeat time.Duration
}

func NewEventHandler(events EventSource, hub *sse.Hub) *EventHandler {
	return &EventHandler{events: events, hub: hub, heartbeat: 30 * time.Second}
}

// Recent GET /api/orderEvents?limit=50
func (h *EventHandler) Recent(c *gin.Context) {
	if h.events == nil {
		Success(c, []notify.Event{})
		return
	}
	limit := int64(50)
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.ParseInt(l, 10, 64); err == nil && v > 0 && v <= 200 {
			limit = v
		}
	}
	events, err := h.events.Recent(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, events)
}

// Stream GET /api/orderEvents/stream
func (h *EventHandler) Stream(c *gin.Context) {
	if h.hub == nil {
		Error(c, CodeUnavailable, "event stream is not enabled")
		return
	}
	client := h.hub.Register()
	defer h.hub.Unregister(client.ID)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	c.Writer.WriteString("event: connected\ndata: {\"clientId\":\"" + client.ID + "\"}\n\n")
	c.Writer.Flush()

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()
	clientGone := c.Request.Context().Done()

	for {
		select {
		case <-clientGone:
			return
		case event, ok := <-client.Events:
			if !ok {
				return
			}
			c.Writer.WriteString(fmt.Sprintf("event: %s\ndata: %s\n\n", event.EventType, event.Data))
			c.Writer.Flush()
		case <-heartbeat.C:
			c.Writer.WriteString(": keepalive\n\n")
			c.Writer.Flush()
		}
	}
}
