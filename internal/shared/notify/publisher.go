// Package notify publishes order lifecycle events on redis.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	// Channel is the pub/sub channel carrying every order event.
	Channel = "ezwh:orders"
	// RecentKey holds the latest events as a capped list, newest first.
	RecentKey = "ezwh:orders:recent"

	recentLimit = 200
)

// Event types
const (
	RestockOrderCreated       = "restock_order.created"
	RestockOrderStateChanged  = "restock_order.state_changed"
	RestockOrderDelivered     = "restock_order.sku_items_attached"
	RestockOrderTransportNote = "restock_order.transport_note"
	RestockOrderDeleted       = "restock_order.deleted"
	InternalOrderCreated      = "internal_order.created"
	InternalOrderStateChanged = "internal_order.state_changed"
	InternalOrderDeleted      = "internal_order.deleted"
	ReturnOrderCreated        = "return_order.created"
	ReturnOrderDeleted        = "return_order.deleted"
)

// Event is one order lifecycle change.
type Event struct {
	Type    string    `json:"type"`
	OrderID uint      `json:"orderId"`
	State   string    `json:"state,omitempty"`
	At      time.Time `json:"at"`
}

// Publisher writes events to redis. A nil Publisher, or one without a
// client, drops every event.
type Publisher struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewPublisher(rdb *redis.Client, logger *zap.Logger) *Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{rdb: rdb, logger: logger}
}

// Publish sends ev on Channel and records it in RecentKey. Failures are
// logged and never returned: events are advisory.
func (p *Publisher) Publish(ctx context.Context, ev Event) {
	if p == nil || p.rdb == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	data, err := json.Marshal(ev)
	if err != nil {
		p.logger.Warn("marshal order event", zap.Error(err))
		return
	}
	_, err = p.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Publish(ctx, Channel, data)
		pipe.LPush(ctx, RecentKey, data)
		pipe.LTrim(ctx, RecentKey, 0, recentLimit-1)
		return nil
	})
	if err != nil {
		p.logger.Warn("publish order event",
			zap.String("type", ev.Type),
			zap.Uint("order_id", ev.OrderID),
			zap.Error(err),
		)
	}
}

// Recent returns up to n of the latest events, newest first.
func (p *Publisher) Recent(ctx context.Context, n int64) ([]Event, error) {
	if p == nil || p.rdb == nil {
		return []Event{}, nil
	}
	raw, err := p.rdb.LRange(ctx, RecentKey, 0, n-1).Result()
	if err != nil {
		return nil, err
	}
	events := make([]Event, 0, len(raw))
	for _, r := range raw {
		var ev Event
		if err := json.Unmarshal([]byte(r), &ev); err != nil {
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}
