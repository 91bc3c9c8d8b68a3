// Package notify publishes simulation events on the rpg-toolkit event bus.
// Payload values travel in the event context under plain string keys.
package notify

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Event topics
const (
	TopicRoomsUpdated       = "rooms.updated"
	TopicPlacementCommitted = "placement.committed"
	TopicPlacementRemoved   = "placement.removed"
	TopicAreaPurchased      = "areas.purchased"
	TopicHourChanged        = "daycycle.hour"
	TopicPhaseChanged       = "daycycle.phase"
	TopicPaymentSettled     = "ledger.settled"
)

// Source identifies the component publishing an event
type Source struct {
	id   string
	kind string
}

// NewSource returns a core.Entity naming a publisher
func NewSource(id, kind string) *Source {
	return &Source{id: id, kind: kind}
}

// GetID implements core.Entity
func (s *Source) GetID() string { return s.id }

// GetType implements core.Entity
func (s *Source) GetType() string { return s.kind }

var _ core.Entity = (*Source)(nil)

// Data is an event payload
type Data map[string]any

// Publish sends an event on topic. A nil bus drops the event.
func Publish(ctx context.Context, bus events.EventBus, topic string, source core.Entity, data Data) error {
	if bus == nil {
		return nil
	}

	e := events.NewGameEvent(topic, source, nil)
	for k, v := range data {
		e.Context().Set(k, v)
	}
	return bus.Publish(ctx, e)
}

// Payload is the read side of an event
type Payload struct {
	Topic  string
	Source core.Entity
	event  events.Event
}

// Get returns a payload value
func (p Payload) Get(key string) (any, bool) {
	return p.event.Context().Get(key)
}

// Int returns an integer payload value, zero when missing
func (p Payload) Int(key string) int {
	v, ok := p.Get(key)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	default:
		return 0
	}
}

// String returns a string payload value, empty when missing
func (p Payload) String(key string) string {
	v, _ := p.Get(key)
	s, _ := v.(string)
	return s
}

// Strings returns a copy of a string list payload value, nil when missing
func (p Payload) Strings(key string) []string {
	v, _ := p.Get(key)
	list, ok := v.([]string)
	if !ok {
		return nil
	}
	return append([]string(nil), list...)
}

// Subscribe registers fn for topic and returns the subscription id
func Subscribe(bus events.EventBus, topic string, fn func(ctx context.Context, p Payload) error) string {
	return bus.SubscribeFunc(topic, 0, func(ctx context.Context, e events.Event) error {
		return fn(ctx, Payload{Topic: e.Type(), Source: e.Source(), event: e})
	})
}
