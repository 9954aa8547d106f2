package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/BattleItems_Go/internal/metrics"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Held item event types
const (
	HeldItemMessage Type = "helditem.message"
	HeldItemLost    Type = "helditem.lost"
)

// HeldItemMessagePayloadV1 is the typed payload for a user-visible held item message
type HeldItemMessagePayloadV1 struct {
	Key       string `json:"key"`
	Text      string `json:"text"`
	Item      string `json:"item"`
	HolderID  string `json:"holder_id"`
	IsPlayer  bool   `json:"is_player"`
	Timestamp int64  `json:"timestamp"`
}

// HeldItemLostPayloadV1 is the typed payload sent when a holder loses or uses up an item
type HeldItemLostPayloadV1 struct {
	HolderID  string `json:"holder_id"`
	Direct    bool   `json:"direct"`
	Timestamp int64  `json:"timestamp"`
}

// NewHeldItemMessageEvent creates a held item message event
func NewHeldItemMessageEvent(battleID string, payload HeldItemMessagePayloadV1) Event {
	payload.Timestamp = time.Now().Unix()
	return Event{
		Version:  EventSchemaVersion,
		Type:     HeldItemMessage,
		Payload:  payload,
		Metadata: battleMetadata(battleID),
	}
}

// NewHeldItemLostEvent creates a held item lost event
func NewHeldItemLostEvent(battleID, holderID string, direct bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    HeldItemLost,
		Payload: HeldItemLostPayloadV1{
			HolderID:  holderID,
			Direct:    direct,
			Timestamp: time.Now().Unix(),
		},
		Metadata: battleMetadata(battleID),
	}
}

func battleMetadata(battleID string) Metadata {
	if battleID == "" {
		return nil
	}
	return map[string]interface{}{MetadataKeyBattleID: battleID}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order, so battle messages keep their order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	metrics.EventsPublished.WithLabelValues(string(event.Type)).Inc()

	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		metrics.EventHandlerErrors.WithLabelValues(string(event.Type)).Add(float64(len(errs)))
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
