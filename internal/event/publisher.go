package event

import (
	"context"
	"slices"
	"sync"

	"github.com/osse101/BattleItems_Go/internal/helditem"
	"github.com/osse101/BattleItems_Go/internal/logger"
)

// Publisher forwards held item messages and item-loss notifications to a bus.
// It satisfies helditem.Messenger and helditem.AbilityHooks.
type Publisher struct {
	ctx      context.Context
	bus      Bus
	battleID string
}

// NewPublisher creates a publisher for the battle identified in ctx
func NewPublisher(ctx context.Context, bus Bus) *Publisher {
	return &Publisher{
		ctx:      ctx,
		bus:      bus,
		battleID: logger.GetBattleID(ctx),
	}
}

// QueueMessage publishes msg. Publish failures are logged and never reach the engine.
func (p *Publisher) QueueMessage(msg helditem.Message) {
	evt := NewHeldItemMessageEvent(p.battleID, HeldItemMessagePayloadV1{
		Key:      msg.Key,
		Text:     msg.Text,
		Item:     msg.Item.String(),
		HolderID: msg.HolderID,
		IsPlayer: msg.IsPlayer,
	})
	p.publish(evt)
}

// PostItemLost publishes an item-loss notification for ability listeners
func (p *Publisher) PostItemLost(holder helditem.Holder, direct bool) {
	p.publish(NewHeldItemLostEvent(p.battleID, holder.ID(), direct))
}

func (p *Publisher) publish(evt Event) {
	if err := p.bus.Publish(p.ctx, evt); err != nil {
		logger.FromContext(p.ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

// Recorder collects held item events in publish order
type Recorder struct {
	mu       sync.Mutex
	messages []HeldItemMessagePayloadV1
	lost     []HeldItemLostPayloadV1
}

// NewRecorder creates a recorder subscribed to bus
func NewRecorder(bus Bus) *Recorder {
	r := &Recorder{}
	bus.Subscribe(HeldItemMessage, r.handleMessage)
	bus.Subscribe(HeldItemLost, r.handleLost)
	return r
}

func (r *Recorder) handleMessage(_ context.Context, evt Event) error {
	payload, err := DecodePayload[HeldItemMessagePayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, payload)
	return nil
}

func (r *Recorder) handleLost(_ context.Context, evt Event) error {
	payload, err := DecodePayload[HeldItemLostPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lost = append(r.lost, payload)
	return nil
}

// Messages returns the recorded messages
func (r *Recorder) Messages() []HeldItemMessagePayloadV1 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.messages)
}

// Texts returns the text of every recorded message
func (r *Recorder) Texts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	texts := make([]string, len(r.messages))
	for i, m := range r.messages {
		texts[i] = m.Text
	}
	return texts
}

// Lost returns the recorded item-loss notifications
func (r *Recorder) Lost() []HeldItemLostPayloadV1 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.lost)
}
