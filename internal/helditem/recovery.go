package helditem

import (
	"fmt"
	"math"
)

// queueHeal hands a heal to the battle engine's heal queue
func (e *Engine) queueHeal(def *Definition, h Holder, amount int, key string) bool {
	if amount <= 0 {
		return false
	}
	e.heals.QueueHeal(Heal{
		Holder: h,
		Item:   def.ID(),
		Amount: amount,
		Message: Message{
			Key:      key,
			Text:     fmt.Sprintf(MsgFmtRestoredHP, h.Name(), def.DisplayName()),
			Item:     def.ID(),
			HolderID: h.ID(),
			IsPlayer: h.IsPlayer(),
		},
	})
	return true
}

// grantMoney pays half the damage dealt per stack. Money multipliers are the treasury's concern.
func (e *Engine) grantMoney(p *Params, stack int) bool {
	amount := int(math.Floor(*p.Value * MoneyPerDamage * float64(stack)))
	if amount <= 0 {
		return false
	}
	e.money.AddMoney(p.Holder, amount)
	return true
}

// trackEvolution adds progress through the holder's own ledger. The increment is read
// from Count when given, otherwise one.
func (e *Engine) trackEvolution(def *Definition, b EvoTracker, stack int, p *Params) bool {
	increment := 1
	if p.Count != nil && *p.Count > 0 {
		increment = *p.Count
	}
	if !p.Holder.HeldItems().Add(def.ID(), increment) {
		return false
	}

	if b.Required > 0 && stack < b.Required && p.Holder.HeldItems().Stack(def.ID()) >= b.Required {
		e.message(def, p.Holder, MsgKeyEvoTrackerReady,
			fmt.Sprintf(MsgFmtEvoTrackerReady, p.Holder.Name(), def.DisplayName()))
	}
	return true
}
