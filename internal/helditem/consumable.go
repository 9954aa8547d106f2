package helditem

import (
	"fmt"
	"strconv"

	"github.com/osse101/BattleItems_Go/internal/domain"
	"github.com/osse101/BattleItems_Go/internal/metrics"
)

// ConsumeOptions adjusts Consume. The zero value removes one copy and notifies abilities.
type ConsumeOptions struct {
	// KeepItem leaves the stack untouched (the consumption was preserved)
	KeepItem bool
	// SkipAbilityHook suppresses the post-item-lost notification
	SkipAbilityHook bool
}

// Consume uses up one copy of id. The ability hook fires whenever it is not skipped,
// even if no copy was removed: preserved consumptions still count as eating the item.
func (e *Engine) Consume(holder Holder, id domain.HeldItemID, isPlayer bool, opts ConsumeOptions) {
	removed := false
	if !opts.KeepItem {
		removed = holder.HeldItems().Remove(id, 1)
		e.refresh.RefreshHeldItems(isPlayer)
	}
	if !opts.SkipAbilityHook {
		e.abilities.PostItemLost(holder, false)
	}

	metrics.HeldItemsConsumed.WithLabelValues(id.String(), strconv.FormatBool(removed)).Inc()
	e.log.Debug(LogMsgHeldItemConsumed, LogFieldItem, id.String(), LogFieldHolder, holder.ID(), "removed", removed)
}

func berryCondition(berry domain.BerryType, h Holder) bool {
	hp, maxHP := h.HP(), h.MaxHP()
	if hp <= 0 {
		return false
	}
	switch berry {
	case domain.BerrySitrus:
		return hp <= maxHP/SitrusBerryHPDivisor
	case domain.BerryLum:
		status := h.Status()
		return status != domain.StatusNone && status != domain.StatusFaint && status != ""
	case domain.BerryLeppa:
		return h.HasDepletedMove()
	default:
		stat, ok := berry.StatRaised()
		return ok && hp <= maxHP/PinchBerryHPDivisor && h.StatStage(stat) < domain.MaxStatStage
	}
}

// eatBerry asks the preserve hook first, applies the berry, then consumes it
func (e *Engine) eatBerry(def *Definition, b Berry, h Holder) bool {
	preserved := e.berries.PreserveBerry(h)

	e.message(def, h, MsgKeyBerryEaten, fmt.Sprintf(MsgFmtBerryEaten, h.Name(), def.DisplayName()))
	switch b.Berry {
	case domain.BerrySitrus:
		e.heals.QueueHeal(Heal{Holder: h, Item: def.ID(), Amount: max(1, h.MaxHP()/SitrusHealDivisor)})
	case domain.BerryLum:
		h.CureStatus()
	case domain.BerryLeppa:
		h.RestorePP(LeppaRestorePP)
	default:
		if stat, ok := b.Berry.StatRaised(); ok {
			h.SetStatStage(stat, min(h.StatStage(stat)+1, domain.MaxStatStage))
		}
	}

	e.Consume(h, def.ID(), h.IsPlayer(), ConsumeOptions{KeepItem: preserved})
	h.RecordEatenBerry(b.Berry, !preserved)
	return true
}

// revive restores a fainted holder to half HP and uses up the item
func (e *Engine) revive(def *Definition, h Holder) bool {
	msg := Message{
		Key:      MsgKeyInstantRevive,
		Text:     fmt.Sprintf(MsgFmtInstantRevive, h.Name(), def.DisplayName()),
		Item:     def.ID(),
		HolderID: h.ID(),
		IsPlayer: h.IsPlayer(),
	}
	h.CureStatus()
	e.heals.QueueHeal(Heal{
		Holder:  h,
		Item:    def.ID(),
		Amount:  max(1, h.MaxHP()/ReviveHealDivisor),
		Revive:  true,
		Message: msg,
	})
	e.Consume(h, def.ID(), h.IsPlayer(), ConsumeOptions{})
	return true
}

func hasNegativeStage(h Holder) bool {
	for _, stat := range domain.BattleStats {
		if h.StatStage(stat) < 0 {
			return true
		}
	}
	return false
}

// resetNegativeStages clears every lowered stage, then uses up the item
func (e *Engine) resetNegativeStages(def *Definition, h Holder) bool {
	restored := false
	for _, stat := range domain.BattleStats {
		if h.StatStage(stat) < 0 {
			h.SetStatStage(stat, 0)
			restored = true
		}
	}
	if !restored {
		return false
	}

	e.message(def, h, MsgKeyResetNegativeStages, fmt.Sprintf(MsgFmtResetNegativeStages, h.Name(), def.DisplayName()))
	e.Consume(h, def.ID(), h.IsPlayer(), ConsumeOptions{})
	return true
}
