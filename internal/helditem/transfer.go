package helditem

import (
	"fmt"
	"slices"

	"github.com/osse101/BattleItems_Go/internal/domain"
	"github.com/osse101/BattleItems_Go/internal/metrics"
)

// stealItems takes items from one randomly chosen victim and reports whether anything moved.
// Rejected draws are skipped; the item stays in the pool and may be drawn again.
func (e *Engine) stealItems(def *Definition, b Behavior, stack int, p *Params) bool {
	targets := stealTargets(b, p)
	if len(targets) == 0 {
		return false
	}
	victim := targets[e.rng.Intn(len(targets))]

	count := e.stealCount(b, stack)
	if count <= 0 {
		return false
	}

	pool := slices.Clone(victim.HeldItems().TransferableItems())
	var stolen []domain.HeldItemID
	for range count {
		if len(pool) == 0 {
			break
		}
		i := e.rng.Intn(len(pool))
		id := pool[i]
		if err := e.transfers.TransferHeldItem(id, victim, p.Holder); err != nil {
			metrics.HeldItemTransfers.WithLabelValues(id.String(), MetricResultRejected).Inc()
			e.log.Debug(LogMsgTransferRejected,
				LogFieldItem, id.String(),
				LogFieldVictim, victim.ID(),
				LogFieldHolder, p.Holder.ID(),
				LogFieldError, err)
			continue
		}
		metrics.HeldItemTransfers.WithLabelValues(id.String(), MetricResultTransferred).Inc()
		pool = slices.Delete(pool, i, i+1)
		stolen = append(stolen, id)
	}

	for _, id := range stolen {
		e.message(def, p.Holder, stealMessageKey(b), e.stealMessage(def, b, p.Holder, victim, id))
	}
	return len(stolen) > 0
}

func stealTargets(b Behavior, p *Params) []Holder {
	switch b.(type) {
	case ContactSteal:
		if p.Target == nil {
			return nil
		}
		return []Holder{p.Target}
	default:
		return p.Holder.Opponents()
	}
}

// stealCount is the number of draws: one per stack each turn, or a single chance-gated
// draw on contact
func (e *Engine) stealCount(b Behavior, stack int) int {
	switch b := b.(type) {
	case ContactSteal:
		if e.rng.Float64() < b.ChancePercent/100*float64(stack) {
			return 1
		}
		return 0
	default:
		return stack
	}
}

func stealMessageKey(b Behavior) string {
	if _, ok := b.(ContactSteal); ok {
		return MsgKeyContactItemSteal
	}
	return MsgKeyTurnItemSteal
}

func (e *Engine) stealMessage(def *Definition, b Behavior, holder, victim Holder, stolen domain.HeldItemID) string {
	stolenName := stolen.String()
	if stolenDef, err := e.catalog.Lookup(stolen); err == nil {
		stolenName = stolenDef.DisplayName()
	}
	format := MsgFmtTurnItemSteal
	if _, ok := b.(ContactSteal); ok {
		format = MsgFmtContactItemSteal
	}
	return fmt.Sprintf(format, holder.Name(), def.DisplayName(), victim.Name(), stolenName)
}

// LedgerTransferrer moves items directly between two holders' ledgers. It rejects
// unstealable items and destinations already at max stack.
type LedgerTransferrer struct {
	catalog   *Catalog
	abilities AbilityHooks
}

// NewLedgerTransferrer creates a transferrer over catalog. abilities may be nil.
func NewLedgerTransferrer(catalog *Catalog, abilities AbilityHooks) *LedgerTransferrer {
	if abilities == nil {
		abilities = nopCollaborator{}
	}
	return &LedgerTransferrer{catalog: catalog, abilities: abilities}
}

// TransferHeldItem moves one copy of id from one holder to another
func (t *LedgerTransferrer) TransferHeldItem(id domain.HeldItemID, from, to Holder) error {
	def, err := t.catalog.Lookup(id)
	if err != nil {
		return err
	}
	if !def.IsStealable() {
		return fmt.Errorf("%w: %s", domain.ErrItemNotStealable, id)
	}
	if to.HeldItems().Stack(id) >= def.MaxStack() {
		return fmt.Errorf("%w: %s holds %d %s", domain.ErrHolderStackFull, to.ID(), def.MaxStack(), id)
	}
	if !from.HeldItems().Remove(id, 1) {
		return fmt.Errorf("%w: %s does not hold %s", domain.ErrItemNotHeld, from.ID(), id)
	}
	to.HeldItems().Add(id, 1)
	t.abilities.PostItemLost(from, true)
	return nil
}
