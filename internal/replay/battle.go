package replay

import (
	"strings"

	"github.com/osse101/BattleItems_Go/internal/combatant"
	"github.com/osse101/BattleItems_Go/internal/domain"
	"github.com/osse101/BattleItems_Go/internal/event"
	"github.com/osse101/BattleItems_Go/internal/helditem"
)

// battle is the in-memory side of a replay: holders plus the collaborators
// the engine reaches them through
type battle struct {
	order    []string
	holders  map[string]*combatant.Combatant
	money    map[string]int
	refresh  map[bool]int
	messages *event.Publisher
}

func newBattle(specs []HolderSpec, limits *helditem.Catalog, messages *event.Publisher) *battle {
	b := &battle{
		order:    make([]string, 0, len(specs)),
		holders:  make(map[string]*combatant.Combatant, len(specs)),
		money:    make(map[string]int),
		refresh:  make(map[bool]int),
		messages: messages,
	}

	for _, spec := range specs {
		name := spec.Name
		if name == "" {
			name = spec.ID
		}
		c := combatant.New(combatant.Options{
			ID:         spec.ID,
			Name:       name,
			Player:     spec.Player,
			Species:    domain.SpeciesID(strings.ToUpper(spec.Species)),
			Fusion:     domain.SpeciesID(strings.ToUpper(spec.Fusion)),
			Gigantamax: spec.Gigantamax,
			HP:         spec.HP,
			MaxHP:      spec.MaxHP,
			Status:     parseStatus(spec.Status),
			MovePP:     spec.MovePP,
			MaxPP:      spec.MaxPP,
		}, limits)

		for _, item := range spec.Items {
			id, _ := domain.ParseHeldItemID(item.ID)
			c.Ledger().Add(id, max(item.Count, 1))
		}

		b.order = append(b.order, spec.ID)
		b.holders[spec.ID] = c
	}

	for _, spec := range specs {
		b.holders[spec.ID].SetOpponents(b.opponentsOf(spec)...)
	}
	return b
}

func (b *battle) opponentsOf(spec HolderSpec) []helditem.Holder {
	var opponents []helditem.Holder
	if len(spec.Opponents) > 0 {
		for _, id := range spec.Opponents {
			opponents = append(opponents, b.holders[id])
		}
		return opponents
	}
	for _, id := range b.order {
		if c := b.holders[id]; c.IsPlayer() != spec.Player {
			opponents = append(opponents, c)
		}
	}
	return opponents
}

func (b *battle) holder(id string) *combatant.Combatant {
	return b.holders[id]
}

// QueueHeal applies the heal at once and announces it
func (b *battle) QueueHeal(heal helditem.Heal) {
	if c, ok := b.holders[heal.Holder.ID()]; ok {
		c.Heal(heal.Amount, heal.Revive)
	}
	if heal.Message.Text != "" {
		b.messages.QueueMessage(heal.Message)
	}
}

func (b *battle) AddMoney(holder helditem.Holder, amount int) {
	b.money[holder.ID()] += amount
}

func (b *battle) RefreshHeldItems(isPlayer bool) {
	b.refresh[isPlayer]++
}

func parseStatus(name string) domain.StatusEffect {
	if name == "" {
		return domain.StatusNone
	}
	return domain.StatusEffect(strings.ToUpper(name))
}
