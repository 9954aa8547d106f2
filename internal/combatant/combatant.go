// Package combatant is an in-memory battle participant that carries held items.
package combatant

import (
	"slices"

	"github.com/osse101/BattleItems_Go/internal/domain"
	"github.com/osse101/BattleItems_Go/internal/helditem"
	"github.com/osse101/BattleItems_Go/internal/ledger"
)

// Options describes a combatant at battle start
type Options struct {
	ID         string
	Name       string
	Player     bool
	Species    domain.SpeciesID
	Fusion     domain.SpeciesID
	Gigantamax bool
	HP         int
	MaxHP      int
	Status     domain.StatusEffect
	// MovePP holds the remaining PP of each move
	MovePP []int
	// MaxPP holds each move's full PP; it defaults to MovePP
	MaxPP []int
}

// EatenBerry records one berry the combatant ate
type EatenBerry struct {
	Berry    domain.BerryType
	Consumed bool
}

// Combatant implements helditem.Holder over a ledger.Manager
type Combatant struct {
	opts        Options
	items       *ledger.Manager
	opponents   []helditem.Holder
	hp          int
	status      domain.StatusEffect
	damageDealt int
	stages      map[domain.Stat]int
	movePP      []int
	maxPP       []int
	berries     []EatenBerry
}

// New creates a combatant whose ledger enforces limits
func New(opts Options, limits ledger.Limits) *Combatant {
	if opts.MaxHP <= 0 {
		opts.MaxHP = 1
	}
	hp := opts.HP
	if hp <= 0 && opts.Status != domain.StatusFaint {
		hp = opts.MaxHP
	}
	maxPP := slices.Clone(opts.MaxPP)
	if len(maxPP) != len(opts.MovePP) {
		maxPP = slices.Clone(opts.MovePP)
	}
	status := opts.Status
	if status == "" {
		status = domain.StatusNone
	}

	return &Combatant{
		opts:   opts,
		items:  ledger.NewManager(limits),
		hp:     min(hp, opts.MaxHP),
		status: status,
		stages: make(map[domain.Stat]int),
		movePP: slices.Clone(opts.MovePP),
		maxPP:  maxPP,
	}
}

func (c *Combatant) ID() string                { return c.opts.ID }
func (c *Combatant) Name() string              { return c.opts.Name }
func (c *Combatant) IsPlayer() bool            { return c.opts.Player }
func (c *Combatant) Species() domain.SpeciesID { return c.opts.Species }
func (c *Combatant) IsGigantamax() bool        { return c.opts.Gigantamax }

func (c *Combatant) FusionSpecies() (domain.SpeciesID, bool) {
	return c.opts.Fusion, c.opts.Fusion != ""
}

// HeldItems returns the combatant's ledger
func (c *Combatant) HeldItems() helditem.Ledger { return c.items }

// Ledger returns the concrete ledger for inspection
func (c *Combatant) Ledger() *ledger.Manager { return c.items }

func (c *Combatant) Opponents() []helditem.Holder { return slices.Clone(c.opponents) }

// SetOpponents replaces the combatant's current opponents
func (c *Combatant) SetOpponents(opponents ...helditem.Holder) {
	c.opponents = slices.Clone(opponents)
}

func (c *Combatant) HP() int                     { return c.hp }
func (c *Combatant) MaxHP() int                  { return c.opts.MaxHP }
func (c *Combatant) Status() domain.StatusEffect { return c.status }
func (c *Combatant) TurnDamageDealt() int        { return c.damageDealt }

// SetHP sets current HP, clamped to [0, max HP]; zero HP faints the combatant
func (c *Combatant) SetHP(hp int) {
	c.hp = min(max(hp, 0), c.opts.MaxHP)
	if c.hp == 0 {
		c.status = domain.StatusFaint
	}
}

// Heal restores HP; a revive heal also lifts a faint
func (c *Combatant) Heal(amount int, revive bool) {
	if c.status == domain.StatusFaint && !revive {
		return
	}
	if revive && c.status == domain.StatusFaint {
		c.status = domain.StatusNone
	}
	c.hp = min(c.hp+amount, c.opts.MaxHP)
}

// SetTurnDamageDealt records damage dealt this turn
func (c *Combatant) SetTurnDamageDealt(damage int) { c.damageDealt = damage }

func (c *Combatant) StatStage(stat domain.Stat) int { return c.stages[stat] }

func (c *Combatant) SetStatStage(stat domain.Stat, stage int) {
	c.stages[stat] = min(max(stage, domain.MinStatStage), domain.MaxStatStage)
}

// TrySetStatus applies status when the combatant has none
func (c *Combatant) TrySetStatus(status domain.StatusEffect) bool {
	if c.status != domain.StatusNone || c.hp <= 0 {
		return false
	}
	c.status = status
	return true
}

func (c *Combatant) CureStatus() { c.status = domain.StatusNone }

func (c *Combatant) HasDepletedMove() bool {
	return slices.Contains(c.movePP, 0)
}

// RestorePP refills the first depleted move by amount
func (c *Combatant) RestorePP(amount int) bool {
	i := slices.Index(c.movePP, 0)
	if i < 0 {
		return false
	}
	c.movePP[i] = min(c.movePP[i]+amount, c.maxPP[i])
	return true
}

// MovePP returns the remaining PP of each move
func (c *Combatant) MovePP() []int { return slices.Clone(c.movePP) }

// SetMovePP sets the remaining PP of move i
func (c *Combatant) SetMovePP(i, pp int) {
	if i >= 0 && i < len(c.movePP) {
		c.movePP[i] = min(max(pp, 0), c.maxPP[i])
	}
}

func (c *Combatant) RecordEatenBerry(berry domain.BerryType, consumed bool) {
	c.berries = append(c.berries, EatenBerry{Berry: berry, Consumed: consumed})
}

// EatenBerries returns the berries eaten so far
func (c *Combatant) EatenBerries() []EatenBerry { return slices.Clone(c.berries) }
