package helditem

import "github.com/osse101/BattleItems_Go/internal/domain"

// Params is the per-pass bundle the battle engine hands to ApplyHeldItems.
// The boxed fields are borrowed: items write through them in ledger order so each
// later item sees the earlier writes.
type Params struct {
	// Holder carries the items being applied
	Holder Holder
	// Target is the other side of a hit, used by contact theft
	Target Holder

	// MoveType is the type of the move being boosted
	MoveType domain.PokemonType
	// Stat is the stat being calculated or incremented
	Stat domain.Stat
	// MultiStrike reports whether the current move may gain extra strikes
	MultiStrike bool
	// HitCount and HitsLeft describe the strike in progress of a multi-strike move
	HitCount int
	HitsLeft int
	// FightCommand reports whether the holder chose to fight this turn
	FightCommand bool
	// Suppressed skips suppressable items (e.g. under an item-negating effect)
	Suppressed bool

	// Value boxes a numeric quantity: power, stat value, exp, friendship, nature
	// multiplier, damage multiplier or damage dealt
	Value *float64
	// Count boxes an integer quantity: crit stage, accuracy, field turns, hit count
	// or tracker increment
	Count *int
	// Triggered is shared by chance items so only one fires per pass
	Triggered *bool
	// BaseStats is a base-stat array indexed like domain.PermanentStats
	BaseStats []int
}

// Holder is the battle participant carrying items. It is implemented by the battle engine.
type Holder interface {
	ID() string
	Name() string
	IsPlayer() bool
	Species() domain.SpeciesID
	// FusionSpecies returns the second half of a fused holder
	FusionSpecies() (domain.SpeciesID, bool)
	IsGigantamax() bool
	HeldItems() Ledger
	Opponents() []Holder

	HP() int
	MaxHP() int
	Status() domain.StatusEffect
	TurnDamageDealt() int
	StatStage(stat domain.Stat) int
	SetStatStage(stat domain.Stat, stage int)
	TrySetStatus(status domain.StatusEffect) bool
	CureStatus()
	HasDepletedMove() bool
	RestorePP(amount int) bool
	RecordEatenBerry(berry domain.BerryType, consumed bool)
}

// Ledger is a holder's item stacks. Items must return ids in insertion order.
type Ledger interface {
	Stack(id domain.HeldItemID) int
	Add(id domain.HeldItemID, qty int) bool
	Remove(id domain.HeldItemID, qty int) bool
	Items() []domain.HeldItemID
	TransferableItems() []domain.HeldItemID
}

// Random is the deterministic battle RNG
type Random interface {
	// Intn returns a value in [0, n)
	Intn(n int) int
	// Float64 returns a value in [0, 1)
	Float64() float64
}

// Message is a user-visible battle message produced by an item
type Message struct {
	Key      string
	Text     string
	Item     domain.HeldItemID
	HolderID string
	IsPlayer bool
}

// Heal is a heal request queued for the battle engine
type Heal struct {
	Holder  Holder
	Item    domain.HeldItemID
	Amount  int
	Revive  bool
	Message Message
}

type Messenger interface {
	QueueMessage(msg Message)
}

type Healer interface {
	QueueHeal(heal Heal)
}

type Treasury interface {
	AddMoney(holder Holder, amount int)
}

// Transferrer moves one copy of an item between holders
type Transferrer interface {
	TransferHeldItem(id domain.HeldItemID, from, to Holder) error
}

// AbilityHooks receives item-loss notifications for abilities such as Unburden
type AbilityHooks interface {
	PostItemLost(holder Holder, direct bool)
}

// BerryPreserver decides whether eating a berry keeps it (e.g. Harvest, Cud Chew)
type BerryPreserver interface {
	PreserveBerry(holder Holder) bool
}

// Refresher redraws item state after a holder's stacks change
type Refresher interface {
	RefreshHeldItems(isPlayer bool)
}

type EvolutionChecker interface {
	CanEvolve(species domain.SpeciesID) bool
}
