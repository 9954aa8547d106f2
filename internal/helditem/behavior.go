package helditem

import (
	"slices"

	"github.com/osse101/BattleItems_Go/internal/domain"
)

// Behavior is the closed set of held item behaviors. Each variant is an immutable
// config value; the engine dispatches on the concrete type.
type Behavior interface {
	// Kind is the trigger the behavior answers to
	Kind() EffectKind
	clone() Behavior
}

// AttackTypeBoost raises the power of moves of one type by BoostPercent per stack
type AttackTypeBoost struct {
	Type         domain.PokemonType
	BoostPercent float64
}

// StatMultiplier multiplies the listed stats
type StatMultiplier struct {
	Stats      []domain.Stat
	Multiplier float64
}

// SpeciesStatMultiplier multiplies the listed stats when the holder (or either fused half)
// is one of Species
type SpeciesStatMultiplier struct {
	Stats      []domain.Stat
	Multiplier float64
	Species    []domain.SpeciesID
}

// EvolutionStatMultiplier multiplies the listed stats while the holder can still evolve
type EvolutionStatMultiplier struct {
	Stats      []domain.Stat
	Multiplier float64
}

// CritBoost adds crit stages
type CritBoost struct {
	Stages int
}

// SpeciesCritBoost adds crit stages for the listed species only
type SpeciesCritBoost struct {
	Stages  int
	Species []domain.SpeciesID
}

// SurviveChance lets the holder endure a lethal hit
type SurviveChance struct{}

// BypassSpeedChance lets the holder move first regardless of speed
type BypassSpeedChance struct{}

// FlinchChance makes a damaging hit flinch with ChancePercent per stack
type FlinchChance struct {
	ChancePercent int
}

// TurnHeal restores 1/16 of max HP per stack at turn end
type TurnHeal struct{}

// HitHeal restores 1/8 of the damage dealt per stack
type HitHeal struct{}

// ResetNegativeStages clears negative stat stages once, then is consumed
type ResetNegativeStages struct{}

// ExpBoost raises gained experience by BoostPercent per stack
type ExpBoost struct {
	BoostPercent float64
}

// Berry is eaten when its condition is met
type Berry struct {
	Berry domain.BerryType
}

// BaseStatBoost raises one base stat by 10% per stack
type BaseStatBoost struct {
	Stat domain.Stat
}

// BaseStatFlat adds Amount per stack to the listed base stats
type BaseStatFlat struct {
	Amount int
	Stats  []domain.Stat
}

// BaseStatTotal adds Amount per stack to every base stat, half of it to HP
type BaseStatTotal struct {
	Amount int
}

// InstantRevive revives the holder with half HP when it faints
type InstantRevive struct{}

// TurnStatus inflicts Status on the holder at turn end
type TurnStatus struct {
	Status domain.StatusEffect
}

// FieldDuration extends weather and terrain by TurnsPerStack per stack
type FieldDuration struct {
	TurnsPerStack int
}

// FriendshipBoost raises friendship gains by 50% per stack
type FriendshipBoost struct{}

// NatureWeight strengthens the nature multiplier by 0.1 per stack
type NatureWeight struct{}

// AccuracyBoost adds Amount accuracy per stack
type AccuracyBoost struct {
	Amount int
}

// MultiHit adds one strike per stack to eligible moves and scales their damage
type MultiHit struct{}

// DamageMoneyReward grants money for damage dealt
type DamageMoneyReward struct{}

// BatonPass carries stat changes over on switch
type BatonPass struct{}

// ContactSteal may take one item from the hit target
type ContactSteal struct {
	ChancePercent float64
}

// TurnSteal takes one item per stack from a random opponent at turn end
type TurnSteal struct{}

// IncrementingStat adds a flat amount per stack with a bonus at max stack
type IncrementingStat struct{}

// EvoTracker counts progress towards an evolution condition
type EvoTracker struct {
	Species  domain.SpeciesID
	Required int
}

func (AttackTypeBoost) Kind() EffectKind         { return EffectAttackTypeBoost }
func (StatMultiplier) Kind() EffectKind          { return EffectStatBoost }
func (SpeciesStatMultiplier) Kind() EffectKind   { return EffectStatBoost }
func (EvolutionStatMultiplier) Kind() EffectKind { return EffectStatBoost }
func (CritBoost) Kind() EffectKind               { return EffectCritBoost }
func (SpeciesCritBoost) Kind() EffectKind        { return EffectCritBoost }
func (SurviveChance) Kind() EffectKind           { return EffectSurviveDamage }
func (BypassSpeedChance) Kind() EffectKind       { return EffectBypassSpeed }
func (FlinchChance) Kind() EffectKind            { return EffectFlinch }
func (TurnHeal) Kind() EffectKind                { return EffectTurnHeal }
func (HitHeal) Kind() EffectKind                 { return EffectHitHeal }
func (ResetNegativeStages) Kind() EffectKind     { return EffectResetNegativeStatStage }
func (ExpBoost) Kind() EffectKind                { return EffectExpBoost }
func (Berry) Kind() EffectKind                   { return EffectBerry }
func (BaseStatBoost) Kind() EffectKind           { return EffectBaseStatBoost }
func (BaseStatFlat) Kind() EffectKind            { return EffectBaseStatFlat }
func (BaseStatTotal) Kind() EffectKind           { return EffectBaseStatTotal }
func (InstantRevive) Kind() EffectKind           { return EffectInstantRevive }
func (TurnStatus) Kind() EffectKind              { return EffectTurnStatus }
func (FieldDuration) Kind() EffectKind           { return EffectFieldEffect }
func (FriendshipBoost) Kind() EffectKind         { return EffectFriendshipBoost }
func (NatureWeight) Kind() EffectKind            { return EffectNatureWeightBoost }
func (AccuracyBoost) Kind() EffectKind           { return EffectAccuracyBoost }
func (MultiHit) Kind() EffectKind                { return EffectMultiHit }
func (DamageMoneyReward) Kind() EffectKind       { return EffectDamageMoneyReward }
func (BatonPass) Kind() EffectKind               { return EffectBatonPass }
func (ContactSteal) Kind() EffectKind            { return EffectContactItemSteal }
func (TurnSteal) Kind() EffectKind               { return EffectTurnItemSteal }
func (IncrementingStat) Kind() EffectKind        { return EffectIncrementingStat }
func (EvoTracker) Kind() EffectKind              { return EffectEvoTracker }

func (b AttackTypeBoost) clone() Behavior { return b }

func (b StatMultiplier) clone() Behavior {
	b.Stats = slices.Clone(b.Stats)
	return b
}

func (b SpeciesStatMultiplier) clone() Behavior {
	b.Stats = slices.Clone(b.Stats)
	b.Species = slices.Clone(b.Species)
	return b
}

func (b EvolutionStatMultiplier) clone() Behavior {
	b.Stats = slices.Clone(b.Stats)
	return b
}

func (b CritBoost) clone() Behavior { return b }

func (b SpeciesCritBoost) clone() Behavior {
	b.Species = slices.Clone(b.Species)
	return b
}

func (b SurviveChance) clone() Behavior       { return b }
func (b BypassSpeedChance) clone() Behavior   { return b }
func (b FlinchChance) clone() Behavior        { return b }
func (b TurnHeal) clone() Behavior            { return b }
func (b HitHeal) clone() Behavior             { return b }
func (b ResetNegativeStages) clone() Behavior { return b }
func (b ExpBoost) clone() Behavior            { return b }
func (b Berry) clone() Behavior               { return b }
func (b BaseStatBoost) clone() Behavior       { return b }

func (b BaseStatFlat) clone() Behavior {
	b.Stats = slices.Clone(b.Stats)
	return b
}

func (b BaseStatTotal) clone() Behavior     { return b }
func (b InstantRevive) clone() Behavior     { return b }
func (b TurnStatus) clone() Behavior        { return b }
func (b FieldDuration) clone() Behavior     { return b }
func (b FriendshipBoost) clone() Behavior   { return b }
func (b NatureWeight) clone() Behavior      { return b }
func (b AccuracyBoost) clone() Behavior     { return b }
func (b MultiHit) clone() Behavior          { return b }
func (b DamageMoneyReward) clone() Behavior { return b }
func (b BatonPass) clone() Behavior         { return b }
func (b ContactSteal) clone() Behavior      { return b }
func (b TurnSteal) clone() Behavior         { return b }
func (b IncrementingStat) clone() Behavior  { return b }
func (b EvoTracker) clone() Behavior        { return b }
