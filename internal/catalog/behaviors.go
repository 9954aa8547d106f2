package catalog

import (
	"fmt"
	"math"

	"github.com/osse101/BattleItems_Go/internal/domain"
	"github.com/osse101/BattleItems_Go/internal/helditem"
)

// buildBehavior maps a catalog entry to its behavior value, checking the params the behavior needs
func buildBehavior(item *Def) (helditem.Behavior, error) {
	p := item.Params
	switch item.Behavior {
	case BehaviorAttackTypeBoost:
		t := domain.PokemonType(p.Type)
		if !t.Valid() {
			return nil, fmt.Errorf(ErrFmtInvalidParam, "type", p.Type)
		}
		if p.BoostPercent <= 0 {
			return nil, fmt.Errorf(ErrFmtMissingParam, item.Behavior, "boost_percent")
		}
		return helditem.AttackTypeBoost{Type: t, BoostPercent: p.BoostPercent}, nil

	case BehaviorStatMultiplier, BehaviorEvolutionStatMultiplier, BehaviorSpeciesStatMultiplier:
		stats, err := parseStats(item.Behavior, p.Stats, false)
		if err != nil {
			return nil, err
		}
		if p.Multiplier <= 0 {
			return nil, fmt.Errorf(ErrFmtMissingParam, item.Behavior, "multiplier")
		}
		switch item.Behavior {
		case BehaviorStatMultiplier:
			return helditem.StatMultiplier{Stats: stats, Multiplier: p.Multiplier}, nil
		case BehaviorEvolutionStatMultiplier:
			return helditem.EvolutionStatMultiplier{Stats: stats, Multiplier: p.Multiplier}, nil
		}
		species, err := parseSpecies(item.Behavior, p.Species)
		if err != nil {
			return nil, err
		}
		return helditem.SpeciesStatMultiplier{Stats: stats, Multiplier: p.Multiplier, Species: species}, nil

	case BehaviorCritBoost:
		if p.Stages < 1 {
			return nil, fmt.Errorf(ErrFmtMissingParam, item.Behavior, "stages")
		}
		return helditem.CritBoost{Stages: p.Stages}, nil

	case BehaviorSpeciesCritBoost:
		if p.Stages < 1 {
			return nil, fmt.Errorf(ErrFmtMissingParam, item.Behavior, "stages")
		}
		species, err := parseSpecies(item.Behavior, p.Species)
		if err != nil {
			return nil, err
		}
		return helditem.SpeciesCritBoost{Stages: p.Stages, Species: species}, nil

	case BehaviorSurviveChance:
		return helditem.SurviveChance{}, nil
	case BehaviorBypassSpeedChance:
		return helditem.BypassSpeedChance{}, nil

	case BehaviorFlinchChance:
		if p.ChancePercent <= 0 {
			return nil, fmt.Errorf(ErrFmtMissingParam, item.Behavior, "chance_percent")
		}
		if p.ChancePercent != math.Trunc(p.ChancePercent) {
			return nil, fmt.Errorf(ErrFmtNonIntegerPercent, item.Behavior, p.ChancePercent)
		}
		return helditem.FlinchChance{ChancePercent: int(p.ChancePercent)}, nil

	case BehaviorTurnHeal:
		return helditem.TurnHeal{}, nil
	case BehaviorHitHeal:
		return helditem.HitHeal{}, nil
	case BehaviorResetNegativeStages:
		return helditem.ResetNegativeStages{}, nil

	case BehaviorExpBoost:
		if p.BoostPercent <= 0 {
			return nil, fmt.Errorf(ErrFmtMissingParam, item.Behavior, "boost_percent")
		}
		return helditem.ExpBoost{BoostPercent: p.BoostPercent}, nil

	case BehaviorBerry:
		b := domain.BerryType(p.Berry)
		if !b.Valid() {
			return nil, fmt.Errorf(ErrFmtInvalidParam, "berry", p.Berry)
		}
		return helditem.Berry{Berry: b}, nil

	case BehaviorBaseStatBoost:
		s := domain.Stat(p.Stat)
		if !s.IsPermanent() {
			return nil, fmt.Errorf(ErrFmtInvalidParam, "stat", p.Stat)
		}
		return helditem.BaseStatBoost{Stat: s}, nil

	case BehaviorBaseStatFlat:
		if p.Amount == 0 {
			return nil, fmt.Errorf(ErrFmtMissingParam, item.Behavior, "amount")
		}
		stats, err := parseStats(item.Behavior, p.Stats, true)
		if err != nil {
			return nil, err
		}
		return helditem.BaseStatFlat{Amount: p.Amount, Stats: stats}, nil

	case BehaviorBaseStatTotal:
		if p.Amount == 0 {
			return nil, fmt.Errorf(ErrFmtMissingParam, item.Behavior, "amount")
		}
		return helditem.BaseStatTotal{Amount: p.Amount}, nil

	case BehaviorInstantRevive:
		return helditem.InstantRevive{}, nil

	case BehaviorTurnStatus:
		s := domain.StatusEffect(p.Status)
		if !s.Valid() {
			return nil, fmt.Errorf(ErrFmtInvalidParam, "status", p.Status)
		}
		return helditem.TurnStatus{Status: s}, nil

	case BehaviorFieldDuration:
		if p.TurnsPerStack < 1 {
			return nil, fmt.Errorf(ErrFmtMissingParam, item.Behavior, "turns_per_stack")
		}
		return helditem.FieldDuration{TurnsPerStack: p.TurnsPerStack}, nil

	case BehaviorFriendshipBoost:
		return helditem.FriendshipBoost{}, nil
	case BehaviorNatureWeight:
		return helditem.NatureWeight{}, nil

	case BehaviorAccuracyBoost:
		if p.Amount < 1 {
			return nil, fmt.Errorf(ErrFmtMissingParam, item.Behavior, "amount")
		}
		return helditem.AccuracyBoost{Amount: p.Amount}, nil

	case BehaviorMultiHit:
		return helditem.MultiHit{}, nil
	case BehaviorDamageMoneyReward:
		return helditem.DamageMoneyReward{}, nil
	case BehaviorBatonPass:
		return helditem.BatonPass{}, nil

	case BehaviorContactSteal:
		if p.ChancePercent <= 0 {
			return nil, fmt.Errorf(ErrFmtMissingParam, item.Behavior, "chance_percent")
		}
		return helditem.ContactSteal{ChancePercent: p.ChancePercent}, nil

	case BehaviorTurnSteal:
		return helditem.TurnSteal{}, nil
	case BehaviorIncrementingStat:
		return helditem.IncrementingStat{}, nil

	case BehaviorEvoTracker:
		if p.Required < 1 {
			return nil, fmt.Errorf(ErrFmtMissingParam, item.Behavior, "required")
		}
		var species domain.SpeciesID
		switch len(p.Species) {
		case 0:
		case 1:
			species = domain.SpeciesID(p.Species[0])
		default:
			return nil, fmt.Errorf(ErrFmtInvalidParam, "species", fmt.Sprint(p.Species))
		}
		return helditem.EvoTracker{Species: species, Required: p.Required}, nil
	}

	return nil, fmt.Errorf(ErrFmtUnknownBehavior, item.Behavior)
}

func parseStats(behavior string, names []string, permanentOnly bool) ([]domain.Stat, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf(ErrFmtMissingParam, behavior, "stats")
	}
	stats := make([]domain.Stat, 0, len(names))
	for _, name := range names {
		s := domain.Stat(name)
		if !s.Valid() || (permanentOnly && !s.IsPermanent()) {
			return nil, fmt.Errorf(ErrFmtInvalidParam, "stat", name)
		}
		stats = append(stats, s)
	}
	return stats, nil
}

func parseSpecies(behavior string, names []string) ([]domain.SpeciesID, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf(ErrFmtMissingParam, behavior, "species")
	}
	species := make([]domain.SpeciesID, 0, len(names))
	for _, name := range names {
		if name == "" {
			return nil, fmt.Errorf(ErrFmtInvalidParam, "species", name)
		}
		species = append(species, domain.SpeciesID(name))
	}
	return species, nil
}
