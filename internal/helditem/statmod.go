package helditem

import (
	"math"

	"github.com/osse101/BattleItems_Go/internal/domain"
)

// applyPercentBoost scales v by BoostPercent per stack and floors the result
func applyPercentBoost(v *float64, stack int, boostPercent float64) bool {
	*v = math.Floor(*v * (1 + float64(stack)*boostPercent/100))
	return true
}

// applyEvolutionMultiplier boosts holders that can still evolve. A fused holder whose
// halves disagree gets half the boost.
func (e *Engine) applyEvolutionMultiplier(b EvolutionStatMultiplier, p *Params) bool {
	h := p.Holder
	canEvolve := e.evolution.CanEvolve(h.Species())

	multiplier := b.Multiplier
	if fusion, fused := h.FusionSpecies(); fused {
		fusionCanEvolve := e.evolution.CanEvolve(fusion)
		switch {
		case canEvolve != fusionCanEvolve:
			multiplier = 1 + (b.Multiplier-1)/2
		case !canEvolve:
			return false
		}
	} else if !canEvolve {
		return false
	}

	*p.Value *= multiplier
	return true
}

func applyFriendshipBoost(v *float64, stack int) bool {
	*v = math.Floor(*v * (1 + FriendshipPerStack*float64(stack)))
	return true
}

// applyNatureWeight pushes a non-neutral nature multiplier further from 1
func applyNatureWeight(v *float64, stack int) bool {
	if *v == 1 {
		return false
	}
	sign := 1.0
	if *v < 1 {
		sign = -1
	}
	*v += NatureWeightPerStack * float64(stack) * sign
	return true
}

// applyMultiHit adds strikes when given a hit count, otherwise scales the damage of
// the strike in progress: the first strike loses 25% per stack and each extra strike
// this item added deals 25%.
func applyMultiHit(p *Params, stack int) bool {
	if p.Count != nil {
		*p.Count += stack
		return true
	}

	switch {
	case p.HitsLeft == p.HitCount:
		*p.Value *= 1 - MultiHitFirstHitPenalty*float64(stack)
		return true
	case p.HitCount-p.HitsLeft != stack+1:
		*p.Value *= MultiHitExtraHitScale
		return true
	default:
		// an extra strike that did not come from this item
		return false
	}
}

func applyBaseStatBoost(b BaseStatBoost, stack int, base []int) bool {
	i := b.Stat.Index()
	if i < 0 {
		return false
	}
	base[i] = int(math.Floor(float64(base[i]) * (1 + BaseStatBoostPerStack*float64(stack))))
	return true
}

func applyBaseStatFlat(b BaseStatFlat, stack int, base []int) bool {
	changed := false
	for _, stat := range b.Stats {
		i := stat.Index()
		if i < 0 {
			continue
		}
		base[i] = clampBaseStat(base[i] + b.Amount*stack)
		changed = true
	}
	return changed
}

// applyBaseStatTotal adds the per-stack amount to every base stat and half of it to HP
func applyBaseStatTotal(b BaseStatTotal, stack int, base []int) bool {
	delta := float64(b.Amount * stack)
	for i := range base {
		d := delta
		if domain.PermanentStats[i] == domain.StatHP {
			d /= 2
		}
		base[i] = clampBaseStat(int(math.Floor(float64(base[i]) + d)))
	}
	return true
}

// applyIncrementingStat adds a flat amount per stack, plus a percentage bonus once the
// item is at its max stack
func applyIncrementingStat(def *Definition, stack int, p *Params) bool {
	atMax := stack >= def.MaxStack()
	if p.Stat == domain.StatHP {
		*p.Value += float64(IncrementingHPPerStack * stack)
		if atMax {
			*p.Value = math.Floor(*p.Value * IncrementingHPMaxBonus)
		}
		return true
	}

	*p.Value += float64(IncrementingStatPerStack * stack)
	if atMax {
		*p.Value = math.Floor(*p.Value * IncrementingStatMaxBonus)
	}
	return true
}

func clampBaseStat(v int) int {
	return min(max(v, domain.MinBaseStat), domain.MaxBaseStat)
}
