package helditem

import (
	"fmt"
	"strings"
)

// EffectKind tags the battle trigger a held item participates in
type EffectKind int

const (
	EffectAttackTypeBoost EffectKind = iota + 1
	EffectTurnHeal
	EffectHitHeal
	EffectResetNegativeStatStage
	EffectExpBoost
	EffectBerry
	EffectBaseStatBoost
	EffectBaseStatFlat
	EffectBaseStatTotal
	EffectInstantRevive
	EffectStatBoost
	EffectCritBoost
	EffectTurnStatus
	EffectSurviveDamage
	EffectBypassSpeed
	EffectFlinch
	EffectFieldEffect
	EffectFriendshipBoost
	EffectNatureWeightBoost
	EffectAccuracyBoost
	EffectMultiHit
	EffectDamageMoneyReward
	EffectBatonPass
	EffectContactItemSteal
	EffectTurnItemSteal
	EffectIncrementingStat
	EffectEvoTracker
)

var effectKindNames = map[EffectKind]string{
	EffectAttackTypeBoost:        "attack_type_boost",
	EffectTurnHeal:               "turn_heal",
	EffectHitHeal:                "hit_heal",
	EffectResetNegativeStatStage: "reset_negative_stat_stage",
	EffectExpBoost:               "exp_boost",
	EffectBerry:                  "berry",
	EffectBaseStatBoost:          "base_stat_boost",
	EffectBaseStatFlat:           "base_stat_flat",
	EffectBaseStatTotal:          "base_stat_total",
	EffectInstantRevive:          "instant_revive",
	EffectStatBoost:              "stat_boost",
	EffectCritBoost:              "crit_boost",
	EffectTurnStatus:             "turn_status",
	EffectSurviveDamage:          "survive_damage",
	EffectBypassSpeed:            "bypass_speed",
	EffectFlinch:                 "flinch",
	EffectFieldEffect:            "field_effect",
	EffectFriendshipBoost:        "friendship_boost",
	EffectNatureWeightBoost:      "nature_weight_boost",
	EffectAccuracyBoost:          "accuracy_boost",
	EffectMultiHit:               "multi_hit",
	EffectDamageMoneyReward:      "damage_money_reward",
	EffectBatonPass:              "baton_pass",
	EffectContactItemSteal:       "contact_item_steal",
	EffectTurnItemSteal:          "turn_item_steal",
	EffectIncrementingStat:       "incrementing_stat",
	EffectEvoTracker:             "evo_tracker",
}

// EffectKinds lists every trigger kind in declaration order
func EffectKinds() []EffectKind {
	kinds := make([]EffectKind, 0, len(effectKindNames))
	for k := EffectAttackTypeBoost; k <= EffectEvoTracker; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func (k EffectKind) String() string {
	if name, ok := effectKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("effect(%d)", int(k))
}

// ParseEffectKind resolves a trigger name such as "turn_heal"
func ParseEffectKind(name string) (EffectKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range effectKindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf(ErrFmtUnknownEffectKind, name)
}
