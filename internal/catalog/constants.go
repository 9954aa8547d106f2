package catalog

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read held item catalog file: %w"
	ErrMsgParseConfigFailed    = "failed to parse held item catalog: %w"
	ErrMsgSchemaFailed         = "schema validation failed for %s: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// Validation error formats
const (
	ErrFmtItemInvalid       = "%w: item at index %d (%s): %s"
	ErrFmtUnknownBehavior   = "unknown behavior %q"
	ErrFmtMissingParam      = "behavior %s requires %s"
	ErrFmtInvalidParam      = "invalid %s %q"
	ErrFmtNonIntegerPercent = "chance_percent must be a whole number for %s, got %v"
)

// Field validation messages, keyed by validator tag
const (
	FieldMsgRequired = "is required"
	FieldMsgMin      = "must be at least %s"
	FieldMsgInvalid  = "is invalid"
)

// ==================== Log Messages ====================

const (
	LogMsgCatalogLoaded = "Held item catalog loaded"
)

// Source label for the embedded catalog
const (
	SourceEmbedded = "embedded"
)

// Behavior names as written in the catalog file
const (
	BehaviorAttackTypeBoost         = "attack_type_boost"
	BehaviorStatMultiplier          = "stat_multiplier"
	BehaviorSpeciesStatMultiplier   = "species_stat_multiplier"
	BehaviorEvolutionStatMultiplier = "evolution_stat_multiplier"
	BehaviorCritBoost               = "crit_boost"
	BehaviorSpeciesCritBoost        = "species_crit_boost"
	BehaviorSurviveChance           = "survive_chance"
	BehaviorBypassSpeedChance       = "bypass_speed_chance"
	BehaviorFlinchChance            = "flinch_chance"
	BehaviorTurnHeal                = "turn_heal"
	BehaviorHitHeal                 = "hit_heal"
	BehaviorResetNegativeStages     = "reset_negative_stages"
	BehaviorExpBoost                = "exp_boost"
	BehaviorBerry                   = "berry"
	BehaviorBaseStatBoost           = "base_stat_boost"
	BehaviorBaseStatFlat            = "base_stat_flat"
	BehaviorBaseStatTotal           = "base_stat_total"
	BehaviorInstantRevive           = "instant_revive"
	BehaviorTurnStatus              = "turn_status"
	BehaviorFieldDuration           = "field_duration"
	BehaviorFriendshipBoost         = "friendship_boost"
	BehaviorNatureWeight            = "nature_weight"
	BehaviorAccuracyBoost           = "accuracy_boost"
	BehaviorMultiHit                = "multi_hit"
	BehaviorDamageMoneyReward       = "damage_money_reward"
	BehaviorBatonPass               = "baton_pass"
	BehaviorContactSteal            = "contact_steal"
	BehaviorTurnSteal               = "turn_steal"
	BehaviorIncrementingStat        = "incrementing_stat"
	BehaviorEvoTracker              = "evo_tracker"
)
