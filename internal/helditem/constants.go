package helditem

// Error messages
const (
	ErrMsgNoItemID          = "item id is required"
	ErrMsgNoBehavior        = "behavior is required"
	ErrMsgNilDefinition     = "definition is nil"
	ErrMsgNilCatalog        = "catalog is required"
	ErrMsgNilRandom         = "battle rng is required"
	ErrFmtInvalidMaxStack   = "max stack must be at least 1, got %d"
	ErrFmtUnknownEffectKind = "unknown effect kind %q"
	ErrFmtUnhandledBehavior = "unhandled held item behavior %T"
)

// Log messages
const (
	LogMsgUnknownHeldItem  = "Held item missing from catalog"
	LogMsgHeldItemApplied  = "Held item applied"
	LogMsgTransferRejected = "Held item transfer rejected"
	LogMsgHeldItemConsumed = "Held item consumed"
	LogMsgEngineCreated    = "Held item engine created"
)

// Log field keys
const (
	LogFieldItem   = "item"
	LogFieldEffect = "effect"
	LogFieldHolder = "holder"
	LogFieldVictim = "victim"
	LogFieldStack  = "stack"
	LogFieldError  = "error"
)

// Message keys
const (
	MsgKeySurviveDamage       = "helditem.surviveDamage"
	MsgKeyBypassSpeed         = "helditem.bypassSpeed"
	MsgKeyTurnHeal            = "helditem.turnHeal"
	MsgKeyHitHeal             = "helditem.hitHeal"
	MsgKeyResetNegativeStages = "helditem.resetNegativeStatStage"
	MsgKeyInstantRevive       = "helditem.instantRevive"
	MsgKeyBerryEaten          = "helditem.berryEaten"
	MsgKeyTurnItemSteal       = "helditem.turnItemSteal"
	MsgKeyContactItemSteal    = "helditem.contactItemSteal"
	MsgKeyEvoTrackerReady     = "helditem.evoTrackerReady"
)

// Message templates. Arguments are holder name then item display name unless noted.
const (
	MsgFmtSurviveDamage       = "%s hung on using its %s!"
	MsgFmtBypassSpeed         = "%s's %s let it move first!"
	MsgFmtRestoredHP          = "%s restored a little HP using its %s!"
	MsgFmtResetNegativeStages = "%s returned its decreased stats to normal using its %s!"
	MsgFmtInstantRevive       = "%s was revived by its %s!"
	MsgFmtBerryEaten          = "%s ate its %s!"
	MsgFmtEvoTrackerReady     = "%s's %s is ready to evolve!"
	// holder, item, victim, stolen item
	MsgFmtTurnItemSteal    = "%s's %s absorbed %s's %s!"
	MsgFmtContactItemSteal = "%s's %s snatched %s's %s!"
)

// Tuning values shared by several behaviors
const (
	// chance draws scaled by stack: draw(ChanceTenths) < stack
	ChanceTenths = 10
	// flinch draws: draw(ChancePercent) < stack * chance
	ChancePercent = 100

	TurnHealDivisor       = 16
	HitHealDivisor        = 8
	SitrusHealDivisor     = 4
	PinchBerryHPDivisor   = 4
	SitrusBerryHPDivisor  = 2
	LeppaRestorePP        = 10
	ReviveHealDivisor     = 2
	BaseStatBoostPerStack = 0.1
	FriendshipPerStack    = 0.5
	NatureWeightPerStack  = 0.1
	MoneyPerDamage        = 0.5

	MultiHitFirstHitPenalty = 0.25
	MultiHitExtraHitScale   = 0.25

	IncrementingHPPerStack   = 2
	IncrementingStatPerStack = 1
	IncrementingHPMaxBonus   = 1.1
	IncrementingStatMaxBonus = 1.05
)

// Metric label values
const (
	MetricResultTransferred = "transferred"
	MetricResultRejected    = "rejected"
)
