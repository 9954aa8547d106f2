package replay

// ActionType is what a scenario step does
type ActionType string

const (
	// ActionTrigger runs one held item dispatch pass for the step's holder
	ActionTrigger ActionType = "trigger"
	// ActionSetState changes a holder's battle state before the next trigger
	ActionSetState ActionType = "set_state"
	// ActionConsume uses up one copy of an item
	ActionConsume ActionType = "consume"
)

// AssertionType is how an assertion compares its path against the expected value
type AssertionType string

const (
	AssertEquals      AssertionType = "equals"
	AssertGreaterThan AssertionType = "greater_than"
	AssertLessThan    AssertionType = "less_than"
	AssertContains    AssertionType = "contains"
	AssertTrue        AssertionType = "true"
	AssertFalse       AssertionType = "false"
)

// Output keys a step exposes to assertions
const (
	OutputApplied   = "applied"
	OutputValue     = "value"
	OutputCount     = "count"
	OutputTriggered = "triggered"
	OutputMessages  = "messages"
	OutputText      = "text"
)

// State path roots: "<root>.<holder>[.<key>]"
const (
	PathHP     = "hp"
	PathStatus = "status"
	PathStage  = "stage"
	PathStack  = "stack"
	PathMoney  = "money"
)

// Log messages
const (
	LogMsgScenarioStarted  = "Replay scenario started"
	LogMsgScenarioFinished = "Replay scenario finished"
	LogMsgStepFailed       = "Replay step failed"
)

// Log field keys
const (
	LogFieldScenario = "scenario"
	LogFieldSeed     = "seed"
	LogFieldStep     = "step"
	LogFieldDraws    = "draws"
	LogFieldError    = "error"
)

// Error messages
const (
	ErrMsgReadScenarioFailed = "failed to read scenario file: %w"
	ErrFmtUndecodedKeys      = "unknown keys %v"
	ErrFmtUnknownHolder      = "unknown holder %q"
	ErrFmtDuplicateHolder    = "duplicate holder %q"
	ErrFmtActionNeeds        = "%s step needs %s"
	ErrFmtUnknownPath        = "path '%s' not found"
)
