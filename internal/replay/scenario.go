// Package replay runs scripted held item scenarios against a seeded battle
// so a run can be repeated and compared.
package replay

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/osse101/BattleItems_Go/internal/domain"
	"github.com/osse101/BattleItems_Go/internal/helditem"
)

// Scenario is a scripted sequence of held item triggers
type Scenario struct {
	Name        string `toml:"name" validate:"required"`
	Description string `toml:"description"`
	// Seed is hashed into the battle RNG; empty draws a fresh random seed
	Seed    string       `toml:"seed"`
	Holders []HolderSpec `toml:"holders" validate:"required,min=1,dive"`
	Steps   []Step       `toml:"steps" validate:"required,min=1,dive"`
}

// HolderSpec describes one battle participant
type HolderSpec struct {
	ID         string `toml:"id" validate:"required"`
	Name       string `toml:"name"`
	Player     bool   `toml:"player"`
	Species    string `toml:"species"`
	Fusion     string `toml:"fusion"`
	Gigantamax bool   `toml:"gigantamax"`
	// HP defaults to MaxHP
	HP     int    `toml:"hp" validate:"min=0"`
	MaxHP  int    `toml:"max_hp" validate:"required,min=1"`
	Status string `toml:"status"`
	MovePP []int  `toml:"move_pp" validate:"dive,min=0"`
	// MaxPP defaults to MovePP
	MaxPP []int `toml:"max_pp" validate:"dive,min=0"`
	// Opponents defaults to every holder on the other side
	Opponents []string   `toml:"opponents"`
	Items     []ItemSpec `toml:"items" validate:"dive"`
}

// ItemSpec is one starting stack. Count defaults to one.
type ItemSpec struct {
	ID    string `toml:"id" validate:"required"`
	Count int    `toml:"count" validate:"min=0"`
}

// Step is one scripted action
type Step struct {
	Name   string     `toml:"name"`
	Action ActionType `toml:"action" validate:"required,oneof=trigger set_state consume"`
	Holder string     `toml:"holder" validate:"required"`

	// trigger
	Effect       string   `toml:"effect"`
	Target       string   `toml:"target"`
	MoveType     string   `toml:"move_type"`
	Stat         string   `toml:"stat"`
	MultiStrike  bool     `toml:"multi_strike"`
	HitCount     int      `toml:"hit_count"`
	HitsLeft     int      `toml:"hits_left"`
	FightCommand bool     `toml:"fight_command"`
	Suppressed   bool     `toml:"suppressed"`
	Value        *float64 `toml:"value"`
	Count        *int     `toml:"count"`
	BaseStats    []int    `toml:"base_stats"`

	// set_state
	HP          *int           `toml:"hp"`
	DamageDealt *int           `toml:"damage_dealt"`
	Status      string         `toml:"status"`
	Stages      map[string]int `toml:"stages"`
	MovePP      []int          `toml:"move_pp"`

	// consume
	Item            string `toml:"item"`
	KeepItem        bool   `toml:"keep_item"`
	SkipAbilityHook bool   `toml:"skip_ability_hook"`

	Assertions []Assertion `toml:"assert" validate:"dive"`
}

// Assertion is an expected outcome checked after its step
type Assertion struct {
	Type   AssertionType `toml:"type" validate:"required,oneof=equals greater_than less_than contains true false"`
	Path   string        `toml:"path" validate:"required"`
	Value  interface{}   `toml:"value"`
	Reason string        `toml:"reason"`
}

// Parse decodes and validates a TOML scenario. Unknown keys are rejected.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	md, err := toml.Decode(string(data), &sc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: "+ErrFmtUndecodedKeys, ErrInvalidScenario, undecoded)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Load reads a scenario file
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadScenarioFailed, err)
	}
	return Parse(data)
}

// Validate checks struct constraints and that every name the steps use resolves
func (s *Scenario) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidScenario, formatValidationError(err))
	}

	var errs []error
	holders := make(map[string]bool, len(s.Holders))
	for _, h := range s.Holders {
		if holders[h.ID] {
			errs = append(errs, fmt.Errorf(ErrFmtDuplicateHolder, h.ID))
		}
		holders[h.ID] = true
		errs = append(errs, validateHolder(h)...)
	}
	for _, h := range s.Holders {
		for _, opp := range h.Opponents {
			if !holders[opp] {
				errs = append(errs, fmt.Errorf("holder %s: "+ErrFmtUnknownHolder, h.ID, opp))
			}
		}
	}
	for i, step := range s.Steps {
		if err := validateStep(step, holders); err != nil {
			errs = append(errs, NewStepError(step, i, "invalid step", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, errors.Join(errs...))
	}
	return nil
}

func validateHolder(h HolderSpec) []error {
	var errs []error
	if h.HP > h.MaxHP {
		errs = append(errs, fmt.Errorf("holder %s: hp %d exceeds max_hp %d", h.ID, h.HP, h.MaxHP))
	}
	if h.Status != "" && !isStatus(h.Status) {
		errs = append(errs, fmt.Errorf("holder %s: unknown status %q", h.ID, h.Status))
	}
	for _, item := range h.Items {
		if _, err := domain.ParseHeldItemID(item.ID); err != nil {
			errs = append(errs, fmt.Errorf("holder %s: %w", h.ID, err))
		}
	}
	return errs
}

func validateStep(step Step, holders map[string]bool) error {
	if !holders[step.Holder] {
		return fmt.Errorf(ErrFmtUnknownHolder, step.Holder)
	}
	switch step.Action {
	case ActionTrigger:
		if step.Effect == "" {
			return fmt.Errorf(ErrFmtActionNeeds, step.Action, "effect")
		}
		if _, err := helditem.ParseEffectKind(step.Effect); err != nil {
			return err
		}
		if step.Target != "" && !holders[step.Target] {
			return fmt.Errorf(ErrFmtUnknownHolder, step.Target)
		}
		if step.MoveType != "" && !domain.PokemonType(strings.ToUpper(step.MoveType)).Valid() {
			return fmt.Errorf("unknown move type %q", step.MoveType)
		}
		if step.Stat != "" {
			if _, err := domain.ParseStat(step.Stat); err != nil {
				return err
			}
		}
	case ActionSetState:
		if step.Status != "" && !isStatus(step.Status) {
			return fmt.Errorf("unknown status %q", step.Status)
		}
		for name := range step.Stages {
			if _, err := domain.ParseStat(name); err != nil {
				return err
			}
		}
	case ActionConsume:
		if step.Item == "" {
			return fmt.Errorf(ErrFmtActionNeeds, step.Action, "item")
		}
		if _, err := domain.ParseHeldItemID(step.Item); err != nil {
			return err
		}
	}
	return nil
}

// isStatus accepts an inflictable status or NONE
func isStatus(name string) bool {
	s := domain.StatusEffect(strings.ToUpper(name))
	return s == domain.StatusNone || s == domain.StatusFaint || s.Valid()
}

// formatValidationError flattens validator errors into "field: problem" pairs
func formatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		field := strings.TrimPrefix(fe.Namespace(), "Scenario.")
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", field, fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
