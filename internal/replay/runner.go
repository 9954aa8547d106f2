package replay

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/osse101/BattleItems_Go/internal/domain"
	"github.com/osse101/BattleItems_Go/internal/event"
	"github.com/osse101/BattleItems_Go/internal/helditem"
	"github.com/osse101/BattleItems_Go/internal/logger"
	"github.com/osse101/BattleItems_Go/internal/rng"
)

// Runner executes scenarios over a catalog. The catalog is frozen by the first run
// and shared by every later one.
type Runner struct {
	catalog   *helditem.Catalog
	evolution helditem.EvolutionChecker
}

// NewRunner creates a runner. evolution may be nil, in which case no holder can evolve.
func NewRunner(catalog *helditem.Catalog, evolution helditem.EvolutionChecker) *Runner {
	return &Runner{catalog: catalog, evolution: evolution}
}

// Run executes sc once. Step failures are recorded on the result and stop the run;
// the returned error is reserved for scenarios that cannot start or a cancelled ctx.
func (r *Runner) Run(ctx context.Context, sc *Scenario) (*Result, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	if err := r.checkItems(sc); err != nil {
		return nil, err
	}

	seed := sc.Seed
	if seed == "" {
		seed = uuid.NewString()
	}
	ctx = logger.WithBattleID(ctx, logger.NewBattleID())
	log := logger.FromContext(ctx)

	bus := event.NewMemoryBus()
	recorder := event.NewRecorder(bus)
	publisher := event.NewPublisher(ctx, bus)
	random := rng.NewBattle(rng.SeedFromString(seed))
	b := newBattle(sc.Holders, r.catalog, publisher)

	engine, err := helditem.NewEngine(r.catalog, helditem.Deps{
		Random:    random,
		Messages:  publisher,
		Heals:     b,
		Money:     b,
		Abilities: publisher,
		Refresh:   b,
		Evolution: r.evolution,
		Logger:    log,
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgScenarioStarted, LogFieldScenario, sc.Name, LogFieldSeed, seed)
	result := newResult(sc.Name, seed)

	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			result.SetError(err)
			result.Complete()
			return result, err
		}

		before := len(recorder.Texts())
		sr := r.executeStep(engine, b, step, i)
		sr.Messages = recorder.Texts()[before:]

		output := stepOutput(sr)
		for _, a := range step.Assertions {
			sr.AddAssertionResult(checkAssertion(a, output, b))
		}
		result.AddStepResult(*sr)

		if !sr.Success {
			log.Warn(LogMsgStepFailed, LogFieldStep, i, LogFieldError, sr.Error)
			if sr.Error != "" {
				result.SetError(NewStepError(step, i, sr.Error, nil))
			} else {
				result.SetError(NewStepError(step, i, "assertions did not hold", ErrAssertionFailed))
			}
			break
		}
	}

	result.Messages = recorder.Texts()
	result.ItemsLost = len(recorder.Lost())
	result.Draws = random.Draws()
	result.Final = b.snapshot()
	result.Complete()

	log.Info(LogMsgScenarioFinished, LogFieldScenario, sc.Name, "success", result.Success, LogFieldDraws, result.Draws)
	return result, nil
}

// Verify runs sc twice with the same seed and reports whether the transcripts match
func (r *Runner) Verify(ctx context.Context, sc *Scenario) (first, second *Result, err error) {
	first, err = r.Run(ctx, sc)
	if err != nil {
		return nil, nil, err
	}

	again := *sc
	again.Seed = first.Seed
	second, err = r.Run(ctx, &again)
	if err != nil {
		return nil, nil, err
	}
	return first, second, nil
}

// checkItems rejects scenarios naming items the catalog does not define,
// since the engine treats those as fatal
func (r *Runner) checkItems(sc *Scenario) error {
	for _, h := range sc.Holders {
		for _, item := range h.Items {
			id, err := domain.ParseHeldItemID(item.ID)
			if err == nil {
				_, err = r.catalog.Lookup(id)
			}
			if err != nil {
				return fmt.Errorf("%w: holder %s: %w", ErrInvalidScenario, h.ID, err)
			}
		}
	}
	return nil
}

func (r *Runner) executeStep(engine *helditem.Engine, b *battle, step Step, index int) *StepResult {
	sr := newStepResult(step, index)
	holder := b.holder(step.Holder)

	switch step.Action {
	case ActionTrigger:
		kind, err := helditem.ParseEffectKind(step.Effect)
		if err != nil {
			sr.SetError(NewStepError(step, index, "bad effect", err))
			return sr
		}
		p := triggerParams(step, b)
		sr.Applied = engine.ApplyHeldItems(kind, p)
		sr.Value = p.Value
		sr.Count = p.Count
		sr.Triggered = *p.Triggered
		sr.BaseStats = p.BaseStats

	case ActionSetState:
		applyState(step, b)

	case ActionConsume:
		id, err := domain.ParseHeldItemID(step.Item)
		if err != nil {
			sr.SetError(NewStepError(step, index, "bad item", err))
			return sr
		}
		engine.Consume(holder, id, holder.IsPlayer(), helditem.ConsumeOptions{
			KeepItem:        step.KeepItem,
			SkipAbilityHook: step.SkipAbilityHook,
		})

	default:
		sr.SetError(NewStepError(step, index, "unsupported action", nil))
	}
	return sr
}

func triggerParams(step Step, b *battle) *helditem.Params {
	triggered := false
	p := &helditem.Params{
		Holder:       b.holder(step.Holder),
		MoveType:     domain.PokemonType(strings.ToUpper(step.MoveType)),
		MultiStrike:  step.MultiStrike,
		HitCount:     step.HitCount,
		HitsLeft:     step.HitsLeft,
		FightCommand: step.FightCommand,
		Suppressed:   step.Suppressed,
		Triggered:    &triggered,
	}
	if step.Target != "" {
		p.Target = b.holder(step.Target)
	}
	if step.Stat != "" {
		p.Stat, _ = domain.ParseStat(step.Stat)
	}
	if step.Value != nil {
		v := *step.Value
		p.Value = &v
	}
	if step.Count != nil {
		n := *step.Count
		p.Count = &n
	}
	if step.BaseStats != nil {
		p.BaseStats = slices.Clone(step.BaseStats)
	}
	return p
}

func applyState(step Step, b *battle) {
	c := b.holder(step.Holder)
	if step.HP != nil {
		c.SetHP(*step.HP)
	}
	if step.DamageDealt != nil {
		c.SetTurnDamageDealt(*step.DamageDealt)
	}
	if step.Status != "" {
		switch status := parseStatus(step.Status); status {
		case domain.StatusNone:
			c.CureStatus()
		case domain.StatusFaint:
			c.SetHP(0)
		default:
			c.CureStatus()
			c.TrySetStatus(status)
		}
	}
	for name, stage := range step.Stages {
		stat, _ := domain.ParseStat(name)
		c.SetStatStage(stat, stage)
	}
	for i, pp := range step.MovePP {
		c.SetMovePP(i, pp)
	}
}

func (b *battle) snapshot() []HolderState {
	states := make([]HolderState, 0, len(b.order))
	for _, id := range b.order {
		c := b.holders[id]
		state := HolderState{
			ID:     id,
			HP:     c.HP(),
			Status: string(c.Status()),
			Money:  b.money[id],
		}
		for _, item := range c.Ledger().Items() {
			state.Items = append(state.Items, ItemState{ID: item.String(), Count: c.Ledger().Stack(item)})
		}
		states = append(states, state)
	}
	return states
}
