package helditem

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/osse101/BattleItems_Go/internal/domain"
	"github.com/osse101/BattleItems_Go/internal/metrics"
)

// Deps are the battle collaborators the engine reaches items through.
// Random is required; any other nil dependency becomes a no-op, except Transfers
// which defaults to moving items directly between the holders' ledgers.
type Deps struct {
	Random    Random
	Messages  Messenger
	Heals     Healer
	Money     Treasury
	Transfers Transferrer
	Abilities AbilityHooks
	Berries   BerryPreserver
	Refresh   Refresher
	Evolution EvolutionChecker
	Logger    *slog.Logger
}

// Engine applies held item effects for one battle
type Engine struct {
	catalog   *Catalog
	rng       Random
	messages  Messenger
	heals     Healer
	money     Treasury
	transfers Transferrer
	abilities AbilityHooks
	berries   BerryPreserver
	refresh   Refresher
	evolution EvolutionChecker
	log       *slog.Logger
}

// NewEngine builds an engine over catalog and freezes the catalog
func NewEngine(catalog *Catalog, deps Deps) (*Engine, error) {
	if catalog == nil {
		return nil, errors.New(ErrMsgNilCatalog)
	}
	if deps.Random == nil {
		return nil, errors.New(ErrMsgNilRandom)
	}
	catalog.Freeze()

	e := &Engine{
		catalog:   catalog,
		rng:       deps.Random,
		messages:  deps.Messages,
		heals:     deps.Heals,
		money:     deps.Money,
		transfers: deps.Transfers,
		abilities: deps.Abilities,
		berries:   deps.Berries,
		refresh:   deps.Refresh,
		evolution: deps.Evolution,
		log:       deps.Logger,
	}
	if e.messages == nil {
		e.messages = nopCollaborator{}
	}
	if e.heals == nil {
		e.heals = nopCollaborator{}
	}
	if e.money == nil {
		e.money = nopCollaborator{}
	}
	if e.abilities == nil {
		e.abilities = nopCollaborator{}
	}
	if e.berries == nil {
		e.berries = nopCollaborator{}
	}
	if e.refresh == nil {
		e.refresh = nopCollaborator{}
	}
	if e.evolution == nil {
		e.evolution = nopCollaborator{}
	}
	if e.log == nil {
		e.log = slog.Default()
	}
	if e.transfers == nil {
		e.transfers = &LedgerTransferrer{catalog: catalog, abilities: e.abilities}
	}

	e.log.Debug(LogMsgEngineCreated, "items", catalog.Len())
	return e, nil
}

// Catalog returns the frozen catalog the engine dispatches over
func (e *Engine) Catalog() *Catalog { return e.catalog }

// ApplyHeldItems runs one dispatch pass: every item the holder carries that participates
// in kind is gated and applied in ledger order. It reports whether any item applied.
// An item missing from the catalog is a programmer error and panics.
func (e *Engine) ApplyHeldItems(kind EffectKind, p *Params) bool {
	if p == nil || p.Holder == nil {
		return false
	}
	metrics.HeldItemDispatchPasses.WithLabelValues(kind.String()).Inc()

	ledger := p.Holder.HeldItems()
	applied := false
	for _, id := range ledger.Items() {
		def, err := e.catalog.Lookup(id)
		if err != nil {
			e.log.Error(LogMsgUnknownHeldItem, LogFieldItem, id.String(), LogFieldHolder, p.Holder.ID(), LogFieldError, err)
			panic(err)
		}
		if !def.Has(kind) || (p.Suppressed && def.IsSuppressable()) {
			continue
		}
		// an earlier item in this pass may have consumed it
		stack := ledger.Stack(id)
		if stack <= 0 {
			continue
		}
		if !e.shouldApply(def, stack, p) || !e.apply(def, stack, p) {
			continue
		}

		applied = true
		metrics.HeldItemsApplied.WithLabelValues(kind.String(), def.Name()).Inc()
		e.log.Debug(LogMsgHeldItemApplied,
			LogFieldEffect, kind.String(),
			LogFieldItem, def.Name(),
			LogFieldHolder, p.Holder.ID(),
			LogFieldStack, stack)
	}
	return applied
}

// shouldApply gates an item. It is pure apart from RNG draws.
func (e *Engine) shouldApply(def *Definition, stack int, p *Params) bool {
	h := p.Holder
	switch b := def.behavior.(type) {
	case AttackTypeBoost:
		return p.Value != nil && p.MoveType == b.Type && *p.Value >= 1
	case StatMultiplier:
		return p.Value != nil && slices.Contains(b.Stats, p.Stat)
	case SpeciesStatMultiplier:
		return p.Value != nil && slices.Contains(b.Stats, p.Stat) && isSpecies(h, b.Species)
	case EvolutionStatMultiplier:
		return p.Value != nil && slices.Contains(b.Stats, p.Stat) && !h.IsGigantamax()
	case CritBoost:
		return p.Count != nil
	case SpeciesCritBoost:
		return p.Count != nil && isSpecies(h, b.Species)
	case SurviveChance, BypassSpeedChance:
		return e.roll(p, ChanceTenths, stack)
	case FlinchChance:
		return e.roll(p, ChancePercent, stack*b.ChancePercent)
	case TurnHeal:
		return h.HP() > 0 && h.HP() < h.MaxHP()
	case HitHeal:
		return h.TurnDamageDealt() > 0 && h.HP() > 0 && h.HP() < h.MaxHP()
	case ResetNegativeStages:
		return hasNegativeStage(h)
	case ExpBoost, FriendshipBoost, NatureWeight:
		return p.Value != nil
	case Berry:
		return berryCondition(b.Berry, h)
	case BaseStatBoost, BaseStatFlat, BaseStatTotal:
		return len(p.BaseStats) == len(domain.PermanentStats)
	case InstantRevive, TurnStatus, BatonPass, TurnSteal:
		return true
	case EvoTracker:
		return b.Species == "" || isSpecies(h, []domain.SpeciesID{b.Species})
	case FieldDuration, AccuracyBoost:
		return p.Count != nil
	case MultiHit:
		return p.MultiStrike && (p.Count != nil || p.Value != nil)
	case DamageMoneyReward:
		return p.Value != nil && *p.Value > 0
	case ContactSteal:
		return p.Target != nil
	case IncrementingStat:
		return p.Value != nil && p.Stat.IsPermanent()
	default:
		panic(fmt.Sprintf(ErrFmtUnhandledBehavior, b))
	}
}

// apply runs an item's effect and reports whether it changed anything
func (e *Engine) apply(def *Definition, stack int, p *Params) bool {
	switch b := def.behavior.(type) {
	case AttackTypeBoost:
		return applyPercentBoost(p.Value, stack, b.BoostPercent)
	case StatMultiplier:
		*p.Value *= b.Multiplier
		return true
	case SpeciesStatMultiplier:
		*p.Value *= b.Multiplier
		return true
	case EvolutionStatMultiplier:
		return e.applyEvolutionMultiplier(b, p)
	case CritBoost:
		*p.Count += b.Stages
		return true
	case SpeciesCritBoost:
		*p.Count += b.Stages
		return true
	case SurviveChance:
		return e.triggerSurvive(def, p)
	case BypassSpeedChance:
		return e.triggerBypassSpeed(def, p)
	case FlinchChance:
		*p.Triggered = true
		return true
	case TurnHeal:
		return e.queueHeal(def, p.Holder, max(1, p.Holder.MaxHP()/TurnHealDivisor)*stack, MsgKeyTurnHeal)
	case HitHeal:
		return e.queueHeal(def, p.Holder, max(1, p.Holder.TurnDamageDealt()/HitHealDivisor)*stack, MsgKeyHitHeal)
	case ResetNegativeStages:
		return e.resetNegativeStages(def, p.Holder)
	case ExpBoost:
		return applyPercentBoost(p.Value, stack, b.BoostPercent)
	case Berry:
		return e.eatBerry(def, b, p.Holder)
	case BaseStatBoost:
		return applyBaseStatBoost(b, stack, p.BaseStats)
	case BaseStatFlat:
		return applyBaseStatFlat(b, stack, p.BaseStats)
	case BaseStatTotal:
		return applyBaseStatTotal(b, stack, p.BaseStats)
	case InstantRevive:
		return e.revive(def, p.Holder)
	case TurnStatus:
		return p.Holder.TrySetStatus(b.Status)
	case FieldDuration:
		*p.Count += b.TurnsPerStack * stack
		return true
	case FriendshipBoost:
		return applyFriendshipBoost(p.Value, stack)
	case NatureWeight:
		return applyNatureWeight(p.Value, stack)
	case AccuracyBoost:
		*p.Count += b.Amount * stack
		return true
	case MultiHit:
		return applyMultiHit(p, stack)
	case DamageMoneyReward:
		return e.grantMoney(p, stack)
	case BatonPass:
		return true
	case ContactSteal, TurnSteal:
		return e.stealItems(def, b, stack, p)
	case IncrementingStat:
		return applyIncrementingStat(def, stack, p)
	case EvoTracker:
		return e.trackEvolution(def, b, stack, p)
	default:
		panic(fmt.Sprintf(ErrFmtUnhandledBehavior, b))
	}
}

// message queues a user-visible message for an item
func (e *Engine) message(def *Definition, h Holder, key, text string) {
	e.messages.QueueMessage(Message{
		Key:      key,
		Text:     text,
		Item:     def.ID(),
		HolderID: h.ID(),
		IsPlayer: h.IsPlayer(),
	})
}

func isSpecies(h Holder, species []domain.SpeciesID) bool {
	if slices.Contains(species, h.Species()) {
		return true
	}
	fusion, fused := h.FusionSpecies()
	return fused && slices.Contains(species, fusion)
}

type nopCollaborator struct{}

func (nopCollaborator) QueueMessage(Message)            {}
func (nopCollaborator) QueueHeal(Heal)                  {}
func (nopCollaborator) AddMoney(Holder, int)            {}
func (nopCollaborator) PostItemLost(Holder, bool)       {}
func (nopCollaborator) PreserveBerry(Holder) bool       { return false }
func (nopCollaborator) RefreshHeldItems(bool)           {}
func (nopCollaborator) CanEvolve(domain.SpeciesID) bool { return false }
