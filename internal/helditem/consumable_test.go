package helditem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BattleItems_Go/internal/combatant"
	"github.com/osse101/BattleItems_Go/internal/domain"
	"github.com/osse101/BattleItems_Go/internal/helditem"
)

func withHooks(abilities *MockAbilityHooks, refresh *MockRefresher) fixtureOption {
	return func(d *helditem.Deps) {
		d.Abilities = abilities
		d.Refresh = refresh
	}
}

func TestConsume(t *testing.T) {
	t.Run("removes one copy and notifies", func(t *testing.T) {
		abilities, refresh := &MockAbilityHooks{}, &MockRefresher{}
		f := newFixture(t, withHooks(abilities, refresh))
		h := f.holder(t, combatant.Options{Player: true}, map[domain.HeldItemID]int{domain.HeldItemSitrusBerry: 2})

		abilities.On("PostItemLost", h, false).Once()
		refresh.On("RefreshHeldItems", true).Once()

		f.engine.Consume(h, domain.HeldItemSitrusBerry, true, helditem.ConsumeOptions{})

		assert.Equal(t, 1, h.Ledger().Stack(domain.HeldItemSitrusBerry))
		abilities.AssertExpectations(t)
		refresh.AssertExpectations(t)
	})

	t.Run("last copy leaves the ledger", func(t *testing.T) {
		f := newFixture(t)
		h := f.holder(t, combatant.Options{}, map[domain.HeldItemID]int{
			domain.HeldItemLeftovers:   1,
			domain.HeldItemSitrusBerry: 1,
		})

		f.engine.Consume(h, domain.HeldItemSitrusBerry, false, helditem.ConsumeOptions{})

		assert.Equal(t, []domain.HeldItemID{domain.HeldItemLeftovers}, h.Ledger().Items())
	})

	t.Run("kept item still fires the hook", func(t *testing.T) {
		abilities, refresh := &MockAbilityHooks{}, &MockRefresher{}
		f := newFixture(t, withHooks(abilities, refresh))
		h := f.holder(t, combatant.Options{}, map[domain.HeldItemID]int{domain.HeldItemSitrusBerry: 2})

		abilities.On("PostItemLost", h, false).Once()

		f.engine.Consume(h, domain.HeldItemSitrusBerry, false, helditem.ConsumeOptions{KeepItem: true})

		assert.Equal(t, 2, h.Ledger().Stack(domain.HeldItemSitrusBerry))
		abilities.AssertExpectations(t)
		refresh.AssertNotCalled(t, "RefreshHeldItems", mock.Anything)
	})

	t.Run("skipped hook", func(t *testing.T) {
		abilities, refresh := &MockAbilityHooks{}, &MockRefresher{}
		f := newFixture(t, withHooks(abilities, refresh))
		h := f.holder(t, combatant.Options{}, map[domain.HeldItemID]int{domain.HeldItemSitrusBerry: 2})

		refresh.On("RefreshHeldItems", false).Once()

		f.engine.Consume(h, domain.HeldItemSitrusBerry, false, helditem.ConsumeOptions{SkipAbilityHook: true})

		assert.Equal(t, 1, h.Ledger().Stack(domain.HeldItemSitrusBerry))
		abilities.AssertNotCalled(t, "PostItemLost", mock.Anything, mock.Anything)
		refresh.AssertExpectations(t)
	})
}

func TestBerries(t *testing.T) {
	t.Run("sitrus heals at half HP", func(t *testing.T) {
		abilities := &MockAbilityHooks{}
		f := newFixture(t, func(d *helditem.Deps) { d.Abilities = abilities })
		h := f.holder(t, combatant.Options{HP: 50, MaxHP: 100}, map[domain.HeldItemID]int{domain.HeldItemSitrusBerry: 2})
		abilities.On("PostItemLost", h, false).Once()

		assert.True(t, f.engine.ApplyHeldItems(helditem.EffectBerry, &helditem.Params{Holder: h}))

		require.Len(t, f.heals.heals, 1)
		assert.Equal(t, 25, f.heals.heals[0].Amount)
		assert.False(t, f.heals.heals[0].Revive)
		assert.Equal(t, []string{"Pikachu ate its Sitrus Berry!"}, f.messages.texts())
		assert.Equal(t, 1, h.Ledger().Stack(domain.HeldItemSitrusBerry))
		assert.Equal(t, []combatant.EatenBerry{{Berry: domain.BerrySitrus, Consumed: true}}, h.EatenBerries())
		abilities.AssertExpectations(t)
	})

	t.Run("sitrus waits above half HP", func(t *testing.T) {
		f := newFixture(t)
		h := f.holder(t, combatant.Options{HP: 51, MaxHP: 100}, map[domain.HeldItemID]int{domain.HeldItemSitrusBerry: 1})

		assert.False(t, f.engine.ApplyHeldItems(helditem.EffectBerry, &helditem.Params{Holder: h}))
		assert.Empty(t, f.heals.heals)
		assert.Equal(t, 1, h.Ledger().Stack(domain.HeldItemSitrusBerry))
	})

	t.Run("preserved berry is kept", func(t *testing.T) {
		abilities, refresh, berries := &MockAbilityHooks{}, &MockRefresher{}, &MockBerryPreserver{}
		f := newFixture(t, withHooks(abilities, refresh), func(d *helditem.Deps) { d.Berries = berries })
		h := f.holder(t, combatant.Options{HP: 10, MaxHP: 100}, map[domain.HeldItemID]int{domain.HeldItemSitrusBerry: 2})

		berries.On("PreserveBerry", h).Return(true).Once()
		abilities.On("PostItemLost", h, false).Once()

		assert.True(t, f.engine.ApplyHeldItems(helditem.EffectBerry, &helditem.Params{Holder: h}))

		assert.Len(t, f.heals.heals, 1, "The berry still takes effect")
		assert.Equal(t, 2, h.Ledger().Stack(domain.HeldItemSitrusBerry))
		assert.Equal(t, []combatant.EatenBerry{{Berry: domain.BerrySitrus, Consumed: false}}, h.EatenBerries())
		berries.AssertExpectations(t)
		abilities.AssertExpectations(t)
		refresh.AssertNotCalled(t, "RefreshHeldItems", mock.Anything)
	})

	t.Run("lum cures status", func(t *testing.T) {
		f := newFixture(t)
		h := f.holder(t, combatant.Options{Status: domain.StatusBurn}, map[domain.HeldItemID]int{domain.HeldItemLumBerry: 1})

		assert.True(t, f.engine.ApplyHeldItems(helditem.EffectBerry, &helditem.Params{Holder: h}))
		assert.Equal(t, domain.StatusNone, h.Status())
		assert.Zero(t, h.Ledger().Stack(domain.HeldItemLumBerry))

		assert.False(t, f.engine.ApplyHeldItems(helditem.EffectBerry, &helditem.Params{Holder: h}))
	})

	t.Run("leppa restores a depleted move", func(t *testing.T) {
		f := newFixture(t)
		h := f.holder(t, combatant.Options{MovePP: []int{5, 0}, MaxPP: []int{5, 15}}, map[domain.HeldItemID]int{domain.HeldItemLeppaBerry: 1})

		assert.True(t, f.engine.ApplyHeldItems(helditem.EffectBerry, &helditem.Params{Holder: h}))
		assert.Equal(t, []int{5, 10}, h.MovePP())
	})

	t.Run("pinch berry raises its stat", func(t *testing.T) {
		f := newFixture(t)
		h := f.holder(t, combatant.Options{HP: 25, MaxHP: 100}, map[domain.HeldItemID]int{domain.HeldItemLiechiBerry: 2})

		assert.True(t, f.engine.ApplyHeldItems(helditem.EffectBerry, &helditem.Params{Holder: h}))
		assert.Equal(t, 1, h.StatStage(domain.StatATK))
		assert.Equal(t, 1, h.Ledger().Stack(domain.HeldItemLiechiBerry))
	})

	t.Run("pinch berry waits for a quarter HP", func(t *testing.T) {
		f := newFixture(t)
		h := f.holder(t, combatant.Options{HP: 26, MaxHP: 100}, map[domain.HeldItemID]int{domain.HeldItemLiechiBerry: 1})

		assert.False(t, f.engine.ApplyHeldItems(helditem.EffectBerry, &helditem.Params{Holder: h}))
	})

	t.Run("pinch berry skips a maxed stat", func(t *testing.T) {
		f := newFixture(t)
		h := f.holder(t, combatant.Options{HP: 5, MaxHP: 100}, map[domain.HeldItemID]int{domain.HeldItemSalacBerry: 1})
		h.SetStatStage(domain.StatSPD, domain.MaxStatStage)

		assert.False(t, f.engine.ApplyHeldItems(helditem.EffectBerry, &helditem.Params{Holder: h}))
		assert.Equal(t, 1, h.Ledger().Stack(domain.HeldItemSalacBerry))
	})

	t.Run("fainted holders eat nothing", func(t *testing.T) {
		f := newFixture(t)
		h := f.holder(t, combatant.Options{MaxHP: 100}, map[domain.HeldItemID]int{domain.HeldItemSitrusBerry: 1})
		h.SetHP(0)

		assert.False(t, f.engine.ApplyHeldItems(helditem.EffectBerry, &helditem.Params{Holder: h}))
	})
}

func TestInstantRevive(t *testing.T) {
	abilities := &MockAbilityHooks{}
	f := newFixture(t, func(d *helditem.Deps) { d.Abilities = abilities })
	h := f.holder(t, combatant.Options{MaxHP: 101}, map[domain.HeldItemID]int{domain.HeldItemReviverSeed: 1})
	h.SetHP(0)
	require.Equal(t, domain.StatusFaint, h.Status())
	abilities.On("PostItemLost", h, false).Once()

	assert.True(t, f.engine.ApplyHeldItems(helditem.EffectInstantRevive, &helditem.Params{Holder: h}))

	assert.Equal(t, domain.StatusNone, h.Status())
	require.Len(t, f.heals.heals, 1)
	heal := f.heals.heals[0]
	assert.Equal(t, 50, heal.Amount)
	assert.True(t, heal.Revive)
	assert.Equal(t, "Pikachu was revived by its Reviver Seed!", heal.Message.Text)
	assert.Equal(t, helditem.MsgKeyInstantRevive, heal.Message.Key)
	assert.False(t, h.Ledger().Has(domain.HeldItemReviverSeed))
	abilities.AssertExpectations(t)
}

func TestResetNegativeStages(t *testing.T) {
	t.Run("clears lowered stages", func(t *testing.T) {
		f := newFixture(t)
		h := f.holder(t, combatant.Options{}, map[domain.HeldItemID]int{domain.HeldItemWhiteHerb: 2})
		h.SetStatStage(domain.StatATK, -2)
		h.SetStatStage(domain.StatEVA, -1)
		h.SetStatStage(domain.StatDEF, 1)

		assert.True(t, f.engine.ApplyHeldItems(helditem.EffectResetNegativeStatStage, &helditem.Params{Holder: h}))

		assert.Equal(t, 0, h.StatStage(domain.StatATK))
		assert.Equal(t, 0, h.StatStage(domain.StatEVA))
		assert.Equal(t, 1, h.StatStage(domain.StatDEF))
		assert.Equal(t, 1, h.Ledger().Stack(domain.HeldItemWhiteHerb))
		assert.Equal(t, []string{"Pikachu returned its decreased stats to normal using its White Herb!"}, f.messages.texts())
	})

	t.Run("nothing lowered", func(t *testing.T) {
		f := newFixture(t)
		h := f.holder(t, combatant.Options{}, map[domain.HeldItemID]int{domain.HeldItemWhiteHerb: 1})
		h.SetStatStage(domain.StatATK, 2)

		assert.False(t, f.engine.ApplyHeldItems(helditem.EffectResetNegativeStatStage, &helditem.Params{Holder: h}))
		assert.Equal(t, 1, h.Ledger().Stack(domain.HeldItemWhiteHerb))
	})
}

func TestTurnStatus(t *testing.T) {
	f := newFixture(t)
	h := f.holder(t, combatant.Options{}, map[domain.HeldItemID]int{domain.HeldItemToxicOrb: 1})

	assert.True(t, f.engine.ApplyHeldItems(helditem.EffectTurnStatus, &helditem.Params{Holder: h}))
	assert.Equal(t, domain.StatusToxic, h.Status())

	assert.False(t, f.engine.ApplyHeldItems(helditem.EffectTurnStatus, &helditem.Params{Holder: h}),
		"A holder with a status cannot gain another")
	assert.Equal(t, 1, h.Ledger().Stack(domain.HeldItemToxicOrb), "Orbs are never consumed")
}
