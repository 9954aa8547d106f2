package helditem_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BattleItems_Go/internal/catalog"
	"github.com/osse101/BattleItems_Go/internal/combatant"
	"github.com/osse101/BattleItems_Go/internal/domain"
	"github.com/osse101/BattleItems_Go/internal/helditem"
)

// scriptedRandom returns queued values and records the bound of every Intn draw.
// Running out of values panics, which fails the test on an unexpected draw.
type scriptedRandom struct {
	ints      []int
	floats    []float64
	intBounds []int
	floatDraw int
}

func (r *scriptedRandom) Intn(n int) int {
	if len(r.ints) == 0 {
		panic(fmt.Sprintf("unexpected Intn(%d) draw", n))
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	r.intBounds = append(r.intBounds, n)
	return v
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.floats) == 0 {
		panic("unexpected Float64 draw")
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	r.floatDraw++
	return v
}

func (r *scriptedRandom) draws() int { return len(r.intBounds) + r.floatDraw }

type recordingMessenger struct {
	messages []helditem.Message
}

func (m *recordingMessenger) QueueMessage(msg helditem.Message) {
	m.messages = append(m.messages, msg)
}

func (m *recordingMessenger) texts() []string {
	texts := make([]string, 0, len(m.messages))
	for _, msg := range m.messages {
		texts = append(texts, msg.Text)
	}
	return texts
}

type recordingHealer struct {
	heals []helditem.Heal
}

func (h *recordingHealer) QueueHeal(heal helditem.Heal) {
	h.heals = append(h.heals, heal)
}

// MockTreasury is a mock implementation of helditem.Treasury
type MockTreasury struct {
	mock.Mock
}

func (m *MockTreasury) AddMoney(holder helditem.Holder, amount int) {
	m.Called(holder, amount)
}

// MockAbilityHooks is a mock implementation of helditem.AbilityHooks
type MockAbilityHooks struct {
	mock.Mock
}

func (m *MockAbilityHooks) PostItemLost(holder helditem.Holder, direct bool) {
	m.Called(holder, direct)
}

// MockBerryPreserver is a mock implementation of helditem.BerryPreserver
type MockBerryPreserver struct {
	mock.Mock
}

func (m *MockBerryPreserver) PreserveBerry(holder helditem.Holder) bool {
	args := m.Called(holder)
	return args.Bool(0)
}

// MockRefresher is a mock implementation of helditem.Refresher
type MockRefresher struct {
	mock.Mock
}

func (m *MockRefresher) RefreshHeldItems(isPlayer bool) {
	m.Called(isPlayer)
}

// MockTransferrer is a mock implementation of helditem.Transferrer
type MockTransferrer struct {
	mock.Mock
}

func (m *MockTransferrer) TransferHeldItem(id domain.HeldItemID, from, to helditem.Holder) error {
	args := m.Called(id, from, to)
	return args.Error(0)
}

// evolutionTable answers CanEvolve from a fixed set
type evolutionTable map[domain.SpeciesID]bool

func (t evolutionTable) CanEvolve(species domain.SpeciesID) bool { return t[species] }

// permissiveLimits lets a ledger hold items the catalog does not know
type permissiveLimits struct{}

func (permissiveLimits) MaxStack(domain.HeldItemID) int        { return 99 }
func (permissiveLimits) IsTransferable(domain.HeldItemID) bool { return true }
func (permissiveLimits) IsStealable(domain.HeldItemID) bool    { return true }
func (permissiveLimits) IsSuppressable(domain.HeldItemID) bool { return true }

// fixture wires an engine over the default catalog with recording collaborators
type fixture struct {
	catalog  *helditem.Catalog
	engine   *helditem.Engine
	rng      *scriptedRandom
	messages *recordingMessenger
	heals    *recordingHealer
}

type fixtureOption func(*helditem.Deps)

func newFixture(t *testing.T, opts ...fixtureOption) *fixture {
	t.Helper()
	c, err := catalog.LoadDefault()
	require.NoError(t, err)
	return newFixtureWithCatalog(t, c, opts...)
}

func newFixtureWithCatalog(t *testing.T, c *helditem.Catalog, opts ...fixtureOption) *fixture {
	t.Helper()
	f := &fixture{
		catalog:  c,
		rng:      &scriptedRandom{},
		messages: &recordingMessenger{},
		heals:    &recordingHealer{},
	}
	deps := helditem.Deps{
		Random:   f.rng,
		Messages: f.messages,
		Heals:    f.heals,
	}
	for _, opt := range opts {
		opt(&deps)
	}

	engine, err := helditem.NewEngine(c, deps)
	require.NoError(t, err)
	f.engine = engine
	return f
}

// holder creates a combatant carrying items as id/stack pairs
func (f *fixture) holder(t *testing.T, opts combatant.Options, items map[domain.HeldItemID]int) *combatant.Combatant {
	t.Helper()
	if opts.ID == "" {
		opts.ID = "holder"
	}
	if opts.Name == "" {
		opts.Name = "Pikachu"
	}
	if opts.MaxHP == 0 {
		opts.MaxHP = 100
	}
	c := combatant.New(opts, f.catalog)
	for _, id := range domain.HeldItemIDs() {
		if n, ok := items[id]; ok {
			require.True(t, c.Ledger().Add(id, n), "could not add %s", id)
		}
	}
	return c
}

// give adds items in the given order, for tests that depend on ledger order
func give(t *testing.T, c *combatant.Combatant, id domain.HeldItemID, n int) {
	t.Helper()
	require.True(t, c.Ledger().Add(id, n), "could not add %s", id)
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func boolPtr(v bool) *bool        { return &v }
