package replay

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BattleItems_Go/internal/catalog"
	"github.com/osse101/BattleItems_Go/internal/domain"
	"github.com/osse101/BattleItems_Go/internal/helditem"
	"github.com/osse101/BattleItems_Go/internal/species"
	"github.com/osse101/BattleItems_Go/internal/testing/leaktest"
)

func newRunner(t *testing.T) *Runner {
	t.Helper()
	cat, err := catalog.LoadDefault()
	require.NoError(t, err)
	table, err := species.LoadDefault()
	require.NoError(t, err)
	return NewRunner(cat, table)
}

func loadScenario(t *testing.T, path string) *Scenario {
	t.Helper()
	sc, err := Load(path)
	require.NoError(t, err)
	return sc
}

func TestRunner_Run_Basic(t *testing.T) {
	runner := newRunner(t)
	sc := loadScenario(t, "testdata/basic.toml")

	result, err := runner.Run(context.Background(), sc)
	require.NoError(t, err)

	for _, step := range result.Steps {
		for _, a := range step.Assertions {
			assert.True(t, a.Passed, "step %d %s: %s", step.Index, a.Path, a.Error)
		}
	}
	require.True(t, result.Success, result.Error)
	assert.Len(t, result.Steps, len(sc.Steps))
	assert.Equal(t, "replay-basic", result.Seed)

	assert.Equal(t, []string{
		"Pikachu restored a little HP using its Leftovers!",
		"Pikachu ate its Leppa Berry!",
		"Snorlax ate its Sitrus Berry!",
		"Pikachu's Mini Black Hole absorbed Snorlax's Golden Punch!",
	}, result.Messages)
	assert.Equal(t, 3, result.ItemsLost, "two berries eaten and one item stolen")
	assert.Equal(t, 2, result.Draws, "victim and pool draws of the theft")

	require.Len(t, result.Final, 2)
	player, enemy := result.Final[0], result.Final[1]
	assert.Equal(t, 52, player.HP)
	assert.Equal(t, []ItemState{
		{ID: "LEFTOVERS", Count: 2},
		{ID: "LIGHT_BALL", Count: 1},
		{ID: "MINI_BLACK_HOLE", Count: 1},
		{ID: "GOLDEN_PUNCH", Count: 1},
	}, player.Items)
	assert.Equal(t, 150, enemy.HP)
	assert.Equal(t, 30, enemy.Money)
	assert.Equal(t, []ItemState{{ID: "GOLDEN_PUNCH", Count: 1}}, enemy.Items)
}

func TestRunner_Run_StepOutputs(t *testing.T) {
	runner := newRunner(t)
	sc := loadScenario(t, "testdata/basic.toml")

	result, err := runner.Run(context.Background(), sc)
	require.NoError(t, err)

	boost := result.Steps[1]
	require.NotNil(t, boost.Value)
	assert.InDelta(t, 100.0, *boost.Value, 1e-9)
	assert.True(t, boost.Applied)
	assert.Empty(t, boost.Messages)

	state := result.Steps[3]
	assert.Equal(t, ActionSetState, state.Action)
	assert.False(t, state.Applied)
	assert.Nil(t, state.Value)
}

func TestRunner_Run_FailedAssertionStops(t *testing.T) {
	runner := newRunner(t)
	sc := loadScenario(t, "testdata/basic.toml")
	sc.Steps[0].Assertions[1].Value = int64(99)

	result, err := runner.Run(context.Background(), sc)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Len(t, result.Steps, 1)
	assert.Equal(t, 1, result.FailedAssertions())
	failed := result.Steps[0].Assertions[1]
	assert.Equal(t, 52, failed.Actual)
	assert.Contains(t, failed.Error, "expected 99")
	assert.Contains(t, result.Error, ErrAssertionFailed.Error())
}

func TestRunner_Run_UnknownPath(t *testing.T) {
	runner := newRunner(t)
	sc := loadScenario(t, "testdata/basic.toml")
	sc.Steps[0].Assertions = []Assertion{{Type: AssertEquals, Path: "hp.nobody", Value: int64(1)}}

	result, err := runner.Run(context.Background(), sc)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Contains(t, result.Steps[0].Assertions[0].Error, "not found")
}

func TestRunner_Run_ItemMissingFromCatalog(t *testing.T) {
	runner := NewRunner(helditem.NewCatalog(), nil)
	sc := loadScenario(t, "testdata/basic.toml")

	_, err := runner.Run(context.Background(), sc)
	assert.ErrorIs(t, err, ErrInvalidScenario)
	assert.ErrorIs(t, err, domain.ErrUnknownItem)
}

func TestRunner_Run_Cancelled(t *testing.T) {
	runner := newRunner(t)
	sc := loadScenario(t, "testdata/basic.toml")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := runner.Run(ctx, sc)
	assert.True(t, errors.Is(err, context.Canceled))
	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Empty(t, result.Steps)
}

func TestRunner_Verify(t *testing.T) {
	runner := newRunner(t)

	t.Run("fixed seed", func(t *testing.T) {
		sc := loadScenario(t, "testdata/chance.toml")

		first, second, err := runner.Verify(context.Background(), sc)
		require.NoError(t, err)

		assert.True(t, first.Success, first.Error)
		assert.True(t, first.Equal(second))
		_, _, _, differs := first.Diff(second)
		assert.False(t, differs)
		assert.Positive(t, first.Draws)
	})

	t.Run("random seed is reused", func(t *testing.T) {
		sc := loadScenario(t, "testdata/chance.toml")
		sc.Seed = ""

		first, second, err := runner.Verify(context.Background(), sc)
		require.NoError(t, err)

		assert.NotEmpty(t, first.Seed)
		assert.Equal(t, first.Seed, second.Seed)
		assert.Equal(t, first.Lines(), second.Lines())
		assert.Empty(t, sc.Seed, "the caller's scenario is not modified")
	})
}

func TestResult_Diff(t *testing.T) {
	runner := newRunner(t)
	sc := loadScenario(t, "testdata/basic.toml")

	a, err := runner.Run(context.Background(), sc)
	require.NoError(t, err)

	sc.Seed = "another-seed"
	b, err := runner.Run(context.Background(), sc)
	require.NoError(t, err)

	line, x, y, differs := a.Diff(b)
	require.True(t, differs)
	assert.Equal(t, 0, line, "only the seed line differs when no outcome depends on it")
	assert.Equal(t, "seed replay-basic", x)
	assert.Equal(t, "seed another-seed", y)
	assert.False(t, a.Equal(b))
	assert.Equal(t, a.Lines()[1:], b.Lines()[1:])
}

func TestApplyState(t *testing.T) {
	runner := newRunner(t)
	hp := 0
	sc := &Scenario{
		Name: "state changes",
		Holders: []HolderSpec{
			{ID: "a", Player: true, MaxHP: 80, MovePP: []int{5}, Items: []ItemSpec{{ID: "REVIVER_SEED"}, {ID: "WHITE_HERB"}}},
			{ID: "b", MaxHP: 80},
		},
		Steps: []Step{
			{Action: ActionSetState, Holder: "a", Stages: map[string]int{"atk": -2, "spd": 1}, Status: "burn"},
			{Action: ActionTrigger, Holder: "a", Effect: "reset_negative_stat_stage", Assertions: []Assertion{
				{Type: AssertEquals, Path: "stage.a.ATK", Value: int64(0)},
				{Type: AssertEquals, Path: "stage.a.SPD", Value: int64(1)},
				{Type: AssertEquals, Path: "status.a", Value: "BURN"},
			}},
			{Action: ActionSetState, Holder: "a", HP: &hp},
			{Action: ActionTrigger, Holder: "a", Effect: "instant_revive", Assertions: []Assertion{
				{Type: AssertEquals, Path: "hp.a", Value: int64(40)},
				{Type: AssertEquals, Path: "status.a", Value: "NONE"},
				{Type: AssertEquals, Path: "stack.a.REVIVER_SEED", Value: int64(0)},
				{Type: AssertEquals, Path: "messages", Value: int64(1)},
			}},
			{Action: ActionConsume, Holder: "b", Item: "LEFTOVERS"},
		},
	}

	result, err := runner.Run(context.Background(), sc)
	require.NoError(t, err)
	for _, step := range result.Steps {
		for _, a := range step.Assertions {
			assert.True(t, a.Passed, "step %d %s: %s", step.Index, a.Path, a.Error)
		}
	}
	assert.True(t, result.Success)
	assert.Equal(t, 3, result.ItemsLost, "white herb, reviver seed and the empty consume each notify")
}

func TestShowcaseScenario(t *testing.T) {
	runner := newRunner(t)
	sc := loadScenario(t, "../../configs/scenarios/showcase.toml")

	first, second, err := runner.Verify(context.Background(), sc)
	require.NoError(t, err)

	for _, step := range first.Steps {
		for _, a := range step.Assertions {
			assert.True(t, a.Passed, "step %q %s: %s", step.Name, a.Path, a.Error)
		}
	}
	assert.True(t, first.Success, first.Error)
	assert.Len(t, first.Steps, len(sc.Steps))
	assert.True(t, first.Equal(second))
}

func TestRunner_ParallelBattlesShareCatalog(t *testing.T) {
	runner := newRunner(t)
	sc := loadScenario(t, "testdata/chance.toml")

	want, err := runner.Run(context.Background(), sc)
	require.NoError(t, err)

	results := make([]*Result, 16)
	leaktest.CheckParallel(t, len(results), func(ctx context.Context, i int) error {
		res, err := runner.Run(ctx, sc)
		results[i] = res
		return err
	})

	for i, res := range results {
		require.NotNil(t, res, "battle %d", i)
		assert.Equal(t, want.Lines(), res.Lines(), "battle %d", i)
	}
}
