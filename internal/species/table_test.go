package species

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BattleItems_Go/internal/domain"
)

func TestParse(t *testing.T) {
	t.Run("valid table", func(t *testing.T) {
		table, err := Parse([]byte(`
version: "2.1"
species:
  - id: PICHU
    evolves_to: [PIKACHU]
  - id: PIKACHU
    evolves_to: [RAICHU]
  - id: RAICHU
`))
		require.NoError(t, err)
		assert.Equal(t, "2.1", table.Version())
		assert.Equal(t, 3, table.Len())
		assert.True(t, table.CanEvolve("PICHU"))
		assert.True(t, table.CanEvolve("PIKACHU"))
		assert.False(t, table.CanEvolve("RAICHU"))
		assert.False(t, table.CanEvolve("MEW"))
		assert.False(t, table.Known("MEW"))
		assert.Equal(t, []domain.SpeciesID{"RAICHU"}, table.EvolutionsOf("PIKACHU"))
		assert.Empty(t, table.EvolutionsOf("RAICHU"))
	})

	tests := []struct {
		name   string
		yaml   string
		errMsg string
	}{
		{name: "malformed", yaml: "species: [", errMsg: "failed to parse species YAML"},
		{name: "empty", yaml: "version: \"1.0\"\n", errMsg: "no species defined"},
		{name: "missing id", yaml: "species:\n  - evolves_to: [A]\n", errMsg: "has no id"},
		{name: "duplicate", yaml: "species:\n  - id: A\n  - id: A\n", errMsg: "duplicate species 'A'"},
		{name: "unknown target", yaml: "species:\n  - id: A\n    evolves_to: [B]\n", errMsg: "unknown species 'B'"},
		{name: "self evolution", yaml: "species:\n  - id: A\n    evolves_to: [A]\n", errMsg: "evolves into itself"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidSpecies)
			assert.ErrorIs(t, err, domain.ErrConfiguration)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestEvolutionsOfReturnsCopy(t *testing.T) {
	table, err := Parse([]byte("species:\n  - id: A\n    evolves_to: [B]\n  - id: B\n"))
	require.NoError(t, err)

	evos := table.EvolutionsOf("A")
	evos[0] = "Z"
	assert.Equal(t, []domain.SpeciesID{"B"}, table.EvolutionsOf("A"))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "species.yaml")
	require.NoError(t, os.WriteFile(path, []byte("species:\n  - id: DITTO\n"), 0o600))

	table, err := Load(path)
	require.NoError(t, err)
	assert.True(t, table.Known("DITTO"))

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadDefault(t *testing.T) {
	table, err := LoadDefault()
	require.NoError(t, err)

	assert.True(t, table.CanEvolve("PIKACHU"))
	assert.True(t, table.CanEvolve("GIMMIGHOUL"))
	assert.True(t, table.CanEvolve("CHANSEY"))
	assert.False(t, table.CanEvolve("DITTO"))
	assert.False(t, table.CanEvolve("BLISSEY"))
	assert.ElementsMatch(t, []domain.SpeciesID{"RAICHU", "ALOLA_RAICHU"}, table.EvolutionsOf("PIKACHU"))
}
