package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeldItemID_String(t *testing.T) {
	assert.Equal(t, "LIGHT_BALL", HeldItemLightBall.String())
	assert.Equal(t, "GIMMIGHOUL_EVO_TRACKER", HeldItemGimmighoulEvoTracker.String())
	assert.Equal(t, "HELD_ITEM(9999)", HeldItemID(9999).String())
}

func TestParseHeldItemID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    HeldItemID
		wantErr bool
	}{
		{"exact", "LEFTOVERS", HeldItemLeftovers, false},
		{"lower case", "light_ball", HeldItemLightBall, false},
		{"padded", "  KINGS_ROCK ", HeldItemKingsRock, false},
		{"none is not an item", "NONE", HeldItemNone, true},
		{"unknown", "MASTER_BALL", HeldItemNone, true},
		{"empty", "", HeldItemNone, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHeldItemID(tt.input)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownItem)
				assert.ErrorIs(t, err, ErrConfiguration)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHeldItemIDs(t *testing.T) {
	ids := HeldItemIDs()
	require.NotEmpty(t, ids)
	assert.NotContains(t, ids, HeldItemNone)
	assert.Equal(t, HeldItemSilkScarf, ids[0])
	assert.Equal(t, HeldItemApicotBerry, ids[len(ids)-1])

	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		name := id.String()
		assert.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true

		parsed, err := ParseHeldItemID(name)
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	}
}

func TestErrorFamilies(t *testing.T) {
	for _, err := range []error{ErrUnknownItem, ErrDuplicateItemID, ErrItemIDMismatch, ErrCatalogFrozen, ErrInvalidDefinition, ErrInvalidCatalog, ErrInvalidSpecies} {
		assert.True(t, errors.Is(err, ErrConfiguration), err.Error())
		assert.False(t, errors.Is(err, ErrTransferRejected), err.Error())
	}
	for _, err := range []error{ErrItemNotStealable, ErrHolderStackFull, ErrItemNotHeld} {
		assert.True(t, errors.Is(err, ErrTransferRejected), err.Error())
		assert.False(t, errors.Is(err, ErrConfiguration), err.Error())
	}
}
