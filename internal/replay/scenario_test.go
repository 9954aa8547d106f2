package replay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalScenario = `
name = "minimal"

[[holders]]
id = "a"
max_hp = 10

[[steps]]
action = "trigger"
holder = "a"
effect = "turn_heal"
`

func TestParse(t *testing.T) {
	sc, err := Parse([]byte(minimalScenario))
	require.NoError(t, err)

	assert.Equal(t, "minimal", sc.Name)
	assert.Empty(t, sc.Seed)
	require.Len(t, sc.Holders, 1)
	assert.Equal(t, 10, sc.Holders[0].MaxHP)
	require.Len(t, sc.Steps, 1)
	assert.Equal(t, ActionTrigger, sc.Steps[0].Action)
	assert.Nil(t, sc.Steps[0].Value)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "malformed toml",
			data:    `name = `,
			wantErr: "invalid replay scenario",
		},
		{
			name:    "unknown key",
			data:    minimalScenario + "\nturns = 3\n",
			wantErr: "unknown keys",
		},
		{
			name: "missing name and steps",
			data: `
[[holders]]
id = "a"
max_hp = 10
`,
			wantErr: "Name is required",
		},
		{
			name: "bad action",
			data: `
name = "x"
[[holders]]
id = "a"
max_hp = 10
[[steps]]
action = "dance"
holder = "a"
`,
			wantErr: "must be one of",
		},
		{
			name: "unknown holder",
			data: `
name = "x"
[[holders]]
id = "a"
max_hp = 10
[[steps]]
action = "trigger"
holder = "b"
effect = "turn_heal"
`,
			wantErr: `unknown holder "b"`,
		},
		{
			name: "duplicate holder",
			data: `
name = "x"
[[holders]]
id = "a"
max_hp = 10
[[holders]]
id = "a"
max_hp = 10
[[steps]]
action = "set_state"
holder = "a"
`,
			wantErr: `duplicate holder "a"`,
		},
		{
			name: "trigger without effect",
			data: `
name = "x"
[[holders]]
id = "a"
max_hp = 10
[[steps]]
action = "trigger"
holder = "a"
`,
			wantErr: "trigger step needs effect",
		},
		{
			name: "unknown effect",
			data: `
name = "x"
[[holders]]
id = "a"
max_hp = 10
[[steps]]
action = "trigger"
holder = "a"
effect = "teleport"
`,
			wantErr: "unknown effect kind",
		},
		{
			name: "unknown item",
			data: `
name = "x"
[[holders]]
id = "a"
max_hp = 10
items = [{ id = "MASTER_BALL" }]
[[steps]]
action = "set_state"
holder = "a"
`,
			wantErr: "unknown held item",
		},
		{
			name: "consume without item",
			data: `
name = "x"
[[holders]]
id = "a"
max_hp = 10
[[steps]]
action = "consume"
holder = "a"
`,
			wantErr: "consume step needs item",
		},
		{
			name: "hp above max",
			data: `
name = "x"
[[holders]]
id = "a"
hp = 20
max_hp = 10
[[steps]]
action = "set_state"
holder = "a"
`,
			wantErr: "exceeds max_hp",
		},
		{
			name: "bad stage stat",
			data: `
name = "x"
[[holders]]
id = "a"
max_hp = 10
[[steps]]
action = "set_state"
holder = "a"
stages = { LUCK = 1 }
`,
			wantErr: "unknown stat",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidScenario)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load("testdata/does_not_exist.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestStepError(t *testing.T) {
	err := NewStepError(Step{Name: "heal", Action: ActionTrigger}, 2, "bad effect", ErrInvalidScenario)
	assert.Equal(t, "step 2 'heal' (action: trigger): bad effect: invalid replay scenario", err.Error())
	assert.ErrorIs(t, err, ErrInvalidScenario)

	bare := NewStepError(Step{Action: ActionConsume}, 0, "unsupported action", nil)
	assert.Equal(t, "step 0 '' (action: consume): unsupported action", bare.Error())
}
