package grammar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlot(t *testing.T) {
	tests := []struct {
		token         string
		expectedNames []string
		expectedRole  Role
	}{
		{"room", []string{"room"}, RoleNone},
		{"roomSRC", []string{"room"}, RoleSource},
		{"roomDEST", []string{"room"}, RoleDestination},
		{"loc_roomSRC", []string{"loc", "room"}, RoleSource},
		{"loc2_room2DEST", []string{"loc2", "room2"}, RoleDestination},
		{"gestPers_posePers", []string{"gestPers", "posePers"}, RoleNone},
		{"art", []string{"art"}, RoleNone},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			slot, err := ParseSlot(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.token, slot.Token)
			assert.Equal(t, tt.expectedNames, slot.Names)
			assert.Equal(t, tt.expectedRole, slot.Role)
		})
	}
}

func TestParseSlot_Invalid(t *testing.T) {
	for _, token := range []string{"a_b_c", "_room", "room_", "SRC"} {
		t.Run(token, func(t *testing.T) {
			_, err := ParseSlot(token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnknownPlaceholder))
		})
	}
}

func TestCompileTemplate(t *testing.T) {
	parts, err := compileTemplate("{takeVerb} it {onLocPrep} the {plcmtLoc2DEST}")
	require.NoError(t, err)
	require.Len(t, parts, 5)

	assert.Equal(t, "takeVerb", parts[0].Slot.Token)
	assert.Equal(t, " it ", parts[1].Text)
	assert.Nil(t, parts[1].Slot)
	assert.Equal(t, "onLocPrep", parts[2].Slot.Token)
	assert.Equal(t, " the ", parts[3].Text)
	assert.Equal(t, []string{"plcmtLoc2"}, parts[4].Slot.Names)
	assert.Equal(t, RoleDestination, parts[4].Slot.Role)
}

func TestCompileTemplate_LiteralOnly(t *testing.T) {
	parts, err := compileTemplate("follow them")
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, "follow them", parts[0].Text)
}

func TestCompileTemplate_Malformed(t *testing.T) {
	for _, tmpl := range []string{"{takeVerb", "take} it", "{take verb}", "{}", "a } {b}"} {
		t.Run(tmpl, func(t *testing.T) {
			_, err := compileTemplate(tmpl)
			assert.Error(t, err)
		})
	}
}
