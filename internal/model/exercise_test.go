package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMuscleGroup(t *testing.T) {
	for _, in := range []string{"CHEST", "chest", " Chest ", "full_body", "CARDIO"} {
		g, ok := ParseMuscleGroup(in)
		require.True(t, ok, "input %q", in)
		require.True(t, g.Valid())
	}

	_, ok := ParseMuscleGroup("biceps")
	require.False(t, ok)
	_, ok = ParseMuscleGroup("")
	require.False(t, ok)
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory("hiit")
	require.True(t, ok)
	require.Equal(t, CategoryHIIT, c)

	_, ok = ParseCategory("crossfit")
	require.False(t, ok)
}

func TestRoleValid(t *testing.T) {
	require.True(t, RoleUser.Valid())
	require.True(t, RoleAdmin.Valid())
	require.False(t, Role("SUPERADMIN").Valid())
}
