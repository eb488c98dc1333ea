package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTable struct {
	locations map[string][]string
}

func (s stubTable) All() []string {
	names := make([]string, 0, len(s.locations))
	for name := range s.locations {
		names = append(names, name)
	}
	return names
}

func (s stubTable) RolePool(location string) []string {
	return append([]string(nil), s.locations[location]...)
}

func testTable() stubTable {
	return stubTable{locations: map[string][]string{
		"Harbor": {"Captain", "Deckhand", "Pilot", "Cook", "Customs Officer"},
	}}
}

func threePlayers() []Player {
	return []Player{
		{ID: "p1", Name: "Alice"},
		{ID: "p2", Name: "Bob"},
		{ID: "p3", Name: "Carol"},
	}
}

func TestAssign_OneSpyAndUniqueRoles(t *testing.T) {
	players := threePlayers()
	a, err := Assign(players, testTable())
	require.NoError(t, err)

	assert.Equal(t, "Harbor", a.Location)

	pool := map[string]bool{}
	for _, role := range testTable().RolePool("Harbor") {
		pool[role] = true
	}

	spies := 0
	seen := map[string]bool{}
	for _, p := range players {
		role, ok := a.Roles[p.ID]
		require.True(t, ok, "every player gets an entry")
		if p.ID == a.SpyID {
			spies++
			assert.Equal(t, SpyRole, role)
			continue
		}
		assert.True(t, pool[role], "role %q must come from the location pool", role)
		assert.False(t, seen[role], "role %q assigned twice", role)
		seen[role] = true
	}
	assert.Equal(t, 1, spies)
}

func TestAssign_SnapshotsPlayerNames(t *testing.T) {
	a, err := Assign(threePlayers(), testTable())
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"p1": "Alice",
		"p2": "Bob",
		"p3": "Carol",
	}, a.PlayerNames)
}

func TestAssign_InsufficientPlayers(t *testing.T) {
	_, err := Assign([]Player{{ID: "p1"}, {ID: "p2"}}, testTable())
	assert.ErrorIs(t, err, ErrInsufficientPlayers)
}

func TestAssign_SpyIsAlwaysAMember(t *testing.T) {
	for i := 0; i < 25; i++ {
		a, err := Assign(threePlayers(), testTable())
		require.NoError(t, err)
		_, ok := a.PlayerNames[a.SpyID]
		assert.True(t, ok)
	}
}
