package locations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_SortedAndNonEmpty(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)

	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1], all[i], "locations should come back sorted")
	}
}

func TestRolePool_EnoughDistinctRoles(t *testing.T) {
	for _, location := range All() {
		pool := RolePool(location)
		require.GreaterOrEqual(t, len(pool), 13, "pool too small for %s", location)

		seen := make(map[string]bool, len(pool))
		for _, role := range pool {
			assert.False(t, seen[role], "duplicate role %q in %s", role, location)
			assert.NotEqual(t, "Spy", role, "the spy marker must not be a real role")
			seen[role] = true
		}
	}
}

func TestRolePool_ReturnsCopy(t *testing.T) {
	pool := RolePool("Hospital")
	require.NotEmpty(t, pool)
	pool[0] = "mutated"

	assert.NotEqual(t, "mutated", RolePool("Hospital")[0])
}

func TestRolePool_UnknownLocation(t *testing.T) {
	assert.Nil(t, RolePool("Atlantis"))
}
