package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBallot_CastBeforeOpen(t *testing.T) {
	b := NewBallot()
	assert.ErrorIs(t, b.Cast("v1", "a1"), ErrVotingNotOpen)
}

func TestBallot_RevoteOverwrites(t *testing.T) {
	b := NewBallot()
	b.Open()

	require.NoError(t, b.Cast("v1", "a1"))
	require.NoError(t, b.Cast("v1", "a2"))
	assert.Equal(t, 1, b.VoterCount())

	require.NoError(t, b.Cast("v2", "a2"))
	res, ok := b.TryResolve(2, "spy")
	require.True(t, ok)
	assert.Equal(t, "a2", res.AccusedID)
	assert.Equal(t, map[string]int{"a2": 2}, res.Tally)
}

func TestBallot_ResolvesOnlyWhenAllVoted(t *testing.T) {
	b := NewBallot()
	b.Open()
	require.NoError(t, b.Cast("v1", "a1"))

	_, ok := b.TryResolve(3, "spy")
	assert.False(t, ok)
	assert.Equal(t, BallotOpen, b.Status())
}

func TestBallot_WasSpy(t *testing.T) {
	b := NewBallot()
	b.Open()
	require.NoError(t, b.Cast("v1", "spy"))
	require.NoError(t, b.Cast("v2", "spy"))

	res, ok := b.TryResolve(2, "spy")
	require.True(t, ok)
	assert.True(t, res.WasSpy)
}

// Ties break to the first accused player to reach the winning count, in the
// order votes were cast. Deliberate, deterministic, and worth pinning down.
func TestBallot_TieBreaksToFirstAccused(t *testing.T) {
	b := NewBallot()
	b.Open()
	require.NoError(t, b.Cast("v1", "a1"))
	require.NoError(t, b.Cast("v2", "a2"))

	res, ok := b.TryResolve(2, "spy")
	require.True(t, ok)
	assert.Equal(t, "a1", res.AccusedID)
	assert.False(t, res.WasSpy)
}

func TestBallot_CastAfterResolved(t *testing.T) {
	b := NewBallot()
	b.Open()
	require.NoError(t, b.Cast("v1", "a1"))
	_, ok := b.TryResolve(1, "spy")
	require.True(t, ok)

	assert.ErrorIs(t, b.Cast("v2", "a1"), ErrVotingClosed)
	assert.Equal(t, BallotResolved, b.Status())
}

func TestBallot_WithdrawAllowsEarlyResolution(t *testing.T) {
	b := NewBallot()
	b.Open()
	require.NoError(t, b.Cast("v1", "a1"))
	require.NoError(t, b.Cast("v2", "a1"))

	// v3 never votes and leaves; the eligible count shrinks to 2.
	b.Withdraw("v3")

	res, ok := b.TryResolve(2, "spy")
	require.True(t, ok)
	assert.Equal(t, "a1", res.AccusedID)
}

func TestBallot_WithdrawRemovesPendingVote(t *testing.T) {
	b := NewBallot()
	b.Open()
	require.NoError(t, b.Cast("v1", "a1"))
	b.Withdraw("v1")

	assert.Equal(t, 0, b.VoterCount())
	_, ok := b.TryResolve(0, "spy")
	assert.False(t, ok, "a vote with no eligible voters never resolves")
}
