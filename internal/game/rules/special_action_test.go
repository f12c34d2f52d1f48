package rules

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRestrictions(t *testing.T) {
	tests := []struct {
		actionType SpecialActionType
		want       Restriction
	}{
		{SpecialActionPlayLand, Restriction{RequiresPriority: true, RequiresMainPhase: true, RequiresEmptyStack: true, RequiresOwnTurn: true}},
		{SpecialActionTurnFaceUp, Restriction{RequiresPriority: true}},
		{SpecialActionSuspend, Restriction{RequiresPriority: true}},
		{SpecialActionForetell, Restriction{RequiresPriority: true, RequiresOwnTurn: true}},
		{SpecialActionActivateManaAbility, Restriction{}},
	}
	for _, tt := range tests {
		t.Run(string(tt.actionType), func(t *testing.T) {
			assert.Equal(t, tt.want, GetRestrictions(tt.actionType))
		})
	}
}

func TestActionTracker(t *testing.T) {
	tracker := NewActionTracker()
	tracker.Record("alice", SpecialActionPlayLand)
	tracker.Record("alice", SpecialActionPlayLand)
	tracker.Record("bob", SpecialActionForetell)

	assert.Equal(t, 2, tracker.TakenThisTurn("alice", SpecialActionPlayLand))
	assert.Equal(t, 1, tracker.TakenThisGame("bob", SpecialActionForetell))
	assert.Equal(t, 0, tracker.TakenThisTurn("bob", SpecialActionPlayLand))

	tracker.ResetTurn()
	assert.Equal(t, 0, tracker.TakenThisTurn("alice", SpecialActionPlayLand))
	assert.Equal(t, 2, tracker.TakenThisGame("alice", SpecialActionPlayLand))

	tracker.Reset()
	assert.Equal(t, 0, tracker.TakenThisGame("alice", SpecialActionPlayLand))
}

func TestActionErrorMatching(t *testing.T) {
	err := actionErr(CodeAlreadyPlayedLand, "1 of 1 land play(s) used")
	assert.True(t, errors.Is(err, ErrAlreadyPlayedLand))
	assert.False(t, errors.Is(err, ErrWrongPhase))
	assert.Contains(t, err.Error(), "ALREADY_PLAYED_LAND")

	wz := wrongZone("HAND", "EXILE")
	assert.True(t, errors.Is(wz, ErrWrongZone))
	assert.Contains(t, wz.Error(), "expected HAND")
}

func TestUnknownActionRejected(t *testing.T) {
	s, alice, _ := newTestState()
	r := newRunner()
	err := r.CanPerform(s, alice.ID, SpecialAction{Type: "SHUFFLE"})
	assert.ErrorIs(t, err, ErrUnknownAction)
}
