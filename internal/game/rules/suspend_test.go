package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maigus/maigus-engine-go/internal/game"
	"github.com/maigus/maigus-engine-go/internal/game/counters"
	"github.com/maigus/maigus-engine-go/internal/game/mana"
)

func TestSuspendExilesWithTimeCounters(t *testing.T) {
	s, alice, _ := newTestState()
	card := addHandCard(s, alice.ID, "Rift Bolt", game.CardTypeSorcery)
	card.Suspend = &game.SuspendSpec{Cost: costOf("{R}"), Count: 1}
	alice.Pool.Add(mana.ManaRed, 1)

	r := newRunner()
	action := SpecialAction{Type: SpecialActionSuspend, CardID: card.ID}
	require.NoError(t, r.CanPerform(s, alice.ID, action))
	require.NoError(t, r.Perform(s, alice.ID, action, nil))

	assert.Equal(t, game.ZoneExile, card.Zone)
	assert.True(t, card.Suspended)
	assert.Equal(t, 1, card.Counters.Count(counters.CounterTypeTime))
	assert.Equal(t, 0, alice.Pool.Total())
	assert.Equal(t, game.EventSuspended, s.Log[len(s.Log)-1].Type)
}

func TestSuspendRequiresAbility(t *testing.T) {
	s, alice, _ := newTestState()
	card := addHandCard(s, alice.ID, "Grizzly Bears", game.CardTypeCreature)

	r := newRunner()
	err := r.CanPerform(s, alice.ID, SpecialAction{Type: SpecialActionSuspend, CardID: card.ID})
	assert.ErrorIs(t, err, ErrNoSuchAbility)
}

func TestSuspendWrongZone(t *testing.T) {
	s, alice, _ := newTestState()
	card := addPermanent(s, alice.ID, "Deep-Sea Kraken", game.CardTypeCreature)
	card.Suspend = &game.SuspendSpec{Cost: costOf("{2}{U}"), Count: 9}

	r := newRunner()
	err := r.CanPerform(s, alice.ID, SpecialAction{Type: SpecialActionSuspend, CardID: card.ID})
	assert.ErrorIs(t, err, ErrWrongZone)
}

func TestSuspendNotOwner(t *testing.T) {
	s, alice, bob := newTestState()
	card := addHandCard(s, bob.ID, "Rift Bolt", game.CardTypeSorcery)
	card.Suspend = &game.SuspendSpec{Cost: costOf("{R}"), Count: 1}
	s.PriorityPlayer = alice.ID

	r := newRunner()
	err := r.CanPerform(s, alice.ID, SpecialAction{Type: SpecialActionSuspend, CardID: card.ID})
	assert.ErrorIs(t, err, ErrInvalidTarget)
}

func TestForetellExilesFaceDown(t *testing.T) {
	s, alice, _ := newTestState()
	card := addHandCard(s, alice.ID, "Behold the Multiverse", game.CardTypeInstant)
	card.HasForetell = true
	alice.Pool.Add(mana.ManaBlue, 2)

	r := newRunner()
	action := SpecialAction{Type: SpecialActionForetell, CardID: card.ID}
	require.NoError(t, r.CanPerform(s, alice.ID, action))
	require.NoError(t, r.Perform(s, alice.ID, action, nil))

	assert.Equal(t, game.ZoneExile, card.Zone)
	assert.True(t, card.FaceDown)
	assert.True(t, card.Foretold)
	assert.Equal(t, 0, alice.Pool.Total())
	assert.Equal(t, game.EventForetold, s.Log[len(s.Log)-1].Type)
}

func TestForetellRequiresOwnTurn(t *testing.T) {
	s, _, bob := newTestState()
	card := addHandCard(s, bob.ID, "Behold the Multiverse", game.CardTypeInstant)
	card.HasForetell = true
	bob.Pool.Add(mana.ManaBlue, 2)
	s.PriorityPlayer = bob.ID

	r := newRunner()
	err := r.CanPerform(s, bob.ID, SpecialAction{Type: SpecialActionForetell, CardID: card.ID})
	assert.ErrorIs(t, err, ErrNotActivePlayer)
}

func TestForetellCheckCountsPotentialMana(t *testing.T) {
	s, alice, _ := newTestState()
	card := addHandCard(s, alice.ID, "Behold the Multiverse", game.CardTypeInstant)
	card.HasForetell = true
	for _, name := range []string{"Island", "Island 2"} {
		land := addPermanent(s, alice.ID, name, game.CardTypeLand)
		land.ProducesMana = []mana.Symbol{mana.Blue}
	}

	r := newRunner()
	action := SpecialAction{Type: SpecialActionForetell, CardID: card.ID}
	assert.ErrorIs(t, r.CanPerform(s, alice.ID, action), ErrCantPayCost)
	assert.NoError(t, r.CanPerformCheck(s, alice.ID, action))
}
