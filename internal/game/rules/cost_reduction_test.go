package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maigus/maigus-engine-go/internal/game"
	"github.com/maigus/maigus-engine-go/internal/game/costs"
	"github.com/maigus/maigus-engine-go/internal/game/mana"
)

func TestTurnFaceUpWithCostReduction(t *testing.T) {
	s, alice, _ := newTestState()
	morph := addFaceDownCreature(s, alice.ID, game.FaceUpCost{Cost: costOf("{4}")})
	alice.Pool.Add(mana.ManaColorless, 2)

	r := newRunner()
	action := SpecialAction{Type: SpecialActionTurnFaceUp, CardID: morph.ID}
	assert.ErrorIs(t, r.CanPerform(s, alice.ID, action), ErrCantPayCost)

	r.Reductions.AddReduction(&mana.CostReduction{ID: "helm", GenericReduction: 2})
	require.NoError(t, r.CanPerform(s, alice.ID, action))
	require.NoError(t, r.Perform(s, alice.ID, action, nil))

	assert.False(t, morph.FaceDown)
	assert.Equal(t, 0, alice.Pool.Total())
}

func TestSuspendWithCostReduction(t *testing.T) {
	s, alice, _ := newTestState()
	card := addHandCard(s, alice.ID, "Rift Bolt", game.CardTypeSorcery)
	card.Suspend = &game.SuspendSpec{Cost: costOf("{1}{R}"), Count: 1}
	alice.Pool.Add(mana.ManaRed, 1)

	r := newRunner()
	r.Reductions.AddReduction(&mana.CostReduction{ID: "discount", GenericReduction: 1})

	action := SpecialAction{Type: SpecialActionSuspend, CardID: card.ID}
	require.NoError(t, r.Perform(s, alice.ID, action, nil))

	assert.Equal(t, game.ZoneExile, card.Zone)
	assert.Equal(t, 0, alice.Pool.Total())
}

func TestForetellWithCostReduction(t *testing.T) {
	s, alice, _ := newTestState()
	card := addHandCard(s, alice.ID, "Alrund's Epiphany", game.CardTypeSorcery)
	card.HasForetell = true

	r := newRunner()
	action := SpecialAction{Type: SpecialActionForetell, CardID: card.ID}
	assert.ErrorIs(t, r.CanPerform(s, alice.ID, action), ErrCantPayCost)

	r.Reductions.AddReduction(&mana.CostReduction{ID: "discount", GenericReduction: 2})
	require.NoError(t, r.Perform(s, alice.ID, action, nil))

	assert.Equal(t, game.ZoneExile, card.Zone)
	assert.True(t, card.Foretold)
}

func TestActivateManaAbilityWithCostReduction(t *testing.T) {
	s, alice, _ := newTestState()
	ring := addPermanent(s, alice.ID, "Mana Ring", game.CardTypeArtifact)

	r := newRunner()
	r.Abilities.Register(ring.ID, ManaAbility{
		Cost:     costs.FromComponents(costs.NewTap(), costs.NewManaCost(costOf("{2}"))),
		Produces: []mana.Symbol{mana.Colorless},
	})

	action := SpecialAction{Type: SpecialActionActivateManaAbility, CardID: ring.ID}
	assert.ErrorIs(t, r.CanPerform(s, alice.ID, action), ErrCantPayCost)

	r.Reductions.AddReduction(&mana.CostReduction{ID: "discount", GenericReduction: 2})
	require.NoError(t, r.Perform(s, alice.ID, action, nil))

	assert.True(t, ring.Tapped)
	assert.Equal(t, 1, alice.Pool.Amount(mana.ManaColorless))
}

func TestColoredCostReduction(t *testing.T) {
	s, alice, _ := newTestState()
	morph := addFaceDownCreature(s, alice.ID, game.FaceUpCost{Cost: costOf("{G}{G}")})
	alice.Pool.Add(mana.ManaGreen, 1)

	r := newRunner()
	r.Reductions.AddReduction(&mana.CostReduction{
		ID:             "seedglaive",
		ColorReduction: map[mana.ManaType]int{mana.ManaGreen: 1},
	})

	require.NoError(t, r.Perform(s, alice.ID, SpecialAction{Type: SpecialActionTurnFaceUp, CardID: morph.ID}, nil))
	assert.False(t, morph.FaceDown)
	assert.Equal(t, 0, alice.Pool.Total())
}
