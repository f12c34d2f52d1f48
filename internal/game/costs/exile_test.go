package costs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maigus/maigus-engine-go/internal/game"
)

func TestExileSelf(t *testing.T) {
	s, alice, _ := newTestState()
	relic := addPermanent(s, "Relic", alice.ID, game.CardTypeArtifact)

	ctx := NewContext(relic.ID, alice.ID)
	_, err := NewExileSelf().Pay(s, ctx)
	require.NoError(t, err)
	assert.Equal(t, game.ZoneExile, relic.Zone)
	assert.Len(t, ctx.Tags[game.TagExiledByCost], 1)
}

func TestExileFromHandPreChosenSkipsPrompt(t *testing.T) {
	s, alice, _ := newTestState()
	a := addHandCard(s, "Force", alice.ID, game.CardTypeInstant)
	b := addHandCard(s, "Pact", alice.ID, game.CardTypeInstant)
	c := addHandCard(s, "Daze", alice.ID, game.CardTypeInstant)

	ec := NewExileFromHand(2, "")
	dm := &scriptedDecision{}
	ctx := NewContext("src", alice.ID).WithDecision(dm)
	// Three pre-chosen: only the first two are consumed.
	ctx.PreChosen = []string{a.ID, b.ID, c.ID}

	res, err := ec.Pay(s, ctx)
	require.NoError(t, err)
	assert.False(t, res.NeedsChoice)
	assert.Equal(t, game.ZoneExile, a.Zone)
	assert.Equal(t, game.ZoneExile, b.Zone)
	assert.Equal(t, game.ZoneHand, c.Zone)
	// The decision maker was never consulted.
	assert.Empty(t, dm.prompts)
}

func TestExileFromHandColorRestriction(t *testing.T) {
	s, alice, _ := newTestState()
	blue := addHandCard(s, "Counterspell", alice.ID, game.CardTypeInstant)
	blue.Colors = []string{game.ColorBlue}
	red := addHandCard(s, "Shock", alice.ID, game.CardTypeInstant)
	red.Colors = []string{game.ColorRed}

	ec := NewExileFromHand(1, game.ColorBlue)
	ctx := NewContext("src", alice.ID)
	// A pre-chosen card of the wrong color does not count.
	ctx.PreChosen = []string{red.ID}

	res, err := ec.Pay(s, ctx)
	require.NoError(t, err)
	assert.True(t, res.NeedsChoice)
	assert.Equal(t, game.ZoneHand, red.Zone)

	ctx.PreChosen = append(ctx.PreChosen, blue.ID)
	res, err = ec.Pay(s, ctx)
	require.NoError(t, err)
	assert.False(t, res.NeedsChoice)
	assert.Equal(t, game.ZoneExile, blue.Zone)
	assert.Equal(t, game.ZoneHand, red.Zone)
}

func TestExileFromHandInsufficient(t *testing.T) {
	s, alice, _ := newTestState()
	addHandCard(s, "Shock", alice.ID, game.CardTypeInstant)

	ec := NewExileFromHand(2, "")
	err := ec.CanPay(s, CheckContext{SourceID: "src", PayerID: alice.ID})
	assert.True(t, errors.Is(err, ErrInsufficientCardsToExile))
}

func TestExileFromGraveyard(t *testing.T) {
	s, alice, _ := newTestState()
	a := addGraveyardCard(s, "Bear", alice.ID, game.CardTypeCreature)
	b := addGraveyardCard(s, "Shock", alice.ID, game.CardTypeInstant)
	c := addGraveyardCard(s, "Wolf", alice.ID, game.CardTypeCreature)

	ec := NewExileFromGraveyard(2, game.CardTypeCreature)
	ctx := NewContext("src", alice.ID)
	_, err := ec.Pay(s, ctx)
	require.NoError(t, err)

	assert.Equal(t, game.ZoneExile, a.Zone)
	assert.Equal(t, game.ZoneExile, c.Zone)
	assert.Equal(t, game.ZoneGraveyard, b.Zone)
}

func TestExileFromGraveyardInsufficient(t *testing.T) {
	s, alice, _ := newTestState()
	addGraveyardCard(s, "Shock", alice.ID, game.CardTypeInstant)

	ec := NewExileFromGraveyard(1, game.CardTypeCreature)
	err := ec.CanPay(s, CheckContext{SourceID: "src", PayerID: alice.ID})
	assert.True(t, errors.Is(err, ErrInsufficientCardsInGrave))
}
