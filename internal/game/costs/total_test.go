package costs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maigus/maigus-engine-go/internal/game"
	"github.com/maigus/maigus-engine-go/internal/game/mana"
)

func TestValidateRejectsUnpayableComponent(t *testing.T) {
	s, alice, _ := newTestState()
	land := addPermanent(s, "Mine", alice.ID, game.CardTypeLand)
	alice.Pool.Add(mana.ManaRed, 1)

	// Tap is payable, the life payment is not.
	alice.Life = 2
	total := FromComponents(NewTap(), NewPayLife(5), NewManaCost(costOf("{R}")))

	cc := CheckContext{SourceID: land.ID, PayerID: alice.ID}
	_, err := Validate(s, cc, total)
	assert.True(t, errors.Is(err, ErrInsufficientLife))

	// Nothing was paid: legality checks never mutate.
	assert.False(t, land.Tapped)
	assert.Equal(t, 1, alice.Pool.Amount(mana.ManaRed))
	assert.Equal(t, 2, alice.Life)
}

func TestPayAllInDeclarationOrder(t *testing.T) {
	s, alice, _ := newTestState()
	land := addPermanent(s, "Mine", alice.ID, game.CardTypeLand)
	alice.Pool.Add(mana.ManaRed, 1)

	total := FromComponents(NewTap(), NewPayLife(1), NewManaCost(costOf("{R}")))
	cc := CheckContext{SourceID: land.ID, PayerID: alice.ID}

	vc, err := Validate(s, cc, total)
	require.NoError(t, err)
	require.NoError(t, vc.PayAll(s, NewContext(land.ID, alice.ID)))

	assert.True(t, land.Tapped)
	assert.Equal(t, 19, alice.Life)
	assert.True(t, alice.Pool.IsEmpty())

	// The log reflects pay order.
	var types []game.EventType
	for _, e := range s.Log {
		types = append(types, e.Type)
	}
	assert.Equal(t, []game.EventType{
		game.EventTapped,
		game.EventLifePaid,
		game.EventManaPaid,
	}, types)
}

func TestPayAllResolvesChoices(t *testing.T) {
	s, alice, _ := newTestState()
	src := addPermanent(s, "Altar", alice.ID, game.CardTypeArtifact)
	bear := addPermanent(s, "Bear", alice.ID, game.CardTypeCreature)

	total := FromComponents(NewSacrifice(FilterType(game.CardTypeCreature)), NewPayLife(1))
	cc := CheckContext{SourceID: src.ID, PayerID: alice.ID}

	vc, err := Validate(s, cc, total)
	require.NoError(t, err)
	require.NoError(t, vc.PayAll(s, NewContext(src.ID, alice.ID)))

	assert.Equal(t, game.ZoneGraveyard, bear.Zone)
	assert.Equal(t, 19, alice.Life)
}

func TestTotalCostDisplay(t *testing.T) {
	assert.Equal(t, "Free", Free().Display())

	total := FromComponents(NewTap(), NewPayLife(2), NewSacrificeSelf())
	assert.Equal(t, "{T}, Pay 2 life, Sacrifice this permanent", total.Display())
}

func TestTotalCostManaCost(t *testing.T) {
	total := FromComponents(NewTap(), NewManaCost(costOf("{1}{G}")))
	cost, ok := total.ManaCost()
	require.True(t, ok)
	assert.Equal(t, "{1}{G}", cost.String())

	_, ok = FromComponents(NewTap()).ManaCost()
	assert.False(t, ok)
}

func TestFromMana(t *testing.T) {
	total := FromMana(costOf("{2}{U}"))
	require.Len(t, total.Components(), 1)
	assert.False(t, total.IsFree())
	assert.Equal(t, "{2}{U}", total.Display())
}
