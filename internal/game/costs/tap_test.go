package costs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maigus/maigus-engine-go/internal/game"
)

func TestTapCost(t *testing.T) {
	s, alice, _ := newTestState()
	land := addPermanent(s, "Forest", alice.ID, game.CardTypeLand)

	ctx := NewContext(land.ID, alice.ID)
	tap := NewTap()

	require.NoError(t, tap.CanPay(s, ctx.Check()))
	res, err := tap.Pay(s, ctx)
	require.NoError(t, err)
	assert.False(t, res.NeedsChoice)
	assert.True(t, land.Tapped)

	err = tap.CanPay(s, ctx.Check())
	assert.True(t, errors.Is(err, ErrAlreadyTapped))
}

func TestTapSummoningSickCreature(t *testing.T) {
	s, alice, _ := newTestState()
	bear := addPermanent(s, "Grizzly Bears", alice.ID, game.CardTypeCreature)
	bear.SummoningSick = true

	tap := NewTap()
	cc := CheckContext{SourceID: bear.ID, PayerID: alice.ID}
	err := tap.CanPay(s, cc)
	assert.True(t, errors.Is(err, ErrSummoningSickness))

	// Haste lifts the restriction.
	bear.Haste = true
	assert.NoError(t, tap.CanPay(s, cc))
}

func TestTapNotOnBattlefield(t *testing.T) {
	s, alice, _ := newTestState()
	card := addHandCard(s, "Forest", alice.ID, game.CardTypeLand)

	err := NewTap().CanPay(s, CheckContext{SourceID: card.ID, PayerID: alice.ID})
	assert.True(t, errors.Is(err, ErrSourceNotOnBattlefield))
}

func TestUntapCost(t *testing.T) {
	s, alice, _ := newTestState()
	land := addPermanent(s, "Island", alice.ID, game.CardTypeLand)
	untap := NewUntap()
	ctx := NewContext(land.ID, alice.ID)

	err := untap.CanPay(s, ctx.Check())
	assert.True(t, errors.Is(err, ErrAlreadyUntapped))

	land.Tapped = true
	_, err = untap.Pay(s, ctx)
	require.NoError(t, err)
	assert.False(t, land.Tapped)
}

func TestPayFailureLeavesStateUntouched(t *testing.T) {
	s, alice, _ := newTestState()
	bear := addPermanent(s, "Grizzly Bears", alice.ID, game.CardTypeCreature)
	bear.SummoningSick = true

	_, err := NewTap().Pay(s, NewContext(bear.ID, alice.ID))
	require.Error(t, err)
	assert.False(t, bear.Tapped)
	assert.Empty(t, s.Log)
}
