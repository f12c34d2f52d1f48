package costs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maigus/maigus-engine-go/internal/game"
)

func TestSacrificeSelf(t *testing.T) {
	s, alice, _ := newTestState()
	altar := addPermanent(s, "Blood Pet", alice.ID, game.CardTypeCreature)

	ctx := NewContext(altar.ID, alice.ID)
	_, err := NewSacrificeSelf().Pay(s, ctx)
	require.NoError(t, err)

	assert.Equal(t, game.ZoneGraveyard, altar.Zone)
	assert.True(t, alice.InGraveyard(altar.ID))

	// The pre-move snapshot is tagged for later components.
	snaps := ctx.Tags[game.TagSacrificedByCost]
	require.Len(t, snaps, 1)
	assert.Equal(t, "Blood Pet", snaps[0].Name)
	assert.Equal(t, game.ZoneBattlefield, snaps[0].Zone)
}

func TestSacrificeSelfNotControlled(t *testing.T) {
	s, alice, bob := newTestState()
	pet := addPermanent(s, "Blood Pet", bob.ID, game.CardTypeCreature)

	err := NewSacrificeSelf().CanPay(s, CheckContext{SourceID: pet.ID, PayerID: alice.ID})
	assert.True(t, errors.Is(err, ErrNoValidSacrificeTarget))
}

func TestSacrificeSuspendsForChoice(t *testing.T) {
	s, alice, _ := newTestState()
	src := addPermanent(s, "Altar", alice.ID, game.CardTypeArtifact)
	bear := addPermanent(s, "Grizzly Bears", alice.ID, game.CardTypeCreature)

	sac := NewSacrifice(FilterType(game.CardTypeCreature))
	ctx := NewContext(src.ID, alice.ID)

	res, err := sac.Pay(s, ctx)
	require.NoError(t, err)
	assert.True(t, res.NeedsChoice)
	assert.Equal(t, game.ZoneBattlefield, bear.Zone)

	// Record the choice and resume.
	ctx.PreChosen = append(ctx.PreChosen, bear.ID)
	res, err = sac.Pay(s, ctx)
	require.NoError(t, err)
	assert.False(t, res.NeedsChoice)
	assert.Equal(t, game.ZoneGraveyard, bear.Zone)
}

func TestSacrificeViaPayWithChoice(t *testing.T) {
	s, alice, _ := newTestState()
	src := addPermanent(s, "Altar", alice.ID, game.CardTypeArtifact)
	bear := addPermanent(s, "Grizzly Bears", alice.ID, game.CardTypeCreature)
	wolf := addPermanent(s, "Young Wolf", alice.ID, game.CardTypeCreature)

	sac := NewSacrifice(FilterType(game.CardTypeCreature))
	dm := &scriptedDecision{objects: []string{wolf.ID}}
	ctx := NewContext(src.ID, alice.ID).WithDecision(dm)

	require.NoError(t, PayWithChoice(s, sac, ctx))
	assert.Equal(t, game.ZoneGraveyard, wolf.Zone)
	assert.Equal(t, game.ZoneBattlefield, bear.Zone)
	assert.NotEmpty(t, dm.prompts)
}

func TestSacrificeOtherOnlyExcludesSource(t *testing.T) {
	s, alice, _ := newTestState()
	src := addPermanent(s, "Thopter", alice.ID, game.CardTypeArtifact, game.CardTypeCreature)

	sac := NewSacrifice(FilterType(game.CardTypeCreature).OtherOnly())
	err := sac.CanPay(s, CheckContext{SourceID: src.ID, PayerID: alice.ID})
	assert.True(t, errors.Is(err, ErrNoValidSacrificeTarget))
}

func TestSacrificeNoValidTarget(t *testing.T) {
	s, alice, _ := newTestState()
	addPermanent(s, "Forest", alice.ID, game.CardTypeLand)

	sac := NewSacrifice(FilterType(game.CardTypeCreature))
	err := sac.CanPay(s, CheckContext{SourceID: "src", PayerID: alice.ID})
	assert.True(t, errors.Is(err, ErrNoValidSacrificeTarget))
}
