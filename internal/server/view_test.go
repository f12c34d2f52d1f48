package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maigus/maigus-engine-go/internal/engine"
	"github.com/maigus/maigus-engine-go/internal/game"
	"github.com/maigus/maigus-engine-go/internal/game/counters"
	"github.com/maigus/maigus-engine-go/internal/game/mana"
)

func viewFixture() (*game.State, *game.Object, *game.Object) {
	s := game.NewState()
	alice := game.NewPlayer("alice", "Alice", 20)
	s.AddPlayer(alice)
	alice.Pool.Add(mana.ManaGreen, 2)

	card := game.NewObject("Card in Hand", "alice")
	card.Zone = game.ZoneHand
	card.CardTypes = []string{"Instant"}
	s.AddObject(card)

	bear := game.NewObject("Grizzly Bears", "alice")
	bear.Zone = game.ZoneBattlefield
	bear.Controller = "alice"
	bear.CardTypes = []string{"Creature"}
	bear.Subtypes = []string{"Bear"}
	bear.Tapped = true
	bear.Counters.Add(counters.CounterTypeP1P1, 2)
	s.AddObject(bear)

	bolt := game.NewObject("Rift Bolt", "alice")
	bolt.Zone = game.ZoneExile
	bolt.CardTypes = []string{"Sorcery"}
	bolt.Suspended = true
	bolt.Counters.Add(counters.CounterTypeTime, 1)
	s.AddObject(bolt)

	return s, bear, bolt
}

func TestBuildView(t *testing.T) {
	s, _, _ := viewFixture()
	view := BuildView(engine.Snapshot("g1", s))

	assert.Equal(t, "g1", view.GameID)
	assert.Equal(t, "PRECOMBAT_MAIN", view.Phase)
	assert.NotEmpty(t, view.Checksum)

	require.Len(t, view.Players, 1)
	p := view.Players[0]
	assert.Equal(t, "Alice", p.Name)
	assert.Equal(t, 20, p.Life)
	assert.Equal(t, 1, p.HandCount)
	assert.Equal(t, map[string]int{"G": 2}, p.Pool)

	require.Len(t, view.Battlefield, 1)
	bear := view.Battlefield[0]
	assert.Equal(t, "Grizzly Bears", bear.Name)
	assert.Equal(t, "Creature - Bear", bear.Type)
	assert.True(t, bear.Tapped)
	assert.Equal(t, map[string]int{string(counters.CounterTypeP1P1): 2}, bear.Counters)

	require.Len(t, view.Exile, 1)
	bolt := view.Exile[0]
	assert.True(t, bolt.Suspended)
	assert.Equal(t, map[string]int{string(counters.CounterTypeTime): 1}, bolt.Counters)
}

func TestBuildViewHidesFaceDownCards(t *testing.T) {
	s, bear, _ := viewFixture()
	bear.FaceDown = true

	view := BuildView(engine.Snapshot("g1", s))

	require.Len(t, view.Battlefield, 1)
	cv := view.Battlefield[0]
	assert.True(t, cv.FaceDown)
	assert.Empty(t, cv.Name)
	assert.Empty(t, cv.Type)
	assert.Equal(t, bear.ID, cv.ID)
}

func TestBuildViewExcludesHiddenZones(t *testing.T) {
	s, _, _ := viewFixture()
	view := BuildView(engine.Snapshot("g1", s))

	for _, cv := range append(view.Battlefield, view.Exile...) {
		assert.NotEqual(t, "Card in Hand", cv.Name)
	}
}
