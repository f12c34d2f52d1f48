package rules

import (
	"github.com/maigus/maigus-engine-go/internal/game"
	"github.com/maigus/maigus-engine-go/internal/game/mana"
)

func newTestState() (*game.State, *game.Player, *game.Player) {
	s := game.NewState()
	alice := game.NewPlayer("alice", "Alice", 20)
	bob := game.NewPlayer("bob", "Bob", 20)
	s.AddPlayer(alice)
	s.AddPlayer(bob)
	return s, alice, bob
}

func addHandCard(s *game.State, owner, name string, cardTypes ...string) *game.Object {
	o := game.NewObject(name, owner)
	o.Zone = game.ZoneHand
	o.CardTypes = cardTypes
	s.AddObject(o)
	return o
}

func addPermanent(s *game.State, controller, name string, cardTypes ...string) *game.Object {
	o := game.NewObject(name, controller)
	o.Zone = game.ZoneBattlefield
	o.CardTypes = cardTypes
	s.AddObject(o)
	return o
}

func costOf(oracle string) mana.Cost {
	return mana.MustParseCost(oracle)
}

func newRunner() *Runner {
	return NewRunner(nil)
}
