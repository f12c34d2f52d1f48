package costs

import (
	"github.com/maigus/maigus-engine-go/internal/game"
	"github.com/maigus/maigus-engine-go/internal/game/mana"
)

// newTestState builds a two-player state with alice holding priority.
func newTestState() (*game.State, *game.Player, *game.Player) {
	s := game.NewState()
	alice := game.NewPlayer("alice", "Alice", 20)
	bob := game.NewPlayer("bob", "Bob", 20)
	s.AddPlayer(alice)
	s.AddPlayer(bob)
	return s, alice, bob
}

func addPermanent(s *game.State, name, controller string, cardTypes ...string) *game.Object {
	o := game.NewObject(name, controller)
	o.Zone = game.ZoneBattlefield
	o.CardTypes = cardTypes
	s.AddObject(o)
	return o
}

func addHandCard(s *game.State, name, owner string, cardTypes ...string) *game.Object {
	o := game.NewObject(name, owner)
	o.Zone = game.ZoneHand
	o.CardTypes = cardTypes
	s.AddObject(o)
	return o
}

func addLibraryCard(s *game.State, name, owner string) *game.Object {
	o := game.NewObject(name, owner)
	o.Zone = game.ZoneLibrary
	s.AddObject(o)
	return o
}

func addGraveyardCard(s *game.State, name, owner string, cardTypes ...string) *game.Object {
	o := game.NewObject(name, owner)
	o.Zone = game.ZoneGraveyard
	o.CardTypes = cardTypes
	s.AddObject(o)
	return o
}

func costOf(oracle string) mana.Cost {
	return mana.MustParseCost(oracle)
}

// scriptedDecision returns fixed answers, recording the prompts it saw.
type scriptedDecision struct {
	objects      []string
	number       int
	yes          bool
	distribution map[string]int
	prompts      []string
}

func (d *scriptedDecision) ChooseObjects(prompt string, candidates []string, min, max int) []string {
	d.prompts = append(d.prompts, prompt)
	return d.objects
}

func (d *scriptedDecision) ChooseNumber(prompt string, min, max int) int {
	d.prompts = append(d.prompts, prompt)
	if d.number < min {
		return min
	}
	if d.number > max {
		return max
	}
	return d.number
}

func (d *scriptedDecision) ChooseYesNo(prompt string) bool {
	d.prompts = append(d.prompts, prompt)
	return d.yes
}

func (d *scriptedDecision) ChooseDistribution(prompt string, targets []string, total int, limits map[string]int) map[string]int {
	d.prompts = append(d.prompts, prompt)
	if d.distribution != nil {
		return d.distribution
	}
	return game.AutoDecisionMaker{Strategy: game.FallbackMaximum}.ChooseDistribution(prompt, targets, total, limits)
}

func (d *scriptedDecision) Fallback() game.FallbackStrategy {
	return game.FallbackDecline
}
