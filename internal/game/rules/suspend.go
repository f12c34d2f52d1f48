package rules

import (
	"github.com/maigus/maigus-engine-go/internal/game"
	"github.com/maigus/maigus-engine-go/internal/game/costs"
	"github.com/maigus/maigus-engine-go/internal/game/counters"
	"github.com/maigus/maigus-engine-go/internal/game/mana"
)

// foretellCost is the fixed exile cost of foretell (Rule 702.143a).
var foretellCost = mana.MustParseCost("{2}")

func (r *Runner) canSuspend(s *game.State, playerID, cardID string, lenient bool) error {
	card, ok := s.Object(cardID)
	if !ok {
		return actionErr(CodeObjectNotFound, "card %s", cardID)
	}
	if card.Zone != game.ZoneHand {
		return wrongZone(game.ZoneHand, card.Zone)
	}
	if card.Owner != playerID {
		return actionErr(CodeInvalidTarget, "%s does not own %s", playerID, card.Name)
	}
	if card.Suspend == nil {
		return actionErr(CodeNoSuchAbility, "%s has no suspend cost", card.Name)
	}
	cc := costs.CheckContext{SourceID: cardID, PayerID: playerID}
	suspendCost := r.Reductions.ApplyReductions(cardID, card.Suspend.Cost)
	return checkCost(s, cc, costs.FromMana(suspendCost), lenient)
}

// performSuspend pays the suspend cost and exiles the card with its
// time counters (Rule 702.62a).
func (r *Runner) performSuspend(s *game.State, playerID, cardID string, dm game.DecisionMaker) error {
	card, _ := s.Object(cardID)
	spec := card.Suspend

	ctx := costs.NewContext(cardID, playerID).WithDecision(dm)
	r.EnterPaymentWindow()
	err := costs.PayWithChoice(s, costs.NewManaCost(r.Reductions.ApplyReductions(cardID, spec.Cost)), ctx)
	r.ExitPaymentWindow()
	if err != nil {
		return fromPaymentError(err)
	}

	if err := s.MoveZone(cardID, game.ZoneExile); err != nil {
		return actionErr(CodeObjectNotFound, "%v", err)
	}
	card.Suspended = true
	card.Counters.Add(counters.CounterTypeTime, spec.Count)

	s.Emit(game.Event{
		Type:     game.EventSuspended,
		SourceID: cardID,
		PlayerID: playerID,
		Amount:   spec.Count,
	})
	return nil
}

func (r *Runner) canForetell(s *game.State, playerID, cardID string, lenient bool) error {
	card, ok := s.Object(cardID)
	if !ok {
		return actionErr(CodeObjectNotFound, "card %s", cardID)
	}
	if card.Zone != game.ZoneHand {
		return wrongZone(game.ZoneHand, card.Zone)
	}
	if card.Owner != playerID {
		return actionErr(CodeInvalidTarget, "%s does not own %s", playerID, card.Name)
	}
	if !card.HasForetell {
		return actionErr(CodeNoSuchAbility, "%s has no foretell ability", card.Name)
	}
	cc := costs.CheckContext{SourceID: cardID, PayerID: playerID}
	return checkCost(s, cc, costs.FromMana(r.Reductions.ApplyReductions(cardID, foretellCost)), lenient)
}

// performForetell pays {2} and exiles the card face down, marking it
// foretold so it can be cast for its foretell cost later.
func (r *Runner) performForetell(s *game.State, playerID, cardID string, dm game.DecisionMaker) error {
	card, _ := s.Object(cardID)

	ctx := costs.NewContext(cardID, playerID).WithDecision(dm)
	r.EnterPaymentWindow()
	err := costs.PayWithChoice(s, costs.NewManaCost(r.Reductions.ApplyReductions(cardID, foretellCost)), ctx)
	r.ExitPaymentWindow()
	if err != nil {
		return fromPaymentError(err)
	}

	if err := s.MoveZone(cardID, game.ZoneExile); err != nil {
		return actionErr(CodeObjectNotFound, "%v", err)
	}
	card.FaceDown = true
	card.Foretold = true

	s.Emit(game.Event{
		Type:     game.EventForetold,
		SourceID: cardID,
		PlayerID: playerID,
	})
	return nil
}
