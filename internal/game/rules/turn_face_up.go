package rules

import (
	"github.com/maigus/maigus-engine-go/internal/game"
	"github.com/maigus/maigus-engine-go/internal/game/costs"
	"github.com/maigus/maigus-engine-go/internal/game/counters"
)

func (r *Runner) canTurnFaceUp(s *game.State, playerID, cardID string, lenient bool) error {
	card, ok := s.Object(cardID)
	if !ok {
		return actionErr(CodeObjectNotFound, "card %s", cardID)
	}
	if card.Zone != game.ZoneBattlefield {
		return wrongZone(game.ZoneBattlefield, card.Zone)
	}
	if !card.FaceDown {
		return &ActionError{Code: CodeNotFaceDown, Detail: card.Name}
	}
	if card.Controller != playerID {
		return actionErr(CodeInvalidTarget, "%s does not control %s", playerID, card.Name)
	}
	if len(card.FaceUpCosts) == 0 {
		return actionErr(CodeNoSuchAbility, "%s has no face-up cost", card.Name)
	}
	if _, err := r.chooseFaceUpCost(s, playerID, card, lenient); err != nil {
		return err
	}
	return nil
}

// chooseFaceUpCost picks which of the card's face-up costs to pay: the
// cheapest one the player can afford after cost reductions, preferring
// megamorph on ties so the permanent gets its counter. The returned
// cost is the reduced one.
func (r *Runner) chooseFaceUpCost(s *game.State, playerID string, card *game.Object, lenient bool) (game.FaceUpCost, error) {
	cc := costs.CheckContext{SourceID: card.ID, PayerID: playerID}
	var (
		best    game.FaceUpCost
		found   bool
		lastErr error
	)
	for _, fc := range card.FaceUpCosts {
		fc.Cost = r.Reductions.ApplyReductions(card.ID, fc.Cost)
		if err := checkCost(s, cc, costs.FromMana(fc.Cost), lenient); err != nil {
			lastErr = err
			continue
		}
		if !found {
			best, found = fc, true
			continue
		}
		bv, cv := best.Cost.ManaValue(0), fc.Cost.ManaValue(0)
		if cv < bv || (cv == bv && fc.Megamorph && !best.Megamorph) {
			best = fc
		}
	}
	if !found {
		return game.FaceUpCost{}, lastErr
	}
	return best, nil
}

// performTurnFaceUp pays a face-up cost and turns the permanent face
// up. Megamorph costs also put a +1/+1 counter on it (Rule 702.36b).
func (r *Runner) performTurnFaceUp(s *game.State, playerID, cardID string, dm game.DecisionMaker) error {
	card, _ := s.Object(cardID)
	chosen, err := r.chooseFaceUpCost(s, playerID, card, false)
	if err != nil {
		return err
	}

	ctx := costs.NewContext(cardID, playerID).WithDecision(dm)
	r.EnterPaymentWindow()
	err = costs.PayWithChoice(s, costs.NewManaCost(chosen.Cost), ctx)
	r.ExitPaymentWindow()
	if err != nil {
		return fromPaymentError(err)
	}

	card.FaceDown = false
	if chosen.Megamorph {
		card.Counters.Add(counters.CounterTypeP1P1, 1)
		s.Emit(game.Event{
			Type:     game.EventCounterAdded,
			SourceID: cardID,
			TargetID: cardID,
			PlayerID: playerID,
			Amount:   1,
			Data:     string(counters.CounterTypeP1P1),
		})
	}
	s.Emit(game.Event{
		Type:     game.EventTurnedFaceUp,
		SourceID: cardID,
		PlayerID: playerID,
	})
	return nil
}
