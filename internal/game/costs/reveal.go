package costs

import (
	"fmt"
	"strings"

	"github.com/maigus/maigus-engine-go/internal/game"
)

// RevealFromHand reveals cards from the payer's hand, optionally
// restricted to a card type. Revealing changes visibility only; the
// cards stay in hand.
type RevealFromHand struct {
	Count    int
	CardType string
}

// NewRevealFromHand creates a reveal cost.
func NewRevealFromHand(count int, cardType string) *RevealFromHand {
	return &RevealFromHand{Count: count, CardType: cardType}
}

// CanPay implements Payer.
func (rv *RevealFromHand) CanPay(s *game.State, cc CheckContext) error {
	if _, ok := s.Player(cc.PayerID); !ok {
		return paymentErr(CodePlayerNotFound, "%s", cc.PayerID)
	}
	matching := matchingHandCards(s, cc.PayerID, cc.SourceID, rv.CardType, "")
	if len(matching) < rv.Count {
		return paymentErr(CodeInsufficientCardsToReveal, "have %d, need %d", len(matching), rv.Count)
	}
	return nil
}

// Pay implements Payer. The chosen cards are revealed in place.
func (rv *RevealFromHand) Pay(s *game.State, ctx *Context) (Result, error) {
	if err := rv.CanPay(s, ctx.Check()); err != nil {
		return Result{}, err
	}
	candidates := matchingHandCards(s, ctx.PayerID, ctx.SourceID, rv.CardType, "")
	ids := objectIDs(candidates)

	var chosen []string
	if ctx.Decision != nil {
		chosen = ctx.Decision.ChooseObjects(rv.Display(), ids, rv.Count, rv.Count)
	}
	chosen = normalizeSelection(chosen, ids, rv.Count)

	for _, id := range chosen {
		o, _ := s.Object(id)
		s.Emit(game.Event{
			Type:     game.EventReveal,
			SourceID: ctx.SourceID,
			TargetID: id,
			PlayerID: ctx.PayerID,
			Data:     o.Name,
		})
	}
	return Paid, nil
}

// Display implements Payer.
func (rv *RevealFromHand) Display() string {
	what := "card"
	if rv.CardType != "" {
		what = strings.ToLower(rv.CardType) + " card"
	}
	if rv.Count == 1 {
		return "Reveal a " + what + " from your hand"
	}
	return fmt.Sprintf("Reveal %d %ss from your hand", rv.Count, what)
}

// ProcessingMode implements Payer.
func (rv *RevealFromHand) ProcessingMode() Mode {
	return Immediate()
}
