package costs

import (
	"fmt"
	"strings"

	"github.com/maigus/maigus-engine-go/internal/game"
)

// Discard discards a number of cards, optionally restricted to a card
// type. The source card never satisfies its own discard cost.
type Discard struct {
	Count    int
	CardType string
}

// NewDiscard creates a discard cost.
func NewDiscard(count int, cardType string) *Discard {
	return &Discard{Count: count, CardType: cardType}
}

// CanPay implements Payer.
func (d *Discard) CanPay(s *game.State, cc CheckContext) error {
	if _, ok := s.Player(cc.PayerID); !ok {
		return paymentErr(CodePlayerNotFound, "%s", cc.PayerID)
	}
	matching := matchingHandCards(s, cc.PayerID, cc.SourceID, d.CardType, "")
	if len(matching) < d.Count {
		return paymentErr(CodeInsufficientCardsInHand, "have %d, need %d", len(matching), d.Count)
	}
	return nil
}

// Candidates returns the hand cards that could be discarded.
func (d *Discard) Candidates(s *game.State, cc CheckContext) []*game.Object {
	return matchingHandCards(s, cc.PayerID, cc.SourceID, d.CardType, "")
}

// Pay implements Payer. Valid pre-chosen cards are discarded
// immediately; payment suspends when more are still needed.
func (d *Discard) Pay(s *game.State, ctx *Context) (Result, error) {
	if err := d.CanPay(s, ctx.Check()); err != nil {
		return Result{}, err
	}
	p, _ := s.Player(ctx.PayerID)
	var toDiscard []*game.Object
	for _, id := range ctx.PreChosen {
		if len(toDiscard) == d.Count {
			break
		}
		o, ok := s.Object(id)
		if !ok || o.ID == ctx.SourceID || !p.InHand(o.ID) {
			continue
		}
		if d.CardType != "" && !o.IsType(d.CardType) {
			continue
		}
		toDiscard = append(toDiscard, o)
	}
	// Nothing is discarded until the full count is chosen.
	if len(toDiscard) < d.Count {
		return ChoiceNeeded(d.Display()), nil
	}
	for _, o := range toDiscard {
		discardCard(s, ctx, o)
	}
	return Paid, nil
}

// Display implements Payer.
func (d *Discard) Display() string {
	what := "card"
	if d.CardType != "" {
		what = strings.ToLower(d.CardType) + " card"
	}
	if d.Count == 1 {
		return "Discard a " + what
	}
	return fmt.Sprintf("Discard %d %ss", d.Count, what)
}

// ProcessingMode implements Payer.
func (d *Discard) ProcessingMode() Mode {
	return DiscardCardsMode(d.Count, d.CardType)
}

// DiscardHand discards the payer's whole hand. Always legal, even
// with an empty hand.
type DiscardHand struct{}

// NewDiscardHand creates a discard-your-hand cost.
func NewDiscardHand() *DiscardHand {
	return &DiscardHand{}
}

// CanPay implements Payer.
func (d *DiscardHand) CanPay(s *game.State, cc CheckContext) error {
	if _, ok := s.Player(cc.PayerID); !ok {
		return paymentErr(CodePlayerNotFound, "%s", cc.PayerID)
	}
	return nil
}

// Pay implements Payer.
func (d *DiscardHand) Pay(s *game.State, ctx *Context) (Result, error) {
	if err := d.CanPay(s, ctx.Check()); err != nil {
		return Result{}, err
	}
	p, _ := s.Player(ctx.PayerID)
	for _, id := range append([]string(nil), p.Hand...) {
		if o, ok := s.Object(id); ok {
			discardCard(s, ctx, o)
		}
	}
	return Paid, nil
}

// Display implements Payer.
func (d *DiscardHand) Display() string {
	return "Discard your hand"
}

// ProcessingMode implements Payer.
func (d *DiscardHand) ProcessingMode() Mode {
	return Immediate()
}

// DiscardSource discards the source card itself from hand.
type DiscardSource struct{}

// NewDiscardSource creates a discard-this-card cost.
func NewDiscardSource() *DiscardSource {
	return &DiscardSource{}
}

// CanPay implements Payer.
func (d *DiscardSource) CanPay(s *game.State, cc CheckContext) error {
	p, ok := s.Player(cc.PayerID)
	if !ok {
		return paymentErr(CodePlayerNotFound, "%s", cc.PayerID)
	}
	if _, ok := s.Object(cc.SourceID); !ok {
		return paymentErr(CodeSourceNotFound, "%s", cc.SourceID)
	}
	if !p.InHand(cc.SourceID) {
		return paymentErr(CodeInsufficientCardsInHand, "source not in hand")
	}
	return nil
}

// Pay implements Payer.
func (d *DiscardSource) Pay(s *game.State, ctx *Context) (Result, error) {
	if err := d.CanPay(s, ctx.Check()); err != nil {
		return Result{}, err
	}
	o, _ := s.Object(ctx.SourceID)
	discardCard(s, ctx, o)
	return Paid, nil
}

// Display implements Payer.
func (d *DiscardSource) Display() string {
	return "Discard this card"
}

// ProcessingMode implements Payer.
func (d *DiscardSource) ProcessingMode() Mode {
	return Immediate()
}
