package costs

import (
	"fmt"

	"github.com/maigus/maigus-engine-go/internal/game"
)

// ExileSelf exiles the source permanent from the battlefield.
type ExileSelf struct{}

// NewExileSelf creates an exile-source cost.
func NewExileSelf() *ExileSelf {
	return &ExileSelf{}
}

// CanPay implements Payer.
func (ec *ExileSelf) CanPay(s *game.State, cc CheckContext) error {
	o, ok := s.Object(cc.SourceID)
	if !ok {
		return paymentErr(CodeSourceNotFound, "%s", cc.SourceID)
	}
	if o.Zone != game.ZoneBattlefield {
		return paymentErr(CodeSourceNotOnBattlefield, "%s is in %s", o.Name, o.Zone)
	}
	return nil
}

// Pay implements Payer.
func (ec *ExileSelf) Pay(s *game.State, ctx *Context) (Result, error) {
	if err := ec.CanPay(s, ctx.Check()); err != nil {
		return Result{}, err
	}
	o, _ := s.Object(ctx.SourceID)
	exileCard(s, ctx, o)
	return Paid, nil
}

// Display implements Payer.
func (ec *ExileSelf) Display() string {
	return "Exile this permanent"
}

// ProcessingMode implements Payer.
func (ec *ExileSelf) ProcessingMode() Mode {
	return Immediate()
}

// ExileFromGraveyard exiles cards from the payer's graveyard,
// optionally restricted to a card type. Choices resolve through the
// context's decision maker; without one the newest matching cards are
// taken.
type ExileFromGraveyard struct {
	Count    int
	CardType string
}

// NewExileFromGraveyard creates an exile-from-graveyard cost.
func NewExileFromGraveyard(count int, cardType string) *ExileFromGraveyard {
	return &ExileFromGraveyard{Count: count, CardType: cardType}
}

// CanPay implements Payer.
func (ec *ExileFromGraveyard) CanPay(s *game.State, cc CheckContext) error {
	if _, ok := s.Player(cc.PayerID); !ok {
		return paymentErr(CodePlayerNotFound, "%s", cc.PayerID)
	}
	if len(ec.candidates(s, cc)) < ec.Count {
		return paymentErr(CodeInsufficientCardsInGrave, "need %d", ec.Count)
	}
	return nil
}

func (ec *ExileFromGraveyard) candidates(s *game.State, cc CheckContext) []*game.Object {
	p, ok := s.Player(cc.PayerID)
	if !ok {
		return nil
	}
	var out []*game.Object
	for _, id := range p.Graveyard {
		o, ok := s.Object(id)
		if !ok {
			continue
		}
		if ec.CardType != "" && !o.IsType(ec.CardType) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// Pay implements Payer.
func (ec *ExileFromGraveyard) Pay(s *game.State, ctx *Context) (Result, error) {
	if err := ec.CanPay(s, ctx.Check()); err != nil {
		return Result{}, err
	}
	candidates := ec.candidates(s, ctx.Check())
	ids := objectIDs(candidates)

	var chosen []string
	if ctx.Decision != nil {
		chosen = ctx.Decision.ChooseObjects(ec.Display(), ids, ec.Count, ec.Count)
	}
	chosen = normalizeSelection(chosen, ids, ec.Count)

	for _, id := range chosen {
		if o, ok := s.Object(id); ok {
			exileCard(s, ctx, o)
		}
	}
	return Paid, nil
}

// Display implements Payer.
func (ec *ExileFromGraveyard) Display() string {
	what := "card"
	if ec.CardType != "" {
		what = ec.CardType + " card"
	}
	if ec.Count == 1 {
		return fmt.Sprintf("Exile a %s from your graveyard", what)
	}
	return fmt.Sprintf("Exile %d %ss from your graveyard", ec.Count, what)
}

// ProcessingMode implements Payer.
func (ec *ExileFromGraveyard) ProcessingMode() Mode {
	return Immediate()
}

// ExileFromHand exiles non-source cards from the payer's hand,
// optionally restricted to a color. Pre-chosen IDs are exiled without
// prompting; payment suspends when more are still needed.
type ExileFromHand struct {
	Count int
	Color string
}

// NewExileFromHand creates an exile-from-hand cost.
func NewExileFromHand(count int, color string) *ExileFromHand {
	return &ExileFromHand{Count: count, Color: color}
}

// CanPay implements Payer.
func (ec *ExileFromHand) CanPay(s *game.State, cc CheckContext) error {
	if _, ok := s.Player(cc.PayerID); !ok {
		return paymentErr(CodePlayerNotFound, "%s", cc.PayerID)
	}
	matching := matchingHandCards(s, cc.PayerID, cc.SourceID, "", ec.Color)
	if len(matching) < ec.Count {
		return paymentErr(CodeInsufficientCardsToExile, "have %d, need %d", len(matching), ec.Count)
	}
	return nil
}

// Candidates returns the hand cards that could be exiled.
func (ec *ExileFromHand) Candidates(s *game.State, cc CheckContext) []*game.Object {
	return matchingHandCards(s, cc.PayerID, cc.SourceID, "", ec.Color)
}

// Pay implements Payer. The first Count valid pre-chosen cards are
// exiled without prompting.
func (ec *ExileFromHand) Pay(s *game.State, ctx *Context) (Result, error) {
	if err := ec.CanPay(s, ctx.Check()); err != nil {
		return Result{}, err
	}
	p, _ := s.Player(ctx.PayerID)
	var toExile []*game.Object
	for _, id := range ctx.PreChosen {
		if len(toExile) == ec.Count {
			break
		}
		o, ok := s.Object(id)
		if !ok || o.ID == ctx.SourceID || !p.InHand(o.ID) {
			continue
		}
		if ec.Color != "" && !o.HasColor(ec.Color) {
			continue
		}
		toExile = append(toExile, o)
	}
	// Nothing is exiled until the full count is chosen.
	if len(toExile) < ec.Count {
		return ChoiceNeeded(ec.Display()), nil
	}
	for _, o := range toExile {
		exileCard(s, ctx, o)
	}
	return Paid, nil
}

// Display implements Payer.
func (ec *ExileFromHand) Display() string {
	what := "card"
	if ec.Color != "" {
		what = colorName(ec.Color) + " card"
	}
	if ec.Count == 1 {
		return fmt.Sprintf("Exile a %s from your hand", what)
	}
	return fmt.Sprintf("Exile %d %ss from your hand", ec.Count, what)
}

// ProcessingMode implements Payer.
func (ec *ExileFromHand) ProcessingMode() Mode {
	return ExileFromHandMode(ec.Count, ec.Color)
}

func colorName(letter string) string {
	switch letter {
	case game.ColorWhite:
		return "white"
	case game.ColorBlue:
		return "blue"
	case game.ColorBlack:
		return "black"
	case game.ColorRed:
		return "red"
	case game.ColorGreen:
		return "green"
	default:
		return letter
	}
}
