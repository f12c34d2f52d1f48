package costs

import (
	"github.com/maigus/maigus-engine-go/internal/game"
)

// ReturnSelfToHand returns the source permanent to its owner's hand.
type ReturnSelfToHand struct{}

// NewReturnSelfToHand creates a return-source-to-hand cost.
func NewReturnSelfToHand() *ReturnSelfToHand {
	return &ReturnSelfToHand{}
}

// CanPay implements Payer.
func (rs *ReturnSelfToHand) CanPay(s *game.State, cc CheckContext) error {
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
func (rs *ReturnSelfToHand) Pay(s *game.State, ctx *Context) (Result, error) {
	if err := rs.CanPay(s, ctx.Check()); err != nil {
		return Result{}, err
	}
	o, _ := s.Object(ctx.SourceID)
	returnToHand(s, ctx, o)
	return Paid, nil
}

// Display implements Payer.
func (rs *ReturnSelfToHand) Display() string {
	return "Return this permanent to its owner's hand"
}

// ProcessingMode implements Payer.
func (rs *ReturnSelfToHand) ProcessingMode() Mode {
	return Immediate()
}

// ReturnToHand returns a controlled permanent matching a filter to
// its owner's hand. Pre-chosen permanents skip the prompt; otherwise
// the decision maker picks, falling back to the first candidate.
type ReturnToHand struct {
	Filter *PermanentFilter
}

// NewReturnToHand creates a return-to-hand cost for permanents
// matching filter.
func NewReturnToHand(filter *PermanentFilter) *ReturnToHand {
	if filter == nil {
		filter = AnyPermanent()
	}
	return &ReturnToHand{Filter: filter}
}

// CanPay implements Payer.
func (rt *ReturnToHand) CanPay(s *game.State, cc CheckContext) error {
	if _, ok := s.Player(cc.PayerID); !ok {
		return paymentErr(CodePlayerNotFound, "%s", cc.PayerID)
	}
	if len(rt.ValidTargets(s, cc)) == 0 {
		return paymentErr(CodeNoValidReturnTarget, "no %s to return", rt.Filter.Describe())
	}
	return nil
}

// ValidTargets returns the permanents the payer could return, in
// battlefield order.
func (rt *ReturnToHand) ValidTargets(s *game.State, cc CheckContext) []*game.Object {
	var out []*game.Object
	for _, o := range s.BattlefieldControlledBy(cc.PayerID) {
		if rt.Filter.Matches(o, cc.PayerID, cc.SourceID) {
			out = append(out, o)
		}
	}
	return out
}

// Pay implements Payer.
func (rt *ReturnToHand) Pay(s *game.State, ctx *Context) (Result, error) {
	if err := rt.CanPay(s, ctx.Check()); err != nil {
		return Result{}, err
	}
	for _, id := range ctx.PreChosen {
		o, ok := s.Object(id)
		if ok && rt.Filter.Matches(o, ctx.PayerID, ctx.SourceID) {
			returnToHand(s, ctx, o)
			return Paid, nil
		}
	}

	targets := rt.ValidTargets(s, ctx.Check())
	ids := objectIDs(targets)
	var chosen []string
	if ctx.Decision != nil {
		chosen = ctx.Decision.ChooseObjects(rt.Display(), ids, 1, 1)
	}
	chosen = normalizeSelection(chosen, ids, 1)
	o, _ := s.Object(chosen[0])
	returnToHand(s, ctx, o)
	return Paid, nil
}

// Display implements Payer.
func (rt *ReturnToHand) Display() string {
	return "Return " + rt.Filter.Describe() + " you control to its owner's hand"
}

// ProcessingMode implements Payer.
func (rt *ReturnToHand) ProcessingMode() Mode {
	return Immediate()
}
