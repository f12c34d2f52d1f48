package costs

import (
	"github.com/maigus/maigus-engine-go/internal/game"
)

// SacrificeSelf sacrifices the source permanent. Because the
// permanent hits the graveyard mid-payment, the component reports
// InlineWithTriggers: the orchestrator must process death triggers
// synchronously before the next component pays.
type SacrificeSelf struct{}

// NewSacrificeSelf creates a sacrifice-source cost.
func NewSacrificeSelf() *SacrificeSelf {
	return &SacrificeSelf{}
}

// CanPay implements Payer.
func (sc *SacrificeSelf) CanPay(s *game.State, cc CheckContext) error {
	o, ok := s.Object(cc.SourceID)
	if !ok {
		return paymentErr(CodeSourceNotFound, "%s", cc.SourceID)
	}
	if o.Zone != game.ZoneBattlefield {
		return paymentErr(CodeSourceNotOnBattlefield, "%s is in %s", o.Name, o.Zone)
	}
	if o.Controller != cc.PayerID {
		return paymentErr(CodeNoValidSacrificeTarget, "%s is not controlled by payer", o.Name)
	}
	return nil
}

// Pay implements Payer. The pre-move snapshot is tagged so effects
// that reference the sacrificed permanent see last known information.
func (sc *SacrificeSelf) Pay(s *game.State, ctx *Context) (Result, error) {
	if err := sc.CanPay(s, ctx.Check()); err != nil {
		return Result{}, err
	}
	o, _ := s.Object(ctx.SourceID)
	sacrificePermanent(s, ctx, o)
	return Paid, nil
}

// Display implements Payer.
func (sc *SacrificeSelf) Display() string {
	return "Sacrifice this permanent"
}

// ProcessingMode implements Payer.
func (sc *SacrificeSelf) ProcessingMode() Mode {
	return InlineWithTriggers()
}

// Sacrifice sacrifices a permanent matching a filter, chosen by the
// payer. Pay suspends with NeedsChoice; the orchestrator gathers the
// choice and performs the removal.
type Sacrifice struct {
	Filter *PermanentFilter
}

// NewSacrifice creates a sacrifice cost for permanents matching filter.
func NewSacrifice(filter *PermanentFilter) *Sacrifice {
	if filter == nil {
		filter = AnyPermanent()
	}
	return &Sacrifice{Filter: filter}
}

// CanPay implements Payer: at least one matching controlled permanent
// must exist.
func (sc *Sacrifice) CanPay(s *game.State, cc CheckContext) error {
	if _, ok := s.Player(cc.PayerID); !ok {
		return paymentErr(CodePlayerNotFound, "%s", cc.PayerID)
	}
	if len(sc.ValidTargets(s, cc)) == 0 {
		return paymentErr(CodeNoValidSacrificeTarget, "no %s to sacrifice", sc.Filter.Describe())
	}
	return nil
}

// ValidTargets returns the permanents the payer could sacrifice, in
// battlefield order.
func (sc *Sacrifice) ValidTargets(s *game.State, cc CheckContext) []*game.Object {
	var out []*game.Object
	for _, o := range s.BattlefieldControlledBy(cc.PayerID) {
		if sc.Filter.Matches(o, cc.PayerID, cc.SourceID) {
			out = append(out, o)
		}
	}
	return out
}

// Pay implements Payer. A valid pre-chosen permanent is sacrificed
// directly; otherwise payment suspends for a choice.
func (sc *Sacrifice) Pay(s *game.State, ctx *Context) (Result, error) {
	if err := sc.CanPay(s, ctx.Check()); err != nil {
		return Result{}, err
	}
	for _, id := range ctx.PreChosen {
		o, ok := s.Object(id)
		if ok && sc.Filter.Matches(o, ctx.PayerID, ctx.SourceID) {
			sacrificePermanent(s, ctx, o)
			return Paid, nil
		}
	}
	return ChoiceNeeded("Sacrifice " + sc.Filter.Describe()), nil
}

// Display implements Payer.
func (sc *Sacrifice) Display() string {
	return "Sacrifice " + sc.Filter.Describe()
}

// ProcessingMode implements Payer.
func (sc *Sacrifice) ProcessingMode() Mode {
	return SacrificeTargetMode(sc.Filter)
}
