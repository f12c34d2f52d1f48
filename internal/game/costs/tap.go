package costs

import (
	"github.com/maigus/maigus-engine-go/internal/game"
)

// Tap is the {T} cost: tap the source permanent.
type Tap struct{}

// NewTap creates a tap cost.
func NewTap() *Tap {
	return &Tap{}
}

// CanPay implements Payer. Per Rule 602.5g a creature source must have
// haste or have started the turn under its controller's control.
func (t *Tap) CanPay(s *game.State, cc CheckContext) error {
	o, ok := s.Object(cc.SourceID)
	if !ok {
		return paymentErr(CodeSourceNotFound, "%s", cc.SourceID)
	}
	if o.Zone != game.ZoneBattlefield {
		return paymentErr(CodeSourceNotOnBattlefield, "%s is in %s", o.Name, o.Zone)
	}
	if o.Tapped {
		return paymentErr(CodeAlreadyTapped, "%s", o.Name)
	}
	if o.IsType(game.CardTypeCreature) && o.SummoningSick && !o.Haste {
		return paymentErr(CodeSummoningSickness, "%s", o.Name)
	}
	return nil
}

// Pay implements Payer.
func (t *Tap) Pay(s *game.State, ctx *Context) (Result, error) {
	if err := t.CanPay(s, ctx.Check()); err != nil {
		return Result{}, err
	}
	o, _ := s.Object(ctx.SourceID)
	o.Tapped = true
	s.Emit(game.Event{
		Type:     game.EventTapped,
		SourceID: o.ID,
		PlayerID: ctx.PayerID,
		Data:     o.Name,
	})
	return Paid, nil
}

// Display implements Payer.
func (t *Tap) Display() string {
	return "{T}"
}

// ProcessingMode implements Payer.
func (t *Tap) ProcessingMode() Mode {
	return Immediate()
}

// Untap is the {Q} cost: untap the source permanent.
type Untap struct{}

// NewUntap creates an untap cost.
func NewUntap() *Untap {
	return &Untap{}
}

// CanPay implements Payer.
func (u *Untap) CanPay(s *game.State, cc CheckContext) error {
	o, ok := s.Object(cc.SourceID)
	if !ok {
		return paymentErr(CodeSourceNotFound, "%s", cc.SourceID)
	}
	if o.Zone != game.ZoneBattlefield {
		return paymentErr(CodeSourceNotOnBattlefield, "%s is in %s", o.Name, o.Zone)
	}
	if !o.Tapped {
		return paymentErr(CodeAlreadyUntapped, "%s", o.Name)
	}
	return nil
}

// Pay implements Payer.
func (u *Untap) Pay(s *game.State, ctx *Context) (Result, error) {
	if err := u.CanPay(s, ctx.Check()); err != nil {
		return Result{}, err
	}
	o, _ := s.Object(ctx.SourceID)
	o.Tapped = false
	s.Emit(game.Event{
		Type:     game.EventUntapped,
		SourceID: o.ID,
		PlayerID: ctx.PayerID,
		Data:     o.Name,
	})
	return Paid, nil
}

// Display implements Payer.
func (u *Untap) Display() string {
	return "{Q}"
}

// ProcessingMode implements Payer.
func (u *Untap) ProcessingMode() Mode {
	return Immediate()
}
