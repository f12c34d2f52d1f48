package costs

import (
	"github.com/maigus/maigus-engine-go/internal/game"
	"github.com/maigus/maigus-engine-go/internal/game/mana"
)

// ManaCost pays a mana cost from the payer's pool, handling hybrid,
// Phyrexian, snow and X pips. Phyrexian life payments are deducted
// from the payer's life as part of the same component.
type ManaCost struct {
	Cost mana.Cost
}

// NewManaCost creates a mana payment component.
func NewManaCost(cost mana.Cost) *ManaCost {
	return &ManaCost{Cost: cost}
}

// CanPay implements Payer against the payer's current pool, including
// the life the Phyrexian pips would cost.
func (mc *ManaCost) CanPay(s *game.State, cc CheckContext) error {
	p, ok := s.Player(cc.PayerID)
	if !ok {
		return paymentErr(CodePlayerNotFound, "%s", cc.PayerID)
	}
	return mc.checkAgainst(s, p, p.Pool, cc)
}

// CanPotentiallyPay implements PotentialPayer, counting mana the
// player's untapped sources could still produce. Used when checking
// whether a mana ability may be activated inside a payment window.
func (mc *ManaCost) CanPotentiallyPay(s *game.State, cc CheckContext) error {
	p, ok := s.Player(cc.PayerID)
	if !ok {
		return paymentErr(CodePlayerNotFound, "%s", cc.PayerID)
	}
	return mc.checkAgainst(s, p, s.PotentialPool(cc.PayerID), cc)
}

func (mc *ManaCost) checkAgainst(s *game.State, p *game.Player, pool *mana.ManaPool, cc CheckContext) error {
	scratch := pool.Copy()
	var life int
	var err error
	if s.CanSpendManaAsAnyColor(cc.PayerID) {
		life, err = scratch.TryPayTrackingLifeWithAnyColor(mc.Cost, cc.XValue)
	} else {
		life, err = scratch.TryPayTrackingLife(mc.Cost, cc.XValue)
	}
	if err != nil {
		return paymentErr(CodeInsufficientMana, "%s", mc.Cost)
	}
	if life > p.Life {
		return paymentErr(CodeInsufficientLife, "phyrexian pips need %d life, have %d", life, p.Life)
	}
	return nil
}

// Pay implements Payer.
func (mc *ManaCost) Pay(s *game.State, ctx *Context) (Result, error) {
	if err := mc.CanPay(s, ctx.Check()); err != nil {
		return Result{}, err
	}
	p, _ := s.Player(ctx.PayerID)

	var life int
	var err error
	if s.CanSpendManaAsAnyColor(ctx.PayerID) {
		life, err = p.Pool.TryPayTrackingLifeWithAnyColor(mc.Cost, ctx.X())
	} else {
		life, err = p.Pool.TryPayTrackingLife(mc.Cost, ctx.X())
	}
	if err != nil {
		return Result{}, paymentErr(CodeInsufficientMana, "%s", mc.Cost)
	}

	s.Emit(game.Event{
		Type:     game.EventManaPaid,
		SourceID: ctx.SourceID,
		PlayerID: ctx.PayerID,
		Data:     mc.Cost.String(),
		Amount:   mc.Cost.ManaValue(ctx.X()),
	})
	if life > 0 {
		p.Life -= life
		s.Emit(game.Event{
			Type:     game.EventLifePaid,
			SourceID: ctx.SourceID,
			PlayerID: ctx.PayerID,
			Amount:   life,
		})
	}
	return Paid, nil
}

// Display implements Payer.
func (mc *ManaCost) Display() string {
	return mc.Cost.String()
}

// ProcessingMode implements Payer.
func (mc *ManaCost) ProcessingMode() Mode {
	return ManaPaymentMode(mc.Cost)
}
