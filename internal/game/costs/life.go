package costs

import (
	"fmt"

	"github.com/maigus/maigus-engine-go/internal/game"
)

// PayLife is a fixed life payment. Life may reach exactly 0.
type PayLife struct {
	Amount int
}

// NewPayLife creates a pay-life cost.
func NewPayLife(amount int) *PayLife {
	return &PayLife{Amount: amount}
}

// CanPay implements Payer.
func (pl *PayLife) CanPay(s *game.State, cc CheckContext) error {
	p, ok := s.Player(cc.PayerID)
	if !ok {
		return paymentErr(CodePlayerNotFound, "%s", cc.PayerID)
	}
	if p.Life < pl.Amount {
		return paymentErr(CodeInsufficientLife, "have %d, need %d", p.Life, pl.Amount)
	}
	return nil
}

// Pay implements Payer.
func (pl *PayLife) Pay(s *game.State, ctx *Context) (Result, error) {
	if err := pl.CanPay(s, ctx.Check()); err != nil {
		return Result{}, err
	}
	p, _ := s.Player(ctx.PayerID)
	p.Life -= pl.Amount
	s.Emit(game.Event{
		Type:     game.EventLifePaid,
		SourceID: ctx.SourceID,
		PlayerID: ctx.PayerID,
		Amount:   pl.Amount,
	})
	return Paid, nil
}

// Display implements Payer.
func (pl *PayLife) Display() string {
	if pl.Amount == 1 {
		return "Pay 1 life"
	}
	return fmt.Sprintf("Pay %d life", pl.Amount)
}

// ProcessingMode implements Payer.
func (pl *PayLife) ProcessingMode() Mode {
	return Immediate()
}

// PayEnergy is a fixed energy counter payment.
type PayEnergy struct {
	Amount int
}

// NewPayEnergy creates a pay-energy cost.
func NewPayEnergy(amount int) *PayEnergy {
	return &PayEnergy{Amount: amount}
}

// CanPay implements Payer.
func (pe *PayEnergy) CanPay(s *game.State, cc CheckContext) error {
	p, ok := s.Player(cc.PayerID)
	if !ok {
		return paymentErr(CodePlayerNotFound, "%s", cc.PayerID)
	}
	if p.Energy < pe.Amount {
		return paymentErr(CodeInsufficientEnergy, "have %d, need %d", p.Energy, pe.Amount)
	}
	return nil
}

// Pay implements Payer.
func (pe *PayEnergy) Pay(s *game.State, ctx *Context) (Result, error) {
	if err := pe.CanPay(s, ctx.Check()); err != nil {
		return Result{}, err
	}
	p, _ := s.Player(ctx.PayerID)
	p.Energy -= pe.Amount
	s.Emit(game.Event{
		Type:     game.EventEnergyPaid,
		SourceID: ctx.SourceID,
		PlayerID: ctx.PayerID,
		Amount:   pe.Amount,
	})
	return Paid, nil
}

// Display implements Payer.
func (pe *PayEnergy) Display() string {
	out := ""
	for i := 0; i < pe.Amount; i++ {
		out += "{E}"
	}
	return "Pay " + out
}

// ProcessingMode implements Payer.
func (pe *PayEnergy) ProcessingMode() Mode {
	return Immediate()
}
