package costs

import (
	"errors"

	"github.com/maigus/maigus-engine-go/internal/game"
)

// Effect is the narrow slice of the effect executor a cost can invoke.
// Effects run as costs share the payment context, so any tags the
// effect writes are visible to later components of the same total
// cost.
type Effect interface {
	// CanExecuteAsCost reports whether the effect could run as a cost
	// right now. Read-only.
	CanExecuteAsCost(s *game.State, cc CheckContext) error
	// ExecuteAsCost runs the effect, recording snapshots into the
	// context's tag map as needed.
	ExecuteAsCost(s *game.State, ctx *Context) error
	// Description renders the effect for cost display.
	Description() string
}

// EffectCost wraps an arbitrary effect as a cost component.
type EffectCost struct {
	Effect Effect
}

// NewEffectCost creates an effect-backed cost.
func NewEffectCost(effect Effect) *EffectCost {
	return &EffectCost{Effect: effect}
}

// CanPay implements Payer, surfacing structured failures verbatim and
// wrapping anything else as Other.
func (ec *EffectCost) CanPay(s *game.State, cc CheckContext) error {
	if err := ec.Effect.CanExecuteAsCost(s, cc); err != nil {
		var pe *PaymentError
		if errors.As(err, &pe) {
			return pe
		}
		return OtherError("%v", err)
	}
	return nil
}

// Pay implements Payer.
func (ec *EffectCost) Pay(s *game.State, ctx *Context) (Result, error) {
	if err := ec.CanPay(s, ctx.Check()); err != nil {
		return Result{}, err
	}
	if err := ec.Effect.ExecuteAsCost(s, ctx); err != nil {
		var pe *PaymentError
		if errors.As(err, &pe) {
			return Result{}, pe
		}
		return Result{}, OtherError("%v", err)
	}
	return Paid, nil
}

// Display implements Payer.
func (ec *EffectCost) Display() string {
	return ec.Effect.Description()
}

// ProcessingMode implements Payer.
func (ec *EffectCost) ProcessingMode() Mode {
	return Immediate()
}
