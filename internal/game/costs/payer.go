package costs

import (
	"github.com/maigus/maigus-engine-go/internal/game"
	"github.com/maigus/maigus-engine-go/internal/game/mana"
)

// Payer is the uniform contract every cost component implements.
//
// CanPay is read-only and never consults the decision maker; repeated
// calls on unchanged state return identical verdicts. Pay re-validates
// via CanPay at entry and either completes, suspends with a choice
// description, or fails leaving that component's state untouched.
// There is no rollback across components of one total cost; callers
// validate every component before paying any (see Validate).
type Payer interface {
	CanPay(s *game.State, cc CheckContext) error
	Pay(s *game.State, ctx *Context) (Result, error)
	Display() string
	ProcessingMode() Mode
}

// PotentialPayer is implemented by components whose legality can be
// checked leniently, counting mana the player could produce rather
// than mana already in the pool. Used inside mana payment windows.
type PotentialPayer interface {
	Payer
	CanPotentiallyPay(s *game.State, cc CheckContext) error
}

// CanPotentiallyPay runs the lenient check when the component supports
// one and falls back to CanPay otherwise.
func CanPotentiallyPay(p Payer, s *game.State, cc CheckContext) error {
	if pp, ok := p.(PotentialPayer); ok {
		return pp.CanPotentiallyPay(s, cc)
	}
	return p.CanPay(s, cc)
}

// AsManaCost returns the component's mana cost when it is a mana
// payment component.
func AsManaCost(p Payer) (mana.Cost, bool) {
	if mc, ok := p.(*ManaCost); ok {
		return mc.Cost, true
	}
	return mana.Cost{}, false
}

// IsInlineWithTriggers reports whether the component moves permanents
// to the graveyard while paying.
func IsInlineWithTriggers(p Payer) bool {
	return p.ProcessingMode().Kind == ModeInlineWithTriggers
}
