package costs

import (
	"strings"

	"github.com/maigus/maigus-engine-go/internal/game"
	"github.com/maigus/maigus-engine-go/internal/game/mana"
)

// TotalCost is an ordered conjunction of cost components. Components
// pay strictly in declaration order; a component that enqueues a
// trigger does so before the next component starts.
type TotalCost struct {
	components []Payer
}

// Free returns the empty total cost.
func Free() TotalCost {
	return TotalCost{}
}

// FromComponents builds a total cost from components in pay order.
func FromComponents(components ...Payer) TotalCost {
	return TotalCost{components: components}
}

// FromMana builds a total cost of a single mana payment.
func FromMana(cost mana.Cost) TotalCost {
	return TotalCost{components: []Payer{NewManaCost(cost)}}
}

// Components returns the components in pay order.
func (tc TotalCost) Components() []Payer {
	return tc.components
}

// IsFree reports whether the total cost has no components.
func (tc TotalCost) IsFree() bool {
	return len(tc.components) == 0
}

// ManaCost returns the first mana component's cost, if any.
func (tc TotalCost) ManaCost() (mana.Cost, bool) {
	for _, c := range tc.components {
		if mc, ok := AsManaCost(c); ok {
			return mc, true
		}
	}
	return mana.Cost{}, false
}

// Display renders the total cost, "Free" when empty.
func (tc TotalCost) Display() string {
	if tc.IsFree() {
		return "Free"
	}
	parts := make([]string, len(tc.components))
	for i, c := range tc.components {
		parts[i] = c.Display()
	}
	return strings.Join(parts, ", ")
}

// CanPay checks every component's legality, returning the first error.
func (tc TotalCost) CanPay(s *game.State, cc CheckContext) error {
	for _, c := range tc.components {
		if err := c.CanPay(s, cc); err != nil {
			return err
		}
	}
	return nil
}

// ValidatedCost is a total cost that passed an all-components-legal
// check. It is only constructible through Validate, so a caller cannot
// start paying components without having checked them all first:
// there is no rollback once a component has paid.
type ValidatedCost struct {
	total TotalCost
}

// Validate checks every component of the total cost against the state
// and returns a ValidatedCost on success.
func Validate(s *game.State, cc CheckContext, total TotalCost) (ValidatedCost, error) {
	if err := total.CanPay(s, cc); err != nil {
		return ValidatedCost{}, err
	}
	return ValidatedCost{total: total}, nil
}

// PayAll pays the components strictly in declaration order, resolving
// choices through the context's decision maker. State can drift
// between Validate and PayAll (an earlier component may consume a
// later one's resource), so individual components may still fail.
func (vc ValidatedCost) PayAll(s *game.State, ctx *Context) error {
	for _, c := range vc.total.Components() {
		if err := PayWithChoice(s, c, ctx); err != nil {
			return err
		}
	}
	return nil
}
