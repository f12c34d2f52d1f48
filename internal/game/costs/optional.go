package costs

import "fmt"

// OptionalKind names a class of optional additional costs.
type OptionalKind string

const (
	OptionalKicker      OptionalKind = "KICKER"
	OptionalMultikicker OptionalKind = "MULTIKICKER"
	OptionalBuyback     OptionalKind = "BUYBACK"
	OptionalEntwine     OptionalKind = "ENTWINE"
)

// OptionalCost bundles an additional total cost the payer may take on
// for an extra effect. Whether it was taken, and how many times for
// multikicker, is recorded on the activation, not here.
type OptionalCost struct {
	Kind  OptionalKind
	Label string
	Cost  TotalCost
	// Repeatable marks costs that may be paid any number of times.
	Repeatable bool
}

// Kicker creates a kicker cost.
func Kicker(cost TotalCost) *OptionalCost {
	return &OptionalCost{Kind: OptionalKicker, Label: "Kicker", Cost: cost}
}

// Multikicker creates a multikicker cost.
func Multikicker(cost TotalCost) *OptionalCost {
	return &OptionalCost{Kind: OptionalMultikicker, Label: "Multikicker", Cost: cost, Repeatable: true}
}

// Buyback creates a buyback cost.
func Buyback(cost TotalCost) *OptionalCost {
	return &OptionalCost{Kind: OptionalBuyback, Label: "Buyback", Cost: cost}
}

// Entwine creates an entwine cost.
func Entwine(cost TotalCost) *OptionalCost {
	return &OptionalCost{Kind: OptionalEntwine, Label: "Entwine", Cost: cost}
}

// Display renders the optional cost, e.g. "Kicker {2}{R}".
func (oc *OptionalCost) Display() string {
	return fmt.Sprintf("%s %s", oc.Label, oc.Cost.Display())
}
