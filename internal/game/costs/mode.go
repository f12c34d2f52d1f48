package costs

import (
	"fmt"

	"github.com/maigus/maigus-engine-go/internal/game/mana"
)

// ModeKind classifies how the orchestrator sequences a component's
// player interaction.
type ModeKind string

const (
	// ModeImmediate components pay with no interaction.
	ModeImmediate ModeKind = "IMMEDIATE"
	// ModeManaPayment components open a mana payment window.
	ModeManaPayment ModeKind = "MANA_PAYMENT"
	// ModeSacrificeTarget components need a sacrifice choice.
	ModeSacrificeTarget ModeKind = "SACRIFICE_TARGET"
	// ModeDiscardCards components need a discard choice.
	ModeDiscardCards ModeKind = "DISCARD_CARDS"
	// ModeExileFromHand components need an exile-from-hand choice.
	ModeExileFromHand ModeKind = "EXILE_FROM_HAND"
	// ModeInlineWithTriggers components move permanents to the
	// graveyard while paying, so the orchestrator must process death
	// triggers synchronously before the next component.
	ModeInlineWithTriggers ModeKind = "INLINE_WITH_TRIGGERS"
)

// Mode tells the orchestrator how to process one component. The
// payload fields are set per kind.
type Mode struct {
	Kind ModeKind

	ManaCost mana.Cost        // ModeManaPayment
	Filter   *PermanentFilter // ModeSacrificeTarget
	Count    int              // ModeDiscardCards, ModeExileFromHand
	CardType string           // ModeDiscardCards restriction, empty = any
	Color    string           // ModeExileFromHand restriction, empty = any
}

// Immediate returns the no-interaction mode.
func Immediate() Mode {
	return Mode{Kind: ModeImmediate}
}

// ManaPaymentMode returns the mana window mode for the given cost.
func ManaPaymentMode(cost mana.Cost) Mode {
	return Mode{Kind: ModeManaPayment, ManaCost: cost}
}

// SacrificeTargetMode returns the sacrifice choice mode.
func SacrificeTargetMode(filter *PermanentFilter) Mode {
	return Mode{Kind: ModeSacrificeTarget, Filter: filter}
}

// DiscardCardsMode returns the discard choice mode.
func DiscardCardsMode(count int, cardType string) Mode {
	return Mode{Kind: ModeDiscardCards, Count: count, CardType: cardType}
}

// ExileFromHandMode returns the exile-from-hand choice mode.
func ExileFromHandMode(count int, color string) Mode {
	return Mode{Kind: ModeExileFromHand, Count: count, Color: color}
}

// InlineWithTriggers returns the synchronous-trigger mode.
func InlineWithTriggers() Mode {
	return Mode{Kind: ModeInlineWithTriggers}
}

// NeedsPlayerChoice reports whether the mode requires the orchestrator
// to gather a choice before the component can finish paying.
func (m Mode) NeedsPlayerChoice() bool {
	switch m.Kind {
	case ModeSacrificeTarget, ModeDiscardCards, ModeExileFromHand:
		return true
	}
	return false
}

// String renders the mode for logs.
func (m Mode) String() string {
	switch m.Kind {
	case ModeManaPayment:
		return fmt.Sprintf("mana payment %s", m.ManaCost)
	case ModeSacrificeTarget:
		return fmt.Sprintf("sacrifice %s", m.Filter.Describe())
	case ModeDiscardCards:
		return fmt.Sprintf("discard %d card(s)", m.Count)
	case ModeExileFromHand:
		return fmt.Sprintf("exile %d card(s) from hand", m.Count)
	case ModeInlineWithTriggers:
		return "inline with triggers"
	default:
		return "immediate"
	}
}
