package game

import (
	"github.com/google/uuid"

	"github.com/maigus/maigus-engine-go/internal/game/counters"
	"github.com/maigus/maigus-engine-go/internal/game/mana"
)

// Zone identifies where a game object currently lives.
type Zone string

const (
	ZoneBattlefield Zone = "BATTLEFIELD"
	ZoneHand        Zone = "HAND"
	ZoneLibrary     Zone = "LIBRARY"
	ZoneGraveyard   Zone = "GRAVEYARD"
	ZoneStack       Zone = "STACK"
	ZoneExile       Zone = "EXILE"
	ZoneCommand     Zone = "COMMAND"
)

// Card types used by cost filters and special actions.
const (
	CardTypeArtifact     = "Artifact"
	CardTypeCreature     = "Creature"
	CardTypeEnchantment  = "Enchantment"
	CardTypeInstant      = "Instant"
	CardTypeLand         = "Land"
	CardTypePlaneswalker = "Planeswalker"
	CardTypeSorcery      = "Sorcery"
)

// Color letters as they appear in mana symbols and color filters.
const (
	ColorWhite = "W"
	ColorBlue  = "U"
	ColorBlack = "B"
	ColorRed   = "R"
	ColorGreen = "G"
)

// FaceUpCost is one way to turn a face-down permanent face up.
// Megamorph costs also put a +1/+1 counter on the permanent.
type FaceUpCost struct {
	Cost      mana.Cost
	Megamorph bool
}

// SuspendSpec carries a card's suspend cost and time counter count.
type SuspendSpec struct {
	Cost  mana.Cost
	Count int
}

// Object is a card, token or permanent tracked by the game state.
type Object struct {
	ID         string
	Name       string
	Controller string
	Owner      string
	Zone       Zone

	CardTypes []string
	Subtypes  []string
	Colors    []string
	Token     bool

	ManaCost mana.Cost
	Counters *counters.Counters

	Tapped        bool
	SummoningSick bool
	Haste         bool
	FaceDown      bool
	Suspended     bool
	Foretold      bool

	// ProducesMana lists the mana this permanent's intrinsic ability
	// would add, used when estimating potential mana.
	ProducesMana []mana.Symbol

	FaceUpCosts []FaceUpCost
	Suspend     *SuspendSpec
	HasForetell bool
}

// NewObject creates an object with a fresh ID and empty counters.
func NewObject(name, owner string) *Object {
	return &Object{
		ID:         uuid.NewString(),
		Name:       name,
		Controller: owner,
		Owner:      owner,
		Zone:       ZoneLibrary,
		Counters:   counters.NewCounters(),
	}
}

// IsType reports whether the object has the given card type.
func (o *Object) IsType(cardType string) bool {
	for _, t := range o.CardTypes {
		if t == cardType {
			return true
		}
	}
	return false
}

// HasSubtype reports whether the object has the given subtype.
func (o *Object) HasSubtype(subtype string) bool {
	for _, t := range o.Subtypes {
		if t == subtype {
			return true
		}
	}
	return false
}

// HasColor reports whether the object is the given color.
func (o *Object) HasColor(color string) bool {
	for _, c := range o.Colors {
		if c == color {
			return true
		}
	}
	return false
}

// CanTapForCost reports whether the permanent can be tapped to pay a
// cost. Per Rule 602.5g creatures need to have been under their
// controller's control continuously since the turn began, unless they
// have haste.
func (o *Object) CanTapForCost() bool {
	if o.Tapped {
		return false
	}
	if o.IsType(CardTypeCreature) && o.SummoningSick && !o.Haste {
		return false
	}
	return true
}

// ObjectSnapshot is the last known information about an object, taken
// before it changes zones. Effects that act on sacrificed or exiled
// cards read the snapshot, not the live object.
type ObjectSnapshot struct {
	ID         string
	Name       string
	Controller string
	Owner      string
	Zone       Zone
	CardTypes  []string
	Subtypes   []string
	Colors     []string
	Token      bool
	Counters   map[string]int
}

// Snapshot captures the object's current visible state.
func (o *Object) Snapshot() ObjectSnapshot {
	snap := ObjectSnapshot{
		ID:         o.ID,
		Name:       o.Name,
		Controller: o.Controller,
		Owner:      o.Owner,
		Zone:       o.Zone,
		CardTypes:  append([]string(nil), o.CardTypes...),
		Subtypes:   append([]string(nil), o.Subtypes...),
		Colors:     append([]string(nil), o.Colors...),
		Token:      o.Token,
		Counters:   make(map[string]int),
	}
	if o.Counters != nil {
		for name, c := range o.Counters.Counters {
			snap.Counters[name] = c.Count
		}
	}
	return snap
}

// TagKey names a group of snapshots shared between a cost and the
// effect that resolves afterward, e.g. "exiled_by_cost".
type TagKey string

const (
	// TagExiledByCost collects the cards a cost exiled, for effects
	// that count or reference them on resolution.
	TagExiledByCost TagKey = "exiled_by_cost"
	// TagSacrificedByCost collects the permanents a cost sacrificed.
	TagSacrificedByCost TagKey = "sacrificed_by_cost"
)
