package game

import (
	"fmt"

	"github.com/maigus/maigus-engine-go/internal/game/counters"
	"github.com/maigus/maigus-engine-go/internal/game/mana"
)

// Phase identifies the current phase of the turn.
type Phase string

const (
	PhaseBeginning      Phase = "BEGINNING"
	PhasePrecombatMain  Phase = "PRECOMBAT_MAIN"
	PhaseCombat         Phase = "COMBAT"
	PhasePostcombatMain Phase = "POSTCOMBAT_MAIN"
	PhaseEnd            Phase = "END"
)

// IsMain reports whether the phase is one of the two main phases.
func (p Phase) IsMain() bool {
	return p == PhasePrecombatMain || p == PhasePostcombatMain
}

// State is the full game state: objects, players, turn structure and
// the stack. It is not safe for concurrent mutation; the engine
// serializes access.
type State struct {
	Objects map[string]*Object
	Players map[string]*Player

	// objectOrder preserves insertion order so candidate lists and
	// battlefield scans are deterministic.
	objectOrder []string
	TurnOrder   []string

	Turn           int
	Phase          Phase
	ActivePlayer   string
	PriorityPlayer string
	Stack          []string

	Events *EventBus
	Log    []Event

	anyColorSpenders map[string]bool
}

// NewState creates an empty game state.
func NewState() *State {
	return &State{
		Objects:          make(map[string]*Object),
		Players:          make(map[string]*Player),
		Turn:             1,
		Phase:            PhasePrecombatMain,
		Events:           NewEventBus(),
		anyColorSpenders: make(map[string]bool),
	}
}

// AddPlayer registers a player. The first player added becomes active
// and holds priority.
func (s *State) AddPlayer(p *Player) {
	s.Players[p.ID] = p
	s.TurnOrder = append(s.TurnOrder, p.ID)
	if s.ActivePlayer == "" {
		s.ActivePlayer = p.ID
		s.PriorityPlayer = p.ID
	}
}

// AddObject registers an object with the state.
func (s *State) AddObject(o *Object) {
	if o.Counters == nil {
		o.Counters = counters.NewCounters()
	}
	s.Objects[o.ID] = o
	s.objectOrder = append(s.objectOrder, o.ID)

	owner := s.Players[o.Owner]
	if owner == nil {
		return
	}
	switch o.Zone {
	case ZoneHand:
		owner.Hand = append(owner.Hand, o.ID)
	case ZoneLibrary:
		owner.Library = append(owner.Library, o.ID)
	case ZoneGraveyard:
		owner.Graveyard = append(owner.Graveyard, o.ID)
	}
}

// Object returns the object with the given ID.
func (s *State) Object(id string) (*Object, bool) {
	o, ok := s.Objects[id]
	return o, ok
}

// Player returns the player with the given ID.
func (s *State) Player(id string) (*Player, bool) {
	p, ok := s.Players[id]
	return p, ok
}

// StackEmpty reports whether the stack has no objects on it.
func (s *State) StackEmpty() bool {
	return len(s.Stack) == 0
}

// MoveZone moves an object to the given zone, maintaining the owner's
// zone lists and resetting status that does not survive the move.
// Counters do not carry over; the object arrives as a new object.
func (s *State) MoveZone(objectID string, to Zone) error {
	o, ok := s.Objects[objectID]
	if !ok {
		return fmt.Errorf("object %s not found", objectID)
	}
	from := o.Zone
	if from == to {
		return nil
	}

	owner := s.Players[o.Owner]
	if owner != nil {
		switch from {
		case ZoneHand:
			owner.Hand = removeID(owner.Hand, o.ID)
		case ZoneLibrary:
			owner.Library = removeID(owner.Library, o.ID)
		case ZoneGraveyard:
			owner.Graveyard = removeID(owner.Graveyard, o.ID)
		}
	}

	if from == ZoneBattlefield {
		o.Tapped = false
		o.SummoningSick = false
		o.FaceDown = false
		o.Counters = counters.NewCounters()
		o.Controller = o.Owner
	}

	o.Zone = to
	switch to {
	case ZoneBattlefield:
		if o.IsType(CardTypeCreature) {
			o.SummoningSick = true
		}
	case ZoneHand:
		if owner != nil {
			owner.Hand = append(owner.Hand, o.ID)
		}
	case ZoneLibrary:
		if owner != nil {
			owner.Library = append([]string{o.ID}, owner.Library...)
		}
	case ZoneGraveyard:
		if owner != nil {
			owner.Graveyard = append(owner.Graveyard, o.ID)
		}
	}

	s.Emit(Event{
		Type:     EventZoneChange,
		SourceID: o.ID,
		PlayerID: o.Owner,
		Data:     string(from) + ">" + string(to),
	})
	return nil
}

// BattlefieldControlledBy returns the permanents the player controls,
// in insertion order.
func (s *State) BattlefieldControlledBy(playerID string) []*Object {
	var out []*Object
	for _, id := range s.objectOrder {
		o := s.Objects[id]
		if o != nil && o.Zone == ZoneBattlefield && o.Controller == playerID {
			out = append(out, o)
		}
	}
	return out
}

// Battlefield returns every permanent on the battlefield, in insertion
// order.
func (s *State) Battlefield() []*Object {
	var out []*Object
	for _, id := range s.objectOrder {
		o := s.Objects[id]
		if o != nil && o.Zone == ZoneBattlefield {
			out = append(out, o)
		}
	}
	return out
}

// SetAnyColorSpending marks whether the player may spend mana as
// though it were mana of any color, as granted by certain effects.
func (s *State) SetAnyColorSpending(playerID string, allowed bool) {
	s.anyColorSpenders[playerID] = allowed
}

// CanSpendManaAsAnyColor reports whether the player may spend mana as
// though it were mana of any color.
func (s *State) CanSpendManaAsAnyColor(playerID string) bool {
	return s.anyColorSpenders[playerID]
}

// PotentialPool estimates the mana a player could have available: the
// current pool plus one mana from each untapped permanent with an
// intrinsic mana ability. Used for the lenient legality check inside
// mana payment windows.
func (s *State) PotentialPool(playerID string) *mana.ManaPool {
	p, ok := s.Players[playerID]
	if !ok {
		return mana.NewManaPool()
	}
	pool := p.Pool.Copy()
	for _, o := range s.BattlefieldControlledBy(playerID) {
		if len(o.ProducesMana) == 0 || !o.CanTapForCost() {
			continue
		}
		// A source with several modes is counted once, by its first mode.
		sym := o.ProducesMana[0]
		if mt, ok := sym.ManaType(); ok {
			pool.Add(mt, 1)
		} else {
			pool.Add(mana.ManaColorless, 1)
		}
	}
	return pool
}

// Emit publishes the event on the bus and appends it to the log.
func (s *State) Emit(event Event) {
	s.Events.Publish(event)
	s.Log = append(s.Log, event)
}
