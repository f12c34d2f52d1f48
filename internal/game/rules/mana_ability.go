package rules

import (
	"fmt"
	"sync"

	"github.com/maigus/maigus-engine-go/internal/game"
	"github.com/maigus/maigus-engine-go/internal/game/costs"
	"github.com/maigus/maigus-engine-go/internal/game/mana"
)

// Condition gates when a mana ability may be activated.
type Condition interface {
	Holds(s *game.State, playerID string) bool
	Describe() string
}

// ControlsPermanentType requires the player to control at least Count
// permanents of the card type, optionally narrowed to a subtype.
type ControlsPermanentType struct {
	CardType string
	Subtype  string
	Count    int
}

// Holds implements Condition.
func (c ControlsPermanentType) Holds(s *game.State, playerID string) bool {
	need := c.Count
	if need == 0 {
		need = 1
	}
	found := 0
	for _, o := range s.BattlefieldControlledBy(playerID) {
		if c.CardType != "" && !o.IsType(c.CardType) {
			continue
		}
		if c.Subtype != "" && !o.HasSubtype(c.Subtype) {
			continue
		}
		found++
		if found >= need {
			return true
		}
	}
	return false
}

// Describe implements Condition.
func (c ControlsPermanentType) Describe() string {
	what := c.CardType
	if c.Subtype != "" {
		what = c.Subtype
	}
	return fmt.Sprintf("control %d %s(s)", max(c.Count, 1), what)
}

// MinLife requires the player to have at least Amount life.
type MinLife struct {
	Amount int
}

// Holds implements Condition.
func (c MinLife) Holds(s *game.State, playerID string) bool {
	p, ok := s.Player(playerID)
	return ok && p.Life >= c.Amount
}

// Describe implements Condition.
func (c MinLife) Describe() string {
	return fmt.Sprintf("have at least %d life", c.Amount)
}

// DuringOwnTurn requires the activation to happen on the player's turn.
type DuringOwnTurn struct{}

// Holds implements Condition.
func (DuringOwnTurn) Holds(s *game.State, playerID string) bool {
	return s.ActivePlayer == playerID
}

// Describe implements Condition.
func (DuringOwnTurn) Describe() string {
	return "during your turn"
}

// AllOf requires every inner condition to hold.
type AllOf []Condition

// Holds implements Condition.
func (cs AllOf) Holds(s *game.State, playerID string) bool {
	for _, c := range cs {
		if !c.Holds(s, playerID) {
			return false
		}
	}
	return true
}

// Describe implements Condition.
func (cs AllOf) Describe() string {
	return fmt.Sprintf("%d conditions", len(cs))
}

// ManaAbility is an activatable mana ability of a permanent. Produces
// lists the symbols added per activation; an X symbol adds X mana of
// that symbol's color, where X comes from the activation cost.
type ManaAbility struct {
	Index     int
	Cost      costs.TotalCost
	Produces  []mana.Symbol
	Condition Condition

	// ExtraEffect runs after mana is added, for abilities with a rider
	// like dealing damage to the controller.
	ExtraEffect costs.Effect
}

// ManaAbilityRegistry maps permanents to their mana abilities.
type ManaAbilityRegistry struct {
	mu        sync.RWMutex
	abilities map[string][]ManaAbility
}

// NewManaAbilityRegistry creates an empty registry.
func NewManaAbilityRegistry() *ManaAbilityRegistry {
	return &ManaAbilityRegistry{
		abilities: make(map[string][]ManaAbility),
	}
}

// Register adds a mana ability to the permanent, assigning the next
// index.
func (r *ManaAbilityRegistry) Register(permanentID string, ability ManaAbility) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	ability.Index = len(r.abilities[permanentID])
	r.abilities[permanentID] = append(r.abilities[permanentID], ability)
	return ability.Index
}

// Ability returns the ability at the index for the permanent.
func (r *ManaAbilityRegistry) Ability(permanentID string, index int) (ManaAbility, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.abilities[permanentID]
	if index < 0 || index >= len(list) {
		return ManaAbility{}, false
	}
	return list[index], true
}

// Abilities returns the permanent's mana abilities in index order.
func (r *ManaAbilityRegistry) Abilities(permanentID string) []ManaAbility {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]ManaAbility(nil), r.abilities[permanentID]...)
}

// Unregister drops all abilities of the permanent, for when it leaves
// the battlefield.
func (r *ManaAbilityRegistry) Unregister(permanentID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.abilities, permanentID)
}
