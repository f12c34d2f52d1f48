package game

import (
	"github.com/maigus/maigus-engine-go/internal/game/mana"
)

// Player holds per-player game state.
type Player struct {
	ID   string
	Name string

	Life   int
	Energy int

	// Zones owned by the player, ordered. Library index 0 is the top.
	Hand      []string
	Library   []string
	Graveyard []string

	LandsPlayedThisTurn int
	LandPlaysPerTurn    int

	Pool *mana.ManaPool
}

// NewPlayer creates a player with a starting life total and one land
// play per turn.
func NewPlayer(id, name string, life int) *Player {
	return &Player{
		ID:               id,
		Name:             name,
		Life:             life,
		LandPlaysPerTurn: 1,
		Pool:             mana.NewManaPool(),
	}
}

// CanPlayLand reports whether the player has a land play available.
// Effects can raise LandPlaysPerTurn above one.
func (p *Player) CanPlayLand() bool {
	return p.LandsPlayedThisTurn < p.LandPlaysPerTurn
}

// RecordLandPlay consumes one of the player's land plays for the turn.
func (p *Player) RecordLandPlay() {
	p.LandsPlayedThisTurn++
}

// BeginTurn resets the player's per-turn bookkeeping.
func (p *Player) BeginTurn() {
	p.LandsPlayedThisTurn = 0
	p.Pool.Empty()
}

// InHand reports whether the card is in the player's hand.
func (p *Player) InHand(cardID string) bool {
	return containsID(p.Hand, cardID)
}

// InGraveyard reports whether the card is in the player's graveyard.
func (p *Player) InGraveyard(cardID string) bool {
	return containsID(p.Graveyard, cardID)
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func removeID(ids []string, id string) []string {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
