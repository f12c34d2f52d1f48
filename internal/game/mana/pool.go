package mana

import (
	"fmt"
	"sync"
)

// ManaType represents a type of mana.
type ManaType string

const (
	ManaWhite     ManaType = "WHITE"
	ManaBlue      ManaType = "BLUE"
	ManaBlack     ManaType = "BLACK"
	ManaRed       ManaType = "RED"
	ManaGreen     ManaType = "GREEN"
	ManaColorless ManaType = "COLORLESS"
)

// ColorOrder is the order in which colored mana is drained when paying
// generic costs, after colorless is exhausted.
var ColorOrder = []ManaType{ManaWhite, ManaBlue, ManaBlack, ManaRed, ManaGreen}

// ManaPool holds a player's unspent mana.
type ManaPool struct {
	mu sync.RWMutex

	White     int
	Blue      int
	Black     int
	Red       int
	Green     int
	Colorless int
}

// NewManaPool creates a new empty mana pool.
func NewManaPool() *ManaPool {
	return &ManaPool{}
}

// Add adds mana to the pool. Non-positive amounts are ignored.
func (mp *ManaPool) Add(manaType ManaType, amount int) {
	if amount <= 0 {
		return
	}
	mp.mu.Lock()
	defer mp.mu.Unlock()
	mp.add(manaType, amount)
}

func (mp *ManaPool) add(manaType ManaType, amount int) {
	switch manaType {
	case ManaWhite:
		mp.White += amount
	case ManaBlue:
		mp.Blue += amount
	case ManaBlack:
		mp.Black += amount
	case ManaRed:
		mp.Red += amount
	case ManaGreen:
		mp.Green += amount
	case ManaColorless:
		mp.Colorless += amount
	}
}

// Remove removes mana of the given type from the pool.
// Returns an error if the pool does not hold that much.
func (mp *ManaPool) Remove(manaType ManaType, amount int) error {
	if amount <= 0 {
		return nil
	}
	mp.mu.Lock()
	defer mp.mu.Unlock()
	if mp.amount(manaType) < amount {
		return fmt.Errorf("not enough %s mana: have %d, need %d", manaType, mp.amount(manaType), amount)
	}
	mp.add(manaType, -amount)
	return nil
}

// Amount returns the amount of a specific mana type in the pool.
func (mp *ManaPool) Amount(manaType ManaType) int {
	mp.mu.RLock()
	defer mp.mu.RUnlock()
	return mp.amount(manaType)
}

func (mp *ManaPool) amount(manaType ManaType) int {
	switch manaType {
	case ManaWhite:
		return mp.White
	case ManaBlue:
		return mp.Blue
	case ManaBlack:
		return mp.Black
	case ManaRed:
		return mp.Red
	case ManaGreen:
		return mp.Green
	case ManaColorless:
		return mp.Colorless
	default:
		return 0
	}
}

// Total returns the total mana count across all types.
func (mp *ManaPool) Total() int {
	mp.mu.RLock()
	defer mp.mu.RUnlock()
	return mp.total()
}

func (mp *ManaPool) total() int {
	return mp.White + mp.Blue + mp.Black + mp.Red + mp.Green + mp.Colorless
}

// IsEmpty reports whether the pool holds no mana.
func (mp *ManaPool) IsEmpty() bool {
	return mp.Total() == 0
}

// Empty removes all mana from the pool. Per Rule 500.4 mana pools
// empty at the end of each step and phase.
func (mp *ManaPool) Empty() {
	mp.mu.Lock()
	defer mp.mu.Unlock()
	mp.White = 0
	mp.Blue = 0
	mp.Black = 0
	mp.Red = 0
	mp.Green = 0
	mp.Colorless = 0
}

// Copy creates a deep copy of the mana pool.
func (mp *ManaPool) Copy() *ManaPool {
	mp.mu.RLock()
	defer mp.mu.RUnlock()
	return &ManaPool{
		White:     mp.White,
		Blue:      mp.Blue,
		Black:     mp.Black,
		Red:       mp.Red,
		Green:     mp.Green,
		Colorless: mp.Colorless,
	}
}

// restoreFrom copies the counters of snapshot back into mp.
// Caller must hold mp.mu.
func (mp *ManaPool) restoreFrom(snapshot *ManaPool) {
	mp.White = snapshot.White
	mp.Blue = snapshot.Blue
	mp.Black = snapshot.Black
	mp.Red = snapshot.Red
	mp.Green = snapshot.Green
	mp.Colorless = snapshot.Colorless
}

// String returns a compact rendering like "WWU + 2 colorless".
func (mp *ManaPool) String() string {
	mp.mu.RLock()
	defer mp.mu.RUnlock()
	s := ""
	letters := []struct {
		n int
		c string
	}{
		{mp.White, "W"}, {mp.Blue, "U"}, {mp.Black, "B"}, {mp.Red, "R"}, {mp.Green, "G"},
	}
	for _, l := range letters {
		for i := 0; i < l.n; i++ {
			s += l.c
		}
	}
	if mp.Colorless > 0 {
		if s != "" {
			s += " + "
		}
		s += fmt.Sprintf("%d colorless", mp.Colorless)
	}
	if s == "" {
		return "empty"
	}
	return s
}
