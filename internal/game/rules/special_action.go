package rules

import (
	"sync"
)

// SpecialActionType names an action taken outside the stack.
// Per Rule 116: special actions resolve immediately, and the player
// who took one receives priority afterward.
type SpecialActionType string

const (
	// SpecialActionPlayLand plays a land (Rule 116.2a).
	// Main phase of the player's own turn, empty stack, once per turn.
	SpecialActionPlayLand SpecialActionType = "PLAY_LAND"

	// SpecialActionTurnFaceUp turns a face-down permanent face up
	// (Rule 116.2b). Any time the player has priority.
	SpecialActionTurnFaceUp SpecialActionType = "TURN_FACE_UP"

	// SpecialActionSuspend exiles a card with suspend from hand
	// (Rule 116.2f). Any time the player has priority.
	SpecialActionSuspend SpecialActionType = "SUSPEND"

	// SpecialActionForetell exiles a card face down for {2}
	// (Rule 116.2h). Any time the player has priority during their turn.
	SpecialActionForetell SpecialActionType = "FORETELL"

	// SpecialActionActivateManaAbility activates a mana ability.
	// Mana abilities do not use the stack (Rule 605.3).
	SpecialActionActivateManaAbility SpecialActionType = "ACTIVATE_MANA_ABILITY"
)

// SpecialAction is one attempt at a special action. It is a stateless
// value: constructed, checked and consumed per attempt.
type SpecialAction struct {
	Type   SpecialActionType
	CardID string

	// AbilityIndex selects the mana ability on the permanent for
	// ActivateManaAbility.
	AbilityIndex int
}

// Restriction describes when a special action type may be taken.
type Restriction struct {
	RequiresPriority   bool
	RequiresMainPhase  bool
	RequiresEmptyStack bool
	RequiresOwnTurn    bool
}

// GetRestrictions returns the timing restrictions for an action type.
func GetRestrictions(actionType SpecialActionType) Restriction {
	switch actionType {
	case SpecialActionPlayLand:
		// Rule 116.2a: main phase, empty stack, own turn.
		return Restriction{
			RequiresPriority:   true,
			RequiresMainPhase:  true,
			RequiresEmptyStack: true,
			RequiresOwnTurn:    true,
		}
	case SpecialActionForetell:
		// Rule 116.2h: own turn with priority.
		return Restriction{
			RequiresPriority: true,
			RequiresOwnTurn:  true,
		}
	case SpecialActionActivateManaAbility:
		// Rule 605.3a: whenever the player has priority or is paying
		// a cost; the payment window handles the latter.
		return Restriction{}
	default:
		// Rule 116.2b/f: any time with priority.
		return Restriction{RequiresPriority: true}
	}
}

// ActionTracker counts special actions taken, for per-turn bookkeeping
// and legality queries.
type ActionTracker struct {
	mu            sync.RWMutex
	takenThisTurn map[string]map[SpecialActionType]int
	takenThisGame map[string]map[SpecialActionType]int
}

// NewActionTracker creates an empty tracker.
func NewActionTracker() *ActionTracker {
	return &ActionTracker{
		takenThisTurn: make(map[string]map[SpecialActionType]int),
		takenThisGame: make(map[string]map[SpecialActionType]int),
	}
}

// Record notes that the player took the action.
func (at *ActionTracker) Record(playerID string, actionType SpecialActionType) {
	at.mu.Lock()
	defer at.mu.Unlock()
	if at.takenThisTurn[playerID] == nil {
		at.takenThisTurn[playerID] = make(map[SpecialActionType]int)
	}
	if at.takenThisGame[playerID] == nil {
		at.takenThisGame[playerID] = make(map[SpecialActionType]int)
	}
	at.takenThisTurn[playerID][actionType]++
	at.takenThisGame[playerID][actionType]++
}

// TakenThisTurn returns how many times the player took the action this
// turn.
func (at *ActionTracker) TakenThisTurn(playerID string, actionType SpecialActionType) int {
	at.mu.RLock()
	defer at.mu.RUnlock()
	return at.takenThisTurn[playerID][actionType]
}

// TakenThisGame returns how many times the player took the action this
// game.
func (at *ActionTracker) TakenThisGame(playerID string, actionType SpecialActionType) int {
	at.mu.RLock()
	defer at.mu.RUnlock()
	return at.takenThisGame[playerID][actionType]
}

// ResetTurn clears the per-turn counts.
func (at *ActionTracker) ResetTurn() {
	at.mu.Lock()
	defer at.mu.Unlock()
	at.takenThisTurn = make(map[string]map[SpecialActionType]int)
}

// Reset clears all tracking.
func (at *ActionTracker) Reset() {
	at.mu.Lock()
	defer at.mu.Unlock()
	at.takenThisTurn = make(map[string]map[SpecialActionType]int)
	at.takenThisGame = make(map[string]map[SpecialActionType]int)
}
