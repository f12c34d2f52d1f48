package server

import "encoding/json"

// WSMessage is the envelope for every websocket frame, in both
// directions. Data carries the type-specific payload.
type WSMessage struct {
	Type     string          `json:"type"`
	GameID   string          `json:"game_id,omitempty"`
	PlayerID string          `json:"player_id,omitempty"`
	Data     json.RawMessage `json:"data,omitempty"`
}

// Inbound message types.
const (
	MsgCreateGame       = "create_game"
	MsgJoinGame         = "join_game"
	MsgSpecialAction    = "special_action"
	MsgPayCost          = "pay_cost"
	MsgAvailableActions = "available_actions"
	MsgGameState        = "game_state"
	MsgBeginTurn        = "begin_turn"
)

// Outbound message types.
const (
	MsgJoined = "joined"
	MsgError  = "error"
)

// JoinPayload names the player creating or joining a game.
type JoinPayload struct {
	Name string `json:"name"`
}

// ActionPayload requests one special action.
type ActionPayload struct {
	Action       string `json:"action"`
	CardID       string `json:"card_id,omitempty"`
	AbilityIndex int    `json:"ability_index,omitempty"`
}

// PayCostPayload requests payment of a mana cost, with an optional
// value chosen for X.
type PayCostPayload struct {
	SourceID string `json:"source_id"`
	Cost     string `json:"cost"`
	X        *int   `json:"x,omitempty"`
}

// JoinedPayload confirms a seat in a game.
type JoinedPayload struct {
	GameID   string `json:"game_id"`
	PlayerID string `json:"player_id"`
}

// ErrorPayload reports a rejected request. Code is the machine-readable
// action error code when one applies.
type ErrorPayload struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ActionsPayload lists the special actions a player may take.
type ActionsPayload struct {
	Actions []ActionPayload `json:"actions"`
}

func marshalMessage(msgType, gameID string, payload any) []byte {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil
	}
	out, err := json.Marshal(WSMessage{Type: msgType, GameID: gameID, Data: data})
	if err != nil {
		return nil
	}
	return out
}
