// Package server exposes the game engine over websockets: a hub of
// connected clients, a JSON message protocol and client-facing views
// of game state.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/maigus/maigus-engine-go/internal/engine"
	"github.com/maigus/maigus-engine-go/internal/game"
	"github.com/maigus/maigus-engine-go/internal/game/costs"
	"github.com/maigus/maigus-engine-go/internal/game/mana"
	"github.com/maigus/maigus-engine-go/internal/game/rules"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins for development; restrict in production.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub maintains the set of active clients and the games they play in.
type Hub struct {
	Register   chan *Client
	Unregister chan *Client

	logger       *zap.Logger
	recorder     *engine.Recorder
	startingLife int

	mu      sync.RWMutex
	clients map[*Client]bool
	games   map[string]*engine.Engine
}

// NewHub creates a hub. The recorder may be nil to disable replay
// recording for new games.
func NewHub(startingLife int, recorder *engine.Recorder, logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		Register:     make(chan *Client),
		Unregister:   make(chan *Client),
		logger:       logger,
		recorder:     recorder,
		startingLife: startingLife,
		clients:      make(map[*Client]bool),
		games:        make(map[string]*engine.Engine),
	}
}

// Run processes client registration until ctx is cancelled. Run as a
// goroutine.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.logger.Info("hub shutting down")
			h.closeAll()
			return
		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			n := len(h.clients)
			h.mu.Unlock()
			h.logger.Debug("client connected", zap.Int("total", n))
		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			n := len(h.clients)
			h.mu.Unlock()
			h.logger.Debug("client disconnected", zap.Int("total", n))
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		close(c.send)
		delete(h.clients, c)
	}
}

// ServeWS upgrades the HTTP request and starts the client's pumps.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &Client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, 256),
	}
	h.Register <- client

	go client.WritePump()
	go client.ReadPump()
}

// Game returns the engine for a game ID.
func (h *Hub) Game(gameID string) (*engine.Engine, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	eng, ok := h.games[gameID]
	return eng, ok
}

// handleMessage routes one inbound frame. It runs on the client's read
// goroutine; every engine call takes the engine's own lock.
func (h *Hub) handleMessage(c *Client, msg WSMessage) {
	switch msg.Type {
	case MsgCreateGame:
		h.handleCreate(c, msg)
	case MsgJoinGame:
		h.handleJoin(c, msg)
	case MsgSpecialAction:
		h.handleAction(c, msg)
	case MsgPayCost:
		h.handlePayCost(c, msg)
	case MsgAvailableActions:
		h.handleAvailableActions(c)
	case MsgGameState:
		h.sendGameState(c)
	case MsgBeginTurn:
		h.handleBeginTurn(c)
	default:
		c.sendError("unknown message type: "+msg.Type, "")
	}
}

func (h *Hub) handleCreate(c *Client, msg WSMessage) {
	var payload JoinPayload
	if err := json.Unmarshal(msg.Data, &payload); err != nil || payload.Name == "" {
		c.sendError("create_game requires a player name", "")
		return
	}

	eng := engine.New(h.logger)
	if h.recorder != nil {
		eng.SetRecorder(h.recorder)
	}
	p := eng.AddPlayer(payload.Name, h.startingLife)
	eng.SetDecisionMaker(p.ID, game.AutoDecisionMaker{Strategy: game.FallbackAccept})

	h.mu.Lock()
	h.games[eng.ID] = eng
	h.mu.Unlock()

	c.gameID = eng.ID
	c.playerID = p.ID
	h.logger.Info("game created",
		zap.String("game_id", eng.ID),
		zap.String("player", payload.Name),
	)

	c.trySend(marshalMessage(MsgJoined, eng.ID, JoinedPayload{GameID: eng.ID, PlayerID: p.ID}))
	h.broadcastGameState(eng.ID)
}

func (h *Hub) handleJoin(c *Client, msg WSMessage) {
	var payload JoinPayload
	if err := json.Unmarshal(msg.Data, &payload); err != nil || payload.Name == "" {
		c.sendError("join_game requires a player name", "")
		return
	}

	eng, ok := h.Game(msg.GameID)
	if !ok {
		c.sendError("no such game: "+msg.GameID, "")
		return
	}

	p := eng.AddPlayer(payload.Name, h.startingLife)
	eng.SetDecisionMaker(p.ID, game.AutoDecisionMaker{Strategy: game.FallbackAccept})

	c.gameID = eng.ID
	c.playerID = p.ID

	c.trySend(marshalMessage(MsgJoined, eng.ID, JoinedPayload{GameID: eng.ID, PlayerID: p.ID}))
	h.broadcastGameState(eng.ID)
}

func (h *Hub) handleAction(c *Client, msg WSMessage) {
	eng, ok := h.Game(c.gameID)
	if !ok {
		c.sendError("you are not in a game", "")
		return
	}

	var payload ActionPayload
	if err := json.Unmarshal(msg.Data, &payload); err != nil {
		c.sendError("invalid special_action payload", "")
		return
	}

	action := rules.SpecialAction{
		Type:         rules.SpecialActionType(payload.Action),
		CardID:       payload.CardID,
		AbilityIndex: payload.AbilityIndex,
	}
	if err := eng.Submit(c.playerID, action); err != nil {
		c.sendError(err.Error(), actionCode(err))
		return
	}
	h.broadcastGameState(c.gameID)
}

func (h *Hub) handlePayCost(c *Client, msg WSMessage) {
	eng, ok := h.Game(c.gameID)
	if !ok {
		c.sendError("you are not in a game", "")
		return
	}

	var payload PayCostPayload
	if err := json.Unmarshal(msg.Data, &payload); err != nil {
		c.sendError("invalid pay_cost payload", "")
		return
	}
	cost, err := mana.ParseCost(payload.Cost)
	if err != nil {
		c.sendError("invalid mana cost: "+payload.Cost, "")
		return
	}

	if err := eng.PayCost(c.playerID, payload.SourceID, costs.FromMana(cost), payload.X); err != nil {
		c.sendError(err.Error(), actionCode(err))
		return
	}
	h.broadcastGameState(c.gameID)
}

func (h *Hub) handleAvailableActions(c *Client) {
	eng, ok := h.Game(c.gameID)
	if !ok {
		c.sendError("you are not in a game", "")
		return
	}

	legal := eng.AvailableActions(c.playerID, eng.CandidateActions(c.playerID))
	payload := ActionsPayload{Actions: make([]ActionPayload, 0, len(legal))}
	for _, a := range legal {
		payload.Actions = append(payload.Actions, ActionPayload{
			Action:       string(a.Type),
			CardID:       a.CardID,
			AbilityIndex: a.AbilityIndex,
		})
	}
	c.trySend(marshalMessage(MsgAvailableActions, c.gameID, payload))
}

func (h *Hub) handleBeginTurn(c *Client) {
	eng, ok := h.Game(c.gameID)
	if !ok {
		c.sendError("you are not in a game", "")
		return
	}
	eng.BeginTurn(c.playerID)
	h.broadcastGameState(c.gameID)
}

func (h *Hub) sendGameState(c *Client) {
	eng, ok := h.Game(c.gameID)
	if !ok {
		c.sendError("you are not in a game", "")
		return
	}
	c.trySend(marshalMessage(MsgGameState, c.gameID, BuildView(eng.Snapshot())))
}

// broadcastGameState sends the current view to every client seated in
// the game.
func (h *Hub) broadcastGameState(gameID string) {
	eng, ok := h.Game(gameID)
	if !ok {
		return
	}
	data := marshalMessage(MsgGameState, gameID, BuildView(eng.Snapshot()))

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		if client.gameID == gameID {
			client.trySend(data)
		}
	}
}

// actionCode extracts the machine-readable code from an action error.
func actionCode(err error) string {
	var ae *rules.ActionError
	if errors.As(err, &ae) {
		return string(ae.Code)
	}
	return ""
}
