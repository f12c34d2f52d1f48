// Package engine ties game state, cost payment and special actions
// together behind the facade the server talks to.
package engine

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/maigus/maigus-engine-go/internal/game"
	"github.com/maigus/maigus-engine-go/internal/game/costs"
	"github.com/maigus/maigus-engine-go/internal/game/rules"
)

// Engine owns one game: its state, its special action runner and the
// decision makers answering choices for each player. All mutating
// operations serialize on the engine's lock.
type Engine struct {
	ID     string
	State  *game.State
	Runner *rules.Runner

	logger   *zap.Logger
	recorder *Recorder

	mu        sync.Mutex
	decisions map[string]game.DecisionMaker
}

// New creates an engine with an empty game. A nil logger disables
// logging.
func New(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		ID:        uuid.NewString(),
		State:     game.NewState(),
		Runner:    rules.NewRunner(logger),
		logger:    logger,
		decisions: make(map[string]game.DecisionMaker),
	}
}

// SetRecorder attaches a replay recorder. The engine records a
// snapshot after every successful mutation.
func (e *Engine) SetRecorder(rec *Recorder) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.recorder = rec
	if rec != nil {
		rec.StartRecording(e.ID)
	}
}

// AddPlayer creates a player and seats them in turn order.
func (e *Engine) AddPlayer(name string, life int) *game.Player {
	e.mu.Lock()
	defer e.mu.Unlock()
	p := game.NewPlayer(uuid.NewString(), name, life)
	e.State.AddPlayer(p)
	return p
}

// SetDecisionMaker registers the decision maker answering a player's
// payment choices. Unregistered players fall back to declining.
func (e *Engine) SetDecisionMaker(playerID string, dm game.DecisionMaker) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.decisions[playerID] = dm
}

func (e *Engine) decision(playerID string) game.DecisionMaker {
	if dm, ok := e.decisions[playerID]; ok {
		return dm
	}
	return nil
}

// CanSubmit reports whether the action would be legal, without
// consulting any decision maker.
func (e *Engine) CanSubmit(playerID string, action rules.SpecialAction) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.Runner.CanPerform(e.State, playerID, action)
}

// Submit validates and performs a special action for the player.
func (e *Engine) Submit(playerID string, action rules.SpecialAction) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.Runner.Perform(e.State, playerID, action, e.decision(playerID)); err != nil {
		e.logger.Debug("action rejected",
			zap.String("player", playerID),
			zap.String("action", string(action.Type)),
			zap.Error(err))
		return err
	}
	e.record()
	return nil
}

// AvailableActions filters candidates down to the ones the player
// could take, counting mana they could produce as payable.
func (e *Engine) AvailableActions(playerID string, candidates []rules.SpecialAction) []rules.SpecialAction {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []rules.SpecialAction
	for _, a := range candidates {
		if e.Runner.CanPerformCheck(e.State, playerID, a) == nil {
			out = append(out, a)
		}
	}
	return out
}

// CandidateActions enumerates every special action the player could
// plausibly attempt: land plays, suspends and foretells for hand cards,
// face-up turns for face-down permanents, and registered mana abilities.
// Legality is not checked; pass the result to AvailableActions for that.
func (e *Engine) CandidateActions(playerID string) []rules.SpecialAction {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []rules.SpecialAction
	if p, ok := e.State.Player(playerID); ok {
		for _, id := range p.Hand {
			out = append(out,
				rules.SpecialAction{Type: rules.SpecialActionPlayLand, CardID: id},
				rules.SpecialAction{Type: rules.SpecialActionSuspend, CardID: id},
				rules.SpecialAction{Type: rules.SpecialActionForetell, CardID: id},
			)
		}
	}
	for _, o := range e.State.BattlefieldControlledBy(playerID) {
		if o.FaceDown {
			out = append(out, rules.SpecialAction{Type: rules.SpecialActionTurnFaceUp, CardID: o.ID})
		}
		for _, ab := range e.Runner.Abilities.Abilities(o.ID) {
			out = append(out, rules.SpecialAction{
				Type:         rules.SpecialActionActivateManaAbility,
				CardID:       o.ID,
				AbilityIndex: ab.Index,
			})
		}
	}
	return out
}

// PayCost validates every component of the total cost and pays them in
// order, after applying registered cost reductions. Mana abilities may
// be activated through the engine while the payment window is open.
func (e *Engine) PayCost(playerID, sourceID string, total costs.TotalCost, x *int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.payTotal(playerID, sourceID, total, x)
}

// PayCostWithOptions pays the base cost plus whichever optional costs
// the player's decision maker takes on. Options the player could not
// pay are never offered; repeatable options (multikicker) are offered
// as a count bounded by the player's floating mana.
func (e *Engine) PayCostWithOptions(playerID, sourceID string, base costs.TotalCost, x *int, optional []*costs.OptionalCost) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	dm := e.decision(playerID)
	comps := append([]costs.Payer(nil), base.Components()...)

	cc := costs.CheckContext{SourceID: sourceID, PayerID: playerID}
	xVal := 0
	if x != nil {
		xVal = *x
		cc.XValue = xVal
	}

	p, seated := e.State.Player(playerID)
	for _, oc := range optional {
		if oc == nil || dm == nil || !seated {
			continue
		}
		if oc.Cost.CanPay(e.State, cc) != nil {
			continue
		}
		if !dm.ChooseYesNo("Pay " + oc.Display() + "?") {
			continue
		}
		times := 1
		if oc.Repeatable {
			if ceiling := maxRepeats(p, base, oc.Cost, xVal); ceiling > 1 {
				times = dm.ChooseNumber("Pay "+oc.Display()+" how many times?", 1, ceiling)
			}
		}
		for i := 0; i < times; i++ {
			comps = append(comps, oc.Cost.Components()...)
		}
	}

	return e.payTotal(playerID, sourceID, costs.FromComponents(comps...), x)
}

// payTotal runs validate-then-pay with the engine lock held.
func (e *Engine) payTotal(playerID, sourceID string, total costs.TotalCost, x *int) error {
	total = e.Runner.ApplyCostReductions(sourceID, total)

	cc := costs.CheckContext{SourceID: sourceID, PayerID: playerID}
	if x != nil {
		cc.XValue = *x
	}
	validated, err := costs.Validate(e.State, cc, total)
	if err != nil {
		return err
	}

	ctx := costs.NewContext(sourceID, playerID).WithDecision(e.decision(playerID))
	if x != nil {
		ctx.WithX(*x)
	}

	e.Runner.EnterPaymentWindow()
	err = validated.PayAll(e.State, ctx)
	e.Runner.ExitPaymentWindow()
	if err != nil {
		return err
	}
	e.record()
	return nil
}

// maxRepeats bounds a repeatable optional cost by the floating mana
// left after the base cost. Validation cannot bound it: components are
// checked independently, so any number of copies would pass.
func maxRepeats(p *game.Player, base, opt costs.TotalCost, x int) int {
	per := manaValueOf(opt, x)
	if per == 0 {
		return 1
	}
	avail := p.Pool.Total() - manaValueOf(base, x)
	if avail < per {
		return 1
	}
	return avail / per
}

func manaValueOf(tc costs.TotalCost, x int) int {
	total := 0
	for _, c := range tc.Components() {
		if mc, ok := costs.AsManaCost(c); ok {
			total += mc.ManaValue(x)
		}
	}
	return total
}

// BeginTurn starts a new turn for the player: untap, clear summoning
// sickness, reset per-turn bookkeeping.
func (e *Engine) BeginTurn(playerID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.State.Turn++
	e.State.Phase = game.PhasePrecombatMain
	e.State.ActivePlayer = playerID
	e.State.PriorityPlayer = playerID

	if p, ok := e.State.Player(playerID); ok {
		p.BeginTurn()
	}
	for _, o := range e.State.BattlefieldControlledBy(playerID) {
		o.Tapped = false
		o.SummoningSick = false
	}
	e.Runner.Tracker.ResetTurn()
	e.record()
}

// Snapshot captures the current game state.
func (e *Engine) Snapshot() *StateSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Snapshot(e.ID, e.State)
}

// record must be called with the engine lock held.
func (e *Engine) record() {
	if e.recorder != nil {
		e.recorder.RecordState(e.ID, Snapshot(e.ID, e.State))
	}
}
