package rules

import (
	"go.uber.org/zap"

	"github.com/maigus/maigus-engine-go/internal/game"
	"github.com/maigus/maigus-engine-go/internal/game/costs"
	"github.com/maigus/maigus-engine-go/internal/game/effects"
	"github.com/maigus/maigus-engine-go/internal/game/mana"
)

// Runner validates and executes special actions. It owns the mana
// ability registry, the replacement effect pipeline applied to
// entering permanents, and per-turn action tracking.
type Runner struct {
	Abilities    *ManaAbilityRegistry
	Replacements *effects.ReplacementManager
	Tracker      *ActionTracker
	Reductions   *mana.CostReductionManager

	logger *zap.Logger

	// inPaymentWindow is set while a cost payment is in progress.
	// Inside the window mana abilities may be activated without
	// priority (Rule 605.3a) and mana payment components are checked
	// against potential mana instead of floating mana.
	inPaymentWindow bool

	// activating guards against a mana ability activating another mana
	// ability mid-activation (Rule 605.3c).
	activating bool
}

// NewRunner creates a runner. A nil logger disables logging.
func NewRunner(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		Abilities:    NewManaAbilityRegistry(),
		Replacements: effects.NewReplacementManager(logger),
		Tracker:      NewActionTracker(),
		Reductions:   mana.NewCostReductionManager(),
		logger:       logger,
	}
}

// ApplyCostReductions rewrites the mana components of a total cost
// through the registered cost reductions. Non-mana components pass
// through untouched.
func (r *Runner) ApplyCostReductions(cardID string, total costs.TotalCost) costs.TotalCost {
	comps := total.Components()
	out := make([]costs.Payer, len(comps))
	for i, c := range comps {
		if mc, ok := costs.AsManaCost(c); ok {
			out[i] = costs.NewManaCost(r.Reductions.ApplyReductions(cardID, mc))
			continue
		}
		out[i] = c
	}
	return costs.FromComponents(out...)
}

// EnterPaymentWindow opens the mana payment window. Callers pair it
// with ExitPaymentWindow.
func (r *Runner) EnterPaymentWindow() {
	r.inPaymentWindow = true
}

// ExitPaymentWindow closes the mana payment window.
func (r *Runner) ExitPaymentWindow() {
	r.inPaymentWindow = false
}

// InPaymentWindow reports whether a cost payment is in progress.
func (r *Runner) InPaymentWindow() bool {
	return r.inPaymentWindow
}

// CanPerform reports whether the player may take the action right now.
// It is read-only and consults no decision maker.
func (r *Runner) CanPerform(s *game.State, playerID string, a SpecialAction) error {
	return r.canPerform(s, playerID, a, false)
}

// CanPerformCheck is the lenient variant used to list available
// actions: mana payment components are checked against mana the player
// could produce rather than mana already floating.
func (r *Runner) CanPerformCheck(s *game.State, playerID string, a SpecialAction) error {
	return r.canPerform(s, playerID, a, true)
}

func (r *Runner) canPerform(s *game.State, playerID string, a SpecialAction, lenient bool) error {
	if _, ok := s.Player(playerID); !ok {
		return actionErr(CodePlayerNotFound, "player %s", playerID)
	}
	if err := r.checkRestrictions(s, playerID, a.Type); err != nil {
		return err
	}
	switch a.Type {
	case SpecialActionPlayLand:
		return r.canPlayLand(s, playerID, a.CardID)
	case SpecialActionTurnFaceUp:
		return r.canTurnFaceUp(s, playerID, a.CardID, lenient)
	case SpecialActionSuspend:
		return r.canSuspend(s, playerID, a.CardID, lenient)
	case SpecialActionForetell:
		return r.canForetell(s, playerID, a.CardID, lenient)
	case SpecialActionActivateManaAbility:
		return r.canActivateManaAbility(s, playerID, a.CardID, a.AbilityIndex, lenient)
	default:
		return actionErr(CodeUnknownAction, "%s", a.Type)
	}
}

// checkCost checks every component of the total cost, with lenient
// mana checking when requested.
func checkCost(s *game.State, cc costs.CheckContext, total costs.TotalCost, lenient bool) error {
	for _, c := range total.Components() {
		var err error
		if lenient && c.ProcessingMode().Kind == costs.ModeManaPayment {
			err = costs.CanPotentiallyPay(c, s, cc)
		} else {
			err = c.CanPay(s, cc)
		}
		if err != nil {
			return fromPaymentError(err)
		}
	}
	return nil
}

// Perform validates the action and executes it. Choices that come up
// during cost payment go to the decision maker. On success the action
// is recorded with the tracker and the player retains priority
// (Rule 116.3c).
func (r *Runner) Perform(s *game.State, playerID string, a SpecialAction, dm game.DecisionMaker) error {
	if err := r.CanPerform(s, playerID, a); err != nil {
		return err
	}

	var err error
	switch a.Type {
	case SpecialActionPlayLand:
		err = r.performPlayLand(s, playerID, a.CardID)
	case SpecialActionTurnFaceUp:
		err = r.performTurnFaceUp(s, playerID, a.CardID, dm)
	case SpecialActionSuspend:
		err = r.performSuspend(s, playerID, a.CardID, dm)
	case SpecialActionForetell:
		err = r.performForetell(s, playerID, a.CardID, dm)
	case SpecialActionActivateManaAbility:
		err = r.performActivateManaAbility(s, playerID, a.CardID, a.AbilityIndex, dm)
	default:
		err = actionErr(CodeUnknownAction, "%s", a.Type)
	}
	if err != nil {
		return err
	}

	r.Tracker.Record(playerID, a.Type)
	r.logger.Debug("special action performed",
		zap.String("player", playerID),
		zap.String("action", string(a.Type)),
		zap.String("card", a.CardID))
	return nil
}

// checkRestrictions enforces the timing restrictions for the action
// type. Inside the payment window only mana abilities pass, and they
// pass unconditionally.
func (r *Runner) checkRestrictions(s *game.State, playerID string, actionType SpecialActionType) error {
	if r.inPaymentWindow && actionType != SpecialActionActivateManaAbility {
		return actionErr(CodeNotYourPriority, "only mana abilities during cost payment")
	}

	restr := GetRestrictions(actionType)
	if restr.RequiresOwnTurn && s.ActivePlayer != playerID {
		return actionErr(CodeNotActivePlayer, "not %s's turn", playerID)
	}
	if restr.RequiresPriority && s.PriorityPlayer != playerID {
		return actionErr(CodeNotYourPriority, "%s does not have priority", playerID)
	}
	if restr.RequiresMainPhase && !s.Phase.IsMain() {
		return actionErr(CodeWrongPhase, "requires a main phase, in %s", s.Phase)
	}
	if restr.RequiresEmptyStack && !s.StackEmpty() {
		return actionErr(CodeStackNotEmpty, "%d object(s) on the stack", len(s.Stack))
	}
	return nil
}
