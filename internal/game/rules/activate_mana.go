package rules

import (
	"go.uber.org/zap"

	"github.com/maigus/maigus-engine-go/internal/game"
	"github.com/maigus/maigus-engine-go/internal/game/costs"
)

func (r *Runner) canActivateManaAbility(s *game.State, playerID, permanentID string, index int, lenient bool) error {
	permanent, ok := s.Object(permanentID)
	if !ok {
		return actionErr(CodeObjectNotFound, "permanent %s", permanentID)
	}
	if permanent.Zone != game.ZoneBattlefield {
		return wrongZone(game.ZoneBattlefield, permanent.Zone)
	}
	if permanent.Controller != playerID {
		return actionErr(CodeInvalidTarget, "%s does not control %s", playerID, permanent.Name)
	}
	ability, ok := r.Abilities.Ability(permanentID, index)
	if !ok {
		return actionErr(CodeNoSuchAbility, "%s has no mana ability %d", permanent.Name, index)
	}

	// Inside a payment window mana components are checked against
	// potential mana: the cost of one mana ability may be paid by
	// activating another.
	cc := costs.CheckContext{SourceID: permanentID, PayerID: playerID}
	if err := checkCost(s, cc, r.ApplyCostReductions(permanentID, ability.Cost), lenient || r.inPaymentWindow); err != nil {
		return err
	}

	if ability.Condition != nil && !ability.Condition.Holds(s, playerID) {
		return actionErr(CodeCantPayCost, "activate only if you %s", ability.Condition.Describe())
	}
	return nil
}

// performActivateManaAbility pays the ability's cost and adds the
// produced mana. Mana abilities resolve immediately without using the
// stack (Rule 605.3b), and one cannot be activated while another is
// resolving (Rule 605.3c).
func (r *Runner) performActivateManaAbility(s *game.State, playerID, permanentID string, index int, dm game.DecisionMaker) error {
	if r.activating {
		return actionErr(CodeCantPayCost, "a mana ability is already resolving")
	}
	r.activating = true
	defer func() { r.activating = false }()

	ability, _ := r.Abilities.Ability(permanentID, index)
	player, _ := s.Player(playerID)

	ctx := costs.NewContext(permanentID, playerID).WithDecision(dm)
	for _, c := range r.ApplyCostReductions(permanentID, ability.Cost).Components() {
		if err := costs.PayWithChoice(s, c, ctx); err != nil {
			return fromPaymentError(err)
		}
	}

	// Each produced symbol adds one mana, or X when a cost component
	// chose an X (remove X counters: add that much mana).
	amount := 1
	if ctx.XValue != nil {
		amount = ctx.X()
	}
	for _, sym := range ability.Produces {
		mt, ok := sym.ManaType()
		if !ok || amount == 0 {
			continue
		}
		player.Pool.Add(mt, amount)
		s.Emit(game.Event{
			Type:     game.EventManaAdded,
			SourceID: permanentID,
			PlayerID: playerID,
			Amount:   amount,
			Data:     string(mt),
		})
	}

	if ability.ExtraEffect != nil {
		// Rider effects never undo the mana already produced.
		if err := ability.ExtraEffect.ExecuteAsCost(s, ctx); err != nil {
			r.logger.Debug("mana ability rider failed",
				zap.String("permanent", permanentID),
				zap.Error(err))
		}
	}

	s.Emit(game.Event{
		Type:     game.EventAbilityActivate,
		SourceID: permanentID,
		PlayerID: playerID,
		Amount:   index,
	})
	return nil
}
