package costs

import (
	"github.com/maigus/maigus-engine-go/internal/game"
)

// PayWithChoice pays one component, resolving a NeedsChoice suspension
// through the context's decision maker. The component never blocks:
// suspension is an explicit result, and resumption happens by
// recording the choice as pre-chosen state and re-invoking Pay.
func PayWithChoice(s *game.State, p Payer, ctx *Context) error {
	res, err := p.Pay(s, ctx)
	if err != nil {
		return err
	}
	if !res.NeedsChoice {
		return nil
	}
	return ResolveChoice(s, p, ctx, res.Prompt)
}

// ResolveChoice gathers the choice a suspended component is waiting
// for, records it on the context and re-invokes Pay.
func ResolveChoice(s *game.State, p Payer, ctx *Context, prompt string) error {
	mode := p.ProcessingMode()

	var candidates []string
	need := 1
	switch mode.Kind {
	case ModeSacrificeTarget:
		sac, ok := p.(*Sacrifice)
		if !ok {
			return OtherError("component with mode %s is not a sacrifice cost", mode)
		}
		candidates = objectIDs(sac.ValidTargets(s, ctx.Check()))
	case ModeDiscardCards:
		d, ok := p.(*Discard)
		if !ok {
			return OtherError("component with mode %s is not a discard cost", mode)
		}
		candidates = objectIDs(d.Candidates(s, ctx.Check()))
		need = mode.Count
	case ModeExileFromHand:
		ec, ok := p.(*ExileFromHand)
		if !ok {
			return OtherError("component with mode %s is not an exile cost", mode)
		}
		candidates = objectIDs(ec.Candidates(s, ctx.Check()))
		need = mode.Count
	default:
		return OtherError("component suspended with unresolvable mode %s", mode)
	}

	dm := ctx.Decision
	if dm == nil {
		dm = game.AutoDecisionMaker{Strategy: game.FallbackFirstOption}
	}
	chosen := normalizeSelection(dm.ChooseObjects(prompt, candidates, need, need), candidates, need)
	ctx.PreChosen = append(ctx.PreChosen, chosen...)

	res, err := p.Pay(s, ctx)
	if err != nil {
		return err
	}
	if res.NeedsChoice {
		return OtherError("choice did not complete payment: %s", res.Prompt)
	}
	return nil
}

// normalizeSelection validates a selection against the candidate
// list: unknown IDs are dropped, duplicates removed, and the result
// padded from the candidates until it reaches need.
func normalizeSelection(chosen, candidates []string, need int) []string {
	valid := make(map[string]bool, len(candidates))
	for _, id := range candidates {
		valid[id] = true
	}

	var out []string
	seen := make(map[string]bool, need)
	for _, id := range chosen {
		if len(out) == need {
			break
		}
		if valid[id] && !seen[id] {
			out = append(out, id)
			seen[id] = true
		}
	}
	for _, id := range candidates {
		if len(out) == need {
			break
		}
		if !seen[id] {
			out = append(out, id)
			seen[id] = true
		}
	}
	return out
}

// LegalSacrificeTargets lists the permanents the payer could
// sacrifice for the component, for presenting choices.
func LegalSacrificeTargets(s *game.State, p Payer, cc CheckContext) []string {
	if sac, ok := p.(*Sacrifice); ok {
		return objectIDs(sac.ValidTargets(s, cc))
	}
	return nil
}

// LegalDiscardCards lists the hand cards the payer could discard for
// the component.
func LegalDiscardCards(s *game.State, p Payer, cc CheckContext) []string {
	if d, ok := p.(*Discard); ok {
		return objectIDs(d.Candidates(s, cc))
	}
	return nil
}

// LegalExileCards lists the hand cards the payer could exile for the
// component.
func LegalExileCards(s *game.State, p Payer, cc CheckContext) []string {
	if ec, ok := p.(*ExileFromHand); ok {
		return objectIDs(ec.Candidates(s, cc))
	}
	return nil
}
