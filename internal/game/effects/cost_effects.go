package effects

import (
	"fmt"

	"github.com/maigus/maigus-engine-go/internal/game"
	"github.com/maigus/maigus-engine-go/internal/game/costs"
	"github.com/maigus/maigus-engine-go/internal/game/counters"
)

// MoveCounters moves counters from the cost's source onto another
// permanent. Usable as a cost through costs.NewEffectCost.
type MoveCounters struct {
	TargetID string
	Counter  counters.CounterType
	Count    int
}

// NewMoveCounters creates a counter-moving effect.
func NewMoveCounters(targetID string, ct counters.CounterType, count int) *MoveCounters {
	return &MoveCounters{TargetID: targetID, Counter: ct, Count: count}
}

// CanExecuteAsCost implements costs.Effect.
func (e *MoveCounters) CanExecuteAsCost(s *game.State, cc costs.CheckContext) error {
	src, ok := s.Object(cc.SourceID)
	if !ok {
		return fmt.Errorf("source %s not found", cc.SourceID)
	}
	if src.Counters.Count(e.Counter) < e.Count {
		return fmt.Errorf("%s has fewer than %d %s counters", src.Name, e.Count, e.Counter)
	}
	target, ok := s.Object(e.TargetID)
	if !ok || target.Zone != game.ZoneBattlefield {
		return fmt.Errorf("no battlefield target %s", e.TargetID)
	}
	return nil
}

// ExecuteAsCost implements costs.Effect.
func (e *MoveCounters) ExecuteAsCost(s *game.State, ctx *costs.Context) error {
	if err := e.CanExecuteAsCost(s, ctx.Check()); err != nil {
		return err
	}
	src, _ := s.Object(ctx.SourceID)
	target, _ := s.Object(e.TargetID)

	src.Counters.Remove(e.Counter, e.Count)
	target.Counters.Add(e.Counter, e.Count)

	s.Emit(game.Event{
		Type:     game.EventCounterRemoved,
		SourceID: ctx.SourceID,
		TargetID: src.ID,
		PlayerID: ctx.PayerID,
		Amount:   e.Count,
		Data:     string(e.Counter),
	})
	s.Emit(game.Event{
		Type:     game.EventCounterAdded,
		SourceID: ctx.SourceID,
		TargetID: target.ID,
		PlayerID: ctx.PayerID,
		Amount:   e.Count,
		Data:     string(e.Counter),
	})
	return nil
}

// Description implements costs.Effect.
func (e *MoveCounters) Description() string {
	if e.Count == 1 {
		return fmt.Sprintf("Move a %s counter from this permanent onto another", e.Counter)
	}
	return fmt.Sprintf("Move %d %s counters from this permanent onto another", e.Count, e.Counter)
}

// ExileGraveyard exiles the payer's whole graveyard, tagging the
// exiled snapshots on the payment context so later components and the
// resolution can see what left.
type ExileGraveyard struct{}

// NewExileGraveyard creates the exile-your-graveyard effect.
func NewExileGraveyard() *ExileGraveyard {
	return &ExileGraveyard{}
}

// CanExecuteAsCost implements costs.Effect. Always legal: an empty
// graveyard exiles nothing.
func (e *ExileGraveyard) CanExecuteAsCost(s *game.State, cc costs.CheckContext) error {
	if _, ok := s.Player(cc.PayerID); !ok {
		return fmt.Errorf("player %s not found", cc.PayerID)
	}
	return nil
}

// ExecuteAsCost implements costs.Effect.
func (e *ExileGraveyard) ExecuteAsCost(s *game.State, ctx *costs.Context) error {
	p, ok := s.Player(ctx.PayerID)
	if !ok {
		return fmt.Errorf("player %s not found", ctx.PayerID)
	}
	for _, id := range append([]string(nil), p.Graveyard...) {
		o, ok := s.Object(id)
		if !ok {
			continue
		}
		snap := o.Snapshot()
		if err := s.MoveZone(o.ID, game.ZoneExile); err != nil {
			return err
		}
		ctx.AddTag(game.TagExiledByCost, snap)
		s.Emit(game.Event{
			Type:     game.EventExile,
			SourceID: ctx.SourceID,
			TargetID: o.ID,
			PlayerID: ctx.PayerID,
			Data:     snap.Name,
		})
	}
	return nil
}

// Description implements costs.Effect.
func (e *ExileGraveyard) Description() string {
	return "Exile your graveyard"
}
