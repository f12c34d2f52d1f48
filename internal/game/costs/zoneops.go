package costs

import (
	"github.com/maigus/maigus-engine-go/internal/game"
)

// Shared zone-change helpers. Each takes its snapshot before the move
// so the emitted event and any tags carry last known information.

func sacrificePermanent(s *game.State, ctx *Context, o *game.Object) game.ObjectSnapshot {
	snap := o.Snapshot()
	_ = s.MoveZone(o.ID, game.ZoneGraveyard)
	ctx.AddTag(game.TagSacrificedByCost, snap)
	s.Emit(game.Event{
		Type:        game.EventSacrifice,
		SourceID:    ctx.SourceID,
		TargetID:    o.ID,
		PlayerID:    ctx.PayerID,
		Data:        snap.Name,
		Description: "Sacrificed " + snap.Name,
	})
	return snap
}

func discardCard(s *game.State, ctx *Context, o *game.Object) game.ObjectSnapshot {
	snap := o.Snapshot()
	_ = s.MoveZone(o.ID, game.ZoneGraveyard)
	s.Emit(game.Event{
		Type:        game.EventDiscard,
		SourceID:    ctx.SourceID,
		TargetID:    o.ID,
		PlayerID:    ctx.PayerID,
		Data:        snap.Name,
		Description: "Discarded " + snap.Name,
	})
	return snap
}

func exileCard(s *game.State, ctx *Context, o *game.Object) game.ObjectSnapshot {
	snap := o.Snapshot()
	_ = s.MoveZone(o.ID, game.ZoneExile)
	ctx.AddTag(game.TagExiledByCost, snap)
	s.Emit(game.Event{
		Type:        game.EventExile,
		SourceID:    ctx.SourceID,
		TargetID:    o.ID,
		PlayerID:    ctx.PayerID,
		Data:        snap.Name,
		Description: "Exiled " + snap.Name,
	})
	return snap
}

func returnToHand(s *game.State, ctx *Context, o *game.Object) game.ObjectSnapshot {
	snap := o.Snapshot()
	_ = s.MoveZone(o.ID, game.ZoneHand)
	s.Emit(game.Event{
		Type:        game.EventReturnToHand,
		SourceID:    ctx.SourceID,
		TargetID:    o.ID,
		PlayerID:    ctx.PayerID,
		Data:        snap.Name,
		Description: "Returned " + snap.Name + " to hand",
	})
	return snap
}

// matchingHandCards returns the payer's hand cards matching the card
// type and color restrictions, excluding the source, in hand order.
func matchingHandCards(s *game.State, payerID, sourceID, cardType, color string) []*game.Object {
	p, ok := s.Player(payerID)
	if !ok {
		return nil
	}
	var out []*game.Object
	for _, id := range p.Hand {
		o, ok := s.Object(id)
		if !ok || o.ID == sourceID {
			continue
		}
		if cardType != "" && !o.IsType(cardType) {
			continue
		}
		if color != "" && !o.HasColor(color) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func objectIDs(objects []*game.Object) []string {
	ids := make([]string, len(objects))
	for i, o := range objects {
		ids[i] = o.ID
	}
	return ids
}
