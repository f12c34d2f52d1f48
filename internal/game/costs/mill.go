package costs

import (
	"fmt"

	"github.com/maigus/maigus-engine-go/internal/game"
)

// Mill moves cards from the top of the payer's library to their
// graveyard. Always legal, even on an empty library; milling fewer
// cards than requested is a successful payment.
type Mill struct {
	Count int
}

// NewMill creates a mill cost.
func NewMill(count int) *Mill {
	return &Mill{Count: count}
}

// CanPay implements Payer.
func (m *Mill) CanPay(s *game.State, cc CheckContext) error {
	if _, ok := s.Player(cc.PayerID); !ok {
		return paymentErr(CodePlayerNotFound, "%s", cc.PayerID)
	}
	return nil
}

// Pay implements Payer.
func (m *Mill) Pay(s *game.State, ctx *Context) (Result, error) {
	if err := m.CanPay(s, ctx.Check()); err != nil {
		return Result{}, err
	}
	p, _ := s.Player(ctx.PayerID)
	n := m.Count
	if n > len(p.Library) {
		n = len(p.Library)
	}
	// Library index 0 is the top.
	toMill := append([]string(nil), p.Library[:n]...)
	for _, id := range toMill {
		o, ok := s.Object(id)
		if !ok {
			continue
		}
		snap := o.Snapshot()
		_ = s.MoveZone(o.ID, game.ZoneGraveyard)
		s.Emit(game.Event{
			Type:     game.EventMill,
			SourceID: ctx.SourceID,
			TargetID: o.ID,
			PlayerID: ctx.PayerID,
			Data:     snap.Name,
		})
	}
	return Paid, nil
}

// Display implements Payer.
func (m *Mill) Display() string {
	if m.Count == 1 {
		return "Mill a card"
	}
	return fmt.Sprintf("Mill %d cards", m.Count)
}

// ProcessingMode implements Payer.
func (m *Mill) ProcessingMode() Mode {
	return Immediate()
}
