package rules

import (
	"github.com/maigus/maigus-engine-go/internal/game"
)

func (r *Runner) canPlayLand(s *game.State, playerID, cardID string) error {
	player, _ := s.Player(playerID)
	if !player.CanPlayLand() {
		return actionErr(CodeAlreadyPlayedLand, "%d of %d land play(s) used",
			player.LandsPlayedThisTurn, player.LandPlaysPerTurn)
	}
	card, ok := s.Object(cardID)
	if !ok {
		return actionErr(CodeObjectNotFound, "card %s", cardID)
	}
	if card.Zone != game.ZoneHand {
		return wrongZone(game.ZoneHand, card.Zone)
	}
	if !card.IsType(game.CardTypeLand) {
		return actionErr(CodeNotALand, "%s", card.Name)
	}
	if card.Owner != playerID {
		return actionErr(CodeInvalidTarget, "%s does not own %s", playerID, card.Name)
	}
	return nil
}

// performPlayLand moves the land to the battlefield, applying enters
// replacement effects, and consumes the player's land play.
func (r *Runner) performPlayLand(s *game.State, playerID, cardID string) error {
	card, _ := s.Object(cardID)
	if err := s.MoveZone(cardID, game.ZoneBattlefield); err != nil {
		return actionErr(CodeObjectNotFound, "%v", err)
	}
	card.Controller = playerID
	r.Replacements.ApplyEnters(s, card)

	player, _ := s.Player(playerID)
	player.RecordLandPlay()

	s.Emit(game.Event{
		Type:     game.EventLandPlayed,
		SourceID: cardID,
		PlayerID: playerID,
	})
	return nil
}
