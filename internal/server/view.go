package server

import (
	"strings"

	"github.com/maigus/maigus-engine-go/internal/engine"
	"github.com/maigus/maigus-engine-go/internal/game"
)

// GameView is the JSON shape clients render.
type GameView struct {
	GameID         string       `json:"game_id"`
	Turn           int          `json:"turn"`
	Phase          string       `json:"phase"`
	ActivePlayer   string       `json:"active_player"`
	PriorityPlayer string       `json:"priority_player"`
	Players        []PlayerView `json:"players"`
	Battlefield    []CardView   `json:"battlefield"`
	Exile          []CardView   `json:"exile"`
	Stack          []string     `json:"stack"`
	Checksum       string       `json:"checksum"`
}

// PlayerView shows a player's public state. Hidden zones appear as
// counts only.
type PlayerView struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Life           int            `json:"life"`
	Energy         int            `json:"energy,omitempty"`
	HandCount      int            `json:"hand_count"`
	LibraryCount   int            `json:"library_count"`
	GraveyardCount int            `json:"graveyard_count"`
	LandPlays      int            `json:"land_plays"`
	Pool           map[string]int `json:"pool,omitempty"`
}

// CardView shows one visible object.
type CardView struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Zone       string         `json:"zone"`
	Controller string         `json:"controller"`
	Owner      string         `json:"owner"`
	Tapped     bool           `json:"tapped"`
	FaceDown   bool           `json:"face_down"`
	Suspended  bool           `json:"suspended"`
	Foretold   bool           `json:"foretold"`
	Counters   map[string]int `json:"counters,omitempty"`
}

// BuildView renders a snapshot into the client-facing shape. Face-down
// objects hide their name and types from everyone; the controller
// learns them through targeted messages, not the shared view.
func BuildView(snap *engine.StateSnapshot) GameView {
	view := GameView{
		GameID:         snap.GameID,
		Turn:           snap.Turn,
		Phase:          string(snap.Phase),
		ActivePlayer:   snap.ActivePlayer,
		PriorityPlayer: snap.PriorityPlayer,
		Stack:          append([]string(nil), snap.Stack...),
		Checksum:       snap.Checksum(),
	}

	for _, p := range snap.Players {
		pv := PlayerView{
			ID:             p.ID,
			Name:           p.Name,
			Life:           p.Life,
			Energy:         p.Energy,
			HandCount:      len(p.Hand),
			LibraryCount:   len(p.Library),
			GraveyardCount: len(p.Graveyard),
			LandPlays:      p.LandPlays,
		}
		if len(p.Pool) > 0 {
			pv.Pool = p.Pool
		}
		view.Players = append(view.Players, pv)
	}

	for _, o := range snap.Objects {
		switch o.Zone {
		case game.ZoneBattlefield, game.ZoneExile:
		default:
			continue
		}
		cv := CardView{
			ID:         o.ID,
			Name:       o.Name,
			Type:       buildTypeLine(o.CardTypes, o.Subtypes),
			Zone:       string(o.Zone),
			Controller: o.Controller,
			Owner:      o.Owner,
			Tapped:     o.Tapped,
			FaceDown:   o.FaceDown,
			Suspended:  o.Suspended,
			Foretold:   o.Foretold,
		}
		if o.FaceDown {
			cv.Name = ""
			cv.Type = ""
		}
		if len(o.Counters) > 0 {
			cv.Counters = o.Counters
		}
		if o.Zone == game.ZoneBattlefield {
			view.Battlefield = append(view.Battlefield, cv)
		} else {
			view.Exile = append(view.Exile, cv)
		}
	}
	return view
}

func buildTypeLine(cardTypes, subtypes []string) string {
	line := strings.Join(cardTypes, " ")
	if len(subtypes) > 0 {
		line += " - " + strings.Join(subtypes, " ")
	}
	return line
}
