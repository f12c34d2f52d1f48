package engine

import (
	"bytes"
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/maigus/maigus-engine-go/internal/game"
)

// StateSnapshot is a point-in-time copy of a game, safe to store and
// transmit. Snapshots are value data only: no pointers back into the
// live state.
type StateSnapshot struct {
	GameID         string
	Turn           int
	Phase          game.Phase
	ActivePlayer   string
	PriorityPlayer string
	Stack          []string
	Players        []PlayerSnapshot
	Objects        []ObjectState
	Timestamp      time.Time
}

// PlayerSnapshot captures one player's visible state.
type PlayerSnapshot struct {
	ID        string
	Name      string
	Life      int
	Energy    int
	Hand      []string
	Library   []string
	Graveyard []string
	LandPlays int
	Pool      map[string]int
}

// ObjectState captures one object's visible state.
type ObjectState struct {
	ID            string
	Name          string
	Owner         string
	Controller    string
	Zone          game.Zone
	CardTypes     []string
	Subtypes      []string
	Tapped        bool
	SummoningSick bool
	FaceDown      bool
	Suspended     bool
	Foretold      bool
	Counters      map[string]int
}

// Snapshot captures the current state of the game.
func Snapshot(gameID string, s *game.State) *StateSnapshot {
	snap := &StateSnapshot{
		GameID:         gameID,
		Turn:           s.Turn,
		Phase:          s.Phase,
		ActivePlayer:   s.ActivePlayer,
		PriorityPlayer: s.PriorityPlayer,
		Stack:          append([]string(nil), s.Stack...),
		Timestamp:      time.Now(),
	}

	for _, id := range s.TurnOrder {
		p := s.Players[id]
		ps := PlayerSnapshot{
			ID:        p.ID,
			Name:      p.Name,
			Life:      p.Life,
			Energy:    p.Energy,
			Hand:      append([]string(nil), p.Hand...),
			Library:   append([]string(nil), p.Library...),
			Graveyard: append([]string(nil), p.Graveyard...),
			LandPlays: p.LandsPlayedThisTurn,
			Pool:      make(map[string]int),
		}
		pool := p.Pool.Copy()
		for mt, n := range map[string]int{
			"W": pool.White, "U": pool.Blue, "B": pool.Black,
			"R": pool.Red, "G": pool.Green, "C": pool.Colorless,
		} {
			if n > 0 {
				ps.Pool[mt] = n
			}
		}
		snap.Players = append(snap.Players, ps)
	}

	ids := make([]string, 0, len(s.Objects))
	for id := range s.Objects {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		o := s.Objects[id]
		os := ObjectState{
			ID:            o.ID,
			Name:          o.Name,
			Owner:         o.Owner,
			Controller:    o.Controller,
			Zone:          o.Zone,
			CardTypes:     append([]string(nil), o.CardTypes...),
			Subtypes:      append([]string(nil), o.Subtypes...),
			Tapped:        o.Tapped,
			SummoningSick: o.SummoningSick,
			FaceDown:      o.FaceDown,
			Suspended:     o.Suspended,
			Foretold:      o.Foretold,
			Counters:      make(map[string]int),
		}
		for name, c := range o.Counters.Counters {
			os.Counters[name] = c.Count
		}
		snap.Objects = append(snap.Objects, os)
	}
	return snap
}

// Checksum returns a deterministic SHA-256 of the snapshot, excluding
// the timestamp. Matching checksums across a save/load or a network
// hop mean matching game states.
func (snap *StateSnapshot) Checksum() string {
	sum := sha256.Sum256([]byte(snap.canonical()))
	return hex.EncodeToString(sum[:])
}

// canonical renders the snapshot independent of map iteration order.
func (snap *StateSnapshot) canonical() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "GAME:%s|%d|%s|%s|%s\n",
		snap.GameID, snap.Turn, snap.Phase, snap.ActivePlayer, snap.PriorityPlayer)
	fmt.Fprintf(&buf, "STACK:%s\n", strings.Join(snap.Stack, ","))

	for _, p := range snap.Players {
		fmt.Fprintf(&buf, "PLAYER:%s|%s|%d|%d|%d\n", p.ID, p.Name, p.Life, p.Energy, p.LandPlays)
		fmt.Fprintf(&buf, "  HAND:%s\n", strings.Join(sortedCopy(p.Hand), ","))
		fmt.Fprintf(&buf, "  LIBRARY:%s\n", strings.Join(p.Library, ","))
		fmt.Fprintf(&buf, "  GRAVEYARD:%s\n", strings.Join(p.Graveyard, ","))
		for _, mt := range sortedKeys(p.Pool) {
			fmt.Fprintf(&buf, "  POOL:%s=%d\n", mt, p.Pool[mt])
		}
	}

	for _, o := range snap.Objects {
		fmt.Fprintf(&buf, "OBJECT:%s|%s|%s|%s|%s|%t|%t|%t|%t|%t\n",
			o.ID, o.Name, o.Owner, o.Controller, o.Zone,
			o.Tapped, o.SummoningSick, o.FaceDown, o.Suspended, o.Foretold)
		fmt.Fprintf(&buf, "  TYPES:%s\n", strings.Join(o.CardTypes, ","))
		fmt.Fprintf(&buf, "  SUBTYPES:%s\n", strings.Join(o.Subtypes, ","))
		for _, name := range sortedKeys(o.Counters) {
			fmt.Fprintf(&buf, "  COUNTER:%s=%d\n", name, o.Counters[name])
		}
	}
	return buf.String()
}

// Encode serializes the snapshot with gob, the format replay files and
// the result store persist.
func (snap *StateSnapshot) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(snap); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeSnapshot deserializes a gob-encoded snapshot.
func DecodeSnapshot(data []byte) (*StateSnapshot, error) {
	var snap StateSnapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

func sortedCopy(in []string) []string {
	out := append([]string(nil), in...)
	sort.Strings(out)
	return out
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
