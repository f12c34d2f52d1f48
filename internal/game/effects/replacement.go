// Package effects provides replacement effects applied to permanents
// entering the battlefield, and concrete effects usable as costs.
package effects

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/maigus/maigus-engine-go/internal/game"
	"github.com/maigus/maigus-engine-go/internal/game/counters"
)

// Duration describes how long a replacement effect stays registered.
type Duration string

const (
	DurationPermanent Duration = "PERMANENT"
	DurationEndOfTurn Duration = "END_OF_TURN"
	DurationOneShot   Duration = "ONE_SHOT"
)

// ReplacementEffect modifies how a permanent enters the battlefield.
// Implements the entering-the-battlefield slice of Rule 614:
// replacement effects apply as the event happens, and self-replacement
// effects (from the entering permanent itself) apply first.
type ReplacementEffect interface {
	// ID returns the unique identifier for this effect.
	ID() string

	// SourceID returns the object or ability that created this effect.
	SourceID() string

	// Duration returns how long this effect lasts.
	Duration() Duration

	// Applies reports whether the effect replaces how o enters.
	Applies(s *game.State, o *game.Object) bool

	// Apply modifies the entering permanent.
	Apply(s *game.State, o *game.Object)

	// SelfScope reports whether the effect only applies to its own
	// source entering the battlefield (Rule 614.12).
	SelfScope() bool
}

// BaseReplacementEffect carries the identity fields shared by all
// replacement effects.
type BaseReplacementEffect struct {
	id       string
	sourceID string
	duration Duration
	self     bool
}

// NewBaseReplacementEffect creates the shared identity for a
// replacement effect.
func NewBaseReplacementEffect(sourceID string, duration Duration, selfScope bool) *BaseReplacementEffect {
	source := strings.TrimSpace(sourceID)
	seed := fmt.Sprintf("%s|replacement|%s|%t|%d", source, duration, selfScope, uuid.New().ID())
	return &BaseReplacementEffect{
		id:       uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed)).String(),
		sourceID: source,
		duration: duration,
		self:     selfScope,
	}
}

// ID returns the unique identifier.
func (e *BaseReplacementEffect) ID() string { return e.id }

// SourceID returns the source ID.
func (e *BaseReplacementEffect) SourceID() string { return e.sourceID }

// Duration returns the duration.
func (e *BaseReplacementEffect) Duration() Duration { return e.duration }

// SelfScope reports whether the effect only watches its own source.
func (e *BaseReplacementEffect) SelfScope() bool { return e.self }

// EntersTapped makes matching permanents enter the battlefield tapped.
type EntersTapped struct {
	*BaseReplacementEffect
	// CardType restricts the effect, empty matches everything.
	CardType string
	// Subtype restricts the effect, empty matches everything.
	Subtype string
}

// NewEntersTapped creates an enters-tapped replacement for permanents
// of the given card type and subtype.
func NewEntersTapped(sourceID, cardType, subtype string) *EntersTapped {
	return &EntersTapped{
		BaseReplacementEffect: NewBaseReplacementEffect(sourceID, DurationPermanent, false),
		CardType:              cardType,
		Subtype:               subtype,
	}
}

// NewSelfEntersTapped creates the "this permanent enters tapped"
// self-replacement.
func NewSelfEntersTapped(sourceID string) *EntersTapped {
	return &EntersTapped{
		BaseReplacementEffect: NewBaseReplacementEffect(sourceID, DurationPermanent, true),
	}
}

// Applies implements ReplacementEffect.
func (e *EntersTapped) Applies(_ *game.State, o *game.Object) bool {
	if e.SelfScope() {
		return o.ID == e.SourceID()
	}
	if e.CardType != "" && !o.IsType(e.CardType) {
		return false
	}
	if e.Subtype != "" && !o.HasSubtype(e.Subtype) {
		return false
	}
	return true
}

// Apply implements ReplacementEffect.
func (e *EntersTapped) Apply(_ *game.State, o *game.Object) {
	o.Tapped = true
}

// EntersWithCounters makes its source enter the battlefield with
// counters on it.
type EntersWithCounters struct {
	*BaseReplacementEffect
	Counter counters.CounterType
	Count   int
}

// NewEntersWithCounters creates the "enters with N counters"
// self-replacement.
func NewEntersWithCounters(sourceID string, ct counters.CounterType, count int) *EntersWithCounters {
	return &EntersWithCounters{
		BaseReplacementEffect: NewBaseReplacementEffect(sourceID, DurationPermanent, true),
		Counter:               ct,
		Count:                 count,
	}
}

// Applies implements ReplacementEffect.
func (e *EntersWithCounters) Applies(_ *game.State, o *game.Object) bool {
	return o.ID == e.SourceID()
}

// Apply implements ReplacementEffect.
func (e *EntersWithCounters) Apply(s *game.State, o *game.Object) {
	o.Counters.Add(e.Counter, e.Count)
	s.Emit(game.Event{
		Type:     game.EventCounterAdded,
		SourceID: e.SourceID(),
		TargetID: o.ID,
		PlayerID: o.Controller,
		Amount:   e.Count,
		Data:     string(e.Counter),
	})
}
