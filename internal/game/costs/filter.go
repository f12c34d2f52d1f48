package costs

import (
	"strings"

	"github.com/maigus/maigus-engine-go/internal/game"
)

// PermanentFilter selects permanents for sacrifice and return costs.
// CardTypes and Subtypes match any-of; empty slices match everything.
type PermanentFilter struct {
	CardTypes []string
	Subtypes  []string
	// Other excludes the paying cost's source.
	Other    bool
	Token    bool
	Nontoken bool
}

// AnyPermanent matches every permanent the payer controls.
func AnyPermanent() *PermanentFilter {
	return &PermanentFilter{}
}

// FilterType returns a filter for one card type, e.g. "Creature".
func FilterType(cardType string) *PermanentFilter {
	return &PermanentFilter{CardTypes: []string{cardType}}
}

// WithSubtype restricts the filter to a subtype.
func (f *PermanentFilter) WithSubtype(subtype string) *PermanentFilter {
	f.Subtypes = append(f.Subtypes, subtype)
	return f
}

// OtherOnly excludes the source permanent, for "another" wordings.
func (f *PermanentFilter) OtherOnly() *PermanentFilter {
	f.Other = true
	return f
}

// TokensOnly restricts the filter to tokens.
func (f *PermanentFilter) TokensOnly() *PermanentFilter {
	f.Token = true
	return f
}

// NontokensOnly restricts the filter to nontoken permanents.
func (f *PermanentFilter) NontokensOnly() *PermanentFilter {
	f.Nontoken = true
	return f
}

// Matches reports whether the object satisfies the filter for a cost
// paid by controllerID from sourceID.
func (f *PermanentFilter) Matches(o *game.Object, controllerID, sourceID string) bool {
	if o == nil || o.Zone != game.ZoneBattlefield || o.Controller != controllerID {
		return false
	}
	if f.Other && o.ID == sourceID {
		return false
	}
	if f.Token && !o.Token {
		return false
	}
	if f.Nontoken && o.Token {
		return false
	}
	if len(f.CardTypes) > 0 {
		found := false
		for _, t := range f.CardTypes {
			if o.IsType(t) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(f.Subtypes) > 0 {
		found := false
		for _, t := range f.Subtypes {
			if o.HasSubtype(t) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Describe renders the filter for prompts, e.g. "another nontoken Goblin creature".
func (f *PermanentFilter) Describe() string {
	var parts []string
	if f.Other {
		parts = append(parts, "another")
	} else {
		parts = append(parts, "a")
	}
	if f.Token {
		parts = append(parts, "token")
	}
	if f.Nontoken {
		parts = append(parts, "nontoken")
	}
	if len(f.Subtypes) > 0 {
		parts = append(parts, strings.Join(f.Subtypes, " or "))
	}
	if len(f.CardTypes) > 0 {
		var lowered []string
		for _, t := range f.CardTypes {
			lowered = append(lowered, strings.ToLower(t))
		}
		parts = append(parts, strings.Join(lowered, " or "))
	} else if len(f.Subtypes) == 0 {
		parts = append(parts, "permanent")
	}
	return strings.Join(parts, " ")
}
