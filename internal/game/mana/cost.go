package mana

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SymbolKind identifies a kind of mana symbol.
type SymbolKind string

const (
	SymWhite     SymbolKind = "W"
	SymBlue      SymbolKind = "U"
	SymBlack     SymbolKind = "B"
	SymRed       SymbolKind = "R"
	SymGreen     SymbolKind = "G"
	SymColorless SymbolKind = "C"
	SymGeneric   SymbolKind = "GENERIC"
	SymSnow      SymbolKind = "S"
	SymLife      SymbolKind = "LIFE"
	SymX         SymbolKind = "X"
)

// Symbol is a single mana symbol. Amount carries the generic count for
// SymGeneric and the life amount for SymLife; it is zero otherwise.
type Symbol struct {
	Kind   SymbolKind
	Amount int
}

// Symbol constructors.
var (
	White     = Symbol{Kind: SymWhite}
	Blue      = Symbol{Kind: SymBlue}
	Black     = Symbol{Kind: SymBlack}
	Red       = Symbol{Kind: SymRed}
	Green     = Symbol{Kind: SymGreen}
	Colorless = Symbol{Kind: SymColorless}
	Snow      = Symbol{Kind: SymSnow}
	X         = Symbol{Kind: SymX}
)

// Generic returns a generic mana symbol for the given amount.
func Generic(n int) Symbol {
	return Symbol{Kind: SymGeneric, Amount: n}
}

// Life returns a life payment symbol, the Phyrexian half of a pip like {W/P}.
func Life(n int) Symbol {
	return Symbol{Kind: SymLife, Amount: n}
}

// IsColored reports whether the symbol is one of the five colors.
func (s Symbol) IsColored() bool {
	switch s.Kind {
	case SymWhite, SymBlue, SymBlack, SymRed, SymGreen:
		return true
	}
	return false
}

// ManaType maps a colored or colorless symbol to its pool mana type.
func (s Symbol) ManaType() (ManaType, bool) {
	switch s.Kind {
	case SymWhite:
		return ManaWhite, true
	case SymBlue:
		return ManaBlue, true
	case SymBlack:
		return ManaBlack, true
	case SymRed:
		return ManaRed, true
	case SymGreen:
		return ManaGreen, true
	case SymColorless:
		return ManaColorless, true
	default:
		return "", false
	}
}

// Value returns the symbol's contribution to mana value.
// Life symbols contribute nothing; X contributes the chosen value.
func (s Symbol) Value(xValue int) int {
	switch s.Kind {
	case SymGeneric:
		return s.Amount
	case SymLife:
		return 0
	case SymX:
		return xValue
	default:
		return 1
	}
}

// String returns the symbol's inner text, without braces.
func (s Symbol) String() string {
	switch s.Kind {
	case SymGeneric:
		return strconv.Itoa(s.Amount)
	case SymLife:
		return "P"
	default:
		return string(s.Kind)
	}
}

// Pip is one payable unit of a mana cost. A pip with multiple symbols
// is a disjunction: any one of them satisfies the pip. {W/U} is
// [White, Blue], {B/P} is [Black, Life(2)], {2/G} is [Generic(2), Green].
type Pip []Symbol

// HasGenericOrX reports whether the pip contains a generic or X symbol.
// Such pips are paid last so colored mana is not drained prematurely.
func (p Pip) HasGenericOrX() bool {
	for _, s := range p {
		if s.Kind == SymGeneric || s.Kind == SymX {
			return true
		}
	}
	return false
}

// HasLife reports whether the pip has a Phyrexian life alternative.
func (p Pip) HasLife() bool {
	for _, s := range p {
		if s.Kind == SymLife {
			return true
		}
	}
	return false
}

// Value returns the pip's contribution to mana value: the largest
// value among its alternatives, so {2/W} counts 2 and {W/P} counts 1.
func (p Pip) Value(xValue int) int {
	max := 0
	for _, s := range p {
		if v := s.Value(xValue); v > max {
			max = v
		}
	}
	return max
}

// String renders the pip in oracle form, e.g. "{W/P}".
func (p Pip) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}
	return "{" + strings.Join(parts, "/") + "}"
}

// Cost is an ordered list of pips, all of which must be paid.
type Cost struct {
	pips []Pip
}

// CostFromPips builds a cost from explicit pips.
func CostFromPips(pips ...Pip) Cost {
	return Cost{pips: pips}
}

// CostFromSymbols builds a cost with one single-alternative pip per symbol.
func CostFromSymbols(symbols ...Symbol) Cost {
	pips := make([]Pip, len(symbols))
	for i, s := range symbols {
		pips[i] = Pip{s}
	}
	return Cost{pips: pips}
}

var symbolPattern = regexp.MustCompile(`\{([^}]+)\}`)

// ParseCost parses a mana cost string like "{1}{G}", "{X}{R}", "{W/P}{S}".
// Supports generic {N}, colored {W}..{G}, colorless {C}, snow {S}, X {X},
// hybrid {W/U}, monocolor hybrid {2/B}, and Phyrexian {B/P}.
func ParseCost(costStr string) (Cost, error) {
	if costStr == "" {
		return Cost{}, nil
	}

	var pips []Pip
	matches := symbolPattern.FindAllStringSubmatch(costStr, -1)
	if len(matches) == 0 {
		return Cost{}, fmt.Errorf("malformed mana cost %q", costStr)
	}

	for _, match := range matches {
		text := strings.ToUpper(strings.TrimSpace(match[1]))
		pip, err := parsePip(text)
		if err != nil {
			return Cost{}, err
		}
		pips = append(pips, pip)
	}

	return Cost{pips: pips}, nil
}

// MustParseCost is ParseCost that panics on bad input, for literals.
func MustParseCost(costStr string) Cost {
	c, err := ParseCost(costStr)
	if err != nil {
		panic(err)
	}
	return c
}

func parsePip(text string) (Pip, error) {
	parts := strings.Split(text, "/")
	pip := make(Pip, 0, len(parts))
	for _, part := range parts {
		sym, err := parseSymbol(part)
		if err != nil {
			return nil, fmt.Errorf("unknown mana symbol {%s}", text)
		}
		pip = append(pip, sym)
	}
	return pip, nil
}

func parseSymbol(s string) (Symbol, error) {
	switch s {
	case "W":
		return White, nil
	case "U":
		return Blue, nil
	case "B":
		return Black, nil
	case "R":
		return Red, nil
	case "G":
		return Green, nil
	case "C":
		return Colorless, nil
	case "S":
		return Snow, nil
	case "X":
		return X, nil
	case "P":
		// Phyrexian alternative: pay 2 life instead of the colored half.
		return Life(2), nil
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		return Generic(n), nil
	}
	return Symbol{}, fmt.Errorf("unknown mana symbol %q", s)
}

// Pips returns the cost's pips. The slice must not be mutated.
func (c Cost) Pips() []Pip {
	return c.pips
}

// IsEmpty reports whether the cost has no pips.
func (c Cost) IsEmpty() bool {
	return len(c.pips) == 0
}

// ManaValue returns the converted cost, with X pips valued at xValue.
func (c Cost) ManaValue(xValue int) int {
	total := 0
	for _, p := range c.pips {
		total += p.Value(xValue)
	}
	return total
}

// HasX reports whether the cost contains an X pip.
func (c Cost) HasX() bool {
	for _, p := range c.pips {
		for _, s := range p {
			if s.Kind == SymX {
				return true
			}
		}
	}
	return false
}

// GenericTotal returns the total generic mana in pure generic pips.
func (c Cost) GenericTotal() int {
	total := 0
	for _, p := range c.pips {
		if len(p) == 1 && p[0].Kind == SymGeneric {
			total += p[0].Amount
		}
	}
	return total
}

// ReduceGeneric returns a copy of the cost with up to n generic mana
// removed from its pure generic pips. Colored, hybrid and X pips are
// never reduced.
func (c Cost) ReduceGeneric(n int) Cost {
	if n <= 0 {
		return c
	}
	remaining := n
	var pips []Pip
	for _, p := range c.pips {
		if remaining > 0 && len(p) == 1 && p[0].Kind == SymGeneric {
			amount := p[0].Amount
			if amount <= remaining {
				remaining -= amount
				continue
			}
			pips = append(pips, Pip{Generic(amount - remaining)})
			remaining = 0
			continue
		}
		pips = append(pips, p)
	}
	return Cost{pips: pips}
}

// ReduceColored returns a copy of the cost with up to n strict pips of
// the given mana type removed. Hybrid and Phyrexian pips keep their
// choices.
func (c Cost) ReduceColored(t ManaType, n int) Cost {
	if n <= 0 {
		return c
	}
	remaining := n
	var pips []Pip
	for _, p := range c.pips {
		if remaining > 0 && len(p) == 1 {
			if mt, ok := p[0].ManaType(); ok && mt == t {
				remaining--
				continue
			}
		}
		pips = append(pips, p)
	}
	return Cost{pips: pips}
}

// String renders the cost in oracle form. An empty cost renders as "{0}".
func (c Cost) String() string {
	if len(c.pips) == 0 {
		return "{0}"
	}
	var b strings.Builder
	for _, p := range c.pips {
		b.WriteString(p.String())
	}
	return b.String()
}
