package game

// FallbackStrategy controls what a decision maker does when no
// explicit choice is available.
type FallbackStrategy string

const (
	// FallbackDecline declines optional choices.
	FallbackDecline FallbackStrategy = "DECLINE"
	// FallbackFirstOption takes the first legal option.
	FallbackFirstOption FallbackStrategy = "FIRST_OPTION"
	// FallbackMaximum chooses the largest number or the most objects.
	FallbackMaximum FallbackStrategy = "MAXIMUM"
	// FallbackMinimum chooses the smallest number or the fewest objects.
	FallbackMinimum FallbackStrategy = "MINIMUM"
	// FallbackAccept accepts yields and optional effects.
	FallbackAccept FallbackStrategy = "ACCEPT"
)

// DecisionMaker answers the choices cost payment needs from a player:
// which permanents to sacrifice, which cards to discard or exile, and
// the values of variable amounts.
type DecisionMaker interface {
	// ChooseObjects picks between min and max IDs from candidates.
	ChooseObjects(prompt string, candidates []string, min, max int) []string
	// ChooseNumber picks a number in [min, max].
	ChooseNumber(prompt string, min, max int) int
	// ChooseYesNo answers an optional yes/no question.
	ChooseYesNo(prompt string) bool
	// ChooseDistribution allocates total across targets, bounded per
	// target by limits. The returned allocations must sum to total.
	ChooseDistribution(prompt string, targets []string, total int, limits map[string]int) map[string]int
	// Fallback reports the strategy used when the player is absent.
	Fallback() FallbackStrategy
}

// AutoDecisionMaker resolves every choice from a fallback strategy,
// with no player involved. Used for AI-controlled payments and tests.
type AutoDecisionMaker struct {
	Strategy FallbackStrategy
}

// ChooseObjects implements DecisionMaker.
func (a AutoDecisionMaker) ChooseObjects(_ string, candidates []string, min, max int) []string {
	if max > len(candidates) {
		max = len(candidates)
	}
	if min > max {
		min = max
	}
	switch a.Strategy {
	case FallbackMaximum, FallbackAccept:
		return append([]string(nil), candidates[:max]...)
	case FallbackFirstOption:
		if max == 0 {
			return nil
		}
		n := min
		if n == 0 {
			n = 1
		}
		return append([]string(nil), candidates[:n]...)
	case FallbackMinimum:
		return append([]string(nil), candidates[:min]...)
	default:
		return append([]string(nil), candidates[:min]...)
	}
}

// ChooseNumber implements DecisionMaker.
func (a AutoDecisionMaker) ChooseNumber(_ string, min, max int) int {
	switch a.Strategy {
	case FallbackMaximum, FallbackAccept:
		return max
	default:
		return min
	}
}

// ChooseDistribution implements DecisionMaker. Targets are filled
// greedily in order up to their limits until total is allocated.
func (a AutoDecisionMaker) ChooseDistribution(_ string, targets []string, total int, limits map[string]int) map[string]int {
	allocation := make(map[string]int)
	remaining := total
	for _, target := range targets {
		if remaining == 0 {
			break
		}
		take := limits[target]
		if take > remaining {
			take = remaining
		}
		if take > 0 {
			allocation[target] = take
			remaining -= take
		}
	}
	return allocation
}

// ChooseYesNo implements DecisionMaker.
func (a AutoDecisionMaker) ChooseYesNo(string) bool {
	switch a.Strategy {
	case FallbackAccept, FallbackMaximum, FallbackFirstOption:
		return true
	default:
		return false
	}
}

// Fallback implements DecisionMaker.
func (a AutoDecisionMaker) Fallback() FallbackStrategy {
	if a.Strategy == "" {
		return FallbackDecline
	}
	return a.Strategy
}
