package mana

import (
	"fmt"
)

// The payment routines below mutate the pool under a single lock.
// Phyrexian pips are handled with two passes: a mana-first pass that
// only falls back to life when a pip's colored half cannot be paid,
// and a life-first pass that commits every Phyrexian pip to life up
// front, freeing colored mana for the remaining pips.

// CanPay reports whether the pool could pay the cost, paying life for
// Phyrexian pips where needed. The pool is not modified.
func (mp *ManaPool) CanPay(cost Cost, xValue int) bool {
	_, ok := mp.Copy().payTracking(cost, xValue, false)
	return ok
}

// CanPayWithAnyColor is CanPay for sources that may spend mana as
// though it were mana of any color.
func (mp *ManaPool) CanPayWithAnyColor(cost Cost, xValue int) bool {
	_, ok := mp.Copy().payTracking(cost, xValue, true)
	return ok
}

// TryPayTrackingLife pays the cost from the pool and returns the life
// that must be paid for Phyrexian pips. On failure the pool is left
// unchanged and an error is returned. The caller is responsible for
// actually deducting the returned life.
func (mp *ManaPool) TryPayTrackingLife(cost Cost, xValue int) (int, error) {
	return mp.tryPayTrackingLife(cost, xValue, false)
}

// TryPayTrackingLifeWithAnyColor is TryPayTrackingLife for sources
// that may spend mana as though it were mana of any color.
func (mp *ManaPool) TryPayTrackingLifeWithAnyColor(cost Cost, xValue int) (int, error) {
	return mp.tryPayTrackingLife(cost, xValue, true)
}

func (mp *ManaPool) tryPayTrackingLife(cost Cost, xValue int, allowAnyColor bool) (int, error) {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	snapshot := &ManaPool{}
	snapshot.restoreFrom(mp)

	life, ok := mp.payTracking(cost, xValue, allowAnyColor)
	if !ok {
		mp.restoreFrom(snapshot)
		return 0, fmt.Errorf("cannot pay mana cost %s", cost)
	}
	return life, nil
}

// payTracking runs the mana-first pass and, if it fails, restores the
// pool and runs the life-first pass. Caller must hold mp.mu, or own
// the pool exclusively as with a Copy.
func (mp *ManaPool) payTracking(cost Cost, xValue int, allowAnyColor bool) (int, bool) {
	snapshot := &ManaPool{}
	snapshot.restoreFrom(mp)

	if life, ok := mp.payInternal(cost, xValue, false, allowAnyColor); ok {
		return life, true
	}
	mp.restoreFrom(snapshot)
	return mp.payInternal(cost, xValue, true, allowAnyColor)
}

// payInternal attempts to pay every pip, accruing life for Phyrexian
// pips. With preferLifeForPhyrexian set, Phyrexian pips are paid with
// life without consulting the pool at all.
func (mp *ManaPool) payInternal(cost Cost, xValue int, preferLifeForPhyrexian, allowAnyColor bool) (int, bool) {
	lifeToPay := 0

	for _, pip := range sortedPips(cost) {
		if preferLifeForPhyrexian && pip.HasLife() {
			for _, sym := range pip {
				if sym.Kind == SymLife {
					lifeToPay += sym.Amount
					break
				}
			}
			continue
		}

		life, ok := mp.payPip(pip, xValue, allowAnyColor)
		if !ok {
			return 0, false
		}
		lifeToPay += life
	}

	return lifeToPay, true
}

// payPip tries the pip's alternatives in order and pays the first one
// the pool can cover. A life alternative always succeeds.
func (mp *ManaPool) payPip(pip Pip, xValue int, allowAnyColor bool) (int, bool) {
	for _, sym := range pip {
		switch sym.Kind {
		case SymWhite, SymBlue, SymBlack, SymRed, SymGreen:
			mt, _ := sym.ManaType()
			if mp.amount(mt) > 0 {
				mp.add(mt, -1)
				return 0, true
			}
			if allowAnyColor && mp.payGeneric(1) {
				return 0, true
			}
		case SymColorless:
			// A colorless requirement is never payable with colored mana.
			if mp.Colorless > 0 {
				mp.Colorless--
				return 0, true
			}
		case SymGeneric:
			if mp.payGeneric(sym.Amount) {
				return 0, true
			}
		case SymX:
			if mp.payGeneric(xValue) {
				return 0, true
			}
		case SymSnow:
			if mp.payGeneric(1) {
				return 0, true
			}
		case SymLife:
			return sym.Amount, true
		}
	}
	return 0, false
}

// payGeneric pays n generic mana, draining colorless first and then
// colors in WUBRG order. Caller must hold mp.mu.
func (mp *ManaPool) payGeneric(n int) bool {
	if n <= 0 {
		return true
	}
	if mp.total() < n {
		return false
	}

	take := n
	if mp.Colorless < take {
		take = mp.Colorless
	}
	mp.Colorless -= take
	n -= take

	for _, mt := range ColorOrder {
		if n == 0 {
			break
		}
		take = n
		if have := mp.amount(mt); have < take {
			take = have
		}
		mp.add(mt, -take)
		n -= take
	}

	return n == 0
}

// MaxXForCost returns the largest X payable for a cost with X pips,
// given the pool's current contents. Phyrexian pips are assumed to be
// paid with life so they do not consume mana. Returns 0 when the cost
// has no X pip or its fixed pips cannot be paid.
func (mp *ManaPool) MaxXForCost(cost Cost) int {
	return mp.maxXForCost(cost, false)
}

// MaxXForCostWithAnyColor is MaxXForCost for sources that may spend
// mana as though it were mana of any color.
func (mp *ManaPool) MaxXForCostWithAnyColor(cost Cost) int {
	return mp.maxXForCost(cost, true)
}

func (mp *ManaPool) maxXForCost(cost Cost, allowAnyColor bool) int {
	xPips := 0
	for _, pip := range cost.Pips() {
		if pipHasX(pip) {
			xPips++
		}
	}
	if xPips == 0 {
		return 0
	}

	scratch := mp.Copy()
	for _, pip := range sortedPips(cost) {
		if pipHasX(pip) || pip.HasLife() {
			continue
		}
		if _, ok := scratch.payPip(pip, 0, allowAnyColor); !ok {
			return 0
		}
	}

	return scratch.total() / xPips
}

func pipHasX(pip Pip) bool {
	for _, sym := range pip {
		if sym.Kind == SymX {
			return true
		}
	}
	return false
}

// sortedPips orders pips so that generic and X pips pay last, keeping
// colored mana available for the pips that require it.
func sortedPips(cost Cost) []Pip {
	pips := cost.Pips()
	ordered := make([]Pip, 0, len(pips))
	for _, p := range pips {
		if !p.HasGenericOrX() {
			ordered = append(ordered, p)
		}
	}
	for _, p := range pips {
		if p.HasGenericOrX() {
			ordered = append(ordered, p)
		}
	}
	return ordered
}
