package mana

// CostReduction represents a cost reduction effect. Generic pips and
// strict colored pips are reducible; hybrid and X pips keep their
// requirements.
type CostReduction struct {
	ID               string
	GenericReduction int

	// ColorReduction removes up to N strict pips per mana type.
	ColorReduction map[ManaType]int

	AppliesTo func(cardID string, cost Cost) bool
}

// CostReductionManager manages cost reduction effects.
type CostReductionManager struct {
	reductions []*CostReduction
}

// NewCostReductionManager creates a new cost reduction manager.
func NewCostReductionManager() *CostReductionManager {
	return &CostReductionManager{
		reductions: make([]*CostReduction, 0),
	}
}

// AddReduction adds a cost reduction effect.
func (crm *CostReductionManager) AddReduction(reduction *CostReduction) {
	if reduction == nil {
		return
	}
	crm.reductions = append(crm.reductions, reduction)
}

// RemoveReduction removes a cost reduction effect by ID.
func (crm *CostReductionManager) RemoveReduction(id string) {
	for i, red := range crm.reductions {
		if red.ID == id {
			crm.reductions = append(crm.reductions[:i], crm.reductions[i+1:]...)
			return
		}
	}
}

// ApplyReductions applies all applicable cost reductions to a mana cost.
func (crm *CostReductionManager) ApplyReductions(cardID string, cost Cost) Cost {
	generic := 0
	colored := make(map[ManaType]int)
	for _, reduction := range crm.reductions {
		if reduction.AppliesTo == nil || reduction.AppliesTo(cardID, cost) {
			generic += reduction.GenericReduction
			for t, n := range reduction.ColorReduction {
				colored[t] += n
			}
		}
	}
	reduced := cost.ReduceGeneric(generic)
	for _, t := range []ManaType{ManaWhite, ManaBlue, ManaBlack, ManaRed, ManaGreen, ManaColorless} {
		if n := colored[t]; n > 0 {
			reduced = reduced.ReduceColored(t, n)
		}
	}
	return reduced
}
