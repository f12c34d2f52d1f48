package counters

// CounterType represents a type of counter.
type CounterType string

const (
	// Player counter types
	CounterTypeLoyalty    CounterType = "loyalty"
	CounterTypePoison     CounterType = "poison"
	CounterTypeEnergy     CounterType = "energy"
	CounterTypeExperience CounterType = "experience"

	// Power/toughness boost counters
	CounterTypeP1P1 CounterType = "+1/+1"
	CounterTypeM1M1 CounterType = "-1/-1"

	// Counters commonly removed or added as costs
	CounterTypeAge       CounterType = "age"
	CounterTypeBlaze     CounterType = "blaze"
	CounterTypeCharge    CounterType = "charge"
	CounterTypeDepletion CounterType = "depletion"
	CounterTypeFade      CounterType = "fade"
	CounterTypeIce       CounterType = "ice"
	CounterTypeKi        CounterType = "ki"
	CounterTypeLore      CounterType = "lore"
	CounterTypeQuest     CounterType = "quest"
	CounterTypeSpore     CounterType = "spore"
	CounterTypeStorage   CounterType = "storage"
	CounterTypeStun      CounterType = "stun"
	CounterTypeTime      CounterType = "time"
)

// String returns the string representation of the counter type.
func (ct CounterType) String() string {
	return string(ct)
}

// CreateInstance creates a counter instance of this type with the given amount.
func (ct CounterType) CreateInstance(amount int) *Counter {
	return NewCounter(string(ct), amount)
}
