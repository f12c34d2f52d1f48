package counters

// Counter represents a named counter on an object or player.
type Counter struct {
	Name  string
	Count int
}

// NewCounter creates a new counter with the given name and count.
func NewCounter(name string, count int) *Counter {
	if count <= 0 {
		count = 1
	}
	return &Counter{
		Name:  name,
		Count: count,
	}
}

// Add adds the specified amount to the counter.
func (c *Counter) Add(amount int) {
	if amount > 0 {
		c.Count += amount
	}
}

// Remove removes the specified amount from the counter.
// Will not allow count to go below 0.
func (c *Counter) Remove(amount int) {
	if amount > 0 {
		if c.Count >= amount {
			c.Count -= amount
		} else {
			c.Count = 0
		}
	}
}

// Copy creates a deep copy of the counter.
func (c *Counter) Copy() *Counter {
	return &Counter{
		Name:  c.Name,
		Count: c.Count,
	}
}

// Counters manages a collection of counters keyed by name.
type Counters struct {
	Counters map[string]*Counter
}

// NewCounters creates a new Counters collection.
func NewCounters() *Counters {
	return &Counters{
		Counters: make(map[string]*Counter),
	}
}

// AddCounter adds a counter to the collection.
// If a counter with the same name already exists, adds to its count.
func (cs *Counters) AddCounter(counter *Counter) {
	if counter == nil {
		return
	}
	if existing, ok := cs.Counters[counter.Name]; ok {
		existing.Add(counter.Count)
	} else {
		cs.Counters[counter.Name] = counter.Copy()
	}
}

// Add adds amount counters of the given type.
func (cs *Counters) Add(ct CounterType, amount int) {
	cs.AddCounter(NewCounter(string(ct), amount))
}

// RemoveCounter removes the specified amount of counters of the given name.
// Returns true if any counters were removed.
func (cs *Counters) RemoveCounter(name string, amount int) bool {
	if amount <= 0 {
		return false
	}
	if counter, ok := cs.Counters[name]; ok {
		counter.Remove(amount)
		if counter.Count == 0 {
			delete(cs.Counters, name)
		}
		return true
	}
	return false
}

// Remove removes amount counters of the given type.
func (cs *Counters) Remove(ct CounterType, amount int) bool {
	return cs.RemoveCounter(string(ct), amount)
}

// GetCount returns the count of counters with the given name.
func (cs *Counters) GetCount(name string) int {
	if counter, ok := cs.Counters[name]; ok {
		return counter.Count
	}
	return 0
}

// Count returns the count of counters of the given type.
func (cs *Counters) Count(ct CounterType) int {
	return cs.GetCount(string(ct))
}

// HasCounter returns true if there are any counters with the given name.
func (cs *Counters) HasCounter(name string) bool {
	return cs.GetCount(name) > 0
}

// GetTotalCount returns the total number of all counters.
func (cs *Counters) GetTotalCount() int {
	total := 0
	for _, counter := range cs.Counters {
		total += counter.Count
	}
	return total
}

// GetAll returns all counters as a map of copies.
func (cs *Counters) GetAll() map[string]*Counter {
	result := make(map[string]*Counter)
	for name, counter := range cs.Counters {
		result[name] = counter.Copy()
	}
	return result
}

// Copy creates a deep copy of the Counters collection.
func (cs *Counters) Copy() *Counters {
	out := NewCounters()
	for name, counter := range cs.Counters {
		out.Counters[name] = counter.Copy()
	}
	return out
}

// CounterView represents a counter in the view format.
type CounterView struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ToView converts counters to the view format.
func (cs *Counters) ToView() []CounterView {
	var views []CounterView
	for name, counter := range cs.Counters {
		views = append(views, CounterView{
			Name:  name,
			Count: counter.Count,
		})
	}
	return views
}
