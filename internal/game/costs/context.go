package costs

import (
	"github.com/maigus/maigus-engine-go/internal/game"
)

// Context is the scratch state for one payment attempt. The tag map is
// the only channel through which components of the same total cost
// share data; it is discarded when the attempt ends.
type Context struct {
	SourceID string
	PayerID  string

	// XValue is nil until the payer chooses X. Components that imply
	// an X (remove X counters) set it for later components.
	XValue *int

	Decision game.DecisionMaker

	// PreChosen carries object IDs the player selected before or
	// between pay invocations, enabling choice resumption and the
	// exile-from-hand fast path.
	PreChosen []string

	Tags map[game.TagKey][]game.ObjectSnapshot
}

// NewContext creates a payment context for a source and payer.
func NewContext(sourceID, payerID string) *Context {
	return &Context{
		SourceID: sourceID,
		PayerID:  payerID,
		Tags:     make(map[game.TagKey][]game.ObjectSnapshot),
	}
}

// WithX sets the chosen X value.
func (c *Context) WithX(x int) *Context {
	c.XValue = &x
	return c
}

// WithDecision attaches a decision maker.
func (c *Context) WithDecision(dm game.DecisionMaker) *Context {
	c.Decision = dm
	return c
}

// X returns the chosen X value, or 0 when none was chosen.
func (c *Context) X() int {
	if c.XValue == nil {
		return 0
	}
	return *c.XValue
}

// SetXIfUnset records x as the chosen X value unless one exists.
func (c *Context) SetXIfUnset(x int) {
	if c.XValue == nil {
		c.XValue = &x
	}
}

// AddTag appends snapshots under the given tag.
func (c *Context) AddTag(key game.TagKey, snaps ...game.ObjectSnapshot) {
	if c.Tags == nil {
		c.Tags = make(map[game.TagKey][]game.ObjectSnapshot)
	}
	c.Tags[key] = append(c.Tags[key], snaps...)
}

// Check derives the read-only view used by CanPay.
func (c *Context) Check() CheckContext {
	return CheckContext{
		SourceID: c.SourceID,
		PayerID:  c.PayerID,
		XValue:   c.X(),
	}
}

// CheckContext is the read-only slice of a Context that legality
// checks receive. It carries no decision maker: CanPay must never
// consult one.
type CheckContext struct {
	SourceID string
	PayerID  string
	XValue   int
}

// Result is the outcome of a pay invocation. Payment either completed
// or suspended awaiting a player choice; suspension is a value, not a
// blocked goroutine.
type Result struct {
	NeedsChoice bool
	Prompt      string
}

// Paid is the fully-completed payment result.
var Paid = Result{}

// ChoiceNeeded suspends payment until the described choice is made.
func ChoiceNeeded(prompt string) Result {
	return Result{NeedsChoice: true, Prompt: prompt}
}
