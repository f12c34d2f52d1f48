package costs

import (
	"fmt"
	"sort"

	"github.com/maigus/maigus-engine-go/internal/game"
	"github.com/maigus/maigus-engine-go/internal/game/counters"
)

// RemoveCounters removes counters of one type from the source.
// A Count of 0 means "remove X counters": the chosen amount becomes
// the context's X value for later components and the effect.
type RemoveCounters struct {
	Counter counters.CounterType
	Count   int
}

// NewRemoveCounters creates a remove-counters cost.
func NewRemoveCounters(ct counters.CounterType, count int) *RemoveCounters {
	return &RemoveCounters{Counter: ct, Count: count}
}

func (rc *RemoveCounters) required(x int) int {
	if rc.Count > 0 {
		return rc.Count
	}
	return x
}

// CanPay implements Payer.
func (rc *RemoveCounters) CanPay(s *game.State, cc CheckContext) error {
	o, ok := s.Object(cc.SourceID)
	if !ok {
		return paymentErr(CodeSourceNotFound, "%s", cc.SourceID)
	}
	need := rc.required(cc.XValue)
	if have := o.Counters.Count(rc.Counter); have < need {
		return paymentErr(CodeInsufficientCounters, "%s has %d %s counters, need %d", o.Name, have, rc.Counter, need)
	}
	return nil
}

// Pay implements Payer. For an X cost with no X chosen yet, the
// decision maker picks the amount and the context records it.
func (rc *RemoveCounters) Pay(s *game.State, ctx *Context) (Result, error) {
	if err := rc.CanPay(s, ctx.Check()); err != nil {
		return Result{}, err
	}
	o, _ := s.Object(ctx.SourceID)

	need := rc.Count
	if need == 0 {
		if ctx.XValue != nil {
			need = *ctx.XValue
		} else {
			available := o.Counters.Count(rc.Counter)
			if ctx.Decision != nil {
				need = ctx.Decision.ChooseNumber(rc.Display(), 0, available)
			} else {
				need = available
			}
			ctx.SetXIfUnset(need)
		}
	}

	if have := o.Counters.Count(rc.Counter); have < need {
		return Result{}, paymentErr(CodeInsufficientCounters, "%s has %d %s counters, need %d", o.Name, have, rc.Counter, need)
	}
	o.Counters.Remove(rc.Counter, need)
	s.Emit(game.Event{
		Type:     game.EventCounterRemoved,
		SourceID: ctx.SourceID,
		TargetID: o.ID,
		PlayerID: ctx.PayerID,
		Amount:   need,
		Data:     string(rc.Counter),
	})
	return Paid, nil
}

// Display implements Payer.
func (rc *RemoveCounters) Display() string {
	if rc.Count == 0 {
		return fmt.Sprintf("Remove X %s counters from this permanent", rc.Counter)
	}
	if rc.Count == 1 {
		return fmt.Sprintf("Remove a %s counter from this permanent", rc.Counter)
	}
	return fmt.Sprintf("Remove %d %s counters from this permanent", rc.Count, rc.Counter)
}

// ProcessingMode implements Payer.
func (rc *RemoveCounters) ProcessingMode() Mode {
	return Immediate()
}

// AddCounters puts counters of one type on the source permanent.
type AddCounters struct {
	Counter counters.CounterType
	Count   int
}

// NewAddCounters creates an add-counters cost.
func NewAddCounters(ct counters.CounterType, count int) *AddCounters {
	return &AddCounters{Counter: ct, Count: count}
}

// CanPay implements Payer.
func (ac *AddCounters) CanPay(s *game.State, cc CheckContext) error {
	o, ok := s.Object(cc.SourceID)
	if !ok {
		return paymentErr(CodeSourceNotFound, "%s", cc.SourceID)
	}
	if o.Zone != game.ZoneBattlefield {
		return paymentErr(CodeSourceNotOnBattlefield, "%s is in %s", o.Name, o.Zone)
	}
	return nil
}

// Pay implements Payer.
func (ac *AddCounters) Pay(s *game.State, ctx *Context) (Result, error) {
	if err := ac.CanPay(s, ctx.Check()); err != nil {
		return Result{}, err
	}
	o, _ := s.Object(ctx.SourceID)
	o.Counters.Add(ac.Counter, ac.Count)
	s.Emit(game.Event{
		Type:     game.EventCounterAdded,
		SourceID: ctx.SourceID,
		TargetID: o.ID,
		PlayerID: ctx.PayerID,
		Amount:   ac.Count,
		Data:     string(ac.Counter),
	})
	return Paid, nil
}

// Display implements Payer.
func (ac *AddCounters) Display() string {
	if ac.Count == 1 {
		return fmt.Sprintf("Put a %s counter on this permanent", ac.Counter)
	}
	return fmt.Sprintf("Put %d %s counters on this permanent", ac.Count, ac.Counter)
}

// ProcessingMode implements Payer.
func (ac *AddCounters) ProcessingMode() Mode {
	return Immediate()
}

// RemoveAnyCountersAmong removes a total of Count counters of any
// types from permanents the payer controls that match the filter. Two
// nested decisions resolve it: first the total is distributed across
// permanents, then each permanent's share is split across its counter
// types. Both fall back to a greedy maximum allocation, and the
// totals must reconcile exactly or the payment fails.
type RemoveAnyCountersAmong struct {
	Count  int
	Filter *PermanentFilter
}

// NewRemoveAnyCountersAmong creates the distributed counter-removal cost.
func NewRemoveAnyCountersAmong(count int, filter *PermanentFilter) *RemoveAnyCountersAmong {
	if filter == nil {
		filter = AnyPermanent()
	}
	return &RemoveAnyCountersAmong{Count: count, Filter: filter}
}

// CanPay implements Payer: the matching permanents must hold at least
// Count counters in total.
func (rc *RemoveAnyCountersAmong) CanPay(s *game.State, cc CheckContext) error {
	if _, ok := s.Player(cc.PayerID); !ok {
		return paymentErr(CodePlayerNotFound, "%s", cc.PayerID)
	}
	total := 0
	for _, o := range rc.holders(s, cc) {
		total += o.Counters.GetTotalCount()
	}
	if total < rc.Count {
		return paymentErr(CodeInsufficientCounters, "permanents hold %d counters, need %d", total, rc.Count)
	}
	return nil
}

// holders returns the matching permanents that hold counters, in
// battlefield order.
func (rc *RemoveAnyCountersAmong) holders(s *game.State, cc CheckContext) []*game.Object {
	var out []*game.Object
	for _, o := range s.BattlefieldControlledBy(cc.PayerID) {
		if rc.Filter.Matches(o, cc.PayerID, cc.SourceID) && o.Counters.GetTotalCount() > 0 {
			out = append(out, o)
		}
	}
	return out
}

// Pay implements Payer.
func (rc *RemoveAnyCountersAmong) Pay(s *game.State, ctx *Context) (Result, error) {
	if err := rc.CanPay(s, ctx.Check()); err != nil {
		return Result{}, err
	}
	holders := rc.holders(s, ctx.Check())
	ids := make([]string, len(holders))
	limits := make(map[string]int, len(holders))
	byID := make(map[string]*game.Object, len(holders))
	for i, o := range holders {
		ids[i] = o.ID
		limits[o.ID] = o.Counters.GetTotalCount()
		byID[o.ID] = o
	}

	dm := ctx.Decision
	if dm == nil {
		dm = game.AutoDecisionMaker{Strategy: game.FallbackMaximum}
	}

	allocation := dm.ChooseDistribution(rc.Display(), ids, rc.Count, limits)
	allocation = reconcileAllocation(allocation, ids, limits, rc.Count)
	if allocation == nil {
		return Result{}, paymentErr(CodeInsufficientCounters, "allocation does not cover %d counters", rc.Count)
	}

	for _, id := range ids {
		share := allocation[id]
		if share == 0 {
			continue
		}
		o := byID[id]
		names := counterNames(o.Counters)
		nameLimits := make(map[string]int, len(names))
		for _, name := range names {
			nameLimits[name] = o.Counters.GetCount(name)
		}
		perType := dm.ChooseDistribution(
			fmt.Sprintf("Remove %d counters from %s", share, o.Name), names, share, nameLimits)
		perType = reconcileAllocation(perType, names, nameLimits, share)
		if perType == nil {
			return Result{}, paymentErr(CodeInsufficientCounters, "counter types on %s do not cover %d", o.Name, share)
		}
		for _, name := range names {
			n := perType[name]
			if n == 0 {
				continue
			}
			o.Counters.RemoveCounter(name, n)
			s.Emit(game.Event{
				Type:     game.EventCounterRemoved,
				SourceID: ctx.SourceID,
				TargetID: o.ID,
				PlayerID: ctx.PayerID,
				Amount:   n,
				Data:     name,
			})
		}
	}
	return Paid, nil
}

// Display implements Payer.
func (rc *RemoveAnyCountersAmong) Display() string {
	return fmt.Sprintf("Remove %d counters from among %ss you control", rc.Count, rc.Filter.Describe())
}

// ProcessingMode implements Payer.
func (rc *RemoveAnyCountersAmong) ProcessingMode() Mode {
	return Immediate()
}

// RemoveAnyCountersFromSource removes up to Count counters of any
// types from the source permanent. Unlike the distributed variant this
// is an up-to cost: it is legal with fewer counters available and
// removes what it can.
type RemoveAnyCountersFromSource struct {
	Count int
}

// NewRemoveAnyCountersFromSource creates the up-to counter-removal cost.
func NewRemoveAnyCountersFromSource(count int) *RemoveAnyCountersFromSource {
	return &RemoveAnyCountersFromSource{Count: count}
}

// CanPay implements Payer.
func (rc *RemoveAnyCountersFromSource) CanPay(s *game.State, cc CheckContext) error {
	o, ok := s.Object(cc.SourceID)
	if !ok {
		return paymentErr(CodeSourceNotFound, "%s", cc.SourceID)
	}
	if o.Zone != game.ZoneBattlefield {
		return paymentErr(CodeSourceNotOnBattlefield, "%s is in %s", o.Name, o.Zone)
	}
	return nil
}

// Pay implements Payer.
func (rc *RemoveAnyCountersFromSource) Pay(s *game.State, ctx *Context) (Result, error) {
	if err := rc.CanPay(s, ctx.Check()); err != nil {
		return Result{}, err
	}
	o, _ := s.Object(ctx.SourceID)

	total := rc.Count
	if have := o.Counters.GetTotalCount(); have < total {
		total = have
	}
	if total == 0 {
		return Paid, nil
	}

	dm := ctx.Decision
	if dm == nil {
		dm = game.AutoDecisionMaker{Strategy: game.FallbackMaximum}
	}
	names := counterNames(o.Counters)
	limits := make(map[string]int, len(names))
	for _, name := range names {
		limits[name] = o.Counters.GetCount(name)
	}
	perType := reconcileAllocation(dm.ChooseDistribution(rc.Display(), names, total, limits), names, limits, total)
	if perType == nil {
		return Result{}, paymentErr(CodeInsufficientCounters, "counter types on %s do not cover %d", o.Name, total)
	}
	for _, name := range names {
		n := perType[name]
		if n == 0 {
			continue
		}
		o.Counters.RemoveCounter(name, n)
		s.Emit(game.Event{
			Type:     game.EventCounterRemoved,
			SourceID: ctx.SourceID,
			TargetID: o.ID,
			PlayerID: ctx.PayerID,
			Amount:   n,
			Data:     name,
		})
	}
	return Paid, nil
}

// Display implements Payer.
func (rc *RemoveAnyCountersFromSource) Display() string {
	if rc.Count == 1 {
		return "Remove a counter from this permanent"
	}
	return fmt.Sprintf("Remove up to %d counters from this permanent", rc.Count)
}

// ProcessingMode implements Payer.
func (rc *RemoveAnyCountersFromSource) ProcessingMode() Mode {
	return Immediate()
}

// reconcileAllocation clamps an allocation to its limits, drops
// unknown keys and tops up greedily in key order until it sums to
// total. Returns nil when the limits cannot cover total.
func reconcileAllocation(allocation map[string]int, keys []string, limits map[string]int, total int) map[string]int {
	out := make(map[string]int, len(keys))
	sum := 0
	for _, key := range keys {
		n := allocation[key]
		if n < 0 {
			n = 0
		}
		if n > limits[key] {
			n = limits[key]
		}
		if sum+n > total {
			n = total - sum
		}
		out[key] = n
		sum += n
	}
	for _, key := range keys {
		if sum == total {
			break
		}
		room := limits[key] - out[key]
		if room <= 0 {
			continue
		}
		if room > total-sum {
			room = total - sum
		}
		out[key] += room
		sum += room
	}
	if sum != total {
		return nil
	}
	return out
}

func counterNames(cs *counters.Counters) []string {
	names := make([]string, 0, len(cs.Counters))
	for name := range cs.Counters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
