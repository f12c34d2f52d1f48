package effects

import (
	"sync"

	"go.uber.org/zap"

	"github.com/maigus/maigus-engine-go/internal/game"
)

// ReplacementManager tracks active replacement effects and applies
// them when a permanent enters the battlefield. Self-scoped effects
// apply before others (Rule 614.15), and each effect gets one
// opportunity per event.
type ReplacementManager struct {
	mu      sync.RWMutex
	effects map[string]ReplacementEffect
	order   []string
	logger  *zap.Logger
}

// NewReplacementManager creates an empty replacement effect manager.
func NewReplacementManager(logger *zap.Logger) *ReplacementManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReplacementManager{
		effects: make(map[string]ReplacementEffect),
		logger:  logger,
	}
}

// AddEffect registers a replacement effect.
func (rm *ReplacementManager) AddEffect(effect ReplacementEffect) {
	if effect == nil {
		rm.logger.Warn("attempted to add nil replacement effect")
		return
	}
	rm.mu.Lock()
	defer rm.mu.Unlock()
	if _, ok := rm.effects[effect.ID()]; !ok {
		rm.order = append(rm.order, effect.ID())
	}
	rm.effects[effect.ID()] = effect

	rm.logger.Debug("added replacement effect",
		zap.String("effect_id", effect.ID()),
		zap.String("source_id", effect.SourceID()),
		zap.Bool("self_scope", effect.SelfScope()))
}

// RemoveEffect unregisters a replacement effect.
func (rm *ReplacementManager) RemoveEffect(effectID string) {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	delete(rm.effects, effectID)
	for i, id := range rm.order {
		if id == effectID {
			rm.order = append(rm.order[:i], rm.order[i+1:]...)
			break
		}
	}
}

// RemoveEffectsFromSource unregisters every effect the source created,
// for when its source leaves the battlefield.
func (rm *ReplacementManager) RemoveEffectsFromSource(sourceID string) {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	kept := rm.order[:0]
	for _, id := range rm.order {
		if e := rm.effects[id]; e != nil && e.SourceID() == sourceID {
			delete(rm.effects, id)
			continue
		}
		kept = append(kept, id)
	}
	rm.order = kept
}

// EffectCount returns the number of registered effects.
func (rm *ReplacementManager) EffectCount() int {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return len(rm.effects)
}

// ApplyEnters runs the registered replacements against a permanent
// entering the battlefield. Self-scoped effects first, then the rest
// in registration order; one-shot effects are consumed.
func (rm *ReplacementManager) ApplyEnters(s *game.State, o *game.Object) {
	rm.mu.RLock()
	var selfScoped, general []ReplacementEffect
	for _, id := range rm.order {
		e := rm.effects[id]
		if e == nil || !e.Applies(s, o) {
			continue
		}
		if e.SelfScope() {
			selfScoped = append(selfScoped, e)
		} else {
			general = append(general, e)
		}
	}
	rm.mu.RUnlock()

	for _, e := range append(selfScoped, general...) {
		e.Apply(s, o)
		rm.logger.Debug("applied replacement effect",
			zap.String("effect_id", e.ID()),
			zap.String("object", o.Name))
		if e.Duration() == DurationOneShot {
			rm.RemoveEffect(e.ID())
		}
	}
}
