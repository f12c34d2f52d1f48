package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// EventType indicates the category of a game event.
type EventType string

const (
	EventTapped          EventType = "TAPPED"
	EventUntapped        EventType = "UNTAPPED"
	EventLifePaid        EventType = "LIFE_PAID"
	EventEnergyPaid      EventType = "ENERGY_PAID"
	EventManaPaid        EventType = "MANA_PAID"
	EventManaAdded       EventType = "MANA_ADDED"
	EventSacrifice       EventType = "SACRIFICED_PERMANENT"
	EventDiscard         EventType = "DISCARDED_CARD"
	EventExile           EventType = "EXILED_CARD"
	EventMill            EventType = "MILLED_CARD"
	EventReveal          EventType = "REVEALED_CARD"
	EventReturnToHand    EventType = "RETURNED_TO_HAND"
	EventCounterAdded    EventType = "COUNTER_ADDED"
	EventCounterRemoved  EventType = "COUNTER_REMOVED"
	EventLandPlayed      EventType = "LAND_PLAYED"
	EventTurnedFaceUp    EventType = "TURNED_FACE_UP"
	EventSuspended       EventType = "SUSPENDED_CARD"
	EventForetold        EventType = "FORETOLD_CARD"
	EventZoneChange      EventType = "ZONE_CHANGE"
	EventAbilityActivate EventType = "ACTIVATED_ABILITY"
)

// Event describes something that happened in the game.
type Event struct {
	Type        EventType
	ID          string
	SourceID    string
	PlayerID    string
	TargetID    string
	Amount      int
	Data        string
	Targets     []string
	Timestamp   time.Time
	Metadata    map[string]string
	Description string
}

// Listener defines a callback that reacts to incoming events.
type Listener func(Event)

// TypedListener defines a callback that reacts to a specific event type.
type TypedListener struct {
	Handle    int
	EventType EventType
	Callback  func(Event)
}

// EventBus provides a synchronous publish/subscribe implementation
// with type filtering.
type EventBus struct {
	mu             sync.RWMutex
	listeners      map[int]Listener
	typedListeners map[EventType][]TypedListener
	nextHandle     int
}

// NewEventBus constructs a fresh event bus instance.
func NewEventBus() *EventBus {
	return &EventBus{
		listeners:      make(map[int]Listener),
		typedListeners: make(map[EventType][]TypedListener),
	}
}

// Subscribe registers a listener for all events and returns a handle.
func (bus *EventBus) Subscribe(listener Listener) int {
	if listener == nil {
		return -1
	}
	bus.mu.Lock()
	defer bus.mu.Unlock()
	handle := bus.nextHandle
	bus.nextHandle++
	bus.listeners[handle] = listener
	return handle
}

// SubscribeTyped registers a listener for a specific event type.
func (bus *EventBus) SubscribeTyped(eventType EventType, callback func(Event)) int {
	if callback == nil {
		return -1
	}
	bus.mu.Lock()
	defer bus.mu.Unlock()
	handle := bus.nextHandle
	bus.nextHandle++
	bus.typedListeners[eventType] = append(bus.typedListeners[eventType], TypedListener{
		Handle:    handle,
		EventType: eventType,
		Callback:  callback,
	})
	return handle
}

// Unsubscribe removes the listener identified by the provided handle.
func (bus *EventBus) Unsubscribe(handle int) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	delete(bus.listeners, handle)
	for eventType, listeners := range bus.typedListeners {
		for i, l := range listeners {
			if l.Handle == handle {
				bus.typedListeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Publish delivers the event synchronously to every matching listener.
func (bus *EventBus) Publish(event Event) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	bus.mu.RLock()
	general := make([]Listener, 0, len(bus.listeners))
	for _, l := range bus.listeners {
		general = append(general, l)
	}
	typed := append([]TypedListener(nil), bus.typedListeners[event.Type]...)
	bus.mu.RUnlock()

	for _, l := range general {
		l(event)
	}
	for _, l := range typed {
		l.Callback(event)
	}
}
