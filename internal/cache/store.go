package cache

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// EventKind says what happened to a key.
type EventKind string

const (
	// EventSet means a value was stored under the key.
	EventSet EventKind = "set"
	// EventInvalidated means the key's value was dropped.
	EventInvalidated EventKind = "invalidated"
)

// Event is one store change delivered to subscribers.
type Event struct {
	Key  Key
	Kind EventKind
}

// Subscription receives store change events. A zero Key subscribes to
// every change; a non-zero Key narrows delivery to that key only.
type Subscription struct {
	ID      string
	Key     Key
	Channel chan Event

	mu     sync.Mutex
	closed bool
}

// Close closes the subscription channel. Safe to call more than once.
func (s *Subscription) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		close(s.Channel)
		s.closed = true
	}
}

// IsClosed reports whether the subscription has been closed.
func (s *Subscription) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Store is a session-scoped cache for workspace collections. It is handed
// to the catalog service explicitly so tests can substitute their own and
// observe exactly which keys an operation touched.
type Store interface {
	// Get returns the cached value for key, if any.
	Get(key Key) (any, bool)

	// Set stores value under key, replacing any previous value.
	Set(key Key, value any)

	// Invalidate drops the value under key. Zero keys and keys holding
	// nothing are no-ops: no entry changes, no event fires.
	Invalidate(key Key)

	// InvalidateAll drops every entry.
	InvalidateAll()

	// Subscribe registers for change events on key (zero Key for all keys).
	Subscribe(key Key) *Subscription

	// Unsubscribe removes and closes a subscription.
	Unsubscribe(sub *Subscription)

	// Metrics returns a snapshot of store usage counters.
	Metrics() Metrics
}

// Metrics tracks store usage.
type Metrics struct {
	Entries       int
	Hits          int64
	Misses        int64
	Sets          int64
	Invalidations int64
	LastChange    time.Time
	Subscriptions SubscriptionMetrics
}

// SubscriptionMetrics tracks event delivery.
type SubscriptionMetrics struct {
	Active          int
	EventsDelivered int64
	EventsDropped   int64
	LastEventTime   time.Time
}

// subscriptionBuffer is the per-subscription channel capacity. Slow
// consumers lose events rather than block the store.
const subscriptionBuffer = 100

// MemoryStore is the in-memory Store used by the running program.
type MemoryStore struct {
	mu            sync.RWMutex
	entries       map[Key]any
	subscriptions map[string]*Subscription
	metrics       Metrics
}

// NewStore creates an empty in-memory store.
func NewStore() Store {
	return &MemoryStore{
		entries:       make(map[Key]any),
		subscriptions: make(map[string]*Subscription),
	}
}

// Get returns the cached value for key, if any.
func (s *MemoryStore) Get(key Key) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.entries[key]
	if ok {
		s.metrics.Hits++
	} else {
		s.metrics.Misses++
	}
	return value, ok
}

// Set stores value under key.
func (s *MemoryStore) Set(key Key, value any) {
	if key.IsZero() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = value
	s.metrics.Sets++
	s.metrics.LastChange = time.Now()
	s.notifySubscribers(Event{Key: key, Kind: EventSet})
}

// Invalidate drops the value under key.
func (s *MemoryStore) Invalidate(key Key) {
	if key.IsZero() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; !ok {
		return
	}
	delete(s.entries, key)
	s.metrics.Invalidations++
	s.metrics.LastChange = time.Now()
	s.notifySubscribers(Event{Key: key, Kind: EventInvalidated})
}

// InvalidateAll drops every entry, notifying subscribers per key.
func (s *MemoryStore) InvalidateAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range s.entries {
		delete(s.entries, key)
		s.metrics.Invalidations++
		s.notifySubscribers(Event{Key: key, Kind: EventInvalidated})
	}
	s.metrics.LastChange = time.Now()
}

// Subscribe registers for change events on key.
func (s *MemoryStore) Subscribe(key Key) *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := &Subscription{
		ID:      uuid.NewString(),
		Key:     key,
		Channel: make(chan Event, subscriptionBuffer),
	}
	s.subscriptions[sub.ID] = sub
	s.metrics.Subscriptions.Active++
	return sub
}

// Unsubscribe removes and closes a subscription.
func (s *MemoryStore) Unsubscribe(sub *Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subscriptions[sub.ID]; ok {
		sub.Close()
		delete(s.subscriptions, sub.ID)
		s.metrics.Subscriptions.Active--
	}
}

// Metrics returns a snapshot of store usage counters.
func (s *MemoryStore) Metrics() Metrics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	metrics := s.metrics
	metrics.Entries = len(s.entries)
	return metrics
}

// notifySubscribers delivers event to every matching subscription without
// blocking. Caller holds s.mu.
func (s *MemoryStore) notifySubscribers(event Event) {
	for id, sub := range s.subscriptions {
		if !sub.Key.IsZero() && sub.Key != event.Key {
			continue
		}
		if sub.IsClosed() {
			delete(s.subscriptions, id)
			s.metrics.Subscriptions.Active--
			continue
		}
		select {
		case sub.Channel <- event:
			s.metrics.Subscriptions.EventsDelivered++
			s.metrics.Subscriptions.LastEventTime = time.Now()
		default:
			s.metrics.Subscriptions.EventsDropped++
		}
	}
}
