package entitlement

import "sync"

// UsageStore tracks running usage counters per (userID, usageType).
// Implementations must apply Add atomically; reads may race concurrent
// increments (usage accounting is advisory, not an admission gate).
type UsageStore interface {
	Add(userID, usageType string, delta int64) int64
	Get(userID, usageType string) int64
}

type usageKey struct {
	UserID    string
	UsageType string
}

// MemoryUsageStore keeps counters in process memory. Counters are created
// lazily on first increment and live for the lifetime of the process.
type MemoryUsageStore struct {
	mu       sync.Mutex
	counters map[usageKey]int64
}

func NewMemoryUsageStore() *MemoryUsageStore {
	return &MemoryUsageStore{counters: make(map[usageKey]int64)}
}

// Add increments the counter and returns the new total. Negative deltas are
// ignored: counters only ever grow.
func (s *MemoryUsageStore) Add(userID, usageType string, delta int64) int64 {
	if delta < 0 {
		delta = 0
	}
	key := usageKey{UserID: userID, UsageType: usageType}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[key] += delta
	return s.counters[key]
}

// Get returns the current counter, or 0 if nothing was ever recorded.
// Absence and zero are the same state on purpose.
func (s *MemoryUsageStore) Get(userID, usageType string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counters[usageKey{UserID: userID, UsageType: usageType}]
}
