package timer

import (
	"encoding/json"
	"log"
	"sync"
)

// StoreKey is the single store entry holding the serialized timer list.
const StoreKey = "timers"

// Store is the persistence backend the repository writes through: an opaque
// string-keyed store. Get reports ok=false when the key has never been
// written.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Repository keeps the ordered in-memory timer list and mirrors it into the
// Store on every mutation. In-memory state is authoritative: a failed write
// is logged, never rolled back.
type Repository struct {
	mu     sync.RWMutex
	store  Store
	timers []*Timer
}

// NewRepository creates an empty repository writing through store.
func NewRepository(store Store) *Repository {
	return &Repository{store: store}
}

// Load replaces the in-memory list with the persisted one. Missing data
// yields an empty list; a read or decode failure is logged and likewise
// degrades to an empty list. Load never fails the caller.
func (r *Repository) Load() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.timers = nil

	raw, ok, err := r.store.Get(StoreKey)
	if err != nil {
		log.Printf("Failed to read timer list, starting empty: %v", err)
		return
	}
	if !ok || raw == "" {
		return
	}

	var loaded []*Timer
	if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
		log.Printf("Malformed timer list, starting empty: %v", err)
		return
	}
	for _, t := range loaded {
		if !t.Alarm.Valid() {
			t.Alarm = AlarmBell
		}
	}
	r.timers = loaded
}

// Add validates the inputs, appends a fresh Timer and persists the list.
// The returned error is a *ValidationError when an input was rejected.
func (r *Repository) Add(name string, minutes float64, alarm AlarmType) (*Timer, error) {
	t, err := NewTimer(name, minutes, alarm)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.timers = append(r.timers, t)
	r.mu.Unlock()

	r.persist()
	return t, nil
}

// Remove deletes the timer with the given id and persists. Removing an
// unknown id is a no-op, not an error.
func (r *Repository) Remove(id string) {
	r.mu.Lock()
	removed := false
	for i, t := range r.timers {
		if t.ID == id {
			r.timers = append(r.timers[:i], r.timers[i+1:]...)
			removed = true
			break
		}
	}
	r.mu.Unlock()

	if removed {
		r.persist()
	}
}

// RecordCompletion increments the completion count for id and persists.
// No-op when the timer no longer exists (deleted while running).
func (r *Repository) RecordCompletion(id string) {
	r.mu.Lock()
	found := false
	for _, t := range r.timers {
		if t.ID == id {
			t.Count++
			found = true
			break
		}
	}
	r.mu.Unlock()

	if found {
		r.persist()
	}
}

// Get returns a copy of the timer with the given id.
func (r *Repository) Get(id string) (Timer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.timers {
		if t.ID == id {
			return *t, true
		}
	}
	return Timer{}, false
}

// All returns copies of the timers in repository order.
func (r *Repository) All() []Timer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Timer, len(r.timers))
	for i, t := range r.timers {
		out[i] = *t
	}
	return out
}

// Len returns the number of timers.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.timers)
}

// TotalElapsed returns the cumulative seconds across all historical
// completions: Σ(duration × count). Not a live running total.
func (r *Repository) TotalElapsed() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := 0
	for _, t := range r.timers {
		total += t.Duration * t.Count
	}
	return total
}

// persist writes the full list to the store. Callers issue it after the
// in-memory mutation, one write at a time; a failure leaves memory and
// store diverged until the next successful write.
func (r *Repository) persist() {
	r.mu.RLock()
	list := r.timers
	if list == nil {
		list = []*Timer{}
	}
	raw, err := json.Marshal(list)
	r.mu.RUnlock()
	if err != nil {
		log.Printf("Failed to encode timer list: %v", err)
		return
	}
	if err := r.store.Set(StoreKey, string(raw)); err != nil {
		log.Printf("Failed to persist timer list: %v", err)
	}
}
