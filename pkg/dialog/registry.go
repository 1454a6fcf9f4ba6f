package dialog

import (
	"sync"
	"time"
)

// Registry keeps one Manager per operator session.
type Registry struct {
	mu       sync.Mutex
	managers map[string]*Manager
	now      func() time.Time
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{managers: make(map[string]*Manager), now: time.Now}
}

// For returns the Manager of key, creating it on first use.
func (r *Registry) For(key string) *Manager {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.managers[key]
	if !ok {
		m = &Manager{now: r.now}
		r.managers[key] = m
	}
	return m
}

// Len returns the number of tracked sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.managers)
}

// Reap closes dialogs idle for longer than idle and forgets sessions with no
// open dialog. It returns how many dialogs were closed.
func (r *Registry) Reap(idle time.Duration) int {
	cutoff := r.now().Add(-idle)

	r.mu.Lock()
	defer r.mu.Unlock()

	closed := 0
	for key, m := range r.managers {
		d, err := m.Active()
		if err != nil {
			delete(r.managers, key)
			continue
		}
		if d.LastActive().Before(cutoff) {
			d.Close()
			closed++
			delete(r.managers, key)
		}
	}
	return closed
}
