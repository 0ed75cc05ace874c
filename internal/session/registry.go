// Package session tracks the SSH host's connected players and the best
// score seen since boot. The registry is a lobby counter shown on the
// title screen, not shared gameplay state.
package session

import "sync"

// Registry is safe for concurrent use by all session goroutines.
type Registry struct {
	mu      sync.RWMutex
	players int
	best    int
	matches int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Join records a connected player.
func (r *Registry) Join() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.players++
}

// Leave records a disconnected player.
func (r *Registry) Leave() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.players > 0 {
		r.players--
	}
}

// Players returns the number of currently connected players.
func (r *Registry) Players() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.players
}

// SeedBest raises the boot best without counting a match, typically from
// a score persisted by a previous run of the host.
func (r *Registry) SeedBest(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n > r.best {
		r.best = n
	}
}

// RecordMatch records a finished match and its score, raising the boot
// best when exceeded.
func (r *Registry) RecordMatch(score int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matches++
	if score > r.best {
		r.best = score
	}
}

// Best returns the best score seen since the host started.
func (r *Registry) Best() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.best
}

// Matches returns the number of matches finished since the host started.
func (r *Registry) Matches() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.matches
}
