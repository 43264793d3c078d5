package session

import (
	"fmt"
	"sync"
)

// Manager tracks the players of every running game, one per connection.
// All methods are safe for concurrent use.
type Manager struct {
	mu      sync.RWMutex
	players map[string]*Player // player ID → player
}

// NewManager creates an empty session Manager.
func NewManager() *Manager {
	return &Manager{players: make(map[string]*Player)}
}

// AddPlayer registers p as playing.
//
// Precondition: p must not be nil.
// Postcondition: Returns an error if a player with the same ID is already registered.
func (m *Manager) AddPlayer(p *Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := p.ID.String()
	if _, exists := m.players[id]; exists {
		return fmt.Errorf("player %s already has an active session", id)
	}
	m.players[id] = p
	return nil
}

// RemovePlayer unregisters the player with the given ID.
//
// Postcondition: Returns an error if the player is not found.
func (m *Manager) RemovePlayer(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.players[id]; !ok {
		return fmt.Errorf("player %s not found", id)
	}
	delete(m.players, id)
	return nil
}

// GetPlayer returns the player with the given ID.
//
// Postcondition: Returns (p, true) if found, or (nil, false) otherwise.
func (m *Manager) GetPlayer(id string) (*Player, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.players[id]
	return p, ok
}

// PlayerCount returns the number of running games.
func (m *Manager) PlayerCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.players)
}
