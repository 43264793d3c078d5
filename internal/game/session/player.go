// Package session provides the per-game player state and tracking of the
// games that are currently running.
package session

import (
	"github.com/google/uuid"

	"github.com/cory-johannsen/galacticdawn/internal/game/inventory"
	"github.com/cory-johannsen/galacticdawn/internal/game/world"
)

// Player is the single player of one game session.
type Player struct {
	// ID correlates this session's log lines.
	ID   uuid.UUID
	Name string
	Pos  world.Coord
	// Health has no upper cap and may go negative transiently; defeat is
	// detected at <= 0.
	Health    int
	Inventory *inventory.Inventory
}

// NewPlayer creates a player at start holding startItems.
//
// Postcondition: Name is empty until the name prompt completes.
func NewPlayer(start world.Coord, health int, startItems []string) *Player {
	return &Player{
		ID:        uuid.New(),
		Pos:       start,
		Health:    health,
		Inventory: inventory.NewInventory(startItems...),
	}
}

// Move steps the player one cell in dir when the destination lies inside a
// size×size grid.
//
// Postcondition: Returns true iff Pos changed.
func (p *Player) Move(dir world.Direction, size int) bool {
	next := p.Pos.Step(dir)
	if next == p.Pos || next.X < 0 || next.X >= size || next.Y < 0 || next.Y >= size {
		return false
	}
	p.Pos = next
	return true
}

// Heal adds amount to Health and returns the previous and new values.
//
// Precondition: amount >= 0.
func (p *Player) Heal(amount int) (before, after int) {
	before = p.Health
	p.Health += amount
	return before, p.Health
}

// TakeDamage subtracts amount from Health.
//
// Postcondition: Returns true when the player is defeated (Health <= 0).
func (p *Player) TakeDamage(amount int) bool {
	p.Health -= amount
	return p.Defeated()
}

// Defeated reports whether Health has fallen to zero or below.
func (p *Player) Defeated() bool { return p.Health <= 0 }
