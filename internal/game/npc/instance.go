package npc

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cory-johannsen/galacticdawn/internal/game/dice"
)

// Enemy is the live, session-owned state of one enemy. Health persists across
// fled encounters and Dead only ever goes from false to true.
type Enemy struct {
	// ID uniquely identifies this runtime instance.
	ID       string
	Template *Template
	Health   int
	Dead     bool
}

// NewEnemy creates a live enemy from tmpl at full health.
//
// Precondition: tmpl must be non-nil.
// Postcondition: Health equals tmpl.MaxHP and Dead is false.
func NewEnemy(tmpl *Template) *Enemy {
	return &Enemy{
		ID:       uuid.New().String(),
		Template: tmpl,
		Health:   tmpl.MaxHP,
	}
}

// Name returns the enemy's display name.
func (e *Enemy) Name() string { return e.Template.Name }

// TakeDamage subtracts n from Health. Health may go negative.
//
// Precondition: n >= 0.
func (e *Enemy) TakeDamage(n int) {
	if n < 0 {
		panic(fmt.Sprintf("npc: TakeDamage precondition violated: n=%d", n))
	}
	e.Health -= n
}

// MarkDead records the enemy's defeat permanently.
func (e *Enemy) MarkDead() { e.Dead = true }

// RollDamage rolls a uniform damage value in the template's [MinDamage, MaxDamage].
func (e *Enemy) RollDamage(r *dice.Roller) int {
	return r.Between(e.Template.MinDamage, e.Template.MaxDamage)
}
