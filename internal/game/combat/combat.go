// Package combat implements the turn-based encounter engine: one player
// against one scripted enemy until victory, escape, or defeat.
package combat

import (
	"context"
	"fmt"
	"strings"
)

// Outcome is the terminal state of an encounter.
type Outcome int

const (
	OutcomeUnresolved Outcome = iota // zero value; never returned with a nil error
	OutcomeEnemyDefeated
	OutcomeFled
	OutcomePlayerDefeated
	// OutcomeGameWon is returned when the final boss falls. The session loop
	// decides how the game ends.
	OutcomeGameWon
)

// String returns a human-readable outcome label.
func (o Outcome) String() string {
	switch o {
	case OutcomeEnemyDefeated:
		return "enemy defeated"
	case OutcomeFled:
		return "fled"
	case OutcomePlayerDefeated:
		return "player defeated"
	case OutcomeGameWon:
		return "game won"
	default:
		return "unresolved"
	}
}

// Terminal reports whether the outcome ends the whole game session.
func (o Outcome) Terminal() bool {
	return o == OutcomePlayerDefeated || o == OutcomeGameWon
}

// Console is the blocking line I/O an encounter runs against.
type Console interface {
	// ReadLine shows prompt and blocks for one line of input.
	ReadLine(ctx context.Context, prompt string) (string, error)
	// Emit delivers one narrative event as it happens.
	Emit(ev Event)
}

// ConfirmRetry is emitted when a y/n answer is anything else.
const ConfirmRetry = "Please enter 'y' or 'n'."

// Confirm asks a y/n question until the answer is exactly "y" or "n".
//
// Postcondition: Returns true for "y", false for "n", or a non-nil error when
// input fails.
func Confirm(ctx context.Context, c Console, prompt string) (bool, error) {
	for {
		line, err := c.ReadLine(ctx, prompt)
		if err != nil {
			return false, fmt.Errorf("reading confirmation: %w", err)
		}
		switch normalize(line) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		c.Emit(Event{Kind: EventInvalidInput, Text: ConfirmRetry})
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
