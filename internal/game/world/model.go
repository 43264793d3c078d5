// Package world provides the game world model: a square grid of locations,
// their one-shot event flags, and the interactions and puzzles bound to them.
package world

import "fmt"

// Direction represents a compass direction a player may move in.
type Direction string

// Compass directions. The y axis grows north.
const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// StandardDirections contains all movement directions.
var StandardDirections = []Direction{North, South, East, West}

// IsStandard reports whether d is one of the four compass directions.
func (d Direction) IsStandard() bool {
	for _, sd := range StandardDirections {
		if d == sd {
			return true
		}
	}
	return false
}

// Opposite returns the opposite compass direction, or "" for unknown directions.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return ""
	}
}

// Coord is a grid coordinate. X grows east and Y grows north.
type Coord struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Step returns the coordinate one cell away in direction d.
// Unknown directions return c unchanged.
func (c Coord) Step(d Direction) Coord {
	switch d {
	case North:
		return Coord{X: c.X, Y: c.Y + 1}
	case South:
		return Coord{X: c.X, Y: c.Y - 1}
	case East:
		return Coord{X: c.X + 1, Y: c.Y}
	case West:
		return Coord{X: c.X - 1, Y: c.Y}
	default:
		return c
	}
}

// String renders c as "(x, y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Interaction kinds.
const (
	// InteractionExchange trades the Requires items for the Grants items once.
	InteractionExchange = "exchange"
	// InteractionRiftGate consumes Consumes and starts the final encounter
	// against Enemy when every Requires item is held.
	InteractionRiftGate = "rift_gate"
)

// Interaction describes what the "use" command does at a location.
type Interaction struct {
	Kind string
	// Requires lists item IDs that must all be held.
	Requires []string
	// Consumes lists item IDs removed on success. Exchanges consume Requires
	// when Consumes is empty.
	Consumes []string
	// Grants lists item IDs added on success.
	Grants []string
	// BlockedBy names an enemy whose death closes this interaction.
	BlockedBy string
	// Enemy names the enemy fought by a rift gate.
	Enemy string
	// LongDescription replaces the location's long description on success.
	LongDescription string

	Prompt    string
	Activate  []string
	Success   []string
	Decline   string
	Missing   string
	Completed string
	Blocked   string
}

// Consumed returns the items removed when the interaction succeeds.
func (i *Interaction) Consumed() []string {
	if len(i.Consumes) > 0 || i.Kind == InteractionRiftGate {
		return i.Consumes
	}
	return i.Requires
}

// Puzzle kinds.
const (
	// PuzzleRiddle accepts one free-text answer per attempt.
	PuzzleRiddle = "riddle"
	// PuzzleStreak demands Streak consecutive correct true/false answers.
	PuzzleStreak = "streak"
)

// Puzzle describes what the "solve" command does at a location.
type Puzzle struct {
	Kind string
	// Hook names the scripting hook that judges answers. When no hook is
	// available, Answer is used for riddles and alternating false/true for streaks.
	Hook   string
	Answer string
	Streak int
	Reward []string
	// LongDescription replaces the location's long description once solved.
	LongDescription string

	Intro   []string
	Prompt  string
	Success []string
	Failure string
	Solved  string
}

// Location is one cell of the map.
type Location struct {
	ID              string
	Name            string
	Description     string
	LongDescription string
	Hostile         bool
	// ItemID is the item lying here, or "" when nothing can be taken.
	ItemID string
	// EventTriggered marks a one-shot puzzle, trade or terminal as resolved.
	// It only ever goes from false to true.
	EventTriggered bool
	Interaction    *Interaction
	Puzzle         *Puzzle
}

// HasItem reports whether an item lies at this location.
func (l *Location) HasItem() bool {
	return l.ItemID != ""
}

// TakeItem removes and returns the item lying here.
//
// Postcondition: HasItem() is false; ok is false when nothing was present.
func (l *Location) TakeItem() (id string, ok bool) {
	if l.ItemID == "" {
		return "", false
	}
	id = l.ItemID
	l.ItemID = ""
	return id, true
}

// TriggerEvent marks the location's one-shot event as resolved.
//
// Postcondition: EventTriggered is true.
func (l *Location) TriggerEvent() {
	l.EventTriggered = true
}

// ClearHostile unlocks the location after its enemy is defeated.
//
// Postcondition: Hostile is false; LongDescription is desc when desc is non-empty.
func (l *Location) ClearHostile(desc string) {
	l.Hostile = false
	if desc != "" {
		l.LongDescription = desc
	}
}

// clone returns a deep copy so each session mutates its own world.
func (l *Location) clone() *Location {
	c := *l
	if l.Interaction != nil {
		ic := *l.Interaction
		c.Interaction = &ic
	}
	if l.Puzzle != nil {
		pc := *l.Puzzle
		c.Puzzle = &pc
	}
	return &c
}
