package world

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/galacticdawn/internal/game/dice"
)

// Map is a Size×Size grid of locations owned by a single game session.
type Map struct {
	size  int
	cells [][]*Location
}

// Size returns the width and height of the grid.
func (m *Map) Size() int { return m.size }

// Contains reports whether c lies on the grid.
func (m *Map) Contains(c Coord) bool {
	return c.X >= 0 && c.X < m.size && c.Y >= 0 && c.Y < m.size
}

// Location returns the location at c.
//
// Postcondition: Returns (loc, true) when c lies on the grid, or (nil, false).
func (m *Map) Location(c Coord) (*Location, bool) {
	if !m.Contains(c) {
		return nil, false
	}
	return m.cells[c.X][c.Y], true
}

// MustLocation returns the location at c.
//
// Precondition: c lies on the grid.
func (m *Map) MustLocation(c Coord) *Location {
	loc, ok := m.Location(c)
	if !ok {
		panic(fmt.Sprintf("world: MustLocation %s outside %dx%d grid", c, m.size, m.size))
	}
	return loc
}

// Find returns the named location and its coordinate.
func (m *Map) Find(id string) (*Location, Coord, bool) {
	for x := range m.cells {
		for y, loc := range m.cells[x] {
			if loc.ID == id {
				return loc, Coord{X: x, Y: y}, true
			}
		}
	}
	return nil, Coord{}, false
}

// Render draws the grid north-up, marking the player's cell with "[ P ]".
func (m *Map) Render(player Coord) string {
	var b strings.Builder
	for y := m.size - 1; y >= 0; y-- {
		b.WriteString("\n")
		for x := 0; x < m.size; x++ {
			if x == player.X && y == player.Y {
				b.WriteString("[ P ] ")
			} else {
				fmt.Fprintf(&b, "[%d,%d] ", x, y)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// build lays out a fresh grid from bp, filling unnamed cells with empty space
// whose long description is picked with src.
func build(bp *Blueprint, src dice.Source) *Map {
	m := &Map{size: bp.Size, cells: make([][]*Location, bp.Size)}
	for x := 0; x < bp.Size; x++ {
		m.cells[x] = make([]*Location, bp.Size)
		for y := 0; y < bp.Size; y++ {
			m.cells[x][y] = bp.emptyAt(src)
		}
	}
	for _, p := range bp.Locations {
		m.cells[p.Coord.X][p.Coord.Y] = p.Location.clone()
	}
	return m
}
