package npc

import (
	"fmt"

	"github.com/cory-johannsen/galacticdawn/internal/game/world"
)

// Registry holds one live Enemy per template for a single game session.
// It is not safe for concurrent use; each session owns its own Registry.
type Registry struct {
	enemies map[string]*Enemy
	byCoord map[world.Coord]string
	order   []string
}

// NewRegistry spawns one Enemy for every template.
//
// Postcondition: Returns an error on a duplicate template ID or when two
// non-summoned enemies share a coordinate.
func NewRegistry(templates []*Template) (*Registry, error) {
	r := &Registry{
		enemies: make(map[string]*Enemy, len(templates)),
		byCoord: make(map[world.Coord]string),
	}
	for _, tmpl := range templates {
		if _, dup := r.enemies[tmpl.ID]; dup {
			return nil, fmt.Errorf("npc.NewRegistry: duplicate enemy id %q", tmpl.ID)
		}
		if !tmpl.Summoned {
			if other, taken := r.byCoord[tmpl.Coord]; taken {
				return nil, fmt.Errorf("npc.NewRegistry: %q and %q both bound to %s", other, tmpl.ID, tmpl.Coord)
			}
			r.byCoord[tmpl.Coord] = tmpl.ID
		}
		r.enemies[tmpl.ID] = NewEnemy(tmpl)
		r.order = append(r.order, tmpl.ID)
	}
	return r, nil
}

// Get returns the enemy with the given template ID.
//
// Postcondition: Returns (e, true) if found, or (nil, false) otherwise.
func (r *Registry) Get(id string) (*Enemy, bool) {
	e, ok := r.enemies[id]
	return e, ok
}

// ByCoord returns the non-summoned enemy bound to c, dead or alive.
func (r *Registry) ByCoord(c world.Coord) (*Enemy, bool) {
	id, ok := r.byCoord[c]
	if !ok {
		return nil, false
	}
	return r.enemies[id], true
}

// All returns every enemy in template order.
func (r *Registry) All() []*Enemy {
	out := make([]*Enemy, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.enemies[id])
	}
	return out
}
