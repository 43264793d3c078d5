package gameserver

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/galacticdawn/internal/config"
	"github.com/cory-johannsen/galacticdawn/internal/game/inventory"
	"github.com/cory-johannsen/galacticdawn/internal/game/npc"
	"github.com/cory-johannsen/galacticdawn/internal/game/world"
)

// Content is the immutable game data shared by every game in the process.
type Content struct {
	Items   *inventory.Registry
	World   *world.Blueprint
	Enemies []*npc.Template
}

// LoadContent reads items, enemies and the world layout from the configured
// locations and checks the references between them.
//
// Postcondition: Returns Content that passed Validate, or a non-nil error.
func LoadContent(cfg config.ContentConfig) (*Content, error) {
	defs, err := inventory.LoadItems(cfg.ItemsDir)
	if err != nil {
		return nil, fmt.Errorf("loading items: %w", err)
	}
	items, err := inventory.NewRegistryFrom(defs)
	if err != nil {
		return nil, fmt.Errorf("registering items: %w", err)
	}
	templates, err := npc.LoadTemplates(cfg.EnemiesDir)
	if err != nil {
		return nil, fmt.Errorf("loading enemies: %w", err)
	}
	bp, err := world.LoadBlueprintFromFile(cfg.WorldFile)
	if err != nil {
		return nil, fmt.Errorf("loading world: %w", err)
	}

	c := &Content{Items: items, World: bp, Enemies: templates}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that every item and enemy the world and enemies name exists
// and that every bound enemy stands on the grid.
//
// Postcondition: Returns nil, or an error joining every dangling reference.
func (c *Content) Validate() error {
	var errs []error
	checkItems := func(owner string, ids ...string) {
		for _, id := range ids {
			if _, ok := c.Items.Item(id); !ok {
				errs = append(errs, fmt.Errorf("%s: unknown item %q", owner, id))
			}
		}
	}

	enemies := make(map[string]bool, len(c.Enemies))
	for _, t := range c.Enemies {
		enemies[t.ID] = true
		checkItems("enemy "+t.ID, t.Victory.Rewards...)
		if !t.Summoned && (t.Coord.X >= c.World.Size || t.Coord.Y >= c.World.Size) {
			errs = append(errs, fmt.Errorf("enemy %s: coord %s outside the %dx%d grid", t.ID, t.Coord, c.World.Size, c.World.Size))
		}
	}
	checkEnemy := func(owner, id string) {
		if id != "" && !enemies[id] {
			errs = append(errs, fmt.Errorf("%s: unknown enemy %q", owner, id))
		}
	}

	for _, p := range c.World.Locations {
		loc := p.Location
		owner := "location " + loc.ID
		if loc.ItemID != "" {
			checkItems(owner, loc.ItemID)
		}
		if ia := loc.Interaction; ia != nil {
			checkItems(owner, ia.Requires...)
			checkItems(owner, ia.Consumes...)
			checkItems(owner, ia.Grants...)
			checkEnemy(owner, ia.BlockedBy)
			checkEnemy(owner, ia.Enemy)
		}
		if pz := loc.Puzzle; pz != nil {
			checkItems(owner, pz.Reward...)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("content: %w", errors.Join(errs...))
	}
	return nil
}
