package gameserver

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/galacticdawn/internal/game/command"
	"github.com/cory-johannsen/galacticdawn/internal/game/world"
)

// handleMove steps the player and shows where they stand, moved or not.
func (g *Game) handleMove(dir world.Direction) {
	if !g.player.Move(dir, g.world.Size()) {
		g.con.say(StyleWarning, fmt.Sprintf("Can't go further %s.", dir))
	}
	g.showLocation()
}

// showLocation prints the location readout:
//
//	Location: **[HOSTILE]** Eridani (2, 4)
//	A harsh desert wasteland under a blood-red sky.
func (g *Game) showLocation() {
	loc := g.here()
	header := "Location: "
	if loc.Hostile {
		header += g.con.render.Render(StyleHostile, "**[HOSTILE]**") + " "
	}
	header += g.con.render.Render(StyleLocation, fmt.Sprintf("%s %s", loc.Name, g.player.Pos))

	g.con.blank()
	g.con.say(StylePlain, header, loc.Description)
}

func (g *Game) handleLook() {
	loc := g.here()
	if loc.HasItem() {
		g.con.say(StylePlain, "You examine your surroundings more carefully...")
		g.con.blank()
		g.con.say(StyleNotice, "You notice: "+g.items.Name(loc.ItemID))
	}
	g.con.blank()
	g.con.say(StylePlain, loc.LongDescription)
}

func (g *Game) handleMap() {
	g.con.say(StylePlain, strings.TrimRight(g.world.Render(g.player.Pos), "\n"))
}

func (g *Game) handleTake() {
	id, ok := g.here().TakeItem()
	if !ok {
		g.con.say(StylePlain, "Nothing to take here.")
		return
	}
	g.player.Inventory.Add(id)
	g.con.say(StyleNotice, "You picked up: "+g.items.Name(id))
	g.logger.Info("item taken", zap.String("item", id), zap.Stringer("position", g.player.Pos))
}

// handleInventory lists held items in acquisition order, collapsing
// duplicates into a count on first appearance.
func (g *Game) handleInventory() {
	ids := g.player.Inventory.Items()
	if len(ids) == 0 {
		g.con.say(StylePlain, "Your inventory is empty.")
		return
	}
	g.con.say(StyleTitle, "Inventory:")
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		line := "- " + g.items.Name(id)
		if n := g.player.Inventory.Count(id); n > 1 {
			line += fmt.Sprintf(" x%d", n)
		}
		g.con.say(StylePlain, line)
	}
	g.con.say(StyleStatus, fmt.Sprintf("Health: %d", g.player.Health))
}

func (g *Game) handleHelp() {
	g.con.say(StyleTitle, "Available commands:")
	byCategory := g.commands.CommandsByCategory()
	for _, cat := range command.CategoryOrder {
		for _, cmd := range byCategory[cat] {
			names := append(append([]string(nil), cmd.Aliases...), cmd.Name)
			g.con.say(StylePlain, fmt.Sprintf("%s - %s", strings.Join(names, " / "), cmd.Help))
		}
	}
}
