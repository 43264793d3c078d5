// Package command provides the command registry, parser, and built-in command definitions.
package command

import "github.com/cory-johannsen/galacticdawn/internal/game/world"

// Categories for organizing commands, in help display order.
const (
	CategoryMovement = "movement"
	CategoryWorld    = "world"
	CategoryItems    = "items"
	CategoryCombat   = "combat"
	CategorySystem   = "system"
)

// CategoryOrder lists categories in the order help displays them.
var CategoryOrder = []string{CategoryMovement, CategoryWorld, CategoryItems, CategoryCombat, CategorySystem}

// Handler identifiers mapping commands to session handlers.
const (
	HandlerMove      = "move"
	HandlerLook      = "look"
	HandlerMap       = "map"
	HandlerTake      = "take"
	HandlerInventory = "inventory"
	HandlerUse       = "use"
	HandlerSolve     = "solve"
	HandlerHeal      = "heal"
	HandlerFight     = "fight"
	HandlerHelp      = "help"
	HandlerQuit      = "quit"
)

// Command defines a player-invocable command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Help is the short help text displayed to players.
	Help     string
	Category string
	Handler  string
}

// BuiltinCommands returns all built-in commands for the game.
func BuiltinCommands() []Command {
	return []Command{
		{Name: "north", Aliases: []string{"n"}, Help: "Move north", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "south", Aliases: []string{"s"}, Help: "Move south", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "east", Aliases: []string{"e"}, Help: "Move east", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "west", Aliases: []string{"w"}, Help: "Move west", Category: CategoryMovement, Handler: HandlerMove},

		{Name: "look", Help: "Examine your surroundings", Category: CategoryWorld, Handler: HandlerLook},
		{Name: "map", Help: "Display the game map", Category: CategoryWorld, Handler: HandlerMap},
		{Name: "solve", Help: "Attempt a puzzle at your location", Category: CategoryWorld, Handler: HandlerSolve},

		{Name: "take", Help: "Pick up an item", Category: CategoryItems, Handler: HandlerTake},
		{Name: "inventory", Aliases: []string{"inv"}, Help: "Show your inventory", Category: CategoryItems, Handler: HandlerInventory},
		{Name: "use", Help: "Use or trade an item at your location", Category: CategoryItems, Handler: HandlerUse},
		{Name: "heal", Help: "Use a Stimpack to restore health", Category: CategoryItems, Handler: HandlerHeal},

		{Name: "fight", Help: "Initiate the fight with a hostile npc", Category: CategoryCombat, Handler: HandlerFight},

		{Name: "help", Aliases: []string{"?"}, Help: "Show this help menu", Category: CategorySystem, Handler: HandlerHelp},
		{Name: "quit", Aliases: []string{"q"}, Help: "Quit the game", Category: CategorySystem, Handler: HandlerQuit},
	}
}

// Direction returns the movement direction for a movement command name.
//
// Postcondition: Returns ("", false) for non-movement commands.
func Direction(name string) (world.Direction, bool) {
	d := world.Direction(name)
	if !d.IsStandard() {
		return "", false
	}
	return d, true
}
