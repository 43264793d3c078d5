package gameserver

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/galacticdawn/internal/config"
	"github.com/cory-johannsen/galacticdawn/internal/game/world"
)

func TestRun_WelcomeQuit(t *testing.T) {
	f := newTestFactory(t, 10, true, nil)
	term := newScriptTerm("2")
	g, err := f.NewGame(term)
	require.NoError(t, err)

	ending, err := g.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, EndQuit, ending)
	assert.Contains(t, term.output(), "Quitting...")
	assert.NotContains(t, term.prompts, "Please enter a name: ")
}

func TestRun_MenuAndNameValidation(t *testing.T) {
	f := newTestFactory(t, 10, true, nil)
	term := newScriptTerm("3", "start", "1", "", "   ", "Nova", "q", "n", "q", "y")
	g, err := f.NewGame(term)
	require.NoError(t, err)

	ending, err := g.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, EndQuit, ending)

	out := term.output()
	assert.Contains(t, out, "Invalid input.")
	assert.Contains(t, out, "Name cannot be empty. Please try again.")
	assert.Contains(t, out, "Welcome to GALACTIC DAWN, Nova!")
	assert.Contains(t, out, "The Rift Gate awaits, Nova.")
	assert.Contains(t, out, "Continuing game...")
	assert.Contains(t, out, "Thanks for playing. Goodbye!")
	assert.Equal(t, "Nova", g.Player().Name)
	assert.Equal(t, 0, f.Sessions().PlayerCount(), "session must be released when the game ends")
}

func TestRun_QuitConfirmRetries(t *testing.T) {
	f := newTestFactory(t, 10, true, nil)
	_, term, ending, err := play(t, f, nil, "q", "maybe", "y")
	require.NoError(t, err)
	assert.Equal(t, EndQuit, ending)
	assert.Contains(t, term.output(), "Please enter 'y' or 'n'.")
}

func TestRun_EOFIsAnError(t *testing.T) {
	f := newTestFactory(t, 10, true, nil)
	_, _, _, err := play(t, f, nil, "look")
	require.Error(t, err)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 0, f.Sessions().PlayerCount())
}

func TestRun_WriteFailureIsAnError(t *testing.T) {
	f := newTestFactory(t, 10, true, nil)
	g, err := f.NewGame(&brokenTerm{scriptTerm{lines: []string{"1"}}})
	require.NoError(t, err)
	_, err = g.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestRun_UnknownCommand(t *testing.T) {
	f := newTestFactory(t, 10, true, nil)
	_, term, _, err := play(t, f, nil, "dance", "", "q", "y")
	require.NoError(t, err)
	assert.Contains(t, term.output(), "Invalid input.")
}

func TestMove_LocationReadout(t *testing.T) {
	f := newTestFactory(t, 10, true, nil)
	g, term, _, err := play(t, f, nil, "n", "north", "n", "q", "y")
	require.NoError(t, err)

	out := term.output()
	assert.Contains(t, out, "Location: Abandoned Space Station (2, 3)")
	assert.Contains(t, out, "You see the remains of an abandoned space station drifting silently.")
	assert.Contains(t, out, "Location: **[HOSTILE]** Eridani (2, 4)")
	assert.Contains(t, out, "Can't go further north.")
	assert.Equal(t, world.Coord{X: 2, Y: 4}, g.Player().Pos)
}

func TestLookTakeInventory(t *testing.T) {
	f := newTestFactory(t, 10, true, nil)
	g, term, _, err := play(t, f, nil, "e", "e", "look", "take", "take", "inv", "q", "y")
	require.NoError(t, err)

	out := term.output()
	assert.Contains(t, out, "You examine your surroundings more carefully...")
	assert.Contains(t, out, "You notice: Ore Chunk")
	assert.Contains(t, out, "Rich ore veins glint beneath the surface")
	assert.Contains(t, out, "You picked up: Ore Chunk")
	assert.Contains(t, out, "Nothing to take here.")
	assert.Contains(t, out, "- Stimpack")
	assert.Contains(t, out, "- Ore Chunk")
	assert.Equal(t, []string{"stimpack", "ore_chunk"}, g.Player().Inventory.Items())
}

func TestInventory_CountsDuplicates(t *testing.T) {
	f := newTestFactory(t, 10, true, nil)
	_, term, _, err := play(t, f, func(g *Game) {
		g.Player().Inventory.Add("stimpack", "stimpack")
	}, "inv", "q", "y")
	require.NoError(t, err)
	assert.Contains(t, term.output(), "- Stimpack x3")
}

func TestInventory_Empty(t *testing.T) {
	f := newTestFactory(t, 10, true, func(g *config.GameConfig) { g.StartItems = nil })
	_, term, _, err := play(t, f, nil, "inv", "q", "y")
	require.NoError(t, err)
	assert.Contains(t, term.output(), "Your inventory is empty.")
}

func TestMapAndHelp(t *testing.T) {
	f := newTestFactory(t, 10, true, nil)
	_, term, _, err := play(t, f, nil, "map", "?", "q", "y")
	require.NoError(t, err)

	out := term.output()
	assert.Contains(t, out, "[0,2] [1,2] [ P ] [3,2] [4,2]")
	assert.Contains(t, out, "[0,4] [1,4] [2,4] [3,4] [4,4]")
	assert.Contains(t, out, "Available commands:")
	assert.Contains(t, out, "n / north - Move north")
	assert.Contains(t, out, "inv / inventory - Show your inventory")
	assert.Contains(t, out, "? / help - Show this help menu")
	assert.Contains(t, out, "q / quit - Quit the game")
}

func TestHeal_OutsideCombat(t *testing.T) {
	f := newTestFactory(t, 10, true, nil)
	g, term, _, err := play(t, f, nil, "heal", "y", "heal", "q", "y")
	require.NoError(t, err)

	out := term.output()
	assert.Contains(t, out, "Previous Health: 100\nCurrent Health: 150")
	assert.Contains(t, out, "You don't have any Stimpacks.")
	assert.Equal(t, 150, g.Player().Health)
}

func TestFight_NothingHere(t *testing.T) {
	f := newTestFactory(t, 10, true, nil)
	_, term, _, err := play(t, f, nil, "fight", "q", "y")
	require.NoError(t, err)
	assert.Contains(t, term.output(), "There's nothing to fight here.")
}

func TestFight_DroidVictoryAndAftermath(t *testing.T) {
	f := newTestFactory(t, 10, true, nil)
	g, term, _, err := play(t, f, nil,
		"e", "e", "s", "s", "fight", "1", "1", "1", "fight", "q", "y")
	require.NoError(t, err)

	out := term.output()
	assert.Contains(t, out, "Nova's HP: 100\nRogue Droid's HP: 60")
	assert.Contains(t, out, "You attack and deal 20 damage!")
	assert.Contains(t, out, "Rogue Droid attacks and deals 15 damage!")
	assert.Contains(t, out, "You defeated Rogue Droid!")
	assert.Contains(t, out, "You have gained: Warp Drive Fragment 2, Stimpack")
	assert.Contains(t, out, "The droid's remains lie motionless among the ruins.")

	assert.Equal(t, 70, g.Player().Health)
	assert.True(t, g.Player().Inventory.Has("warp_drive_fragment_2"))
	assert.Equal(t, 2, g.Player().Inventory.Count("stimpack"))
	ternion := g.World().MustLocation(world.Coord{X: 4, Y: 0})
	assert.False(t, ternion.Hostile)
	droid, ok := g.Enemies().Get("rogue_droid")
	require.True(t, ok)
	assert.True(t, droid.Dead)
}

func TestFight_FleeKeepsEnemyHealth(t *testing.T) {
	f := newTestFactory(t, 10, true, nil)
	g, term, _, err := play(t, f, nil,
		"e", "e", "s", "s", "fight", "1", "3", "fight", "3", "q", "y")
	require.NoError(t, err)

	assert.Contains(t, term.output(), "You successfully escaped!")
	droid, _ := g.Enemies().Get("rogue_droid")
	assert.Equal(t, 40, droid.Health)
	assert.False(t, droid.Dead)
	assert.Contains(t, term.output(), "Nova's HP: 85\nRogue Droid's HP: 40")
}

func TestFight_PlayerDefeatedEndsGame(t *testing.T) {
	f := newTestFactory(t, 10, true, func(g *config.GameConfig) {
		g.StartHealth = 10
		g.StartX, g.StartY = 4, 0
	})
	_, term, ending, err := play(t, f, nil, "fight", "1", "look")
	require.NoError(t, err)
	assert.Equal(t, EndPlayerDefeated, ending)
	assert.Contains(t, term.output(), "You have been defeated...")
	assert.NotContains(t, term.output(), "A Rogue Droid stalks the alleys.", "no command runs after defeat")
}

func TestUse_NothingHere(t *testing.T) {
	f := newTestFactory(t, 10, true, nil)
	_, term, _, err := play(t, f, nil, "use", "q", "y")
	require.NoError(t, err)
	assert.Contains(t, term.output(), "There's nothing here you can use.")
}

func TestUse_ZigTradePacifiesEridani(t *testing.T) {
	f := newTestFactory(t, 10, true, nil)
	g, term, _, err := play(t, f, nil,
		"e", "e", "take", "w", "w", "n", "n",
		"use", "n", "use", "y", "use", "fight", "q", "y")
	require.NoError(t, err)

	out := term.output()
	assert.Contains(t, out, "You hold onto the Ore Chunk for now.")
	assert.Contains(t, out, "He is pleased with the trade and hands you a Warp Drive Fragment.")
	assert.Contains(t, out, "You have received: Warp Drive Fragment 1")
	assert.Contains(t, out, "You have already traded with Grand General Zig.")
	assert.Contains(t, out, "Zig and his forces have retreated.")

	eridani := g.World().MustLocation(world.Coord{X: 2, Y: 4})
	assert.True(t, eridani.EventTriggered)
	assert.False(t, eridani.Hostile)
	assert.Contains(t, eridani.LongDescription, "retreated into the dunes")
	assert.False(t, g.Player().Inventory.Has("ore_chunk"))
	assert.True(t, g.Player().Inventory.Has("warp_drive_fragment_1"))
}

func TestUse_ZigMissingItem(t *testing.T) {
	f := newTestFactory(t, 10, true, nil)
	_, term, _, err := play(t, f, nil, "n", "n", "use", "q", "y")
	require.NoError(t, err)
	assert.Contains(t, term.output(), "You don't have anything that pleases Grand General Zig.")
}

func TestUse_ZigBlockedAfterDefeat(t *testing.T) {
	f := newTestFactory(t, 10, true, func(g *config.GameConfig) {
		g.StartHealth = 1000
		g.StartX, g.StartY = 2, 4
	})
	g, term, _, err := play(t, f, func(g *Game) { g.Player().Inventory.Add("ore_chunk") },
		"fight", "1", "1", "1", "1", "1", "1", "1", "1", "use", "q", "y")
	require.NoError(t, err)

	zig, _ := g.Enemies().Get("grand_general_zig")
	require.True(t, zig.Dead)
	assert.Contains(t, term.output(), "There's nothing more to do here.")
	assert.True(t, g.Player().Inventory.Has("ore_chunk"), "blocked trade keeps the item")
}

func TestUse_TerminalAndHermit(t *testing.T) {
	f := newTestFactory(t, 10, true, nil)
	g, term, _, err := play(t, f, func(g *Game) {
		g.Player().Inventory.Add("cryo_core", "ixyll_fruit")
	}, "n", "use", "y", "use", "e", "e", "use", "y", "q", "y")
	require.NoError(t, err)

	out := term.output()
	assert.Contains(t, out, "The room hums to life as the armory doors slide open.")
	assert.Contains(t, out, "You have received: Laser Rifle")
	assert.Contains(t, out, "You have already done this.")
	assert.Contains(t, out, "You have received: Shield Module")
	assert.True(t, g.Player().Inventory.HasAll([]string{"laser_rifle", "shield_module"}))
	assert.False(t, g.Player().Inventory.Has("cryo_core"))
	assert.False(t, g.Player().Inventory.Has("ixyll_fruit"))
}

func TestUse_RiftGateBlocked(t *testing.T) {
	f := newTestFactory(t, 10, true, func(g *config.GameConfig) { g.StartX, g.StartY = 0, 0 })
	_, term, _, err := play(t, f, func(g *Game) {
		g.Player().Inventory.Add("gate_key", "warp_drive_fragment_1", "warp_drive_fragment_2", "warp_drive_fragment_3")
	}, "use", "q", "y")
	require.NoError(t, err)
	assert.Contains(t, term.output(), "The Rift Gate is blocked. You need something to activate it.")
}

func riftReady(g *Game) {
	g.Player().Inventory.Add(
		"gate_key", "laser_rifle", "shield_module",
		"warp_drive_fragment_1", "warp_drive_fragment_2", "warp_drive_fragment_3", "warp_drive_fragment_4",
	)
}

func TestUse_RiftGateDeclineKeepsKey(t *testing.T) {
	f := newTestFactory(t, 10, true, func(g *config.GameConfig) { g.StartX, g.StartY = 0, 0 })
	g, term, _, err := play(t, f, riftReady, "use", "n", "q", "y")
	require.NoError(t, err)
	assert.Contains(t, term.output(), "The fabric of space-time ripples around the Gate...")
	assert.Contains(t, term.output(), "You step back from the Rift Gate.")
	assert.True(t, g.Player().Inventory.Has("gate_key"))
}

func TestUse_RiftGateFinalVictory(t *testing.T) {
	f := newTestFactory(t, 10, true, func(g *config.GameConfig) {
		g.StartHealth = 500
		g.StartX, g.StartY = 0, 0
	})
	g, term, ending, err := play(t, f, riftReady, "use", "y", "1", "1", "1", "1")
	require.NoError(t, err)
	assert.Equal(t, EndGameWon, ending)

	out := term.output()
	assert.Contains(t, out, "Your ship is engulfed by a blinding light...")
	assert.Contains(t, out, "You shoot your Laser Rifle and deal 50 damage!")
	assert.Contains(t, out, "Incoming damage reduced from 35 to 17.")
	assert.Contains(t, out, "Emperor Poutine has fallen! The Rift Gate activates...")
	assert.Contains(t, out, "Thanks for playing!")
	assert.False(t, g.Player().Inventory.Has("gate_key"), "the key is consumed on entry")
	assert.Equal(t, 500-3*17, g.Player().Health)
}

func TestUse_RiftGateFleeLosesKey(t *testing.T) {
	f := newTestFactory(t, 10, true, func(g *config.GameConfig) { g.StartX, g.StartY = 0, 0 })
	g, term, _, err := play(t, f, riftReady, "use", "y", "3", "use", "q", "y")
	require.NoError(t, err)
	assert.Contains(t, term.output(), "You successfully escaped!")
	assert.False(t, g.Player().Inventory.Has("gate_key"))
	assert.Contains(t, term.output(), "The Rift Gate is blocked. You need something to activate it.")
}

func TestSolve_NoPuzzle(t *testing.T) {
	f := newTestFactory(t, 10, true, nil)
	_, term, _, err := play(t, f, nil, "solve", "q", "y")
	require.NoError(t, err)
	assert.Contains(t, term.output(), "There is no puzzle to solve here.")
}

func TestSolve_MonolithStreak(t *testing.T) {
	f := newTestFactory(t, 10, true, nil)
	g, term, _, err := play(t, f, nil,
		"e", "s", "solve",
		"maybe", "1", "false", "false", "false", "true", "false",
		"solve", "q", "y")
	require.NoError(t, err)

	out := term.output()
	assert.Contains(t, out, `"This statement is false. True or false?"`)
	assert.Contains(t, out, "Invalid input. Please type true or false.")
	assert.Contains(t, out, "...hmm. (1/3)")
	assert.Contains(t, out, "Wrong. The Monolith resets your progress.")
	assert.Contains(t, out, "...hmm. (3/3)")
	assert.Contains(t, out, "The Monolith glows brightly. You've overcome the challenge.")
	assert.Contains(t, out, "You have gained: Gate Key")
	assert.Contains(t, out, "You have already solved the Monolith's paradox.")

	monolith := g.World().MustLocation(world.Coord{X: 3, Y: 1})
	assert.True(t, monolith.EventTriggered)
	assert.Contains(t, monolith.LongDescription, "It stands still.")
	assert.Equal(t, 1, g.Player().Inventory.Count("gate_key"))
}

func TestSolve_StrixRiddle(t *testing.T) {
	for _, withScripts := range []bool{true, false} {
		f := newTestFactory(t, 10, withScripts, nil)
		g, term, _, err := play(t, f, nil, "w", "s", "solve", "six", "solve", " SEVEN ", "solve", "q", "y")
		require.NoError(t, err)

		out := term.output()
		assert.Contains(t, out, "Incorrect. The Strix Mastermind laughs.")
		assert.Contains(t, out, "Correct! You have solved the puzzle.")
		assert.Contains(t, out, "You have gained: Cryo Core")
		assert.Contains(t, out, "You have already solved Mastermind's riddle.")
		assert.Equal(t, 1, g.Player().Inventory.Count("cryo_core"), "scripts=%v", withScripts)
	}
}

func TestFight_MastermindIntroAfterRiddle(t *testing.T) {
	f := newTestFactory(t, 10, true, func(g *config.GameConfig) { g.StartX, g.StartY = 1, 1 })
	_, term, _, err := play(t, f, nil, "solve", "seven", "fight", "3", "q", "y")
	require.NoError(t, err)
	assert.Contains(t, term.output(), "Mastermind: 'You still dare defy me? Insolent worm!'")
}

func TestFactory_GamesAreIndependent(t *testing.T) {
	f := newTestFactory(t, 10, true, nil)
	first, _, _, err := play(t, f, nil, "e", "e", "take", "q", "y")
	require.NoError(t, err)
	second, term, _, err := play(t, f, nil, "e", "e", "look", "q", "y")
	require.NoError(t, err)

	assert.True(t, first.Player().Inventory.Has("ore_chunk"))
	assert.False(t, second.Player().Inventory.Has("ore_chunk"))
	assert.Contains(t, term.output(), "You notice: Ore Chunk")
	assert.NotEqual(t, first.Player().ID, second.Player().ID)
}

func TestProperty_WanderingStaysOnGrid(t *testing.T) {
	f := newTestFactory(t, 10, true, nil)
	safe := []string{"n", "s", "e", "w", "look", "map", "inv", "take", "help", "xyzzy"}
	rapid.Check(t, func(rt *rapid.T) {
		cmds := rapid.SliceOfN(rapid.SampledFrom(safe), 0, 40).Draw(rt, "cmds")
		g, _, ending, err := play(rt, f, nil, append(cmds, "q", "y")...)
		require.NoError(rt, err)
		assert.Equal(rt, EndQuit, ending)
		assert.True(rt, g.World().Contains(g.Player().Pos))
		assert.Equal(rt, 100, g.Player().Health)
	})
}
