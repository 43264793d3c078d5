// Package gameserver runs Galactic Dawn games: the welcome menu, the command
// loop and the handlers that bridge commands to the world and combat engine.
package gameserver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/galacticdawn/internal/game/combat"
	"github.com/cory-johannsen/galacticdawn/internal/game/command"
	"github.com/cory-johannsen/galacticdawn/internal/game/inventory"
	"github.com/cory-johannsen/galacticdawn/internal/game/npc"
	"github.com/cory-johannsen/galacticdawn/internal/game/session"
	"github.com/cory-johannsen/galacticdawn/internal/game/world"
	"github.com/cory-johannsen/galacticdawn/internal/scripting"
)

// ErrQuit is returned by a handler when the player confirms quitting.
var ErrQuit = errors.New("player quit")

// errGameOver is returned by a handler when an encounter ended the game.
var errGameOver = errors.New("game over")

// Ending records how a game finished.
type Ending int

const (
	EndQuit Ending = iota
	EndPlayerDefeated
	EndGameWon
)

// String returns a stable label used in logs.
func (e Ending) String() string {
	switch e {
	case EndQuit:
		return "quit"
	case EndPlayerDefeated:
		return "player_defeated"
	case EndGameWon:
		return "game_won"
	default:
		return "unknown"
	}
}

// Game is one single-player session. It is not safe for concurrent use.
type Game struct {
	con      *console
	world    *world.Map
	enemies  *npc.Registry
	player   *session.Player
	items    *inventory.Registry
	engine   *combat.Engine
	scripts  *scripting.Manager
	commands *command.Registry
	sessions *session.Manager
	logger   *zap.Logger

	ending Ending
}

// Player returns the session's player.
func (g *Game) Player() *session.Player { return g.player }

// World returns the session's map.
func (g *Game) World() *world.Map { return g.world }

// Enemies returns the session's enemy roster.
func (g *Game) Enemies() *npc.Registry { return g.enemies }

// Run plays the game to an end: the welcome menu, the name prompt, the brief
// and the command loop.
//
// Postcondition: Returns how the game ended, or a non-nil error when terminal
// I/O fails. Quitting, defeat and victory are endings, not errors.
func (g *Game) Run(ctx context.Context) (Ending, error) {
	start, err := g.welcome(ctx)
	if err != nil || !start {
		return EndQuit, err
	}

	name, err := g.promptName(ctx)
	if err != nil {
		return EndQuit, err
	}
	g.player.Name = name
	g.logger = g.logger.With(zap.String("player", name))

	if err := g.sessions.AddPlayer(g.player); err != nil {
		return EndQuit, fmt.Errorf("registering session: %w", err)
	}
	defer func() { _ = g.sessions.RemovePlayer(g.player.ID.String()) }()

	g.logger.Info("game started", zap.Stringer("position", g.player.Pos))
	g.brief()

	ending, err := g.loop(ctx)
	if err != nil {
		g.logger.Info("game abandoned", zap.Error(err))
		return ending, err
	}
	g.logger.Info("game ended",
		zap.Stringer("ending", ending),
		zap.Int("health", g.player.Health),
	)
	return ending, nil
}

func (g *Game) welcome(ctx context.Context) (bool, error) {
	g.con.say(StyleTitle, "G A L A C T I C   D A W N")
	for {
		g.con.blank()
		line, err := g.con.ReadLine(ctx, "Choose action (1=Start, 2=Quit): ")
		if err != nil {
			return false, fmt.Errorf("reading welcome choice: %w", err)
		}
		switch strings.TrimSpace(line) {
		case "1":
			return true, nil
		case "2":
			g.con.say(StylePlain, "Quitting...")
			return false, g.con.err
		}
		g.con.say(StyleWarning, "Invalid input.")
	}
}

func (g *Game) promptName(ctx context.Context) (string, error) {
	for {
		g.con.blank()
		line, err := g.con.ReadLine(ctx, "Please enter a name: ")
		if err != nil {
			return "", fmt.Errorf("reading name: %w", err)
		}
		if name := strings.TrimSpace(line); name != "" {
			return name, nil
		}
		g.con.say(StyleWarning, "Name cannot be empty. Please try again.")
	}
}

func (g *Game) brief() {
	name := g.player.Name
	g.con.blank()
	g.con.say(StyleTitle, fmt.Sprintf("Welcome to GALACTIC DAWN, %s!", name))
	g.con.blank()
	g.con.say(StylePlain,
		"====================== BRIEF =====================",
		"You awaken in empty space aboard a crippled spaceship.",
		"Its warp drive is obliterated and the stars are unreachable.",
		"To escape, you must explore nearby planets, retrieve",
		"four warp drive fragments, and defeat Emperor Poutine,",
		"the tyrant whose corruption locks down the system.",
		fmt.Sprintf("The Rift Gate awaits, %s.", name),
		"===================================================",
		"",
		"================= GAME INSTRUCTIONS ===============",
		"Type n/s/e/w to move in that direction.",
		"Type 'look' to examine your surroundings.",
		"Type 'take' to pick up an item.",
		"Type 'inv' to check your inventory.",
		"Type 'map' to see the map.",
		"Type 'solve' to attempt a puzzle at your location.",
		"Type 'heal' to use a Stimpack to restore health",
		"Type 'use' to use or trade an item at your location.",
		"Type 'help' or '?' for commands.",
		"Type 'fight' initiates the fight with hostile npc.",
		"Type 'q' to quit the game.",
		"====================================================",
	)
}

func (g *Game) loop(ctx context.Context) (Ending, error) {
	for {
		g.con.blank()
		line, err := g.con.ReadLine(ctx, "Enter command: ")
		if err != nil {
			return EndQuit, fmt.Errorf("reading command: %w", err)
		}
		g.con.blank()

		err = g.dispatch(ctx, line)
		switch {
		case errors.Is(err, ErrQuit):
			return EndQuit, nil
		case errors.Is(err, errGameOver):
			return g.ending, nil
		case err != nil:
			return EndQuit, err
		}
		if g.con.err != nil {
			return EndQuit, fmt.Errorf("writing output: %w", g.con.err)
		}
	}
}

// dispatch resolves one command line and runs its handler.
func (g *Game) dispatch(ctx context.Context, line string) error {
	parsed := command.Parse(line)
	cmd, ok := g.commands.Resolve(parsed.Command)
	if !ok {
		g.con.say(StyleWarning, "Invalid input.")
		return nil
	}

	switch cmd.Handler {
	case command.HandlerMove:
		dir, _ := command.Direction(cmd.Name)
		g.handleMove(dir)
	case command.HandlerLook:
		g.handleLook()
	case command.HandlerMap:
		g.handleMap()
	case command.HandlerTake:
		g.handleTake()
	case command.HandlerInventory:
		g.handleInventory()
	case command.HandlerHelp:
		g.handleHelp()
	case command.HandlerHeal:
		return g.handleHeal(ctx)
	case command.HandlerFight:
		return g.handleFight(ctx)
	case command.HandlerUse:
		return g.handleUse(ctx)
	case command.HandlerSolve:
		return g.handleSolve(ctx)
	case command.HandlerQuit:
		return g.handleQuit(ctx)
	default:
		return fmt.Errorf("command %q has no handler %q", cmd.Name, cmd.Handler)
	}
	return nil
}

func (g *Game) handleQuit(ctx context.Context) error {
	ok, err := combat.Confirm(ctx, g.con, "Are you sure you want to quit? (y/n): ")
	if err != nil {
		return err
	}
	if ok {
		g.con.say(StylePlain, "Thanks for playing. Goodbye!")
		return ErrQuit
	}
	g.con.say(StylePlain, "Continuing game...")
	return nil
}

// here returns the player's current location.
func (g *Game) here() *world.Location {
	return g.world.MustLocation(g.player.Pos)
}

// grant adds ids to the inventory and reports them with verb, as in
// "You have received: Shield Module".
func (g *Game) grant(verb string, ids []string) {
	if len(ids) == 0 {
		return
	}
	g.player.Inventory.Add(ids...)
	g.con.say(StyleNotice, fmt.Sprintf("You have %s: %s", verb, strings.Join(g.items.Names(ids), ", ")))
	g.logger.Info("items granted", zap.Strings("items", ids))
}
