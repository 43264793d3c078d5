package gameserver

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/galacticdawn/internal/config"
	"github.com/cory-johannsen/galacticdawn/internal/game/combat"
	"github.com/cory-johannsen/galacticdawn/internal/game/command"
	"github.com/cory-johannsen/galacticdawn/internal/game/dice"
	"github.com/cory-johannsen/galacticdawn/internal/game/npc"
	"github.com/cory-johannsen/galacticdawn/internal/game/session"
	"github.com/cory-johannsen/galacticdawn/internal/game/world"
	"github.com/cory-johannsen/galacticdawn/internal/scripting"
)

// Factory builds independent games that share content, the combat engine,
// the script VM and the session registry.
type Factory struct {
	content  *Content
	cfg      config.GameConfig
	engine   *combat.Engine
	roller   *dice.Roller
	scripts  *scripting.Manager
	commands *command.Registry
	sessions *session.Manager
	render   Renderer
	logger   *zap.Logger
}

// NewFactory creates a Factory.
//
// Precondition: content, engine, roller, sessions and logger must be non-nil.
// scripts and render may be nil; puzzles then use their YAML answers and
// output is unstyled.
// Postcondition: Returns an error when the configured grid or start items do
// not match the content.
func NewFactory(
	content *Content,
	cfg config.GameConfig,
	engine *combat.Engine,
	roller *dice.Roller,
	scripts *scripting.Manager,
	sessions *session.Manager,
	render Renderer,
	logger *zap.Logger,
) (*Factory, error) {
	if cfg.GridSize != content.World.Size {
		return nil, fmt.Errorf("game.grid_size %d does not match world size %d", cfg.GridSize, content.World.Size)
	}
	for _, id := range cfg.StartItems {
		if _, ok := content.Items.Item(id); !ok {
			return nil, fmt.Errorf("game.start_items: unknown item %q", id)
		}
	}
	rules := engine.Rules()
	for _, id := range []string{rules.WeaponItem, rules.ShieldItem, rules.HealItem} {
		if id == "" {
			continue
		}
		if _, ok := content.Items.Item(id); !ok {
			return nil, fmt.Errorf("combat: unknown item %q", id)
		}
	}
	if render == nil {
		render = plainRenderer{}
	}
	return &Factory{
		content:  content,
		cfg:      cfg,
		engine:   engine,
		roller:   roller,
		scripts:  scripts,
		commands: command.DefaultRegistry(),
		sessions: sessions,
		render:   render,
		logger:   logger,
	}, nil
}

// Sessions returns the registry of players currently in a game.
func (f *Factory) Sessions() *session.Manager { return f.sessions }

// NewGame lays out a fresh world, enemy roster and player for one session
// played over term.
//
// Postcondition: The returned Game shares no mutable state with other games.
func (f *Factory) NewGame(term Terminal) (*Game, error) {
	enemies, err := npc.NewRegistry(f.content.Enemies)
	if err != nil {
		return nil, fmt.Errorf("building enemy roster: %w", err)
	}
	player := session.NewPlayer(
		world.Coord{X: f.cfg.StartX, Y: f.cfg.StartY},
		f.cfg.StartHealth,
		f.cfg.StartItems,
	)
	return &Game{
		con:      newConsole(term, f.render),
		world:    f.content.World.Build(f.roller.Source()),
		enemies:  enemies,
		player:   player,
		items:    f.content.Items,
		engine:   f.engine,
		scripts:  f.scripts,
		commands: f.commands,
		sessions: f.sessions,
		logger:   f.logger.With(zap.String("session", player.ID.String())),
	}, nil
}
