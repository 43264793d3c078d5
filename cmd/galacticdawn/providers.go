package main

import (
	"fmt"

	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/cory-johannsen/galacticdawn/internal/config"
	"github.com/cory-johannsen/galacticdawn/internal/frontend/handlers"
	"github.com/cory-johannsen/galacticdawn/internal/frontend/telnet"
	"github.com/cory-johannsen/galacticdawn/internal/game/combat"
	"github.com/cory-johannsen/galacticdawn/internal/game/dice"
	"github.com/cory-johannsen/galacticdawn/internal/game/session"
	"github.com/cory-johannsen/galacticdawn/internal/gameserver"
	"github.com/cory-johannsen/galacticdawn/internal/scripting"
)

// gameSet builds everything a game needs from configuration.
var gameSet = wire.NewSet(
	provideContent,
	provideRules,
	provideRoller,
	provideScripts,
	provideRenderer,
	provideEngine,
	provideFactory,
	session.NewManager,
)

// telnetSet serves games over Telnet.
var telnetSet = wire.NewSet(
	gameSet,
	handlers.NewGameHandler,
	wire.Bind(new(telnet.SessionHandler), new(*handlers.GameHandler)),
	provideAcceptor,
)

func provideContent(cfg config.Config) (*gameserver.Content, error) {
	return gameserver.LoadContent(cfg.Content)
}

func provideRules(cfg config.Config) (combat.Rules, error) {
	return combat.RulesFromConfig(cfg.Combat)
}

func provideRoller(cfg config.Config, logger *zap.Logger) *dice.Roller {
	return dice.NewLoggedRoller(dice.NewSource(cfg.Game.Seed), logger)
}

// provideScripts returns a nil manager when no scripts directory is
// configured; puzzles then fall back to their YAML answers.
func provideScripts(cfg config.Config, logger *zap.Logger) (*scripting.Manager, func(), error) {
	if cfg.Content.ScriptsDir == "" {
		return nil, func() {}, nil
	}
	mgr := scripting.NewManager(scripting.DefaultInstructionLimit, logger)
	if err := mgr.LoadDir(cfg.Content.ScriptsDir); err != nil {
		mgr.Close()
		return nil, nil, fmt.Errorf("loading scripts: %w", err)
	}
	return mgr, mgr.Close, nil
}

func provideRenderer(cfg config.Config) gameserver.Renderer {
	return handlers.NewTextRenderer(cfg.Game.Color)
}

func provideEngine(rules combat.Rules, roller *dice.Roller, content *gameserver.Content, logger *zap.Logger) *combat.Engine {
	return combat.NewEngine(rules, roller, content.Items, logger)
}

func provideFactory(
	cfg config.Config,
	content *gameserver.Content,
	engine *combat.Engine,
	roller *dice.Roller,
	scripts *scripting.Manager,
	sessions *session.Manager,
	render gameserver.Renderer,
	logger *zap.Logger,
) (*gameserver.Factory, error) {
	return gameserver.NewFactory(content, cfg.Game, engine, roller, scripts, sessions, render, logger)
}

func provideAcceptor(cfg config.Config, handler telnet.SessionHandler, logger *zap.Logger) *telnet.Acceptor {
	return telnet.NewAcceptor(cfg.Telnet, handler, logger)
}
