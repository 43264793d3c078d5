package gameserver

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/galacticdawn/internal/config"
	"github.com/cory-johannsen/galacticdawn/internal/game/combat"
	"github.com/cory-johannsen/galacticdawn/internal/game/dice"
	"github.com/cory-johannsen/galacticdawn/internal/game/session"
	"github.com/cory-johannsen/galacticdawn/internal/scripting"
)

// testingT is satisfied by both *testing.T and *rapid.T.
type testingT interface {
	require.TestingT
	Helper()
}

// fixedSrc always returns v, clamped into [0, n).
type fixedSrc struct{ v int }

func (s fixedSrc) Intn(n int) int {
	if s.v >= n {
		return n - 1
	}
	return s.v
}

// scriptTerm replays input lines and records every written line.
type scriptTerm struct {
	lines   []string
	prompts []string
	out     []string
}

func newScriptTerm(lines ...string) *scriptTerm {
	return &scriptTerm{lines: lines}
}

func (s *scriptTerm) ReadLine(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func (s *scriptTerm) WriteLine(text string) error {
	s.out = append(s.out, text)
	return nil
}

func (s *scriptTerm) output() string { return strings.Join(s.out, "\n") }

// brokenTerm fails every write.
type brokenTerm struct{ scriptTerm }

func (b *brokenTerm) WriteLine(string) error { return errors.New("connection reset") }

func testConfig(t testingT) config.Config {
	t.Helper()
	cfg, err := config.LoadFromViper(config.Defaults())
	require.NoError(t, err)
	cfg.Content = config.ContentConfig{
		ItemsDir:   "../../content/items",
		EnemiesDir: "../../content/enemies",
		WorldFile:  "../../content/world/galaxy.yaml",
		ScriptsDir: "../../content/scripts",
	}
	return cfg
}

var loadedContent *Content

func shippedContent(t testingT) *Content {
	t.Helper()
	if loadedContent == nil {
		c, err := LoadContent(testConfig(t).Content)
		require.NoError(t, err)
		loadedContent = c
	}
	return loadedContent
}

// newTestFactory builds a factory over the shipped content where every roll
// returns roll (clamped). mutate may adjust the game settings.
func newTestFactory(t testingT, roll int, withScripts bool, mutate func(*config.GameConfig)) *Factory {
	t.Helper()
	cfg := testConfig(t)
	if mutate != nil {
		mutate(&cfg.Game)
	}
	content := shippedContent(t)
	logger := zap.NewNop()
	roller := dice.NewLoggedRoller(fixedSrc{v: roll}, logger)
	rules, err := combat.RulesFromConfig(cfg.Combat)
	require.NoError(t, err)
	engine := combat.NewEngine(rules, roller, content.Items, logger)

	var scripts *scripting.Manager
	if withScripts {
		scripts = scripting.NewManager(0, logger)
		require.NoError(t, scripts.LoadDir(cfg.Content.ScriptsDir))
	}

	f, err := NewFactory(content, cfg.Game, engine, roller, scripts, session.NewManager(), nil, logger)
	require.NoError(t, err)
	return f
}

// play runs a fresh game over the given input, prefixed with the start
// choice and the player name.
func play(t testingT, f *Factory, setup func(*Game), lines ...string) (*Game, *scriptTerm, Ending, error) {
	t.Helper()
	term := newScriptTerm(append([]string{"1", "Nova"}, lines...)...)
	g, err := f.NewGame(term)
	require.NoError(t, err)
	if setup != nil {
		setup(g)
	}
	ending, err := g.Run(context.Background())
	return g, term, ending, err
}
