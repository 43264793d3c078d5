package gameserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/galacticdawn/internal/config"
	"github.com/cory-johannsen/galacticdawn/internal/game/combat"
	"github.com/cory-johannsen/galacticdawn/internal/game/dice"
	"github.com/cory-johannsen/galacticdawn/internal/game/inventory"
	"github.com/cory-johannsen/galacticdawn/internal/game/npc"
	"github.com/cory-johannsen/galacticdawn/internal/game/session"
	"github.com/cory-johannsen/galacticdawn/internal/game/world"
)

func TestLoadContent_Shipped(t *testing.T) {
	c := shippedContent(t)
	assert.Equal(t, 5, c.World.Size)
	assert.Len(t, c.Enemies, 5)
	assert.Len(t, c.Items.OfKind(inventory.KindFragment), 4)
}

func TestLoadContent_MissingDir(t *testing.T) {
	cfg := testConfig(t).Content
	cfg.EnemiesDir = t.TempDir() + "/missing"
	_, err := LoadContent(cfg)
	assert.Error(t, err)
}

func TestContentValidate_DanglingReferences(t *testing.T) {
	items, err := inventory.NewRegistryFrom([]*inventory.ItemDef{
		{ID: "stimpack", Name: "Stimpack", Kind: inventory.KindConsumable},
	})
	require.NoError(t, err)

	c := &Content{
		Items: items,
		World: &world.Blueprint{
			Size: 3,
			Locations: []world.Placement{{
				Coord: world.Coord{X: 1, Y: 1},
				Location: &world.Location{
					ID:     "outpost",
					ItemID: "ghost_item",
					Interaction: &world.Interaction{
						Kind:      world.InteractionExchange,
						Requires:  []string{"stimpack"},
						Grants:    []string{"phantom"},
						BlockedBy: "nobody",
					},
				},
			}},
		},
		Enemies: []*npc.Template{{
			ID:      "far_away",
			Coord:   world.Coord{X: 7, Y: 0},
			Victory: npc.Victory{Rewards: []string{"relic"}},
		}},
	}

	err = c.Validate()
	require.Error(t, err)
	for _, want := range []string{"ghost_item", "phantom", "nobody", "relic", "outside"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestNewFactory_RejectsMismatches(t *testing.T) {
	content := shippedContent(t)
	logger := zap.NewNop()
	roller := dice.NewLoggedRoller(fixedSrc{v: 0}, logger)
	cfg := testConfig(t)
	rules, err := combat.RulesFromConfig(cfg.Combat)
	require.NoError(t, err)
	engine := combat.NewEngine(rules, roller, content.Items, logger)

	game := cfg.Game
	game.GridSize = 6
	_, err = NewFactory(content, game, engine, roller, nil, session.NewManager(), nil, logger)
	assert.ErrorContains(t, err, "grid_size")

	game = cfg.Game
	game.StartItems = []string{"warp_core"}
	_, err = NewFactory(content, game, engine, roller, nil, session.NewManager(), nil, logger)
	assert.ErrorContains(t, err, "warp_core")

	bad := cfg.Combat
	bad.ShieldItem = "force_field"
	rules, err = combat.RulesFromConfig(bad)
	require.NoError(t, err)
	_, err = NewFactory(content, cfg.Game, combat.NewEngine(rules, roller, content.Items, logger), roller, nil, session.NewManager(), nil, logger)
	assert.ErrorContains(t, err, "force_field")
}

func TestTestConfig_UsesShippedContent(t *testing.T) {
	cfg := testConfig(t)
	assert.Equal(t, config.ContentConfig{
		ItemsDir:   "../../content/items",
		EnemiesDir: "../../content/enemies",
		WorldFile:  "../../content/world/galaxy.yaml",
		ScriptsDir: "../../content/scripts",
	}, cfg.Content)
}
