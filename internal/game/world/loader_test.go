package world

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validWorldYAML = `
world:
  size: 3
  empty:
    name: Empty Space
    description: You are drifting through empty space.
    long_descriptions:
      - First void.
      - Second void.
  locations:
    - id: outpost
      name: Outpost
      x: 1
      y: 2
      hostile: true
      description: A lonely outpost.
      long_description: |
        Sentries watch.
        Nobody sleeps.
      interaction:
        kind: exchange
        requires: [ore_chunk]
        grants: [warp_drive_fragment_1]
        blocked_by: sentry
    - id: rock
      name: Rock
      x: 0
      y: 0
      item: ore_chunk
      puzzle:
        kind: streak
        streak: 2
        reward: [gate_key]
`

func TestLoadBlueprintFromBytes_Valid(t *testing.T) {
	bp, err := LoadBlueprintFromBytes([]byte(validWorldYAML))
	require.NoError(t, err)

	assert.Equal(t, 3, bp.Size)
	assert.Equal(t, "Empty Space", bp.Empty.Name)
	assert.Len(t, bp.Empty.LongDescriptions, 2)
	require.Len(t, bp.Locations, 2)

	outpost := bp.Locations[0]
	assert.Equal(t, Coord{X: 1, Y: 2}, outpost.Coord)
	assert.True(t, outpost.Location.Hostile)
	assert.Equal(t, "Sentries watch.\nNobody sleeps.", outpost.Location.LongDescription)
	require.NotNil(t, outpost.Location.Interaction)
	assert.Equal(t, "sentry", outpost.Location.Interaction.BlockedBy)

	rock := bp.Locations[1].Location
	assert.Equal(t, "ore_chunk", rock.ItemID)
	require.NotNil(t, rock.Puzzle)
	assert.Equal(t, 2, rock.Puzzle.Streak)
}

func TestLoadBlueprintFromBytes_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "world: [\n"},
		{"zero size", "world:\n  size: 0\n  empty: {name: E}\n"},
		{"outside grid", "world:\n  size: 2\n  empty: {name: E}\n  locations:\n    - {id: a, name: A, x: 2, y: 0}\n"},
		{"duplicate cell", "world:\n  size: 2\n  empty: {name: E}\n  locations:\n    - {id: a, name: A, x: 0, y: 0}\n    - {id: b, name: B, x: 0, y: 0}\n"},
		{"duplicate id", "world:\n  size: 2\n  empty: {name: E}\n  locations:\n    - {id: a, name: A, x: 0, y: 0}\n    - {id: a, name: B, x: 1, y: 0}\n"},
		{"unknown interaction", "world:\n  size: 2\n  empty: {name: E}\n  locations:\n    - {id: a, name: A, x: 0, y: 0, interaction: {kind: teleport}}\n"},
		{"riddle without answer", "world:\n  size: 2\n  empty: {name: E}\n  locations:\n    - {id: a, name: A, x: 0, y: 0, puzzle: {kind: riddle}}\n"},
		{"gate without enemy", "world:\n  size: 2\n  empty: {name: E}\n  locations:\n    - {id: a, name: A, x: 0, y: 0, interaction: {kind: rift_gate}}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBlueprintFromBytes([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadBlueprintFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validWorldYAML), 0644))

	bp, err := LoadBlueprintFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, bp.Size)

	_, err = LoadBlueprintFromFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestShippedGalaxy(t *testing.T) {
	bp, err := LoadBlueprintFromFile("../../../content/world/galaxy.yaml")
	require.NoError(t, err)
	m := bp.Build(fixedSrc{})

	cases := map[Coord]struct {
		name    string
		hostile bool
	}{
		{2, 4}: {"Eridani", true},
		{0, 3}: {"Ixyll", true},
		{1, 1}: {"Strix", true},
		{4, 0}: {"Ternion", true},
		{0, 0}: {"Rift Gate", true},
		{2, 3}: {"Abandoned Space Station", false},
		{4, 2}: {"Asteroid", false},
		{4, 3}: {"Jungle Moon", false},
		{3, 1}: {"Mysterious Monolith", false},
		{2, 2}: {"Empty Space", false},
	}
	for c, want := range cases {
		loc := m.MustLocation(c)
		assert.Equal(t, want.name, loc.Name, "at %s", c)
		assert.Equal(t, want.hostile, loc.Hostile, "at %s", c)
	}
	assert.Equal(t, "ore_chunk", m.MustLocation(Coord{4, 2}).ItemID)
}
