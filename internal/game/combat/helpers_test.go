package combat_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/galacticdawn/internal/game/combat"
	"github.com/cory-johannsen/galacticdawn/internal/game/dice"
	"github.com/cory-johannsen/galacticdawn/internal/game/inventory"
	"github.com/cory-johannsen/galacticdawn/internal/game/npc"
	"github.com/cory-johannsen/galacticdawn/internal/game/session"
	"github.com/cory-johannsen/galacticdawn/internal/game/world"
)

// testingT is satisfied by both *testing.T and *rapid.T.
type testingT interface {
	require.TestingT
	Helper()
}

// fixedSrc always returns val, clamped into [0, n).
type fixedSrc struct{ val int }

func (f fixedSrc) Intn(n int) int {
	if f.val >= n {
		return n - 1
	}
	return f.val
}

// queueSrc returns its values in order and panics when exhausted.
type queueSrc struct {
	vals []int
	pos  int
}

func (q *queueSrc) Intn(n int) int {
	if q.pos >= len(q.vals) {
		panic("queueSrc exhausted")
	}
	v := q.vals[q.pos]
	q.pos++
	return v % n
}

// scriptConsole feeds scripted lines and records prompts and events.
type scriptConsole struct {
	lines   []string
	prompts []string
	events  []combat.Event
}

func (s *scriptConsole) ReadLine(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func (s *scriptConsole) Emit(ev combat.Event) {
	s.events = append(s.events, ev)
}

func script(lines ...string) *scriptConsole {
	return &scriptConsole{lines: lines}
}

func testItems(t testingT) *inventory.Registry {
	t.Helper()
	reg, err := inventory.NewRegistryFrom([]*inventory.ItemDef{
		{ID: "stimpack", Name: "Stimpack", Kind: inventory.KindConsumable},
		{ID: "laser_rifle", Name: "Laser Rifle", Kind: inventory.KindWeapon},
		{ID: "shield_module", Name: "Shield Module", Kind: inventory.KindShield},
		{ID: "ixyll_fruit", Name: "Ixyll Fruit", Kind: inventory.KindResource},
		{ID: "warp_drive_fragment_2", Name: "Warp Drive Fragment 2", Kind: inventory.KindFragment},
	})
	require.NoError(t, err)
	return reg
}

func testRules() combat.Rules {
	return combat.Rules{
		BaseDamage:    dice.MustParse("1d16+9"),
		WeaponItem:    "laser_rifle",
		WeaponBonus:   30,
		ShieldItem:    "shield_module",
		ShieldPercent: 50,
		HealItem:      "stimpack",
		HealAmount:    50,
		FleeChance:    50,
	}
}

func newEngine(t testingT, src dice.Source) *combat.Engine {
	t.Helper()
	return combat.NewEngine(testRules(), dice.NewLoggedRoller(src, zap.NewNop()), testItems(t), zap.NewNop())
}

func newPlayer(health int, items ...string) *session.Player {
	p := session.NewPlayer(world.Coord{X: 4, Y: 0}, health, items)
	p.Name = "Nova"
	return p
}

func droidTemplate() *npc.Template {
	return &npc.Template{
		ID: "rogue_droid", Name: "Rogue Droid", Type: "Robot",
		MaxHP: 60, MinDamage: 5, MaxDamage: 15,
		Intro: "Rogue Droid readies its weapons!",
		Victory: npc.Victory{
			Rewards:         []string{"warp_drive_fragment_2", "stimpack"},
			LongDescription: "Ternion's skyline looms over the quiet wreckage below.",
		},
	}
}

func enemyWith(health, lo, hi int) *npc.Enemy {
	tmpl := droidTemplate()
	tmpl.MaxHP = health
	tmpl.MinDamage = lo
	tmpl.MaxDamage = hi
	return npc.NewEnemy(tmpl)
}

func hostileLocation() *world.Location {
	return &world.Location{ID: "ternion", Name: "Ternion", Hostile: true, LongDescription: "A Rogue Droid stalks the alleys."}
}

func eventsOf(evs []combat.Event, kind combat.EventKind) []combat.Event {
	var out []combat.Event
	for _, ev := range evs {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}
