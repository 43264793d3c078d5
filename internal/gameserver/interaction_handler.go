package gameserver

import (
	"context"

	"go.uber.org/zap"

	"github.com/cory-johannsen/galacticdawn/internal/game/combat"
	"github.com/cory-johannsen/galacticdawn/internal/game/world"
)

// handleUse resolves the interaction at the player's location: an item
// exchange or the rift gate.
func (g *Game) handleUse(ctx context.Context) error {
	loc := g.here()
	ia := loc.Interaction
	if ia == nil {
		g.con.say(StylePlain, "There's nothing here you can use.")
		return nil
	}
	switch ia.Kind {
	case world.InteractionExchange:
		return g.exchange(ctx, loc, ia)
	case world.InteractionRiftGate:
		return g.riftGate(ctx, loc, ia)
	default:
		g.con.say(StylePlain, "There's nothing here you can use.")
		return nil
	}
}

// exchange trades the required items for the granted ones, once. An exchange
// blocked by an enemy closes when that enemy dies, and completing it pacifies
// the location.
func (g *Game) exchange(ctx context.Context, loc *world.Location, ia *world.Interaction) error {
	if ia.BlockedBy != "" {
		if e, ok := g.enemies.Get(ia.BlockedBy); ok && e.Dead {
			g.con.say(StylePlain, orDefault(ia.Blocked, "There's nothing more to do here."))
			return nil
		}
	}
	if loc.EventTriggered {
		g.con.say(StylePlain, orDefault(ia.Completed, "You have already done this."))
		return nil
	}
	if !g.player.Inventory.HasAll(ia.Requires) {
		g.con.say(StylePlain, ia.Missing)
		return nil
	}
	ok, err := combat.Confirm(ctx, g.con, ia.Prompt)
	if err != nil {
		return err
	}
	if !ok {
		g.con.say(StylePlain, ia.Decline)
		return nil
	}

	for _, id := range ia.Consumed() {
		g.player.Inventory.Remove(id)
	}
	loc.TriggerEvent()
	if ia.BlockedBy != "" {
		loc.ClearHostile(ia.LongDescription)
	} else if ia.LongDescription != "" {
		loc.LongDescription = ia.LongDescription
	}

	g.con.say(StyleSuccess, ia.Success...)
	g.con.blank()
	g.grant("received", ia.Grants)
	g.logger.Info("exchange completed",
		zap.String("location", loc.ID),
		zap.Strings("gave", ia.Consumed()),
		zap.Strings("got", ia.Grants),
	)
	return nil
}

// riftGate consumes the key and summons the final enemy.
func (g *Game) riftGate(ctx context.Context, loc *world.Location, ia *world.Interaction) error {
	boss, ok := g.enemies.Get(ia.Enemy)
	if !ok || boss.Dead {
		g.con.say(StylePlain, orDefault(ia.Completed, "The Rift Gate lies dormant."))
		return nil
	}
	if !g.player.Inventory.HasAll(ia.Requires) {
		g.con.say(StylePlain, ia.Missing)
		return nil
	}

	g.con.say(StyleTitle, ia.Activate...)
	g.con.blank()
	ok, err := combat.Confirm(ctx, g.con, ia.Prompt)
	if err != nil {
		return err
	}
	if !ok {
		g.con.blank()
		g.con.say(StylePlain, ia.Decline)
		return nil
	}

	for _, id := range ia.Consumed() {
		g.player.Inventory.Remove(id)
	}
	g.con.say(StyleTitle, ia.Success...)
	g.logger.Info("rift gate activated", zap.String("enemy", boss.Template.ID))
	return g.encounter(ctx, boss, loc)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
