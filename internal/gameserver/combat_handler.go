package gameserver

import (
	"context"

	"go.uber.org/zap"

	"github.com/cory-johannsen/galacticdawn/internal/game/combat"
	"github.com/cory-johannsen/galacticdawn/internal/game/npc"
	"github.com/cory-johannsen/galacticdawn/internal/game/world"
)

// handleFight starts combat with the enemy bound to the player's coordinate.
// A dead enemy, or a peaceful one whose location event already fired, answers
// with its aftermath line instead.
func (g *Game) handleFight(ctx context.Context) error {
	enemy, ok := g.enemies.ByCoord(g.player.Pos)
	if !ok {
		g.con.say(StylePlain, "There's nothing to fight here.")
		return nil
	}
	loc := g.here()
	if enemy.Dead || (enemy.Template.PeacefulOnEvent && loc.EventTriggered) {
		text := enemy.Template.Aftermath
		if text == "" {
			text = "There's nothing to fight here."
		}
		g.con.say(StylePlain, text)
		return nil
	}
	return g.encounter(ctx, enemy, loc)
}

// encounter runs one combat and converts terminal outcomes into errGameOver.
//
// Precondition: enemy.Dead is false.
func (g *Game) encounter(ctx context.Context, enemy *npc.Enemy, loc *world.Location) error {
	res, err := g.engine.Resolve(ctx, g.con, g.player, enemy, loc)
	if err != nil {
		return err
	}
	switch res.Outcome {
	case combat.OutcomePlayerDefeated:
		g.ending = EndPlayerDefeated
		return errGameOver
	case combat.OutcomeGameWon:
		g.con.blank()
		g.con.say(StyleTitle, "Thanks for playing!")
		g.ending = EndGameWon
		return errGameOver
	case combat.OutcomeEnemyDefeated:
		g.logger.Info("enemy defeated",
			zap.String("enemy", enemy.Template.ID),
			zap.String("location", loc.ID),
		)
	}
	return nil
}

func (g *Game) handleHeal(ctx context.Context) error {
	_, err := g.engine.Heal(ctx, g.con, g.player)
	return err
}
