package combat

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/galacticdawn/internal/game/dice"
	"github.com/cory-johannsen/galacticdawn/internal/game/npc"
	"github.com/cory-johannsen/galacticdawn/internal/game/session"
	"github.com/cory-johannsen/galacticdawn/internal/game/world"
)

// ItemNamer resolves item IDs to display names.
type ItemNamer interface {
	Name(id string) string
}

// Result is the record of one encounter.
type Result struct {
	Outcome Outcome
	Events  []Event
	// Turns counts player actions that consumed a turn.
	Turns int
}

// Engine resolves encounters. It holds no per-encounter state and may be
// shared by concurrent sessions.
type Engine struct {
	rules  Rules
	roller *dice.Roller
	items  ItemNamer
	logger *zap.Logger
}

// NewEngine creates an Engine.
//
// Precondition: roller, items and logger must be non-nil.
func NewEngine(rules Rules, roller *dice.Roller, items ItemNamer, logger *zap.Logger) *Engine {
	return &Engine{rules: rules, roller: roller, items: items, logger: logger}
}

// Rules returns the engine's combat constants.
func (e *Engine) Rules() Rules { return e.rules }

// encounter carries the mutable state of one Resolve call.
type encounter struct {
	con    Console
	player *session.Player
	enemy  *npc.Enemy
	loc    *world.Location
	result Result
}

func (enc *encounter) emit(ev Event) {
	ev.PlayerHealth = enc.player.Health
	ev.EnemyHealth = enc.enemy.Health
	enc.result.Events = append(enc.result.Events, ev)
	enc.con.Emit(ev)
}

// Resolve runs one encounter to a terminal outcome, mutating the player's
// health and inventory, the enemy's health and dead flag, and, on victory,
// the location's hostile flag and long description.
//
// Precondition: enemy.Dead is false; the caller gates combat entry.
// Postcondition: Returns a Result whose Outcome is not OutcomeUnresolved, or a
// non-nil error when console input fails. State mutated before the failure is kept.
func (e *Engine) Resolve(ctx context.Context, con Console, player *session.Player, enemy *npc.Enemy, loc *world.Location) (Result, error) {
	if enemy.Dead {
		panic(fmt.Sprintf("combat: Resolve precondition violated: enemy %q is already dead", enemy.Template.ID))
	}
	log := e.logger.With(
		zap.String("session", player.ID.String()),
		zap.String("player", player.Name),
		zap.String("enemy", enemy.Template.ID),
	)
	log.Info("combat started",
		zap.Int("player_health", player.Health),
		zap.Int("enemy_health", enemy.Health),
	)

	enc := &encounter{con: con, player: player, enemy: enemy, loc: loc}
	enc.emit(Event{Kind: EventIntro, Text: enemy.Template.IntroFor(loc.EventTriggered)})

	for {
		enc.emit(Event{
			Kind: EventStatus,
			Text: fmt.Sprintf("%s's HP: %d\n%s's HP: %d", player.Name, player.Health, enemy.Name(), enemy.Health),
		})
		line, err := con.ReadLine(ctx, Menu)
		if err != nil {
			log.Info("combat abandoned", zap.Error(err))
			return enc.result, fmt.Errorf("reading combat choice: %w", err)
		}

		action := ParseAction(line)
		switch action {
		case ActionAttack:
			enc.result.Turns++
			if e.attack(enc) {
				return e.finish(enc, log, e.victory(enc, log)), nil
			}
		case ActionHeal:
			enc.result.Turns++
			if _, err := e.heal(ctx, con, player, enc.emit); err != nil {
				return enc.result, err
			}
			continue
		case ActionFlee:
			enc.result.Turns++
			if e.roller.Chance(e.rules.FleeChance) {
				enc.emit(Event{Kind: EventFleeSucceeded, Text: "You successfully escaped!"})
				return e.finish(enc, log, OutcomeFled), nil
			}
			enc.emit(Event{Kind: EventFleeFailed, Text: "You failed to escape!"})
		default:
			enc.emit(Event{Kind: EventInvalidInput, Text: "Invalid input. Please enter 1, 2, or 3."})
			continue
		}

		if action.TriggersCounterAttack() && e.counterAttack(enc) {
			enc.emit(Event{Kind: EventDefeat, Text: "You have been defeated..."})
			return e.finish(enc, log, OutcomePlayerDefeated), nil
		}
	}
}

func (e *Engine) finish(enc *encounter, log *zap.Logger, o Outcome) Result {
	enc.result.Outcome = o
	log.Info("combat resolved",
		zap.Stringer("outcome", o),
		zap.Int("turns", enc.result.Turns),
		zap.Int("player_health", enc.player.Health),
		zap.Int("enemy_health", enc.enemy.Health),
	)
	return enc.result
}

// attack applies one player attack and reports whether the enemy fell.
func (e *Engine) attack(enc *encounter) bool {
	roll := e.roller.Roll(e.rules.BaseDamage).Total()
	dmg := e.rules.AttackDamage(roll, enc.player.Inventory)
	enc.enemy.TakeDamage(dmg)

	text := fmt.Sprintf("You attack and deal %d damage!", dmg)
	if e.rules.Armed(enc.player.Inventory) {
		text = fmt.Sprintf("You shoot your %s and deal %d damage!", e.items.Name(e.rules.WeaponItem), dmg)
	}
	enc.emit(Event{Kind: EventPlayerAttack, Text: text, Damage: dmg, Raw: roll})
	return enc.enemy.Health <= 0
}

// counterAttack applies one enemy attack and reports whether the player fell.
func (e *Engine) counterAttack(enc *encounter) bool {
	raw := enc.enemy.RollDamage(e.roller)
	dmg, shielded := e.rules.Mitigate(raw, enc.player.Inventory)
	if shielded {
		enc.emit(Event{
			Kind:   EventShield,
			Text:   fmt.Sprintf("Your %s activates! Incoming damage reduced from %d to %d.", e.items.Name(e.rules.ShieldItem), raw, dmg),
			Damage: dmg,
			Raw:    raw,
		})
	}
	defeated := enc.player.TakeDamage(dmg)
	enc.emit(Event{
		Kind:   EventEnemyAttack,
		Text:   fmt.Sprintf("%s attacks and deals %d damage!", enc.enemy.Name(), dmg),
		Damage: dmg,
		Raw:    raw,
	})
	return defeated
}

// victory applies the enemy's victory table.
func (e *Engine) victory(enc *encounter, log *zap.Logger) Outcome {
	enc.enemy.MarkDead()
	v := enc.enemy.Template.Victory
	enc.emit(Event{Kind: EventVictory, Text: fmt.Sprintf("You defeated %s!", enc.enemy.Name())})
	for _, line := range v.Announcement {
		enc.emit(Event{Kind: EventAnnouncement, Text: line})
	}
	if v.Final {
		log.Info("final enemy defeated")
		return OutcomeGameWon
	}
	if len(v.Rewards) > 0 {
		enc.player.Inventory.Add(v.Rewards...)
		names := make([]string, len(v.Rewards))
		for i, id := range v.Rewards {
			names[i] = e.items.Name(id)
		}
		enc.emit(Event{
			Kind:  EventReward,
			Text:  "You have gained: " + strings.Join(names, ", "),
			Items: append([]string(nil), v.Rewards...),
		})
		log.Info("rewards granted", zap.Strings("items", v.Rewards))
	}
	enc.loc.ClearHostile(v.LongDescription)
	return OutcomeEnemyDefeated
}

// Heal offers the healing item outside an encounter.
//
// Postcondition: Returns true when the item was consumed, or a non-nil error
// when console input fails.
func (e *Engine) Heal(ctx context.Context, con Console, player *session.Player) (bool, error) {
	return e.heal(ctx, con, player, func(ev Event) {
		ev.PlayerHealth = player.Health
		con.Emit(ev)
	})
}

func (e *Engine) heal(ctx context.Context, con Console, player *session.Player, emit func(Event)) (bool, error) {
	name := e.items.Name(e.rules.HealItem)
	if !player.Inventory.Has(e.rules.HealItem) {
		emit(Event{Kind: EventNoHealItem, Text: fmt.Sprintf("You don't have any %ss.", name)})
		return false, nil
	}
	ok, err := Confirm(ctx, con, fmt.Sprintf("Do you want to use a %s? (y/n) ", name))
	if err != nil {
		return false, err
	}
	if !ok {
		emit(Event{Kind: EventHealDeclined, Text: fmt.Sprintf("You save your %ss for another time.", name)})
		return false, nil
	}
	player.Inventory.Remove(e.rules.HealItem)
	before, after := player.Heal(e.rules.HealAmount)
	emit(Event{
		Kind:   EventHeal,
		Text:   fmt.Sprintf("You use a %s and replenish some health.\n\nPrevious Health: %d\nCurrent Health: %d", strings.ToLower(name), before, after),
		Before: before,
		After:  after,
	})
	e.logger.Info("healed",
		zap.String("session", player.ID.String()),
		zap.Int("before", before),
		zap.Int("after", after),
	)
	return true, nil
}
