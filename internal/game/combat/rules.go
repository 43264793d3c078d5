package combat

import (
	"fmt"

	"github.com/cory-johannsen/galacticdawn/internal/config"
	"github.com/cory-johannsen/galacticdawn/internal/game/dice"
	"github.com/cory-johannsen/galacticdawn/internal/game/inventory"
)

// Rules holds the combat constants. Item modifiers are flat and keyed on
// presence, never on how many copies are held.
type Rules struct {
	BaseDamage    dice.Expression
	WeaponItem    string
	WeaponBonus   int
	ShieldItem    string
	ShieldPercent int
	HealItem      string
	HealAmount    int
	FleeChance    int
}

// RulesFromConfig converts validated combat configuration into Rules.
//
// Postcondition: Returns an error when the base damage expression does not parse.
func RulesFromConfig(cfg config.CombatConfig) (Rules, error) {
	expr, err := dice.Parse(cfg.BaseDamage)
	if err != nil {
		return Rules{}, fmt.Errorf("combat.base_damage: %w", err)
	}
	return Rules{
		BaseDamage:    expr,
		WeaponItem:    cfg.WeaponItem,
		WeaponBonus:   cfg.WeaponBonus,
		ShieldItem:    cfg.ShieldItem,
		ShieldPercent: cfg.ShieldPercent,
		HealItem:      cfg.HealItem,
		HealAmount:    cfg.HealAmount,
		FleeChance:    cfg.FleeChance,
	}, nil
}

// Armed reports whether inv holds the weapon item.
func (r Rules) Armed(inv *inventory.Inventory) bool {
	return r.WeaponItem != "" && inv.Has(r.WeaponItem)
}

// AttackDamage returns the total damage for a base roll.
func (r Rules) AttackDamage(roll int, inv *inventory.Inventory) int {
	if r.Armed(inv) {
		return roll + r.WeaponBonus
	}
	return roll
}

// Mitigate scales incoming damage when inv holds the shield item.
//
// Postcondition: Returns (raw*ShieldPercent/100, true) when shielded, rounded
// down; (raw, false) otherwise.
func (r Rules) Mitigate(raw int, inv *inventory.Inventory) (int, bool) {
	if r.ShieldItem == "" || !inv.Has(r.ShieldItem) {
		return raw, false
	}
	return raw * r.ShieldPercent / 100, true
}
