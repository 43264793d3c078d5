package combat

// ActionType identifies what the player chose on their turn.
// The zero value (ActionUnknown) is intentionally invalid.
type ActionType int

const (
	ActionUnknown ActionType = iota // zero value; intentionally invalid
	ActionAttack
	ActionHeal
	ActionFlee
)

// ParseAction maps a menu choice to an ActionType.
//
// Postcondition: Returns ActionUnknown for anything but 1/attack, 2/heal, 3/flee.
func ParseAction(input string) ActionType {
	switch normalize(input) {
	case "1", "attack":
		return ActionAttack
	case "2", "heal":
		return ActionHeal
	case "3", "flee":
		return ActionFlee
	default:
		return ActionUnknown
	}
}

// String returns the human-readable name of the ActionType.
func (a ActionType) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionHeal:
		return "heal"
	case ActionFlee:
		return "flee"
	default:
		return "unknown"
	}
}

// TriggersCounterAttack reports whether the enemy strikes back after a
// player action that did not end the encounter.
func (a ActionType) TriggersCounterAttack() bool {
	return a == ActionAttack || a == ActionFlee
}

// Menu is the prompt shown on every turn.
const Menu = "1. Attack\n2. Heal\n3. Flee\n\nChoice: "
