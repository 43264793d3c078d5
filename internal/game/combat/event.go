package combat

// EventKind classifies a narrative event.
type EventKind int

const (
	EventIntro EventKind = iota
	EventStatus
	EventPlayerAttack
	EventHeal
	EventHealDeclined
	EventNoHealItem
	EventFleeSucceeded
	EventFleeFailed
	EventShield
	EventEnemyAttack
	EventVictory
	EventAnnouncement
	EventReward
	EventDefeat
	EventInvalidInput
)

// String returns a stable label used in logs.
func (k EventKind) String() string {
	switch k {
	case EventIntro:
		return "intro"
	case EventStatus:
		return "status"
	case EventPlayerAttack:
		return "player_attack"
	case EventHeal:
		return "heal"
	case EventHealDeclined:
		return "heal_declined"
	case EventNoHealItem:
		return "no_heal_item"
	case EventFleeSucceeded:
		return "flee_succeeded"
	case EventFleeFailed:
		return "flee_failed"
	case EventShield:
		return "shield"
	case EventEnemyAttack:
		return "enemy_attack"
	case EventVictory:
		return "victory"
	case EventAnnouncement:
		return "announcement"
	case EventReward:
		return "reward"
	case EventDefeat:
		return "defeat"
	case EventInvalidInput:
		return "invalid_input"
	default:
		return "unknown"
	}
}

// Event is one narrative step of an encounter. Text is ready to display; the
// numeric fields carry the same information for callers and tests.
type Event struct {
	Kind EventKind
	Text string

	PlayerHealth int
	EnemyHealth  int
	// Damage is the damage dealt or taken after modifiers.
	Damage int
	// Raw is the rolled damage before a shield reduced it.
	Raw    int
	Before int
	After  int
	// Items are the item IDs granted by a reward.
	Items []string
}
