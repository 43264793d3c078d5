package gameserver

import (
	"context"

	"github.com/cory-johannsen/galacticdawn/internal/game/combat"
)

// Terminal is the blocking line I/O one game runs over: stdin/stdout in local
// mode, a Telnet connection in telnet mode.
type Terminal interface {
	// ReadLine shows prompt and blocks for one line of input.
	ReadLine(ctx context.Context, prompt string) (string, error)
	// WriteLine writes text followed by a line break. text may span lines.
	WriteLine(text string) error
}

// Style classifies a line of output so a Renderer can decorate it.
type Style int

const (
	StylePlain Style = iota
	StyleTitle
	StyleLocation
	StyleHostile
	StyleNotice
	StyleSuccess
	StyleWarning
	StyleDanger
	StyleCombat
	StyleStatus
)

// Renderer decorates text for display.
type Renderer interface {
	Render(style Style, text string) string
}

type plainRenderer struct{}

func (plainRenderer) Render(_ Style, text string) string { return text }

// eventStyle maps a combat event to its display style.
func eventStyle(k combat.EventKind) Style {
	switch k {
	case combat.EventIntro, combat.EventAnnouncement:
		return StyleTitle
	case combat.EventStatus:
		return StyleStatus
	case combat.EventPlayerAttack, combat.EventShield:
		return StyleCombat
	case combat.EventHeal, combat.EventFleeSucceeded, combat.EventVictory, combat.EventReward:
		return StyleSuccess
	case combat.EventEnemyAttack, combat.EventDefeat:
		return StyleDanger
	case combat.EventInvalidInput, combat.EventFleeFailed, combat.EventNoHealItem:
		return StyleWarning
	default:
		return StylePlain
	}
}

// console adapts a Terminal to combat.Console and remembers the first write
// failure so the next read reports it.
type console struct {
	term   Terminal
	render Renderer
	err    error
}

func newConsole(term Terminal, render Renderer) *console {
	if render == nil {
		render = plainRenderer{}
	}
	return &console{term: term, render: render}
}

// ReadLine implements combat.Console.
func (c *console) ReadLine(ctx context.Context, prompt string) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return c.term.ReadLine(ctx, prompt)
}

// Emit implements combat.Console.
func (c *console) Emit(ev combat.Event) {
	if ev.Kind == combat.EventStatus || ev.Kind == combat.EventIntro {
		c.blank()
	}
	c.say(eventStyle(ev.Kind), ev.Text)
}

// say writes each line with the given style.
func (c *console) say(style Style, lines ...string) {
	for _, line := range lines {
		if c.err != nil {
			return
		}
		if line == "" {
			c.err = c.term.WriteLine("")
			continue
		}
		c.err = c.term.WriteLine(c.render.Render(style, line))
	}
}

func (c *console) blank() { c.say(StylePlain, "") }
