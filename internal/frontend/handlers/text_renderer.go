// Package handlers connects player terminals to games: the Telnet session
// handler, the stdin/stdout terminal and the text renderer.
package handlers

import (
	"github.com/cory-johannsen/galacticdawn/internal/frontend/telnet"
	"github.com/cory-johannsen/galacticdawn/internal/gameserver"
)

// styleColors maps output styles to ANSI sequences. Unlisted styles stay plain.
var styleColors = map[gameserver.Style]string{
	gameserver.StyleTitle:    telnet.Bold + telnet.BrightCyan,
	gameserver.StyleLocation: telnet.BrightYellow,
	gameserver.StyleHostile:  telnet.Bold + telnet.BrightRed,
	gameserver.StyleNotice:   telnet.Yellow,
	gameserver.StyleSuccess:  telnet.BrightGreen,
	gameserver.StyleWarning:  telnet.Magenta,
	gameserver.StyleDanger:   telnet.Red,
	gameserver.StyleCombat:   telnet.Cyan,
	gameserver.StyleStatus:   telnet.White,
}

// TextRenderer styles game output with ANSI colors, or strips them when
// color is disabled.
type TextRenderer struct {
	color bool
}

// NewTextRenderer creates a TextRenderer.
func NewTextRenderer(color bool) *TextRenderer {
	return &TextRenderer{color: color}
}

// Render implements gameserver.Renderer.
//
// Postcondition: Without color the result contains no ANSI escape sequences.
func (r *TextRenderer) Render(style gameserver.Style, text string) string {
	if !r.color {
		return telnet.StripANSI(text)
	}
	code, ok := styleColors[style]
	if !ok || text == "" {
		return text
	}
	return telnet.Colorize(code, text)
}
