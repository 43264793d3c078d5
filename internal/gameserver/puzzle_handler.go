package gameserver

import (
	"context"
	"strconv"
	"strings"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/galacticdawn/internal/game/world"
)

// handleSolve runs the puzzle at the player's location.
func (g *Game) handleSolve(ctx context.Context) error {
	loc := g.here()
	pz := loc.Puzzle
	if pz == nil {
		g.con.say(StylePlain, "There is no puzzle to solve here.")
		return nil
	}
	if loc.EventTriggered {
		g.con.say(StylePlain, pz.Solved)
		return nil
	}

	g.con.say(StyleTitle, pz.Intro...)
	g.con.blank()

	var solved bool
	var err error
	switch pz.Kind {
	case world.PuzzleRiddle:
		solved, err = g.riddle(ctx, pz)
	case world.PuzzleStreak:
		solved, err = g.streak(ctx, pz)
	}
	if err != nil || !solved {
		return err
	}

	g.con.blank()
	g.con.say(StyleSuccess, pz.Success...)
	g.grant("gained", pz.Reward)
	if pz.LongDescription != "" {
		loc.LongDescription = pz.LongDescription
	}
	loc.TriggerEvent()
	g.logger.Info("puzzle solved", zap.String("location", loc.ID))
	return nil
}

// riddle asks once.
func (g *Game) riddle(ctx context.Context, pz *world.Puzzle) (bool, error) {
	line, err := g.con.ReadLine(ctx, pz.Prompt)
	if err != nil {
		return false, err
	}
	if g.riddleAnswered(pz, line) {
		return true, nil
	}
	g.con.say(StyleWarning, pz.Failure)
	return false, nil
}

// streak asks true/false questions until pz.Streak consecutive answers match
// the expected sequence. A wrong answer restarts the sequence.
func (g *Game) streak(ctx context.Context, pz *world.Puzzle) (bool, error) {
	step := 0
	for step < pz.Streak {
		line, err := g.con.ReadLine(ctx, pz.Prompt)
		if err != nil {
			return false, err
		}
		answer, err := strconv.ParseBool(strings.TrimSpace(line))
		if err != nil || !isWord(line) {
			g.con.say(StyleWarning, "Invalid input. Please type true or false.")
			continue
		}
		if strconv.FormatBool(answer) == g.streakExpected(pz, step) {
			step++
			g.con.say(StylePlain, "...hmm. ("+strconv.Itoa(step)+"/"+strconv.Itoa(pz.Streak)+")")
			continue
		}
		g.con.say(StyleWarning, pz.Failure)
		g.con.blank()
		step = 0
	}
	return true, nil
}

// isWord rejects the numeric and single-letter forms strconv.ParseBool accepts.
func isWord(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "false":
		return true
	}
	return false
}

// riddleAnswered asks the puzzle's script hook when one is loaded and falls
// back to a case-insensitive match against the YAML answer.
func (g *Game) riddleAnswered(pz *world.Puzzle, answer string) bool {
	if ret, ok := g.callHook(pz.Hook, lua.LString(answer)); ok {
		if b, isBool := ret.(lua.LBool); isBool {
			return bool(b)
		}
	}
	return strings.EqualFold(strings.TrimSpace(answer), pz.Answer)
}

// streakExpected returns "true" or "false" for the zero-based step. Without a
// script hook the sequence alternates starting with "false".
func (g *Game) streakExpected(pz *world.Puzzle, step int) string {
	if ret, ok := g.callHook(pz.Hook, lua.LNumber(step)); ok {
		if s, isStr := ret.(lua.LString); isStr {
			return strings.ToLower(strings.TrimSpace(string(s)))
		}
	}
	return strconv.FormatBool(step%2 == 1)
}

func (g *Game) callHook(hook string, args ...lua.LValue) (lua.LValue, bool) {
	if g.scripts == nil || hook == "" || !g.scripts.HasHook(hook) {
		return lua.LNil, false
	}
	ret, err := g.scripts.CallHook(hook, args...)
	if err != nil || ret == lua.LNil {
		return lua.LNil, false
	}
	return ret, true
}
