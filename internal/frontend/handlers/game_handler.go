package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/galacticdawn/internal/frontend/telnet"
	"github.com/cory-johannsen/galacticdawn/internal/gameserver"
)

// GameHandler plays one independent game per Telnet connection.
type GameHandler struct {
	games  *gameserver.Factory
	logger *zap.Logger
}

// NewGameHandler creates a GameHandler.
//
// Precondition: games and logger must be non-nil.
func NewGameHandler(games *gameserver.Factory, logger *zap.Logger) *GameHandler {
	return &GameHandler{games: games, logger: logger}
}

// HandleSession implements telnet.SessionHandler.
//
// Postcondition: Returns nil when the game reached an ending, or the I/O
// error that cut it short.
func (h *GameHandler) HandleSession(ctx context.Context, conn *telnet.Conn) error {
	g, err := h.games.NewGame(conn)
	if err != nil {
		_ = conn.WriteLine("The galaxy failed to form. Please try again later.")
		return fmt.Errorf("creating game: %w", err)
	}
	ending, err := g.Run(ctx)
	if err != nil {
		return err
	}
	h.logger.Info("telnet game finished",
		zap.String("remote_addr", conn.RemoteAddr().String()),
		zap.Stringer("ending", ending),
	)
	return nil
}
