package game

import (
	"go.uber.org/zap"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
)

// Controller plays for a player slot that is not driven by the local actor,
// such as the AI slot of a singleplayer game. No implementation ships with
// the engine.
type Controller interface {
	// NextColumn picks the column to drop into for the player to move in
	// snapshot. Returning false passes on the turn for now.
	NextColumn(snapshot domain.Board) (column int, ok bool)
}

// ControllerFunc adapts a plain function to Controller.
type ControllerFunc func(domain.Board) (int, bool)

func (f ControllerFunc) NextColumn(snapshot domain.Board) (int, bool) {
	return f(snapshot)
}

// RegisterController binds c to a controller tag. A nil c removes the
// binding. The local controller tag cannot be bound.
func (e *Engine) RegisterController(id domain.ControllerID, c Controller) {
	if id == "" || id == domain.ControllerLocal {
		e.logger.Warn("refusing to register controller", zap.String("controller", string(id)))
		return
	}
	if c == nil {
		delete(e.remote, id)
		return
	}
	e.remote[id] = c
}

// playControllerTurns lets registered controllers play for as long as they
// own the player to move. Each accepted drop publishes its own snapshot.
func (e *Engine) playControllerTurns() {
	for !e.game.IsFinished() {
		id, ok := e.ControllerFor(e.game.CurrentPlayer())
		if !ok || id == e.localController {
			return
		}
		c, ok := e.remote[id]
		if !ok {
			return
		}

		snapshot := e.game.Snapshot()
		column, ok := c.NextColumn(snapshot)
		if !ok {
			e.logger.Debug("controller passed", zap.String("game_id", e.gameID), zap.String("controller", string(id)))
			return
		}
		if snapshot.ColumnFull(column) {
			e.logger.Warn("controller chose an unplayable column",
				zap.String("game_id", e.gameID),
				zap.String("controller", string(id)),
				zap.Int("column", column),
			)
			return
		}

		if err := e.game.SelectColumn(column); err != nil {
			e.logger.Warn("controller column rejected", zap.String("controller", string(id)), zap.Error(err))
			return
		}
		if !e.drop(id) {
			return
		}
	}
}
