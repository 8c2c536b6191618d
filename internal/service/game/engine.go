package game

import (
	"go.uber.org/zap"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
	"github.com/iamasit07/4-in-a-row/engine/pkg/uid"
)

// Navigator is the presentation layer's hook for switching to the game view.
type Navigator interface {
	ShowGame()
}

type NavigatorFunc func()

func (f NavigatorFunc) ShowGame() { f() }

// Engine is the single authority over one game at a time. Callers express
// intents and every accepted intent publishes a fresh snapshot. Rule
// violations are ignored rather than reported.
//
// Engine is not safe for concurrent use. Every method runs to completion on
// the caller's goroutine.
type Engine struct {
	dims            domain.Dimensions
	game            *domain.Game
	gameID          string
	updates         *broadcaster
	playerMapping   map[domain.PlayerID]domain.ControllerID // player slot → controller
	localController domain.ControllerID
	remote          map[domain.ControllerID]Controller
	navigator       Navigator
	logger          *zap.Logger
}

// NewEngine builds an engine for boards of the given size. Until Start is
// called there is an empty board but no controller owns a slot, so every
// intent is ignored.
func NewEngine(dims domain.Dimensions, navigator Navigator, logger *zap.Logger) (*Engine, error) {
	g, err := domain.NewGame(dims)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{
		dims:          dims,
		game:          g,
		updates:       newBroadcaster(g.Snapshot()),
		playerMapping: make(map[domain.PlayerID]domain.ControllerID),
		remote:        make(map[domain.ControllerID]Controller),
		navigator:     navigator,
		logger:        logger,
	}, nil
}

// Start replaces whatever game is running with a fresh one for mode.
// Subscriptions made before Start stop receiving snapshots. Unknown modes are
// ignored.
func (e *Engine) Start(mode domain.GameMode) {
	var mapping map[domain.PlayerID]domain.ControllerID

	switch mode {
	case domain.Singleplayer:
		mapping = map[domain.PlayerID]domain.ControllerID{
			domain.Player1: domain.ControllerLocal,
			domain.Player2: domain.ControllerAI,
		}
	case domain.LocalMultiplayer:
		mapping = map[domain.PlayerID]domain.ControllerID{
			domain.Player1: domain.ControllerLocal,
			domain.Player2: domain.ControllerLocal,
		}
	default:
		e.logger.Debug("ignoring start with unknown mode", zap.Int("mode", int(mode)))
		return
	}

	g, err := domain.NewGame(e.dims)
	if err != nil {
		// dimensions were validated in NewEngine
		e.logger.Error("cannot create game", zap.Error(err))
		return
	}

	e.playerMapping = mapping
	e.localController = domain.ControllerLocal
	e.game = g
	e.gameID = uid.GenerateGameID()
	e.updates.reset(g.Snapshot())

	e.logger.Info("game started",
		zap.String("game_id", e.gameID),
		zap.Stringer("mode", mode),
		zap.Int("width", e.dims.Width),
		zap.Int("height", e.dims.Height),
	)

	if e.navigator != nil {
		e.navigator.ShowGame()
	}
}

func (e *Engine) MoveLeft() {
	e.movePending(-1)
}

func (e *Engine) MoveRight() {
	e.movePending(1)
}

func (e *Engine) movePending(delta int) {
	if !e.mayAct(e.localController, "move") {
		return
	}
	if err := e.game.ShiftPending(delta); err != nil {
		e.ignore("move", err.Error())
		return
	}
	e.publish()
}

// DropToken drops the current player's token into the pending column. When
// the turn passes to a registered non-local controller, that controller is
// asked to play before DropToken returns.
func (e *Engine) DropToken() {
	if e.drop(e.localController) {
		e.playControllerTurns()
	}
}

// drop applies one drop on behalf of actor and reports whether it was accepted.
func (e *Engine) drop(actor domain.ControllerID) bool {
	if !e.mayAct(actor, "drop") {
		return false
	}

	player := e.game.CurrentPlayer()
	column := e.game.PendingColumn()

	row, err := e.game.Drop()
	if err != nil {
		e.ignore("drop", err.Error(), zap.Int("column", column))
		return false
	}

	e.publish()

	e.logger.Debug("token dropped",
		zap.String("game_id", e.gameID),
		zap.Int("player", int(player)),
		zap.Int("column", column),
		zap.Int("row", row),
	)

	if outcome := e.game.Outcome(); outcome.IsTerminal() {
		e.logger.Info("game over",
			zap.String("game_id", e.gameID),
			zap.Stringer("outcome", outcome),
			zap.Int("moves", e.updates.current.MoveCount()),
		)
	}
	return true
}

// mayAct is the authorization and terminal-state guard shared by every intent.
func (e *Engine) mayAct(actor domain.ControllerID, intent string) bool {
	if e.game.IsFinished() {
		e.ignore(intent, "game is decided")
		return false
	}
	if !e.controls(actor, e.game.CurrentPlayer()) {
		e.ignore(intent, "not this controller's turn", zap.String("controller", string(actor)))
		return false
	}
	return true
}

func (e *Engine) controls(actor domain.ControllerID, player domain.PlayerID) bool {
	assigned, ok := e.playerMapping[player]
	return ok && actor != "" && assigned == actor
}

func (e *Engine) ignore(intent, reason string, fields ...zap.Field) {
	fields = append([]zap.Field{
		zap.String("game_id", e.gameID),
		zap.String("intent", intent),
		zap.String("reason", reason),
	}, fields...)
	e.logger.Debug("intent ignored", fields...)
}

func (e *Engine) publish() {
	e.updates.publish(e.game.Snapshot())
}

// Snapshot returns the latest published board.
func (e *Engine) Snapshot() domain.Board {
	return e.updates.current
}

// Subscribe registers observe and immediately hands it the current snapshot.
func (e *Engine) Subscribe(observe Observer) SubscriptionID {
	return e.updates.subscribe(observe)
}

func (e *Engine) Unsubscribe(id SubscriptionID) {
	e.updates.unsubscribe(id)
}

// IsLocalActorsTurn reports whether the local actor controls the player to
// move. It does not look at the outcome.
func (e *Engine) IsLocalActorsTurn() bool {
	return e.controls(e.localController, e.game.CurrentPlayer())
}

// Controllers returns a copy of the slot assignment of the current game.
func (e *Engine) Controllers() map[domain.PlayerID]domain.ControllerID {
	mapping := make(map[domain.PlayerID]domain.ControllerID, len(e.playerMapping))
	for player, controller := range e.playerMapping {
		mapping[player] = controller
	}
	return mapping
}

func (e *Engine) ControllerFor(player domain.PlayerID) (domain.ControllerID, bool) {
	controller, ok := e.playerMapping[player]
	return controller, ok
}

func (e *Engine) LocalController() domain.ControllerID {
	return e.localController
}

// GameID identifies the game started by the last successful Start. It is
// empty before that.
func (e *Engine) GameID() string {
	return e.gameID
}

func (e *Engine) Dimensions() domain.Dimensions {
	return e.dims
}
