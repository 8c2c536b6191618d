package terminal

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/game"
)

// Engine is the part of the game engine the terminal drives.
type Engine interface {
	Start(mode domain.GameMode)
	MoveLeft()
	MoveRight()
	DropToken()
	Subscribe(observe game.Observer) game.SubscriptionID
	Unsubscribe(id game.SubscriptionID)
	Snapshot() domain.Board
	IsLocalActorsTurn() bool
}

type view int

const (
	viewMenu view = iota
	viewGame
)

var (
	styleDefault = tcell.StyleDefault
	stylePlayer1 = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	stylePlayer2 = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleTitle   = tcell.StyleDefault.Bold(true)
)

// UI renders the menu and the board on a tcell screen. It is driven from one
// goroutine: Run polls the screen and every engine call happens on that loop.
type UI struct {
	screen tcell.Screen
	engine Engine
	logger *zap.Logger

	view   view
	sub    game.SubscriptionID
	subbed bool
	board  domain.Board
}

func NewUI(screen tcell.Screen, logger *zap.Logger) *UI {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UI{screen: screen, logger: logger}
}

// Attach sets the engine. It is separate from NewUI because the engine's
// navigator points back at the UI.
func (u *UI) Attach(engine Engine) {
	u.engine = engine
}

// ShowGame switches to the game view and follows the engine's current stream.
func (u *UI) ShowGame() {
	if u.subbed {
		u.engine.Unsubscribe(u.sub)
	}
	u.view = viewGame
	u.sub = u.engine.Subscribe(u.onBoard)
	u.subbed = true
}

func (u *UI) ShowMenu() {
	u.view = viewMenu
	u.draw()
}

func (u *UI) onBoard(b domain.Board) {
	u.board = b
	u.draw()
}

// Run processes key events until the user quits or ctx is done.
func (u *UI) Run(ctx context.Context) error {
	if u.engine == nil {
		return fmt.Errorf("terminal: no engine attached")
	}
	stop := context.AfterFunc(ctx, func() {
		_ = u.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	u.draw()
	for {
		ev := u.screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			u.screen.Sync()
			u.draw()
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return nil
			}
		case *tcell.EventKey:
			if !u.handleKey(ev) {
				return nil
			}
		}
	}
}

// handleKey reports false when the user asked to quit.
func (u *UI) handleKey(ev *tcell.EventKey) bool {
	if u.view == viewMenu {
		intent := MenuIntent(ev)
		if intent == IntentQuit {
			return false
		}
		if mode, ok := intent.mode(); ok {
			u.logger.Debug("menu selection", zap.String("mode", mode.String()))
			u.engine.Start(mode)
		}
		return true
	}

	intent := GameIntent(ev)
	switch intent {
	case IntentQuit:
		return false
	case IntentMenu:
		u.ShowMenu()
		return true
	case IntentNone:
		return true
	}

	// keys are only forwarded while the local actor is to move
	if !u.engine.IsLocalActorsTurn() || u.engine.Snapshot().Outcome().IsTerminal() {
		return true
	}
	switch intent {
	case IntentLeft:
		u.engine.MoveLeft()
	case IntentRight:
		u.engine.MoveRight()
	case IntentDrop:
		u.engine.DropToken()
	}
	return true
}

func (u *UI) draw() {
	u.screen.Clear()
	switch u.view {
	case viewMenu:
		for y, line := range MenuLines() {
			style := styleDefault
			if y == 0 {
				style = styleTitle
			}
			u.drawLine(y, line, style)
		}
	case viewGame:
		localTurn := u.engine != nil && u.engine.IsLocalActorsTurn()
		for y, line := range Render(u.board, localTurn) {
			u.drawBoardLine(y, line)
		}
	}
	u.screen.Show()
}

func (u *UI) drawLine(y int, line string, style tcell.Style) {
	x := 0
	for _, r := range line {
		u.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (u *UI) drawBoardLine(y int, line string) {
	x := 0
	for _, r := range line {
		style := styleDefault
		switch r {
		case player1Glyph:
			style = stylePlayer1
		case player2Glyph:
			style = stylePlayer2
		}
		u.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
