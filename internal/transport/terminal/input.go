package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
)

type Intent int

const (
	IntentNone Intent = iota
	IntentLeft
	IntentRight
	IntentDrop
	IntentMenu
	IntentQuit
	IntentSingleplayer
	IntentLocal
)

// GameIntent maps a key press on the game view.
func GameIntent(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyLeft:
		return IntentLeft
	case tcell.KeyRight:
		return IntentRight
	case tcell.KeyEnter:
		return IntentDrop
	case tcell.KeyEscape:
		return IntentMenu
	case tcell.KeyCtrlC:
		return IntentQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A', 'h':
			return IntentLeft
		case 'd', 'D', 'l':
			return IntentRight
		case ' ':
			return IntentDrop
		case 'm', 'M':
			return IntentMenu
		case 'q', 'Q':
			return IntentQuit
		}
	}
	return IntentNone
}

// MenuIntent maps a key press on the menu.
func MenuIntent(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return IntentQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case '1':
			return IntentSingleplayer
		case '2':
			return IntentLocal
		case 'q', 'Q':
			return IntentQuit
		}
	}
	return IntentNone
}

func (i Intent) mode() (domain.GameMode, bool) {
	switch i {
	case IntentSingleplayer:
		return domain.Singleplayer, true
	case IntentLocal:
		return domain.LocalMultiplayer, true
	}
	return 0, false
}
