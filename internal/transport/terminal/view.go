package terminal

import (
	"fmt"
	"strings"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
)

const (
	emptyGlyph   = '.'
	player1Glyph = 'X'
	player2Glyph = 'O'
	hoverGlyph   = 'v'
	previewGlyph = '*'
)

func glyph(p domain.PlayerID) rune {
	switch p {
	case domain.Player1:
		return player1Glyph
	case domain.Player2:
		return player2Glyph
	default:
		return emptyGlyph
	}
}

// Render draws b as plain text lines. Every column takes two characters so
// the hover marker, the cells and the column numbers line up. On the local
// actor's turn the cell the pending token would land on is marked.
func Render(b domain.Board, localTurn bool) []string {
	width := b.Width()
	if width == 0 {
		return nil
	}
	lines := make([]string, 0, b.Height()+6)

	previewRow := -1
	if localTurn && !b.Outcome().IsTerminal() {
		if row, ok := b.LandingRow(b.PendingColumn()); ok {
			previewRow = row
		}
	}

	hover := []rune(strings.Repeat(" ", 2*width+1))
	if !b.Outcome().IsTerminal() {
		hover[1+2*b.PendingColumn()] = hoverGlyph
	}
	lines = append(lines, string(hover))

	for row := 0; row < b.Height(); row++ {
		var sb strings.Builder
		sb.WriteByte('|')
		for col := 0; col < width; col++ {
			if row == previewRow && col == b.PendingColumn() {
				sb.WriteRune(previewGlyph)
			} else {
				sb.WriteRune(glyph(b.Cell(row, col)))
			}
			if col < width-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('|')
		lines = append(lines, sb.String())
	}
	lines = append(lines, "+"+strings.Repeat("-", 2*width-1)+"+")

	var numbers strings.Builder
	numbers.WriteByte(' ')
	for col := 0; col < width; col++ {
		fmt.Fprintf(&numbers, "%d ", (col+1)%10)
	}
	lines = append(lines, strings.TrimRight(numbers.String(), " "))

	lines = append(lines, "", statusLine(b, localTurn), gameHelp)
	return lines
}

func statusLine(b domain.Board, localTurn bool) string {
	outcome := b.Outcome()
	switch outcome.Status {
	case domain.StatusWon:
		return fmt.Sprintf("Player %d (%c) wins!", outcome.Winner, glyph(outcome.Winner))
	case domain.StatusDraw:
		return "Draw, the board is full."
	}
	if !localTurn {
		return fmt.Sprintf("Waiting for player %d (%c)...", b.CurrentPlayer(), glyph(b.CurrentPlayer()))
	}
	status := fmt.Sprintf("Player %d (%c) to move", b.CurrentPlayer(), glyph(b.CurrentPlayer()))
	if winningDrop(b) {
		status += ", this drop wins"
	}
	return status
}

func winningDrop(b domain.Board) bool {
	next, row, err := b.SimulateDrop(b.PendingColumn())
	if err != nil {
		return false
	}
	return next.WinsAt(row, b.PendingColumn())
}

const gameHelp = "a/← left  d/→ right  space/enter drop  m menu  q quit"

func MenuLines() []string {
	return []string{
		"CONNECT FOUR",
		"",
		"1  Singleplayer",
		"2  Local multiplayer",
		"",
		"q  Quit",
	}
}
