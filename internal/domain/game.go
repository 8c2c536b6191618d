package domain

// Game owns the one mutable board of a match. Everything it hands out is a
// clone.
type Game struct {
	board Board
}

func NewGame(dims Dimensions) (*Game, error) {
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	return &Game{board: NewBoard(dims)}, nil
}

// Snapshot returns a copy of the current board.
func (g *Game) Snapshot() Board {
	return g.board.Clone()
}

func (g *Game) CurrentPlayer() PlayerID {
	return g.board.currentPlayer
}

func (g *Game) PendingColumn() int {
	return g.board.pendingColumn
}

func (g *Game) Outcome() Outcome {
	return g.board.outcome
}

func (g *Game) IsFinished() bool {
	return g.board.outcome.IsTerminal()
}

// ShiftPending moves the pending column by delta, wrapping around both edges.
func (g *Game) ShiftPending(delta int) error {
	if g.IsFinished() {
		return ErrGameOver
	}
	g.board.pendingColumn = wrapColumn(g.board.pendingColumn+delta, g.board.dims.Width)
	return nil
}

// SelectColumn points the pending column at column.
func (g *Game) SelectColumn(column int) error {
	if g.IsFinished() {
		return ErrGameOver
	}
	if column < 0 || column >= g.board.dims.Width {
		return ErrInvalidColumn
	}
	g.board.pendingColumn = column
	return nil
}

// Drop plays the current player's token into the pending column and settles
// the outcome. It returns the row the token landed on.
func (g *Game) Drop() (int, error) {
	if g.IsFinished() {
		return -1, ErrGameOver
	}
	return g.board.applyDrop()
}
