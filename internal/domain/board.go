package domain

import "strings"

// Board is an immutable snapshot of one game. Row 0 is the top row; tokens
// fall toward increasing row index. Accessors never hand out internal slices,
// so a Board received from the engine can be kept and shared freely.
type Board struct {
	dims          Dimensions
	grid          [][]PlayerID
	currentPlayer PlayerID
	pendingColumn int
	outcome       Outcome
}

// NewBoard returns the default starting snapshot: empty grid, player 1 to
// move, pending column 0, game in progress.
func NewBoard(dims Dimensions) Board {
	return Board{
		dims:          dims,
		grid:          newGrid(dims),
		currentPlayer: Player1,
		pendingColumn: 0,
		outcome:       InProgress(),
	}
}

func newGrid(dims Dimensions) [][]PlayerID {
	if dims.Validate() != nil {
		return [][]PlayerID{}
	}
	grid := make([][]PlayerID, dims.Height)
	for i := range grid {
		grid[i] = make([]PlayerID, dims.Width)
	}
	return grid
}

// this creates a deep copy of the grid
func copyGrid(grid [][]PlayerID) [][]PlayerID {
	newGrid := make([][]PlayerID, len(grid))
	for i := range grid {
		newGrid[i] = make([]PlayerID, len(grid[i]))
		copy(newGrid[i], grid[i])
	}
	return newGrid
}

// Clone copies every cell together with player, pending column and outcome.
func (b Board) Clone() Board {
	b.grid = copyGrid(b.grid)
	return b
}

// WithPendingColumn returns a clone whose pending column is column wrapped
// into [0, width).
func (b Board) WithPendingColumn(column int) Board {
	nb := b.Clone()
	nb.pendingColumn = wrapColumn(column, b.dims.Width)
	return nb
}

// WithCurrentPlayer returns a clone with the given player to move. Values
// other than Player1 and Player2 are ignored.
func (b Board) WithCurrentPlayer(player PlayerID) Board {
	nb := b.Clone()
	if player.Valid() {
		nb.currentPlayer = player
	}
	return nb
}

func (b Board) WithOutcome(outcome Outcome) Board {
	nb := b.Clone()
	nb.outcome = outcome
	return nb
}

func wrapColumn(column, width int) int {
	if width <= 0 {
		return 0
	}
	column %= width
	if column < 0 {
		column += width
	}
	return column
}

func (b Board) Dimensions() Dimensions  { return b.dims }
func (b Board) Width() int              { return b.dims.Width }
func (b Board) Height() int             { return b.dims.Height }
func (b Board) CurrentPlayer() PlayerID { return b.currentPlayer }
func (b Board) PendingColumn() int      { return b.pendingColumn }
func (b Board) Outcome() Outcome        { return b.outcome }

// Cell returns the owner of (row, column), or Empty outside the grid.
func (b Board) Cell(row, column int) PlayerID {
	if !b.inBounds(row, column) {
		return Empty
	}
	return b.grid[row][column]
}

// Grid returns a copy of the cells, indexed [row][column].
func (b Board) Grid() [][]PlayerID {
	return copyGrid(b.grid)
}

func (b Board) inBounds(row, column int) bool {
	return row >= 0 && row < len(b.grid) && column >= 0 && column < b.dims.Width
}

// ColumnFull reports whether the top cell of column is taken. Columns outside
// the grid count as full.
func (b Board) ColumnFull(column int) bool {
	if !b.inBounds(0, column) {
		return true
	}
	return b.grid[0][column] != Empty
}

// LandingRow is the row a token dropped into column would occupy.
func (b Board) LandingRow(column int) (int, bool) {
	if b.ColumnFull(column) {
		return -1, false
	}
	return landingRow(b.grid, column), true
}

// ValidColumns lists the columns that still accept a token, left to right.
func (b Board) ValidColumns() []int {
	valid := []int{}
	for col := 0; col < b.dims.Width; col++ {
		if !b.ColumnFull(col) {
			valid = append(valid, col)
		}
	}
	return valid
}

func (b Board) MoveCount() int {
	count := 0
	for _, row := range b.grid {
		for _, cell := range row {
			if cell != Empty {
				count++
			}
		}
	}
	return count
}

// Equal compares two snapshots structurally.
func (b Board) Equal(other Board) bool {
	if b.dims != other.dims ||
		b.currentPlayer != other.currentPlayer ||
		b.pendingColumn != other.pendingColumn ||
		b.outcome != other.outcome ||
		len(b.grid) != len(other.grid) {
		return false
	}
	for r := range b.grid {
		if len(b.grid[r]) != len(other.grid[r]) {
			return false
		}
		for c := range b.grid[r] {
			if b.grid[r][c] != other.grid[r][c] {
				return false
			}
		}
	}
	return true
}

// String renders the grid top row first, one digit per cell.
func (b Board) String() string {
	var sb strings.Builder
	for r, row := range b.grid {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			sb.WriteByte(byte('0' + cell))
		}
	}
	return sb.String()
}

// SimulateDrop plays the current player's token into column on a clone and
// returns the resulting snapshot and landing row. The receiver is untouched.
func (b Board) SimulateDrop(column int) (Board, int, error) {
	if column < 0 || column >= b.dims.Width {
		return b, -1, ErrInvalidColumn
	}
	if b.outcome.IsTerminal() {
		return b, -1, ErrGameOver
	}
	nb := b.WithPendingColumn(column)
	row, err := nb.applyDrop()
	if err != nil {
		return b, -1, err
	}
	return nb, row, nil
}

// applyDrop mutates the receiver in place; only Game and SimulateDrop call it,
// each on a grid nobody else can see.
func (b *Board) applyDrop() (int, error) {
	column := b.pendingColumn
	if b.ColumnFull(column) {
		return -1, ErrColumnFull
	}

	row := dropDisk(b.grid, column, b.currentPlayer)

	if checkWin(b.grid, row, column) {
		b.outcome = Won(b.currentPlayer)
		return row, nil
	}

	if isGridFull(b.grid) {
		b.outcome = Draw()
		return row, nil
	}

	b.currentPlayer = b.currentPlayer.Opponent()
	b.pendingColumn = 0
	return row, nil
}

// landingRow walks down from the top while the cell below is still empty.
// The caller guarantees the top cell is free.
func landingRow(grid [][]PlayerID, column int) int {
	row := 0
	for row < len(grid)-1 && grid[row+1][column] == Empty {
		row++
	}
	return row
}

func dropDisk(grid [][]PlayerID, column int, player PlayerID) int {
	row := landingRow(grid, column)
	grid[row][column] = player
	return row
}

// columns fill from the floor up, so the top row alone decides fullness
func isGridFull(grid [][]PlayerID) bool {
	if len(grid) == 0 {
		return true
	}
	for _, cell := range grid[0] {
		if cell == Empty {
			return false
		}
	}
	return true
}
