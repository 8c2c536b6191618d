package domain

// direction is a step along one axis as (column delta, row delta).
type direction struct {
	dCol, dRow int
}

// checked in this order; the first one that reaches ToWin ends the search
var winDirections = [4]direction{
	{1, 0},  // horizontal
	{0, 1},  // vertical
	{1, 1},  // diagonal \
	{-1, 1}, // diagonal /
}

// checkWin only looks at lines through the token just placed at (row, column),
// never the whole grid.
func checkWin(grid [][]PlayerID, row, column int) bool {
	player := grid[row][column]
	if !player.Valid() {
		return false
	}

	for _, d := range winDirections {
		if runLength(grid, row, column, d, player) >= ToWin {
			return true
		}
	}
	return false
}

// runLength counts the placed token plus its same-owner neighbours on both
// sides along d.
func runLength(grid [][]PlayerID, row, column int, d direction, player PlayerID) int {
	return 1 +
		countDiskInDirection(grid, row, column, d.dRow, d.dCol, player) +
		countDiskInDirection(grid, row, column, -d.dRow, -d.dCol, player)
}

// this counts the number of disks in a specific direction, stopping at the
// edge of the grid or the first cell that belongs to someone else
func countDiskInDirection(grid [][]PlayerID, row, column, deltaRow, deltaCol int, player PlayerID) int {
	count := 0
	r, c := row+deltaRow, column+deltaCol
	for r >= 0 && r < len(grid) && c >= 0 && c < len(grid[r]) && grid[r][c] == player {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}

// WinsAt reports whether the token at (row, column) completes a line of
// ToWin. Empty or out-of-range cells never win.
func (b Board) WinsAt(row, column int) bool {
	if !b.inBounds(row, column) {
		return false
	}
	return checkWin(b.grid, row, column)
}
