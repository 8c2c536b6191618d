package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardFromRows builds a default-sized board from top-first digit rows.
func boardFromRows(t *testing.T, rows ...string) Board {
	t.Helper()
	require.Len(t, rows, Rows)

	b := NewBoard(DefaultDimensions)
	for r, line := range rows {
		require.Len(t, line, Columns, "row %d", r)
		for c, ch := range line {
			b.grid[r][c] = PlayerID(ch - '0')
		}
	}
	return b
}

func TestNewBoard_Defaults(t *testing.T) {
	b := NewBoard(DefaultDimensions)

	assert.Equal(t, 7, b.Width())
	assert.Equal(t, 6, b.Height())
	assert.Equal(t, Player1, b.CurrentPlayer())
	assert.Equal(t, 0, b.PendingColumn())
	assert.Equal(t, InProgress(), b.Outcome())
	assert.Equal(t, 0, b.MoveCount())
	assert.False(t, isGridFull(b.grid))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, b.ValidColumns())

	for _, row := range b.Grid() {
		for _, cell := range row {
			assert.Equal(t, Empty, cell)
		}
	}
}

func TestBoard_CloneIsIndependent(t *testing.T) {
	b := boardFromRows(t,
		"0000000",
		"0000000",
		"0000000",
		"0000000",
		"0000000",
		"1200000",
	)
	clone := b.Clone()
	require.True(t, b.Equal(clone))

	clone.grid[5][6] = Player2
	assert.Equal(t, Empty, b.Cell(5, 6))
	assert.False(t, b.Equal(clone))

	grid := b.Grid()
	grid[5][0] = Player2
	assert.Equal(t, Player1, b.Cell(5, 0))
}

func TestBoard_WithOverrides(t *testing.T) {
	b := NewBoard(DefaultDimensions)

	tests := []struct {
		name   string
		column int
		want   int
	}{
		{"in range", 3, 3},
		{"left of first column", -1, 6},
		{"past last column", 7, 0},
		{"far negative", -15, 6},
		{"far positive", 22, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.WithPendingColumn(tt.column).PendingColumn())
		})
	}

	assert.Equal(t, Player2, b.WithCurrentPlayer(Player2).CurrentPlayer())
	assert.Equal(t, Player1, b.WithCurrentPlayer(Empty).CurrentPlayer())
	assert.Equal(t, Draw(), b.WithOutcome(Draw()).Outcome())
	assert.Equal(t, InProgress(), b.Outcome(), "overrides must not touch the source")
}

func TestBoard_CellOutOfRange(t *testing.T) {
	b := NewBoard(DefaultDimensions)

	assert.Equal(t, Empty, b.Cell(-1, 0))
	assert.Equal(t, Empty, b.Cell(0, 7))
	assert.Equal(t, Empty, b.Cell(6, 0))
	assert.True(t, b.ColumnFull(-1))
	assert.True(t, b.ColumnFull(7))
}

func TestBoard_SimulateDropStacksFromFloor(t *testing.T) {
	b := NewBoard(DefaultDimensions)

	next, row, err := b.SimulateDrop(3)
	require.NoError(t, err)
	assert.Equal(t, 5, row)
	assert.Equal(t, Player1, next.Cell(5, 3))
	assert.Equal(t, Player2, next.CurrentPlayer())
	assert.Equal(t, 0, next.PendingColumn())
	assert.Equal(t, Empty, b.Cell(5, 3), "receiver must be untouched")

	next, row, err = next.SimulateDrop(3)
	require.NoError(t, err)
	assert.Equal(t, 4, row)
	assert.Equal(t, Player2, next.Cell(4, 3))
	assert.Equal(t, 2, next.MoveCount())

	landing, ok := next.LandingRow(3)
	assert.True(t, ok)
	assert.Equal(t, 3, landing)
}

func TestBoard_SimulateDropErrors(t *testing.T) {
	full := boardFromRows(t,
		"1000000",
		"2000000",
		"1000000",
		"2000000",
		"1000000",
		"2000000",
	)

	_, _, err := full.SimulateDrop(0)
	assert.ErrorIs(t, err, ErrColumnFull)

	_, ok := full.LandingRow(0)
	assert.False(t, ok)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, full.ValidColumns())

	_, _, err = full.SimulateDrop(7)
	assert.ErrorIs(t, err, ErrInvalidColumn)

	_, _, err = full.WithOutcome(Won(Player1)).SimulateDrop(1)
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestBoard_String(t *testing.T) {
	b := boardFromRows(t,
		"0000000",
		"0000000",
		"0000000",
		"0000000",
		"0000000",
		"1200000",
	)
	assert.Equal(t, "0000000\n0000000\n0000000\n0000000\n0000000\n1200000", b.String())
}

func TestBoard_SmallDimensions(t *testing.T) {
	b := NewBoard(Dimensions{Width: 2, Height: 1})

	b, _, err := b.SimulateDrop(0)
	require.NoError(t, err)
	assert.Equal(t, InProgress(), b.Outcome())

	b, _, err = b.SimulateDrop(1)
	require.NoError(t, err)
	assert.Equal(t, Draw(), b.Outcome())
	assert.True(t, isGridFull(b.grid))
}

func TestDimensions_Validate(t *testing.T) {
	assert.NoError(t, DefaultDimensions.Validate())
	assert.ErrorIs(t, Dimensions{Width: 0, Height: 6}.Validate(), ErrInvalidDimensions)
	assert.ErrorIs(t, Dimensions{Width: 7, Height: -1}.Validate(), ErrInvalidDimensions)
	assert.Equal(t, 42, DefaultDimensions.Cells())
}

func TestOutcome(t *testing.T) {
	assert.False(t, InProgress().IsTerminal())
	assert.True(t, Won(Player2).IsTerminal())
	assert.True(t, Draw().IsTerminal())

	assert.Equal(t, "in_progress", InProgress().String())
	assert.Equal(t, "player1_won", Won(Player1).String())
	assert.Equal(t, "player2_won", Won(Player2).String())
	assert.Equal(t, "draw", Draw().String())
	assert.NotEqual(t, Won(Player1), Won(Player2))
}

func TestParseGameMode(t *testing.T) {
	mode, err := ParseGameMode("singleplayer")
	require.NoError(t, err)
	assert.Equal(t, Singleplayer, mode)

	mode, err = ParseGameMode("local")
	require.NoError(t, err)
	assert.Equal(t, LocalMultiplayer, mode)

	_, err = ParseGameMode("online")
	assert.ErrorIs(t, err, ErrUnknownMode)
}
