package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWinsAt(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		row, col int
		want     bool
	}{
		{
			name: "horizontal on the floor",
			rows: []string{
				"0000000",
				"0000000",
				"0000000",
				"0000000",
				"0000000",
				"0001111",
			},
			row: 5, col: 4,
			want: true,
		},
		{
			name: "horizontal of three",
			rows: []string{
				"0000000",
				"0000000",
				"0000000",
				"0000000",
				"0000000",
				"1110222",
			},
			row: 5, col: 5,
			want: false,
		},
		{
			name: "vertical against the top",
			rows: []string{
				"0000002",
				"0000002",
				"0000002",
				"0000002",
				"0000001",
				"0000001",
			},
			row: 0, col: 6,
			want: true,
		},
		{
			name: "diagonal down-right from the left edge",
			rows: []string{
				"0000000",
				"0000000",
				"1000000",
				"2100000",
				"2210000",
				"2221000",
			},
			row: 2, col: 0,
			want: true,
		},
		{
			name: "diagonal down-left ending at the right edge",
			rows: []string{
				"0000000",
				"0000000",
				"0000002",
				"0000021",
				"0000211",
				"0002111",
			},
			row: 5, col: 3,
			want: true,
		},
		{
			name: "diagonal completed in the middle",
			rows: []string{
				"0000000",
				"0000000",
				"0001000",
				"0012000",
				"0122000",
				"1222000",
			},
			row: 4, col: 1,
			want: true,
		},
		{
			name: "diagonal of three",
			rows: []string{
				"0000000",
				"0000000",
				"0000000",
				"0010000",
				"0122000",
				"1222000",
			},
			row: 3, col: 2,
			want: false,
		},
		{
			name: "run broken by the opponent",
			rows: []string{
				"0000000",
				"0000000",
				"0000000",
				"0000000",
				"0000000",
				"1121100",
			},
			row: 5, col: 4,
			want: false,
		},
		{
			name: "empty cell never wins",
			rows: []string{
				"0000000",
				"0000000",
				"0000000",
				"0000000",
				"0000000",
				"0000000",
			},
			row: 5, col: 0,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardFromRows(t, tt.rows...)
			assert.Equal(t, tt.want, b.WinsAt(tt.row, tt.col))
		})
	}
}

func TestWinsAt_OutOfRange(t *testing.T) {
	b := NewBoard(DefaultDimensions)
	assert.False(t, b.WinsAt(-1, 0))
	assert.False(t, b.WinsAt(0, 9))
}

func TestRunLength_CountsBothSides(t *testing.T) {
	b := boardFromRows(t,
		"0000000",
		"0000000",
		"0000000",
		"0000000",
		"0000000",
		"0111110",
	)
	assert.Equal(t, 5, runLength(b.grid, 5, 3, winDirections[0], Player1))
	assert.Equal(t, 1, runLength(b.grid, 5, 3, winDirections[1], Player1))
}
