package tui

import (
	"testing"

	"github.com/Zaphoood/boxgrid/src/grid"
	"github.com/stretchr/testify/assert"
)

func newSurface(rows, cols int) grid.Surface {
	g := grid.New()
	id := grid.BoxID(1)
	for r := 0; r < rows; r++ {
		row := make([]*grid.Box, cols)
		for c := range row {
			row[c] = &grid.Box{ID: id, Label: id.String()}
			id++
		}
		if _, err := g.InsertRow(row); err != nil {
			panic(err)
		}
	}
	return g
}

func TestCellAt(t *testing.T) {
	assert := assert.New(t)
	s := newSurface(2, 3)
	b := NewBoard()

	for _, test := range []struct {
		x, y int
		pos  grid.Position
		ok   bool
	}{
		{0, HEADER_HEIGHT, grid.Position{Row: 0, Col: 0}, true},
		{CELL_OUTER_WIDTH - 1, HEADER_HEIGHT + CELL_OUTER_HEIGHT - 1, grid.Position{Row: 0, Col: 0}, true},
		{CELL_OUTER_WIDTH, HEADER_HEIGHT, grid.Position{Row: 0, Col: 1}, true},
		{2*CELL_OUTER_WIDTH + 3, HEADER_HEIGHT + CELL_OUTER_HEIGHT, grid.Position{Row: 1, Col: 2}, true},
		{0, 0, grid.Position{}, false},
		{3 * CELL_OUTER_WIDTH, HEADER_HEIGHT, grid.Position{}, false},
		{0, HEADER_HEIGHT + 2*CELL_OUTER_HEIGHT, grid.Position{}, false},
	} {
		pos, ok := b.CellAt(s, test.x, test.y)
		assert.Equal(test.ok, ok, "(%d, %d)", test.x, test.y)
		assert.Equal(test.pos, pos, "(%d, %d)", test.x, test.y)
	}
}

func TestCursorStaysInGrid(t *testing.T) {
	assert := assert.New(t)
	s := newSurface(2, 3)
	b := NewBoard()

	b.MoveCursor(s, -1, -1)
	assert.Equal(grid.Position{Row: 0, Col: 0}, b.Cursor())
	b.MoveCursor(s, 5, 5)
	assert.Equal(grid.Position{Row: 1, Col: 2}, b.Cursor())

	b.ClampCursor(newSurface(1, 3))
	assert.Equal(grid.Position{Row: 0, Col: 2}, b.Cursor())
	b.ClampCursor(newSurface(0, 0))
	assert.Equal(grid.Position{Row: 0, Col: 0}, b.Cursor())
}

func TestEmptyBoardView(t *testing.T) {
	assert.Equal(t, placeholderStyle.Render(EMPTY_GRID_PLACEHOLDER), NewBoard().View(newSurface(0, 0), grid.NoBox))
}
