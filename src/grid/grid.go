package grid

import (
	"fmt"

	"github.com/Zaphoood/boxgrid/src/util/set"
)

// Surface is the addressable 2-D grid that the mutation engine reads from and writes to.
// Positions are stable: a cell keeps its (row, col) while occupants come and go
type Surface interface {
	GetCell(row, col int) (Cell, error)
	RowCount() int
	ColumnCount() int
	// InsertRow appends a row and returns its index
	InsertRow(cells []*Box) (int, error)
	RemoveRow(index int) error
	SetCellOccupant(row, col int, box *Box) error
}

// Grid is the in-memory Surface. It stores copies of boxes, so no caller can
// change grid state except through the Surface methods
type Grid struct {
	rows    [][]*Box
	columns int
}

func New() *Grid {
	return &Grid{rows: [][]*Box{}}
}

func (g *Grid) GetCell(row, col int) (Cell, error) {
	if !g.inRange(row, col) {
		return Cell{}, OutOfRange{row, col}
	}
	return Cell{Position{row, col}, copyBox(g.rows[row][col])}, nil
}

func (g *Grid) RowCount() int {
	return len(g.rows)
}

func (g *Grid) ColumnCount() int {
	if len(g.rows) == 0 {
		return 0
	}
	return g.columns
}

func (g *Grid) InsertRow(cells []*Box) (int, error) {
	if len(cells) == 0 {
		return -1, InvariantViolation{"Cannot insert row without cells"}
	}
	if len(g.rows) > 0 && len(cells) != g.columns {
		return -1, InvariantViolation{fmt.Sprintf("Row of length %d does not fit grid with %d columns", len(cells), g.columns)}
	}
	row := make([]*Box, len(cells))
	for i, box := range cells {
		row[i] = copyBox(box)
	}
	g.rows = append(g.rows, row)
	g.columns = len(cells)
	return len(g.rows) - 1, nil
}

func (g *Grid) RemoveRow(index int) error {
	if index < 0 || index >= len(g.rows) {
		return OutOfRange{index, 0}
	}
	g.rows = append(g.rows[:index], g.rows[index+1:]...)
	return nil
}

func (g *Grid) SetCellOccupant(row, col int, box *Box) error {
	if !g.inRange(row, col) {
		return OutOfRange{row, col}
	}
	g.rows[row][col] = copyBox(box)
	return nil
}

func (g *Grid) inRange(row, col int) bool {
	return 0 <= row && row < len(g.rows) && 0 <= col && col < len(g.rows[row])
}

func copyBox(box *Box) *Box {
	if box == nil {
		return nil
	}
	b := *box
	return &b
}

// Walk calls f for every cell in row-major order until f returns false
func Walk(s Surface, f func(Cell) bool) {
	for row := 0; row < s.RowCount(); row++ {
		for col := 0; col < s.ColumnCount(); col++ {
			cell, err := s.GetCell(row, col)
			if err != nil {
				continue
			}
			if !f(cell) {
				return
			}
		}
	}
}

// Find returns the cell occupied by the box with the given id
func Find(s Surface, id BoxID) (Cell, bool) {
	var found Cell
	ok := false
	if id == NoBox {
		return found, false
	}
	Walk(s, func(c Cell) bool {
		if c.Occupant != nil && c.Occupant.ID == id {
			found = c
			ok = true
			return false
		}
		return true
	})
	return found, ok
}

// Labels returns the labels of all boxes in row-major order
func Labels(s Surface) []string {
	labels := []string{}
	Walk(s, func(c Cell) bool {
		if c.Occupant != nil {
			labels = append(labels, c.Occupant.Label)
		}
		return true
	})
	return labels
}

// Check verifies that every row has ColumnCount cells and that no box id occurs twice
func Check(s Surface) error {
	columns := s.ColumnCount()
	seen := set.New[BoxID]()
	for row := 0; row < s.RowCount(); row++ {
		if _, err := s.GetCell(row, columns-1); columns > 0 && err != nil {
			return InvariantViolation{fmt.Sprintf("Row %d is shorter than %d columns", row, columns)}
		}
		if _, err := s.GetCell(row, columns); err == nil {
			return InvariantViolation{fmt.Sprintf("Row %d is longer than %d columns", row, columns)}
		}
		for col := 0; col < columns; col++ {
			cell, _ := s.GetCell(row, col)
			if cell.Occupant == nil {
				continue
			}
			if seen.Contains(cell.Occupant.ID) {
				return InvariantViolation{fmt.Sprintf("Box '%s' occurs more than once", cell.Occupant.ID)}
			}
			seen.Insert(cell.Occupant.ID)
		}
	}
	return nil
}
