// Package engine performs the mutations of a box grid: appending and removing rows,
// swapping the content of two boxes and moving a box into an empty cell.
//
// Every operation checks all its preconditions before writing to the surface,
// so a failed operation leaves the grid exactly as it was.
package engine

import (
	"fmt"
	"log"

	"github.com/Zaphoood/boxgrid/src/boxes"
	"github.com/Zaphoood/boxgrid/src/grid"
)

const DEFAULT_COLUMNS = 3

type Engine struct {
	surface grid.Surface
	factory *boxes.Factory
	// Number of columns used when a row is appended to an empty grid
	defaultColumns int
	// If set, an invariant violation panics instead of being returned
	strict bool
}

func New(surface grid.Surface, factory *boxes.Factory, defaultColumns int, strict bool) *Engine {
	if defaultColumns <= 0 {
		defaultColumns = DEFAULT_COLUMNS
	}
	return &Engine{
		surface:        surface,
		factory:        factory,
		defaultColumns: defaultColumns,
		strict:         strict,
	}
}

func (e *Engine) Surface() grid.Surface {
	return e.surface
}

func (e *Engine) Factory() *boxes.Factory {
	return e.factory
}

// Locate returns the position and a copy of the box with the given id
func (e *Engine) Locate(id grid.BoxID) (grid.Position, grid.Box, error) {
	cell, ok := grid.Find(e.surface, id)
	if !ok {
		return grid.Position{}, grid.Box{}, grid.StaleReference{ID: id}
	}
	return cell.Position, *cell.Occupant, nil
}

// AppendRow adds a row filled with fresh boxes and returns its index
func (e *Engine) AppendRow() (int, error) {
	columns := e.surface.ColumnCount()
	if e.surface.RowCount() == 0 {
		columns = e.defaultColumns
	}
	created := e.factory.NewBoxes(columns, grid.Labels(e.surface))
	cells := make([]*grid.Box, len(created))
	for i := range created {
		cells[i] = &created[i]
	}
	index, err := e.surface.InsertRow(cells)
	if err != nil {
		return -1, err
	}
	return index, e.verify()
}

func (e *Engine) RemoveRow(index int) error {
	if index < 0 || index >= e.surface.RowCount() {
		return grid.OutOfRange{Row: index, Col: 0}
	}
	if err := e.surface.RemoveRow(index); err != nil {
		return err
	}
	return e.verify()
}

// Swap exchanges label and color of two boxes. The ids stay in their cells,
// which makes Swap its own inverse
func (e *Engine) Swap(source, target grid.BoxID) error {
	sourcePos, sourceBox, err := e.Locate(source)
	if err != nil {
		return err
	}
	targetPos, targetBox, err := e.Locate(target)
	if err != nil {
		return err
	}
	if source == target {
		return nil
	}
	newSource := sourceBox.WithContent(targetBox.Content())
	newTarget := targetBox.WithContent(sourceBox.Content())
	if err := e.surface.SetCellOccupant(sourcePos.Row, sourcePos.Col, &newSource); err != nil {
		return err
	}
	if err := e.surface.SetCellOccupant(targetPos.Row, targetPos.Col, &newTarget); err != nil {
		// Put the source back so the grid is left as it was
		e.surface.SetCellOccupant(sourcePos.Row, sourcePos.Col, &sourceBox)
		return err
	}
	return e.verify()
}

// Move relocates a box into an empty cell
func (e *Engine) Move(source grid.BoxID, to grid.Position) error {
	from, box, err := e.Locate(source)
	if err != nil {
		return err
	}
	if from == to {
		return nil
	}
	target, err := e.surface.GetCell(to.Row, to.Col)
	if err != nil {
		return err
	}
	if !target.Empty() {
		return grid.InvariantViolation{Reason: fmt.Sprintf("Cannot move '%s' to occupied cell %s", source, to)}
	}
	if err := e.surface.SetCellOccupant(to.Row, to.Col, &box); err != nil {
		return err
	}
	if err := e.surface.SetCellOccupant(from.Row, from.Col, nil); err != nil {
		e.surface.SetCellOccupant(to.Row, to.Col, nil)
		return err
	}
	return e.verify()
}

func (e *Engine) Capture() grid.Snapshot {
	return grid.Capture(e.surface)
}

// Restore rebuilds the whole grid from a snapshot. Restored boxes get fresh ids
func (e *Engine) Restore(snapshot grid.Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}
	rows := make([][]*grid.Box, len(snapshot))
	for i, row := range snapshot {
		rows[i] = make([]*grid.Box, len(row))
		for j, content := range row {
			if content == nil {
				continue
			}
			box := e.factory.Mint(*content)
			rows[i][j] = &box
		}
	}
	for e.surface.RowCount() > 0 {
		if err := e.surface.RemoveRow(e.surface.RowCount() - 1); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if _, err := e.surface.InsertRow(row); err != nil {
			return err
		}
	}
	return e.verify()
}

func (e *Engine) verify() error {
	err := grid.Check(e.surface)
	if err == nil {
		return nil
	}
	if e.strict {
		panic(fmt.Sprintf("ERROR: %s", err))
	}
	log.Printf("ERROR: %s\n", err)
	return err
}
