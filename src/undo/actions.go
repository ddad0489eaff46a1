package undo

import (
	"fmt"

	"github.com/Zaphoood/boxgrid/src/engine"
	"github.com/Zaphoood/boxgrid/src/grid"
)

// SwapAction records a drop of one box onto a cell. The participants are
// recorded by id, not by position, so re-running a swap with the same two ids
// undoes it. If the target cell was empty, TargetID is grid.NoBox and the
// action is a move from From to To
type SwapAction struct {
	SourceID grid.BoxID
	TargetID grid.BoxID
	From     grid.Position
	To       grid.Position
}

func NewSwapAction(source, target grid.BoxID, from, to grid.Position) SwapAction {
	if source == grid.NoBox {
		panic("ERROR: Cannot create swap action without source box")
	}
	if source == target {
		panic(fmt.Sprintf("ERROR: Cannot swap box '%s' with itself", source))
	}
	return SwapAction{source, target, from, to}
}

func (a SwapAction) IsMove() bool {
	return a.TargetID == grid.NoBox
}

func (a SwapAction) Do(e *engine.Engine) error {
	if a.IsMove() {
		return e.Move(a.SourceID, a.To)
	}
	return e.Swap(a.SourceID, a.TargetID)
}

func (a SwapAction) Undo(e *engine.Engine) error {
	if a.IsMove() {
		return e.Move(a.SourceID, a.From)
	}
	return e.Swap(a.SourceID, a.TargetID)
}

func (a SwapAction) Description() string {
	if a.IsMove() {
		return fmt.Sprintf("Move %s from %s to %s", a.SourceID, a.From, a.To)
	}
	return fmt.Sprintf("Swap %s with %s", a.SourceID, a.TargetID)
}

// AddRowAction appends a row. Undo removes exactly that row. Redo appends a new
// row, whose boxes get new ids and labels; the removed boxes are not brought back
type AddRowAction struct {
	// Index of the appended row, -1 before the first Do
	Row int
}

func NewAddRowAction() *AddRowAction {
	return &AddRowAction{Row: -1}
}

func (a *AddRowAction) Do(e *engine.Engine) error {
	if rows := e.Surface().RowCount(); a.Row >= 0 && a.Row != rows {
		return grid.InvariantViolation{Reason: fmt.Sprintf("Row would be re-added at %d, expected %d", rows, a.Row)}
	}
	row, err := e.AppendRow()
	if err != nil {
		return err
	}
	a.Row = row
	return nil
}

func (a *AddRowAction) Undo(e *engine.Engine) error {
	if a.Row < 0 {
		return fmt.Errorf("Cannot undo adding a row that was never added")
	}
	return e.RemoveRow(a.Row)
}

func (a *AddRowAction) Description() string {
	return fmt.Sprintf("Add row %d", a.Row+1)
}
