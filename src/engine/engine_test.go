package engine

import (
	"math/rand"
	"testing"

	"github.com/Zaphoood/boxgrid/src/boxes"
	"github.com/Zaphoood/boxgrid/src/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, rows int) *Engine {
	factory := boxes.NewFactory(boxes.NewCounterLabeler(boxes.DEFAULT_COUNTER_BASE), boxes.PaletteUniform, rand.New(rand.NewSource(1)))
	e := New(grid.New(), factory, 3, true)
	for i := 0; i < rows; i++ {
		_, err := e.AppendRow()
		require.Nil(t, err)
	}
	return e
}

func boxAt(t *testing.T, e *Engine, row, col int) grid.Box {
	cell, err := e.Surface().GetCell(row, col)
	require.Nil(t, err)
	require.NotNil(t, cell.Occupant, "Expected box at (%d, %d)", row, col)
	return *cell.Occupant
}

func TestAppendRow(t *testing.T) {
	assert := assert.New(t)
	e := newTestEngine(t, 0)

	index, err := e.AppendRow()
	assert.Nil(err)
	assert.Equal(0, index)
	assert.Equal(3, e.Surface().ColumnCount())
	assert.Equal([]string{"1000", "1001", "1002"}, grid.Labels(e.Surface()))

	index, err = e.AppendRow()
	assert.Nil(err)
	assert.Equal(1, index)
	assert.Equal(2, e.Surface().RowCount())
}

func TestAppendRowKeepsColumnCount(t *testing.T) {
	factory := boxes.NewFactory(boxes.NewScanLabeler(100, 100), boxes.PaletteUniform, nil)
	e := New(grid.New(), factory, 3, true)
	require.Nil(t, e.Restore(grid.Snapshot{{nil, nil, nil, nil, nil}}))

	_, err := e.AppendRow()
	assert.Nil(t, err)
	assert.Equal(t, 5, e.Surface().ColumnCount())
	assert.Equal(t, []string{"200", "300", "400", "500", "600"}, grid.Labels(e.Surface()))
}

func TestSwapExchangesContentNotIDs(t *testing.T) {
	assert := assert.New(t)
	e := newTestEngine(t, 1)
	a := boxAt(t, e, 0, 0)
	b := boxAt(t, e, 0, 1)

	assert.Nil(e.Swap(a.ID, b.ID))
	newA := boxAt(t, e, 0, 0)
	newB := boxAt(t, e, 0, 1)
	assert.Equal(a.ID, newA.ID)
	assert.Equal(b.ID, newB.ID)
	assert.Equal(b.Content(), newA.Content())
	assert.Equal(a.Content(), newB.Content())

	// Swapping again restores the original
	assert.Nil(e.Swap(a.ID, b.ID))
	assert.Equal(a, boxAt(t, e, 0, 0))
	assert.Equal(b, boxAt(t, e, 0, 1))

	before := e.Capture()
	assert.Nil(e.Swap(a.ID, a.ID))
	assert.Equal(before, e.Capture())
}

func TestSwapStaleReference(t *testing.T) {
	assert := assert.New(t)
	e := newTestEngine(t, 1)
	a := boxAt(t, e, 0, 0)
	before := e.Capture()

	err := e.Swap(a.ID, 999)
	assert.Equal(grid.StaleReference{ID: 999}, err)
	err = e.Swap(999, a.ID)
	assert.Equal(grid.StaleReference{ID: 999}, err)
	assert.Equal(before, e.Capture())
}

func TestMove(t *testing.T) {
	assert := assert.New(t)
	factory := boxes.NewFactory(boxes.NewCounterLabeler(0), boxes.PaletteUniform, nil)
	e := New(grid.New(), factory, 2, true)
	require.Nil(t, e.Restore(grid.Snapshot{{&grid.Content{Label: "a"}, nil}}))
	a := boxAt(t, e, 0, 0)

	assert.Nil(e.Move(a.ID, grid.Position{Row: 0, Col: 1}))
	cell, _ := e.Surface().GetCell(0, 0)
	assert.True(cell.Empty())
	assert.Equal(a, boxAt(t, e, 0, 1))

	// Moving onto its own cell does nothing
	assert.Nil(e.Move(a.ID, grid.Position{Row: 0, Col: 1}))

	err := e.Move(a.ID, grid.Position{Row: 4, Col: 4})
	_, ok := err.(grid.OutOfRange)
	assert.True(ok)
	assert.Equal(a, boxAt(t, e, 0, 1))

	err = e.Move(77, grid.Position{Row: 0, Col: 0})
	assert.Equal(grid.StaleReference{ID: 77}, err)
}

func TestMoveOntoOccupiedCell(t *testing.T) {
	e := newTestEngine(t, 1)
	a := boxAt(t, e, 0, 0)
	before := e.Capture()

	err := e.Move(a.ID, grid.Position{Row: 0, Col: 1})
	_, ok := err.(grid.InvariantViolation)
	assert.True(t, ok)
	assert.Equal(t, before, e.Capture())
}

func TestRemoveRow(t *testing.T) {
	assert := assert.New(t)
	e := newTestEngine(t, 2)
	second := boxAt(t, e, 1, 0)

	assert.Nil(e.RemoveRow(0))
	assert.Equal(1, e.Surface().RowCount())
	assert.Equal(second, boxAt(t, e, 0, 0))

	assert.NotNil(e.RemoveRow(3))
	assert.Equal(1, e.Surface().RowCount())
}

func TestRestore(t *testing.T) {
	assert := assert.New(t)
	e := newTestEngine(t, 2)
	snapshot := e.Capture()
	first := boxAt(t, e, 0, 0)

	_, err := e.AppendRow()
	require.Nil(t, err)
	require.Nil(t, e.Swap(boxAt(t, e, 0, 0).ID, boxAt(t, e, 1, 1).ID))

	assert.Nil(e.Restore(snapshot))
	assert.Equal(snapshot, e.Capture())
	// Restored boxes get new identities
	assert.NotEqual(first.ID, boxAt(t, e, 0, 0).ID)

	// Restoring twice gives the same result
	assert.Nil(e.Restore(snapshot))
	assert.Equal(snapshot, e.Capture())

	// Ragged snapshots are rejected without touching the grid
	err = e.Restore(grid.Snapshot{{nil}, {nil, nil}})
	_, ok := err.(grid.InvariantViolation)
	assert.True(ok)
	assert.Equal(snapshot, e.Capture())
}

func TestLocate(t *testing.T) {
	assert := assert.New(t)
	e := newTestEngine(t, 2)
	b := boxAt(t, e, 1, 2)

	pos, found, err := e.Locate(b.ID)
	assert.Nil(err)
	assert.Equal(grid.Position{Row: 1, Col: 2}, pos)
	assert.Equal(b, found)

	_, _, err = e.Locate(grid.NoBox)
	assert.Equal(grid.StaleReference{ID: grid.NoBox}, err)
}

// raggedSurface reports one cell too many in its last row
type raggedSurface struct {
	*grid.Grid
}

func (s raggedSurface) GetCell(row, col int) (grid.Cell, error) {
	if row == s.RowCount()-1 && col == s.ColumnCount() {
		return grid.Cell{Position: grid.Position{Row: row, Col: col}}, nil
	}
	return s.Grid.GetCell(row, col)
}

func newRaggedEngine(strict bool) *Engine {
	factory := boxes.NewFactory(boxes.NewCounterLabeler(boxes.DEFAULT_COUNTER_BASE), boxes.PaletteUniform, nil)
	return New(raggedSurface{grid.New()}, factory, 3, strict)
}

func TestStrictModePanicsOnViolation(t *testing.T) {
	e := newRaggedEngine(true)
	assert.Panics(t, func() { e.AppendRow() })
}

func TestViolationIsReturned(t *testing.T) {
	assert := assert.New(t)
	e := newRaggedEngine(false)

	_, err := e.AppendRow()
	assert.IsType(grid.InvariantViolation{}, err)
	_, err = e.AppendRow()
	assert.IsType(grid.InvariantViolation{}, err)
}
