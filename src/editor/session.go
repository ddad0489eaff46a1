// Package editor ties a grid, its mutation engine and its history together into
// one editing session, and exposes the gestures a user interface forwards to it.
//
// Gestures either complete a mutation or leave grid and history untouched.
// Undo and redo with nothing to undo or redo are silent no-ops.
package editor

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/Zaphoood/boxgrid/src/boxes"
	"github.com/Zaphoood/boxgrid/src/config"
	"github.com/Zaphoood/boxgrid/src/engine"
	"github.com/Zaphoood/boxgrid/src/grid"
	"github.com/Zaphoood/boxgrid/src/layout"
	"github.com/Zaphoood/boxgrid/src/undo"
)

type dragContext struct {
	box    grid.BoxID
	origin grid.Position
}

type Session struct {
	engine  *engine.Engine
	history undo.History[engine.Engine]
	// nil while no box is being dragged
	drag *dragContext
}

// New creates a session on an existing engine. The grid's current state is the
// oldest state that can be returned to by undoing
func New(e *engine.Engine, design string, limit int) (*Session, error) {
	s := &Session{engine: e}
	switch design {
	case config.HISTORY_LOG, "":
		manager := undo.NewUndoManager[engine.Engine](limit)
		s.history = &manager
	case config.HISTORY_SNAPSHOT:
		snapshots := undo.NewSnapshotHistory(
			func(e *engine.Engine) grid.Snapshot { return e.Capture() },
			func(e *engine.Engine, snapshot grid.Snapshot) error { return e.Restore(snapshot) },
			limit,
		)
		snapshots.Commit(e, "Initial state")
		s.history = &snapshots
	default:
		return nil, fmt.Errorf("Unknown history design '%s'", design)
	}
	return s, nil
}

// FromConfig builds the factory, engine and initial grid described by c
func FromConfig(c config.Config) (*Session, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	var labeler boxes.Labeler
	var counter *boxes.CounterLabeler
	switch c.Labels {
	case config.LABELS_SCAN:
		labeler = boxes.NewScanLabeler(c.LabelBase, c.LabelStep)
	default:
		counter = boxes.NewCounterLabeler(c.LabelBase)
		labeler = counter
	}
	palette := boxes.PaletteUniform
	if c.Palette == config.PALETTE_HAPPY {
		palette = boxes.PaletteHappy
	}
	factory := boxes.NewFactory(labeler, palette, rand.New(rand.NewSource(seed)))
	e := engine.New(grid.New(), factory, c.Columns, c.Strict)

	if len(c.Layout) > 0 {
		snapshot, err := layout.LoadFile(c.Layout, factory.RandomColor)
		if err != nil {
			return nil, err
		}
		if err := e.Restore(snapshot); err != nil {
			return nil, err
		}
		// The counter does not look at the grid, so it must not reissue labels from the layout
		if counter != nil {
			counter.Skip(grid.Labels(e.Surface()))
		}
	} else {
		for i := 0; i < c.Rows; i++ {
			if _, err := e.AppendRow(); err != nil {
				return nil, err
			}
		}
	}
	return New(e, c.History, c.HistoryLimit)
}

func (s *Session) Surface() grid.Surface {
	return s.engine.Surface()
}

func (s *Session) OnAddRowRequested() error {
	return s.history.Do(s.engine, undo.NewAddRowAction())
}

// OnDragStart remembers the box being dragged and the cell it comes from
func (s *Session) OnDragStart(id grid.BoxID) error {
	pos, _, err := s.engine.Locate(id)
	if err != nil {
		s.drag = nil
		return err
	}
	s.drag = &dragContext{box: id, origin: pos}
	return nil
}

func (s *Session) OnDragCancel() {
	s.drag = nil
}

// Dragging returns the box being dragged, if any
func (s *Session) Dragging() (grid.BoxID, bool) {
	if s.drag == nil {
		return grid.NoBox, false
	}
	return s.drag.box, true
}

// OnDrop finishes a drag on the given cell. Dropping onto the cell the drag started
// from does nothing and is not recorded
func (s *Session) OnDrop(target grid.Position) error {
	drag := s.drag
	s.drag = nil
	if drag == nil {
		return nil
	}
	if target == drag.origin {
		return nil
	}
	from, _, err := s.engine.Locate(drag.box)
	if err != nil {
		return err
	}
	cell, err := s.Surface().GetCell(target.Row, target.Col)
	if err != nil {
		return err
	}
	if from == target {
		return nil
	}
	targetID := grid.NoBox
	if cell.Occupant != nil {
		targetID = cell.Occupant.ID
	}
	return s.history.Do(s.engine, undo.NewSwapAction(drag.box, targetID, from, target))
}

// Swap drags the first box onto the cell of the second one
func (s *Session) Swap(source, target grid.BoxID) error {
	if source == target {
		return nil
	}
	to, _, err := s.engine.Locate(target)
	if err != nil {
		return err
	}
	if err := s.OnDragStart(source); err != nil {
		return err
	}
	return s.OnDrop(to)
}

func (s *Session) OnUndoRequested() error {
	s.drag = nil
	return ignoreEmptyHistory(s.history.Undo(s.engine))
}

func (s *Session) OnRedoRequested() error {
	s.drag = nil
	return ignoreEmptyHistory(s.history.Redo(s.engine))
}

func ignoreEmptyHistory(err error) error {
	var oldest undo.AtOldestChange
	var newest undo.AtNewestChange
	if errors.As(err, &oldest) || errors.As(err, &newest) {
		log.Println(err)
		return nil
	}
	return err
}

func (s *Session) CanUndo() bool {
	return s.history.CanUndo()
}

func (s *Session) CanRedo() bool {
	return s.history.CanRedo()
}

func (s *Session) UndoDescription() string {
	return s.history.UndoDescription()
}

func (s *Session) RedoDescription() string {
	return s.history.RedoDescription()
}

// FindLabel returns the ids of all boxes whose label contains query, ignoring case
func (s *Session) FindLabel(query string) []grid.BoxID {
	query = strings.ToLower(query)
	ids := []grid.BoxID{}
	grid.Walk(s.Surface(), func(c grid.Cell) bool {
		if c.Occupant != nil && strings.Contains(strings.ToLower(c.Occupant.Label), query) {
			ids = append(ids, c.Occupant.ID)
		}
		return true
	})
	return ids
}

// BoxWithLabel returns the id of the box with exactly the given label
func (s *Session) BoxWithLabel(label string) (grid.BoxID, bool) {
	id := grid.NoBox
	grid.Walk(s.Surface(), func(c grid.Cell) bool {
		if c.Occupant != nil && c.Occupant.Label == label {
			id = c.Occupant.ID
			return false
		}
		return true
	})
	return id, id != grid.NoBox
}

// Locate returns the position of a box
func (s *Session) Locate(id grid.BoxID) (grid.Position, error) {
	pos, _, err := s.engine.Locate(id)
	return pos, err
}
