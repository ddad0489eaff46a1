package undo

// SnapshotHistory records the complete state after every change and restores
// states wholesale. It costs more memory than UndoManager but never needs an
// inverse for an action
type SnapshotHistory[T, S any] struct {
	snapshots    []S
	descriptions []string
	// cursor is the index of the snapshot that matches the current state, -1 before the first commit
	cursor  int
	limit   int
	capture func(*T) S
	restore func(*T, S) error
}

func NewSnapshotHistory[T, S any](capture func(*T) S, restore func(*T, S) error, limit int) SnapshotHistory[T, S] {
	return SnapshotHistory[T, S]{
		snapshots:    []S{},
		descriptions: []string{},
		cursor:       -1,
		limit:        limit,
		capture:      capture,
		restore:      restore,
	}
}

// Commit captures the current state of target. Snapshots after the cursor are dropped
func (h *SnapshotHistory[T, S]) Commit(target *T, description string) {
	h.snapshots = append(h.snapshots[:h.cursor+1], h.capture(target))
	h.descriptions = append(h.descriptions[:h.cursor+1], description)
	h.cursor++
	// The limit counts undoable steps, the baseline comes on top
	if h.limit > 0 && len(h.snapshots) > h.limit+1 {
		excess := len(h.snapshots) - h.limit - 1
		h.snapshots = h.snapshots[excess:]
		h.descriptions = h.descriptions[excess:]
		h.cursor -= excess
	}
}

func (h *SnapshotHistory[T, S]) Do(target *T, action Action[T]) error {
	if err := action.Do(target); err != nil {
		return err
	}
	h.Commit(target, action.Description())
	return nil
}

func (h *SnapshotHistory[T, S]) Undo(target *T) error {
	if !h.CanUndo() {
		return AtOldestChange{}
	}
	if err := h.restore(target, h.snapshots[h.cursor-1]); err != nil {
		return err
	}
	h.cursor--
	return nil
}

func (h *SnapshotHistory[T, S]) Redo(target *T) error {
	if !h.CanRedo() {
		return AtNewestChange{}
	}
	if err := h.restore(target, h.snapshots[h.cursor+1]); err != nil {
		return err
	}
	h.cursor++
	return nil
}

func (h *SnapshotHistory[T, S]) CanUndo() bool {
	return h.cursor > 0
}

func (h *SnapshotHistory[T, S]) CanRedo() bool {
	return h.cursor < len(h.snapshots)-1
}

func (h *SnapshotHistory[T, S]) UndoDescription() string {
	if !h.CanUndo() {
		return ""
	}
	return h.descriptions[h.cursor]
}

func (h *SnapshotHistory[T, S]) RedoDescription() string {
	if !h.CanRedo() {
		return ""
	}
	return h.descriptions[h.cursor+1]
}

// Current returns the snapshot matching the current state
func (h *SnapshotHistory[T, S]) Current() (S, bool) {
	var zero S
	if h.cursor < 0 {
		return zero, false
	}
	return h.snapshots[h.cursor], true
}
