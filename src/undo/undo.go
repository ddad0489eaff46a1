package undo

type Action[T any] interface {
	Do(*T) error
	Undo(*T) error
	Description() string
}

// History is what an editor needs from an undo implementation. Both UndoManager
// and SnapshotHistory keep a linear history: recording an action after undoing
// discards everything that could have been redone
type History[T any] interface {
	Do(target *T, action Action[T]) error
	Undo(target *T) error
	Redo(target *T) error
	CanUndo() bool
	CanRedo() bool
	UndoDescription() string
	RedoDescription() string
}

type AtOldestChange struct{}

func (_ AtOldestChange) Error() string {
	return "Already at oldest change"
}

type AtNewestChange struct{}

func (_ AtNewestChange) Error() string {
	return "Already at newest change"
}

// UndoManager keeps a log of actions and applies their inverse on undo
type UndoManager[T any] struct {
	actions []Action[T]
	// step is an index into actions which points at the action after last executed action
	step int
	// Maximum number of actions kept, 0 means unlimited
	limit int
}

func NewUndoManager[T any](limit int) UndoManager[T] {
	return UndoManager[T]{
		actions: []Action[T]{},
		step:    0,
		limit:   limit,
	}
}

// Do executes the action and records it. An action that fails is not recorded
func (u *UndoManager[T]) Do(target *T, action Action[T]) error {
	if err := action.Do(target); err != nil {
		return err
	}
	u.Record(action)
	return nil
}

// Record adds an action that has already been executed
func (u *UndoManager[T]) Record(action Action[T]) {
	for i := u.step; i < len(u.actions); i++ {
		u.actions[i] = nil
	}
	u.actions = append(u.actions[:u.step], action)
	u.step++
	if u.limit > 0 && len(u.actions) > u.limit {
		excess := len(u.actions) - u.limit
		u.actions = u.actions[excess:]
		u.step -= excess
	}
}

func (u *UndoManager[T]) Undo(target *T) error {
	if u.step == 0 {
		return AtOldestChange{}
	}
	if err := u.actions[u.step-1].Undo(target); err != nil {
		return err
	}
	u.step--
	return nil
}

func (u *UndoManager[T]) Redo(target *T) error {
	if u.step >= len(u.actions) {
		return AtNewestChange{}
	}
	if err := u.actions[u.step].Do(target); err != nil {
		return err
	}
	u.step++
	return nil
}

func (u *UndoManager[T]) CanUndo() bool {
	return u.step > 0
}

func (u *UndoManager[T]) CanRedo() bool {
	return u.step < len(u.actions)
}

// UndoDescription describes the action that the next Undo reverts, or is empty
func (u *UndoManager[T]) UndoDescription() string {
	if !u.CanUndo() {
		return ""
	}
	return u.actions[u.step-1].Description()
}

func (u *UndoManager[T]) RedoDescription() string {
	if !u.CanRedo() {
		return ""
	}
	return u.actions[u.step].Description()
}

// Len returns the number of undoable and redoable actions
func (u *UndoManager[T]) Len() (int, int) {
	return u.step, len(u.actions) - u.step
}
