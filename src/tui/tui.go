package tui

import (
	"fmt"
	"log"
	"strconv"

	"github.com/Zaphoood/boxgrid/src/editor"
	"github.com/Zaphoood/boxgrid/src/grid"
	"github.com/Zaphoood/boxgrid/src/util"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

/* Main model: shows the grid and forwards the user's gestures to the editor session */

type MainModel struct {
	session *editor.Session
	board   Board
	cmdLine CommandLine
	help    help.Model
	keys    keyMap
	// Whether the system clipboard could be initialized
	clipboard bool

	search      []grid.BoxID
	searchIndex int

	windowWidth  int
	windowHeight int
}

func NewMainModel(s *editor.Session, useClipboard bool) MainModel {
	m := MainModel{
		session: s,
		board:   NewBoard(),
		cmdLine: NewCommandLine(),
		help:    help.New(),
		keys:    defaultKeyMap,
	}
	if useClipboard {
		if err := initClipboard(); err != nil {
			log.Printf("ERROR: Clipboard not available: %s\n", err)
		} else {
			m.clipboard = true
		}
	}
	return m
}

// Run starts the terminal interface and blocks until the user quits
func Run(s *editor.Session, useClipboard bool) error {
	p := tea.NewProgram(
		NewMainModel(s, useClipboard),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

func (m MainModel) Init() tea.Cmd {
	return nil
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case quitMsg:
		return m, tea.Quit
	case setCommandLineMessageMsg:
		m.cmdLine.SetMessage(msg.msg)
		return m, nil
	case commandInputMsg:
		cmd = m.handleCommand(msg.cmd)
		return m, cmd
	case searchInputMsg:
		m.handleSearch(msg.query)
		return m, nil
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.KeyMsg:
		if m.cmdLine.IsInputActive() {
			// Key events should not be handled by the board while the command line is active
			break
		}
		if handled, cmd := m.handleCtrlC(msg); handled {
			return m, cmd
		}
		if handled, cmd := m.handleKeyCmdLineTrigger(msg); handled {
			return m, cmd
		}
		if handled, cmd := m.handleKeyDefault(msg); handled {
			return m, cmd
		}
	}

	if m.cmdLine.IsInputActive() {
		m.cmdLine, cmd = m.cmdLine.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *MainModel) handleCtrlC(msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.cmdLine.SetMessage("Type  :q  and press <Enter> to exit boxgrid")
		return true, nil
	}
	return false, nil
}

func (m *MainModel) handleKeyCmdLineTrigger(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Command):
		return true, m.cmdLine.StartInput(inputCommand, PROMPT_COMMAND)
	case key.Matches(msg, m.keys.Search):
		return true, m.cmdLine.StartInput(inputSearch, PROMPT_SEARCH)
	}
	return false, nil
}

func (m *MainModel) handleKeyDefault(msg tea.KeyMsg) (bool, tea.Cmd) {
	surface := m.session.Surface()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.board.MoveCursor(surface, -1, 0)
	case key.Matches(msg, m.keys.Down):
		m.board.MoveCursor(surface, 1, 0)
	case key.Matches(msg, m.keys.Left):
		m.board.MoveCursor(surface, 0, -1)
	case key.Matches(msg, m.keys.Right):
		m.board.MoveCursor(surface, 0, 1)
	case key.Matches(msg, m.keys.Grab):
		m.grabOrDrop()
	case key.Matches(msg, m.keys.Cancel):
		if _, dragging := m.session.Dragging(); dragging {
			m.session.OnDragCancel()
			m.cmdLine.SetMessage("Drag cancelled.")
		}
	case key.Matches(msg, m.keys.AddRow):
		m.addRow()
	case key.Matches(msg, m.keys.Undo):
		m.undo()
	case key.Matches(msg, m.keys.Redo):
		m.redo()
	case key.Matches(msg, m.keys.Copy):
		return true, m.copyFocusedLabel()
	case key.Matches(msg, m.keys.Next):
		m.nextSearchResult()
	case key.Matches(msg, m.keys.Prev):
		m.previousSearchResult()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		return false, nil
	}
	return true, nil
}

func (m *MainModel) handleMouse(msg tea.MouseMsg) {
	surface := m.session.Surface()
	pos, onCell := m.board.CellAt(surface, msg.X, msg.Y)
	_, dragging := m.session.Dragging()
	switch msg.Type {
	case tea.MouseLeft:
		if !onCell || dragging {
			return
		}
		m.board.SetCursor(surface, pos)
		m.startDrag(pos)
	case tea.MouseMotion:
		if onCell {
			m.board.SetCursor(surface, pos)
		}
	case tea.MouseRelease:
		if !dragging {
			return
		}
		if !onCell {
			m.session.OnDragCancel()
			m.cmdLine.SetMessage("Drag cancelled.")
			return
		}
		m.board.SetCursor(surface, pos)
		m.drop(pos)
	}
}

// focusedBox returns the box under the cursor, if any
func (m *MainModel) focusedBox() *grid.Box {
	pos := m.board.Cursor()
	cell, err := m.session.Surface().GetCell(pos.Row, pos.Col)
	if err != nil {
		return nil
	}
	return cell.Occupant
}

func (m *MainModel) grabOrDrop() {
	if _, dragging := m.session.Dragging(); dragging {
		m.drop(m.board.Cursor())
		return
	}
	m.startDrag(m.board.Cursor())
}

func (m *MainModel) startDrag(pos grid.Position) {
	cell, err := m.session.Surface().GetCell(pos.Row, pos.Col)
	if err != nil || cell.Empty() {
		return
	}
	if err := m.session.OnDragStart(cell.Occupant.ID); err != nil {
		m.cmdLine.SetMessage(errorMessage(err))
		return
	}
	m.cmdLine.SetMessage(fmt.Sprintf("Picked up %s. Drop it on another cell.", cell.Occupant.Label))
}

func (m *MainModel) drop(pos grid.Position) {
	if err := m.session.OnDrop(pos); err != nil {
		m.cmdLine.SetMessage(errorMessage(err))
		return
	}
	m.cmdLine.SetMessage(DEFAULT_MESSAGE)
}

func (m *MainModel) addRow() {
	if err := m.session.OnAddRowRequested(); err != nil {
		m.cmdLine.SetMessage(errorMessage(err))
		return
	}
	m.board.SetCursor(m.session.Surface(), grid.Position{Row: m.session.Surface().RowCount() - 1, Col: m.board.Cursor().Col})
	m.cmdLine.SetMessage(m.session.UndoDescription())
}

func (m *MainModel) undo() {
	if !m.session.CanUndo() {
		m.cmdLine.SetMessage("Already at oldest change")
		return
	}
	description := m.session.UndoDescription()
	if err := m.session.OnUndoRequested(); err != nil {
		m.cmdLine.SetMessage(errorMessage(err))
		return
	}
	m.board.ClampCursor(m.session.Surface())
	m.cmdLine.SetMessage(fmt.Sprintf("Undo: %s", description))
}

func (m *MainModel) redo() {
	if !m.session.CanRedo() {
		m.cmdLine.SetMessage("Already at newest change")
		return
	}
	description := m.session.RedoDescription()
	if err := m.session.OnRedoRequested(); err != nil {
		m.cmdLine.SetMessage(errorMessage(err))
		return
	}
	m.board.ClampCursor(m.session.Surface())
	m.cmdLine.SetMessage(fmt.Sprintf("Redo: %s", description))
}

func (m *MainModel) copyFocusedLabel() tea.Cmd {
	box := m.focusedBox()
	if box == nil {
		return nil
	}
	if !m.clipboard {
		m.cmdLine.SetMessage("Clipboard not available")
		return nil
	}
	return copyToClipboard(box.Label)
}

func (m *MainModel) handleCommand(cmd []string) tea.Cmd {
	if len(cmd) == 0 {
		return nil
	}
	switch cmd[0] {
	case "q", "quit":
		return m.handleQuitCmd(cmd)
	case "addrow", "ar":
		m.addRow()
	case "undo", "u":
		m.undo()
	case "redo", "red":
		m.redo()
	case "swap":
		m.handleSwapCmd(cmd)
	case "move", "mv":
		m.handleMoveCmd(cmd)
	case "help":
		m.help.ShowAll = !m.help.ShowAll
	default:
		m.cmdLine.SetMessage(fmt.Sprintf("Not a command: %s", cmd[0]))
	}
	return nil
}

func (m *MainModel) handleQuitCmd(cmd []string) tea.Cmd {
	if len(cmd) > 1 {
		m.cmdLine.SetMessage("Error: Too many arguments")
		return nil
	}
	return quitCmd
}

// handleSwapCmd drags the box with the first label onto the box with the second label
func (m *MainModel) handleSwapCmd(cmd []string) {
	if len(cmd) != 3 {
		m.cmdLine.SetMessage("Usage: :swap LABEL LABEL")
		return
	}
	source, ok := m.session.BoxWithLabel(cmd[1])
	if !ok {
		m.cmdLine.SetMessage(fmt.Sprintf("No box labeled '%s'", cmd[1]))
		return
	}
	target, ok := m.session.BoxWithLabel(cmd[2])
	if !ok {
		m.cmdLine.SetMessage(fmt.Sprintf("No box labeled '%s'", cmd[2]))
		return
	}
	if err := m.session.Swap(source, target); err != nil {
		m.cmdLine.SetMessage(errorMessage(err))
		return
	}
	m.cmdLine.SetMessage(DEFAULT_MESSAGE)
}

// handleMoveCmd drags the box with the given label onto a cell given by 1-based row and column
func (m *MainModel) handleMoveCmd(cmd []string) {
	if len(cmd) != 4 {
		m.cmdLine.SetMessage("Usage: :move LABEL ROW COL")
		return
	}
	source, ok := m.session.BoxWithLabel(cmd[1])
	if !ok {
		m.cmdLine.SetMessage(fmt.Sprintf("No box labeled '%s'", cmd[1]))
		return
	}
	row, errRow := strconv.Atoi(cmd[2])
	col, errCol := strconv.Atoi(cmd[3])
	if errRow != nil || errCol != nil {
		m.cmdLine.SetMessage("Error: Row and column must be numbers")
		return
	}
	if err := m.session.OnDragStart(source); err != nil {
		m.cmdLine.SetMessage(errorMessage(err))
		return
	}
	target := grid.Position{Row: row - 1, Col: col - 1}
	if err := m.session.OnDrop(target); err != nil {
		m.cmdLine.SetMessage(errorMessage(err))
		return
	}
	m.board.SetCursor(m.session.Surface(), target)
	m.cmdLine.SetMessage(DEFAULT_MESSAGE)
}

func (m *MainModel) handleSearch(query string) {
	m.search = m.session.FindLabel(query)
	if len(m.search) == 0 {
		m.cmdLine.SetMessage(fmt.Sprintf("Not found: %s", query))
		return
	}
	m.searchIndex = 0
	m.focusSearchResult()
}

func (m *MainModel) nextSearchResult() {
	if len(m.search) == 0 {
		return
	}
	m.searchIndex = mod(m.searchIndex+1, len(m.search))
	m.focusSearchResult()
}

func (m *MainModel) previousSearchResult() {
	if len(m.search) == 0 {
		return
	}
	m.searchIndex = mod(m.searchIndex-1, len(m.search))
	m.focusSearchResult()
}

func (m *MainModel) focusSearchResult() {
	pos, err := m.session.Locate(m.search[m.searchIndex])
	if err != nil {
		// The box was removed since the search
		log.Println(err)
		m.cmdLine.SetMessage(errorMessage(err))
		return
	}
	m.board.SetCursor(m.session.Surface(), pos)
	m.cmdLine.SetMessage(fmt.Sprintf("Match %d of %d", m.searchIndex+1, len(m.search)))
}

func (m MainModel) header() string {
	surface := m.session.Surface()
	header := fmt.Sprintf("boxgrid  %dx%d", surface.RowCount(), surface.ColumnCount())
	if id, dragging := m.session.Dragging(); dragging {
		if pos, err := m.session.Locate(id); err == nil {
			header += fmt.Sprintf("  dragging from %s", pos)
		}
	}
	return headerStyle.Render(header)
}

func (m MainModel) View() string {
	dragged, _ := m.session.Dragging()
	helpView := m.help.View(m.keys)
	board := m.board.View(m.session.Surface(), dragged)
	if m.session.Surface().RowCount() == 0 && m.windowWidth > 0 {
		height := m.windowHeight - HEADER_HEIGHT - m.cmdLine.GetHeight() - lipgloss.Height(helpView)
		board = centerInWindow(board, m.windowWidth, util.Max(height, 1))
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header(),
		board,
		m.cmdLine.View(),
		helpView,
	)
}
