package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	DEFAULT_MESSAGE = "Ready."
	PROMPT_COMMAND  = ":"
	PROMPT_SEARCH   = "/"
)

type inputMode int

const (
	inputNone inputMode = iota
	inputCommand
	inputSearch
)

type CommandLine struct {
	input     textinput.Model
	inputMode inputMode
	prompt    string
	message   string
}

func NewCommandLine() CommandLine {
	input := textinput.New()
	input.Prompt = ""
	return CommandLine{
		input:     input,
		inputMode: inputNone,
		message:   DEFAULT_MESSAGE,
	}
}

func (c CommandLine) Init() tea.Cmd {
	return nil
}

func (c CommandLine) Update(msg tea.Msg) (CommandLine, tea.Cmd) {
	var cmd tea.Cmd
	msg_, ok := msg.(tea.KeyMsg)
	if !ok || c.inputMode == inputNone {
		return c, nil
	}

	switch msg_.String() {
	case "esc", "ctrl+c":
		c.endInputMode()
		return c, nil
	case "enter":
		return c, c.onEnter()
	}

	c.input, cmd = c.input.Update(msg_)

	switch msg_.String() {
	case "backspace":
		if len(c.input.Value()) == 0 {
			c.endInputMode()
			return c, nil
		}
	case "ctrl+w":
		if len(c.input.Value()) == 0 {
			c.resetPrompt()
			return c, nil
		}
	}

	return c, cmd
}

// StartInput focuses the command line and shows the prompt for the given mode
func (c *CommandLine) StartInput(mode inputMode, prompt string) tea.Cmd {
	c.inputMode = mode
	c.prompt = prompt
	c.resetPrompt()
	return c.input.Focus()
}

func (c *CommandLine) resetPrompt() {
	c.input.SetValue(c.prompt)
	c.input.SetCursor(len(c.prompt))
}

func (c *CommandLine) onEnter() tea.Cmd {
	switch c.inputMode {
	case inputCommand:
		return c.onCommandInput()
	case inputSearch:
		return c.onSearchInput()
	}
	return nil
}

func (c *CommandLine) onCommandInput() tea.Cmd {
	c.endInputMode()
	c.message = c.input.Value()
	cmdAsStrings, err := parseInputAsCommand(c.input.Value())
	if err != nil {
		c.message = err.Error()
		return nil
	}
	return func() tea.Msg { return commandInputMsg{cmdAsStrings} }
}

func (c *CommandLine) onSearchInput() tea.Cmd {
	c.endInputMode()
	c.message = c.input.Value()
	inputAsSearch, err := parseInputAsSearch(c.input.Value())
	if err != nil {
		c.message = err.Error()
		return nil
	}
	return func() tea.Msg { return searchInputMsg{inputAsSearch} }
}

func parseInputAsCommand(input string) ([]string, error) {
	if len(input) == 0 || !strings.HasPrefix(input, PROMPT_COMMAND) {
		return nil, fmt.Errorf("Commands must start with '%s', got '%s'", PROMPT_COMMAND, input)
	}
	// strings.Fields drops the empty strings between repeated spaces
	return strings.Fields(input[len(PROMPT_COMMAND):]), nil
}

func parseInputAsSearch(input string) (string, error) {
	if len(input) == 0 || !strings.HasPrefix(input, PROMPT_SEARCH) {
		return "", fmt.Errorf("Search must start with '%s', got '%s'", PROMPT_SEARCH, input)
	}
	return input[len(PROMPT_SEARCH):], nil
}

func (c *CommandLine) endInputMode() {
	c.inputMode = inputNone
	c.input.Blur()
	c.message = DEFAULT_MESSAGE
}

func (c CommandLine) View() string {
	switch c.inputMode {
	case inputNone:
		return c.message
	case inputCommand, inputSearch:
		return c.input.View()
	default:
		panic(fmt.Sprintf("ERROR: Invalid input mode %d", c.inputMode))
	}
}

func (c *CommandLine) SetMessage(msg string) {
	c.message = msg
}

func (c CommandLine) Message() string {
	return c.message
}

func (c CommandLine) IsInputActive() bool {
	return c.inputMode != inputNone
}

func (c CommandLine) GetHeight() int {
	return 1
}

type commandInputMsg struct {
	cmd []string
}

type searchInputMsg struct {
	query string
}
