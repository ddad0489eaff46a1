package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type setCommandLineMessageMsg struct {
	msg string
}

func setMessageCmd(msg string) tea.Cmd {
	return func() tea.Msg {
		return setCommandLineMessageMsg{msg}
	}
}

type quitMsg struct{}

func quitCmd() tea.Msg {
	return quitMsg{}
}
