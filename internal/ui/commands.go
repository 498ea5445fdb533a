package ui

import (
	"github.com/atomicstack/calc-prank/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// cueResultMsg carries the outcome of a cue playback attempt.
type cueResultMsg struct {
	err error
}

// playCueCmd rewinds and plays the audio cue off the update loop. Nothing
// waits on it.
func (m *Model) playCueCmd() tea.Cmd {
	player := m.player
	return m.bus.Execute(command.Request{
		ID:    "sound:cue",
		Label: "surprise cue",
		Run: func() tea.Msg {
			player.Rewind()
			return cueResultMsg{err: player.Play()}
		},
	})
}

// handleCueResultMsg drops the playback result. A rejected cue is not
// reported anywhere.
func (m *Model) handleCueResultMsg(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(cueResultMsg); !ok {
		return nil
	}
	return nil
}
