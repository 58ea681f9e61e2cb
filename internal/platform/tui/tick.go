// Package tui is the terminal host: a Bubble Tea program that feeds key and
// mouse input to a game, steps it on a tick, and rasterizes its frames onto
// a character grid.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation step.
type TickMsg time.Time

// tickCmd schedules one tick at the given rate. The model asks for the next
// one only while the game reports NextFrame.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
