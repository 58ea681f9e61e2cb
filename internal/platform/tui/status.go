package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	statusDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// statusBar is the core.Labels sink shown below the playfield.
type statusBar struct {
	title string
	score int
	lives int
	level int
}

func (s *statusBar) SetScore(score int) { s.score = score }
func (s *statusBar) SetLives(lives int) { s.lives = lives }
func (s *statusBar) SetLevel(level int) { s.level = level }

// View renders the status line.
func (s *statusBar) View(paused bool) string {
	line := statusStyle.Render(s.title) + " " +
		fmt.Sprintf("score %d  lives %d  level %d", s.score, s.lives, s.level)
	if paused {
		line += statusDimStyle.Render("  (paused)")
	}
	return line
}
