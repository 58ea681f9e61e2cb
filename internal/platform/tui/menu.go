package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/registry"
)

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("220"))

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	variants []registry.GameInfo
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	width    int
	height   int
	selected string
	quitting bool
}

// NewMenuModel creates a picker listing every registered variant.
func NewMenuModel(width, height int) MenuModel {
	h := help.New()
	h.ShowAll = false

	m := MenuModel{
		variants: registry.List(),
		help:     h,
		keys:     DefaultMenuKeyMap(),
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	return m
}

// createTable builds the variant table with one row per variant.
func (m *MenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Variant", Width: 10},
		{Title: "Title", Width: 22},
		{Title: "Bricks", Width: 8},
		{Title: "Lives", Width: 6},
		{Title: "Speed", Width: 6},
	}

	rows := make([]table.Row, 0, len(m.variants))
	for _, v := range m.variants {
		rows = append(rows, variantRow(v))
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+1, max(m.height-8, 2))),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// variantRow describes a variant from its default configuration.
func variantRow(info registry.GameInfo) table.Row {
	if !config.IsVariant(info.ID) {
		return table.Row{info.ID, info.Title, "-", "-", "-"}
	}
	cfg := config.Default(info.ID)
	return table.Row{
		info.ID,
		info.Title,
		fmt.Sprintf("%dx%d", cfg.Grid.Rows, cfg.Grid.Cols),
		fmt.Sprintf("%d", cfg.Gameplay.Lives),
		fmt.Sprintf("%g", cfg.Ball.Speed),
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			if row := m.table.SelectedRow(); row != nil {
				m.selected = row[0]
				return m, tea.Quit
			}
			return m, nil
		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("B R I C K   B R E A K E R", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a variant", m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.table.View()))
	b.WriteString("\n")

	b.WriteString(statusDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Selected returns the chosen variant id, or "" if none was chosen.
func (m MenuModel) Selected() string {
	return m.selected
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunMenu runs the variant picker and returns the chosen id, or "" when the
// user quit without choosing.
func RunMenu(width, height int) (string, error) {
	p := tea.NewProgram(
		NewMenuModel(width, height),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}
