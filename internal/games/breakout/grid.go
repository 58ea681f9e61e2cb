// Package breakout implements the brick breaker game loop engine: paddle,
// ball and brick grid state, the per-step physics, and the
// score/lives/level state machine.
package breakout

import (
	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Brick represents a single brick in the grid.
type Brick struct {
	Row, Col int
	Rect     core.Rect
	Color    core.Color
	Points   int  // Points awarded when destroyed
	Present  bool // False for holes in a custom layout
	Alive    bool // Whether brick is still standing
}

// Grid is the row-major brick layout of one level.
type Grid struct {
	Rows   int
	Cols   int
	Bricks []Brick // index = row*Cols + col
}

// At returns the brick at (row, col).
func (g *Grid) At(row, col int) *Brick {
	return &g.Bricks[row*g.Cols+col]
}

// CountAlive returns the number of bricks still standing.
func (g *Grid) CountAlive() int {
	count := 0
	for i := range g.Bricks {
		if g.Bricks[i].Alive {
			count++
		}
	}
	return count
}

// Cleared reports whether every brick has been destroyed.
func (g *Grid) Cleared() bool {
	return g.CountAlive() == 0
}

// Clone creates a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	clone := &Grid{Rows: g.Rows, Cols: g.Cols, Bricks: make([]Brick, len(g.Bricks))}
	copy(clone.Bricks, g.Bricks)
	return clone
}

// BuildGrid lays out a fresh, fully alive grid from a validated config.
//
// Without a layout every cell holds a brick. With one, cells are read as:
//
//	'#' = brick worth the row's configured points
//	'.' = hole
//	'1'-'9' = brick worth the digit times the row's configured points
func BuildGrid(cfg config.Grid) *Grid {
	g := &Grid{
		Rows:   cfg.Rows,
		Cols:   cfg.Cols,
		Bricks: make([]Brick, cfg.Rows*cfg.Cols),
	}

	for row := range cfg.Rows {
		points := cfg.Points[row%len(cfg.Points)]
		color := rowColor(cfg.Colors, row)
		y := cfg.OffsetY + float64(row)*(cfg.BrickHeight+cfg.Padding)

		for col := range cfg.Cols {
			x := cfg.OffsetX + float64(col)*(cfg.BrickWidth+cfg.Padding)
			b := Brick{
				Row:     row,
				Col:     col,
				Rect:    core.NewRect(x, y, cfg.BrickWidth, cfg.BrickHeight),
				Color:   color,
				Points:  points,
				Present: true,
			}

			if len(cfg.Layout) > 0 {
				switch ch := cfg.Layout[row][col]; {
				case ch >= '1' && ch <= '9':
					b.Points = points * int(ch-'0')
				case ch != '#':
					b.Present = false
				}
			}

			b.Alive = b.Present
			g.Bricks[row*cfg.Cols+col] = b
		}
	}
	return g
}

// defaultRowColors is used when a config lists no colors.
var defaultRowColors = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorBlue,
	core.ColorPurple,
}

func rowColor(names []string, row int) core.Color {
	if len(names) == 0 {
		return defaultRowColors[row%len(defaultRowColors)]
	}
	c, ok := core.ParseColor(names[row%len(names)])
	if !ok {
		return core.ColorDefault
	}
	return c
}
