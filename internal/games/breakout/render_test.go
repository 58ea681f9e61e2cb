package breakout

import (
	"fmt"
	"slices"
	"testing"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// recorder is a Surface that logs draw calls.
type recorder struct {
	w, h  float64
	calls []string
	texts []string

	strokeRects map[core.Color]int
	fillCircles int
}

func newRecorder(w, h float64) *recorder {
	return &recorder{w: w, h: h, strokeRects: make(map[core.Color]int)}
}

func (r *recorder) Size() (float64, float64) { return r.w, r.h }

func (r *recorder) Clear(bg core.Color) {
	r.calls = append(r.calls, "clear:"+bg.String())
}

func (r *recorder) FillRect(rect core.Rect, c core.Color) {
	r.calls = append(r.calls, fmt.Sprintf("fill:%v", rect))
}

func (r *recorder) StrokeRect(rect core.Rect, c core.Color) {
	r.calls = append(r.calls, "stroke")
	r.strokeRects[c]++
}

func (r *recorder) FillCircle(cx, cy, radius float64, c core.Color) {
	r.calls = append(r.calls, "circle")
	r.fillCircles++
}

func (r *recorder) StrokeCircle(cx, cy, radius float64, c core.Color) {
	r.calls = append(r.calls, "circle-outline")
}

func (r *recorder) Text(x, y float64, s string, c core.Color) {
	r.calls = append(r.calls, "text")
	r.texts = append(r.texts, s)
}

func (r *recorder) TextSize(s string) (float64, float64) {
	return float64(len(s)) * 6, 16
}

func TestRenderIdleFrame(t *testing.T) {
	e := newEngine(t, testConfig())
	dst := newRecorder(e.Size())

	e.Render(dst)

	if len(dst.calls) == 0 || dst.calls[0] != "clear:black" {
		t.Fatalf("first call = %v, expected clear:black", dst.calls)
	}
	if got := dst.strokeRects[core.ColorBlack]; got != e.grid.CountAlive() {
		t.Errorf("brick outlines = %d, expected %d", got, e.grid.CountAlive())
	}
	if dst.fillCircles != 1 {
		t.Errorf("ball drawn %d times, expected once", dst.fillCircles)
	}
	for _, want := range []string{"Score: 0", "Lives: 3", "Level: 1", "Press SPACE to start", e.Title()} {
		if !slices.Contains(dst.texts, want) {
			t.Errorf("texts %q missing %q", dst.texts, want)
		}
	}
}

func TestRenderSkipsDestroyedBricks(t *testing.T) {
	e := newEngine(t, testConfig())
	e.grid.At(0, 0).Alive = false
	e.grid.At(5, 13).Alive = false
	dst := newRecorder(e.Size())

	e.Render(dst)

	if got := dst.strokeRects[core.ColorBlack]; got != 6*14-2 {
		t.Errorf("brick outlines = %d, expected %d", got, 6*14-2)
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Engine)
		want  []string
		ball  bool
	}{
		{
			name:  "waiting for launch",
			setup: func(e *Engine) { e.Start() },
			want:  []string{"Press SPACE to launch"},
			ball:  true,
		},
		{
			name:  "paused",
			setup: func(e *Engine) { e.Start(); e.Pause() },
			want:  []string{"PAUSED", "Press P to resume"},
			ball:  true,
		},
		{
			name: "level complete",
			setup: func(e *Engine) {
				e.score = 42
				e.level = 2
				e.phase = core.PhaseLevelComplete
			},
			want: []string{"LEVEL 1 COMPLETE", "Score: 42  |  Press SPACE for level 2"},
			ball: true,
		},
		{
			name: "game over",
			setup: func(e *Engine) {
				e.score = 17
				e.lives = 0
				e.phase = core.PhaseGameOver
			},
			want: []string{"GAME OVER", "Score: 17  |  Press R to restart", "Lives: 0"},
			ball: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newEngine(t, testConfig())
			tc.setup(e)
			dst := newRecorder(e.Size())

			e.Render(dst)

			for _, want := range tc.want {
				if !slices.Contains(dst.texts, want) {
					t.Errorf("texts %q missing %q", dst.texts, want)
				}
			}
			if drawn := dst.fillCircles == 1; drawn != tc.ball {
				t.Errorf("ball drawn = %v, expected %v", drawn, tc.ball)
			}
		})
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	e := newEngine(t, testConfig())
	e.Start()
	e.Launch()
	before := e.Snapshot()

	e.Render(newRecorder(e.Size()))

	after := e.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("Render changed engine state")
	}
}
