package loop

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/x444dyx/pulse/internal/game"
	"github.com/x444dyx/pulse/internal/input"
	"github.com/x444dyx/pulse/internal/session"
	"github.com/x444dyx/pulse/internal/shape"
)

func TestClampTermSize(t *testing.T) {
	tests := []struct {
		name                   string
		termW, termH           int
		wantW, wantH           int
		wantOffCol, wantOffRow int
	}{
		{"wide terminal clamps to height", 200, 50, 100, 50, 50, 0},
		{"tall terminal clamps to width", 80, 60, 80, 40, 0, 10},
		{"huge terminal clamps to max", 400, 200, 160, 80, 120, 60},
		{"exact 2:1 fits", 100, 50, 100, 50, 0, 0},
		{"degenerate size stays positive", 0, 0, 2, 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, offCol, offRow := clampTermSize(tt.termW, tt.termH)
			if w != tt.wantW || h != tt.wantH {
				t.Fatalf("render size = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
			if w != h*2 {
				t.Fatalf("render area %dx%d is not 2:1", w, h)
			}
			if offCol != tt.wantOffCol || offRow != tt.wantOffRow {
				t.Fatalf("offset = (%d,%d), want (%d,%d)", offCol, offRow, tt.wantOffCol, tt.wantOffRow)
			}
		})
	}
}

// newTestSession builds a session over in-memory pipes with a fixed
// terminal size.
func newTestSession(t *testing.T, opts Options) (*Session, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = func() (int, int, error) { return 100, 50, nil }
	}
	s := NewSession(bufio.NewReader(strings.NewReader("")), &out, opts)
	return s, &out
}

// playMatch drives a session's match into the playing phase.
func playMatch(t *testing.T, s *Session) {
	t.Helper()
	s.handleEvent(input.EventActivate)
	s.match.Advance(float64(game.CountdownSeconds))
	s.handlePhaseChange()
	if s.match.Phase() != game.PhasePlaying {
		t.Fatalf("phase = %v, want playing", s.match.Phase())
	}
}

func TestActivateStartsMatchFromMenus(t *testing.T) {
	s, _ := newTestSession(t, Options{})
	s.handleEvent(input.EventActivate)
	if s.match.Phase() != game.PhaseCountdown {
		t.Fatalf("phase after activate = %v, want countdown", s.match.Phase())
	}
}

func TestShapeCyclesOnlyOnMenus(t *testing.T) {
	var saved shape.ID
	s, _ := newTestSession(t, Options{
		Shape:         shape.Circle,
		OnShapeChange: func(id shape.ID) { saved = id },
	})

	s.handleEvent(input.EventShape)
	if s.sel != shape.Square || saved != shape.Square {
		t.Fatalf("shape after cycle = %v (saved %v), want square", s.sel, saved)
	}

	playMatch(t, s)
	s.handleEvent(input.EventShape)
	if s.sel != shape.Square {
		t.Fatalf("shape changed mid-play to %v", s.sel)
	}
}

func TestPerfectPressFlashesAndBursts(t *testing.T) {
	s, _ := newTestSession(t, Options{})
	playMatch(t, s)

	s.match.Advance(1.0) // radius 120, dead center
	s.handleEvent(input.EventActivate)

	if s.outcomeTime <= 0 || !strings.Contains(s.outcomeText, "PERFECT") {
		t.Fatalf("no perfect flash: time=%v text=%q", s.outcomeTime, s.outcomeText)
	}
	if !s.effects.Active() {
		t.Fatal("no particle burst on perfect")
	}
	if got := s.match.Score().Current; got != 2 {
		t.Fatalf("score = %d, want 2", got)
	}
}

func TestMissClearsVisualsAndReportsBest(t *testing.T) {
	var reportedBest int
	registry := session.NewRegistry()
	s, _ := newTestSession(t, Options{
		Registry:     registry,
		OnBestChange: func(best int) { reportedBest = best },
	})
	playMatch(t, s)

	// Score once, then miss out.
	s.match.Advance(1.0)
	s.handleEvent(input.EventActivate) // perfect, +2
	s.match.Advance(0.1)
	s.handleEvent(input.EventActivate) // radius ~12.8: miss
	s.handlePhaseChange()

	if s.match.Phase() != game.PhaseGameOver {
		t.Fatalf("phase = %v, want game over", s.match.Phase())
	}
	if s.outcomeTime != 0 || s.effects.Active() {
		t.Fatal("visual state survived the phase change")
	}
	if reportedBest != 2 {
		t.Fatalf("reported best = %d, want 2", reportedBest)
	}
	if registry.Best() != 2 || registry.Matches() != 1 {
		t.Fatalf("registry best=%d matches=%d, want 2/1", registry.Best(), registry.Matches())
	}
}

func TestCopyOnlyOnGameOver(t *testing.T) {
	s, out := newTestSession(t, Options{ShareURL: "https://pulse.example.com"})

	// Copy on the title screen is a no-op.
	s.handleEvent(input.EventCopy)
	if s.noticeTime != 0 || out.Len() != 0 {
		t.Fatalf("copy on title screen wrote %q", out.String())
	}

	playMatch(t, s)
	s.match.Advance(0.1)
	s.handleEvent(input.EventActivate) // miss
	s.handlePhaseChange()

	s.handleEvent(input.EventCopy)
	if s.noticeTime != noticeSeconds {
		t.Fatalf("notice time = %v, want %v", s.noticeTime, noticeSeconds)
	}
	if !strings.Contains(out.String(), "]52;") {
		t.Fatalf("no OSC 52 sequence written: %q", out.String())
	}
}

func TestVisualTimersDecayAndClamp(t *testing.T) {
	s, _ := newTestSession(t, Options{})
	s.outcomeTime = 0.05
	s.noticeTime = 0.05

	s.updateVisuals(0.1)
	if s.outcomeTime != 0 || s.noticeTime != 0 {
		t.Fatalf("timers = %v/%v, want 0/0", s.outcomeTime, s.noticeTime)
	}
}

func TestTeardownCancelsCountdown(t *testing.T) {
	s, _ := newTestSession(t, Options{})
	s.handleEvent(input.EventActivate)
	s.effects.BurstRing(200, 200, 120, 8)

	s.teardown()
	if s.match.Phase() != game.PhaseStart {
		t.Fatalf("phase after teardown = %v, want start", s.match.Phase())
	}
	if s.effects.Active() {
		t.Fatal("particles survived teardown")
	}

	// The cancelled countdown must never complete.
	s.match.Advance(10)
	if s.match.Phase() != game.PhaseStart {
		t.Fatalf("cancelled countdown fired: phase = %v", s.match.Phase())
	}
}
