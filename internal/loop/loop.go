// Package loop runs one player's session: frame pacing, input decoding,
// match advancement, and drawing, in the classic Input → Update → Draw
// cycle. Every terminal (local or SSH) gets its own Session.
package loop

import (
	"bufio"
	"io"
	"time"

	"github.com/x444dyx/pulse/internal/clock"
	"github.com/x444dyx/pulse/internal/draw"
	"github.com/x444dyx/pulse/internal/fx"
	"github.com/x444dyx/pulse/internal/game"
	"github.com/x444dyx/pulse/internal/input"
	"github.com/x444dyx/pulse/internal/session"
	"github.com/x444dyx/pulse/internal/shape"
	"github.com/x444dyx/pulse/internal/share"
)

// Logical coordinate space. The target ring sits in the middle; the space
// leaves room for the overshoot band around it.
const (
	logicalSize   = 400.0 // Width and height (height in sub-pixels)
	logicalCenter = logicalSize / 2
)

// Max render height in rows. The render area is clamped to a 2:1
// column/row ratio so the half-block sub-pixels are square and circles
// stay round; the implied max width is maxTermHeight*2 columns.
const maxTermHeight = 80

// Visual timers, in seconds.
const (
	outcomeFlashSeconds = 0.8 // How long the hit/perfect flash stays up
	noticeSeconds       = 2.0 // How long the copy confirmation stays up
)

// Options configures a session.
type Options struct {
	TermSizeFunc draw.TermSizeFunc // nil means os.Stdout
	Shape        shape.ID          // Initial target shape (loaded preference)
	Best         int               // Best score loaded from persistence
	ShareURL     string            // Canonical URL appended to share messages
	Registry     *session.Registry // Optional SSH lobby registry

	// OnShapeChange and OnBestChange report preference and best-score
	// changes for external persistence. Either may be nil.
	OnShapeChange func(shape.ID)
	OnBestChange  func(int)
}

// Session owns everything one player's game needs. The match and pulse
// are mutated only from the session's loop goroutine; presentation state
// (glow, notices, particles) lives here and is cleared on phase changes
// and teardown, same as the core's cancellation discipline.
type Session struct {
	match  *game.Match
	driver clock.Driver
	stream *input.Stream
	copier *share.Copier

	canvas *draw.Canvas
	cw     *draw.ChunkWriter
	writer io.Writer

	termSizeFunc draw.TermSizeFunc
	opts         Options

	sel       shape.ID
	running   bool
	prevPhase game.Phase

	// Visual-only state, decremented by frame delta
	effects     fx.System
	outcomeTime float64 // Seconds of outcome flash remaining
	outcomeText string
	noticeTime  float64 // Seconds of copy confirmation remaining
}

// Run creates a session over the given reader/writer and blocks until the
// player quits or the reader closes.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	s := NewSession(r, w, opts)
	return s.Run()
}

// NewSession creates a session ready to run.
func NewSession(r *bufio.Reader, w io.Writer, opts Options) *Session {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}

	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, logicalSize, logicalSize)
	canvas.SetOffset(offsetCol, offsetRow)

	match := game.NewMatch(game.DefaultTarget(), game.BaseGrowthRate)
	match.SetBest(opts.Best)

	return &Session{
		match:        match,
		stream:       input.StartStream(r),
		copier:       share.NewCopier(w),
		canvas:       canvas,
		cw:           draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		termSizeFunc: termSizeFunc,
		opts:         opts,
		sel:          shape.Normalize(opts.Shape),
		running:      true,
		prevPhase:    match.Phase(),
	}
}

// Run drives the session loop. It restores the terminal and cancels any
// pending countdown on the way out, so a dropped connection cannot leave
// a timer or a cursor-less terminal behind.
func (s *Session) Run() error {
	draw.HideCursor(s.writer)
	defer draw.ShowCursor(s.writer)
	draw.ClearScreen(s.writer)
	defer draw.ClearScreen(s.writer)
	defer s.teardown()

	if s.opts.Registry != nil {
		s.opts.Registry.Join()
		defer s.opts.Registry.Leave()
	}

	for s.running {
		frameStart := time.Now()
		delta := s.driver.OnFrame(clock.Now())

		// ===== INPUT PHASE =====
		events, closed := s.stream.ReadEvents()
		if closed {
			s.running = false
			break
		}
		for _, e := range events {
			s.handleEvent(e)
		}

		// ===== UPDATE PHASE =====
		s.match.Advance(delta)
		s.handlePhaseChange()
		s.updateVisuals(delta)
		s.updateScreen()

		// ===== DRAW PHASE =====
		if err := s.drawFrame(); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < clock.FrameTime {
			time.Sleep(clock.FrameTime - elapsed)
		}
	}

	return nil
}

// teardown cancels everything a session may leave pending.
func (s *Session) teardown() {
	s.match.CancelCountdown()
	s.clearVisuals()
}

// handleEvent applies one key event. Events that do not fit the current
// phase are ignored, matching the engine's out-of-phase policy.
func (s *Session) handleEvent(e input.Event) {
	switch e {
	case input.EventQuit:
		s.running = false

	case input.EventActivate:
		switch s.match.Phase() {
		case game.PhaseStart, game.PhaseGameOver:
			s.match.Start()
		case game.PhasePlaying:
			s.press()
		}

	case input.EventShape:
		// Shape changes are cosmetic, but mid-play they would move the
		// outline under the player's eye, so only allow them on menus.
		if s.match.Phase() == game.PhaseStart || s.match.Phase() == game.PhaseGameOver {
			s.sel = shape.Next(s.sel)
			if s.opts.OnShapeChange != nil {
				s.opts.OnShapeChange(s.sel)
			}
		}

	case input.EventCopy:
		if s.match.Phase() == game.PhaseGameOver {
			s.copyShareMessage()
		}
	}
}

// press judges the pulse at this instant, before this frame's tick.
func (s *Session) press() {
	radius := s.match.Radius()
	out, ok := s.match.Press()
	if !ok {
		return
	}

	switch out {
	case game.Perfect:
		s.outcomeText = "PERFECT  +2"
		s.outcomeTime = outcomeFlashSeconds
		s.effects.BurstRing(logicalCenter, logicalCenter, radius, 48)
	case game.Hit:
		s.outcomeText = "HIT  +1"
		s.outcomeTime = outcomeFlashSeconds
	}
}

// copyShareMessage delivers the share message via OSC 52. The notice only
// shows on success; delivery failure degrades to its absence.
func (s *Session) copyShareMessage() {
	plain, _ := share.Message(s.match.Score().Current, s.opts.ShareURL)
	if err := s.copier.Copy(plain); err != nil {
		return
	}
	s.noticeTime = noticeSeconds
}

// handlePhaseChange reacts to the match moving between phases this frame.
func (s *Session) handlePhaseChange() {
	phase := s.match.Phase()
	if phase == s.prevPhase {
		return
	}

	s.clearVisuals()
	switch phase {
	case game.PhasePlaying:
		// First playing delta must be zero: time spent counting down or
		// on menus is never integrated into the pulse.
		s.driver.Resync()
	case game.PhaseGameOver:
		s.finishMatch()
	}

	// Phase screens differ in layout, redraw from a blank terminal.
	s.cw.WriteString("\033[H\033[2J")
	s.canvas.ForceRedraw()
	s.prevPhase = phase
}

// finishMatch reports the frozen result to the persistence hook and the
// lobby registry.
func (s *Session) finishMatch() {
	score := s.match.Score()
	if s.opts.OnBestChange != nil && score.Best > s.opts.Best {
		s.opts.Best = score.Best
		s.opts.OnBestChange(score.Best)
	}
	if s.opts.Registry != nil {
		s.opts.Registry.RecordMatch(score.Current)
	}
}

// updateVisuals advances the cosmetic timers and particles.
func (s *Session) updateVisuals(delta float64) {
	if s.outcomeTime > 0 {
		s.outcomeTime -= delta
		if s.outcomeTime < 0 {
			s.outcomeTime = 0
		}
	}
	if s.noticeTime > 0 {
		s.noticeTime -= delta
		if s.noticeTime < 0 {
			s.noticeTime = 0
		}
	}
	s.effects.Update(delta)
}

// clearVisuals drops all cosmetic state at once.
func (s *Session) clearVisuals() {
	s.outcomeTime = 0
	s.outcomeText = ""
	s.noticeTime = 0
	s.effects.Clear()
}

// updateScreen handles terminal resize, clamping to the max render
// resolution. Real size changes clear the terminal so residual pixels
// outside the new canvas area disappear.
func (s *Session) updateScreen() {
	termWidth, termHeight, err := s.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != s.canvas.TerminalWidth() || renderHeight != s.canvas.TerminalHeight() ||
		offsetCol != s.canvas.OffsetCol() || offsetRow != s.canvas.OffsetRow() {
		draw.ClearScreen(s.writer)
		s.canvas.ForceRedraw()
	}

	s.canvas.Resize(renderWidth, renderHeight)
	s.canvas.SetOffset(offsetCol, offsetRow)
	s.cw.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution,
// forces the 2:1 column/row ratio that keeps sub-pixels square, and
// computes the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	if termWidth < 2 {
		termWidth = 2
	}
	if termHeight < 1 {
		termHeight = 1
	}

	renderHeight = termHeight
	if renderHeight > maxTermHeight {
		renderHeight = maxTermHeight
	}
	if renderHeight > termWidth/2 {
		renderHeight = termWidth / 2
	}
	renderWidth = renderHeight * 2

	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// drawFrame draws the geometry and the phase overlay for this frame.
func (s *Session) drawFrame() error {
	s.canvas.Clear()

	// The target outline is the backdrop of every phase.
	s.canvas.DrawShape(s.sel, logicalCenter, logicalCenter, game.TargetRadius)

	// The pulse shows while it is moving and stays frozen on game over,
	// so the player sees where the miss landed.
	phase := s.match.Phase()
	if phase == game.PhasePlaying || phase == game.PhaseGameOver {
		if r := s.match.Radius(); r > 0 {
			s.canvas.DrawShape(s.sel, logicalCenter, logicalCenter, r)
		}
	}

	s.effects.Draw(s.canvas)

	s.canvas.Render(s.cw)
	s.canvas.RenderBorder(s.cw)
	s.drawOverlay()

	return s.cw.Flush()
}
