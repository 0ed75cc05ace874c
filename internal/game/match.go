// Package game implements the pulse match: a ring growing in continuous
// time toward a fixed target outline, judgement of player activations
// against that outline, and the state machine sequencing a match from
// title screen to game over.
package game

// Phase represents the current stage of a match.
type Phase int

const (
	PhaseStart     Phase = iota // Title screen, waiting for a start command
	PhaseCountdown              // Pre-match 3-2-1 count
	PhasePlaying                // Pulse grows and activations are judged
	PhaseGameOver               // Result frozen, waiting for restart
)

// String returns the phase name for log output.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseCountdown:
		return "countdown"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Score holds the running and best results. Best never decreases, neither
// within a match nor across matches.
type Score struct {
	Current int
	Best    int
}

// countdownTimer is the single outstanding pre-match timer. The match owns
// at most one; starting a new countdown replaces it, and any transition
// that leaves the countdown phase drops it, so a cancelled count can never
// fire a stray transition later.
type countdownTimer struct {
	remaining int     // Whole seconds left to display
	fraction  float64 // Accumulated partial second
}

// Match owns all mutable state of a single player's game: the growing
// pulse, the score, and the phase sequencing. Presentation code reads it
// through the accessor methods and mutates it only through Start, Advance,
// Press, and CancelCountdown; calls that do not fit the current phase are
// silent no-ops, since a queued frame or key event can legitimately arrive
// just after a transition.
type Match struct {
	phase    Phase
	pulse    Pulse
	target   Target
	score    Score
	baseRate float64
	timer    *countdownTimer
}

// NewMatch creates a match in the start phase.
func NewMatch(target Target, baseRate float64) *Match {
	return &Match{
		phase:    PhaseStart,
		pulse:    Pulse{Rate: baseRate},
		target:   target,
		baseRate: baseRate,
	}
}

// Start begins a new match: zero score, pulse back at the base rate, and a
// fresh countdown. Valid from the start, countdown, and game-over phases;
// restarting during a countdown replaces the pending timer. Ignored while
// playing.
func (m *Match) Start() {
	if m.phase == PhasePlaying {
		return
	}
	m.score.Current = 0
	m.pulse.ResetForMatch(m.baseRate)
	m.timer = &countdownTimer{remaining: CountdownSeconds}
	m.phase = PhaseCountdown
}

// Advance moves the match forward by the elapsed frame time: it runs the
// countdown while counting and grows the pulse while playing, ending the
// match when the pulse overshoots the target. In any other phase it is a
// no-op.
func (m *Match) Advance(deltaSeconds float64) {
	switch m.phase {
	case PhaseCountdown:
		m.advanceCountdown(deltaSeconds)
	case PhasePlaying:
		m.pulse.Tick(deltaSeconds)
		if m.pulse.Overshot(m.target) {
			m.phase = PhaseGameOver
		}
	}
}

// advanceCountdown accumulates frame time into whole-second decrements.
// Reaching zero transitions to playing on the same advance. The leftover
// fraction of the crossing frame is not fed into the first pulse tick; the
// caller resynchronizes its clock on the phase change instead.
func (m *Match) advanceCountdown(deltaSeconds float64) {
	t := m.timer
	if t == nil {
		return
	}
	t.fraction += deltaSeconds
	for t.fraction >= 1 {
		t.fraction--
		t.remaining--
		if t.remaining <= 0 {
			m.timer = nil
			m.pulse.ResetForMatch(m.baseRate)
			m.phase = PhasePlaying
			return
		}
	}
}

// Press judges a single activation against the pulse radius at this
// instant. A hit or perfect scores and restarts the pulse at a higher
// rate; a miss ends the match. The second return is false when the press
// arrived outside the playing phase and was ignored.
func (m *Match) Press() (Outcome, bool) {
	if m.phase != PhasePlaying {
		return Miss, false
	}
	out := Judge(m.pulse.Radius, m.target)
	if out == Miss {
		m.phase = PhaseGameOver
		return out, true
	}
	m.score.Current += out.Points()
	if m.score.Current > m.score.Best {
		m.score.Best = m.score.Current
	}
	m.pulse.ResetForHit()
	return out, true
}

// CancelCountdown cancels a pending countdown and returns the match to the
// start phase, so a torn-down session cannot leave a timer behind. No-op
// in any other phase.
func (m *Match) CancelCountdown() {
	if m.phase != PhaseCountdown {
		return
	}
	m.timer = nil
	m.phase = PhaseStart
}

// SetBest raises the best score, typically from a persisted value at
// session start. Lower values are ignored.
func (m *Match) SetBest(n int) {
	if n > m.score.Best {
		m.score.Best = n
	}
}

// Phase returns the current phase.
func (m *Match) Phase() Phase {
	return m.phase
}

// Score returns the current and best scores.
func (m *Match) Score() Score {
	return m.score
}

// Radius returns the current pulse radius for rendering and judgement
// sampling.
func (m *Match) Radius() float64 {
	return m.pulse.Radius
}

// Rate returns the current growth rate in units per second.
func (m *Match) Rate() float64 {
	return m.pulse.Rate
}

// Target returns the immutable target geometry of this match.
func (m *Match) Target() Target {
	return m.target
}

// CountdownRemaining returns the seconds left on a pending countdown, or 0
// when no countdown is running.
func (m *Match) CountdownRemaining() int {
	if m.timer == nil {
		return 0
	}
	return m.timer.remaining
}
