// Package clock supplies frame timestamps and turns them into the delta
// times the simulation integrates over.
package clock

import "time"

// Frame pacing for the render loops.
const (
	TargetFPS = 60
	FrameTime = time.Second / TargetFPS
)

// MaxFrameGapMS is the largest frame gap integrated as elapsed time.
// Anything longer (suspended terminal, stalled SSH connection) makes the
// driver re-reference instead, so the pulse cannot leap past the target in
// a single frame the player never saw.
const MaxFrameGapMS = 250.0

// epoch anchors Now to a process-local monotonic zero.
var epoch = time.Now()

// Now returns a monotonically increasing timestamp in milliseconds.
func Now() float64 {
	return float64(time.Since(epoch)) / float64(time.Millisecond)
}

// Driver consumes per-frame millisecond timestamps and yields elapsed
// seconds. It keeps the sole reference timestamp; after construction,
// Resync, or a frame gap the next delta is zero rather than the span of
// the gap.
type Driver struct {
	last   float64
	primed bool
}

// OnFrame records the frame timestamp and returns the seconds elapsed
// since the previous frame, or 0 when there is no usable reference.
func (d *Driver) OnFrame(timestampMS float64) float64 {
	if !d.primed {
		d.last = timestampMS
		d.primed = true
		return 0
	}
	deltaMS := timestampMS - d.last
	d.last = timestampMS
	if deltaMS < 0 || deltaMS > MaxFrameGapMS {
		return 0
	}
	return deltaMS / 1000
}

// Resync drops the reference timestamp so the next frame's delta is zero.
// Called when play (re)starts, so time spent on menus is never integrated.
func (d *Driver) Resync() {
	d.primed = false
}
