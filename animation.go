package thicket

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Clock reports monotonic time since an arbitrary origin. Animated widgets
// read it once per paint and derive their state from the elapsed time, so
// irregular frame delivery never speeds up or stalls an animation.
type Clock interface {
	Now() time.Duration
}

var processStart = time.Now()

type systemClock struct{}

func (systemClock) Now() time.Duration { return time.Since(processStart) }

// SystemClock is the process monotonic clock.
var SystemClock Clock = systemClock{}

// ManualClock is a Clock that only moves when told to.
type ManualClock struct {
	now time.Duration
}

// Now implements Clock.
func (c *ManualClock) Now() time.Duration { return c.now }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.now += d }

// Set moves the clock to t.
func (c *ManualClock) Set(t time.Duration) { c.now = t }

// Fader eases a value toward a target over a fixed duration. Each call to
// Value advances the underlying tween by the clock time elapsed since the
// previous call.
//
// There is no global animation manager; the owner polls Value while painting.
type Fader struct {
	tween    *gween.Tween
	duration time.Duration
	easing   ease.TweenFunc
	value    float32
	target   float32
	last     time.Duration
	started  bool
}

// NewFader creates a fader resting at value.
func NewFader(value float32, duration time.Duration, easing ease.TweenFunc) *Fader {
	if easing == nil {
		easing = ease.Linear
	}
	return &Fader{duration: duration, easing: easing, value: value, target: value}
}

// Target sets the value the fader moves toward. Changing the target
// restarts the tween from the current value.
func (f *Fader) Target(to float32) {
	if to == f.target {
		return
	}
	f.target = to
	f.tween = gween.New(f.value, to, float32(f.duration.Seconds()), f.easing)
}

// Value advances the fader to now and returns the current value.
func (f *Fader) Value(now time.Duration) float32 {
	if !f.started {
		f.started = true
		f.last = now
	}
	dt := now - f.last
	f.last = now
	if f.tween == nil {
		return f.value
	}
	v, done := f.tween.Update(float32(dt.Seconds()))
	f.value = v
	if done {
		f.value = f.target
		f.tween = nil
	}
	return f.value
}

// Done reports whether the fader has reached its target.
func (f *Fader) Done() bool { return f.tween == nil }

// FrameTimer accumulates clock time between polls and reports when a frame
// interval has passed. At most one frame elapses per poll, so a long stall
// never makes an animation skip ahead.
type FrameTimer struct {
	interval    time.Duration
	accumulated time.Duration
	last        time.Duration
	started     bool
}

// NewFrameTimer creates a timer firing every interval. Panics with
// ErrInvalidArgument if interval is not positive.
func NewFrameTimer(interval time.Duration) *FrameTimer {
	if interval <= 0 {
		fail(ErrInvalidArgument, "frame interval %v", interval)
	}
	return &FrameTimer{interval: interval}
}

// Interval returns the time between frames.
func (t *FrameTimer) Interval() time.Duration { return t.interval }

// SetInterval changes the time between frames. Panics with
// ErrInvalidArgument if interval is not positive.
func (t *FrameTimer) SetInterval(interval time.Duration) {
	if interval <= 0 {
		fail(ErrInvalidArgument, "frame interval %v", interval)
	}
	t.interval = interval
}

// Advance adds the time since the previous poll and reports whether a
// frame interval has been reached, restarting the accumulation if so. The
// first poll only records the time.
func (t *FrameTimer) Advance(now time.Duration) bool {
	if !t.started {
		t.started = true
		t.last = now
		return false
	}
	t.accumulated += now - t.last
	t.last = now
	if t.accumulated >= t.interval {
		t.accumulated = 0
		return true
	}
	return false
}
