package thicket

import "time"

// DefaultFrameTime is how long each sprite frame is shown.
const DefaultFrameTime = 300 * time.Millisecond

// Sprite is a fixed-size animated image. Frames are played from a queue;
// when the queue runs dry the idle function, if set, schedules more. Frame
// timing is read from the GUI clock while painting.
type Sprite struct {
	BaseWidget
	frames  []Texture
	current int
	pending []int
	timer   *FrameTimer
	idle    func(s Style) []int
}

// NewSprite creates a sprite of the given size showing frames[0].
// Panics with ErrInvalidArgument if frames is empty.
func NewSprite(width, height int, frames ...Texture) *Sprite {
	if len(frames) == 0 {
		fail(ErrInvalidArgument, "sprite has no frames")
	}
	s := &Sprite{
		frames: frames,
		timer:  NewFrameTimer(DefaultFrameTime),
	}
	s.width, s.height = width, height
	s.self = s
	return s
}

// NewStripSprite cuts a horizontal strip texture into count equal frames.
func NewStripSprite(id TextureID, count, width, height int) *Sprite {
	if count <= 0 {
		fail(ErrInvalidArgument, "sprite frame count %d", count)
	}
	frames := make([]Texture, count)
	full := NewTexture(id)
	step := 1 / float64(count)
	for i := range frames {
		frames[i] = full.Sub(float64(i)*step, 0, float64(i+1)*step, 1)
	}
	return NewSprite(width, height, frames...)
}

// Frame returns the index of the frame being shown.
func (s *Sprite) Frame() int { return s.current }

// FrameCount returns the number of frames.
func (s *Sprite) FrameCount() int { return len(s.frames) }

// SetFrameTime sets how long each frame is shown.
func (s *Sprite) SetFrameTime(d time.Duration) { s.timer.SetInterval(d) }

// Schedule appends frame indexes to the play queue. Panics with
// ErrIndexOutOfRange for an index outside the frame list.
func (s *Sprite) Schedule(frames ...int) {
	for _, f := range frames {
		if f < 0 || f >= len(s.frames) {
			fail(ErrIndexOutOfRange, "sprite frame %d of %d", f, len(s.frames))
		}
	}
	s.pending = append(s.pending, frames...)
}

// Pending returns the number of queued frames.
func (s *Sprite) Pending() int { return len(s.pending) }

// SetIdle sets the function asked for more frames when the queue is empty.
// It receives the style of the paint pass.
func (s *Sprite) SetIdle(fn func(s Style) []int) { s.idle = fn }

// Loop makes the sprite repeat frames forever.
func (s *Sprite) Loop(frames ...int) {
	s.SetIdle(func(Style) []int { return frames })
}

func (s *Sprite) Paint(ctx DrawContext, x, y, mouseX, mouseY int) {
	if len(s.pending) == 0 && s.idle != nil {
		s.Schedule(s.idle(ctx.Style())...)
	}
	ctx.DrawTexture(s.frames[s.current], x, y, s.width, s.height, ColorWhite)
	if s.timer.Advance(s.clock().Now()) && len(s.pending) > 0 {
		s.current = s.pending[0]
		s.pending = s.pending[1:]
	}
}
