package thicket

// DefaultScrollingSpeed is how many values one wheel notch scrolls.
const DefaultScrollingSpeed = 4

const minHandleSize = 6

// ScrollBar selects a window of window values out of maxValue. Its value is
// always within [0, max(0, maxValue-window)]; every mutation re-clamps.
type ScrollBar struct {
	BaseWidget
	axis           Axis
	value          int
	maxValue       int
	window         int
	scrollingSpeed int

	anchor      int
	anchorValue int
	sliding     bool

	// OnChanged is called with the new value whenever the user moves the bar.
	OnChanged func(value int)
}

// NewScrollBar creates a scroll bar along axis with a maximum of 100 and a
// window of 16.
func NewScrollBar(axis Axis) *ScrollBar {
	s := &ScrollBar{
		axis:           axis,
		maxValue:       100,
		window:         16,
		scrollingSpeed: DefaultScrollingSpeed,
		anchor:         -1,
		anchorValue:    -1,
	}
	s.self = s
	return s
}

func (s *ScrollBar) CanResize() bool { return true }
func (s *ScrollBar) CanFocus() bool  { return true }

// Axis returns the scroll axis.
func (s *ScrollBar) Axis() Axis { return s.axis }

// Value returns the first visible value.
func (s *ScrollBar) Value() int { return s.value }

// SetValue sets the value, clamped to the valid range.
func (s *ScrollBar) SetValue(value int) *ScrollBar {
	s.value = value
	s.clamp()
	return s
}

// MaxValue returns the total number of values.
func (s *ScrollBar) MaxValue() int { return s.maxValue }

// SetMaxValue sets the total number of values and re-clamps the value.
func (s *ScrollBar) SetMaxValue(maxValue int) *ScrollBar {
	s.maxValue = maxValue
	s.clamp()
	return s
}

// Window returns the number of values visible at once.
func (s *ScrollBar) Window() int { return s.window }

// SetWindow sets the number of values visible at once and re-clamps the
// value.
func (s *ScrollBar) SetWindow(window int) *ScrollBar {
	s.window = window
	s.clamp()
	return s
}

// ScrollingSpeed returns the values scrolled per wheel notch.
func (s *ScrollBar) ScrollingSpeed() int { return s.scrollingSpeed }

// SetScrollingSpeed sets the values scrolled per wheel notch. Panics with
// ErrInvalidArgument if speed is not positive.
func (s *ScrollBar) SetScrollingSpeed(speed int) *ScrollBar {
	if speed < 0 {
		fail(ErrInvalidArgument, "negative scrolling speed %d", speed)
	}
	if speed == 0 {
		fail(ErrInvalidArgument, "zero scrolling speed")
	}
	s.scrollingSpeed = speed
	return s
}

// MaxScrollValue returns the largest valid value.
func (s *ScrollBar) MaxScrollValue() int { return max(0, s.maxValue-s.window) }

// IsSliding reports whether the handle is being dragged.
func (s *ScrollBar) IsSliding() bool { return s.sliding }

func (s *ScrollBar) clamp() {
	s.value = min(s.value, s.maxValue-s.window)
	s.value = max(s.value, 0)
}

func (s *ScrollBar) setUserValue(value int) {
	old := s.value
	s.SetValue(value)
	if s.value != old && s.OnChanged != nil {
		s.OnChanged(s.value)
	}
}

// barLength is the track length inside the one pixel border.
func (s *ScrollBar) barLength() int {
	return s.axis.Choose(s.width, s.height) - 2
}

// HandleSize returns the handle length in pixels, never below 6.
func (s *ScrollBar) HandleSize() int {
	percentage := float32(1)
	if s.window < s.maxValue {
		percentage = float32(s.window) / float32(s.maxValue)
	}
	return max(int(percentage*float32(s.barLength())), minHandleSize)
}

// MovableDistance returns how far the handle can travel in pixels.
func (s *ScrollBar) MovableDistance() int {
	return s.barLength() - s.HandleSize()
}

// PixelsToValues converts a handle offset in pixels to a value offset.
func (s *ScrollBar) PixelsToValues(pixels int) int {
	bar := s.MovableDistance()
	if bar <= 0 {
		return 0
	}
	percent := float32(pixels) / float32(bar)
	return int(percent * float32(s.maxValue-s.window))
}

// HandlePosition returns the handle offset along the track in pixels.
func (s *ScrollBar) HandlePosition() int {
	percent := float32(s.value) / float32(max(s.maxValue-s.window, 1))
	return int(percent * float32(s.MovableDistance()))
}

func (s *ScrollBar) Paint(ctx DrawContext, x, y, mouseX, mouseY int) {
	style := ctx.Style()
	BlitSprite(ctx, StyledSprite(SpriteScrollBarBackground, style), x, y, s.width, s.height, ColorWhite)
	if s.maxValue <= 0 {
		return
	}

	thumb := StyledSprite(SpriteScrollBarThumb, style)
	hovered := StyledSprite(SpriteScrollBarHovered, style)
	if s.sliding {
		thumb = StyledSprite(SpriteScrollBarPressed, style)
	} else if s.IsWithinBounds(mouseX, mouseY) {
		thumb = hovered
	}

	w, h := s.HandleSize(), s.height-2
	ctx.PushPose()
	if s.axis == AxisHorizontal {
		ctx.Translate(float64(x+1+s.HandlePosition()), float64(y+1))
	} else {
		ctx.Translate(float64(x+1), float64(y+1+s.HandlePosition()))
		w, h = s.width-2, s.HandleSize()
	}
	BlitSprite(ctx, thumb, 0, 0, w, h, ColorWhite)
	if s.focused {
		BlitSprite(ctx, hovered, 0, 0, w, h, ColorWhite)
	}
	ctx.PopPose()
}

func (s *ScrollBar) OnMouseDown(x, y int, button MouseButton) InputResult {
	s.RequestFocus()
	s.anchor = s.axis.Choose(x, y)
	s.anchorValue = s.value
	s.sliding = true
	return InputProcessed
}

func (s *ScrollBar) OnMouseDrag(x, y int, button MouseButton, deltaX, deltaY float64) InputResult {
	if !s.sliding {
		return InputProcessed
	}
	delta := s.axis.Choose(x, y) - s.anchor
	s.setUserValue(s.anchorValue + s.PixelsToValues(delta))
	return InputProcessed
}

func (s *ScrollBar) OnMouseUp(x, y int, button MouseButton) InputResult {
	s.anchor = -1
	s.anchorValue = -1
	s.sliding = false
	return InputProcessed
}

func (s *ScrollBar) OnKeyPressed(ch rune, key Key, mods KeyModifiers) InputResult {
	direction := DirectionRight
	if s.axis == AxisVertical {
		direction = DirectionDown
	}
	switch {
	case isIncreasingKey(key, direction):
		if s.value < s.MaxScrollValue() {
			s.setUserValue(s.value + 1)
		}
		return InputProcessed
	case isDecreasingKey(key, direction):
		if s.value > 0 {
			s.setUserValue(s.value - 1)
		}
		return InputProcessed
	}
	return InputIgnored
}

func (s *ScrollBar) OnMouseScroll(x, y int, horizontal, vertical float64) InputResult {
	s.setUserValue(s.value + int(horizontal-vertical)*s.scrollingSpeed)
	return InputProcessed
}
