package thicket

import (
	"fmt"
	"math"
)

const sliderThumbWidth = 8

// isIncreasingKey reports whether key raises a value that grows in
// direction.
func isIncreasingKey(key Key, direction Direction) bool {
	if direction.Inverted() {
		return key == KeyLeft || key == KeyDown
	}
	return key == KeyRight || key == KeyUp
}

// isDecreasingKey reports whether key lowers a value that grows in
// direction.
func isDecreasingKey(key Key, direction Direction) bool {
	if direction.Inverted() {
		return key == KeyRight || key == KeyUp
	}
	return key == KeyLeft || key == KeyDown
}

// LabelUpdater computes a slider label from its value.
type LabelUpdater func(value float64) string

// Slider picks a float64 value in [min, max] snapped to a step. Vertical
// sliders are painted by rotating the horizontal rendering.
type Slider struct {
	BaseWidget
	min, max float64
	step     float64
	value    float64

	axis      Axis
	direction Direction
	dragging  bool
	dragged   bool

	coordToValueRatio float64
	valueToCoordRatio float64

	label          string
	labelAlignment HorizontalAlignment
	labelUpdater   LabelUpdater

	// OnValueChanged is called whenever the user changes the value.
	OnValueChanged func(value float64)
	// OnDragFinished is called when the user stops dragging or clicks the
	// track.
	OnDragFinished func(value float64)
}

// NewSlider creates a horizontal slider over [min, max] with the given step.
// Panics with ErrInvalidArgument if max is not above min.
func NewSlider(min, max, step float64) *Slider {
	return NewSliderAxis(min, max, step, AxisHorizontal)
}

// NewSliderAxis creates a slider along axis. Horizontal sliders grow to the
// right and vertical ones grow upward.
func NewSliderAxis(min, max, step float64, axis Axis) *Slider {
	if max <= min {
		fail(ErrInvalidArgument, "slider min %v must be below max %v", min, max)
	}
	s := &Slider{
		min:            min,
		max:            max,
		step:           step,
		value:          min,
		axis:           axis,
		direction:      DirectionRight,
		labelAlignment: AlignCenter,
	}
	if axis == AxisVertical {
		s.direction = DirectionUp
	}
	s.self = s
	return s
}

func (s *Slider) CanResize() bool { return true }
func (s *Slider) CanFocus() bool  { return true }

// SetSize resizes the slider and recomputes the pixel to value ratios.
func (s *Slider) SetSize(width, height int) {
	s.BaseWidget.SetSize(width, height)
	s.updateRatios()
}

func (s *Slider) updateRatios() {
	track := s.axis.Choose(s.width, s.height) - sliderThumbWidth
	if track <= 0 {
		s.coordToValueRatio, s.valueToCoordRatio = 0, 0
		return
	}
	s.coordToValueRatio = float64(track) / (s.max - s.min)
	s.valueToCoordRatio = 1 / s.coordToValueRatio
}

// Min returns the lowest value.
func (s *Slider) Min() float64 { return s.min }

// Max returns the highest value.
func (s *Slider) Max() float64 { return s.max }

// Step returns the snapping step, 0 for continuous values.
func (s *Slider) Step() float64 { return s.step }

// Value returns the current value.
func (s *Slider) Value() float64 { return s.value }

// SetValue sets the value, snapped and clamped, without calling
// OnValueChanged. The label updater still runs.
func (s *Slider) SetValue(value float64) {
	s.value = s.snap(value)
	s.updateLabel()
}

// Axis returns the slider axis.
func (s *Slider) Axis() Axis { return s.axis }

// Direction returns the direction the value grows in.
func (s *Slider) Direction() Direction { return s.direction }

// SetDirection sets the direction the value grows in. Panics with
// ErrInvalidArgument if direction does not lie along the slider's axis.
func (s *Slider) SetDirection(direction Direction) {
	vertical := direction == DirectionUp || direction == DirectionDown
	if vertical != (s.axis == AxisVertical) {
		fail(ErrInvalidArgument, "direction %d on %v slider", direction, s.axis)
	}
	s.direction = direction
}

// IsDragging reports whether the thumb is being dragged.
func (s *Slider) IsDragging() bool { return s.dragging }

// Label returns the label drawn over the track.
func (s *Slider) Label() string { return s.label }

// SetLabel sets the label drawn over the track.
func (s *Slider) SetLabel(label string) { s.label = label }

// SetLabelAlignment sets the label alignment.
func (s *Slider) SetLabelAlignment(a HorizontalAlignment) { s.labelAlignment = a }

// SetLabelUpdater installs fn to recompute the label from the value and
// applies it immediately.
func (s *Slider) SetLabelUpdater(fn LabelUpdater) {
	s.labelUpdater = fn
	s.updateLabel()
}

// FormatLabel returns a LabelUpdater printing prefix followed by the value
// with the given number of decimals.
func FormatLabel(prefix string, decimals int) LabelUpdater {
	return func(value float64) string {
		return fmt.Sprintf("%s%.*f", prefix, decimals, value)
	}
}

func (s *Slider) updateLabel() {
	if s.labelUpdater != nil {
		s.label = s.labelUpdater(s.value)
	}
}

// snap rounds value to the nearest step from min and clamps it.
func (s *Slider) snap(value float64) float64 {
	if s.step > 0 {
		value = math.Round((value-s.min)/s.step)*s.step + s.min
	}
	return math.Min(math.Max(value, s.min), s.max)
}

func (s *Slider) changeValue(value float64) {
	old := s.value
	s.value = s.snap(value)
	if s.value != old {
		s.updateLabel()
		if s.OnValueChanged != nil {
			s.OnValueChanged(s.value)
		}
	}
}

func (s *Slider) finishDrag() {
	if s.OnDragFinished != nil {
		s.OnDragFinished(s.value)
	}
}

// moveSlider sets the value from a local pointer position, centering the
// thumb on the pointer.
func (s *Slider) moveSlider(x, y int) {
	var axisPos int
	switch s.direction {
	case DirectionUp:
		axisPos = s.height - y
	case DirectionDown:
		axisPos = y
	case DirectionLeft:
		axisPos = s.width - x
	default:
		axisPos = x
	}
	pos := axisPos - sliderThumbWidth/2
	s.changeValue(s.min + float64(pos)*s.valueToCoordRatio)
}

// isMouseInsideBounds is inclusive on the far edges so the track ends are
// reachable.
func (s *Slider) isMouseInsideBounds(x, y int) bool {
	return x >= 0 && x <= s.width && y >= 0 && y <= s.height
}

func (s *Slider) Paint(ctx DrawContext, x, y, mouseX, mouseY int) {
	aWidth, aHeight := s.width, s.height
	rotMouseX, rotMouseY := mouseX, mouseY
	if s.axis == AxisVertical {
		aWidth, aHeight = s.height, s.width
		rotMouseX, rotMouseY = mouseY, mouseX
		if s.direction == DirectionUp {
			rotMouseX = s.height - mouseY
		}
	} else if s.direction == DirectionLeft {
		rotMouseX = s.width - mouseX
	}

	ctx.PushPose()
	ctx.Translate(float64(x), float64(y))
	if s.axis == AxisVertical {
		ctx.Translate(0, float64(s.height))
		ctx.Rotate(270)
	}

	style := ctx.Style()
	track := SpriteSlider
	if s.focused {
		track = SpriteSliderFocused
	}
	BlitSprite(ctx, StyledSprite(track, style), 0, 0, aWidth, aHeight, ColorWhite)

	thumbX := int(math.Round(s.coordToValueRatio * (s.value - s.min)))
	hovering := rotMouseX >= thumbX && rotMouseX <= thumbX+sliderThumbWidth &&
		rotMouseY >= 0 && rotMouseY <= aHeight
	thumb := SpriteSliderHandle
	if s.dragging || hovering {
		thumb = SpriteSliderHandleHovered
	}
	BlitSprite(ctx, StyledSprite(thumb, style), thumbX, 0, sliderThumbWidth, aHeight, ColorWhite)

	if s.label != "" {
		c := SliderLabelColor
		if s.isMouseInsideBounds(mouseX, mouseY) {
			c = SliderLabelColorHovered
		}
		DrawString(ctx, s.label, s.labelAlignment, 2, aHeight/2-4, aWidth-4, c, true)
	}
	ctx.PopPose()
}

func (s *Slider) OnMouseDown(x, y int, button MouseButton) InputResult {
	if !s.isMouseInsideBounds(x, y) {
		return InputIgnored
	}
	s.RequestFocus()
	s.dragged = false
	return InputProcessed
}

func (s *Slider) OnMouseDrag(x, y int, button MouseButton, deltaX, deltaY float64) InputResult {
	if !s.focused {
		return InputIgnored
	}
	s.dragging = true
	s.moveSlider(x, y)
	return InputProcessed
}

func (s *Slider) OnMouseUp(x, y int, button MouseButton) InputResult {
	if !s.dragging {
		return InputIgnored
	}
	s.dragging = false
	s.dragged = true
	s.finishDrag()
	return InputProcessed
}

// OnClick jumps to the clicked position unless the click ends a drag.
func (s *Slider) OnClick(x, y int, button MouseButton) InputResult {
	if s.dragged {
		s.dragged = false
		return InputProcessed
	}
	s.moveSlider(x, y)
	s.finishDrag()
	return InputProcessed
}

func (s *Slider) OnMouseScroll(x, y int, horizontal, vertical float64) InputResult {
	amount := vertical
	if s.direction.Inverted() {
		amount = -amount
	}
	s.changeValue(s.value + amount*s.keyStep())
	return InputProcessed
}

func (s *Slider) OnKeyPressed(ch rune, key Key, mods KeyModifiers) InputResult {
	switch {
	case key == KeyHome:
		s.changeValue(s.min)
	case key == KeyEnd:
		s.changeValue(s.max)
	case isIncreasingKey(key, s.direction):
		s.changeValue(s.value + s.keyStep())
	case isDecreasingKey(key, s.direction):
		s.changeValue(s.value - s.keyStep())
	default:
		return InputIgnored
	}
	return InputProcessed
}

// keyStep is the change for one key press: the step, or a hundredth of the
// range for continuous sliders.
func (s *Slider) keyStep() float64 {
	if s.step > 0 {
		return s.step
	}
	return (s.max - s.min) / 100
}
