package thicket

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when a host submits draw commands.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is opaque black.
var ColorBlack = Color{0, 0, 0, 1}

// ColorARGB converts a packed 0xAARRGGBB value into a Color.
func ColorARGB(argb uint32) Color {
	return Color{
		R: float64(argb>>16&0xFF) / 255,
		G: float64(argb>>8&0xFF) / 255,
		B: float64(argb&0xFF) / 255,
		A: float64(argb>>24&0xFF) / 255,
	}
}

// Multiply scales the RGB components by f, clamping to [0, 1]. Alpha is kept.
func (c Color) Multiply(f float64) Color {
	return Color{clamp01(c.R * f), clamp01(c.G * f), clamp01(c.B * f), c.A}
}

// WithAlpha returns c with its alpha component replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2i is an integer 2D point or size in GUI pixels.
type Vec2i struct {
	X, Y int
}

// Rect is an axis-aligned integer rectangle. The origin is at the top-left,
// with Y increasing downward.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether (x, y) lies inside the rectangle. The right and
// bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Insets is the padding between a panel's edges and its children.
type Insets struct {
	Top, Left, Bottom, Right int
}

var (
	// InsetsNone is zero padding on every side.
	InsetsNone = Insets{}
	// InsetsRootPanel is the padding used by root panels of a GUI.
	InsetsRootPanel = Insets{7, 7, 7, 7}
)

// UniformInsets returns insets with the same size on every side.
func UniformInsets(size int) Insets {
	return Insets{size, size, size, size}
}

// Width returns the combined horizontal padding.
func (i Insets) Width() int { return i.Left + i.Right }

// Height returns the combined vertical padding.
func (i Insets) Height() int { return i.Top + i.Bottom }

// Axis is a layout or scroll direction.
type Axis uint8

const (
	AxisHorizontal Axis = iota // along X
	AxisVertical               // along Y
)

// Choose returns h for a horizontal axis and v for a vertical axis.
func (a Axis) Choose(h, v int) int {
	if a == AxisVertical {
		return v
	}
	return h
}

// String returns "horizontal" or "vertical".
func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

// HorizontalAlignment positions content along the X axis.
type HorizontalAlignment uint8

const (
	AlignLeft   HorizontalAlignment = iota // flush with the left edge (default)
	AlignCenter                            // centered horizontally
	AlignRight                             // flush with the right edge
)

// VerticalAlignment positions content along the Y axis.
type VerticalAlignment uint8

const (
	AlignTop    VerticalAlignment = iota // flush with the top edge (default)
	AlignMiddle                          // centered vertically
	AlignBottom                          // flush with the bottom edge
)

// alignOffset returns the offset that places content of the given size
// within free space according to a start/center/end policy.
func alignOffset(free, policy int) int {
	if free <= 0 {
		return 0
	}
	switch policy {
	case 1:
		return free / 2
	case 2:
		return free
	}
	return 0
}

// Direction is the orientation in which a slider or bar value increases.
type Direction uint8

const (
	DirectionRight Direction = iota // increases left to right
	DirectionLeft                   // increases right to left
	DirectionUp                     // increases bottom to top
	DirectionDown                   // increases top to bottom
)

// Inverted reports whether increasing values run against the positive
// screen axis for keyboard purposes.
func (d Direction) Inverted() bool {
	return d == DirectionLeft || d == DirectionDown
}

// InputResult is returned by input handlers. InputProcessed stops
// propagation; InputIgnored lets the caller try the next candidate.
type InputResult uint8

const (
	InputIgnored   InputResult = iota // the widget did not handle the event
	InputProcessed                    // the event was consumed
)

// Or returns InputProcessed if either result is processed.
func (r InputResult) Or(other InputResult) InputResult {
	if r == InputProcessed || other == InputProcessed {
		return InputProcessed
	}
	return InputIgnored
}

// EventType identifies a kind of widget interaction event.
type EventType uint8

const (
	EventMouseDown  EventType = iota // a button was pressed over a widget
	EventMouseDrag                   // the pointer moved while a widget held capture
	EventMouseUp                     // the captured widget saw the button released
	EventClick                       // press and release landed on the same widget
	EventScroll                      // the wheel moved over a widget
	EventKeyPressed                  // a key was delivered to the focused widget
	EventFocusGained                 // a widget received focus
	EventFocusLost                   // a widget lost focus
)

var eventTypeNames = [...]string{
	"mouse_down", "mouse_drag", "mouse_up", "click",
	"scroll", "key_pressed", "focus_gained", "focus_lost",
}

// String returns a snake_case name for the event type.
func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
	MouseButtonNone                      // no button, as on wheel events
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Key is a host-independent key code. Hosts translate their native codes.
type Key uint16

const (
	KeyUnknown Key = iota
	KeyEnter
	KeyKPEnter
	KeySpace
	KeyTab
	KeyEscape
	KeyBackspace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// IsActivationKey reports whether key activates buttons and tab headers.
func IsActivationKey(key Key) bool {
	return key == KeyEnter || key == KeyKPEnter || key == KeySpace
}

// TextureID is an opaque texture token passed through to the host.
type TextureID string

// Texture references a region of a host texture by normalized UVs.
type Texture struct {
	ID             TextureID
	U1, V1, U2, V2 float64
}

// NewTexture returns a texture covering the whole image.
func NewTexture(id TextureID) Texture {
	return Texture{ID: id, U1: 0, V1: 0, U2: 1, V2: 1}
}

// Sub returns the region of t given by UVs relative to t.
func (t Texture) Sub(u1, v1, u2, v2 float64) Texture {
	du := t.U2 - t.U1
	dv := t.V2 - t.V1
	return Texture{
		ID: t.ID,
		U1: t.U1 + du*u1,
		V1: t.V1 + dv*v1,
		U2: t.U1 + du*u2,
		V2: t.V1 + dv*v2,
	}
}

// Icon is a square image drawn next to button and tab labels.
type Icon interface {
	Paint(ctx DrawContext, x, y, size int)
}

// TextureIcon is an Icon backed by a texture.
type TextureIcon struct {
	Texture Texture
	Tint    Color
}

// NewTextureIcon returns an untinted icon for the whole texture.
func NewTextureIcon(id TextureID) *TextureIcon {
	return &TextureIcon{Texture: NewTexture(id), Tint: ColorWhite}
}

// Paint draws the icon texture scaled to size x size.
func (i *TextureIcon) Paint(ctx DrawContext, x, y, size int) {
	ctx.DrawTexture(i.Texture, x, y, size, size, i.Tint)
}
