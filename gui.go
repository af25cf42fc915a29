package thicket

import "time"

// EventSink is the interface for optional ECS integration.
// When set on a GUI, every dispatched widget event is forwarded to it.
type EventSink interface {
	EmitEvent(event WidgetEvent)
}

// WidgetEvent carries interaction data for scene-level callbacks and the
// ECS bridge.
type WidgetEvent struct {
	Type     EventType
	WidgetID WidgetID
	// Pointer position in GUI space and in the widget's local space.
	X, Y           int
	LocalX, LocalY int
	Button         MouseButton
	Modifiers      KeyModifiers
	// Key fields (valid for EventKeyPressed)
	Key  Key
	Char rune
	// Drag delta (EventMouseDrag) or wheel amounts (EventScroll).
	DeltaX, DeltaY float64
	// Result is what the receiving widget returned.
	Result InputResult
}

// PropertyDelegate exposes numbered integer properties owned by the host,
// such as furnace progress synced from a server, to widgets like Bar.
type PropertyDelegate interface {
	Get(index int) int
	Set(index, value int)
	Len() int
}

// IntProperties is a PropertyDelegate backed by a slice.
type IntProperties []int

// Get returns the property at index, or 0 when index is out of range.
func (p IntProperties) Get(index int) int {
	if index < 0 || index >= len(p) {
		return 0
	}
	return p[index]
}

// Set stores value at index. Out-of-range writes are dropped.
func (p IntProperties) Set(index, value int) {
	if index >= 0 && index < len(p) {
		p[index] = value
	}
}

// Len returns the number of properties.
func (p IntProperties) Len() int { return len(p) }

// painterAdder is implemented by widgets that install default backgrounds
// when GUI.AddPainters runs.
type painterAdder interface {
	AddPainters()
}

// GUI is the top-level object that owns the root panel, title metadata,
// the focus slot and pointer capture state.
type GUI struct {
	root Panel
	reg  *registry

	title          string
	titleColor     Color
	darkTitleColor Color
	titleAlignment HorizontalAlignment
	titlePos       Vec2i
	titleVisible   bool
	fullscreen     bool

	style      Style
	font       Font
	clock      Clock
	properties PropertyDelegate

	useDefaultRootBackground bool

	// Input state
	focus         Widget
	captured      Widget
	captureButton MouseButton
	lastX, lastY  int
	hovered       Widget

	sink     EventSink
	handlers handlerRegistry
	debug    bool
	drawList *DrawList
}

// NewGUI creates a GUI titled title with an empty grid root panel.
func NewGUI(title string) *GUI {
	g := &GUI{
		title:                    title,
		titleColor:               DefaultTextColor,
		darkTitleColor:           DefaultDarkTextColor,
		titlePos:                 Vec2i{X: 8, Y: 6},
		titleVisible:             true,
		useDefaultRootBackground: true,
		clock:                    SystemClock,
	}
	root := NewGridPanel()
	root.SetInsets(InsetsRootPanel)
	g.SetRoot(root)
	return g
}

// Root returns the root panel.
func (g *GUI) Root() Panel { return g.root }

// SetRoot replaces the root panel. The previous root's tree is detached
// from the GUI and focus and capture are cleared. Panics if root is nil,
// has a parent, or already belongs to another GUI.
func (g *GUI) SetRoot(root Panel) {
	if root == nil {
		panic("thicket: root panel is nil")
	}
	rb := root.base()
	if rb.parent != 0 {
		panic("thicket: root panel already has a parent")
	}
	if rb.reg != nil && rb.reg.gui != nil && rb.reg.gui != g {
		panic("thicket: root panel belongs to another GUI")
	}
	if g.reg != nil {
		g.setFocus(nil)
		g.captured = nil
		g.hovered = nil
		g.reg.gui = nil
	}
	if rb.reg == nil {
		newRegistry().add(root)
	}
	g.root = root
	g.reg = rb.reg
	g.reg.gui = g
}

// Widget returns the widget with the given ID if it belongs to this GUI.
func (g *GUI) Widget(id WidgetID) (Widget, bool) {
	w, ok := g.reg.widgets[id]
	return w, ok
}

// contains reports whether w is part of this GUI's tree.
func (g *GUI) contains(w Widget) bool {
	b := w.base()
	return b.reg == g.reg && g.reg.widgets[b.ID()] == w
}

// forget clears every GUI reference to the widget id, which is leaving the
// tree.
func (g *GUI) forget(id WidgetID) {
	if g.focus != nil && g.focus.base().ID() == id {
		g.setFocus(nil)
	}
	if g.captured != nil && g.captured.base().ID() == id {
		g.captured = nil
	}
	if g.hovered != nil && g.hovered.base().ID() == id {
		g.hovered.base().hovered = false
		g.hovered = nil
	}
}

// Title returns the title text.
func (g *GUI) Title() string { return g.title }

// SetTitle sets the title text.
func (g *GUI) SetTitle(title string) { g.title = title }

// TitleColor returns the title color for the current style.
func (g *GUI) TitleColor() Color {
	if g.style.IsDark() {
		return g.darkTitleColor
	}
	return g.titleColor
}

// SetTitleColor sets the title color for every style. The default text
// color is kept readable on dark panels by mapping it to the default dark
// text color.
func (g *GUI) SetTitleColor(c Color) {
	g.titleColor = c
	if c == DefaultTextColor {
		g.darkTitleColor = DefaultDarkTextColor
	} else {
		g.darkTitleColor = c
	}
}

// SetTitleColors sets separate title colors for light and dark styles.
func (g *GUI) SetTitleColors(light, dark Color) {
	g.titleColor = light
	g.darkTitleColor = dark
}

// TitleAlignment returns the title alignment.
func (g *GUI) TitleAlignment() HorizontalAlignment { return g.titleAlignment }

// SetTitleAlignment sets the title alignment.
func (g *GUI) SetTitleAlignment(a HorizontalAlignment) { g.titleAlignment = a }

// TitlePos returns the title offset from the root panel's corner.
func (g *GUI) TitlePos() Vec2i { return g.titlePos }

// SetTitlePos sets the title offset from the root panel's corner.
func (g *GUI) SetTitlePos(pos Vec2i) { g.titlePos = pos }

// IsTitleVisible reports whether the title is painted.
func (g *GUI) IsTitleVisible() bool { return g.titleVisible }

// SetTitleVisible shows or hides the title.
func (g *GUI) SetTitleVisible(visible bool) { g.titleVisible = visible }

// IsFullscreen reports whether the GUI covers the whole screen, which also
// suppresses the default root background.
func (g *GUI) IsFullscreen() bool { return g.fullscreen }

// SetFullscreen sets the fullscreen flag.
func (g *GUI) SetFullscreen(fullscreen bool) { g.fullscreen = fullscreen }

// Style returns the style painted with.
func (g *GUI) Style() Style { return g.style }

// SetStyle sets the style painted with.
func (g *GUI) SetStyle(s Style) { g.style = s }

// Font returns the font used for layout-time text measurement.
func (g *GUI) Font() Font {
	if g.font == nil {
		return DefaultFont
	}
	return g.font
}

// SetFont sets the layout font. nil restores DefaultFont.
func (g *GUI) SetFont(f Font) { g.font = f }

// Clock returns the clock animated widgets read while painting.
func (g *GUI) Clock() Clock { return g.clock }

// SetClock replaces the animation clock. nil restores SystemClock.
func (g *GUI) SetClock(c Clock) {
	if c == nil {
		c = SystemClock
	}
	g.clock = c
}

// PropertyDelegate returns the property source, or nil.
func (g *GUI) PropertyDelegate() PropertyDelegate { return g.properties }

// SetPropertyDelegate sets the property source read by bars.
func (g *GUI) SetPropertyDelegate(p PropertyDelegate) { g.properties = p }

// UseDefaultRootBackground reports whether AddPainters gives the root the
// default panel background.
func (g *GUI) UseDefaultRootBackground() bool { return g.useDefaultRootBackground }

// SetUseDefaultRootBackground enables or disables the default root
// background.
func (g *GUI) SetUseDefaultRootBackground(use bool) { g.useDefaultRootBackground = use }

// AddPainters installs default backgrounds: the root panel gets
// PainterVanilla unless the GUI is fullscreen or the default background is
// disabled, and every widget providing its own defaults installs them.
func (g *GUI) AddPainters() {
	if g.useDefaultRootBackground && !g.fullscreen {
		g.root.SetBackground(PainterVanilla)
	}
	walk(g.root, func(w Widget) {
		if pa, ok := w.(painterAdder); ok {
			pa.AddPainters()
		}
	})
}

// SetEventSink sets the optional ECS bridge.
func (g *GUI) SetEventSink(sink EventSink) { g.sink = sink }

// SetDebugMode enables or disables debug mode. When enabled, tree depth and
// child count warnings are printed, unknown sprites are logged, and
// per-frame timing stats are logged to stderr.
func (g *GUI) SetDebugMode(enabled bool) {
	g.debug = enabled
	globalDebug = enabled
}

// DebugMode reports whether debug mode is enabled.
func (g *GUI) DebugMode() bool { return g.debug }

// Layout lays out the whole tree. Call it after building or mutating the
// tree and whenever the root is resized.
func (g *GUI) Layout() {
	g.root.Layout()
}

// Paint refreshes hover state and paints the title, the tree and the
// hovered widget's tooltip. (x, y) is the GUI origin on the drawing surface
// and (mouseX, mouseY) the cursor in GUI space.
func (g *GUI) Paint(ctx DrawContext, x, y, mouseX, mouseY int) {
	g.updateHover(mouseX, mouseY)

	rb := g.root.base()
	if !rb.hidden {
		g.root.Paint(ctx, x+rb.x, y+rb.y, mouseX-rb.x, mouseY-rb.y)
	}
	if g.titleVisible && g.title != "" {
		DrawString(ctx, g.title, g.titleAlignment,
			x+rb.x+g.titlePos.X, y+rb.y+g.titlePos.Y,
			rb.width-2*g.titlePos.X, g.TitleColor(), ctx.Style().FontShadow())
	}
	if g.hovered != nil && g.captured == nil {
		if tp, ok := g.hovered.(TooltipProvider); ok {
			if lines := tp.Tooltip(); len(lines) > 0 {
				ctx.Tooltip(lines, x+mouseX, y+mouseY)
			}
		}
	}
}

// Render lays out the tree and records one frame into the GUI's draw list,
// which is reused between frames. The list paints with the GUI's style and
// font.
func (g *GUI) Render(x, y, mouseX, mouseY int) *DrawList {
	if g.drawList == nil {
		g.drawList = NewDrawList(g.style, g.Font())
	}
	d := g.drawList
	d.Reset()
	d.SetStyle(g.style)
	d.SetFont(g.Font())

	var stats debugStats
	var t0 time.Time
	if g.debug {
		t0 = time.Now()
	}

	g.Layout()

	if g.debug {
		stats.layoutTime = time.Since(t0)
		t0 = time.Now()
	}

	g.Paint(d, x, y, mouseX, mouseY)
	d.Finish()

	if g.debug {
		stats.paintTime = time.Since(t0)
		stats.commandCount = len(d.Commands)
		stats.fillCount = d.Count(CommandFill)
		stats.textureCount = d.Count(CommandTexture)
		stats.textCount = d.Count(CommandText)
		g.debugLog(stats)
	}
	return d
}

// updateHover marks the widget under the cursor and its ancestors hovered.
func (g *GUI) updateHover(mouseX, mouseY int) {
	walk(g.root, func(w Widget) { w.base().hovered = false })
	g.hovered = g.HitTest(mouseX, mouseY)
	for w := g.hovered; w != nil; {
		w.base().hovered = true
		p := w.base().Parent()
		if p == nil {
			break
		}
		w = p
	}
}
