package thicket

const (
	toggleSize      = 18
	toggleLabelX    = 22
	toggleIconSize  = 16
	toggleIconSpace = 2
)

// ToggleButton is a focusable on/off switch with an optional icon and
// label drawn to its right.
type ToggleButton struct {
	BaseWidget
	on       bool
	label    string
	icon     Icon
	onTex    *Texture
	offTex   *Texture
	focusTex *Texture
	onToggle func(on bool)
}

// NewToggleButton creates a toggle in the off state.
func NewToggleButton(label string) *ToggleButton {
	t := &ToggleButton{label: label}
	t.self = t
	return t
}

func (t *ToggleButton) CanResize() bool { return true }
func (t *ToggleButton) CanFocus() bool  { return true }

// IsOn reports the toggle state.
func (t *ToggleButton) IsOn() bool { return t.on }

// SetOn sets the state without calling the toggle callback.
func (t *ToggleButton) SetOn(on bool) { t.on = on }

// SetOnToggle sets the function called with the new state when the user
// flips the toggle.
func (t *ToggleButton) SetOnToggle(fn func(on bool)) *ToggleButton {
	t.onToggle = fn
	return t
}

// Label returns the label text.
func (t *ToggleButton) Label() string { return t.label }

// SetLabel sets the label text.
func (t *ToggleButton) SetLabel(label string) *ToggleButton {
	t.label = label
	return t
}

// Icon returns the icon or nil.
func (t *ToggleButton) Icon() Icon { return t.icon }

// SetIcon sets the icon drawn between the switch and the label.
func (t *ToggleButton) SetIcon(icon Icon) *ToggleButton {
	t.icon = icon
	return t
}

// SetImages overrides the on, off and focus textures. The styled built-in
// sprites are used when not set.
func (t *ToggleButton) SetImages(on, off, focus Texture) *ToggleButton {
	t.onTex, t.offTex, t.focusTex = &on, &off, &focus
	return t
}

func (t *ToggleButton) image(custom *Texture, prefix string, s Style) Texture {
	if custom != nil {
		return *custom
	}
	return NewTexture(StyledSprite(prefix, s))
}

func (t *ToggleButton) Paint(ctx DrawContext, x, y, mouseX, mouseY int) {
	style := ctx.Style()
	img := t.image(t.offTex, SpriteToggleOff, style)
	if t.on {
		img = t.image(t.onTex, SpriteToggleOn, style)
	}
	ctx.DrawTexture(img, x, y, toggleSize, toggleSize, ColorWhite)
	if t.focused {
		ctx.DrawTexture(t.image(t.focusTex, SpriteToggleFocus, style), x, y, toggleSize, toggleSize, ColorWhite)
	}

	labelX := x + toggleLabelX
	if t.icon != nil {
		t.icon.Paint(ctx, x+toggleLabelX, y+1, toggleIconSize)
		labelX += toggleIconSize + toggleIconSpace
	}
	if t.label != "" {
		ctx.DrawText(t.label, labelX, y+6, style.TitleColor(), false)
	}
}

func (t *ToggleButton) OnClick(x, y int, button MouseButton) InputResult {
	t.on = !t.on
	if t.onToggle != nil {
		t.onToggle(t.on)
	}
	return InputProcessed
}

func (t *ToggleButton) OnKeyPressed(ch rune, key Key, mods KeyModifiers) InputResult {
	if IsActivationKey(key) {
		t.OnClick(0, 0, MouseButtonLeft)
		return InputProcessed
	}
	return InputIgnored
}
