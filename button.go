package thicket

import (
	"time"

	"github.com/tanema/gween/ease"
)

const (
	buttonIconSpacing   = 2
	defaultIconSize     = 16
	buttonHighlightFade = 150 * time.Millisecond
)

// Button is a clickable, focusable push button with an optional icon and
// label. Hovering or focusing an enabled button fades in its highlight.
type Button struct {
	BaseWidget
	label     string
	icon      Icon
	iconSize  int
	enabled   bool
	alignment HorizontalAlignment
	highlight *Fader
	onClick   func()
}

// NewButton creates an enabled button with a centered label.
func NewButton(label string) *Button {
	return NewIconButton(nil, label)
}

// NewIconButton creates an enabled button with an icon and an optional
// label.
func NewIconButton(icon Icon, label string) *Button {
	b := &Button{
		label:     label,
		icon:      icon,
		iconSize:  defaultIconSize,
		enabled:   true,
		alignment: AlignCenter,
		highlight: NewFader(0, buttonHighlightFade, ease.OutQuad),
	}
	b.self = b
	return b
}

func (b *Button) CanResize() bool { return true }
func (b *Button) CanFocus() bool  { return true }

// Label returns the button text.
func (b *Button) Label() string { return b.label }

// SetLabel sets the button text.
func (b *Button) SetLabel(label string) *Button {
	b.label = label
	return b
}

// Icon returns the button icon or nil.
func (b *Button) Icon() Icon { return b.icon }

// SetIcon sets the button icon. nil removes it.
func (b *Button) SetIcon(icon Icon) *Button {
	b.icon = icon
	return b
}

// IconSize returns the icon edge length in pixels.
func (b *Button) IconSize() int { return b.iconSize }

// SetIconSize sets the icon edge length in pixels.
func (b *Button) SetIconSize(size int) *Button {
	b.iconSize = size
	return b
}

// IsEnabled reports whether the button reacts to input.
func (b *Button) IsEnabled() bool { return b.enabled }

// SetEnabled enables or disables the button.
func (b *Button) SetEnabled(enabled bool) *Button {
	b.enabled = enabled
	return b
}

// Alignment returns the label alignment.
func (b *Button) Alignment() HorizontalAlignment { return b.alignment }

// SetAlignment sets the label alignment. Left-aligned labels start after
// the icon.
func (b *Button) SetAlignment(a HorizontalAlignment) *Button {
	b.alignment = a
	return b
}

// SetOnClick sets the function called when the enabled button is clicked
// or activated from the keyboard.
func (b *Button) SetOnClick(fn func()) *Button {
	b.onClick = fn
	return b
}

// Highlight returns the current highlight strength in [0, 1].
func (b *Button) Highlight() float32 {
	return b.highlight.Value(b.clock().Now())
}

func (b *Button) Paint(ctx DrawContext, x, y, mouseX, mouseY int) {
	style := ctx.Style()
	if b.enabled && (b.IsWithinBounds(mouseX, mouseY) || b.focused) {
		b.highlight.Target(1)
	} else {
		b.highlight.Target(0)
	}
	fade := b.highlight.Value(b.clock().Now())

	if b.enabled {
		BlitSprite(ctx, StyledSprite(SpriteButton, style), x, y, b.width, b.height, ColorWhite)
		if fade > 0 {
			BlitSprite(ctx, StyledSprite(SpriteButtonHighlighted, style), x, y, b.width, b.height,
				ColorWhite.WithAlpha(float64(fade)))
		}
	} else {
		BlitSprite(ctx, StyledSprite(SpriteButtonDisabled, style), x, y, b.width, b.height, ColorWhite)
	}

	if b.icon != nil {
		b.icon.Paint(ctx, x+buttonIconSpacing, y+(b.height-b.iconSize)/2, b.iconSize)
	}
	if b.label != "" {
		c := ButtonTextColor
		if !b.enabled {
			c = ButtonTextColorDisabled
		}
		xOffset := 0
		if b.icon != nil && b.alignment == AlignLeft {
			xOffset = buttonIconSpacing + b.iconSize + buttonIconSpacing
		}
		DrawString(ctx, b.label, b.alignment, x+xOffset, y+(b.height-8)/2, b.width, c, true)
	}
}

func (b *Button) OnClick(x, y int, button MouseButton) InputResult {
	if !b.enabled || !b.IsWithinBounds(x, y) {
		return InputIgnored
	}
	if b.onClick != nil {
		b.onClick()
	}
	return InputProcessed
}

func (b *Button) OnKeyPressed(ch rune, key Key, mods KeyModifiers) InputResult {
	if IsActivationKey(key) {
		b.OnClick(0, 0, MouseButtonLeft)
		return InputProcessed
	}
	return InputIgnored
}
