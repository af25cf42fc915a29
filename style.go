package thicket

import (
	"fmt"
	"log"
	"strings"
)

// Style is a named visual variant for sprites and text colors.
type Style uint8

const (
	StyleLight   Style = iota // light panels, dark text
	StyleDark                 // dark panels, light text
	StyleClassic              // light panels with shadowed text
	styleCount
)

// Styles lists every style in declaration order.
var Styles = [styleCount]Style{StyleLight, StyleDark, StyleClassic}

var styleNames = [styleCount]string{"light", "dark", "classic"}

// Text colors shared by widgets.
var (
	DefaultTextColor         = ColorARGB(0xFF404040)
	DefaultDarkTextColor     = ColorARGB(0xFFBCBCBC)
	ButtonTextColor          = ColorARGB(0xFFE0E0E0)
	ButtonTextColorDisabled  = ColorARGB(0xFFA0A0A0)
	SliderLabelColor         = ColorARGB(0xFFE0E0E0)
	SliderLabelColorHovered  = ColorARGB(0xFFFFFFA0)
	TooltipBackgroundColor   = ColorARGB(0xF0100010)
	TooltipBorderColor       = ColorARGB(0x505000FF)
	TooltipTextColor         = ColorWhite
	defaultUnknownSpriteData = UniformSlice(4, 4, 16, 16)
)

// Prefix returns the suffix appended to sprite prefixes for this style.
func (s Style) Prefix() string {
	return s.String()
}

// String returns the lower-case style name.
func (s Style) String() string {
	if s < styleCount {
		return styleNames[s]
	}
	return fmt.Sprintf("style(%d)", uint8(s))
}

// IsDark reports whether panels are painted dark.
func (s Style) IsDark() bool {
	return s == StyleDark
}

// FontShadow reports whether labels drawn on panels get a drop shadow.
func (s Style) FontShadow() bool {
	return s == StyleClassic
}

// TitleColor returns the default color of labels drawn on panels.
func (s Style) TitleColor() Color {
	if s.IsDark() {
		return DefaultDarkTextColor
	}
	return DefaultTextColor
}

// ParseStyle parses a style name case-insensitively.
func ParseStyle(name string) (Style, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range styleNames {
		if s == n {
			return Style(i), nil
		}
	}
	return StyleLight, fmt.Errorf("thicket: unknown style %q", name)
}

// Sprite prefixes for built-in widgets. The style prefix is appended to
// form the TextureID, e.g. "widget/button_dark".
const (
	SpritePanel               = "widget/panel_"
	SpriteButton              = "widget/button_"
	SpriteButtonDisabled      = "widget/button_disabled_"
	SpriteButtonHighlighted   = "widget/button_highlighted_"
	SpriteTabSelected         = "widget/tab_selected_"
	SpriteTabUnselected       = "widget/tab_unselected_"
	SpriteTabFocus            = "widget/tab_focus_"
	SpriteScrollBarBackground = "widget/scroll_bar/background_"
	SpriteScrollBarThumb      = "widget/scroll_bar/thumb_"
	SpriteScrollBarHovered    = "widget/scroll_bar/thumb_hovered_"
	SpriteScrollBarPressed    = "widget/scroll_bar/thumb_pressed_"
	SpriteSlider              = "widget/slider_"
	SpriteSliderFocused       = "widget/slider_focused_"
	SpriteSliderHandle        = "widget/slider_handle_"
	SpriteSliderHandleHovered = "widget/slider_handle_hovered_"
	SpriteToggleOn            = "widget/toggle_on_"
	SpriteToggleOff           = "widget/toggle_off_"
	SpriteToggleFocus         = "widget/toggle_focus_"
)

// StyledSprite returns the texture for prefix in the given style.
func StyledSprite(prefix string, s Style) TextureID {
	return TextureID(prefix + s.Prefix())
}

// sprite registry (no locking: thicket is single-threaded)
var sprites = make(map[TextureID]NineSlice)

// RegisterSprite records the slice data for a sprite texture.
func RegisterSprite(id TextureID, s NineSlice) {
	sprites[id] = s
}

// RegisterStyledSprite records the same slice data for every style variant
// of prefix.
func RegisterStyledSprite(prefix string, s NineSlice) {
	for _, st := range Styles {
		sprites[StyledSprite(prefix, st)] = s
	}
}

// LookupSprite returns the slice data for id. Unknown sprites use 4 px
// borders on a 16x16 image.
func LookupSprite(id TextureID) NineSlice {
	if s, ok := sprites[id]; ok {
		return s
	}
	if globalDebug {
		log.Printf("thicket: sprite %q not registered, using default slices", id)
	}
	return defaultUnknownSpriteData
}

func init() {
	panel := UniformSlice(4, 4, 16, 16)
	for _, p := range []string{
		SpritePanel, SpriteScrollBarBackground, SpriteScrollBarThumb,
		SpriteScrollBarHovered, SpriteScrollBarPressed,
		SpriteSlider, SpriteSliderFocused,
		SpriteTabSelected, SpriteTabUnselected, SpriteTabFocus,
	} {
		RegisterStyledSprite(p, panel)
	}
	button := UniformSlice(20, 4, 200, 20)
	for _, p := range []string{SpriteButton, SpriteButtonDisabled, SpriteButtonHighlighted} {
		RegisterStyledSprite(p, button)
	}
	handle := UniformSlice(2, 2, 8, 20)
	RegisterStyledSprite(SpriteSliderHandle, handle)
	RegisterStyledSprite(SpriteSliderHandleHovered, handle)
	toggle := UniformSlice(0, 0, 18, 18)
	for _, p := range []string{SpriteToggleOn, SpriteToggleOff, SpriteToggleFocus} {
		RegisterStyledSprite(p, toggle)
	}
}
