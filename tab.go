package thicket

const (
	tabWidth    = 28
	tabHeight   = 20
	tabIconSize = 16
	tabIconX    = 6
)

// Tab describes one page of a TabPanel. Tabs are immutable once built.
type Tab struct {
	title   string
	icon    Icon
	content Widget
	tooltip []string
}

// NewTab creates a tab showing content. Panics with ErrInvalidArgument if
// content is nil or the tab has neither a title nor an icon.
func NewTab(content Widget, title string, icon Icon, tooltip ...string) *Tab {
	if content == nil {
		fail(ErrInvalidArgument, "tab content is nil")
	}
	if title == "" && icon == nil {
		fail(ErrInvalidArgument, "a tab must have a title or an icon")
	}
	return &Tab{
		title:   title,
		icon:    icon,
		content: content,
		tooltip: append([]string(nil), tooltip...),
	}
}

// Title returns the tab title, empty when the tab only has an icon.
func (t *Tab) Title() string { return t.title }

// Icon returns the tab icon or nil.
func (t *Tab) Icon() Icon { return t.icon }

// Content returns the widget shown while the tab is selected.
func (t *Tab) Content() Widget { return t.content }

// Tooltip returns the tooltip lines shown over the tab header.
func (t *Tab) Tooltip() []string { return t.tooltip }

// Tab header painters.
var (
	tabSelectedPainter   = StyleVariantsNinePatch(SpriteTabSelected, nil)
	tabUnselectedPainter = StyleVariantsNinePatch(SpriteTabUnselected, nil)
	tabSelectedFocus     = StyleVariantsNinePatch(SpriteTabFocus, func(p *NinePatchPainter) { p.SetTopPadding(2) })
	tabUnselectedFocus   = StyleVariantsNinePatch(SpriteTabFocus, nil)
)

// TabPanel shows a ribbon of tab headers above a card panel that displays
// the selected tab's content. Exactly one tab is selected while the panel
// has any tabs.
type TabPanel struct {
	BasePanel
	ribbon  *BoxPanel
	cards   *CardPanel
	tabs    []*Tab
	headers []*tabHeader
	font    Font
}

// NewTabPanel creates an empty tab panel.
func NewTabPanel() *TabPanel {
	p := &TabPanel{
		ribbon: NewBoxPanel(AxisHorizontal).SetSpacing(1),
		cards:  NewCardPanel(),
	}
	p.self = p
	p.adopt(p.ribbon)
	p.adopt(p.cards)
	p.cards.SetPosition(0, tabHeight)
	return p
}

// Add appends tab. The first tab added is selected.
func (p *TabPanel) Add(tab *Tab) {
	if tab == nil {
		fail(ErrInvalidArgument, "tab is nil")
	}
	// the card goes first: it panics on content that already has a parent
	p.cards.Add(tab.content)
	h := &tabHeader{tab: tab, selected: len(p.tabs) == 0}
	h.self = h
	p.tabs = append(p.tabs, tab)
	p.headers = append(p.headers, h)
	p.ribbon.AddSized(h, tabWidth, tabHeight)
	p.Layout()
}

// AddContent wraps content in a titled tab and appends it.
func (p *TabPanel) AddContent(content Widget, title string) *Tab {
	t := NewTab(content, title, nil)
	p.Add(t)
	return t
}

// TabCount returns the number of tabs.
func (p *TabPanel) TabCount() int { return len(p.tabs) }

// Tabs returns the tabs in the order they were added. The returned slice
// MUST NOT be mutated.
func (p *TabPanel) Tabs() []*Tab { return p.tabs }

// SelectedIndex returns the index of the selected tab, or -1 when empty.
func (p *TabPanel) SelectedIndex() int { return p.cards.SelectedIndex() }

// SelectedTab returns the selected tab. ok is false when there are no tabs.
func (p *TabPanel) SelectedTab() (tab *Tab, ok bool) {
	i := p.cards.SelectedIndex()
	if i < 0 {
		return nil, false
	}
	return p.tabs[i], true
}

// SetSelectedIndex selects the tab at index. Panics with
// ErrIndexOutOfRange when index is not a valid tab index.
func (p *TabPanel) SetSelectedIndex(index int) {
	p.cards.SetSelectedIndex(index)
	for i, h := range p.headers {
		h.selected = i == index
	}
	p.Layout()
}

// SetSelectedTab selects tab. Panics with ErrUnknownTab when tab was not
// added to this panel.
func (p *TabPanel) SetSelectedTab(tab *Tab) {
	for i, t := range p.tabs {
		if t == tab {
			p.SetSelectedIndex(i)
			return
		}
	}
	fail(ErrUnknownTab, "tab %q", tabName(tab))
}

func tabName(t *Tab) string {
	if t == nil {
		return "<nil>"
	}
	return t.title
}

// Font returns the font used to size tab headers.
func (p *TabPanel) Font() Font {
	if p.font != nil {
		return p.font
	}
	if g := p.GUI(); g != nil {
		return g.Font()
	}
	return DefaultFont
}

// SetFont overrides the font used to size tab headers. nil restores the
// GUI's font.
func (p *TabPanel) SetFont(f Font) { p.font = f }

// SetSize resizes the panel; the ribbon keeps the tab height.
func (p *TabPanel) SetSize(width, height int) {
	p.BasePanel.SetSize(width, height)
	p.ribbon.SetSize(width, tabHeight)
}

// AddPainters gives the content area the default panel background.
func (p *TabPanel) AddPainters() {
	p.cards.SetBackground(PainterVanilla)
}

// Layout sizes the headers to their titles, lays out the ribbon and the
// content cards, and grows the panel to fit both.
func (p *TabPanel) Layout() {
	font := p.Font()
	for _, h := range p.headers {
		p.ribbon.SetEntrySize(h, h.preferredWidth(font), tabHeight)
	}
	p.ribbon.SetPosition(0, 0)
	layoutChild(p.ribbon, p.width, tabHeight)
	p.cards.SetPosition(0, tabHeight)
	layoutChild(p.cards, p.width, p.height-tabHeight)
	p.ExpandToFit(p.ribbon)
	p.ExpandToFit(p.cards)
}

// tabHeader is the clickable, focusable header of one tab.
type tabHeader struct {
	BaseWidget
	tab      *Tab
	selected bool
}

func (h *tabHeader) CanResize() bool { return true }
func (h *tabHeader) CanFocus() bool  { return true }

// panel resolves the TabPanel owning the header's ribbon.
func (h *tabHeader) panel() *TabPanel {
	ribbon := h.Parent()
	if ribbon == nil {
		return nil
	}
	p, _ := ribbon.base().Parent().(*TabPanel)
	return p
}

func (h *tabHeader) preferredWidth(font Font) int {
	if h.tab.title == "" {
		return tabWidth
	}
	w := tabWidth + font.Width(h.tab.title)
	if h.tab.icon == nil {
		w = max(tabWidth, w-tabIconSize)
	}
	return w
}

func (h *tabHeader) OnClick(x, y int, button MouseButton) InputResult {
	p := h.panel()
	if p == nil {
		return InputIgnored
	}
	for i, other := range p.headers {
		if other == h {
			p.SetSelectedIndex(i)
			break
		}
	}
	return InputProcessed
}

func (h *tabHeader) OnKeyPressed(ch rune, key Key, mods KeyModifiers) InputResult {
	if IsActivationKey(key) {
		h.OnClick(0, 0, MouseButtonLeft)
		return InputProcessed
	}
	return InputIgnored
}

func (h *tabHeader) Tooltip() []string { return h.tab.tooltip }

func (h *tabHeader) Paint(ctx DrawContext, x, y, mouseX, mouseY int) {
	if h.selected {
		tabSelectedPainter.PaintBackground(ctx, x, y, h)
	} else {
		tabUnselectedPainter.PaintBackground(ctx, x, y, h)
	}
	if h.focused {
		if h.selected {
			tabSelectedFocus.PaintBackground(ctx, x, y, h)
		} else {
			tabUnselectedFocus.PaintBackground(ctx, x, y, h)
		}
	}

	if t := h.tab; t.title != "" {
		titleX, width, align := 0, h.width, AlignCenter
		if t.icon != nil {
			titleX = tabIconX + tabIconSize + 1
			width = h.width - tabIconX - tabIconSize
			align = AlignLeft
		}
		titleY := (h.height-ctx.Font().LineHeight())/2 + 3
		DrawString(ctx, t.title, align, x+titleX, y+titleY, width,
			tabTitleColor(ctx.Style(), h.selected), ctx.Style().FontShadow())
	}
	if h.tab.icon != nil {
		h.tab.icon.Paint(ctx, x+tabIconX, y+1+(h.height-tabIconSize)/2, tabIconSize)
	}
}

func tabTitleColor(s Style, selected bool) Color {
	switch {
	case s == StyleClassic && selected:
		return ColorWhite
	case s == StyleClassic:
		return ColorARGB(0xFFAAAAAA)
	case s.IsDark() && selected:
		return ColorARGB(0xFFEEEEEE)
	case s.IsDark():
		return ColorARGB(0xFF777777)
	case selected:
		return DefaultTextColor
	}
	return ColorARGB(0xFFEEEEEE)
}
