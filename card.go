package thicket

// CardPanel shows exactly one of its children at a time. Every card is
// sized to the panel minus its insets.
type CardPanel struct {
	BasePanel
	selected int
}

// NewCardPanel creates an empty card panel.
func NewCardPanel() *CardPanel {
	c := &CardPanel{selected: -1}
	c.self = c
	return c
}

// Add appends card. The first card added becomes the selected one; later
// cards start hidden.
func (c *CardPanel) Add(card Widget) {
	c.adopt(card)
	if c.selected < 0 {
		c.selected = 0
	}
	c.syncVisibility()
	c.placeCard(card)
	c.ExpandToFit(card)
}

// Remove detaches card. When the selected card is removed the card that
// takes its index is shown (the previous one if it was last); the selection
// clears when no cards remain.
func (c *CardPanel) Remove(card Widget) {
	index := c.detach(card)
	card.base().hidden = false
	switch {
	case len(c.children) == 0:
		c.selected = -1
	case index < c.selected || c.selected >= len(c.children):
		c.selected--
	}
	c.syncVisibility()
}

// CardCount returns the number of cards.
func (c *CardPanel) CardCount() int { return len(c.children) }

// SelectedIndex returns the index of the visible card, or -1 when empty.
func (c *CardPanel) SelectedIndex() int { return c.selected }

// SetSelectedIndex shows the card at index. Panics with ErrIndexOutOfRange
// when index is outside the card list.
func (c *CardPanel) SetSelectedIndex(index int) {
	if index < 0 || index >= len(c.children) {
		fail(ErrIndexOutOfRange, "card index %d of %d", index, len(c.children))
	}
	c.selected = index
	c.syncVisibility()
	c.Layout()
}

// SelectedCard returns the visible card, or nil when empty.
func (c *CardPanel) SelectedCard() Widget {
	if c.selected < 0 {
		return nil
	}
	return c.children[c.selected]
}

// SetSelectedCard shows card. Panics with ErrUnknownCard when card was not
// added to this panel.
func (c *CardPanel) SetSelectedCard(card Widget) {
	index := -1
	if card != nil {
		index = c.indexOf(card)
	}
	if index < 0 {
		fail(ErrUnknownCard, "card %v", card)
	}
	c.SetSelectedIndex(index)
}

func (c *CardPanel) syncVisibility() {
	for i, card := range c.children {
		card.base().hidden = i != c.selected
	}
	if c.reg != nil && c.reg.gui != nil {
		c.reg.gui.dropHiddenFocus()
	}
}

func (c *CardPanel) placeCard(card Widget) {
	card.base().SetPosition(c.insets.Left, c.insets.Top)
	layoutChild(card, c.width-c.insets.Width(), c.height-c.insets.Height())
}

// Layout resizes every card to the panel's inner area and grows the panel
// to fit cards that laid themselves out larger.
func (c *CardPanel) Layout() {
	for _, card := range c.children {
		c.placeCard(card)
		c.ExpandToFit(card)
	}
}
