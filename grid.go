package thicket

// gridCell is a child's cell position and span.
type gridCell struct {
	x, y          int
	width, height int
}

// GridPanel places children on a grid of square cells.
type GridPanel struct {
	BasePanel
	grid  int
	hgap  int
	vgap  int
	cells map[WidgetID]gridCell
}

// NewGridPanel creates a grid with the default 18 px cells and no gaps.
func NewGridPanel() *GridPanel {
	return NewGridPanelSize(DefaultCellSize)
}

// NewGridPanelSize creates a grid with cells of the given size.
func NewGridPanelSize(cellSize int) *GridPanel {
	if cellSize <= 0 {
		fail(ErrInvalidArgument, "grid cell size %d", cellSize)
	}
	g := &GridPanel{grid: cellSize, cells: make(map[WidgetID]gridCell)}
	g.self = g
	return g
}

// CellSize returns the grid cell size.
func (g *GridPanel) CellSize() int { return g.grid }

// SetGaps sets the horizontal and vertical gap between cells.
func (g *GridPanel) SetGaps(horizontal, vertical int) *GridPanel {
	g.hgap = horizontal
	g.vgap = vertical
	return g
}

// Add places w in the cell at column x, row y.
func (g *GridPanel) Add(w Widget, x, y int) {
	g.AddSpan(w, x, y, 1, 1)
}

// AddSpan places w at column x, row y spanning width columns and height rows.
func (g *GridPanel) AddSpan(w Widget, x, y, width, height int) {
	if width <= 0 || height <= 0 {
		fail(ErrInvalidArgument, "grid span %dx%d", width, height)
	}
	g.adopt(w)
	g.cells[w.base().ID()] = gridCell{x, y, width, height}
	g.placeChild(w)
	g.ExpandToFit(w)
}

// Remove detaches child and drops its cell.
func (g *GridPanel) Remove(child Widget) {
	g.detach(child)
	delete(g.cells, child.base().ID())
}

func (g *GridPanel) placeChild(c Widget) {
	cell := g.cells[c.base().ID()]
	c.base().SetPosition(
		g.insets.Left+cell.x*(g.grid+g.hgap),
		g.insets.Top+cell.y*(g.grid+g.vgap),
	)
	layoutChild(c,
		cell.width*g.grid+(cell.width-1)*g.hgap,
		cell.height*g.grid+(cell.height-1)*g.vgap,
	)
}

// Layout positions every child at its cell and grows the grid to fit.
func (g *GridPanel) Layout() {
	for _, c := range g.children {
		g.placeChild(c)
		g.ExpandToFit(c)
	}
}

// plainEntry is an absolute child rectangle.
type plainEntry struct {
	x, y, width, height int
}

// PlainPanel places children at absolute positions.
type PlainPanel struct {
	BasePanel
	entries map[WidgetID]plainEntry
}

// NewPlainPanel creates an empty plain panel.
func NewPlainPanel() *PlainPanel {
	p := &PlainPanel{entries: make(map[WidgetID]plainEntry)}
	p.self = p
	return p
}

// Add places w at (x, y) with the given size, applied when w is resizable.
func (p *PlainPanel) Add(w Widget, x, y, width, height int) {
	p.adopt(w)
	p.entries[w.base().ID()] = plainEntry{x, y, width, height}
	p.placeChild(w)
	p.ExpandToFit(w)
}

// Remove detaches child and drops its entry.
func (p *PlainPanel) Remove(child Widget) {
	p.detach(child)
	delete(p.entries, child.base().ID())
}

func (p *PlainPanel) placeChild(c Widget) {
	e := p.entries[c.base().ID()]
	c.base().SetPosition(p.insets.Left+e.x, p.insets.Top+e.y)
	layoutChild(c, e.width, e.height)
}

// Layout positions every child and grows the panel to fit.
func (p *PlainPanel) Layout() {
	for _, c := range p.children {
		p.placeChild(c)
		p.ExpandToFit(c)
	}
}
