package drawing

import "github.com/milk9111/drawkit/common"

// Grid lays members out on two axes, chunking insertion order into rows
// of as many slots as fit the container width. Its fill domain is the
// four corners; the bare axis directions collapse onto the top corners.
type Grid struct {
	container
}

func NewGrid(ids *IDSource, size Size, pos Point, opts ...Option) (*Grid, error) {
	c, err := newContainer(ids, size, pos, collapseCorner, opts...)
	if err != nil {
		return nil, err
	}
	return &Grid{container: c}, nil
}

func collapseCorner(f FillDirection) FillDirection {
	switch f {
	case FillLeft:
		return FillTopLeft
	case FillRight:
		return FillTopRight
	}
	return f
}

func (g *Grid) Draw(dst Surface) {
	g.drawFrame(dst)
	if len(g.members) == 0 {
		return
	}
	slot := g.biggestSize()

	// A container narrower than one slot still lays out a single column;
	// overflow policy decides whether those cells show.
	columns := g.size.Width / (slot + g.spacing)
	if columns < 1 {
		columns = 1
	}

	xFromEnd := g.fill == FillTopRight || g.fill == FillBottomRight
	yFromEnd := g.fill == FillBottomLeft || g.fill == FillBottomRight

	for j, row := range common.Chunks(g.members, columns) {
		for i, d := range row {
			x := slotStart(g.pos.X, g.size.Width, i, slot, g.spacing, g.padding, xFromEnd)
			y := slotStart(g.pos.Y, g.size.Height, j, slot, g.spacing, g.padding, yFromEnd)
			if g.overflow == OverflowHidden {
				if !slotVisible(g.pos.X, g.size.Width, x, slot, xFromEnd) {
					continue
				}
				if !slotVisible(g.pos.Y, g.size.Height, y, slot, yFromEnd) {
					continue
				}
			}
			drawMember(dst, d, Point{X: x, Y: y}, slot)
		}
	}
}
