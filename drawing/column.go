package drawing

// Column lays members out along the y axis at a fixed x. It shares Row's
// collapsed Left/Right fill domain: Left travels down from the top edge,
// Right travels up from the bottom edge.
type Column struct {
	container
}

func NewColumn(ids *IDSource, size Size, pos Point, opts ...Option) (*Column, error) {
	c, err := newContainer(ids, size, pos, collapseLinear, opts...)
	if err != nil {
		return nil, err
	}
	return &Column{container: c}, nil
}

func (c *Column) Draw(dst Surface) {
	c.drawFrame(dst)
	if len(c.members) == 0 {
		return
	}
	slot := c.biggestSize()
	fromEnd := c.fill == FillRight
	for i, d := range c.members {
		x := c.pos.X + c.padding
		y := slotStart(c.pos.Y, c.size.Height, i, slot, c.spacing, c.padding, fromEnd)
		if c.overflow == OverflowHidden && !slotVisible(c.pos.Y, c.size.Height, y, slot, fromEnd) {
			continue
		}
		drawMember(dst, d, Point{X: x, Y: y}, slot)
	}
}
