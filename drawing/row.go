package drawing

// Row lays members out along the x axis at a fixed y. Its fill domain is
// Left/Right: corner directions collapse onto the horizontal axis.
type Row struct {
	container
}

func NewRow(ids *IDSource, size Size, pos Point, opts ...Option) (*Row, error) {
	c, err := newContainer(ids, size, pos, collapseLinear, opts...)
	if err != nil {
		return nil, err
	}
	return &Row{container: c}, nil
}

// collapseLinear folds the corner fill directions onto the travel axis,
// shared by Row and Column.
func collapseLinear(f FillDirection) FillDirection {
	switch f {
	case FillTopLeft, FillBottomLeft:
		return FillLeft
	case FillTopRight, FillBottomRight:
		return FillRight
	}
	return f
}

func (r *Row) Draw(dst Surface) {
	r.drawFrame(dst)
	if len(r.members) == 0 {
		return
	}
	slot := r.biggestSize()
	fromEnd := r.fill == FillRight
	for i, d := range r.members {
		x := slotStart(r.pos.X, r.size.Width, i, slot, r.spacing, r.padding, fromEnd)
		y := r.pos.Y + r.padding
		if r.overflow == OverflowHidden && !slotVisible(r.pos.X, r.size.Width, x, slot, fromEnd) {
			continue
		}
		drawMember(dst, d, Point{X: x, Y: y}, slot)
	}
}
