package drawing

import "strconv"

// Frames always stroke in white and labels always render black,
// regardless of member colors.
var (
	frameColor = White
	labelColor = Black
)

func (c *container) drawFrame(dst Surface) {
	r := Rect{X: c.pos.X, Y: c.pos.Y, Width: c.size.Width, Height: c.size.Height}
	if c.shape.Kind == Ellipse {
		dst.Ellipse(r, frameColor, c.shape.Border)
		return
	}
	dst.Rect(r, frameColor, c.shape.Border)
}

// biggestSize is the uniform slot size for one draw pass: the largest
// member shape. Smaller members render inside an oversized slot without
// centering correction.
func (c *container) biggestSize() int {
	biggest := 0
	for _, d := range c.members {
		if s := d.Shape().Size; s > biggest {
			biggest = s
		}
	}
	return biggest
}

// slotStart returns the near-edge coordinate of slot i along one axis.
// Anchoring from the end walks backward from the far edge, with the slot
// itself subtracted so the returned coordinate is still the near edge.
func slotStart(origin, extent, i, slot, spacing, padding int, fromEnd bool) int {
	off := i*slot + i*spacing + padding
	if fromEnd {
		return origin + extent - off - slot
	}
	return origin + off
}

// slotVisible reports whether a slot stays inside the container along
// one axis: anchored from the start, its far edge must not pass the far
// boundary; anchored from the end, its near edge must not precede the
// near boundary.
func slotVisible(origin, extent, start, slot int, fromEnd bool) bool {
	if fromEnd {
		return start >= origin
	}
	return start+slot <= origin+extent
}

// drawMember renders a member's shape at its slot, filled in its own
// color, then its identity label offset slot/4 from the shape center.
// The offset approximates centering; it is kept as-is.
func drawMember(dst Surface, d Drawable, at Point, slot int) {
	s := d.Shape()
	r := Rect{X: at.X, Y: at.Y, Width: s.Size, Height: s.Size}
	if s.Kind == Ellipse {
		dst.Ellipse(r, s.Color, Filled)
	} else {
		dst.Rect(r, s.Color, Filled)
	}
	label := Point{
		X: at.X + s.Size/2 - slot/4,
		Y: at.Y + s.Size/2 - slot/4,
	}
	dst.Text(strconv.Itoa(d.ID()), labelColor, label)
}
