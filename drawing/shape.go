package drawing

import (
	"fmt"
	"image/color"
)

// Kind is the geometric variant of a shape.
type Kind int

const (
	Square Kind = iota
	Ellipse
)

func (k Kind) valid() bool {
	return k == Square || k == Ellipse
}

func (k Kind) String() string {
	switch k {
	case Square:
		return "square"
	case Ellipse:
		return "ellipse"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Filled is the border sentinel meaning "fill the shape". A border of 0
// strokes a hairline outline; positive values stroke at that width.
const Filled = -1

// Shape describes how a drawable (or a container frame) looks.
type Shape struct {
	Kind   Kind
	Size   int
	Border int
	Color  color.RGBA
}

// DefaultShape is the frame appearance a container gets when none is
// supplied: a 10-unit white square with a 2-unit border.
func DefaultShape() Shape {
	return Shape{Kind: Square, Size: 10, Border: 2, Color: White}
}

// normalizeShape rejects unknown kinds and clamps borders below the
// Filled sentinel up to it. Clamping is deliberate leniency, not an error.
func normalizeShape(s Shape) (Shape, error) {
	if !s.Kind.valid() {
		return Shape{}, fmt.Errorf("drawing: shape kind %d: %w", int(s.Kind), ErrInvalidShape)
	}
	if s.Border < Filled {
		s.Border = Filled
	}
	return s, nil
}
