package scene

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/mazznoer/csscolorparser"

	"github.com/milk9111/drawkit/drawing"
)

// Build instantiates every container in the spec, populated with its
// items, against the supplied identity source. Validation is the drawing
// package's own: a bad spec fails with the same errors the programmatic
// API raises.
func Build(ids *drawing.IDSource, spec *Spec) ([]drawing.Drawable, error) {
	roots := make([]drawing.Drawable, 0, len(spec.Containers))
	for i, cs := range spec.Containers {
		root, err := buildContainer(ids, cs)
		if err != nil {
			return nil, fmt.Errorf("scene: container %d: %w", i, err)
		}
		roots = append(roots, root)
	}
	return roots, nil
}

// Container is the mutable surface shared by every layout kind; Build
// returns concrete types behind it.
type Container interface {
	drawing.Drawable
	Enter(drawing.Drawable) error
	Leave(drawing.Drawable) error
	Len() int
}

func buildContainer(ids *drawing.IDSource, cs ContainerSpec) (Container, error) {
	opts, err := containerOptions(cs)
	if err != nil {
		return nil, err
	}

	size := drawing.Size{Width: cs.Width, Height: cs.Height}
	pos := drawing.Point{X: cs.X, Y: cs.Y}

	var c Container
	switch strings.ToLower(cs.Kind) {
	case "row":
		c, err = drawing.NewRow(ids, size, pos, opts...)
	case "column":
		c, err = drawing.NewColumn(ids, size, pos, opts...)
	case "grid":
		c, err = drawing.NewGrid(ids, size, pos, opts...)
	default:
		return nil, fmt.Errorf("container kind %q: %w", cs.Kind, drawing.ErrInvalidValue)
	}
	if err != nil {
		return nil, err
	}

	for j, is := range cs.Items {
		shape, err := buildShape(is, drawing.Filled)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", j, err)
		}
		item, err := drawing.NewItem(ids, shape)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", j, err)
		}
		if err := c.Enter(item); err != nil {
			return nil, fmt.Errorf("item %d: %w", j, err)
		}
	}
	return c, nil
}

func containerOptions(cs ContainerSpec) ([]drawing.Option, error) {
	var opts []drawing.Option

	if cs.Frame != nil {
		frame, err := buildShape(*cs.Frame, drawing.DefaultShape().Border)
		if err != nil {
			return nil, fmt.Errorf("frame: %w", err)
		}
		opts = append(opts, drawing.WithShape(frame))
	}
	if cs.Align != "" {
		a, err := parseAlign(cs.Align)
		if err != nil {
			return nil, err
		}
		opts = append(opts, drawing.WithAlign(a))
	}
	if cs.Fill != "" {
		f, err := parseFill(cs.Fill)
		if err != nil {
			return nil, err
		}
		opts = append(opts, drawing.WithFillDirection(f))
	}
	if cs.Overflow != "" {
		o, err := parseOverflow(cs.Overflow)
		if err != nil {
			return nil, err
		}
		opts = append(opts, drawing.WithOverflow(o))
	}
	if cs.Padding != nil {
		opts = append(opts, drawing.WithPadding(*cs.Padding))
	}
	if cs.Spacing != nil {
		opts = append(opts, drawing.WithSpacing(*cs.Spacing))
	}
	return opts, nil
}

func buildShape(ss ShapeSpec, defaultBorder int) (drawing.Shape, error) {
	kind, err := parseKind(ss.Kind)
	if err != nil {
		return drawing.Shape{}, err
	}

	border := defaultBorder
	if ss.Border != nil {
		border = *ss.Border
	}

	clr := drawing.White
	if ss.Color != "" {
		clr, err = parseColor(ss.Color)
		if err != nil {
			return drawing.Shape{}, err
		}
	}

	return drawing.Shape{Kind: kind, Size: ss.Size, Border: border, Color: clr}, nil
}

func parseColor(s string) (color.RGBA, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, drawing.ErrInvalidValue)
	}
	r, g, b, a := c.RGBA255()
	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}

func parseKind(s string) (drawing.Kind, error) {
	switch strings.ToLower(s) {
	case "square":
		return drawing.Square, nil
	case "ellipse":
		return drawing.Ellipse, nil
	}
	return 0, fmt.Errorf("shape kind %q: %w", s, drawing.ErrInvalidShape)
}

func parseAlign(s string) (drawing.Align, error) {
	switch strings.ToLower(s) {
	case "none":
		return drawing.NoAlign, nil
	case "top":
		return drawing.AlignTop, nil
	case "topleft":
		return drawing.AlignTopLeft, nil
	case "topright":
		return drawing.AlignTopRight, nil
	case "center":
		return drawing.AlignCenter, nil
	case "left":
		return drawing.AlignLeft, nil
	case "right":
		return drawing.AlignRight, nil
	case "bottom":
		return drawing.AlignBottom, nil
	case "bottomleft":
		return drawing.AlignBottomLeft, nil
	case "bottomright":
		return drawing.AlignBottomRight, nil
	}
	return 0, fmt.Errorf("align %q: %w", s, drawing.ErrInvalidValue)
}

func parseFill(s string) (drawing.FillDirection, error) {
	switch strings.ToLower(s) {
	case "topleft":
		return drawing.FillTopLeft, nil
	case "topright":
		return drawing.FillTopRight, nil
	case "left":
		return drawing.FillLeft, nil
	case "right":
		return drawing.FillRight, nil
	case "bottomleft":
		return drawing.FillBottomLeft, nil
	case "bottomright":
		return drawing.FillBottomRight, nil
	}
	return 0, fmt.Errorf("fill direction %q: %w", s, drawing.ErrInvalidValue)
}

func parseOverflow(s string) (drawing.Overflow, error) {
	switch strings.ToLower(s) {
	case "visible":
		return drawing.OverflowVisible, nil
	case "hidden":
		return drawing.OverflowHidden, nil
	}
	return 0, fmt.Errorf("overflow %q: %w", s, drawing.ErrInvalidValue)
}
