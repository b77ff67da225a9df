package drawing

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidValue    = errors.New("invalid value")
	ErrInvalidShape    = errors.New("invalid shape")
	ErrDuplicateMember = errors.New("already in container")
	ErrNotMember       = errors.New("not in container")
)

// Align is stored and validated but only affects position validation:
// under NoAlign, negative positions are rejected.
type Align int

const (
	NoAlign Align = iota
	AlignTop
	AlignTopLeft
	AlignTopRight
	AlignCenter
	AlignLeft
	AlignRight
	AlignBottom
	AlignBottomLeft
	AlignBottomRight
)

func (a Align) valid() bool {
	return a >= NoAlign && a <= AlignBottomRight
}

// FillDirection is the anchor and travel direction for placing members.
// Each container kind collapses it to its own domain on assignment: rows
// and columns fold the corners onto Left/Right, grids fold Left/Right
// onto the top corners.
type FillDirection int

const (
	FillTopLeft FillDirection = iota
	FillTopRight
	FillLeft
	FillRight
	FillBottomLeft
	FillBottomRight
)

func (f FillDirection) valid() bool {
	return f >= FillTopLeft && f <= FillBottomRight
}

func (f FillDirection) String() string {
	switch f {
	case FillTopLeft:
		return "topleft"
	case FillTopRight:
		return "topright"
	case FillLeft:
		return "left"
	case FillRight:
		return "right"
	case FillBottomLeft:
		return "bottomleft"
	case FillBottomRight:
		return "bottomright"
	}
	return fmt.Sprintf("fill(%d)", int(f))
}

// Overflow controls whether members whose slot falls outside the
// container bounds are still drawn.
type Overflow int

const (
	OverflowVisible Overflow = iota
	OverflowHidden
)

func (o Overflow) valid() bool {
	return o == OverflowVisible || o == OverflowHidden
}

type settings struct {
	shape    *Shape
	align    Align
	fill     FillDirection
	overflow Overflow
	padding  int
	spacing  int
}

func defaultSettings() settings {
	return settings{
		align:    NoAlign,
		fill:     FillTopLeft,
		overflow: OverflowVisible,
		padding:  5,
		spacing:  5,
	}
}

// Option configures a container at construction. Values set here run
// through the same validating setters as later mutation.
type Option func(*settings)

func WithShape(s Shape) Option {
	return func(st *settings) { st.shape = &s }
}

func WithAlign(a Align) Option {
	return func(st *settings) { st.align = a }
}

func WithFillDirection(f FillDirection) Option {
	return func(st *settings) { st.fill = f }
}

func WithOverflow(o Overflow) Option {
	return func(st *settings) { st.overflow = o }
}

func WithPadding(p int) Option {
	return func(st *settings) { st.padding = p }
}

func WithSpacing(n int) Option {
	return func(st *settings) { st.spacing = n }
}

// container is the shared state and validation behind every layout
// strategy. The collapse hook is the one per-kind capability: it folds a
// requested fill direction onto the kind's native domain.
type container struct {
	id       int
	size     Size
	pos      Point
	shape    Shape
	align    Align
	fill     FillDirection
	overflow Overflow
	padding  int
	spacing  int

	collapse func(FillDirection) FillDirection

	members []Drawable
	index   map[int]int // drawable id -> slot in members
}

func newContainer(ids *IDSource, size Size, pos Point, collapse func(FillDirection) FillDirection, opts ...Option) (container, error) {
	st := defaultSettings()
	for _, opt := range opts {
		opt(&st)
	}

	c := container{
		id:       ids.Next(),
		collapse: collapse,
		index:    make(map[int]int),
	}

	// Align first: the position rule depends on it.
	if err := c.SetAlign(st.align); err != nil {
		return container{}, err
	}
	if err := c.SetSize(size); err != nil {
		return container{}, err
	}
	if err := c.SetPosition(pos); err != nil {
		return container{}, err
	}
	shape := DefaultShape()
	if st.shape != nil {
		shape = *st.shape
	}
	if err := c.SetShape(shape); err != nil {
		return container{}, err
	}
	if err := c.SetFillDirection(st.fill); err != nil {
		return container{}, err
	}
	if err := c.SetOverflow(st.overflow); err != nil {
		return container{}, err
	}
	if err := c.SetPadding(st.padding); err != nil {
		return container{}, err
	}
	if err := c.SetSpacing(st.spacing); err != nil {
		return container{}, err
	}
	return c, nil
}

func (c *container) ID() int {
	return c.id
}

func (c *container) Size() Size {
	return c.size
}

func (c *container) SetSize(s Size) error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("drawing: size %dx%d: %w", s.Width, s.Height, ErrInvalidValue)
	}
	c.size = s
	return nil
}

func (c *container) Position() Point {
	return c.pos
}

func (c *container) SetPosition(p Point) error {
	if c.align == NoAlign && (p.X < 0 || p.Y < 0) {
		return fmt.Errorf("drawing: position (%d,%d) without alignment: %w", p.X, p.Y, ErrInvalidValue)
	}
	c.pos = p
	return nil
}

func (c *container) Shape() Shape {
	return c.shape
}

func (c *container) SetShape(s Shape) error {
	n, err := normalizeShape(s)
	if err != nil {
		return err
	}
	c.shape = n
	return nil
}

func (c *container) Align() Align {
	return c.align
}

func (c *container) SetAlign(a Align) error {
	if !a.valid() {
		return fmt.Errorf("drawing: align %d: %w", int(a), ErrInvalidValue)
	}
	c.align = a
	return nil
}

func (c *container) FillDirection() FillDirection {
	return c.fill
}

func (c *container) SetFillDirection(f FillDirection) error {
	if !f.valid() {
		return fmt.Errorf("drawing: fill direction %d: %w", int(f), ErrInvalidValue)
	}
	c.fill = c.collapse(f)
	return nil
}

func (c *container) Overflow() Overflow {
	return c.overflow
}

func (c *container) SetOverflow(o Overflow) error {
	if !o.valid() {
		return fmt.Errorf("drawing: overflow %d: %w", int(o), ErrInvalidValue)
	}
	c.overflow = o
	return nil
}

func (c *container) Padding() int {
	return c.padding
}

func (c *container) SetPadding(p int) error {
	if p < 0 {
		return fmt.Errorf("drawing: padding %d: %w", p, ErrInvalidValue)
	}
	c.padding = p
	return nil
}

func (c *container) Spacing() int {
	return c.spacing
}

func (c *container) SetSpacing(n int) error {
	if n < 0 {
		return fmt.Errorf("drawing: spacing %d: %w", n, ErrInvalidValue)
	}
	c.spacing = n
	return nil
}

// Enter adds a drawable, keyed by identity. Insertion order is layout
// order.
func (c *container) Enter(d Drawable) error {
	if _, ok := c.index[d.ID()]; ok {
		return fmt.Errorf("drawing: drawable %d: %w", d.ID(), ErrDuplicateMember)
	}
	c.index[d.ID()] = len(c.members)
	c.members = append(c.members, d)
	return nil
}

// Leave removes a drawable, preserving the order of the rest.
func (c *container) Leave(d Drawable) error {
	slot, ok := c.index[d.ID()]
	if !ok {
		return fmt.Errorf("drawing: drawable %d: %w", d.ID(), ErrNotMember)
	}
	delete(c.index, d.ID())
	c.members = append(c.members[:slot], c.members[slot+1:]...)
	for i := slot; i < len(c.members); i++ {
		c.index[c.members[i].ID()] = i
	}
	return nil
}

func (c *container) Len() int {
	return len(c.members)
}
