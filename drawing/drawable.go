package drawing

// Drawable is anything a container can hold: it has a process-unique
// identity, a shape descriptor, and can draw itself onto a surface.
// Containers satisfy Drawable themselves, though layout treats every
// member as a leaf slot.
type Drawable interface {
	ID() int
	Shape() Shape
	Draw(dst Surface)
}

// Item is the leaf drawable: a single labeled shape.
type Item struct {
	id    int
	shape Shape
	pos   Point
}

func NewItem(ids *IDSource, shape Shape) (*Item, error) {
	s, err := normalizeShape(shape)
	if err != nil {
		return nil, err
	}
	return &Item{id: ids.Next(), shape: s}, nil
}

func (it *Item) ID() int {
	return it.id
}

func (it *Item) Shape() Shape {
	return it.shape
}

func (it *Item) SetShape(s Shape) error {
	n, err := normalizeShape(s)
	if err != nil {
		return err
	}
	it.shape = n
	return nil
}

// Position is where the item draws itself when rendered standalone.
// Containers ignore it and compute slot positions from their own config.
func (it *Item) Position() Point {
	return it.pos
}

func (it *Item) SetPosition(p Point) {
	it.pos = p
}

func (it *Item) Draw(dst Surface) {
	drawMember(dst, it, it.pos, it.shape.Size)
}
