package drawing

type Point struct {
	X, Y int
}

type Size struct {
	Width, Height int
}

type Rect struct {
	X, Y          int
	Width, Height int
}
