package drawing

import "image/color"

// Default palette for frames, labels and scene files that don't pick
// their own colors.
var (
	White = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Black = color.RGBA{A: 0xff}
	Gray  = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	Red   = color.RGBA{R: 0xff, A: 0xff}
	Green = color.RGBA{G: 0xff, A: 0xff}
	Blue  = color.RGBA{B: 0xff, A: 0xff}
)
