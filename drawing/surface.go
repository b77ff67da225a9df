package drawing

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Surface is the drawing boundary the layout strategies render against.
// The border argument follows the Filled sentinel: negative fills the
// shape, 0 strokes a hairline, positive strokes at that width.
type Surface interface {
	Rect(r Rect, clr color.Color, border int)
	Ellipse(r Rect, clr color.Color, border int)
	Text(s string, clr color.Color, at Point)
}

// Screen renders a Surface onto an ebiten image. The caller owns the
// image; Screen is cheap enough to rebuild every frame.
type Screen struct {
	dst  *ebiten.Image
	face text.Face
}

func NewScreen(dst *ebiten.Image) *Screen {
	return &Screen{
		dst:  dst,
		face: text.NewGoXFace(basicfont.Face7x13),
	}
}

func (s *Screen) Rect(r Rect, clr color.Color, border int) {
	x, y := float32(r.X), float32(r.Y)
	w, h := float32(r.Width), float32(r.Height)
	if border < 0 {
		vector.FillRect(s.dst, x, y, w, h, clr, false)
		return
	}
	vector.StrokeRect(s.dst, x, y, w, h, strokeWidth(border), clr, false)
}

const ellipseSegments = 32

func (s *Screen) Ellipse(r Rect, clr color.Color, border int) {
	cx := float32(r.X) + float32(r.Width)/2
	cy := float32(r.Y) + float32(r.Height)/2
	rx := float32(r.Width) / 2
	ry := float32(r.Height) / 2

	if border < 0 {
		// Scanline fill: one 1px rect per row, width from the ellipse
		// equation at the row center.
		for dy := 0; dy < r.Height; dy++ {
			ny := (float64(dy) + 0.5 - float64(ry)) / float64(ry)
			half := float32(float64(rx) * math.Sqrt(1-ny*ny))
			vector.FillRect(s.dst, cx-half, float32(r.Y+dy), 2*half, 1, clr, false)
		}
		return
	}

	// Segment outline, same approach the debug drawer takes for circles.
	width := strokeWidth(border)
	px := cx + rx
	py := cy
	for i := 1; i <= ellipseSegments; i++ {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		nx := cx + rx*float32(math.Cos(a))
		nyv := cy + ry*float32(math.Sin(a))
		vector.StrokeLine(s.dst, px, py, nx, nyv, width, clr, false)
		px, py = nx, nyv
	}
}

func (s *Screen) Text(str string, clr color.Color, at Point) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(s.dst, str, s.face, op)
}

func strokeWidth(border int) float32 {
	if border == 0 {
		return 1
	}
	return float32(border)
}
