package canvas

import (
	"image"

	"github.com/fogleman/gg"
)

// Context2D mirrors the transform state of the underlying gg context so
// callers can inspect it.
type Context2D struct {
	dc     *gg.Context
	matrix gg.Matrix
}

func newContext2D(dc *gg.Context) *Context2D {
	return &Context2D{dc: dc, matrix: gg.Identity()}
}

// Rotate rotates subsequent drawing by angle radians, clockwise on screen.
func (c *Context2D) Rotate(angle float64) {
	c.dc.Rotate(angle)
	c.matrix = c.matrix.Rotate(angle)
}

func (c *Context2D) Translate(x float64, y float64) {
	c.dc.Translate(x, y)
	c.matrix = c.matrix.Translate(x, y)
}

func (c *Context2D) Scale(x float64, y float64) {
	c.dc.Scale(x, y)
	c.matrix = c.matrix.Scale(x, y)
}

func (c *Context2D) ResetTransform() {
	c.dc.Identity()
	c.matrix = gg.Identity()
}

func (c *Context2D) Transform() gg.Matrix {
	return c.matrix
}

// DrawImage draws img scaled into the dw x dh box at (dx, dy) in the current
// coordinate space. Empty boxes and empty images draw nothing.
func (c *Context2D) DrawImage(img image.Image, dx float64, dy float64, dw float64, dh float64) {
	b := img.Bounds()
	if b.Empty() || dw <= 0 || dh <= 0 {
		return
	}

	c.dc.Push()
	defer c.dc.Pop()
	c.dc.Translate(dx, dy)
	c.dc.Scale(dw/float64(b.Dx()), dh/float64(b.Dy()))
	c.dc.DrawImage(img, -b.Min.X, -b.Min.Y)
}
