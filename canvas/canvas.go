package canvas

import (
	"image"

	"github.com/fogleman/gg"
)

// Canvas is a mutable raster surface with a 2D drawing context. Resizing a
// canvas discards its pixels and resets the context transform.
type Canvas struct {
	width  int
	height int
	ctx    *Context2D
}

func New(width int, height int) *Canvas {
	c := &Canvas{}
	c.SetSize(width, height)
	return c
}

// FromImage creates a canvas the size of img with img drawn onto it.
func FromImage(img image.Image) *Canvas {
	b := img.Bounds()
	c := New(b.Dx(), b.Dy())
	c.ctx.DrawImage(img, 0, 0, float64(b.Dx()), float64(b.Dy()))
	return c
}

func (c *Canvas) Width() int {
	return c.width
}

func (c *Canvas) Height() int {
	return c.height
}

func (c *Canvas) SetSize(width int, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c.width = width
	c.height = height
	c.ctx = newContext2D(gg.NewContext(width, height))
}

func (c *Canvas) Context() *Context2D {
	return c.ctx
}

// Image returns the current pixel buffer. The buffer is replaced, not
// cleared, on resize so previously returned images stay intact.
func (c *Canvas) Image() image.Image {
	return c.ctx.dc.Image()
}
