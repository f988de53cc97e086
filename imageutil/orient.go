package imageutil

import (
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/t2bot/media-canvas/canvas"
	"github.com/t2bot/media-canvas/common"
)

// ExifOrientation is how to draw an image so it displays upright. The
// rotation is applied first, then the flips.
type ExifOrientation struct {
	Rotation       Rotation
	FlipHorizontal bool
	FlipVertical   bool
}

var orientations = map[int]ExifOrientation{
	1: {Rotation: RotateNone},
	2: {Rotation: RotateNone, FlipHorizontal: true},
	3: {Rotation: Rotate180},
	4: {Rotation: RotateNone, FlipVertical: true},
	5: {Rotation: Rotate90, FlipHorizontal: true}, // transpose
	6: {Rotation: Rotate90},
	7: {Rotation: Rotate270, FlipHorizontal: true}, // transverse
	8: {Rotation: Rotate270},
}

// OrientationOf maps an EXIF orientation value. 0 means "no orientation" and
// yields nil.
func OrientationOf(orientation int) (*ExifOrientation, error) {
	if orientation == 0 {
		return nil, nil
	}
	o, ok := orientations[orientation]
	if !ok {
		return nil, fmt.Errorf("%w: %d", common.ErrOrientationOutOfRange, orientation)
	}
	return &o, nil
}

// AutoOrient draws src onto c upright according to an EXIF orientation
// value, resizing c as needed.
func AutoOrient(src *Source, c *canvas.Canvas, orientation int) error {
	o, err := OrientationOf(orientation)
	if err != nil {
		return err
	}
	if src == nil || src.Image == nil {
		return common.ErrNoSource
	}
	if c == nil {
		return common.ErrNoCanvas
	}
	if o == nil {
		o = &ExifOrientation{Rotation: RotateNone}
	}

	c.SetSize(src.Width, src.Height)
	if err = RotateImg(src, Right, c, int(o.Rotation)); err != nil {
		return err
	}

	if o.FlipHorizontal || o.FlipVertical {
		result := c.Image()
		if o.FlipHorizontal {
			result = imaging.FlipH(result)
		}
		if o.FlipVertical {
			result = imaging.FlipV(result)
		}
		w, h := c.Width(), c.Height()
		c.SetSize(w, h)
		c.Context().DrawImage(result, 0, 0, float64(w), float64(h))
	}
	return nil
}
