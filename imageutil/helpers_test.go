package imageutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

var red = color.NRGBA{R: 255, A: 255}
var blue = color.NRGBA{B: 255, A: 255}

// makeSplitImage is red on the top half and blue on the bottom half, or red
// on the left and blue on the right when vertical is false.
func makeSplitImage(w int, h int, vertical bool) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := blue
			if (vertical && y < h/2) || (!vertical && x < w/2) {
				c = red
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func encodePng(t *testing.T, img image.Image) []byte {
	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func makeSource(t *testing.T, w int, h int, vertical bool) *Source {
	src, err := SourceFromReader(bytes.NewReader(encodePng(t, makeSplitImage(w, h, vertical))))
	require.NoError(t, err)
	return src
}

func colorName(c color.Color) string {
	r, g, b, a := c.RGBA()
	if a < 0x8000 {
		return "transparent"
	}
	if r > 0x8000 && g < 0x8000 && b < 0x8000 {
		return "red"
	}
	if b > 0x8000 && r < 0x8000 && g < 0x8000 {
		return "blue"
	}
	return "other"
}

// exifJpeg is a JPEG-framed APP1 segment holding a little endian TIFF
// structure with a single Orientation entry.
func exifJpeg(orientation uint16) []byte {
	tiff := []byte{
		'I', 'I', 0x2a, 0x00, 0x08, 0x00, 0x00, 0x00, // header, IFD0 at 8
		0x01, 0x00, // one entry
		0x12, 0x01, 0x03, 0x00, 0x01, 0x00, 0x00, 0x00, // Orientation, SHORT, count 1
		byte(orientation), byte(orientation >> 8), 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, // no next IFD
	}
	app1 := append([]byte("Exif\x00\x00"), tiff...)
	l := len(app1) + 2

	b := []byte{0xff, 0xd8, 0xff, 0xe1, byte(l >> 8), byte(l)}
	b = append(b, app1...)
	return append(b, 0xff, 0xd9)
}
