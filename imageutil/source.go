package imageutil

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/adrium/goheif"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/t2bot/media-canvas/common"
	"github.com/t2bot/media-canvas/util"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Source is a decoded image along with the encoded string it was decoded
// from. The length of Src is what the compressor treats as the image size.
type Source struct {
	Src    string
	Width  int
	Height int
	Image  image.Image
}

func NewSource(dataUrl string) (*Source, error) {
	f, err := DataURLToFile(dataUrl)
	if err != nil {
		return nil, err
	}
	return NewSourceFromFile(f, dataUrl)
}

// NewSourceFromFile decodes a file already produced by DataURLToFile. dataUrl
// is kept as Src and not decoded again.
func NewSourceFromFile(f *File, dataUrl string) (*Source, error) {
	img, err := decode(f.Data, f.Type)
	if err != nil {
		return nil, err
	}
	return newSource(dataUrl, img), nil
}

// SourceFromReader decodes raw image bytes and synthesizes a data URL for
// them so the result behaves like an image loaded from one.
func SourceFromReader(r io.Reader) (*Source, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	mime := util.DetectMimeTypeOf(b)
	img, err := decode(b, mime)
	if err != nil {
		return nil, err
	}
	return newSource(ToDataURL(mime, b), img), nil
}

// SourceFromImage wraps an already decoded image. Src is empty, so the result
// cannot be compressed until the caller sets it.
func SourceFromImage(img image.Image) *Source {
	return newSource("", img)
}

func newSource(src string, img image.Image) *Source {
	b := img.Bounds()
	return &Source{
		Src:    src,
		Width:  b.Dx(),
		Height: b.Dy(),
		Image:  img,
	}
}

func decode(b []byte, mime string) (image.Image, error) {
	if len(b) == 0 {
		return nil, common.ErrEmptySource
	}
	if mime == "image/heif" || mime == "image/heic" {
		img, err := goheif.Decode(bytes.NewReader(b))
		if err != nil {
			return nil, errors.Wrap(err, "heif: error decoding image")
		}
		return img, nil
	}

	img, err := imaging.Decode(bytes.NewReader(b))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, errors.Wrap(common.ErrUnsupportedImage, mime)
		}
		return nil, errors.Wrap(err, "error decoding image")
	}
	return img, nil
}
