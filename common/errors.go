package common

import (
	"errors"
)

var ErrMalformedDataUrl = errors.New("malformed data url")
var ErrNoSource = errors.New("no image source")
var ErrNoCanvas = errors.New("no canvas")
var ErrEmptySource = errors.New("image source has no encoded data")
var ErrUnsupportedImage = errors.New("unsupported image type")
var ErrOrientationOutOfRange = errors.New("orientation out of range")
