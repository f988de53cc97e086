package imageutil

import (
	"errors"
	"io"
	"reflect"

	"github.com/dsoprea/go-exif/v3"
	"github.com/t2bot/media-canvas/common/rcontext"
	"github.com/t2bot/media-canvas/metrics"
)

const OrientationTag = "Orientation"

type TagResult struct {
	Value interface{}
	Err   error
}

// ReadTag returns the value of the named EXIF tag in r. A nil reader yields 0
// without any parsing. Missing EXIF data, unparseable EXIF data and absent
// tags all yield a nil value and no error; only failing to read r is an
// error. Single element values are unwrapped, so an orientation comes back as
// a uint16.
func ReadTag(ctx rcontext.RequestContext, r io.Reader, tagName string) (interface{}, error) {
	if r == nil {
		return 0, nil
	}
	metrics.Operations.WithLabelValues("exif").Inc()

	b, err := io.ReadAll(r)
	if err != nil {
		metrics.OperationFailures.WithLabelValues("exif").Inc()
		return nil, err
	}

	log := ctx.Log.WithField("tag", tagName)
	rawExif, err := exif.SearchAndExtractExif(b)
	if err != nil {
		if !errors.Is(err, exif.ErrNoExif) {
			log.Warn("Non-fatal error reading exif data: ", err)
		}
		metrics.ExifTags.WithLabelValues(tagName, "false").Inc()
		return nil, nil
	}

	tags, _, err := exif.GetFlatExifData(rawExif, nil)
	if err != nil {
		log.Warn("Non-fatal error parsing exif data: ", err)
		metrics.ExifTags.WithLabelValues(tagName, "false").Inc()
		return nil, nil
	}

	for _, t := range tags {
		if t.TagName == tagName {
			metrics.ExifTags.WithLabelValues(tagName, "true").Inc()
			return unwrapTagValue(t.Value), nil
		}
	}

	log.Debug("Tag not present")
	metrics.ExifTags.WithLabelValues(tagName, "false").Inc()
	return nil, nil
}

// ReadTagAsync runs ReadTag in the background. The channel receives exactly
// one result and is then closed.
func ReadTagAsync(ctx rcontext.RequestContext, r io.Reader, tagName string) <-chan TagResult {
	ch := make(chan TagResult, 1)
	go func() {
		defer close(ch)
		v, err := ReadTag(ctx, r, tagName)
		ch <- TagResult{Value: v, Err: err}
	}()
	return ch
}

// GetOrientation reads the EXIF orientation of r, returning 0 when there is
// none or it is not a valid orientation value.
func GetOrientation(ctx rcontext.RequestContext, r io.Reader) (int, error) {
	v, err := ReadTag(ctx, r, OrientationTag)
	if err != nil || v == nil {
		return 0, err
	}

	var orientation int
	switch o := v.(type) {
	case uint16:
		orientation = int(o)
	case uint32:
		orientation = int(o)
	case int:
		orientation = o
	default:
		ctx.Log.Warnf("Non-fatal error parsing orientation: unexpected type %T", v)
		return 0, nil
	}

	if orientation < 1 || orientation > 8 {
		// Some devices write 0 when they mean "no orientation"
		if orientation != 0 {
			ctx.Log.WithField("orientation", orientation).Warn("Ignoring out of range orientation")
		}
		return 0, nil
	}
	return orientation, nil
}

func unwrapTagValue(v interface{}) interface{} {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice || rv.Len() != 1 {
		return v
	}
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		return v // raw bytes stay raw
	}
	return rv.Index(0).Interface()
}
