package imageutil

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/t2bot/media-canvas/common"
	"github.com/t2bot/media-canvas/metrics"
	"github.com/t2bot/media-canvas/util"
)

var dataUrlMimeRegex = regexp.MustCompile(`:(.*?);`)

// File is a named, immutable byte buffer with a MIME type.
type File struct {
	Name         string
	Type         string
	Data         []byte
	LastModified time.Time
}

func (f *File) Size() int {
	return len(f.Data)
}

func (f *File) Reader() io.ReadSeeker {
	return bytes.NewReader(f.Data)
}

// Sniff detects the content type from the payload itself. It may disagree
// with Type, which is whatever the data URL header claimed.
func (f *File) Sniff() string {
	return util.DetectMimeTypeOf(f.Data)
}

// DataURLToFile decodes a base64 data URL into a File named after the current
// time in milliseconds. Names are not unique across calls within the same
// millisecond.
func DataURLToFile(dataUrl string) (*File, error) {
	metrics.Operations.WithLabelValues("data_url").Inc()
	f, err := dataUrlToFile(dataUrl)
	if err != nil {
		metrics.OperationFailures.WithLabelValues("data_url").Inc()
		return nil, err
	}
	metrics.DataUrlBytes.Observe(float64(f.Size()))
	return f, nil
}

func dataUrlToFile(dataUrl string) (*File, error) {
	header, payload, found := strings.Cut(dataUrl, ",")
	if !found {
		return nil, errors.Wrap(common.ErrMalformedDataUrl, "missing payload separator")
	}

	match := dataUrlMimeRegex.FindStringSubmatch(header)
	if match == nil {
		return nil, errors.Wrap(common.ErrMalformedDataUrl, "missing mime type")
	}

	// Only the second comma separated segment is the payload
	payload, _, _ = strings.Cut(payload, ",")
	b, err := util.DecodeBase64String(payload)
	if err != nil {
		return nil, errors.Wrap(err, "error decoding data url payload")
	}

	now := util.NowMillis()
	return &File{
		Name:         fmt.Sprintf("img%d", now),
		Type:         match[1],
		Data:         b,
		LastModified: util.FromMillis(now),
	}, nil
}

func ToDataURL(mime string, b []byte) string {
	return "data:" + mime + ";base64," + util.EncodeBase64ToString(b)
}
