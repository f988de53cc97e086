package util

import (
	"io"

	"github.com/gabriel-vasile/mimetype"
)

func DetectMimeType(r io.ReadSeeker) (string, error) {
	current, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return "", err
	}
	if _, err = r.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	mime, err := mimetype.DetectReader(r)
	if err != nil {
		return "", err
	}

	if _, err = r.Seek(current, io.SeekStart); err != nil {
		return "", err
	}
	return mime.String(), nil
}

func DetectMimeTypeOf(b []byte) string {
	return mimetype.Detect(b).String()
}
