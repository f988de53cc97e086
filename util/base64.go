package util

import (
	"encoding/base64"
	"strings"
)

func DecodeUnpaddedBase64String(val string) ([]byte, error) {
	return base64.RawStdEncoding.DecodeString(val)
}

// DecodeBase64String decodes the inputs a browser's atob accepts: ASCII
// whitespace is ignored and padding is optional, but when present it must
// complete the final quantum.
func DecodeBase64String(val string) ([]byte, error) {
	val = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\f', '\r':
			return -1
		}
		return r
	}, val)

	if len(val)%4 == 0 {
		if strings.HasSuffix(val, "==") {
			val = val[:len(val)-2]
		} else if strings.HasSuffix(val, "=") {
			val = val[:len(val)-1]
		}
	}
	if len(val)%4 == 1 {
		return nil, base64.CorruptInputError(len(val))
	}
	return DecodeUnpaddedBase64String(val)
}

func EncodeBase64ToString(val []byte) string {
	return base64.StdEncoding.EncodeToString(val)
}
