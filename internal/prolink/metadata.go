package prolink

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

// Device label fields (title, artist, album) travel as UTF-16 big endian.

// DecodeDeviceString converts a raw UTF-16BE label field to a Go string.
func DecodeDeviceString(b []byte) (string, error) {
	dec := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	out, err := dec.Bytes(b)
	if err != nil {
		return "", fmt.Errorf("failed to decode device string: %w", err)
	}
	return string(out), nil
}

// EncodeDeviceString converts a Go string to the device's UTF-16BE wire
// form. Used by the demo source.
func EncodeDeviceString(s string) []byte {
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
	out, err := enc.Bytes([]byte(s))
	if err != nil {
		return nil
	}
	return out
}
