// Package bytesutil provides zero-copy conversions between byte slices and strings.
package bytesutil

import "unsafe"

// String converts b to a string without copying.
// The returned string aliases b, so b must not be modified afterwards.
func String(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Bytes converts s to a byte slice without copying.
// The returned slice aliases the string storage and must not be modified.
func Bytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
