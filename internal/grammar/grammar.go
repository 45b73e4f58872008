// Package grammar provides byte-level predicates for HTTP header fields
// as defined in the RFC 9110.
package grammar

import "github.com/ghettovoice/gohttp/internal/constraints"

// IsValueByte reports whether b is legal inside a header field value.
// Field values may carry opaque octets (128-255); only the control range
// and DEL are excluded, with HTAB as the single permitted control byte.
func IsValueByte(b byte) bool {
	return b >= 32 && b != 127 || b == '\t'
}

// IsVisibleASCII reports whether b is visible ASCII or HTAB.
// Unlike [IsValueByte] it excludes opaque octets, so it bounds the subset
// of field value bytes that can be exposed as text.
// The two predicates are not interchangeable.
func IsVisibleASCII(b byte) bool {
	return b >= 32 && b < 127 || b == '\t'
}

// IsValue reports whether every byte of s satisfies [IsValueByte].
func IsValue[T constraints.Byteseq](s T) bool {
	for i := 0; i < len(s); i++ {
		if !IsValueByte(s[i]) {
			return false
		}
	}
	return true
}

// IsVisibleASCIIText reports whether every byte of s satisfies [IsVisibleASCII].
func IsVisibleASCIIText[T constraints.Byteseq](s T) bool {
	for i := 0; i < len(s); i++ {
		if !IsVisibleASCII(s[i]) {
			return false
		}
	}
	return true
}

// tchar rule, RFC 9110 Section 5.6.2.
var tokenChars = func() (t [256]bool) {
	for _, c := range []byte("!#$%&'*+-.^_`|~") {
		t[c] = true
	}
	for c := byte('0'); c <= '9'; c++ {
		t[c] = true
	}
	for c := byte('a'); c <= 'z'; c++ {
		t[c] = true
	}
	for c := byte('A'); c <= 'Z'; c++ {
		t[c] = true
	}
	return t
}()

// IsTokenByte reports whether b is a tchar.
func IsTokenByte(b byte) bool { return tokenChars[b] }

// IsToken reports whether s is a non-empty sequence of tchars.
func IsToken[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !tokenChars[s[i]] {
			return false
		}
	}
	return true
}
