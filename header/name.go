package header

import (
	"github.com/ghettovoice/gohttp/internal/bytesutil"
	"github.com/ghettovoice/gohttp/internal/constraints"
	"github.com/ghettovoice/gohttp/internal/errorutil"
	"github.com/ghettovoice/gohttp/internal/grammar"
	"github.com/ghettovoice/gohttp/internal/stringutils"
)

// Name represents an HTTP header field name in its canonical lowercase form.
type Name string

// NewName constructs a Name from the given input s (string or []byte).
// The input must be a non-empty token; it is stored lowercased.
func NewName[T constraints.Byteseq](s T) (Name, error) {
	if !grammar.IsToken(s) {
		return "", ErrInvalidName
	}
	return Name(stringutils.LCase(string(s))), nil
}

// MustName is like [NewName] but panics on invalid input.
// It is intended for trusted constants.
func MustName[T constraints.Byteseq](s T) Name {
	n, err := NewName(s)
	if err != nil {
		panic(errorutil.NewWrapperError(err, "%q", s))
	}
	return n
}

// IsValid reports whether the Name is a valid token.
func (n Name) IsValid() bool { return grammar.IsToken(n) }

// String returns the name as a string.
func (n Name) String() string { return string(n) }

// Bytes returns the name's bytes.
// The slice aliases the name's storage and must not be modified.
func (n Name) Bytes() []byte { return bytesutil.Bytes(string(n)) }

// Equal compares this Name with another Name, *Name or string,
// ignoring case.
func (n Name) Equal(val any) bool {
	var other Name
	switch v := val.(type) {
	case Name:
		other = v
	case *Name:
		if v == nil {
			return false
		}
		other = *v
	case string:
		other = Name(v)
	default:
		return false
	}
	return stringutils.LCase(n) == stringutils.LCase(other)
}

// Value converts the name to a field value.
// Every legal name byte is a legal value byte, so the conversion never
// fails, see [NewValueFromName].
func (n Name) Value() Value { return NewValueFromName(n) }
