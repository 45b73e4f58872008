package header

import (
	"bytes"
	"io"
	"log/slog"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gohttp/internal/bytesutil"
	"github.com/ghettovoice/gohttp/internal/check"
	"github.com/ghettovoice/gohttp/internal/constraints"
	"github.com/ghettovoice/gohttp/internal/errorutil"
	"github.com/ghettovoice/gohttp/internal/grammar"
	"github.com/ghettovoice/gohttp/internal/ioutil"
	"github.com/ghettovoice/gohttp/internal/stringutils"
)

// Value represents an HTTP header field value.
//
// The storage is immutable once constructed: [Value.Clone] and the
// accessors share it instead of copying, so independent handles may be
// read concurrently without synchronization. The sensitivity flag is the
// only mutable field and requires exclusive access to mutate.
//
// The zero Value is an empty, non-sensitive value.
type Value struct {
	b         []byte
	sensitive bool
}

// NewValue constructs a Value from the given input s (string or []byte).
//
// Every byte must be legal inside a field value: visible ASCII, HTAB or an
// opaque octet (128-255); otherwise [ErrInvalidValue] is returned. The
// input is copied, so the caller keeps ownership of s.
func NewValue[T constraints.Byteseq](s T) (Value, error) {
	if !grammar.IsValue(s) {
		return Value{}, ErrInvalidValue
	}
	buf := make([]byte, len(s))
	copy(buf, s)
	return Value{b: buf}, nil
}

// MustValue is like [NewValue] but panics on invalid input.
// It is intended for trusted constants.
func MustValue[T constraints.Byteseq](s T) Value {
	v, err := NewValue(s)
	if err != nil {
		panic(errorutil.NewWrapperError(err, "%q", s))
	}
	return v
}

// NewSharedValue constructs a Value that takes ownership of buf without
// copying. The buffer must not be modified by the caller afterwards.
//
// On a byte outside the permitted range it returns [ErrInvalidSharedValue],
// which also matches [ErrInvalidValue] under [errors.Is].
func NewSharedValue(buf []byte) (Value, error) {
	if !grammar.IsValue(buf) {
		return Value{}, errSharedValue
	}
	return Value{b: buf}, nil
}

// NewSharedValueUnchecked is like [NewSharedValue] but skips validation.
//
// The caller guarantees that buf holds only legal field value bytes and
// must not modify it afterwards. Builds with the "checked" tag re-validate
// and panic on violation; default builds perform no check.
func NewSharedValueUnchecked(buf []byte) Value {
	if check.Enabled && !grammar.IsValue(buf) {
		panic("header: NewSharedValueUnchecked with invalid bytes")
	}
	return Value{b: buf}
}

// NewValueFromName constructs a Value from a field name.
// Every legal name byte is a legal value byte, so the conversion never
// fails and performs no copy.
func NewValueFromName(n Name) Value {
	return Value{b: bytesutil.Bytes(string(n))}
}

// Bytes returns the value's bytes.
// The slice aliases the value's storage and must not be modified.
func (v Value) Bytes() []byte { return v.b }

// Len returns the length of the value in bytes.
func (v Value) Len() int { return len(v.b) }

// IsEmpty reports whether the value has a length of zero bytes.
func (v Value) IsEmpty() bool { return len(v.b) == 0 }

// Text returns the value as a string if it only contains visible ASCII
// bytes (HTAB included), otherwise [ErrValueNotText].
// The returned string aliases the value's storage, no copy is made.
func (v Value) Text() (string, error) {
	if !grammar.IsVisibleASCIIText(v.b) {
		return "", ErrValueNotText
	}
	return bytesutil.String(v.b), nil
}

// Clone returns a handle to the same storage.
// Only the sensitivity flag is independent between the two values.
func (v Value) Clone() Value { return v }

// IsValid reports whether every stored byte is a legal field value byte.
// It is false only for a value built by a misused unchecked constructor.
func (v Value) IsValid() bool { return grammar.IsValue(v.b) }

// SetSensitive marks the value as carrying sensitive data.
// The setter requires exclusive access to the value.
func (v *Value) SetSensitive(sensitive bool) { v.sensitive = sensitive }

// IsSensitive reports whether the value represents sensitive data, such
// as credentials, that components like caches and HPACK encoders should
// neither persist nor index.
//
// Sensitivity is not factored into equality or ordering.
func (v Value) IsSensitive() bool { return v.sensitive }

// Equal compares this Value with another Value, *Value, string or []byte
// for byte-wise equality. The sensitivity flag is ignored.
func (v Value) Equal(val any) bool {
	switch o := val.(type) {
	case Value:
		return bytes.Equal(v.b, o.b)
	case *Value:
		if o == nil {
			return false
		}
		return bytes.Equal(v.b, o.b)
	case string:
		return string(v.b) == o
	case []byte:
		return bytes.Equal(v.b, o)
	default:
		return false
	}
}

// Compare returns the lexicographic byte ordering of v against other:
// -1 if v is less, 0 if equal, +1 if greater.
// The sensitivity flags of both values are ignored.
func (v Value) Compare(other Value) int { return bytes.Compare(v.b, other.b) }

// CompareBytes orders v against a raw byte sequence, see [Value.Compare].
func (v Value) CompareBytes(b []byte) int { return bytes.Compare(v.b, b) }

// CompareText orders v against a string, see [Value.Compare].
func (v Value) CompareText(s string) int { return bytes.Compare(v.b, bytesutil.Bytes(s)) }

// Render returns the value in its wire form: the raw bytes, unescaped.
func (v Value) Render() string {
	sb := stringutils.NewStrBldr()
	defer stringutils.FreeStrBldr(sb)
	v.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// RenderTo writes the value's wire form to w.
func (v Value) RenderTo(w io.Writer) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Write(v.b) //nolint:errcheck
	return errtrace.Wrap2(cw.Result())
}

const lowerhex = "0123456789abcdef"

// String returns a debug form of the value.
//
// A sensitive value renders as the literal Sensitive, never its content.
// Otherwise the value renders quoted: visible ASCII bytes verbatim, the
// quote character as `\"`, and any other byte as a `\xhh` escape.
func (v Value) String() string {
	if v.sensitive {
		return "Sensitive"
	}

	sb := stringutils.NewStrBldr()
	defer stringutils.FreeStrBldr(sb)

	sb.WriteByte('"')
	from := 0
	for i := 0; i < len(v.b); i++ {
		b := v.b[i]
		if !grammar.IsVisibleASCII(b) || b == '"' {
			if from != i {
				sb.Write(v.b[from:i])
			}
			if b == '"' {
				sb.WriteString(`\"`)
			} else {
				sb.WriteString(`\x`)
				sb.WriteByte(lowerhex[b>>4])
				sb.WriteByte(lowerhex[b&0xf])
			}
			from = i + 1
		}
	}
	sb.Write(v.b[from:])
	sb.WriteByte('"')

	return sb.String()
}

// LogValue implements [slog.LogValuer].
// Sensitive values are redacted, other values log their debug form.
func (v Value) LogValue() slog.Value {
	return slog.StringValue(v.String())
}
