// Package constraints provides constraints for various types.
package constraints

// Byteseq represents a generic UTF-8 byte string.
type Byteseq interface {
	~string | ~[]byte
}

// Signed represents a signed integer of any supported width.
type Signed interface {
	~int | ~int16 | ~int32 | ~int64
}

// Unsigned represents an unsigned integer of any supported width.
type Unsigned interface {
	~uint | ~uint16 | ~uint32 | ~uint64
}

// Integer represents any supported integer type.
type Integer interface {
	Signed | Unsigned
}
