package header

import (
	"strconv"

	"github.com/ghettovoice/gohttp/internal/constraints"
)

// maxDecLen is the longest decimal representation of any supported
// integer, including the sign: len("-9223372036854775808").
// 16- and 32-bit widths top out at 6 and 11 bytes respectively and fit
// the same scratch space.
const maxDecLen = 20

// ValueOf constructs a Value from an integer of any supported width.
// Decimal digits are always legal field value bytes, so the conversion
// never fails. The digits are produced on the stack and stored with a
// single exact-size allocation, no formatting machinery involved.
func ValueOf[T constraints.Integer](num T) Value {
	var scratch [maxDecLen]byte
	var digits []byte
	if num < 0 {
		digits = strconv.AppendInt(scratch[:0], int64(num), 10)
	} else {
		digits = strconv.AppendUint(scratch[:0], uint64(num), 10)
	}
	buf := make([]byte, len(digits))
	copy(buf, digits)
	return Value{b: buf}
}
