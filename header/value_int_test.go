package header_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/ghettovoice/gohttp/header"
)

func TestValueOf(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		val  header.Value
		want string
	}{
		{"zero", header.ValueOf(0), "0"},
		{"small", header.ValueOf(55), "55"},
		{"negative", header.ValueOf(-1), "-1"},
		{"int16 min", header.ValueOf(int16(math.MinInt16)), "-32768"},
		{"int16 max", header.ValueOf(int16(math.MaxInt16)), "32767"},
		{"uint16 max", header.ValueOf(uint16(math.MaxUint16)), "65535"},
		{"int32 min", header.ValueOf(int32(math.MinInt32)), "-2147483648"},
		{"int32 max", header.ValueOf(int32(math.MaxInt32)), "2147483647"},
		{"uint32 max", header.ValueOf(uint32(math.MaxUint32)), "4294967295"},
		{"int64 min", header.ValueOf(int64(math.MinInt64)), "-9223372036854775808"},
		{"int64 max", header.ValueOf(int64(math.MaxInt64)), "9223372036854775807"},
		{"uint64 max", header.ValueOf(uint64(math.MaxUint64)), "18446744073709551615"},
		{"int max", header.ValueOf(math.MaxInt), strconv.Itoa(math.MaxInt)},
		{"uint max", header.ValueOf(uint(math.MaxUint)), strconv.FormatUint(math.MaxUint, 10)},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if !c.val.Equal(c.want) {
				t.Errorf("value = %v, want %q", c.val, c.want)
			}
			if c.val.IsSensitive() {
				t.Error("IsSensitive() = true, want false")
			}
			text, err := c.val.Text()
			if err != nil {
				t.Fatalf("Text() error = %v", err)
			}
			if text != c.want {
				t.Errorf("Text() = %q, want %q", text, c.want)
			}
		})
	}
}
