package header

import "github.com/ghettovoice/gohttp/internal/errorutil"

// Error represents a header error.
// See [errorutil.Error].
type Error = errorutil.Error

const (
	// ErrInvalidValue is returned when a field value byte falls outside
	// the permitted range.
	ErrInvalidValue Error = "invalid header value"
	// ErrValueNotText is returned by [Value.Text] when the value holds
	// bytes outside the visible ASCII range.
	ErrValueNotText Error = "header value is not visible ASCII"
	// ErrInvalidSharedValue is the [ErrInvalidValue] condition reported
	// by [NewSharedValue], kept as a distinct kind.
	ErrInvalidSharedValue Error = "invalid header value bytes"
	// ErrInvalidName is returned when a field name is not a valid token.
	ErrInvalidName Error = "invalid header name"
)

// The shared-buffer constructor reports both kinds through one pre-built
// error so the failure path allocates nothing.
var errSharedValue = errorutil.NewWrapperError(ErrInvalidSharedValue, error(ErrInvalidValue))
