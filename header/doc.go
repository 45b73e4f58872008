// Package header implements HTTP header field types defined in the RFC 9110.
//
// The central type is [Value]: an immutable header field value. In practice
// field values are usually visible ASCII, but the HTTP spec allows opaque
// octets (128-255) as well, so a Value is a byte sequence first and a string
// only on request: [Value.Text] fails when the value holds bytes that cannot
// be exposed as text.
//
// A Value can be marked sensitive. The flag is advisory: it never
// participates in equality or ordering, but the debug form and the slog
// output of a sensitive value redact its content, and protocol encoders are
// expected to consult it to avoid indexing or persisting the value.
package header
