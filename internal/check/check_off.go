//go:build !checked

package check

// Enabled reports whether the build carries the development assertion layer.
const Enabled = false
