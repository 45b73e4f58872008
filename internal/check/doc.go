// Package check provides a build-profile-gated assertion switch.
//
// Checks guarded by [Enabled] compile away in default builds and are only
// active when the binary is built with the "checked" tag. Unchecked fast
// paths use the switch to catch contract violations during development
// without paying for the checks in production builds.
package check
