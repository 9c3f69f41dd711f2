//go:build !spinx_debug

package opt

// Debug_ enables misuse detection in lock release paths.
// Use: go build -tags=spinx_debug
const Debug_ = false
