//go:build spinx_debug

package opt

// Debug_ enables misuse detection in lock release paths.
// Unlocking a lock that is not held in the matching mode panics
// instead of silently corrupting the lock word.
const Debug_ = true
