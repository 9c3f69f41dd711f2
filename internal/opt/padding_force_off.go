//go:build spinx_disable_padding

package opt

const EntryPadding_ = false

// EntryPad_ is the leading pad of a heap-allocated lock entry.
// Padding is force-disabled via the spinx_disable_padding build tag.
// Use: go build -tags=spinx_disable_padding
type EntryPad_ struct{}
