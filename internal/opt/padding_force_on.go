//go:build spinx_enable_padding

package opt

const EntryPadding_ = true

// EntryPad_ is the leading pad of a heap-allocated lock entry.
// It fills the line ahead of the 8-byte lock word and reference count.
// Padding is force-enabled via the spinx_enable_padding build tag.
// Use: go build -tags=spinx_enable_padding
type EntryPad_ [CacheLineSize_ - EntryWordSize_]byte
