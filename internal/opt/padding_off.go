//go:build (amd64 || 386 || arm || mips || mipsle || wasm) && !spinx_disable_padding && !spinx_enable_padding

package opt

const EntryPadding_ = false

// EntryPad_ is empty here: a keyed lock entry stays at its 8-byte lock word
// and reference count. amd64 tolerates the shared lines well enough, and
// 32-bit targets cannot spare the memory.
type EntryPad_ struct{}
