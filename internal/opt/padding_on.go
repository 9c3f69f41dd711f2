//go:build !(amd64 || 386 || arm || mips || mipsle || wasm) && !spinx_disable_padding && !spinx_enable_padding

package opt

const EntryPadding_ = true

// EntryPad_ sits in front of a keyed lock entry's lock word and reference
// count so each heap-allocated entry fills a whole cache line. Waiters
// spinning on one key then never invalidate the line of another.
//
// On by default on 64-bit targets other than amd64, where neighbouring
// small allocations sharing a line cost more.
type EntryPad_ [CacheLineSize_ - EntryWordSize_]byte
