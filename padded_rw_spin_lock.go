package spinx

import (
	"unsafe"

	"github.com/llxisdsh/spinx/internal/opt"
)

// cacheLineSize is the size of a cache line in bytes.
const cacheLineSize = opt.CacheLineSize_

// PaddedRWSpinLock is an RWSpinLock padded to a full cache line.
//
// Use it when the lock sits next to frequently written data, or in arrays
// of locks (lock striping), so that spinning on one lock word does not
// invalidate a neighbour's line.
//
//	var stripes [16]spinx.PaddedRWSpinLock
//	stripes[hash&15].Lock()
type PaddedRWSpinLock struct {
	RWSpinLock
	_ [(cacheLineSize - unsafe.Sizeof(RWSpinLock{})%cacheLineSize) % cacheLineSize]byte
}
