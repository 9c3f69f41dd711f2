//go:build !spinx_cachelinesize_32 && !spinx_cachelinesize_64 && !spinx_cachelinesize_128 && !spinx_cachelinesize_256

package opt

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize_ is the padding unit for lock words, taken from the target's
// cpu.CacheLinePad. The spinx_cachelinesize_* tags pin it instead.
const CacheLineSize_ = unsafe.Sizeof(cpu.CacheLinePad{})
