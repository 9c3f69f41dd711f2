//go:build spinx_cachelinesize_32

package opt

// CacheLineSize_ is fixed to 32 bytes by the spinx_cachelinesize_32 build tag.
// Use: go build -tags=spinx_cachelinesize_32
const CacheLineSize_ uintptr = 32
