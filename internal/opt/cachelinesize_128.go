//go:build spinx_cachelinesize_128

package opt

// CacheLineSize_ is fixed to 128 bytes by the spinx_cachelinesize_128 build tag.
// Use: go build -tags=spinx_cachelinesize_128
const CacheLineSize_ uintptr = 128
