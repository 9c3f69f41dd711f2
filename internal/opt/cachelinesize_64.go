//go:build spinx_cachelinesize_64

package opt

// CacheLineSize_ is fixed to 64 bytes by the spinx_cachelinesize_64 build tag.
// Use: go build -tags=spinx_cachelinesize_64
const CacheLineSize_ uintptr = 64
