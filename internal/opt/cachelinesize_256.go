//go:build spinx_cachelinesize_256

package opt

// CacheLineSize_ is fixed to 256 bytes by the spinx_cachelinesize_256 build tag.
// Use: go build -tags=spinx_cachelinesize_256
const CacheLineSize_ uintptr = 256
