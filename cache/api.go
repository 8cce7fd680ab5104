// Package cache exposes the controls for the glyph cache used when
// rasterizing text with ggfnt fonts.
package cache

import "github.com/tinne26/dotmatrix/internal"

// Default cache size value, in bytes.
const DefaultSize = 1*1024*1024 // 1 MiB

// cache size constant verification
func init() {
	if DefaultSize != internal.DefaultCacheSize {
		panic("DefaultSize != internal.DefaultCacheSize")
	}
}

// Returns the current cache capacity. It's either [DefaultSize] or
// the last value set by the user through [SetCapacity]().
func GetCapacity() int {
	return internal.DefaultCache.Capacity()
}

// Sets the maximum cache size, in bytes. The default value is [DefaultSize].
// Values above 256MiB are not allowed.
//
// To fully clear the cache, you can set the capacity to zero and then bring
// it up again. The cache evicts entries with an LRU policy as needed, so
// you rarely need to clear anything manually.
func SetCapacity(bytes int) {
	internal.DefaultCache.SetCapacity(bytes)
}

// Returns an approximation of the number of bytes taken by the glyphs
// currently stored in the cache.
func GetCurrentSize() int {
	return internal.DefaultCache.CurrentSize()
}

// Returns an approximation of the maximum amount of bytes that the cache
// has been filled with at any point of its life.
func GetPeakSize() int {
	return int(internal.DefaultCache.PeakSize())
}

// Returns the number of glyphs currently cached.
func GetNumEntries() int {
	return internal.DefaultCache.NumEntries()
}
