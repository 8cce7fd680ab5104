package internal

import "sync"

import "github.com/tinne26/dotmatrix/core"

// Default cache size value, in bytes.
const DefaultCacheSize = 1*1024*1024 // 1 MiB

// Package level glyph cache. Converting ggfnt glyph masks into dot
// grids is not expensive, but text commands are rasterized again on
// every repetition, so keeping recent glyphs around pays off quickly.
var DefaultCache *Cache = NewCache(DefaultCacheSize)

const brokenCode = "broken code"
const noEntry32 uint32 = uint32(0b11111111_11111111_11111111_11111111)

// Approximate per-entry overhead, in bytes.
const entryOverhead = 48

type CachedGlyphEntry struct {
	Glyph *core.Content // Read-only.
	FontKey uint64 // Read-only.
	GlyphIndex uint64 // Read-only.
	ByteSize uint32 // Read-only.
	PrevEntryIndex uint32 // for LRU. none if == noEntry32. also used for nextFreeEntryIndex
	NextEntryIndex uint32 // for LRU. none if == noEntry32
}

type Cache struct {
	glyphsMap map[[2]uint64]uint32 // key is made with the font key and the glyph index
	glyphEntries []CachedGlyphEntry
	mruIndex uint32
	lruIndex uint32
	nextFreeEntryIndex uint32 // none if == noEntry32

	mutex sync.RWMutex
	capacity uint64
	currentSize uint64
	peakSize uint64 // (max ever size)
}

func NewCache(capacity int) *Cache {
	const maxCapacity = 256*1024*1024 // 256 MiB

	if capacity < 0 { panic("can't create cache with negative capacity") }
	if capacity > maxCapacity {
		capacity = maxCapacity
		Logger().Warn("excessive glyph cache capacity requested, limited to 256MiB")
	}
	return &Cache{
		capacity: uint64(capacity),
		glyphsMap: make(map[[2]uint64]uint32, 64),
		glyphEntries: make([]CachedGlyphEntry, 0, 64),
		nextFreeEntryIndex: noEntry32,
		mruIndex: noEntry32,
		lruIndex: noEntry32,
	}
}

// Returns the approximate number of bytes a glyph takes in the cache.
func GlyphByteSize(glyph *core.Content) uint32 {
	return uint32(entryOverhead + glyph.Width()*glyph.Height()*8)
}

func (self *Cache) SetCapacity(bytes int) {
	if bytes < 0 { panic("can't cache.SetCapacity(bytes) with bytes < 0") }
	self.mutex.Lock()
	if bytes == 0 {
		clear(self.glyphsMap)
		self.glyphEntries = self.glyphEntries[ : 0]
		self.mruIndex, self.lruIndex = noEntry32, noEntry32
		self.nextFreeEntryIndex = noEntry32
		self.currentSize = 0
	} else {
		for self.currentSize > uint64(bytes) {
			self.removeOldestEntry()
		}
	}
	self.capacity = uint64(bytes)
	self.mutex.Unlock()
}

func (self *Cache) Capacity() int {
	self.mutex.RLock()
	capacity := self.capacity
	self.mutex.RUnlock()
	return int(capacity)
}

func (self *Cache) CurrentSize() int {
	self.mutex.RLock()
	size := self.currentSize
	self.mutex.RUnlock()
	return int(size)
}

func (self *Cache) PeakSize() uint64 {
	self.mutex.RLock()
	peakSize := self.peakSize
	self.mutex.RUnlock()
	return peakSize
}

// Returns the number of glyphs currently in the cache.
func (self *Cache) NumEntries() int {
	self.mutex.RLock()
	numEntries := len(self.glyphsMap)
	self.mutex.RUnlock()
	return numEntries
}

// Stores the glyph for the given font key and glyph index. Glyphs that
// don't fit even in an empty cache are silently ignored.
func (self *Cache) SetGlyph(fontKey uint64, glyphIndex uint64, glyph *core.Content) {
	key := [2]uint64{fontKey, glyphIndex}
	byteSize := GlyphByteSize(glyph)

	self.mutex.Lock()
	defer self.mutex.Unlock()
	if uint64(byteSize) > self.capacity { return }

	// replacing an existing entry: unlink and drop it first
	if entryIndex, found := self.glyphsMap[key]; found {
		self.removeEntry(entryIndex)
	}

	// evict until the new glyph fits
	for self.currentSize + uint64(byteSize) > self.capacity {
		self.removeOldestEntry()
	}

	// take a free slot or grow
	var entryIndex uint32
	if self.nextFreeEntryIndex == noEntry32 {
		entryIndex = uint32(len(self.glyphEntries))
		self.glyphEntries = append(self.glyphEntries, CachedGlyphEntry{})
	} else {
		entryIndex = self.nextFreeEntryIndex
		self.nextFreeEntryIndex = self.glyphEntries[entryIndex].PrevEntryIndex
	}
	self.glyphEntries[entryIndex] = CachedGlyphEntry{
		Glyph: glyph,
		FontKey: fontKey,
		GlyphIndex: glyphIndex,
		ByteSize: byteSize,
		PrevEntryIndex: noEntry32,
		NextEntryIndex: noEntry32,
	}
	self.glyphsMap[key] = entryIndex
	self.linkAsMRU(entryIndex)

	self.currentSize += uint64(byteSize)
	if self.currentSize > self.peakSize {
		self.peakSize = self.currentSize
	}
}

// Returns the cached glyph, if any. Hits don't bump the entry's
// recency so lookups only need a read lock.
func (self *Cache) GetGlyph(fontKey uint64, glyphIndex uint64) (*core.Content, bool) {
	var glyph *core.Content
	key := [2]uint64{fontKey, glyphIndex}
	self.mutex.RLock()
	entryIndex, found := self.glyphsMap[key]
	if found { glyph = self.glyphEntries[entryIndex].Glyph }
	self.mutex.RUnlock()
	return glyph, found
}

// ---- internal list management (cache must be locked) ----

func (self *Cache) linkAsMRU(entryIndex uint32) {
	entry := &self.glyphEntries[entryIndex]
	entry.PrevEntryIndex = self.mruIndex
	entry.NextEntryIndex = noEntry32
	if self.mruIndex != noEntry32 {
		self.glyphEntries[self.mruIndex].NextEntryIndex = entryIndex
	} else {
		self.lruIndex = entryIndex
	}
	self.mruIndex = entryIndex
}

func (self *Cache) removeEntry(entryIndex uint32) {
	entry := &self.glyphEntries[entryIndex]
	if uint64(entry.ByteSize) > self.currentSize { panic(brokenCode) }

	// unlink
	if entry.PrevEntryIndex != noEntry32 {
		self.glyphEntries[entry.PrevEntryIndex].NextEntryIndex = entry.NextEntryIndex
	} else {
		self.lruIndex = entry.NextEntryIndex
	}
	if entry.NextEntryIndex != noEntry32 {
		self.glyphEntries[entry.NextEntryIndex].PrevEntryIndex = entry.PrevEntryIndex
	} else {
		self.mruIndex = entry.PrevEntryIndex
	}

	// release
	delete(self.glyphsMap, [2]uint64{entry.FontKey, entry.GlyphIndex})
	self.currentSize -= uint64(entry.ByteSize)
	entry.Glyph = nil // allow glyph to be GC'd
	entry.NextEntryIndex = noEntry32
	entry.PrevEntryIndex = self.nextFreeEntryIndex
	self.nextFreeEntryIndex = entryIndex
}

// Precondition: the cache is not empty.
func (self *Cache) removeOldestEntry() {
	if self.lruIndex == noEntry32 { panic(brokenCode) }
	self.removeEntry(self.lruIndex)
}
