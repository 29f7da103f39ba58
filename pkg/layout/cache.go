package layout

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the capacity of the package default split cache.
// It is sized to hold a layout for every row and every column of a large
// terminal a couple of times over, which is enough for most applications.
// Applications that need more can call InitCache before the first Split.
const DefaultCacheSize = 500

// Cache memoizes split results keyed on the (area, layout) pair under
// structural equality, evicting least-recently-used entries once full.
//
// Caching is purely a performance optimization: a cold cache, a warm cache,
// and no cache at all produce identical results. A renderer that wants
// isolated caching (for example one cache per worker) can own its own Cache
// instead of relying on the package default.
type Cache struct {
	mu   sync.Mutex
	size int
	lru  *lru.Cache[cacheKey, splitResult]
}

type cacheKey struct {
	area   Rect
	layout string
}

type splitResult struct {
	segments []Rect
	spacers  []Rect
}

// NewCache creates a cache with the given capacity. Capacities below one
// are raised to one.
func NewCache(size int) *Cache {
	if size < 1 {
		size = 1
	}
	// lru.New only fails for non-positive sizes, which are ruled out above.
	inner, err := lru.New[cacheKey, splitResult](size)
	if err != nil {
		panic(err)
	}
	return &Cache{size: size, lru: inner}
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Cap returns the cache capacity.
func (c *Cache) Cap() int {
	return c.size
}

// SplitWithSpacers solves the layout against the area, consulting and
// filling the cache. The returned slices are copies; callers may mutate
// them freely.
func (c *Cache) SplitWithSpacers(l Layout, area Rect) (segments, spacers []Rect) {
	key := cacheKey{area: area, layout: l.cacheKeyString()}

	c.mu.Lock()
	res, ok := c.lru.Get(key)
	c.mu.Unlock()
	if !ok {
		seg, spc := l.mustSplit(area)
		res = splitResult{segments: seg, spacers: spc}
		c.mu.Lock()
		c.lru.Add(key, res)
		c.mu.Unlock()
	}

	segments = make([]Rect, len(res.segments))
	copy(segments, res.segments)
	spacers = make([]Rect, len(res.spacers))
	copy(spacers, res.spacers)
	return segments, spacers
}

// Split is SplitWithSpacers without the spacer rectangles.
func (c *Cache) Split(l Layout, area Rect) []Rect {
	segments, _ := c.SplitWithSpacers(l, area)
	return segments
}

var (
	defaultCacheMu  sync.Mutex
	defaultCacheVal *Cache
)

// InitCache sets the capacity of the package default cache. It only takes
// effect if called before the default cache is first used (by Split or a
// previous InitCache); the return value reports whether this call won.
func InitCache(size int) bool {
	defaultCacheMu.Lock()
	defer defaultCacheMu.Unlock()
	if defaultCacheVal != nil {
		return false
	}
	defaultCacheVal = NewCache(size)
	return true
}

// defaultCache returns the package default cache, creating it with
// DefaultCacheSize on first use.
func defaultCache() *Cache {
	defaultCacheMu.Lock()
	defer defaultCacheMu.Unlock()
	if defaultCacheVal == nil {
		defaultCacheVal = NewCache(DefaultCacheSize)
	}
	return defaultCacheVal
}
