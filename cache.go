package wall

// ============================================================================
// Surface Cache
// ============================================================================
//
// Surfaces evicted from the wall are kept here and handed back to the data
// source as the reusable surface for the next item it builds. No identity is
// tracked: any cached surface may be reused for any index.
//
// Usage:
//   s := cache.Get()                 // nil when empty
//   s = source.ItemView(i, s, host)
//   ...
//   cache.Put(s)                     // after the surface is detached

// DefaultCacheSize bounds the number of detached surfaces kept for reuse.
const DefaultCacheSize = 64

// SurfaceCache is a bounded pool of detached surfaces. It is not safe for
// concurrent use; the wall only touches it from the UI thread.
type SurfaceCache struct {
	surfaces []Surface
	limit    int
}

// NewSurfaceCache creates a cache holding at most limit surfaces. A limit of
// zero or less uses DefaultCacheSize.
func NewSurfaceCache(limit int) *SurfaceCache {
	if limit <= 0 {
		limit = DefaultCacheSize
	}
	return &SurfaceCache{
		surfaces: make([]Surface, 0, min(limit, 16)),
		limit:    limit,
	}
}

// Get removes and returns a cached surface, or nil when the cache is empty.
func (c *SurfaceCache) Get() Surface {
	n := len(c.surfaces)
	if n == 0 {
		return nil
	}
	s := c.surfaces[n-1]
	// Clear the slot to avoid holding the reference
	c.surfaces[n-1] = nil
	c.surfaces = c.surfaces[:n-1]
	return s
}

// Put offers a detached surface for reuse. Surfaces beyond the limit are
// dropped. It reports whether the surface was kept.
func (c *SurfaceCache) Put(s Surface) bool {
	if s == nil || len(c.surfaces) >= c.limit {
		return false
	}
	c.surfaces = append(c.surfaces, s)
	return true
}

// Len returns the number of cached surfaces.
func (c *SurfaceCache) Len() int { return len(c.surfaces) }

// Clear drops every cached surface.
func (c *SurfaceCache) Clear() {
	for i := range c.surfaces {
		c.surfaces[i] = nil
	}
	c.surfaces = c.surfaces[:0]
}
