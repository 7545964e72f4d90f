package pathscore

import (
	"container/list"
	"sync"
)

// MaskCache is an LRU cache of haystack letter bitmasks, keyed by the
// haystack text. Computing a mask costs a full scan of the haystack, so
// hosts that rescore a stable candidate set on every keystroke should
// carry masks across calls and invalidate an entry only when the
// underlying text changes. The cache is safe for concurrent use.
type MaskCache struct {
	mu      sync.RWMutex
	maxSize int
	items   map[string]*list.Element
	lru     *list.List
}

// maskEntry holds one cached haystack mask.
type maskEntry struct {
	haystack string
	mask     Bitmask
}

// NewMaskCache creates an LRU mask cache holding at most maxSize
// entries. Non-positive sizes fall back to a default capacity.
func NewMaskCache(maxSize int) *MaskCache {
	if maxSize <= 0 {
		maxSize = 4096
	}
	return &MaskCache{
		maxSize: maxSize,
		items:   make(map[string]*list.Element),
		lru:     list.New(),
	}
}

// Get retrieves the cached mask for a haystack. ok is false on a miss.
func (c *MaskCache) Get(haystack string) (mask Bitmask, ok bool) {
	// Check with a read lock first; misses are the common case on a
	// cold cache.
	c.mu.RLock()
	_, present := c.items[haystack]
	c.mu.RUnlock()
	if !present {
		return 0, false
	}

	// Hit: take the write lock to update recency.
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, present := c.items[haystack]
	if !present {
		// Evicted between locks.
		return 0, false
	}
	c.lru.MoveToFront(elem)
	return elem.Value.(*maskEntry).mask, true
}

// Set stores the mask for a haystack, evicting the least recently used
// entry at capacity.
func (c *MaskCache) Set(haystack string, mask Bitmask) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[haystack]; ok {
		c.lru.MoveToFront(elem)
		elem.Value.(*maskEntry).mask = mask
		return
	}

	if c.lru.Len() >= c.maxSize {
		c.evictOldest()
	}

	elem := c.lru.PushFront(&maskEntry{haystack: haystack, mask: mask})
	c.items[haystack] = elem
}

// Delete invalidates the entry for a haystack whose text has changed.
func (c *MaskCache) Delete(haystack string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[haystack]; ok {
		c.removeElement(elem)
	}
}

// Clear removes every entry.
func (c *MaskCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.lru.Init()
}

// Len returns the number of cached entries.
func (c *MaskCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lru.Len()
}

// evictOldest removes the least recently used entry. Lock must be held.
func (c *MaskCache) evictOldest() {
	if elem := c.lru.Back(); elem != nil {
		c.removeElement(elem)
	}
}

// removeElement unlinks an element. Lock must be held.
func (c *MaskCache) removeElement(elem *list.Element) {
	c.lru.Remove(elem)
	delete(c.items, elem.Value.(*maskEntry).haystack)
}
