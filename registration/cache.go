package registration

import "sync"

// Cache is a per-call URL→document memoization map (I5: any URL fetched more
// than once within one resolve call issues exactly one HTTP request). A
// fresh Cache must be created at the top of each public resolver call and
// discarded on return; no instance may be reused or shared across calls.
type Cache struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewCache returns an empty session cache.
func NewCache() *Cache {
	return &Cache{docs: make(map[string][]byte)}
}

func (c *Cache) get(url string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	body, ok := c.docs[url]
	return body, ok
}

func (c *Cache) put(url string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs[url] = body
}
