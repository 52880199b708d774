package cache

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Cache is a thread-safe in-memory store for rendered fragments and
// backend responses, built on sync.Map.
type Cache struct {
	m sync.Map
	// tagIndex maps tag string to a set of keys (as *sync.Map used as a set)
	tagIndex sync.Map
}

var (
	once     sync.Once
	instance *Cache
)

func GetInstance() *Cache {
	once.Do(func() {
		instance = NewCache()
	})
	return instance
}

// NewCache creates a new Cache instance.
func NewCache() *Cache {
	return &Cache{}
}

// cacheItem holds a value and its expiration time.
type cacheItem struct {
	Value     interface{}
	ExpiresAt int64 // Unix timestamp in nanoseconds; 0 means no expiration
}

func (i cacheItem) expired(now int64) bool {
	return i.ExpiresAt > 0 && now > i.ExpiresAt
}

// Set stores a value for a key with an optional TTL (in seconds) and optional
// tags. If ttl is 0, the value does not expire.
func (c *Cache) Set(key, value interface{}, ttl int64, tags []string) {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = time.Now().Add(time.Duration(ttl) * time.Second).UnixNano()
	}
	c.m.Store(key, cacheItem{Value: value, ExpiresAt: expiresAt})
	if len(tags) > 0 {
		c.TagKey(key, tags)
	}
}

// Get retrieves a value for a key. Returns (value, true) if found and not
// expired, (nil, false) otherwise. Expired entries are deleted on read.
func (c *Cache) Get(key interface{}) (interface{}, bool) {
	v, ok := c.m.Load(key)
	if !ok {
		return nil, false
	}
	item, isItem := v.(cacheItem)
	if !isItem {
		return v, true
	}
	if item.expired(time.Now().UnixNano()) {
		c.Delete(key)
		return nil, false
	}
	return item.Value, true
}

// GetOrDefault retrieves a value for a key. Returns the value if found,
// otherwise returns the default value.
func (c *Cache) GetOrDefault(key, defaultValue interface{}) interface{} {
	if v, ok := c.Get(key); ok {
		return v
	}
	return defaultValue
}

// GetOrSet returns the cached value for key, or calls fill, stores its result
// with the given TTL and tags, and returns it. A fill error is returned to the
// caller and nothing is stored.
func (c *Cache) GetOrSet(key interface{}, ttl int64, tags []string, fill func() (interface{}, error)) (interface{}, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := fill()
	if err != nil {
		return nil, err
	}
	c.Set(key, v, ttl, tags)
	return v, nil
}

// Delete removes a key from the cache and from all tag sets.
func (c *Cache) Delete(key interface{}) {
	c.m.Delete(key)
	c.tagIndex.Range(func(_, val interface{}) bool {
		val.(*sync.Map).Delete(key)
		return true
	})
}

// DeleteMany removes multiple keys from the cache.
func (c *Cache) DeleteMany(keys ...interface{}) {
	for _, key := range keys {
		c.Delete(key)
	}
}

func makeCompositeKey(keys ...interface{}) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%v", k)
	}
	return strings.Join(parts, "|")
}

// SetN stores a value for a composite key with an optional TTL (in seconds)
// and optional tags.
func (c *Cache) SetN(keys []interface{}, value interface{}, ttl int64, tags []string) {
	c.Set(makeCompositeKey(keys...), value, ttl, tags)
}

// GetN retrieves a value for a composite key.
func (c *Cache) GetN(keys ...interface{}) (interface{}, bool) {
	return c.Get(makeCompositeKey(keys...))
}

func (c *Cache) DeleteN(keys ...interface{}) {
	c.Delete(makeCompositeKey(keys...))
}

// GetMany retrieves values for multiple keys. If a key is not found or
// expired, the corresponding slot is nil.
func (c *Cache) GetMany(keys ...interface{}) []interface{} {
	results := make([]interface{}, len(keys))
	for i, key := range keys {
		if v, ok := c.Get(key); ok {
			results[i] = v
		}
	}
	return results
}

// IterateFilter iterates over all live entries and returns the values for
// which the callback returns true. The callback receives unwrapped values.
func (c *Cache) IterateFilter(filter func(key, value interface{}) bool) []interface{} {
	now := time.Now().UnixNano()
	var results []interface{}
	c.m.Range(func(key, value interface{}) bool {
		v := value
		if item, isItem := value.(cacheItem); isItem {
			if item.expired(now) {
				return true
			}
			v = item.Value
		}
		if filter(key, v) {
			results = append(results, v)
		}
		return true
	})
	return results
}

// TagKey assigns one or more tags to a cache key.
func (c *Cache) TagKey(key interface{}, tags []string) {
	for _, tag := range tags {
		val, _ := c.tagIndex.LoadOrStore(tag, &sync.Map{})
		val.(*sync.Map).Store(key, struct{}{})
	}
}

// UntagKey removes one or more tags from a cache key.
func (c *Cache) UntagKey(key interface{}, tags []string) {
	for _, tag := range tags {
		if val, ok := c.tagIndex.Load(tag); ok {
			val.(*sync.Map).Delete(key)
		}
	}
}

// GetKeysByTag returns all keys assigned to a tag.
func (c *Cache) GetKeysByTag(tag string) []interface{} {
	var keys []interface{}
	if val, ok := c.tagIndex.Load(tag); ok {
		val.(*sync.Map).Range(func(key, _ interface{}) bool {
			keys = append(keys, key)
			return true
		})
	}
	return keys
}

// DeleteByTag deletes all cache entries assigned to a tag.
func (c *Cache) DeleteByTag(tag string) {
	if val, ok := c.tagIndex.Load(tag); ok {
		km := val.(*sync.Map)
		km.Range(func(key, _ interface{}) bool {
			c.m.Delete(key)
			km.Delete(key)
			return true
		})
		c.tagIndex.Delete(tag)
	}
}

/*
Usage:

cache := cache.GetInstance()
cache.Set("departments:nav", html, 300, []string{"departments"})
cache.SetN([]interface{}{"products", page}, body, 60, []string{"products"})

html, err := cache.GetOrSet("departments:nav", 300, []string{"departments"}, func() (interface{}, error) {
	return renderNav()
})

// Invalidate everything for a tag after a refresh:
cache.DeleteByTag("products")
*/
