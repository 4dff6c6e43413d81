package openair

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/beetlebugorg/openair/pkg/yaixm"
)

// ResultCache keeps recently converted outputs in memory with LRU eviction.
//
// Conversion is deterministic, so an output can be reused for as long as the
// document contents and options are unchanged. Entries optionally expire to
// bound how long unused outputs are held.
//
// Example:
//
//	cache := openair.NewResultCache(64, time.Hour)
//	key, err := openair.CacheKey(doc, opts)
//	if err != nil {
//	    return err
//	}
//	text, err := cache.Get(key, func() (string, error) {
//	    return conv.Convert(doc, opts)
//	})
type ResultCache struct {
	lru *expirable.LRU[string, string]
}

// NewResultCache creates a cache holding up to size outputs. A ttl of zero
// keeps entries until they are evicted.
func NewResultCache(size int, ttl time.Duration) *ResultCache {
	return &ResultCache{lru: expirable.NewLRU[string, string](size, nil, ttl)}
}

// Get returns the cached output for key, calling loader on a miss. Failed
// loads are not cached.
func (c *ResultCache) Get(key string, loader func() (string, error)) (string, error) {
	if text, ok := c.lru.Get(key); ok {
		return text, nil
	}

	text, err := loader()
	if err != nil {
		return "", err
	}
	c.lru.Add(key, text)
	return text, nil
}

// Len returns the number of cached outputs.
func (c *ResultCache) Len() int {
	return c.lru.Len()
}

// Purge empties the cache.
func (c *ResultCache) Purge() {
	c.lru.Purge()
}

// CacheKey identifies a conversion by the document's content digest and the
// options. Documents with equal release information but different records
// get different keys.
func CacheKey(doc *yaixm.Document, opts Options) (string, error) {
	digest, err := doc.Digest()
	if err != nil {
		return "", fmt.Errorf("cache key: %w", err)
	}
	return fmt.Sprintf("%s|%s", digest, opts.internal()), nil
}
