// Package cache is the in-process query cache shared by the services.
package cache

import (
	"strings"
	"time"

	portssvc "github.com/SscSPs/workplace_services/internal/core/ports/services"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultSize = 256
	DefaultTTL  = 5 * time.Minute
)

// QueryCache is a bounded, expiring key/value cache.
type QueryCache struct {
	lru *expirable.LRU[string, any]
}

var _ portssvc.QueryCache = (*QueryCache)(nil)

// New creates a cache holding at most size entries, each for at most ttl.
// Non-positive arguments fall back to DefaultSize and DefaultTTL.
func New(size int, ttl time.Duration) *QueryCache {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &QueryCache{lru: expirable.NewLRU[string, any](size, nil, ttl)}
}

func (c *QueryCache) Get(key string) (any, bool) {
	return c.lru.Get(key)
}

func (c *QueryCache) Set(key string, value any) {
	c.lru.Add(key, value)
}

// Invalidate removes every entry whose key starts with one of prefixes.
func (c *QueryCache) Invalidate(prefixes ...string) {
	for _, key := range c.lru.Keys() {
		for _, p := range prefixes {
			if strings.HasPrefix(key, p) {
				c.lru.Remove(key)
				break
			}
		}
	}
}

// Len reports the number of live entries.
func (c *QueryCache) Len() int {
	return c.lru.Len()
}

// Nop is a QueryCache that never stores anything.
type Nop struct{}

var _ portssvc.QueryCache = Nop{}

func (Nop) Get(string) (any, bool) { return nil, false }
func (Nop) Set(string, any)        {}
func (Nop) Invalidate(...string)   {}
