// Package cache is a minimal in-process TTL cache for serialized values.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	data      []byte
	expiredAt time.Time
}

type Cache struct {
	lock  sync.RWMutex
	store map[string]entry
}

func New() *Cache {
	return &Cache{
		store: map[string]entry{},
	}
}

func (c *Cache) Get(key string) ([]byte, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	item, ok := c.store[key]
	if !ok {
		return nil, false
	}

	if time.Now().After(item.expiredAt) {
		return nil, false
	}

	return item.data, true
}

func (c *Cache) Set(key string, data []byte, lifeTime time.Duration) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.store[key] = entry{
		data:      data,
		expiredAt: time.Now().Add(lifeTime),
	}
}
