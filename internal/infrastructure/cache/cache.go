package cache

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Item represents a cached item with expiration
type Item struct {
	Value      interface{}
	Expiration int64
}

// Store is an in-memory cache with expiration and coalesced read-through
// fetching. Concurrent misses on the same key share a single fetch, and a
// fetch that was superseded by Invalidate never overwrites the cache.
type Store struct {
	items map[string]Item
	gens  map[string]uint64
	mu    sync.RWMutex
	group singleflight.Group
}

// New creates a new cache store
func New() *Store {
	store := &Store{
		items: make(map[string]Item),
		gens:  make(map[string]uint64),
	}

	// Background goroutine to clean expired items
	go func() {
		for {
			time.Sleep(time.Minute)
			store.DeleteExpired()
		}
	}()

	return store
}

// Set adds an item to the cache with the given expiration duration
func (s *Store) Set(key string, value interface{}, duration time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = Item{
		Value:      value,
		Expiration: time.Now().Add(duration).UnixNano(),
	}
}

// Get retrieves an item from the cache
// Returns the item and a boolean indicating if the item was found
func (s *Store) Get(key string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, found := s.items[key]
	if !found {
		return nil, false
	}

	if time.Now().UnixNano() > item.Expiration {
		return nil, false
	}

	return item.Value, true
}

// GetOrFetch returns the cached value for key, or runs fetch exactly once for
// all concurrent callers and caches the result for ttl. A result whose fetch
// began before the most recent Invalidate is handed to its callers but not
// stored (last-write-wins by request generation, not by arrival order).
func (s *Store) GetOrFetch(key string, ttl time.Duration, fetch func() (interface{}, error)) (interface{}, error) {
	if value, found := s.Get(key); found {
		return value, nil
	}

	value, err, _ := s.group.Do(key, func() (interface{}, error) {
		// A concurrent caller may have populated the cache while this
		// call was waiting on the flight group.
		if value, found := s.Get(key); found {
			return value, nil
		}

		gen := s.generation(key)
		value, err := fetch()
		if err != nil {
			return nil, err
		}
		s.setIfCurrent(key, value, ttl, gen)
		return value, nil
	})
	return value, err
}

// Invalidate drops the cached value and bumps the key's generation so that
// any in-flight fetch started earlier cannot repopulate the cache.
func (s *Store) Invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gens[key]++
	delete(s.items, key)
}

func (s *Store) generation(key string) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gens[key]
}

func (s *Store) setIfCurrent(key string, value interface{}, duration time.Duration, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gens[key] != gen {
		return
	}
	s.items[key] = Item{
		Value:      value,
		Expiration: time.Now().Add(duration).UnixNano(),
	}
}

// DeleteExpired removes all expired items from the cache
func (s *Store) DeleteExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UnixNano()
	for k, v := range s.items {
		if now > v.Expiration {
			delete(s.items, k)
		}
	}
}

// Clear removes all items from the cache
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[string]Item)
}
