package icaltz

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/halvardcal/icalgo"
)

// memoCache is the process-wide VTIMEZONE memo: the one piece of shared
// mutable state in the whole library. Reads take the RWMutex's
// read path (the common case, a cache hit); a miss collapses concurrent
// callers for the same zoneID onto a single synthesis via singleflight, so
// N goroutines requesting "Europe/Paris" for the first time at once run the
// scan-and-detect algorithm exactly once between them.
type memoCache struct {
	mu     sync.RWMutex
	byZone map[string]*icalgo.Component
	group  singleflight.Group
}

func newMemoCache() *memoCache {
	return &memoCache{byZone: make(map[string]*icalgo.Component)}
}

func (c *memoCache) get(zoneID string, synth func() (*icalgo.Component, error)) (*icalgo.Component, error) {
	c.mu.RLock()
	if tz, ok := c.byZone[zoneID]; ok {
		c.mu.RUnlock()
		return tz, nil
	}
	c.mu.RUnlock()

	v, err, _ := c.group.Do(zoneID, func() (interface{}, error) {
		c.mu.RLock()
		if tz, ok := c.byZone[zoneID]; ok {
			c.mu.RUnlock()
			return tz, nil
		}
		c.mu.RUnlock()

		tz, err := synth()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.byZone[zoneID] = tz
		c.mu.Unlock()
		return tz, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*icalgo.Component), nil
}

func (c *memoCache) clear() {
	c.mu.Lock()
	c.byZone = make(map[string]*icalgo.Component)
	c.mu.Unlock()
}
