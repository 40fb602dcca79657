package usecase

import "sync"

// communityLocks serializes write paths per community so that each
// store-then-cache pair is applied atomically relative to other writers.
type communityLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newCommunityLocks() *communityLocks {
	return &communityLocks{locks: make(map[int64]*sync.Mutex)}
}

// lock acquires the community's write lock and returns its release func.
func (c *communityLocks) lock(community int64) func() {
	c.mu.Lock()
	m, ok := c.locks[community]
	if !ok {
		m = &sync.Mutex{}
		c.locks[community] = m
	}
	c.mu.Unlock()

	m.Lock()
	return m.Unlock
}
