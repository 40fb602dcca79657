// Package cache holds the in-memory mirror of the schedule store.
package cache

import (
	"sync"

	"guild-planning/internal/model"
)

// daySchedules maps a canonical date to its events in insertion order.
type daySchedules map[string][]string

// EventCache mirrors persisted schedule rows, keyed by community then date.
// It is safe for concurrent use.
type EventCache struct {
	mu          sync.RWMutex
	communities map[int64]daySchedules
}

// New creates an empty EventCache.
func New() *EventCache {
	return &EventCache{communities: make(map[int64]daySchedules)}
}

// Rebuild drops all state and loads rows in the order given.
func (c *EventCache) Rebuild(rows []model.Row) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.communities = make(map[int64]daySchedules)
	for _, row := range rows {
		c.appendLocked(row.Community, row.Date, row.Text)
	}
}

// Get returns a copy of the events for (community, date); nil when there are none.
func (c *EventCache) Get(community int64, date string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	days, ok := c.communities[community]
	if !ok {
		return nil
	}
	events := days[date]
	if len(events) == 0 {
		return nil
	}
	return append([]string(nil), events...)
}

// Append adds event at the end of the (community, date) schedule.
func (c *EventCache) Append(community int64, date, event string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.appendLocked(community, date, event)
}

// ClearDate removes the (community, date) schedule and returns how many events it held.
func (c *EventCache) ClearDate(community int64, date string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	days, ok := c.communities[community]
	if !ok {
		return 0
	}
	removed := len(days[date])
	delete(days, date)
	if len(days) == 0 {
		delete(c.communities, community)
	}
	return removed
}

// ClearAll removes every schedule of community and returns how many events were dropped.
func (c *EventCache) ClearAll(community int64) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := countLocked(c.communities[community])
	delete(c.communities, community)
	return removed
}

// CountAll returns the number of cached events for community across all dates.
func (c *EventCache) CountAll(community int64) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return countLocked(c.communities[community])
}

// Total returns the number of cached events across all communities.
func (c *EventCache) Total() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := 0
	for _, days := range c.communities {
		total += countLocked(days)
	}
	return total
}

// Communities returns how many communities currently have at least one event.
func (c *EventCache) Communities() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.communities)
}

func (c *EventCache) appendLocked(community int64, date, event string) {
	days := c.getOrCreateLocked(community)
	days[date] = append(days[date], event)
}

func (c *EventCache) getOrCreateLocked(community int64) daySchedules {
	days, ok := c.communities[community]
	if !ok {
		days = make(daySchedules)
		c.communities[community] = days
	}
	return days
}

func countLocked(days daySchedules) int {
	n := 0
	for _, events := range days {
		n += len(events)
	}
	return n
}
