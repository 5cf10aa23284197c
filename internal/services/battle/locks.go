package battle

import "sync"

// channelLocks serialises everything that touches one channel's battle.
// Skill hooks run under the same lock, so the arena never locks itself.
type channelLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newChannelLocks() *channelLocks {
	return &channelLocks{locks: make(map[string]*sync.Mutex)}
}

func (c *channelLocks) lock(channelID string) func() {
	c.mu.Lock()
	l, ok := c.locks[channelID]
	if !ok {
		l = &sync.Mutex{}
		c.locks[channelID] = l
	}
	c.mu.Unlock()

	l.Lock()
	return l.Unlock
}
