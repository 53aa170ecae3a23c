package services

import (
	"sync"
	"time"
)

// srpChallenge is the server half of a login in progress.
type srpChallenge struct {
	UserID       string
	Salt         string
	Verifier     string
	ServerSecret string
	ServerPublic string
	ExpiresAt    time.Time
}

// maxPendingChallenges bounds how many logins of one user may be in flight.
const maxPendingChallenges = 4

// challengeCache holds pending SRP challenges grouped by username, so logins
// from several devices do not overwrite each other. Entries expire after ttl;
// a background loop drops stale ones.
type challengeCache struct {
	mu      sync.Mutex
	entries map[string][]srpChallenge
	ttl     time.Duration
	now     func() time.Time
	stopCh  chan struct{}
	once    sync.Once
}

func newChallengeCache(ttl, cleanupInterval time.Duration) *challengeCache {
	c := &challengeCache{
		entries: make(map[string][]srpChallenge),
		ttl:     ttl,
		now:     time.Now,
		stopCh:  make(chan struct{}),
	}
	if cleanupInterval > 0 {
		go c.cleanupLoop(cleanupInterval)
	}
	return c
}

// Put adds a pending challenge for username, evicting the oldest one once
// the user has maxPendingChallenges.
func (c *challengeCache) Put(username string, ch srpChallenge) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch.ExpiresAt = c.now().Add(c.ttl)
	list := c.live(username)
	if len(list) >= maxPendingChallenges {
		list = list[len(list)-maxPendingChallenges+1:]
	}
	c.entries[username] = append(list, ch)
}

// Pending returns the live challenges of username, newest first.
func (c *challengeCache) Pending(username string) []srpChallenge {
	c.mu.Lock()
	defer c.mu.Unlock()
	list := c.live(username)
	out := make([]srpChallenge, 0, len(list))
	for i := len(list) - 1; i >= 0; i-- {
		out = append(out, list[i])
	}
	return out
}

// Remove drops the challenge that handed out serverPublic.
func (c *challengeCache) Remove(username, serverPublic string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	list := c.entries[username]
	kept := list[:0]
	for _, ch := range list {
		if ch.ServerPublic != serverPublic {
			kept = append(kept, ch)
		}
	}
	c.store(username, kept)
}

// Delete drops every pending challenge of username.
func (c *challengeCache) Delete(username string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, username)
}

// Len counts pending challenges across all users.
func (c *challengeCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, list := range c.entries {
		n += len(list)
	}
	return n
}

// live prunes expired challenges of username. Callers hold mu.
func (c *challengeCache) live(username string) []srpChallenge {
	list := c.entries[username]
	now := c.now()
	kept := list[:0]
	for _, ch := range list {
		if !now.After(ch.ExpiresAt) {
			kept = append(kept, ch)
		}
	}
	c.store(username, kept)
	return kept
}

func (c *challengeCache) store(username string, list []srpChallenge) {
	if len(list) == 0 {
		delete(c.entries, username)
		return
	}
	c.entries[username] = list
}

func (c *challengeCache) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

func (c *challengeCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for username := range c.entries {
		c.live(username)
	}
}

func (c *challengeCache) Stop() {
	c.once.Do(func() { close(c.stopCh) })
}
