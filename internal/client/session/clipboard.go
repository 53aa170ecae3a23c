package session

import (
	"sync"
	"time"
)

// Clipboard is the system clipboard as far as the session cares.
type Clipboard interface {
	Write(text string) error
}

// ClipboardTimer copies secrets and clears them again after a delay. Every
// copy gets a new generation id; a pending clear only fires if no newer
// copy happened in between, so it never wipes something the user copied
// later.
type ClipboardTimer struct {
	mu    sync.Mutex
	clip  Clipboard
	delay time.Duration
	gen   uint64
	timer *time.Timer

	afterFunc func(d time.Duration, f func()) *time.Timer
}

func NewClipboardTimer(clip Clipboard, delay time.Duration) *ClipboardTimer {
	return &ClipboardTimer{clip: clip, delay: delay, afterFunc: time.AfterFunc}
}

// Copy writes text and schedules the clear. It returns the generation id
// of this copy.
func (c *ClipboardTimer) Copy(text string) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.clip.Write(text); err != nil {
		return 0, err
	}
	c.gen++
	gen := c.gen
	if c.timer != nil {
		c.timer.Stop()
	}
	if c.delay > 0 {
		c.timer = c.afterFunc(c.delay, func() { c.clearIf(gen) })
	}
	return gen, nil
}

func (c *ClipboardTimer) clearIf(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return
	}
	_ = c.clip.Write("")
	c.timer = nil
}

// Generation returns the id of the latest copy.
func (c *ClipboardTimer) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// Flush clears a pending secret right away. Lock calls it.
func (c *ClipboardTimer) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer == nil {
		return
	}
	c.timer.Stop()
	c.timer = nil
	c.gen++
	_ = c.clip.Write("")
}
