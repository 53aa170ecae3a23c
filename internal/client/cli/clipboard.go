package cli

import (
	"encoding/base64"
	"fmt"
	"io"
	"sync"
)

// OSC52Clipboard sets the terminal clipboard with the OSC 52 escape
// sequence, which works over SSH and needs no platform helper.
type OSC52Clipboard struct {
	mu sync.Mutex
	w  io.Writer
}

func NewOSC52Clipboard(w io.Writer) *OSC52Clipboard {
	return &OSC52Clipboard{w: w}
}

// Write replaces the clipboard contents. An empty text clears it.
func (c *OSC52Clipboard) Write(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := fmt.Fprintf(c.w, "\x1b]52;c;%s\x07", base64.StdEncoding.EncodeToString([]byte(text)))
	return err
}
