package keystore

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/aliaskeeper/internal/common"
)

// Memory keeps the key in process memory behind an optional prompt.
// It backs tests and desktop sessions without a platform keychain.
type Memory struct {
	mu     sync.Mutex
	key    []byte
	prompt Prompt
}

type MemoryOption func(*Memory)

// WithPrompt gates Store and Retrieve behind p.
func WithPrompt(p Prompt) MemoryOption {
	return func(m *Memory) { m.prompt = p }
}

func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{}
	for _, o := range opts {
		o(m)
	}
	return m
}

func (m *Memory) IsAvailable() bool { return true }

func (m *Memory) Store(ctx context.Context, key []byte) <-chan error {
	out := make(chan error, 1)
	c := append([]byte(nil), key...)

	go func() {
		if err := await(ctx, m.prompt); err != nil {
			common.WipeByteArray(c)
			out <- err
			return
		}
		m.mu.Lock()
		common.WipeByteArray(m.key)
		m.key = c
		m.mu.Unlock()
		out <- nil
	}()
	return out
}

func (m *Memory) Retrieve(ctx context.Context) <-chan Result {
	out := make(chan Result, 1)

	go func() {
		m.mu.Lock()
		empty := m.key == nil
		m.mu.Unlock()
		if empty {
			out <- Result{Err: ErrKeyNotFound}
			return
		}

		if err := await(ctx, m.prompt); err != nil {
			out <- Result{Err: err}
			return
		}

		m.mu.Lock()
		defer m.mu.Unlock()
		if m.key == nil {
			out <- Result{Err: ErrKeyNotFound}
			return
		}
		out <- Result{Key: append([]byte(nil), m.key...)}
	}()
	return out
}

func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	common.WipeByteArray(m.key)
	m.key = nil
}

// Unavailable is used on platforms without a secure store.
type Unavailable struct{}

func (Unavailable) IsAvailable() bool { return false }

func (Unavailable) Store(context.Context, []byte) <-chan error {
	out := make(chan error, 1)
	out <- ErrNotAvailable
	return out
}

func (Unavailable) Retrieve(context.Context) <-chan Result {
	out := make(chan Result, 1)
	out <- Result{Err: ErrNotAvailable}
	return out
}

func (Unavailable) Clear() {}

var (
	_ SecureKeyStore = (*Memory)(nil)
	_ SecureKeyStore = Unavailable{}
)
