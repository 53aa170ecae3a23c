// Package keyvault owns the RSA key pairs kept inside the decrypted vault.
//
// Exactly one pair is primary and receives new email; older pairs stay
// forever so that historical email can still be opened by key id.
package keyvault

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrDecryptionKeyMissing means an item references a key id that is not in the vault.
	ErrDecryptionKeyMissing = errors.New("decryption key missing")

	// ErrNoPrimaryKey is returned by Primary before EnsurePrimary has run.
	ErrNoPrimaryKey = errors.New("vault has no primary encryption key")
)

// Store persists key pairs. The manager never does I/O on its own:
// callers pass the store to Load, EnsurePrimary and Rotate explicitly.
type Store interface {
	ListKeyPairs(ctx context.Context) ([]KeyPair, error)
	InsertKeyPair(ctx context.Context, kp KeyPair) error
	SetPrimaryKeyPair(ctx context.Context, id string) error
}

// Manager is an in-memory view of the vault key pairs.
type Manager struct {
	mu    sync.RWMutex
	pairs map[string]*KeyPair
	rsa   map[string]*rsa.PrivateKey

	generate func() (*KeyPair, error)
}

// NewManager builds a manager from already loaded pairs.
func NewManager(pairs []KeyPair) *Manager {
	m := &Manager{
		pairs:    make(map[string]*KeyPair, len(pairs)),
		rsa:      make(map[string]*rsa.PrivateKey),
		generate: GenerateKeyPair,
	}
	for i := range pairs {
		kp := pairs[i]
		m.pairs[kp.ID] = &kp
	}
	return m
}

// Load reads every pair from store.
func Load(ctx context.Context, store Store) (*Manager, error) {
	pairs, err := store.ListKeyPairs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load key pairs: %w", err)
	}
	return NewManager(pairs), nil
}

// Primary returns the pair used for new encryptions.
func (m *Manager) Primary() (*KeyPair, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.primaryLocked()
}

func (m *Manager) primaryLocked() (*KeyPair, error) {
	for _, kp := range m.pairs {
		if kp.IsPrimary {
			c := *kp
			return &c, nil
		}
	}
	return nil, ErrNoPrimaryKey
}

// ByID looks a pair up by id, primary or not.
func (m *Manager) ByID(id string) (*KeyPair, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	kp, ok := m.pairs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDecryptionKeyMissing, id)
	}
	c := *kp
	return &c, nil
}

// All returns every pair, oldest first.
func (m *Manager) All() []KeyPair {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]KeyPair, 0, len(m.pairs))
	for _, kp := range m.pairs {
		out = append(out, *kp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// PrivateKey returns the decoded RSA key for id. Decoded keys are cached.
func (m *Manager) PrivateKey(id string) (*rsa.PrivateKey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if k, ok := m.rsa[id]; ok {
		return k, nil
	}
	kp, ok := m.pairs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDecryptionKeyMissing, id)
	}
	k, err := kp.PrivateKey.RSA()
	if err != nil {
		return nil, err
	}
	m.rsa[id] = k
	return k, nil
}

// EnsurePrimary creates the first pair for a fresh vault. It is a no-op
// when a primary already exists.
func (m *Manager) EnsurePrimary(ctx context.Context, store Store) (*KeyPair, error) {
	m.mu.RLock()
	kp, err := m.primaryLocked()
	m.mu.RUnlock()
	if err == nil {
		return kp, nil
	}
	return m.Rotate(ctx, store)
}

// Rotate generates a new primary pair, persists it and demotes the
// previous primary. Previous pairs are kept.
func (m *Manager) Rotate(ctx context.Context, store Store) (*KeyPair, error) {
	kp, err := m.generate()
	if err != nil {
		return nil, fmt.Errorf("generate key pair: %w", err)
	}
	// stored as non-primary first; SetPrimaryKeyPair flips the flag
	if err := store.InsertKeyPair(ctx, *kp); err != nil {
		return nil, fmt.Errorf("store key pair: %w", err)
	}
	if err := store.SetPrimaryKeyPair(ctx, kp.ID); err != nil {
		return nil, fmt.Errorf("set primary key pair: %w", err)
	}

	m.mu.Lock()
	for _, p := range m.pairs {
		p.IsPrimary = false
	}
	kp.IsPrimary = true
	m.pairs[kp.ID] = kp
	m.mu.Unlock()

	c := *kp
	return &c, nil
}
