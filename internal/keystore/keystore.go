// Package keystore defines how the client caches the Master Key in a
// platform secure store (for example a biometric-gated OS keychain).
//
// Store and Retrieve may block on user interaction, so they return a
// channel immediately and deliver exactly one value on it. Cancelling the
// context (the user dismissed the prompt) yields ErrCancelled.
package keystore

import (
	"context"
	"errors"
)

var (
	ErrAuthenticationFailed = errors.New("keystore: authentication failed")
	ErrKeyNotFound          = errors.New("keystore: key not found")
	ErrNotAvailable         = errors.New("keystore: not available")
	ErrCancelled            = errors.New("keystore: cancelled")
)

// Result is the outcome of Retrieve.
type Result struct {
	Key []byte
	Err error
}

// SecureKeyStore is implemented by platform adapters.
type SecureKeyStore interface {
	IsAvailable() bool
	// Store saves a copy of key. The channel receives nil on success.
	Store(ctx context.Context, key []byte) <-chan error
	// Retrieve returns a copy of the stored key.
	Retrieve(ctx context.Context) <-chan Result
	// Clear removes the key. It never fails.
	Clear()
}

// Prompt stands in for the platform authentication UI. It returns nil when
// the user approved, ErrAuthenticationFailed when they did not, and should
// return when ctx is done.
type Prompt func(ctx context.Context) error

// await runs prompt and maps context cancellation to ErrCancelled.
func await(ctx context.Context, prompt Prompt) error {
	if prompt == nil {
		if ctx.Err() != nil {
			return ErrCancelled
		}
		return nil
	}
	done := make(chan error, 1)
	go func() { done <- prompt(ctx) }()

	select {
	case <-ctx.Done():
		return ErrCancelled
	case err := <-done:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return ErrCancelled
		}
		return err
	}
}
