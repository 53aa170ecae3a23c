package client

import "errors"

var (
	ErrUnavailable           = errors.New("server unavailable")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrLocalDataNotAvailable = errors.New("local data unavailable")
	// ErrServerProof means the server could not prove it knows the verifier.
	ErrServerProof = errors.New("server failed to prove its identity")
)
