// Package recoverycodes stores hashed single-use second-factor recovery codes.
package recoverycodes

import "context"

type Repository interface {
	// ReplaceAll drops the user's codes and stores the new hashes.
	ReplaceAll(ctx context.Context, userID string, codeHashes []string) error
	// Consume marks an unused code as used. It reports false when no unused
	// code with that hash exists.
	Consume(ctx context.Context, userID, codeHash string) (bool, error)
	CountUnused(ctx context.Context, userID string) (int, error)
}
