// Package cli provides the interactive AliasKeeper command-line client.
//
// NewApp wires the local cache, the gRPC client, the application services
// and a vault session; App.Run starts a connectivity watcher and the REPL,
// which blocks until the user exits.
//
// Typical flow: register once, login (password, then a TOTP or recovery
// code if the account has one), work with credentials and email, lock or
// let the idle timer lock the vault, unlock again with the password or a
// remembered key. When the server is unreachable the cached vault copy can
// still be unlocked read-only; saves need the server.
package cli
