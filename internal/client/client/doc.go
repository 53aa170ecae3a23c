// Package client talks to the aliaskeeper server for the CLI.
//
// Client is the transport contract used by the services layer and GRPCClient
// its implementation over the shared JSON-codec gRPC service. GRPCClient
// attaches the access token to every call, rotates an expired token pair once
// using the refresh token and maps gRPC statuses back to the sentinels in
// package common, so callers match with errors.Is:
//
//	_, err := c.SaveVault(ctx, req)
//	if errors.Is(err, common.ErrRevisionConflict) {
//		// pull, re-apply and retry
//	}
//
// InitDatabase opens the local SQLite cache and applies the embedded goose
// migrations.
package client
