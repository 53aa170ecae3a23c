package common

import "time"

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// MasterKeySize is the length of the derived Master Key in bytes.
const MasterKeySize = 32

// Lockout defaults; the server config may override them.
const (
	DefaultLockoutThreshold = 10
	DefaultLockoutWindow    = 30 * time.Minute
)
