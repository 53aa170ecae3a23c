package cli

import (
	"errors"

	"github.com/dmitrijs2005/aliaskeeper/internal/client/client"
	"github.com/dmitrijs2005/aliaskeeper/internal/client/session"
	"github.com/dmitrijs2005/aliaskeeper/internal/common"
	"github.com/dmitrijs2005/aliaskeeper/internal/keystore"
	"github.com/dmitrijs2005/aliaskeeper/internal/vaultschema"
)

// describe turns command errors into the line shown to the user.
func describe(err error) string {
	var lockout *common.LockedOutError
	switch {
	case errors.As(err, &lockout):
		return lockout.Error()
	case errors.Is(err, common.ErrAuthenticationFailed):
		return "invalid username or password"
	case errors.Is(err, common.ErrLoginSessionExpired):
		return "login took too long, please try again"
	case errors.Is(err, common.ErrorAlreadyExists):
		return "an account with this name already exists"
	case errors.Is(err, client.ErrServerProof):
		return "the server could not prove its identity, login aborted"
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable"
	case errors.Is(err, client.ErrUnauthorized):
		return "session expired, please log in again"
	case errors.Is(err, session.ErrLocked):
		return "vault is locked, use unlock or login"
	case errors.Is(err, session.ErrNotLoggedIn):
		return "not logged in, use login"
	case errors.Is(err, session.ErrWrongPasswordOrCorrupt):
		return "wrong password, or the vault is damaged"
	case errors.Is(err, vaultschema.ErrSchemaValidation):
		return "the vault schema is not valid and cannot be opened"
	case errors.Is(err, common.ErrRevisionConflict):
		return "the vault changed on another device, try again"
	case errors.Is(err, common.ErrorNotFound):
		return "not found"
	case errors.Is(err, keystore.ErrNotAvailable):
		return "no secure key store on this system"
	case errors.Is(err, keystore.ErrKeyNotFound):
		return "no remembered key, use unlock with your password"
	case errors.Is(err, keystore.ErrCancelled), errors.Is(err, keystore.ErrAuthenticationFailed):
		return "key store access denied"
	}
	return err.Error()
}
