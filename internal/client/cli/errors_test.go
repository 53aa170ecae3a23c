package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/aliaskeeper/internal/client/client"
	"github.com/dmitrijs2005/aliaskeeper/internal/client/session"
	"github.com/dmitrijs2005/aliaskeeper/internal/common"
	"github.com/dmitrijs2005/aliaskeeper/internal/keystore"
	"github.com/dmitrijs2005/aliaskeeper/internal/vaultschema"
	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{common.ErrAuthenticationFailed, "invalid username or password"},
		{fmt.Errorf("login: %w", common.ErrAuthenticationFailed), "invalid username or password"},
		{client.ErrServerProof, "the server could not prove its identity, login aborted"},
		{client.ErrUnavailable, "server unavailable"},
		{session.ErrWrongPasswordOrCorrupt, "wrong password, or the vault is damaged"},
		{fmt.Errorf("open: %w", vaultschema.ErrSchemaValidation), "the vault schema is not valid and cannot be opened"},
		{common.ErrRevisionConflict, "the vault changed on another device, try again"},
		{keystore.ErrKeyNotFound, "no remembered key, use unlock with your password"},
		{keystore.ErrAuthenticationFailed, "key store access denied"},
		{errors.New("something else"), "something else"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, describe(tc.err))
	}
}
