package srp

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func register(t *testing.T, username, password string) (salt, verifier string) {
	t.Helper()
	salt = GenerateSalt()
	x, err := Default.DerivePrivateKey(salt, username, password)
	require.NoError(t, err)
	verifier, err = Default.DeriveVerifier(x)
	require.NoError(t, err)
	return salt, verifier
}

func TestGroup_Default(t *testing.T) {
	assert.Equal(t, 2048, Default.N.BitLen())
	assert.Equal(t, int64(2), Default.G.Int64())
	assert.Equal(t, 256, len(Default.pad(big.NewInt(1))))
	assert.Equal(t, 1, Default.K.Sign())
}

func TestSRP_RoundTrip(t *testing.T) {
	const user = "test@test.com"
	password := hex.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
	salt, verifier := register(t, user, password)

	server, err := Default.GenerateServerEphemeral(verifier)
	require.NoError(t, err)
	client := Default.GenerateClientEphemeral()

	x, err := Default.DerivePrivateKey(salt, user, password)
	require.NoError(t, err)
	cs, err := Default.DeriveClientSession(client.Secret, server.Public, salt, user, x)
	require.NoError(t, err)

	ss, err := Default.DeriveServerSession(server.Secret, client.Public, salt, user, verifier, cs.Proof)
	require.NoError(t, err)

	assert.Equal(t, cs.Key, ss.Key)
	require.NoError(t, Default.VerifySession(client.Public, cs, ss.Proof))
}

func TestSRP_WrongPassword(t *testing.T) {
	const user = "test@test.com"
	salt, verifier := register(t, user, "correct")

	for i := 0; i < 5; i++ {
		server, err := Default.GenerateServerEphemeral(verifier)
		require.NoError(t, err)
		client := Default.GenerateClientEphemeral()

		x, err := Default.DerivePrivateKey(salt, user, "wrong")
		require.NoError(t, err)
		cs, err := Default.DeriveClientSession(client.Secret, server.Public, salt, user, x)
		require.NoError(t, err)

		_, err = Default.DeriveServerSession(server.Secret, client.Public, salt, user, verifier, cs.Proof)
		require.ErrorIs(t, err, ErrInvalidProof)
	}
}

func TestSRP_WrongUsername(t *testing.T) {
	salt, verifier := register(t, "alice@example.com", "pw")
	server, err := Default.GenerateServerEphemeral(verifier)
	require.NoError(t, err)
	client := Default.GenerateClientEphemeral()

	x, _ := Default.DerivePrivateKey(salt, "bob@example.com", "pw")
	cs, err := Default.DeriveClientSession(client.Secret, server.Public, salt, "bob@example.com", x)
	require.NoError(t, err)

	_, err = Default.DeriveServerSession(server.Secret, client.Public, salt, "alice@example.com", verifier, cs.Proof)
	assert.ErrorIs(t, err, ErrInvalidProof)
}

func TestSRP_RejectsZeroEphemerals(t *testing.T) {
	salt, verifier := register(t, "u", "p")
	server, err := Default.GenerateServerEphemeral(verifier)
	require.NoError(t, err)

	zero := "0"
	multipleOfN := Default.N.Text(16)

	for _, bad := range []string{zero, multipleOfN} {
		_, err := Default.DeriveServerSession(server.Secret, bad, salt, "u", verifier, "00")
		assert.ErrorIs(t, err, ErrInvalidEphemeral)

		client := Default.GenerateClientEphemeral()
		_, err = Default.DeriveClientSession(client.Secret, bad, salt, "u", "01")
		assert.ErrorIs(t, err, ErrInvalidEphemeral)
	}
}

func TestSRP_ForgedServerProof(t *testing.T) {
	salt, verifier := register(t, "u", "p")
	server, err := Default.GenerateServerEphemeral(verifier)
	require.NoError(t, err)
	client := Default.GenerateClientEphemeral()
	x, _ := Default.DerivePrivateKey(salt, "u", "p")
	cs, err := Default.DeriveClientSession(client.Secret, server.Public, salt, "u", x)
	require.NoError(t, err)

	err = Default.VerifySession(client.Public, cs, hex.EncodeToString(make([]byte, 32)))
	assert.ErrorIs(t, err, ErrInvalidProof)
}

func TestSRP_MalformedInput(t *testing.T) {
	_, err := Default.DerivePrivateKey("zz", "u", "p")
	assert.ErrorIs(t, err, ErrMalformedValue)

	_, err = Default.DeriveVerifier("not-hex")
	assert.ErrorIs(t, err, ErrMalformedValue)

	_, err = Default.GenerateServerEphemeral("")
	assert.ErrorIs(t, err, ErrMalformedValue)

	_, err = Default.DeriveServerSession("01", "02", "00", "u", "03", "xyz")
	assert.ErrorIs(t, err, ErrMalformedValue)
}

func TestDeriveVerifier_Deterministic(t *testing.T) {
	salt := "beb25379d1a8581eb5a727673a2441ee"
	x1, err := Default.DerivePrivateKey(salt, "alice", "password123")
	require.NoError(t, err)
	x2, err := Default.DerivePrivateKey(salt, "alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, x1, x2)

	v1, _ := Default.DeriveVerifier(x1)
	v2, _ := Default.DeriveVerifier(x2)
	assert.Equal(t, v1, v2)
}
