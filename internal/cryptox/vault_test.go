package cryptox

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/dmitrijs2005/aliaskeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVault_RoundTrip(t *testing.T) {
	key := common.GenerateRandByteArray(KeySize)

	cases := map[string][]byte{
		"empty": {},
		"small": []byte("SQLite format 3\x00"),
		"large": bytes.Repeat([]byte{0xAB, 0x01, 0x00}, 1<<20),
	}
	for name, plain := range cases {
		t.Run(name, func(t *testing.T) {
			blob, err := EncryptVault(plain, key)
			require.NoError(t, err)

			got, err := DecryptVault(blob, key)
			require.NoError(t, err)
			assert.Equal(t, plain, got)
		})
	}
}

func TestVault_Layout(t *testing.T) {
	key := common.GenerateRandByteArray(KeySize)
	blob, err := EncryptVault([]byte("abc"), key)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(blob)
	require.NoError(t, err)
	assert.Len(t, raw, NonceSize+3+TagSize)

	blob2, err := EncryptVault([]byte("abc"), key)
	require.NoError(t, err)
	assert.NotEqual(t, blob, blob2, "nonce must be fresh")
}

func TestVault_BitFlipsFailIntegrity(t *testing.T) {
	key := common.GenerateRandByteArray(KeySize)
	blob, err := EncryptVault([]byte("vault contents"), key)
	require.NoError(t, err)
	raw, _ := base64.StdEncoding.DecodeString(blob)

	for i := range raw {
		tampered := append([]byte(nil), raw...)
		tampered[i] ^= 0x01
		_, err := DecryptVault(base64.StdEncoding.EncodeToString(tampered), key)
		require.ErrorIs(t, err, ErrIntegrity, "byte %d", i)
	}
}

func TestVault_Failures(t *testing.T) {
	key := common.GenerateRandByteArray(KeySize)
	blob, err := EncryptVault([]byte("x"), key)
	require.NoError(t, err)

	_, err = DecryptVault(blob, common.GenerateRandByteArray(KeySize))
	assert.ErrorIs(t, err, ErrIntegrity)

	_, err = DecryptVault("%%% not base64", key)
	assert.ErrorIs(t, err, ErrIntegrity)

	_, err = DecryptVault(base64.StdEncoding.EncodeToString([]byte("short")), key)
	assert.ErrorIs(t, err, ErrIntegrity)

	_, err = EncryptVault([]byte("x"), []byte("short key"))
	assert.ErrorIs(t, err, ErrInvalidKeySize)
}
