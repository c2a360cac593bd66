package crypto

import (
	"bytes"
	"context"
	"encoding/base64"
	"testing"
	"time"

	"performiq/internal/domain/entity"
	domainerrors "performiq/internal/domain/errors"
	"performiq/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/secrets/localsecrets"
)

func testKey(b byte) []byte {
	return bytes.Repeat([]byte{b}, KeySize)
}

func TestVault_RoundTrip(t *testing.T) {
	vault, err := NewVault(testKey(1))
	require.NoError(t, err)
	require.True(t, vault.CanEncrypt())

	for _, plaintext := range []string{"", "xoxb-123", `{"access_token":"a"}`, "ünïcødé"} {
		blob, err := vault.Encrypt(plaintext)
		require.NoError(t, err)

		got, err := vault.Decrypt(blob)
		require.NoError(t, err)
		assert.Equal(t, plaintext, got)
	}
}

func TestVault_BlobLayout(t *testing.T) {
	vault, err := NewVault(testKey(2))
	require.NoError(t, err)

	blob, err := vault.Encrypt("hello")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(blob)
	require.NoError(t, err)
	assert.Len(t, raw, nonceSize+tagSize+len("hello"))
}

func TestVault_FreshNoncePerCall(t *testing.T) {
	vault, err := NewVault(testKey(3))
	require.NoError(t, err)

	a, err := vault.Encrypt("same")
	require.NoError(t, err)
	b, err := vault.Encrypt("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestVault_TamperedBlobFails(t *testing.T) {
	vault, err := NewVault(testKey(4))
	require.NoError(t, err)

	blob, err := vault.Encrypt("secret token")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(blob)
	require.NoError(t, err)

	for _, idx := range []int{0, nonceSize, nonceSize + tagSize} {
		tampered := bytes.Clone(raw)
		tampered[idx] ^= 0x01

		_, err := vault.Decrypt(base64.StdEncoding.EncodeToString(tampered))
		var cryptoErr *domainerrors.CryptoError
		require.True(t, errors.As(err, &cryptoErr), "byte %d", idx)
		assert.Equal(t, "decrypt", cryptoErr.Op)
	}
}

func TestVault_WrongKeyFails(t *testing.T) {
	a, err := NewVault(testKey(5))
	require.NoError(t, err)
	b, err := NewVault(testKey(6))
	require.NoError(t, err)

	blob, err := a.Encrypt("secret")
	require.NoError(t, err)

	_, err = b.Decrypt(blob)
	var cryptoErr *domainerrors.CryptoError
	assert.True(t, errors.As(err, &cryptoErr))
}

func TestVault_MalformedInput(t *testing.T) {
	vault, err := NewVault(testKey(7))
	require.NoError(t, err)

	tests := map[string]string{
		"not base64": "%%%",
		"too short":  base64.StdEncoding.EncodeToString([]byte("short")),
	}
	for name, blob := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := vault.Decrypt(blob)
			var cryptoErr *domainerrors.CryptoError
			assert.True(t, errors.As(err, &cryptoErr))
		})
	}
}

func TestVault_NotConfigured(t *testing.T) {
	tests := map[string]string{
		"empty":       "",
		"bad base64":  "***",
		"16 byte key": base64.StdEncoding.EncodeToString([]byte("sixteen-byte-key")),
		"31 byte key": base64.StdEncoding.EncodeToString(testKey(8)[:KeySize-1]),
	}

	for name, encoded := range tests {
		t.Run(name, func(t *testing.T) {
			vault, err := NewVaultFromBase64(encoded)
			var cfgErr *domainerrors.ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.False(t, vault.CanEncrypt())

			_, err = vault.Encrypt("x")
			var cryptoErr *domainerrors.CryptoError
			assert.True(t, errors.As(err, &cryptoErr))
		})
	}
}

func TestVault_TokensRoundTrip(t *testing.T) {
	vault, err := NewVaultFromBase64(base64.StdEncoding.EncodeToString(testKey(9)))
	require.NoError(t, err)

	expiry := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	tokens := &entity.TokenSet{
		AccessToken:  "ya29.access",
		RefreshToken: "1//refresh",
		TokenType:    "Bearer",
		Scope:        "https://www.googleapis.com/auth/gmail.readonly",
		ExpiresIn:    3599,
		Expiry:       &expiry,
	}

	blob, err := vault.EncryptTokens(tokens)
	require.NoError(t, err)

	got, err := vault.DecryptTokens(blob)
	require.NoError(t, err)
	assert.Equal(t, tokens.AccessToken, got.AccessToken)
	assert.Equal(t, tokens.RefreshToken, got.RefreshToken)
	assert.Equal(t, tokens.ExpiresIn, got.ExpiresIn)
	assert.True(t, expiry.Equal(*got.Expiry))
}

func TestNewVaultFromWrappedKey(t *testing.T) {
	ctx := context.Background()

	kek, err := localsecrets.NewRandomKey()
	require.NoError(t, err)
	keeper := localsecrets.NewKeeper(kek)
	defer keeper.Close()

	dataKey := testKey(10)
	wrapped, err := keeper.Encrypt(ctx, dataKey)
	require.NoError(t, err)

	vault, err := NewVaultFromWrappedKey(ctx, keeper, base64.StdEncoding.EncodeToString(wrapped))
	require.NoError(t, err)
	require.True(t, vault.CanEncrypt())

	direct, err := NewVault(dataKey)
	require.NoError(t, err)

	blob, err := vault.Encrypt("envelope")
	require.NoError(t, err)
	got, err := direct.Decrypt(blob)
	require.NoError(t, err)
	assert.Equal(t, "envelope", got)

	_, err = NewVaultFromWrappedKey(ctx, keeper, base64.StdEncoding.EncodeToString([]byte("garbage")))
	assert.Error(t, err)
}
