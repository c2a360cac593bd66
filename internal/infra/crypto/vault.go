// Package crypto implements the token vault: AES-256-GCM with a per-call
// random nonce, serialized as base64(nonce || tag || ciphertext).
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"io"

	"performiq/internal/domain/entity"
	domainerrors "performiq/internal/domain/errors"
	"performiq/internal/domain/service"
	"performiq/internal/errors"
)

const (
	// KeySize is the AES-256 key length.
	KeySize   = 32
	nonceSize = 12
	tagSize   = 16
)

var (
	errNotConfigured = errors.New("encryption key is not configured")
	errShortBlob     = errors.New("ciphertext too short")
)

type aesVault struct {
	aead  cipher.AEAD
	nonce io.Reader
}

// NewVault builds a vault from a raw key. A key of the wrong length yields a
// disabled vault and a ConfigurationError describing why.
func NewVault(key []byte) (service.TokenVault, error) {
	if len(key) == 0 {
		return &aesVault{}, &domainerrors.ConfigurationError{Setting: "encryption.keyBase64", Reason: "not set"}
	}
	if len(key) != KeySize {
		return &aesVault{}, &domainerrors.ConfigurationError{
			Setting: "encryption.keyBase64",
			Reason:  "must decode to 32 bytes",
		}
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return &aesVault{}, errors.WithStack(err)
	}
	aead, err := cipher.NewGCMWithNonceSize(block, nonceSize)
	if err != nil {
		return &aesVault{}, errors.WithStack(err)
	}

	return &aesVault{aead: aead, nonce: rand.Reader}, nil
}

// NewVaultFromBase64 decodes a standard base64 key and builds the vault.
func NewVaultFromBase64(encoded string) (service.TokenVault, error) {
	if encoded == "" {
		return NewVault(nil)
	}
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return &aesVault{}, &domainerrors.ConfigurationError{Setting: "encryption.keyBase64", Reason: "invalid base64"}
	}

	return NewVault(key)
}

func (v *aesVault) CanEncrypt() bool {
	return v.aead != nil
}

func (v *aesVault) Encrypt(plaintext string) (string, error) {
	if v.aead == nil {
		return "", &domainerrors.CryptoError{Op: "encrypt", Err: errNotConfigured}
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(v.nonce, nonce); err != nil {
		return "", &domainerrors.CryptoError{Op: "encrypt", Err: err}
	}

	// Seal appends the tag after the ciphertext; the stored layout puts it first.
	sealed := v.aead.Seal(nil, nonce, []byte(plaintext), nil)
	ct, tag := sealed[:len(sealed)-tagSize], sealed[len(sealed)-tagSize:]

	out := make([]byte, 0, nonceSize+tagSize+len(ct))
	out = append(out, nonce...)
	out = append(out, tag...)
	out = append(out, ct...)

	return base64.StdEncoding.EncodeToString(out), nil
}

func (v *aesVault) Decrypt(blob string) (string, error) {
	if v.aead == nil {
		return "", &domainerrors.CryptoError{Op: "decrypt", Err: errNotConfigured}
	}

	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return "", &domainerrors.CryptoError{Op: "decrypt", Err: err}
	}
	if len(raw) < nonceSize+tagSize {
		return "", &domainerrors.CryptoError{Op: "decrypt", Err: errShortBlob}
	}

	nonce := raw[:nonceSize]
	tag := raw[nonceSize : nonceSize+tagSize]
	ct := raw[nonceSize+tagSize:]

	sealed := make([]byte, 0, len(ct)+tagSize)
	sealed = append(sealed, ct...)
	sealed = append(sealed, tag...)

	plain, err := v.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", &domainerrors.CryptoError{Op: "decrypt", Err: err}
	}

	return string(plain), nil
}

func (v *aesVault) EncryptTokens(tokens *entity.TokenSet) (string, error) {
	data, err := json.Marshal(tokens)
	if err != nil {
		return "", &domainerrors.CryptoError{Op: "encrypt", Err: err}
	}

	return v.Encrypt(string(data))
}

func (v *aesVault) DecryptTokens(blob string) (*entity.TokenSet, error) {
	plain, err := v.Decrypt(blob)
	if err != nil {
		return nil, err
	}

	var tokens entity.TokenSet
	if err := json.Unmarshal([]byte(plain), &tokens); err != nil {
		return nil, &domainerrors.CryptoError{Op: "decrypt", Err: err}
	}

	return &tokens, nil
}
