package service

import "performiq/internal/domain/entity"

// TokenVault encrypts provider credentials at rest. When no key is configured
// CanEncrypt is false and every other method fails with a CryptoError.
type TokenVault interface {
	CanEncrypt() bool
	Encrypt(plaintext string) (string, error)
	Decrypt(blob string) (string, error)
	EncryptTokens(tokens *entity.TokenSet) (string, error)
	DecryptTokens(blob string) (*entity.TokenSet, error)
}
