package crypto

import (
	"context"
	"encoding/base64"
	"log/slog"

	"performiq/config"
	"performiq/internal/domain/service"
	"performiq/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/secrets"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/localsecrets"
)

// Params defines the dependencies of the vault provider.
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New builds the process vault. A configured wrapped key is unwrapped through
// the keeper at encryption.keeperUrl (gcpkms://, base64key://, ...); otherwise
// encryption.keyBase64 is used directly. Any problem leaves integrations
// disabled instead of failing startup.
func New(params Params) service.TokenVault {
	cfg := params.Config.Encryption

	var (
		vault service.TokenVault
		err   error
	)
	if cfg.WrappedKeyBase64 != "" && cfg.KeeperURL != "" {
		vault, err = newVaultFromKeeperURL(params.Ctx, cfg.KeeperURL, cfg.WrappedKeyBase64)
	} else {
		vault, err = NewVaultFromBase64(cfg.KeyBase64)
	}

	if err != nil {
		params.Logger.Warn("Token encryption disabled, integrations will be unavailable",
			slog.Any("error", err),
		)
	}

	return vault
}

func newVaultFromKeeperURL(ctx context.Context, keeperURL, wrapped string) (service.TokenVault, error) {
	keeper, err := secrets.OpenKeeper(ctx, keeperURL)
	if err != nil {
		return &aesVault{}, errors.Wrap(err, "open secrets keeper")
	}
	defer keeper.Close()

	return NewVaultFromWrappedKey(ctx, keeper, wrapped)
}

// NewVaultFromWrappedKey decrypts a base64 wrapped data key with keeper and
// builds a vault from the result.
func NewVaultFromWrappedKey(ctx context.Context, keeper *secrets.Keeper, wrapped string) (service.TokenVault, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(wrapped)
	if err != nil {
		return &aesVault{}, errors.Wrap(err, "decode wrapped key")
	}

	key, err := keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return &aesVault{}, errors.Wrap(err, "unwrap data key")
	}

	return NewVault(key)
}
