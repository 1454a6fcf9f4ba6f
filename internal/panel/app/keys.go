package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/pandda/pkg/jwtx"
)

// InitSessionKeys generates the in-memory keys session tokens are signed
// with. Keys do not survive a restart, so every restart logs all operators
// out.
func InitSessionKeys(cfg Config, logger *slog.Logger) (*jwtx.KeyRing, error) {
	keys, err := jwtx.NewEphemeralKeyRing(jwtx.KeyRingOptions{Issuer: cfg.Issuer})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session keys: %w", err)
	}

	logger.Info("generated ephemeral signing keys",
		"algorithm", "EdDSA",
		"num_keys", keys.NumSigners(),
		"issuer", cfg.Issuer,
	)
	logger.Warn("all existing sessions are now invalid due to key rotation on startup")

	return keys, nil
}
