package cryptox_test

import (
	"crypto/ed25519"
	"crypto/x509"
	"encoding/pem"
	"strings"
	"testing"

	"github.com/aussiebroadwan/pandda/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestNewSessionKey(t *testing.T) {
	key, err := cryptox.NewSessionKey()
	require.NoError(t, err)

	block, _ := pem.Decode(key.PEM)
	require.NotNil(t, block)
	require.Equal(t, "PRIVATE KEY", block.Type)

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	require.NoError(t, err)
	priv, ok := parsed.(ed25519.PrivateKey)
	require.True(t, ok)

	require.True(t, strings.HasPrefix(key.ID, "pandda-"))
	require.Equal(t, cryptox.KeyThumbprint(priv.Public().(ed25519.PublicKey)), key.ID)

	other, err := cryptox.NewSessionKey()
	require.NoError(t, err)
	require.NotEqual(t, key.ID, other.ID)
}
