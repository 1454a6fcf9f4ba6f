package cryptox

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
)

// SessionKey is a PKCS8 PEM encoded Ed25519 private key and the key id it is
// published under.
type SessionKey struct {
	ID  string
	PEM []byte
}

// NewSessionKey generates an Ed25519 key. ID is "pandda-" followed by a
// thumbprint of the public key, so the same key always gets the same id.
func NewSessionKey() (SessionKey, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return SessionKey{}, fmt.Errorf("cryptox: generate session key: %w", err)
	}

	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return SessionKey{}, fmt.Errorf("cryptox: encode session key: %w", err)
	}

	return SessionKey{
		ID:  KeyThumbprint(pub),
		PEM: pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}),
	}, nil
}

// KeyThumbprint derives the key id of pub.
func KeyThumbprint(pub ed25519.PublicKey) string {
	sum := sha256.Sum256(pub)
	return "pandda-" + base64.RawURLEncoding.EncodeToString(sum[:12])
}
