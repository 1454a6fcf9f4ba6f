package jwtx

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/aussiebroadwan/pandda/pkg/cryptox"
)

// KeyRing owns the session signing keys for one process. Keys are generated
// on startup and never leave memory, so every restart logs everybody out.
type KeyRing struct {
	Verifier Verifier
	KeySet   *KeySet

	mu      sync.RWMutex
	signers []Signer
}

// KeyRingOptions configures NewEphemeralKeyRing.
type KeyRingOptions struct {
	// Issuer is stamped on and enforced for every session token.
	Issuer string

	// NumKeys defaults to 1 and is capped at 10.
	NumKeys int
}

// NewEphemeralKeyRing generates fresh Ed25519 signing keys.
func NewEphemeralKeyRing(opts KeyRingOptions) (*KeyRing, error) {
	if opts.Issuer == "" {
		return nil, fmt.Errorf("jwtx: Issuer is required")
	}

	n := min(max(opts.NumKeys, 1), 10)

	ring := &KeyRing{KeySet: NewKeySet()}
	for i := range n {
		key, err := cryptox.NewSessionKey()
		if err != nil {
			return nil, fmt.Errorf("jwtx: failed to generate key %d: %w", i+1, err)
		}

		signer, err := NewSignerEdDSA(key.ID, key.PEM)
		if err != nil {
			return nil, fmt.Errorf("jwtx: failed to load key %d: %w", i+1, err)
		}

		if err := ring.KeySet.AddSigner(signer); err != nil {
			return nil, fmt.Errorf("jwtx: failed to add key %d to keyset: %w", i+1, err)
		}
		ring.signers = append(ring.signers, signer)
	}

	ring.Verifier = NewVerifierEdDSA(ring.KeySet, opts.Issuer)
	return ring, nil
}

// Signer returns one of the active signing keys, picked at random when the
// ring holds more than one.
func (r *KeyRing) Signer() Signer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	switch len(r.signers) {
	case 0:
		return nil
	case 1:
		return r.signers[0]
	default:
		return r.signers[rand.IntN(len(r.signers))]
	}
}

// NumSigners returns the number of active signing keys.
func (r *KeyRing) NumSigners() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.signers)
}

// IsReady returns true if the ring can both sign and verify.
func (r *KeyRing) IsReady() bool {
	return r.NumSigners() > 0 && r.KeySet.IsReady()
}
