package signer

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Identity is the service's one signing keypair. It is derived once at
// startup and passed by reference into every handler; the key never leaves
// process memory and is never rotated at runtime.
type Identity struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewIdentity derives the signing identity from a hex-encoded private key.
// A malformed key is a startup failure, not a per-request one.
func NewIdentity(privateKeyHex string) (*Identity, error) {
	privateKeyHex = strings.TrimPrefix(strings.TrimSpace(privateKeyHex), "0x")
	if privateKeyHex == "" {
		return nil, fmt.Errorf("signer private key is required")
	}

	key, err := crypto.HexToECDSA(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("invalid signer private key: %w", err)
	}

	return &Identity{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

// Address returns the signer address, a process-wide read-only fact.
func (id *Identity) Address() common.Address {
	return id.address
}

// SignDigest signs a raw 32-byte digest and returns the 65-byte recoverable
// signature with v adjusted to the on-chain 27/28 convention. The digest is
// signed directly, without any message prefix.
func (id *Identity) SignDigest(digest []byte) ([]byte, error) {
	if len(digest) != 32 {
		return nil, fmt.Errorf("digest must be 32 bytes, got %d", len(digest))
	}

	sig, err := crypto.Sign(digest, id.key)
	if err != nil {
		return nil, err
	}

	// crypto.Sign returns v as a 0/1 recovery id; the Paymaster's ecrecover
	// expects 27/28.
	sig[64] += 27
	return sig, nil
}
