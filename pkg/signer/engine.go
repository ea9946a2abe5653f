package signer

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/stablepay/signerd/pkg/constants"
)

// SigningFailedError reports an unexpected failure while hashing or signing.
// Inputs are validated before they reach the engine, so this should be rare.
type SigningFailedError struct {
	Err error
}

func (e *SigningFailedError) Error() string {
	return fmt.Sprintf("signing failed: %v", e.Err)
}

func (e *SigningFailedError) Unwrap() error {
	return e.Err
}

// AuthorizationParams is the fully-resolved set of values the Paymaster
// contract recomputes the digest from. Defaults are applied before the
// params reach the engine; see ResolveDefaults.
type AuthorizationParams struct {
	Payer        common.Address
	Token        common.Address
	ValidUntil   *big.Int
	ValidAfter   *big.Int
	IsActivation bool
}

// ResolveDefaults fills the optional fields the client left unset:
// validUntil defaults to now plus the standard validity window, validAfter
// to zero.
func (p *AuthorizationParams) ResolveDefaults(now time.Time) {
	if p.ValidUntil == nil {
		p.ValidUntil = big.NewInt(now.Unix() + constants.DefaultValidityWindow)
	}
	if p.ValidAfter == nil {
		p.ValidAfter = big.NewInt(0)
	}
}

var (
	typeAddress = mustNewType("address")
	typeUint256 = mustNewType("uint256")
	typeBool    = mustNewType("bool")

	// Hash pre-image layouts. The on-chain verifier abi.encodes the same
	// tuple, so field order and widths must match it exactly. The activation
	// flag exists only in the flagged protocol version.
	authorizationArgs = abi.Arguments{
		{Type: typeAddress}, // payer
		{Type: typeAddress}, // token
		{Type: typeUint256}, // validUntil
		{Type: typeUint256}, // validAfter
	}
	flaggedAuthorizationArgs = append(authorizationArgs, abi.Argument{Type: typeBool}) // isActivation
)

func mustNewType(t string) abi.Type {
	ty, err := abi.NewType(t, "", nil)
	if err != nil {
		panic(err)
	}
	return ty
}

// Engine produces Paymaster authorization signatures. Which pre-image layout
// it uses is a protocol-version decision made at startup, not per call.
type Engine struct {
	identity           *Identity
	withActivationFlag bool
}

// NewEngine creates a signature engine bound to the service identity.
// withActivationFlag selects the protocol variant whose digest covers the
// isActivation boolean.
func NewEngine(identity *Identity, withActivationFlag bool) *Engine {
	return &Engine{
		identity:           identity,
		withActivationFlag: withActivationFlag,
	}
}

// SignerAddress returns the address callers verify signatures against.
func (e *Engine) SignerAddress() common.Address {
	return e.identity.Address()
}

// Digest computes the 32-byte Keccak-256 digest the Paymaster recomputes
// on-chain.
func (e *Engine) Digest(params AuthorizationParams) ([]byte, error) {
	var (
		encoded []byte
		err     error
	)
	if e.withActivationFlag {
		encoded, err = flaggedAuthorizationArgs.Pack(
			params.Payer, params.Token, params.ValidUntil, params.ValidAfter, params.IsActivation)
	} else {
		encoded, err = authorizationArgs.Pack(
			params.Payer, params.Token, params.ValidUntil, params.ValidAfter)
	}
	if err != nil {
		return nil, &SigningFailedError{Err: fmt.Errorf("encoding authorization: %w", err)}
	}
	return crypto.Keccak256(encoded), nil
}

// Sign returns the 0x-prefixed 65-byte recoverable signature over the
// authorization digest.
func (e *Engine) Sign(params AuthorizationParams) (string, error) {
	digest, err := e.Digest(params)
	if err != nil {
		return "", err
	}

	sig, err := e.identity.SignDigest(digest)
	if err != nil {
		return "", &SigningFailedError{Err: err}
	}

	return hexutil.Encode(sig), nil
}
