package chains

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// ChainConfig describes one target network: where to reach it and where the
// StableSwap contract lives on it. Configs are built once at startup and
// never mutated.
type ChainConfig struct {
	Alias        string
	ChainID      int64
	RPCEndpoint  string
	SwapContract common.Address
}

// UnknownChainError is returned when a supplied chain hint matches no
// registered chain.
type UnknownChainError struct {
	Hint string
}

func (e *UnknownChainError) Error() string {
	return fmt.Sprintf("unknown chain: %s", e.Hint)
}

// ConflictingChainHintError is returned when a request supplies both an alias
// and a numeric id that point at different chains.
type ConflictingChainHintError struct {
	Alias   string
	ChainID string
}

func (e *ConflictingChainHintError) Error() string {
	return fmt.Sprintf("conflicting chain hints: alias %q and chainId %q refer to different chains", e.Alias, e.ChainID)
}
