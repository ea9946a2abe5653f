// Package swap reads StableSwap quotes and encodes swap calldata. The quote
// is the only operation in the service that touches the network; everything
// else here is deterministic encoding.
package swap

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// The portion of the StableSwap ABI this service uses. Note the argument
// orders: the quote view takes (tokenIn, tokenOut, amountIn) while the swap
// entry point takes (amountIn, tokenIn, tokenOut, minAmountOut). The
// asymmetry is part of the deployed contract and must be preserved.
const stableSwapABIJSON = `[
	{"inputs":[{"internalType":"address","name":"tokenIn","type":"address"},{"internalType":"address","name":"tokenOut","type":"address"},{"internalType":"uint256","name":"amountIn","type":"uint256"}],"name":"getSwapQuote","outputs":[{"internalType":"uint256","name":"amountOut","type":"uint256"},{"internalType":"uint256","name":"fee","type":"uint256"},{"internalType":"uint256","name":"totalUserPays","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"internalType":"uint256","name":"amountIn","type":"uint256"},{"internalType":"address","name":"tokenIn","type":"address"},{"internalType":"address","name":"tokenOut","type":"address"},{"internalType":"uint256","name":"minAmountOut","type":"uint256"}],"name":"swap","outputs":[],"stateMutability":"nonpayable","type":"function"}
]`

var stableSwapABI = mustParseABI(stableSwapABIJSON)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("parsing StableSwap ABI: %v", err))
	}
	return parsed
}

// QuoteFailedError reports a failed on-chain quote read, carrying the
// underlying cause (revert, timeout, unreachable endpoint).
type QuoteFailedError struct {
	Chain string
	Err   error
}

func (e *QuoteFailedError) Error() string {
	return fmt.Sprintf("quote failed on %s: %v", e.Chain, e.Err)
}

func (e *QuoteFailedError) Unwrap() error {
	return e.Err
}

// BuildFailedError reports a failure while encoding swap calldata.
type BuildFailedError struct {
	Err error
}

func (e *BuildFailedError) Error() string {
	return fmt.Sprintf("calldata build failed: %v", e.Err)
}

func (e *BuildFailedError) Unwrap() error {
	return e.Err
}
