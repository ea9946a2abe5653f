package swap

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/stablepay/signerd/pkg/chains"
	"github.com/stablepay/signerd/pkg/constants"
)

// Quote is the decoded result of the getSwapQuote view: what the user
// receives, the protocol fee, and the total debited from the payer.
type Quote struct {
	AmountOut     *big.Int
	Fee           *big.Int
	TotalUserPays *big.Int
}

// QuoteReader reads swap quotes from the StableSwap contract on the resolved
// chain. One read per request, no retries; a failed read is reported
// immediately.
type QuoteReader struct {
	timeout time.Duration
	logger  *slog.Logger
}

func NewQuoteReader(logger *slog.Logger) *QuoteReader {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuoteReader{
		timeout: constants.CallContractTimeout,
		logger:  logger,
	}
}

// GetQuote calls getSwapQuote(tokenIn, tokenOut, amountIn) on the chain's
// StableSwap contract and decodes the three uint256 return values. Reverts
// and timeouts surface as QuoteFailedError.
func (r *QuoteReader) GetQuote(ctx context.Context, chain *chains.ChainConfig, tokenIn, tokenOut common.Address, amountIn *big.Int) (*Quote, error) {
	data, err := stableSwapABI.Pack("getSwapQuote", tokenIn, tokenOut, amountIn)
	if err != nil {
		return nil, &QuoteFailedError{Chain: chain.Alias, Err: fmt.Errorf("packing call: %w", err)}
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	client, err := ethclient.DialContext(ctx, chain.RPCEndpoint)
	if err != nil {
		return nil, &QuoteFailedError{Chain: chain.Alias, Err: fmt.Errorf("dialing %s: %w", chain.RPCEndpoint, err)}
	}
	defer client.Close()

	contract := chain.SwapContract
	result, err := client.CallContract(ctx, ethereum.CallMsg{
		To:   &contract,
		Data: data,
	}, nil)
	if err != nil {
		r.logger.Warn("swap quote call failed",
			"chain", chain.Alias,
			"contract", contract.Hex(),
			"error", err)
		return nil, &QuoteFailedError{Chain: chain.Alias, Err: err}
	}

	values, err := stableSwapABI.Unpack("getSwapQuote", result)
	if err != nil {
		return nil, &QuoteFailedError{Chain: chain.Alias, Err: fmt.Errorf("decoding result: %w", err)}
	}
	if len(values) != 3 {
		return nil, &QuoteFailedError{Chain: chain.Alias, Err: fmt.Errorf("expected 3 return values, got %d", len(values))}
	}

	amountOut, ok1 := values[0].(*big.Int)
	fee, ok2 := values[1].(*big.Int)
	totalUserPays, ok3 := values[2].(*big.Int)
	if !ok1 || !ok2 || !ok3 {
		return nil, &QuoteFailedError{Chain: chain.Alias, Err: fmt.Errorf("unexpected return value types")}
	}

	return &Quote{
		AmountOut:     amountOut,
		Fee:           fee,
		TotalUserPays: totalUserPays,
	}, nil
}
