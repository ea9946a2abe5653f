package swap

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/stablepay/signerd/pkg/chains"
	"github.com/stablepay/signerd/pkg/utils"
)

// SwapCall is everything a client needs to execute the swap itself: target
// contract, calldata, and the (always zero) native value.
type SwapCall struct {
	To    common.Address
	Data  []byte
	Value *big.Int
}

// CalldataBuilder encodes swap(amountIn, tokenIn, tokenOut, minAmountOut)
// calldata. It never touches the chain; building is a pure transformation of
// validated inputs.
type CalldataBuilder struct{}

func NewCalldataBuilder() *CalldataBuilder {
	return &CalldataBuilder{}
}

// Build encodes the call payload for the swap entry point. minAmountOut is
// the caller's slippage bound; it is not cross-checked against any quote.
func (b *CalldataBuilder) Build(chain *chains.ChainConfig, tokenIn, tokenOut common.Address, amountIn, minAmountOut *big.Int) (*SwapCall, error) {
	if amountIn == nil || amountIn.Sign() <= 0 {
		return nil, &utils.InvalidInputError{Field: "amountIn", Reason: "amount must be a positive integer"}
	}
	if minAmountOut == nil || minAmountOut.Sign() <= 0 {
		return nil, &utils.InvalidInputError{Field: "minAmountOut", Reason: "amount must be a positive integer"}
	}

	data, err := stableSwapABI.Pack("swap", amountIn, tokenIn, tokenOut, minAmountOut)
	if err != nil {
		return nil, &BuildFailedError{Err: err}
	}

	return &SwapCall{
		To:    chain.SwapContract,
		Data:  data,
		Value: big.NewInt(0),
	}, nil
}
