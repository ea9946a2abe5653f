package swap

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/big"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stablepay/signerd/pkg/chains"
	"github.com/stablepay/signerd/pkg/utils"
)

var (
	testTokenIn  = common.HexToAddress("0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913")
	testTokenOut = common.HexToAddress("0x036CbD53842c5426634e7929541eC2318f3dCF7e")
	testContract = common.HexToAddress("0x7C5e3A2C9f1f7ee4D4a3E0bB6C1d25F0b3cAe091")
)

func testChain(rpcEndpoint string) *chains.ChainConfig {
	return &chains.ChainConfig{
		Alias:        "base",
		ChainID:      8453,
		RPCEndpoint:  rpcEndpoint,
		SwapContract: testContract,
	}
}

// newFakeRPC serves a minimal JSON-RPC endpoint. respond builds the reply for
// eth_call requests; everything else gets a zero result.
func newFakeRPC(t *testing.T, respond func(id json.RawMessage) string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		if req.Method == "eth_call" {
			fmt.Fprint(w, respond(req.ID))
			return
		}
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"result":"0x0"}`, req.ID)
	}))
}

func TestGetQuote(t *testing.T) {
	amountOut := big.NewInt(995000)
	fee := big.NewInt(5000)
	totalUserPays := big.NewInt(1000000)

	encoded, err := stableSwapABI.Methods["getSwapQuote"].Outputs.Pack(amountOut, fee, totalUserPays)
	require.NoError(t, err)

	srv := newFakeRPC(t, func(id json.RawMessage) string {
		return fmt.Sprintf(`{"jsonrpc":"2.0","id":%s,"result":"%s"}`, id, hexutil.Encode(encoded))
	})
	defer srv.Close()

	reader := NewQuoteReader(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
	quote, err := reader.GetQuote(context.Background(), testChain(srv.URL), testTokenIn, testTokenOut, big.NewInt(1000000))
	require.NoError(t, err)

	assert.Equal(t, amountOut, quote.AmountOut)
	assert.Equal(t, fee, quote.Fee)
	assert.Equal(t, totalUserPays, quote.TotalUserPays)
}

func TestGetQuoteSurfacesRevert(t *testing.T) {
	srv := newFakeRPC(t, func(id json.RawMessage) string {
		return fmt.Sprintf(`{"jsonrpc":"2.0","id":%s,"error":{"code":3,"message":"execution reverted: unsupported pair"}}`, id)
	})
	defer srv.Close()

	reader := NewQuoteReader(nil)
	_, err := reader.GetQuote(context.Background(), testChain(srv.URL), testTokenIn, testTokenOut, big.NewInt(1000000))
	require.Error(t, err)

	var quoteErr *QuoteFailedError
	require.ErrorAs(t, err, &quoteErr)
	assert.Equal(t, "base", quoteErr.Chain)
	assert.Contains(t, quoteErr.Error(), "unsupported pair")
}

func TestGetQuoteUnreachableEndpoint(t *testing.T) {
	reader := NewQuoteReader(nil)
	_, err := reader.GetQuote(context.Background(), testChain("http://127.0.0.1:1"), testTokenIn, testTokenOut, big.NewInt(1))
	require.Error(t, err)

	var quoteErr *QuoteFailedError
	assert.ErrorAs(t, err, &quoteErr)
}

func TestBuildSwapCalldata(t *testing.T) {
	builder := NewCalldataBuilder()
	amountIn := big.NewInt(1000000)
	minAmountOut := big.NewInt(990000)

	call, err := builder.Build(testChain("https://mainnet.base.org"), testTokenIn, testTokenOut, amountIn, minAmountOut)
	require.NoError(t, err)

	assert.Equal(t, testContract, call.To)
	assert.Equal(t, int64(0), call.Value.Int64())

	// selector + four static slots
	require.Len(t, call.Data, 4+4*32)
	expectedSelector := crypto.Keccak256([]byte("swap(uint256,address,address,uint256)"))[:4]
	assert.Equal(t, expectedSelector, call.Data[:4])

	// Slot order is (amountIn, tokenIn, tokenOut, minAmountOut); this differs
	// from the quote function's argument order on purpose.
	slots := call.Data[4:]
	assert.Equal(t, amountIn, new(big.Int).SetBytes(slots[0:32]))
	assert.Equal(t, testTokenIn, common.BytesToAddress(slots[32:64]))
	assert.Equal(t, testTokenOut, common.BytesToAddress(slots[64:96]))
	assert.Equal(t, minAmountOut, new(big.Int).SetBytes(slots[96:128]))
}

func TestBuildSwapCalldataIsDeterministic(t *testing.T) {
	builder := NewCalldataBuilder()
	chain := testChain("https://mainnet.base.org")

	first, err := builder.Build(chain, testTokenIn, testTokenOut, big.NewInt(100), big.NewInt(99))
	require.NoError(t, err)
	second, err := builder.Build(chain, testTokenIn, testTokenOut, big.NewInt(100), big.NewInt(99))
	require.NoError(t, err)

	assert.Equal(t, first.Data, second.Data)
}

func TestBuildSwapCalldataValidation(t *testing.T) {
	builder := NewCalldataBuilder()
	chain := testChain("https://mainnet.base.org")

	tests := []struct {
		name         string
		amountIn     *big.Int
		minAmountOut *big.Int
	}{
		{name: "zero amountIn", amountIn: big.NewInt(0), minAmountOut: big.NewInt(1)},
		{name: "nil amountIn", amountIn: nil, minAmountOut: big.NewInt(1)},
		{name: "negative amountIn", amountIn: big.NewInt(-1), minAmountOut: big.NewInt(1)},
		{name: "zero minAmountOut", amountIn: big.NewInt(1), minAmountOut: big.NewInt(0)},
		{name: "nil minAmountOut", amountIn: big.NewInt(1), minAmountOut: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := builder.Build(chain, testTokenIn, testTokenOut, tt.amountIn, tt.minAmountOut)
			require.Error(t, err)
			var invalid *utils.InvalidInputError
			assert.ErrorAs(t, err, &invalid)
		})
	}
}
