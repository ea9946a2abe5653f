package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gin-gonic/gin"

	"github.com/stablepay/signerd/pkg/chains"
	"github.com/stablepay/signerd/pkg/signer"
	"github.com/stablepay/signerd/pkg/swap"
	"github.com/stablepay/signerd/pkg/types"
	"github.com/stablepay/signerd/pkg/utils"
)

// Handlers holds the request-scoped entry points and the process-wide
// read-only state they share: the chain registry, the resolver, and the
// signing identity behind the engine.
type Handlers struct {
	logger   *slog.Logger
	registry *chains.Registry
	resolver *chains.Resolver
	engine   *signer.Engine
	quotes   *swap.QuoteReader
	builder  *swap.CalldataBuilder
}

func NewHandlers(
	logger *slog.Logger,
	registry *chains.Registry,
	resolver *chains.Resolver,
	engine *signer.Engine,
	quotes *swap.QuoteReader,
	builder *swap.CalldataBuilder,
) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		logger:   logger,
		registry: registry,
		resolver: resolver,
		engine:   engine,
		quotes:   quotes,
		builder:  builder,
	}
}

// writeError converts any per-request error into the fixed JSON error shape.
// Input, chain and quote problems are the client's fault; only signing
// failures are server faults.
func (h *Handlers) writeError(c *gin.Context, err error) {
	var (
		invalid  *utils.InvalidInputError
		unknown  *chains.UnknownChainError
		conflict *chains.ConflictingChainHintError
		quote    *swap.QuoteFailedError
		build    *swap.BuildFailedError
		signing  *signer.SigningFailedError
	)

	status := http.StatusInternalServerError
	kind := "internal_error"

	switch {
	case errors.As(err, &invalid):
		status, kind = http.StatusBadRequest, "invalid_input"
	case errors.As(err, &unknown):
		status, kind = http.StatusBadRequest, "unknown_chain"
	case errors.As(err, &conflict):
		status, kind = http.StatusBadRequest, "conflicting_chain_hint"
	case errors.As(err, &quote):
		status, kind = http.StatusBadRequest, "quote_failed"
	case errors.As(err, &build):
		status, kind = http.StatusBadRequest, "build_failed"
	case errors.As(err, &signing):
		status, kind = http.StatusInternalServerError, "signing_failed"
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", "error", err)
	}

	c.JSON(status, types.ErrorResponse{Error: kind, Message: err.Error()})
}

// hintString renders a chain hint that may arrive as a JSON string or number.
func hintString(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatInt(int64(value), 10)
	default:
		return fmt.Sprintf("%v", value)
	}
}

// queryHints extracts chain hints from the query string and header.
func queryHints(c *gin.Context) chains.Hints {
	return chains.Hints{
		Alias:   c.Query("chain"),
		ChainID: c.Query("chainId"),
		Header:  c.GetHeader("X-Chain"),
	}
}

// bodyHints extracts chain hints from parsed body fields, falling back to the
// query string per field, plus the header.
func bodyHints(c *gin.Context, alias string, chainID any) chains.Hints {
	hints := chains.Hints{
		Alias:   alias,
		ChainID: hintString(chainID),
		Header:  c.GetHeader("X-Chain"),
	}
	if hints.Alias == "" {
		hints.Alias = c.Query("chain")
	}
	if hints.ChainID == "" {
		hints.ChainID = c.Query("chainId")
	}
	return hints
}

// Health handles GET /health. It never touches the network; the signer
// address is a startup-time fact.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{
		Status:        "ok",
		SignerAddress: h.engine.SignerAddress().Hex(),
		Message:       "paymaster signing service is running",
	})
}

// Signer handles GET /signer.
func (h *Handlers) Signer(c *gin.Context) {
	c.JSON(http.StatusOK, types.SignerResponse{
		SignerAddress: h.engine.SignerAddress().Hex(),
		Note:          "configure this address as the trusted signer on the Paymaster contract",
	})
}

// Chains handles GET /chains.
func (h *Handlers) Chains(c *gin.Context) {
	configured := h.registry.Chains()
	infos := make([]types.ChainInfo, 0, len(configured))
	for _, cfg := range configured {
		infos = append(infos, types.ChainInfo{
			Alias:        cfg.Alias,
			ChainID:      cfg.ChainID,
			SwapContract: cfg.SwapContract.Hex(),
		})
	}
	c.JSON(http.StatusOK, types.ChainsResponse{
		DefaultChain: h.registry.Default().Alias,
		Chains:       infos,
	})
}

// Sign handles POST /sign.
func (h *Handlers) Sign(c *gin.Context) {
	var req types.SignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, &utils.InvalidInputError{Field: "body", Reason: err.Error()})
		return
	}

	chain, err := h.resolver.Resolve(bodyHints(c, req.Chain, req.ChainID))
	if err != nil {
		h.writeError(c, err)
		return
	}

	payer, err := utils.RequireAddress("payerAddress", req.PayerAddress)
	if err != nil {
		h.writeError(c, err)
		return
	}
	token, err := utils.RequireAddress("tokenAddress", req.TokenAddress)
	if err != nil {
		h.writeError(c, err)
		return
	}

	params := signer.AuthorizationParams{
		Payer:        payer,
		Token:        token,
		IsActivation: req.IsActivation,
	}
	if req.ValidUntil != nil {
		if params.ValidUntil, err = utils.ParseUint256("validUntil", req.ValidUntil); err != nil {
			h.writeError(c, err)
			return
		}
	}
	if req.ValidAfter != nil {
		if params.ValidAfter, err = utils.ParseUint256("validAfter", req.ValidAfter); err != nil {
			h.writeError(c, err)
			return
		}
	}
	params.ResolveDefaults(time.Now())

	signature, err := h.engine.Sign(params)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.logger.Info("authorization signed",
		"chain", chain.Alias,
		"payer", payer.Hex(),
		"token", token.Hex(),
		"validUntil", params.ValidUntil.String(),
		"isActivation", params.IsActivation)

	c.JSON(http.StatusOK, types.SignResponse{Signature: signature})
}

// Quote handles GET /swap/quote.
func (h *Handlers) Quote(c *gin.Context) {
	chain, err := h.resolver.Resolve(queryHints(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	tokenIn, err := utils.RequireAddress("tokenIn", c.Query("tokenIn"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	tokenOut, err := utils.RequireAddress("tokenOut", c.Query("tokenOut"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	amountIn, err := utils.RequireAmount("amountIn", c.Query("amountIn"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	quote, err := h.quotes.GetQuote(c.Request.Context(), chain, tokenIn, tokenOut, amountIn)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.QuoteResponse{
		TokenIn:       tokenIn.Hex(),
		TokenOut:      tokenOut.Hex(),
		AmountIn:      amountIn.String(),
		AmountOut:     quote.AmountOut.String(),
		Fee:           quote.Fee.String(),
		TotalUserPays: quote.TotalUserPays.String(),
	})
}

// Build handles POST /swap/build.
func (h *Handlers) Build(c *gin.Context) {
	var req types.BuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, &utils.InvalidInputError{Field: "body", Reason: err.Error()})
		return
	}

	chain, err := h.resolver.Resolve(bodyHints(c, req.Chain, req.ChainID))
	if err != nil {
		h.writeError(c, err)
		return
	}

	tokenIn, err := utils.RequireAddress("tokenIn", req.TokenIn)
	if err != nil {
		h.writeError(c, err)
		return
	}
	tokenOut, err := utils.RequireAddress("tokenOut", req.TokenOut)
	if err != nil {
		h.writeError(c, err)
		return
	}
	amountIn, err := utils.RequireAmount("amountIn", req.AmountIn)
	if err != nil {
		h.writeError(c, err)
		return
	}
	minAmountOut, err := utils.RequireAmount("minAmountOut", req.MinAmountOut)
	if err != nil {
		h.writeError(c, err)
		return
	}

	call, err := h.builder.Build(chain, tokenIn, tokenOut, amountIn, minAmountOut)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.BuildResponse{
		To:           call.To.Hex(),
		Data:         hexutil.Encode(call.Data),
		Value:        "0",
		AmountIn:     amountIn.String(),
		MinAmountOut: minAmountOut.String(),
		Note:         "submit this calldata from the smart account; the service does not broadcast transactions",
	})
}
