package types

// ErrorResponse is the fixed error body shape for every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HealthResponse represents the GET /health response
type HealthResponse struct {
	Status        string `json:"status"`
	SignerAddress string `json:"signerAddress"`
	Message       string `json:"message"`
}

// SignerResponse represents the GET /signer response
type SignerResponse struct {
	SignerAddress string `json:"signerAddress"`
	Note          string `json:"note"`
}

// SignRequest represents the POST /sign body. validUntil and validAfter
// accept both decimal strings and JSON numbers; values beyond float64
// precision must be sent as strings.
type SignRequest struct {
	PayerAddress string `json:"payerAddress" binding:"required"`
	TokenAddress string `json:"tokenAddress" binding:"required"`
	ValidUntil   any    `json:"validUntil,omitempty"`
	ValidAfter   any    `json:"validAfter,omitempty"`
	IsActivation bool   `json:"isActivation,omitempty"`

	// chain hints (multichain deployments)
	Chain   string `json:"chain,omitempty"`
	ChainID any    `json:"chainId,omitempty"`
}

// SignResponse represents the POST /sign response
type SignResponse struct {
	Signature string `json:"signature"`
}

// QuoteResponse represents the GET /swap/quote response. Numeric fields are
// decimal strings so 256-bit values survive JSON.
type QuoteResponse struct {
	TokenIn       string `json:"tokenIn"`
	TokenOut      string `json:"tokenOut"`
	AmountIn      string `json:"amountIn"`
	AmountOut     string `json:"amountOut"`
	Fee           string `json:"fee"`
	TotalUserPays string `json:"totalUserPays"`
}

// BuildRequest represents the POST /swap/build body.
type BuildRequest struct {
	TokenIn      string `json:"tokenIn" binding:"required"`
	TokenOut     string `json:"tokenOut" binding:"required"`
	AmountIn     any    `json:"amountIn"`
	MinAmountOut any    `json:"minAmountOut"`

	// chain hints (multichain deployments)
	Chain   string `json:"chain,omitempty"`
	ChainID any    `json:"chainId,omitempty"`
}

// BuildResponse represents the POST /swap/build response
type BuildResponse struct {
	To           string `json:"to"`
	Data         string `json:"data"`
	Value        string `json:"value"`
	AmountIn     string `json:"amountIn"`
	MinAmountOut string `json:"minAmountOut"`
	Note         string `json:"note"`
}

// ChainInfo is one entry in the GET /chains listing
type ChainInfo struct {
	Alias        string `json:"alias"`
	ChainID      int64  `json:"chainId"`
	SwapContract string `json:"swapContract"`
}

// ChainsResponse represents the GET /chains response
type ChainsResponse struct {
	DefaultChain string      `json:"defaultChain"`
	Chains       []ChainInfo `json:"chains"`
}
