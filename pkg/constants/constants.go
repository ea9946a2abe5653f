package constants

import "time"

const (
	CallContractTimeout   = 10 * time.Second // timeout for the on-chain quote read
	ShutdownTimeout       = 5 * time.Second  // grace period for in-flight requests on shutdown
	DefaultValidityWindow = 3600             // default validUntil offset in seconds
)

// Chain aliases
const (
	ChainBase        = "base"
	ChainBaseSepolia = "base-sepolia"
	ChainPolygon     = "polygon"
	ChainArbitrum    = "arbitrum"
)

// SupportedChains lists the built-in chains in a fixed order.
var SupportedChains = []string{ChainBase, ChainBaseSepolia, ChainPolygon, ChainArbitrum}

// mapping from chain alias to numeric chain ID
var ChainAliasToID = map[string]int64{
	ChainBase:        8453,
	ChainBaseSepolia: 84532,
	ChainPolygon:     137,
	ChainArbitrum:    42161,
}

var OfficialRPCEndpoints = map[string]string{
	ChainBase:        "https://mainnet.base.org",
	ChainBaseSepolia: "https://sepolia.base.org",
	ChainPolygon:     "https://polygon-rpc.com",
	ChainArbitrum:    "https://arb1.arbitrum.io/rpc",
}

// Default StableSwap deployments per chain. Overrides come from
// configuration (SWAP_CONTRACT_<ALIAS>).
var DefaultSwapContracts = map[string]string{
	ChainBase:        "0x7C5e3A2C9f1f7ee4D4a3E0bB6C1d25F0b3cAe091",
	ChainBaseSepolia: "0x3f8A61De2A7e35D1BbF5e2cD9271Aa40E7c0b6D4",
	ChainPolygon:     "0x9E44C1a57d10aB35E3bF2a7C06D02f14d8e0Cc52",
	ChainArbitrum:    "0x5b19C8eE437aD27F60Bc0Fd3aF41D2902E6f13a8",
}
