// Package config provides environment-driven configuration for the signing
// service. Missing or malformed startup configuration is fatal: the process
// must not start serving traffic with a partial setup.
package config

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"

	"github.com/stablepay/signerd/pkg/chains"
	"github.com/stablepay/signerd/pkg/constants"
)

// Config holds everything the service needs at startup.
type Config struct {
	PrivateKey     string
	Port           int
	DefaultChain   string
	ChainAliases   []string
	CORSOrigins    []string
	ActivationFlag bool
	Multichain     bool

	rpcOverrides  map[string]string
	swapOverrides map[string]string
}

// Load reads configuration from the environment.
//
//	SIGNER_PRIVATE_KEY   hex private key (required)
//	PORT                 listen port (default 8080)
//	DEFAULT_CHAIN        chain used when a request carries no hint (default base)
//	CHAINS               comma-separated aliases to serve (default: all built-ins)
//	MULTICHAIN           when false, every request targets DEFAULT_CHAIN (default true)
//	ACTIVATION_FLAG      protocol variant whose digest covers isActivation (default false)
//	CORS_ORIGINS         comma-separated origin allow-list (default *)
//	RPC_URL_<ALIAS>      RPC endpoint override per chain
//	SWAP_CONTRACT_<ALIAS> StableSwap address override per chain
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", 8080)
	v.SetDefault("DEFAULT_CHAIN", constants.ChainBase)
	v.SetDefault("MULTICHAIN", true)
	v.SetDefault("ACTIVATION_FLAG", false)
	v.SetDefault("CORS_ORIGINS", "*")

	cfg := &Config{
		PrivateKey:     v.GetString("SIGNER_PRIVATE_KEY"),
		Port:           v.GetInt("PORT"),
		DefaultChain:   v.GetString("DEFAULT_CHAIN"),
		CORSOrigins:    splitList(v.GetString("CORS_ORIGINS")),
		ActivationFlag: v.GetBool("ACTIVATION_FLAG"),
		Multichain:     v.GetBool("MULTICHAIN"),
		rpcOverrides:   make(map[string]string),
		swapOverrides:  make(map[string]string),
	}

	if cfg.PrivateKey == "" {
		return nil, fmt.Errorf("SIGNER_PRIVATE_KEY is required")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT: %d", cfg.Port)
	}

	aliases := splitList(v.GetString("CHAINS"))
	if len(aliases) == 0 {
		aliases = constants.SupportedChains
	}
	cfg.ChainAliases = aliases

	for _, alias := range aliases {
		if _, known := constants.ChainAliasToID[alias]; !known {
			return nil, fmt.Errorf("unknown chain alias in CHAINS: %s", alias)
		}
		key := envKey(alias)
		if rpc := v.GetString("RPC_URL_" + key); rpc != "" {
			cfg.rpcOverrides[alias] = rpc
		}
		if contract := v.GetString("SWAP_CONTRACT_" + key); contract != "" {
			cfg.swapOverrides[alias] = contract
		}
	}

	return cfg, nil
}

// ChainConfigs materializes the configured chain set, applying per-chain
// overrides on top of the built-in defaults.
func (c *Config) ChainConfigs() ([]chains.ChainConfig, error) {
	configs := make([]chains.ChainConfig, 0, len(c.ChainAliases))
	for _, alias := range c.ChainAliases {
		rpc, ok := c.rpcOverrides[alias]
		if !ok {
			rpc = constants.OfficialRPCEndpoints[alias]
		}
		if rpc == "" {
			return nil, fmt.Errorf("no RPC endpoint for chain %s: set RPC_URL_%s", alias, envKey(alias))
		}

		contract, ok := c.swapOverrides[alias]
		if !ok {
			contract = constants.DefaultSwapContracts[alias]
		}
		if !common.IsHexAddress(contract) {
			return nil, fmt.Errorf("invalid swap contract address for chain %s: %q", alias, contract)
		}

		configs = append(configs, chains.ChainConfig{
			Alias:        alias,
			ChainID:      constants.ChainAliasToID[alias],
			RPCEndpoint:  rpc,
			SwapContract: common.HexToAddress(contract),
		})
	}
	return configs, nil
}

func envKey(alias string) string {
	return strings.ToUpper(strings.ReplaceAll(alias, "-", "_"))
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
