package chains

import (
	"fmt"
)

// Registry holds the configured chains, indexed by alias and by numeric id.
// It is populated once at startup and is safe for unlimited concurrent
// readers because it is never mutated afterwards.
type Registry struct {
	byAlias      map[string]*ChainConfig
	byID         map[int64]*ChainConfig
	defaultChain *ChainConfig
}

// NewRegistry builds a registry from the configured chains. Duplicate aliases
// or chain ids are a configuration error, as is a default alias that names no
// configured chain.
func NewRegistry(configs []ChainConfig, defaultAlias string) (*Registry, error) {
	if len(configs) == 0 {
		return nil, fmt.Errorf("no chains configured")
	}

	r := &Registry{
		byAlias: make(map[string]*ChainConfig, len(configs)),
		byID:    make(map[int64]*ChainConfig, len(configs)),
	}

	for i := range configs {
		cfg := &configs[i]
		if cfg.Alias == "" {
			return nil, fmt.Errorf("chain at index %d has no alias", i)
		}
		if cfg.ChainID <= 0 {
			return nil, fmt.Errorf("chain %s has invalid chain id %d", cfg.Alias, cfg.ChainID)
		}
		if cfg.RPCEndpoint == "" {
			return nil, fmt.Errorf("chain %s has no RPC endpoint", cfg.Alias)
		}
		if _, exists := r.byAlias[cfg.Alias]; exists {
			return nil, fmt.Errorf("duplicate chain alias: %s", cfg.Alias)
		}
		if _, exists := r.byID[cfg.ChainID]; exists {
			return nil, fmt.Errorf("duplicate chain id: %d", cfg.ChainID)
		}
		r.byAlias[cfg.Alias] = cfg
		r.byID[cfg.ChainID] = cfg
	}

	def, ok := r.byAlias[defaultAlias]
	if !ok {
		return nil, fmt.Errorf("default chain %q is not among the configured chains", defaultAlias)
	}
	r.defaultChain = def

	return r, nil
}

// GetByAlias retrieves a chain by alias. Matching is case-sensitive.
func (r *Registry) GetByAlias(alias string) (*ChainConfig, bool) {
	cfg, ok := r.byAlias[alias]
	return cfg, ok
}

// GetByID retrieves a chain by numeric chain id.
func (r *Registry) GetByID(id int64) (*ChainConfig, bool) {
	cfg, ok := r.byID[id]
	return cfg, ok
}

// Default returns the chain used when a request carries no hint.
func (r *Registry) Default() *ChainConfig {
	return r.defaultChain
}

// Chains returns all configured chains, for the /chains listing.
func (r *Registry) Chains() []*ChainConfig {
	chains := make([]*ChainConfig, 0, len(r.byAlias))
	for _, cfg := range r.byAlias {
		chains = append(chains, cfg)
	}
	return chains
}
