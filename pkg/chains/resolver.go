package chains

import (
	"strconv"
	"strings"
)

// HintChannel identifies one place a request can carry a chain hint.
type HintChannel string

const (
	HintChannelAlias  HintChannel = "chain"   // query/body field, alias form
	HintChannelID     HintChannel = "chainId" // query/body field, numeric form
	HintChannelHeader HintChannel = "x-chain" // request header, alias or numeric
)

// HintPrecedence is the fixed order in which hint channels are consulted.
// Explicit query/body hints win over the header; the configured default
// applies only when no hint is present at all.
var HintPrecedence = []HintChannel{HintChannelAlias, HintChannelID, HintChannelHeader}

// Hints carries the raw chain hints extracted from one request. Empty fields
// mean the channel was not supplied.
type Hints struct {
	Alias   string
	ChainID string
	Header  string
}

// Resolver picks the chain a request targets. In single-chain deployments it
// is pinned: every request resolves to the default chain and hints are
// ignored.
type Resolver struct {
	registry *Registry
	pinned   bool
}

func NewResolver(registry *Registry, pinned bool) *Resolver {
	return &Resolver{registry: registry, pinned: pinned}
}

// Resolve selects one configured chain from the request's hints, consulting
// channels in HintPrecedence order. A supplied hint that matches nothing is
// an error, never a silent fall-through to the default. An alias and a
// numeric id that disagree are rejected rather than arbitrated.
func (r *Resolver) Resolve(hints Hints) (*ChainConfig, error) {
	if r.pinned {
		return r.registry.Default(), nil
	}

	alias := strings.TrimSpace(hints.Alias)
	id := strings.TrimSpace(hints.ChainID)
	header := strings.TrimSpace(hints.Header)

	if alias != "" && id != "" {
		fromAlias, err := r.lookupAlias(alias)
		if err != nil {
			return nil, err
		}
		fromID, err := r.lookupID(id)
		if err != nil {
			return nil, err
		}
		if fromAlias != fromID {
			return nil, &ConflictingChainHintError{Alias: alias, ChainID: id}
		}
		return fromAlias, nil
	}

	for _, channel := range HintPrecedence {
		switch channel {
		case HintChannelAlias:
			if alias != "" {
				return r.lookupAlias(alias)
			}
		case HintChannelID:
			if id != "" {
				return r.lookupID(id)
			}
		case HintChannelHeader:
			if header != "" {
				return r.lookupAny(header)
			}
		}
	}

	return r.registry.Default(), nil
}

func (r *Resolver) lookupAlias(alias string) (*ChainConfig, error) {
	if cfg, ok := r.registry.GetByAlias(alias); ok {
		return cfg, nil
	}
	return nil, &UnknownChainError{Hint: alias}
}

func (r *Resolver) lookupID(raw string) (*ChainConfig, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, &UnknownChainError{Hint: raw}
	}
	if cfg, ok := r.registry.GetByID(id); ok {
		return cfg, nil
	}
	return nil, &UnknownChainError{Hint: raw}
}

// lookupAny matches the header value first against aliases, then against
// numeric ids.
func (r *Resolver) lookupAny(raw string) (*ChainConfig, error) {
	if cfg, ok := r.registry.GetByAlias(raw); ok {
		return cfg, nil
	}
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if cfg, ok := r.registry.GetByID(id); ok {
			return cfg, nil
		}
	}
	return nil, &UnknownChainError{Hint: raw}
}
