package config

import (
	"fmt"
	"slices"

	"github.com/beldex-coin/beldex-deploy/internal/domain"
	"github.com/beldex-coin/beldex-deploy/internal/domain/config"
	"github.com/samber/lo"
)

// DevelopmentNetwork is always available and points at a local node,
// the same default truffle uses.
const DevelopmentNetwork = "development"

const developmentRPCURL = "http://127.0.0.1:8545"

// NetworkResolver resolves network names from beldex.toml
type NetworkResolver struct {
	networks   map[string]config.NetworkConfig
	configured []string
}

// NewNetworkResolver creates a new network resolver
func NewNetworkResolver(projectFile *config.ProjectFile) *NetworkResolver {
	networks := map[string]config.NetworkConfig{
		DevelopmentNetwork: {RPCURL: developmentRPCURL},
	}
	var configured []string
	if projectFile != nil {
		for name, network := range projectFile.Networks {
			networks[name] = network
			configured = append(configured, name)
		}
	}
	slices.Sort(configured)
	return &NetworkResolver{networks: networks, configured: configured}
}

// Names returns all network names, sorted
func (r *NetworkResolver) Names() []string {
	names := lo.Keys(r.networks)
	slices.Sort(names)
	return names
}

// Configured returns the networks declared in beldex.toml, sorted
func (r *NetworkResolver) Configured() []string {
	return slices.Clone(r.configured)
}

// Resolve resolves a network name to its configuration
func (r *NetworkResolver) Resolve(name string) (*config.Network, error) {
	network, exists := r.networks[name]
	if !exists {
		return nil, domain.NotFoundWithSuggestions{
			Kind:        domain.ErrNetworkNotFound,
			Name:        name,
			Suggestions: domain.Suggest(name, r.Names()),
		}
	}

	if network.RPCURL == "" {
		return nil, fmt.Errorf("network %s has no rpc_url (check %s and your .env)", name, ProjectFileName)
	}

	return &config.Network{
		Name:    name,
		RPCURL:  network.RPCURL,
		ChainID: network.ChainID,
	}, nil
}
