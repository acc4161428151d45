package usecase

import (
	"context"

	"github.com/beldex-coin/beldex-deploy/internal/domain/config"
)

// ListNetworks lists the networks configured in beldex.toml
type ListNetworks struct {
	resolver NetworkResolver
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(resolver NetworkResolver) *ListNetworks {
	return &ListNetworks{resolver: resolver}
}

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct{}

// NetworkInfo is a network or the reason it could not be resolved
type NetworkInfo struct {
	Name    string
	Network *config.Network
	Error   error
}

// ListNetworksResult contains the configured networks
type ListNetworksResult struct {
	Networks []NetworkInfo
}

// Run lists all networks
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	result := &ListNetworksResult{}
	for _, name := range uc.resolver.Names() {
		network, err := uc.resolver.Resolve(name)
		result.Networks = append(result.Networks, NetworkInfo{
			Name:    name,
			Network: network,
			Error:   err,
		})
	}
	return result, nil
}
