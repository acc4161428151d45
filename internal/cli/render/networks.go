package render

import (
	"fmt"
	"io"

	"github.com/beldex-coin/beldex-deploy/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{out: out}
}

// Render renders the configured networks
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured in beldex.toml [networks]")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	for _, network := range result.Networks {
		if network.Error != nil {
			fmt.Fprintf(r.out, "  ❌ %s - Error: %v\n", network.Name, network.Error)
			continue
		}
		chainID := "chain ID from RPC"
		if network.Network.ChainID != 0 {
			chainID = fmt.Sprintf("Chain ID: %d", network.Network.ChainID)
		}
		fmt.Fprintf(r.out, "  ✅ %s - %s (%s)\n", network.Name, network.Network.RPCURL, chainID)
	}

	return nil
}
