package config

import (
	"testing"

	"github.com/beldex-coin/beldex-deploy/internal/domain"
	"github.com/beldex-coin/beldex-deploy/internal/domain/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetworkResolver(t *testing.T) {
	resolver := NewNetworkResolver(&config.ProjectFile{
		Networks: map[string]config.NetworkConfig{
			"mainnet": {RPCURL: "https://mainnet.example", ChainID: 1},
			"broken":  {RPCURL: ""},
		},
	})

	t.Run("names are sorted and include development", func(t *testing.T) {
		assert.Equal(t, []string{"broken", "development", "mainnet"}, resolver.Names())
	})

	t.Run("configured excludes the built-in network", func(t *testing.T) {
		assert.Equal(t, []string{"broken", "mainnet"}, resolver.Configured())
	})

	t.Run("resolves configured network", func(t *testing.T) {
		network, err := resolver.Resolve("mainnet")
		require.NoError(t, err)
		assert.Equal(t, uint64(1), network.ChainID)
		assert.Equal(t, "https://mainnet.example", network.RPCURL)
	})

	t.Run("development defaults to localhost", func(t *testing.T) {
		network, err := resolver.Resolve(DevelopmentNetwork)
		require.NoError(t, err)
		assert.Equal(t, "http://127.0.0.1:8545", network.RPCURL)
		assert.Zero(t, network.ChainID)
	})

	t.Run("empty rpc url", func(t *testing.T) {
		_, err := resolver.Resolve("broken")
		assert.ErrorContains(t, err, "has no rpc_url")
	})

	t.Run("unknown network", func(t *testing.T) {
		_, err := resolver.Resolve("mainet")
		require.ErrorIs(t, err, domain.ErrNetworkNotFound)
		assert.Contains(t, err.Error(), "mainnet")
	})

	t.Run("nil project file", func(t *testing.T) {
		assert.Equal(t, []string{DevelopmentNetwork}, NewNetworkResolver(nil).Names())
		assert.Empty(t, NewNetworkResolver(nil).Configured())
	})
}
