package blockchain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/beldex-coin/beldex-deploy/internal/domain"
	"github.com/beldex-coin/beldex-deploy/internal/domain/config"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
)

// Backend is the part of an Ethereum client the deployer uses. Both
// *ethclient.Client and the simulated client satisfy it.
type Backend interface {
	bind.DeployBackend
	sendBackend
	ChainID(ctx context.Context) (*big.Int, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
}

// session is one open connection to a chain
type session struct {
	client  Backend
	chainID *big.Int
	sender  *nonceManager
	close   func()
}

// simulatedBalance funds the ephemeral dry-run account with 1000 ether
var simulatedBalance = new(big.Int).Mul(big.NewInt(1000), big.NewInt(1e18))

// dialNetwork connects to the configured RPC endpoint and checks the chain ID
func dialNetwork(ctx context.Context, network *config.Network) (*session, error) {
	if network == nil {
		return nil, fmt.Errorf("%w: select one with --network", domain.ErrNetworkNotFound)
	}

	client, err := ethclient.DialContext(ctx, network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if network.ChainID != 0 && chainID.Uint64() != network.ChainID {
		client.Close()
		return nil, fmt.Errorf("chain ID mismatch on %s: expected %d, got %d", network.Name, network.ChainID, chainID.Uint64())
	}

	return &session{client: client, chainID: chainID, close: client.Close}, nil
}

// startSimulated runs an in-process chain with a funded throwaway account.
// Every accepted transaction is mined into its own block right away.
func startSimulated(ctx context.Context) (*session, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate dry-run key: %w", err)
	}
	from := crypto.PubkeyToAddress(key.PublicKey)

	backend := simulated.NewBackend(types.GenesisAlloc{
		from: {Balance: simulatedBalance},
	})
	client := backend.Client()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		backend.Close()
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}

	return &session{
		client:  client,
		chainID: chainID,
		sender:  newNonceManager(key, chainID, func() { backend.Commit() }),
		close:   func() { backend.Close() },
	}, nil
}

// parsePrivateKey accepts a hex key with or without 0x prefix
func parsePrivateKey(hexKey string) (*ecdsa.PrivateKey, error) {
	hexKey = strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	if hexKey == "" {
		return nil, fmt.Errorf("no deployer key configured: set BELDEX_DEPLOYER_KEY or [deployer] private_key in beldex.toml")
	}
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("invalid deployer key: %w", err)
	}
	return key, nil
}
