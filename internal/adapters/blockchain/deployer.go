package blockchain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/beldex-coin/beldex-deploy/internal/domain/config"
	"github.com/beldex-coin/beldex-deploy/internal/domain/models"
	"github.com/beldex-coin/beldex-deploy/internal/usecase"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
)

// gasBufferPercent is added on top of the estimate
const gasBufferPercent = 20

// ErrReverted is returned when a deployment transaction was mined but failed
var ErrReverted = errors.New("deployment transaction reverted")

// Deployer deploys artifacts with plain contract-creation transactions.
// It connects on first use, to the simulated chain when DryRun is set.
type Deployer struct {
	cfg *config.RuntimeConfig
	log *slog.Logger

	mu   sync.Mutex
	sess *session
}

// NewDeployer creates a new deployer adapter
func NewDeployer(cfg *config.RuntimeConfig, log *slog.Logger) *Deployer {
	return &Deployer{
		cfg: cfg,
		log: log.With("component", "deployer"),
	}
}

// ProvideDeployer creates a deployer and a cleanup func that closes its connection
func ProvideDeployer(cfg *config.RuntimeConfig, log *slog.Logger) (*Deployer, func()) {
	d := NewDeployer(cfg, log)
	return d, d.Close
}

// connect opens the session. A signer is only required when withSigner is set.
func (d *Deployer) connect(ctx context.Context, withSigner bool) (*session, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.sess == nil {
		var (
			sess *session
			err  error
		)
		if d.cfg.DryRun {
			sess, err = startSimulated(ctx)
		} else {
			sess, err = dialNetwork(ctx, d.cfg.Network)
		}
		if err != nil {
			return nil, err
		}
		d.log.Debug("connected", "chain_id", sess.chainID, "dry_run", d.cfg.DryRun)
		d.sess = sess
	}

	if withSigner && d.sess.sender == nil {
		key, err := parsePrivateKey(d.cfg.DeployerKey)
		if err != nil {
			return nil, err
		}
		d.sess.sender = newNonceManager(key, d.sess.chainID, nil)
		d.log.Debug("deployer account", "address", d.sess.sender.Address().Hex())
	}

	return d.sess, nil
}

// Deploy sends the creation transaction and waits until the contract has code
func (d *Deployer) Deploy(ctx context.Context, artifact *models.Artifact, args []string) (*models.Instance, error) {
	sess, err := d.connect(ctx, true)
	if err != nil {
		return nil, err
	}

	code, err := artifact.Bytecode.Bytes()
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode for %s: %w", artifact.ContractName, err)
	}
	packed, err := encodeConstructorArgs(artifact.ABI, args)
	if err != nil {
		return nil, fmt.Errorf("failed to encode constructor arguments: %w", err)
	}
	data := append(code, packed...)

	gasPrice, err := sess.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get gas price: %w", err)
	}

	gasLimit, err := sess.client.EstimateGas(ctx, ethereum.CallMsg{
		From:     sess.sender.Address(),
		GasPrice: gasPrice,
		Value:    big.NewInt(0),
		Data:     data,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to estimate gas: %w", err)
	}
	gasLimit = gasLimit * (100 + gasBufferPercent) / 100

	tx, err := sess.sender.send(ctx, sess.client, func(nonce uint64) *types.Transaction {
		return types.NewContractCreation(nonce, big.NewInt(0), gasLimit, gasPrice, data)
	})
	if err != nil {
		return nil, err
	}

	d.log.Debug("transaction sent",
		slog.String("contract", artifact.ContractName),
		slog.String("tx_hash", tx.Hash().Hex()),
		slog.Uint64("nonce", tx.Nonce()),
		slog.Uint64("gas_limit", gasLimit),
	)

	receipt, err := bind.WaitMined(ctx, sess.client, tx)
	if err != nil {
		return nil, fmt.Errorf("failed waiting for %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%w: %s", ErrReverted, tx.Hash().Hex())
	}

	deployed, err := sess.client.CodeAt(ctx, receipt.ContractAddress, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read code at %s: %w", receipt.ContractAddress.Hex(), err)
	}
	if len(deployed) == 0 {
		return nil, fmt.Errorf("no code at %s after deployment", receipt.ContractAddress.Hex())
	}

	return &models.Instance{
		ContractName:    artifact.ContractName,
		Address:         receipt.ContractAddress.Hex(),
		TransactionHash: tx.Hash().Hex(),
		BlockNumber:     receipt.BlockNumber.Uint64(),
		ChainID:         sess.chainID.Uint64(),
		DeployedAt:      time.Now().UTC(),
	}, nil
}

// Close closes the connection if one was opened
func (d *Deployer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.sess != nil {
		d.sess.close()
		d.sess = nil
	}
}

var _ usecase.ContractDeployer = (*Deployer)(nil)
