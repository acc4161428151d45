package blockchain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

type sendBackend interface {
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

// nonceManager hands out nonces for a single account. Signing and sending
// happen under one lock so transactions reach the node in nonce order.
type nonceManager struct {
	mu     sync.Mutex
	key    *ecdsa.PrivateKey
	from   common.Address
	signer types.Signer
	next   uint64
	synced bool

	// afterSend runs under the lock once a transaction was accepted
	afterSend func()
}

func newNonceManager(key *ecdsa.PrivateKey, chainID *big.Int, afterSend func()) *nonceManager {
	return &nonceManager{
		key:       key,
		from:      crypto.PubkeyToAddress(key.PublicKey),
		signer:    types.LatestSignerForChainID(chainID),
		afterSend: afterSend,
	}
}

// Address returns the sending account
func (n *nonceManager) Address() common.Address {
	return n.from
}

// send builds a transaction with the next nonce, signs it and submits it.
// When the node rejects it the cached nonce is dropped and re-read next time.
func (n *nonceManager) send(ctx context.Context, client sendBackend, build func(nonce uint64) *types.Transaction) (*types.Transaction, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.synced {
		nonce, err := client.PendingNonceAt(ctx, n.from)
		if err != nil {
			return nil, fmt.Errorf("failed to get nonce: %w", err)
		}
		n.next = nonce
		n.synced = true
	}

	signed, err := types.SignTx(build(n.next), n.signer, n.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := client.SendTransaction(ctx, signed); err != nil {
		n.synced = false
		return nil, fmt.Errorf("failed to send transaction: %w", err)
	}
	n.next++

	if n.afterSend != nil {
		n.afterSend()
	}
	return signed, nil
}
