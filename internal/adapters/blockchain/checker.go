package blockchain

import (
	"context"
	"fmt"
	"time"

	"github.com/beldex-coin/beldex-deploy/internal/domain"
	"github.com/beldex-coin/beldex-deploy/internal/usecase"
	"github.com/ethereum/go-ethereum/common"
)

const checkTimeout = 5 * time.Second

// CheckDeployment reports whether code exists at the given address
func (d *Deployer) CheckDeployment(ctx context.Context, address string) (bool, error) {
	if !common.IsHexAddress(address) {
		return false, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, address)
	}

	sess, err := d.connect(ctx, false)
	if err != nil {
		return false, err
	}

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	code, err := sess.client.CodeAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return false, fmt.Errorf("failed to check code: %w", err)
	}

	return len(code) > 0, nil
}

var _ usecase.DeploymentChecker = (*Deployer)(nil)
