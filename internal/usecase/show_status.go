package usecase

import (
	"context"
	"fmt"

	"github.com/beldex-coin/beldex-deploy/internal/domain"
	"github.com/beldex-coin/beldex-deploy/internal/domain/config"
	"github.com/beldex-coin/beldex-deploy/internal/domain/models"
)

// ShowStatus reports the recorded deployments of a network and whether
// their code is still on chain
type ShowStatus struct {
	cfg     *config.RuntimeConfig
	repo    DeploymentRepository
	checker DeploymentChecker
}

// NewShowStatus creates a new ShowStatus use case
func NewShowStatus(cfg *config.RuntimeConfig, repo DeploymentRepository, checker DeploymentChecker) *ShowStatus {
	return &ShowStatus{cfg: cfg, repo: repo, checker: checker}
}

// ShowStatusParams contains parameters for the status check
type ShowStatusParams struct {
	Offline bool // only read the manifest
}

// DeploymentStatus is one manifest entry with its on-chain state
type DeploymentStatus struct {
	Instance *models.Instance
	Checked  bool
	Live     bool
	Error    error
}

// ShowStatusResult lists deployment statuses in manifest order
type ShowStatusResult struct {
	Network     string
	Deployments []*DeploymentStatus
}

// Run reads the manifest and checks each address
func (uc *ShowStatus) Run(ctx context.Context, params ShowStatusParams) (*ShowStatusResult, error) {
	if uc.cfg.Network == nil {
		return nil, fmt.Errorf("%w: select one with --network", domain.ErrNetworkNotFound)
	}

	instances, err := uc.repo.ListDeployments(ctx, uc.cfg.Network.Name)
	if err != nil {
		return nil, err
	}

	result := &ShowStatusResult{Network: uc.cfg.Network.Name}
	for _, inst := range instances {
		status := &DeploymentStatus{Instance: inst}
		if !params.Offline {
			status.Live, status.Error = uc.checker.CheckDeployment(ctx, inst.Address)
			status.Checked = status.Error == nil
		}
		result.Deployments = append(result.Deployments, status)
	}

	return result, nil
}
