package usecase

import (
	"context"

	"github.com/beldex-coin/beldex-deploy/internal/domain/config"
	"github.com/beldex-coin/beldex-deploy/internal/domain/models"
)

// ContractDeployer deploys a single artifact and waits until it is on chain.
// Args are already resolved: addresses as hex strings, literals verbatim.
type ContractDeployer interface {
	Deploy(ctx context.Context, artifact *models.Artifact, args []string) (*models.Instance, error)
}

// DeploymentChecker checks on-chain state of recorded deployments
type DeploymentChecker interface {
	CheckDeployment(ctx context.Context, address string) (exists bool, err error)
}

// ArtifactRepository provides access to compiled contracts
type ArtifactRepository interface {
	GetArtifact(ctx context.Context, name string) (*models.Artifact, error)
	ListArtifacts(ctx context.Context) ([]string, error)
}

// DeploymentRepository persists the deployment manifest
type DeploymentRepository interface {
	GetDeployment(ctx context.Context, network, contract string) (*models.Instance, error)
	ListDeployments(ctx context.Context, network string) ([]*models.Instance, error)
	SaveDeployment(ctx context.Context, instance *models.Instance) error
}

// PlanLoader loads deployment plans
type PlanLoader interface {
	LoadPlan(ctx context.Context, path string) (*models.Plan, error)
}

// NetworkResolver handles network configuration resolution
type NetworkResolver interface {
	Names() []string
	Configured() []string
	Resolve(name string) (*config.Network, error)
}

// Confirmer asks the user before anything irreversible happens
type Confirmer interface {
	Confirm(ctx context.Context, label string) (bool, error)
}

// NetworkSelector lets the user pick a network when none was given
type NetworkSelector interface {
	SelectNetwork(ctx context.Context, names []string) (string, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Current  int
	Total    int
	Message  string
	Spinner  bool
	Metadata interface{}
}

// Event names emitted by DeployContracts
const (
	EventPlanLoaded        = "plan_loaded"
	EventStageStarting     = "stage_starting"
	EventContractDeploying = "contract_deploying"
	EventContractDeployed  = "contract_deployed"
	EventContractReused    = "contract_reused"
	EventStageCompleted    = "stage_completed"
	EventDeployCompleted   = "deploy_completed"
)

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}
