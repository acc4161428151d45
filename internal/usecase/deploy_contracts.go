package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/beldex-coin/beldex-deploy/internal/domain"
	"github.com/beldex-coin/beldex-deploy/internal/domain/config"
	"github.com/beldex-coin/beldex-deploy/internal/domain/models"
	"golang.org/x/sync/errgroup"
)

// SimulatedNetwork is the network name reported for dry runs
const SimulatedNetwork = "simulated"

// DeployContracts deploys a plan stage by stage. Contracts within a stage are
// deployed concurrently; a stage starts only once the previous one fully
// succeeded. The first failure stops the run.
type DeployContracts struct {
	cfg       *config.RuntimeConfig
	plans     PlanLoader
	artifacts ArtifactRepository
	deployer  ContractDeployer
	checker   DeploymentChecker
	repo      DeploymentRepository
	confirmer Confirmer
	progress  ProgressSink
	log       *slog.Logger
}

// NewDeployContracts creates a new deploy use case
func NewDeployContracts(
	cfg *config.RuntimeConfig,
	plans PlanLoader,
	artifacts ArtifactRepository,
	deployer ContractDeployer,
	checker DeploymentChecker,
	repo DeploymentRepository,
	confirmer Confirmer,
	progress ProgressSink,
	log *slog.Logger,
) *DeployContracts {
	return &DeployContracts{
		cfg:       cfg,
		plans:     plans,
		artifacts: artifacts,
		deployer:  deployer,
		checker:   checker,
		repo:      repo,
		confirmer: confirmer,
		progress:  progress,
		log:       log,
	}
}

// DeployContractsParams contains parameters for a deployment run
type DeployContractsParams struct {
	PlanPath  string // overrides the configured plan
	Resume    bool   // reuse contracts recorded in the manifest that still have code
	AssumeYes bool   // skip the confirmation prompt
}

// DeployContractsResult contains the outcome of a run. On failure it still
// lists every contract that reached the chain.
type DeployContractsResult struct {
	Plan            *models.Plan
	Network         string
	DryRun          bool
	Instances       []*models.Instance
	Deployed        int
	Reused          int
	CompletedStages int
	Cancelled       bool
}

// Run executes the deployment plan
func (uc *DeployContracts) Run(ctx context.Context, params DeployContractsParams) (*DeployContractsResult, error) {
	planPath := params.PlanPath
	if planPath == "" {
		planPath = uc.cfg.PlanPath
	}

	plan, err := uc.plans.LoadPlan(ctx, planPath)
	if err != nil {
		return nil, err
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	network, err := uc.targetNetwork()
	if err != nil {
		return nil, err
	}

	// Load every artifact before sending anything
	artifacts := make(map[string]*models.Artifact)
	for _, name := range plan.Artifacts() {
		artifact, err := uc.artifacts.GetArtifact(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to load artifact: %w", err)
		}
		artifacts[name] = artifact
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:    EventPlanLoaded,
		Total:    len(plan.Stages),
		Message:  network,
		Metadata: plan,
	})

	result := &DeployContractsResult{
		Plan:    plan,
		Network: network,
		DryRun:  uc.cfg.DryRun,
	}

	if !uc.cfg.DryRun && !params.AssumeYes && !uc.cfg.NonInteractive {
		ok, err := uc.confirmer.Confirm(ctx, fmt.Sprintf("Deploy %d contracts to %s", len(artifacts), network))
		if err != nil {
			return nil, err
		}
		if !ok {
			result.Cancelled = true
			return result, nil
		}
	}

	book := newAddressBook()
	reused := make(map[string]*models.Instance)
	if params.Resume && !uc.cfg.DryRun {
		if err := uc.seedFromManifest(ctx, plan, network, book, reused); err != nil {
			return nil, err
		}
	}

	for i, stage := range plan.Stages {
		uc.progress.OnProgress(ctx, ProgressEvent{
			Stage:   EventStageStarting,
			Current: i + 1,
			Total:   len(plan.Stages),
			Message: stage.Message,
		})
		uc.log.Debug("stage starting", "stage", i+1, "contracts", len(stage.Steps))

		if err := uc.runStage(ctx, i, stage, artifacts, book, reused, network, result); err != nil {
			return result, err
		}
		result.CompletedStages++

		uc.progress.OnProgress(ctx, ProgressEvent{
			Stage:   EventStageCompleted,
			Current: i + 1,
			Total:   len(plan.Stages),
		})
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:    EventDeployCompleted,
		Metadata: result,
	})

	return result, nil
}

func (uc *DeployContracts) targetNetwork() (string, error) {
	if uc.cfg.DryRun {
		return SimulatedNetwork, nil
	}
	if uc.cfg.Network == nil {
		return "", fmt.Errorf("%w: select one with --network or use --dry-run", domain.ErrNetworkNotFound)
	}
	return uc.cfg.Network.Name, nil
}

// runStage deploys every step of a stage concurrently and waits for all of them
func (uc *DeployContracts) runStage(
	ctx context.Context,
	index int,
	stage *models.Stage,
	artifacts map[string]*models.Artifact,
	book *addressBook,
	reused map[string]*models.Instance,
	network string,
	result *DeployContractsResult,
) error {
	stageNum := index + 1
	instances := make([]*models.Instance, len(stage.Steps))

	// Every address this stage needs comes from earlier stages
	args := make([][]string, len(stage.Steps))
	for j, step := range stage.Steps {
		if _, ok := reused[step.Artifact]; ok {
			continue
		}
		resolved, err := book.resolve(step.Args)
		if err != nil {
			return &domain.DeploymentError{Stage: stageNum, Contract: step.Artifact, Err: err}
		}
		args[j] = resolved
	}

	// Siblings keep the run context so a transaction already sent is still
	// awaited and recorded when another step fails.
	var g errgroup.Group
	for j, step := range stage.Steps {
		if inst, ok := reused[step.Artifact]; ok {
			instances[j] = inst
			uc.progress.OnProgress(ctx, ProgressEvent{
				Stage:    EventContractReused,
				Message:  step.Artifact,
				Metadata: inst,
			})
			continue
		}

		g.Go(func() error {
			uc.progress.OnProgress(ctx, ProgressEvent{
				Stage:   EventContractDeploying,
				Message: step.Artifact,
				Spinner: true,
			})

			inst, err := uc.deployer.Deploy(ctx, artifacts[step.Artifact], args[j])
			if err != nil {
				return &domain.DeploymentError{Stage: stageNum, Contract: step.Artifact, Err: err}
			}

			inst.ContractName = step.Artifact
			inst.Network = network
			inst.Args = args[j]

			if err := book.set(step.Artifact, inst.Address); err != nil {
				return &domain.DeploymentError{Stage: stageNum, Contract: step.Artifact, Err: err}
			}
			instances[j] = inst

			if !uc.cfg.DryRun {
				if err := uc.repo.SaveDeployment(ctx, inst); err != nil {
					uc.log.Debug("manifest write failed", "contract", step.Artifact, "error", err)
					uc.progress.Error(fmt.Sprintf("failed to record %s at %s: %v", step.Artifact, inst.Address, err))
				}
			}

			uc.progress.OnProgress(ctx, ProgressEvent{
				Stage:    EventContractDeployed,
				Message:  step.Artifact,
				Metadata: inst,
			})
			return nil
		})
	}

	err := g.Wait()

	for _, inst := range instances {
		if inst == nil {
			continue
		}
		result.Instances = append(result.Instances, inst)
		if inst.Reused {
			result.Reused++
		} else {
			result.Deployed++
		}
	}

	return err
}

// seedFromManifest reuses contracts from a previous run that still have code on chain
func (uc *DeployContracts) seedFromManifest(
	ctx context.Context,
	plan *models.Plan,
	network string,
	book *addressBook,
	reused map[string]*models.Instance,
) error {
	for _, name := range plan.Artifacts() {
		inst, err := uc.repo.GetDeployment(ctx, network, name)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read manifest: %w", err)
		}

		exists, err := uc.checker.CheckDeployment(ctx, inst.Address)
		if err != nil {
			return fmt.Errorf("failed to check %s at %s: %w", name, inst.Address, err)
		}
		if !exists {
			uc.progress.Info(fmt.Sprintf("%s at %s has no code on %s, deploying again", name, inst.Address, network))
			continue
		}

		if err := book.set(name, inst.Address); err != nil {
			return err
		}
		inst.Reused = true
		reused[name] = inst
	}
	return nil
}
