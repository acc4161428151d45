package usecase

import (
	"context"
	"errors"

	"github.com/beldex-coin/beldex-deploy/internal/domain"
	"github.com/beldex-coin/beldex-deploy/internal/domain/config"
	"github.com/beldex-coin/beldex-deploy/internal/domain/models"
)

// ShowPlan loads and validates a plan without deploying anything
type ShowPlan struct {
	cfg       *config.RuntimeConfig
	plans     PlanLoader
	artifacts ArtifactRepository
}

// NewShowPlan creates a new ShowPlan use case
func NewShowPlan(cfg *config.RuntimeConfig, plans PlanLoader, artifacts ArtifactRepository) *ShowPlan {
	return &ShowPlan{cfg: cfg, plans: plans, artifacts: artifacts}
}

// ShowPlanParams contains parameters for showing a plan
type ShowPlanParams struct {
	PlanPath string
}

// ShowPlanResult is a validated plan plus the artifacts it cannot find
type ShowPlanResult struct {
	Plan             *models.Plan
	MissingArtifacts map[string]error
}

// Run loads the plan and checks that every artifact is available
func (uc *ShowPlan) Run(ctx context.Context, params ShowPlanParams) (*ShowPlanResult, error) {
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

	result := &ShowPlanResult{
		Plan:             plan,
		MissingArtifacts: make(map[string]error),
	}
	for _, name := range plan.Artifacts() {
		if _, err := uc.artifacts.GetArtifact(ctx, name); err != nil {
			if !errors.Is(err, domain.ErrArtifactNotFound) {
				return nil, err
			}
			result.MissingArtifacts[name] = err
		}
	}

	return result, nil
}
