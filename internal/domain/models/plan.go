package models

import (
	"fmt"

	"github.com/beldex-coin/beldex-deploy/internal/domain"
	"github.com/samber/lo"
)

// BeldexETHAmount is passed verbatim to the BeldexETH constructor.
// It stays a decimal string until ABI encoding so no precision is lost.
const BeldexETHAmount = "10000000000000000"

// Plan is an ordered list of deployment stages
type Plan struct {
	Name   string   `yaml:"name"`
	Stages []*Stage `yaml:"stages"`
}

// Stage groups deployments that run concurrently. All of them must
// complete before the next stage starts.
type Stage struct {
	Message string  `yaml:"message"`
	Steps   []*Step `yaml:"contracts"`
}

// Step deploys one artifact with its constructor arguments
type Step struct {
	Artifact string `yaml:"artifact"`
	Args     []Arg  `yaml:"args,omitempty"`
}

// Arg is a constructor argument: either the address of a contract
// deployed in an earlier stage, or an opaque literal value.
type Arg struct {
	Ref   string `yaml:"ref,omitempty"`
	Value string `yaml:"value,omitempty"`
}

// AddressOf references the deployed address of a contract
func AddressOf(contract string) Arg {
	return Arg{Ref: contract}
}

// Literal passes a value unchanged
func Literal(value string) Arg {
	return Arg{Value: value}
}

// IsRef reports whether the argument refers to another contract
func (a Arg) IsRef() bool {
	return a.Ref != ""
}

func (a Arg) String() string {
	if a.IsRef() {
		return "@" + a.Ref
	}
	return fmt.Sprintf("%q", a.Value)
}

// BeldexPlan returns the default plan for the Beldex bridge contracts.
func BeldexPlan() *Plan {
	return &Plan{
		Name: "beldex",
		Stages: []*Stage{
			{
				Message: "Deploying Utils, TestBeldexToken, BeldexIP...",
				Steps: []*Step{
					{Artifact: "Utils"},
					{Artifact: "BeldexIP"},
				},
			},
			{
				Message: "Deploying BeldexRedeem, BeldexTransfer...",
				Steps: []*Step{
					{Artifact: "BeldexRedeem", Args: []Arg{AddressOf("BeldexIP")}},
					{Artifact: "BeldexTransfer", Args: []Arg{AddressOf("BeldexIP")}},
				},
			},
			{
				Message: "Deploying BeldexETH",
				Steps: []*Step{
					{Artifact: "BeldexETH", Args: []Arg{
						AddressOf("BeldexTransfer"),
						AddressOf("BeldexRedeem"),
						Literal(BeldexETHAmount),
					}},
				},
			},
		},
	}
}

// Artifacts returns every artifact name in plan order
func (p *Plan) Artifacts() []string {
	return lo.FlatMap(p.Stages, func(s *Stage, _ int) []string {
		return lo.Map(s.Steps, func(step *Step, _ int) string { return step.Artifact })
	})
}

// StageOf returns the zero-based stage index that deploys the contract, or -1
func (p *Plan) StageOf(contract string) int {
	for i, stage := range p.Stages {
		for _, step := range stage.Steps {
			if step.Artifact == contract {
				return i
			}
		}
	}
	return -1
}

// Validate checks the plan for structural errors
func (p *Plan) Validate() error {
	if len(p.Stages) == 0 {
		return fmt.Errorf("%w: at least one stage is required", domain.ErrInvalidPlan)
	}

	seen := make(map[string]int)
	for i, stage := range p.Stages {
		if len(stage.Steps) == 0 {
			return fmt.Errorf("%w: stage %d has no contracts", domain.ErrInvalidPlan, i+1)
		}
		for _, step := range stage.Steps {
			if step.Artifact == "" {
				return fmt.Errorf("%w: stage %d has a contract without an artifact name", domain.ErrInvalidPlan, i+1)
			}
			if prev, exists := seen[step.Artifact]; exists {
				return fmt.Errorf("%w: %s is deployed in stage %d and stage %d", domain.ErrInvalidPlan, step.Artifact, prev+1, i+1)
			}
			seen[step.Artifact] = i
		}
	}

	for i, stage := range p.Stages {
		for _, step := range stage.Steps {
			for n, arg := range step.Args {
				if (arg.Ref == "") == (arg.Value == "") {
					return fmt.Errorf("%w: %s argument %d must set exactly one of ref or value", domain.ErrInvalidPlan, step.Artifact, n)
				}
				if !arg.IsRef() {
					continue
				}
				depStage, exists := seen[arg.Ref]
				if !exists {
					return fmt.Errorf("%w: %s depends on %s which is not part of the plan", domain.ErrInvalidPlan, step.Artifact, arg.Ref)
				}
				if depStage >= i {
					return fmt.Errorf("%w: %s (stage %d) depends on %s which is only deployed in stage %d",
						domain.ErrInvalidPlan, step.Artifact, i+1, arg.Ref, depStage+1)
				}
			}
		}
	}

	return nil
}
