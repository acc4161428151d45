package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beldex-coin/beldex-deploy/internal/domain"
	"github.com/beldex-coin/beldex-deploy/internal/domain/models"
	"github.com/beldex-coin/beldex-deploy/internal/usecase"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
)

// DeployRenderer renders a deployment run as it happens and its summary
type DeployRenderer struct {
	out io.Writer
}

// NewDeployRenderer creates a new deploy renderer
func NewDeployRenderer(out io.Writer) *DeployRenderer {
	return &DeployRenderer{out: out}
}

// GetWriter returns the io.Writer used by this renderer
func (r *DeployRenderer) GetWriter() io.Writer {
	return r.out
}

// RenderPlanHeader announces the plan before anything is sent
func (r *DeployRenderer) RenderPlanHeader(plan *models.Plan, network string, dryRun bool) {
	fmt.Fprintf(r.out, "\n🚀 Deploying %s to %s\n", lo.CoalesceOrEmpty(plan.Name, "plan"), network)
	if dryRun {
		color.New(color.FgYellow).Fprintln(r.out, "   Dry run on a simulated chain, nothing is broadcast")
	}
	fmt.Fprintf(r.out, "📋 %d stages, %d contracts\n\n", len(plan.Stages), len(plan.Artifacts()))
}

// RenderStageStart prints the stage message
func (r *DeployRenderer) RenderStageStart(current, total int, message string) {
	if message == "" {
		message = fmt.Sprintf("Stage %d", current)
	}
	color.New(color.Bold).Fprintf(r.out, "[%d/%d] %s\n", current, total, message)
}

// RenderDeployed prints a contract that just reached the chain
func (r *DeployRenderer) RenderDeployed(inst *models.Instance) {
	color.New(color.FgGreen).Fprint(r.out, "  ✓ ")
	color.New(color.FgCyan).Fprintf(r.out, "%-16s", inst.ContractName)
	fmt.Fprintf(r.out, " %s\n", inst.Address)
}

// RenderReused prints a contract taken over from an earlier run
func (r *DeployRenderer) RenderReused(inst *models.Instance) {
	color.New(color.FgHiBlack).Fprintf(r.out, "  ↺ %-16s %s (reused)\n", inst.ContractName, inst.Address)
}

// RenderResult renders the summary of a run, successful or not
func (r *DeployRenderer) RenderResult(result *usecase.DeployContractsResult, runErr error) {
	if result == nil {
		return
	}

	if result.Cancelled {
		color.New(color.FgYellow).Fprintln(r.out, "Deployment cancelled")
		return
	}

	fmt.Fprintf(r.out, "\n%s\n", strings.Repeat("═", 70))

	if runErr == nil {
		color.New(color.FgGreen, color.Bold).Fprintf(r.out,
			"🎉 Deployed %s to %s\n", lo.CoalesceOrEmpty(result.Plan.Name, "plan"), result.Network)
	} else {
		color.New(color.FgRed, color.Bold).Fprintln(r.out, "❌ Deployment failed")
	}

	fmt.Fprintf(r.out, "\n📊 Summary:\n")
	var depErr *domain.DeploymentError
	if errors.As(runErr, &depErr) {
		fmt.Fprintf(r.out, "  • Failed at stage %d: %s\n", depErr.Stage, depErr.Contract)
	}
	fmt.Fprintf(r.out, "  • Stages completed: %d/%d\n", result.CompletedStages, len(result.Plan.Stages))
	fmt.Fprintf(r.out, "  • Contracts deployed: %d\n", result.Deployed)
	if result.Reused > 0 {
		fmt.Fprintf(r.out, "  • Contracts reused: %d\n", result.Reused)
	}

	if len(result.Instances) > 0 {
		fmt.Fprintln(r.out)
		r.renderAddresses(result.Instances)
	}
	if result.DryRun {
		color.New(color.FgYellow).Fprintln(r.out, "\nDry run: addresses are from a simulated chain and were not recorded")
	}
}

func (r *DeployRenderer) renderAddresses(instances []*models.Instance) {
	t := newTable()
	t.AppendHeader(table.Row{"CONTRACT", "ADDRESS", "TX"})
	for _, inst := range instances {
		tx := inst.TransactionHash
		if inst.Reused {
			tx = "(reused)"
		}
		t.AppendRow(table.Row{inst.ContractName, inst.Address, tx})
	}
	fmt.Fprintln(r.out, t.Render())
}
