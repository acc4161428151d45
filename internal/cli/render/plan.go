package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/beldex-coin/beldex-deploy/internal/domain/models"
	"github.com/beldex-coin/beldex-deploy/internal/usecase"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
)

// PlanRenderer renders a deployment plan without running it
type PlanRenderer struct {
	out io.Writer
}

// NewPlanRenderer creates a new plan renderer
func NewPlanRenderer(out io.Writer) *PlanRenderer {
	return &PlanRenderer{out: out}
}

// Render renders every stage and contract of the plan
func (r *PlanRenderer) Render(result *usecase.ShowPlanResult) error {
	plan := result.Plan
	color.New(color.Bold).Fprintf(r.out, "📋 Plan %s: %d stages, %d contracts\n\n",
		lo.CoalesceOrEmpty(plan.Name, "(unnamed)"), len(plan.Stages), len(plan.Artifacts()))

	t := newTable()
	t.AppendHeader(table.Row{"STAGE", "CONTRACT", "ARGS", "ARTIFACT"})
	for i, stage := range plan.Stages {
		for _, step := range stage.Steps {
			args := lo.Map(step.Args, func(a models.Arg, _ int) string { return a.String() })
			artifact := color.New(color.FgGreen).Sprint("✓")
			if _, missing := result.MissingArtifacts[step.Artifact]; missing {
				artifact = color.New(color.FgRed).Sprint("missing")
			}
			t.AppendRow(table.Row{i + 1, step.Artifact, strings.Join(args, ", "), artifact})
		}
	}
	fmt.Fprintln(r.out, t.Render())

	if len(result.MissingArtifacts) > 0 {
		fmt.Fprintln(r.out)
		for _, name := range plan.Artifacts() {
			if err, ok := result.MissingArtifacts[name]; ok {
				fmt.Fprintln(r.out, FormatWarning(err.Error()))
			}
		}
	}

	return nil
}
