package render

import (
	"fmt"
	"io"

	"github.com/beldex-coin/beldex-deploy/internal/usecase"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StatusRenderer renders the recorded deployments of a network
type StatusRenderer struct {
	out io.Writer
}

// NewStatusRenderer creates a new status renderer
func NewStatusRenderer(out io.Writer) *StatusRenderer {
	return &StatusRenderer{out: out}
}

// Render renders one row per recorded contract
func (r *StatusRenderer) Render(result *usecase.ShowStatusResult) error {
	if len(result.Deployments) == 0 {
		fmt.Fprintf(r.out, "No deployments recorded on %s\n", result.Network)
		return nil
	}

	color.New(color.Bold).Fprintf(r.out, "📦 Deployments on %s\n\n", result.Network)

	t := newTable()
	t.AppendHeader(table.Row{"CONTRACT", "ADDRESS", "BLOCK", "DEPLOYED", "STATUS"})
	for _, dep := range result.Deployments {
		inst := dep.Instance
		block := ""
		if inst.BlockNumber > 0 {
			block = fmt.Sprintf("%d", inst.BlockNumber)
		}
		deployed := ""
		if !inst.DeployedAt.IsZero() {
			deployed = inst.DeployedAt.Local().Format("2006-01-02 15:04")
		}
		t.AppendRow(table.Row{inst.ContractName, inst.Address, block, deployed, formatStatus(dep)})
	}
	fmt.Fprintln(r.out, t.Render())

	for _, dep := range result.Deployments {
		if dep.Error != nil {
			fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("%s: %v", dep.Instance.ContractName, dep.Error)))
		}
	}
	return nil
}

func formatStatus(dep *usecase.DeploymentStatus) string {
	title := cases.Title(language.English)
	switch {
	case dep.Error != nil:
		return color.New(color.FgYellow).Sprint(title.String("unknown"))
	case !dep.Checked:
		return color.New(color.FgHiBlack).Sprint(title.String("unchecked"))
	case dep.Live:
		return color.New(color.FgGreen).Sprint(title.String("live"))
	default:
		return color.New(color.FgRed).Sprint(title.String("missing"))
	}
}
