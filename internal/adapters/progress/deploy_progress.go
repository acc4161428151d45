package progress

import (
	"context"
	"io"
	"sync"

	"github.com/beldex-coin/beldex-deploy/internal/cli/render"
	"github.com/beldex-coin/beldex-deploy/internal/domain/models"
	"github.com/beldex-coin/beldex-deploy/internal/usecase"
)

// DeployProgress renders deployment events as they happen. With a spinner
// it animates the in-flight contracts; without one it only prints lines,
// which keeps logs from non-interactive runs readable.
type DeployProgress struct {
	mu       sync.Mutex
	renderer *render.DeployRenderer
	spinner  *SpinnerProgressReporter
}

// NewDeployProgress creates a progress sink that writes to out
func NewDeployProgress(out io.Writer, animate bool) *DeployProgress {
	p := &DeployProgress{renderer: render.NewDeployRenderer(out)}
	if animate {
		p.spinner = NewSpinnerProgressReporter(out)
	}
	return p
}

// OnProgress handles progress events for deploy runs
func (p *DeployProgress) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	p.print(func() {
		switch event.Stage {
		case usecase.EventPlanLoaded:
			if plan, ok := event.Metadata.(*models.Plan); ok {
				p.renderer.RenderPlanHeader(plan, event.Message, event.Message == usecase.SimulatedNetwork)
			}
		case usecase.EventStageStarting:
			p.renderer.RenderStageStart(event.Current, event.Total, event.Message)
		case usecase.EventContractDeployed:
			if inst, ok := event.Metadata.(*models.Instance); ok {
				p.renderer.RenderDeployed(inst)
			}
		case usecase.EventContractReused:
			if inst, ok := event.Metadata.(*models.Instance); ok {
				p.renderer.RenderReused(inst)
			}
		}
	})

	if p.spinner != nil {
		p.spinner.OnProgress(ctx, event)
	}
}

// print runs fn with the spinner paused so lines are not interleaved with it
func (p *DeployProgress) print(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.spinner == nil {
		fn()
		return
	}
	p.spinner.Pause(fn)
}

// Stop stops any running animation
func (p *DeployProgress) Stop() {
	if p.spinner != nil {
		p.spinner.Stop()
	}
}

// Info prints an info message
func (p *DeployProgress) Info(message string) {
	if p.spinner != nil {
		p.spinner.Info(message)
		return
	}
	p.print(func() { io.WriteString(p.renderer.GetWriter(), message+"\n") })
}

// Error prints an error message
func (p *DeployProgress) Error(message string) {
	if p.spinner != nil {
		p.spinner.Error(message)
		return
	}
	p.print(func() { io.WriteString(p.renderer.GetWriter(), render.FormatError(message)+"\n") })
}

// Ensure DeployProgress implements ProgressSink
var _ usecase.ProgressSink = (*DeployProgress)(nil)
