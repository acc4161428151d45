package progress

import (
	"context"
	"io"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/beldex-coin/beldex-deploy/internal/usecase"
	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// SpinnerProgressReporter shows a spinner listing the contracts that are
// currently being deployed. Safe for concurrent use.
type SpinnerProgressReporter struct {
	mu       sync.Mutex
	out      io.Writer
	spinner  *spinner.Spinner
	inFlight []string
}

// NewSpinnerProgressReporter creates a new spinner-based progress reporter
func NewSpinnerProgressReporter(out io.Writer) *SpinnerProgressReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerProgressReporter{out: out, spinner: s}
}

// OnProgress tracks in-flight contracts and updates the spinner
func (r *SpinnerProgressReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch event.Stage {
	case usecase.EventContractDeploying:
		r.inFlight = append(r.inFlight, event.Message)
	case usecase.EventContractDeployed, usecase.EventContractReused:
		r.inFlight = slices.DeleteFunc(r.inFlight, func(name string) bool { return name == event.Message })
	case usecase.EventStageCompleted, usecase.EventDeployCompleted:
		r.inFlight = nil
	}

	if len(r.inFlight) == 0 {
		r.spinner.Stop()
		return
	}

	r.spinner.Suffix = " Deploying " + strings.Join(r.inFlight, ", ")
	if !r.spinner.Active() {
		r.spinner.Start()
	}
}

// Pause stops the spinner, runs fn and restarts the spinner if it was active
func (r *SpinnerProgressReporter) Pause(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	fn()

	if wasActive {
		r.spinner.Start()
	}
}

// Stop stops the spinner
func (r *SpinnerProgressReporter) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inFlight = nil
	r.spinner.Stop()
}

// Info prints an info message
func (r *SpinnerProgressReporter) Info(message string) {
	r.Pause(func() {
		color.New(color.FgCyan).Fprintln(r.out, message)
	})
}

// Error prints an error message
func (r *SpinnerProgressReporter) Error(message string) {
	r.Pause(func() {
		color.New(color.FgRed).Fprintln(r.out, message)
	})
}

// Ensure SpinnerProgressReporter implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerProgressReporter)(nil)
