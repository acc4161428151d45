package app

import (
	"log/slog"

	"github.com/beldex-coin/beldex-deploy/internal/domain/config"
	"github.com/beldex-coin/beldex-deploy/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Shared dependencies
	Networks usecase.NetworkResolver
	Selector usecase.NetworkSelector
	Progress usecase.ProgressSink

	// Use cases
	DeployContracts *usecase.DeployContracts
	ShowPlan        *usecase.ShowPlan
	ShowStatus      *usecase.ShowStatus
	ListNetworks    *usecase.ListNetworks
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	networks usecase.NetworkResolver,
	selector usecase.NetworkSelector,
	progress usecase.ProgressSink,
	deployContracts *usecase.DeployContracts,
	showPlan *usecase.ShowPlan,
	showStatus *usecase.ShowStatus,
	listNetworks *usecase.ListNetworks,
) (*App, error) {
	return &App{
		Config:          cfg,
		Log:             log,
		Networks:        networks,
		Selector:        selector,
		Progress:        progress,
		DeployContracts: deployContracts,
		ShowPlan:        showPlan,
		ShowStatus:      showStatus,
		ListNetworks:    listNetworks,
	}, nil
}
