//go:build wireinject
// +build wireinject

package app

import (
	"github.com/beldex-coin/beldex-deploy/internal/adapters"
	"github.com/beldex-coin/beldex-deploy/internal/config"
	"github.com/beldex-coin/beldex-deploy/internal/logging"
	"github.com/beldex-coin/beldex-deploy/internal/usecase"
	"github.com/google/wire"
	"github.com/spf13/viper"
)

// InitApp creates a fully wired App instance. The cleanup func closes any
// chain connection opened while running.
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, func(), error) {
	wire.Build(
		config.ConfigSet,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewDeployContracts,
		usecase.NewShowPlan,
		usecase.NewShowStatus,
		usecase.NewListNetworks,

		// App
		NewApp,
	)
	return nil, nil, nil
}
