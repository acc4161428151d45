package adapters

import (
	"github.com/beldex-coin/beldex-deploy/internal/adapters/blockchain"
	"github.com/beldex-coin/beldex-deploy/internal/adapters/fs"
	"github.com/beldex-coin/beldex-deploy/internal/adapters/interactive"
	"github.com/beldex-coin/beldex-deploy/internal/adapters/repository/contracts"
	"github.com/beldex-coin/beldex-deploy/internal/adapters/repository/deployments"
	"github.com/beldex-coin/beldex-deploy/internal/config"
	"github.com/beldex-coin/beldex-deploy/internal/usecase"
	"github.com/google/wire"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewPlanLoader,
	wire.Bind(new(usecase.PlanLoader), new(*fs.PlanLoader)),

	contracts.NewRepository,
	wire.Bind(new(usecase.ArtifactRepository), new(*contracts.Repository)),

	deployments.NewFileRepository,
	wire.Bind(new(usecase.DeploymentRepository), new(*deployments.FileRepository)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.Confirmer), new(*interactive.SelectorAdapter)),
	wire.Bind(new(usecase.NetworkSelector), new(*interactive.SelectorAdapter)),
)

// ConfigSet binds configuration-based implementations; the resolver
// itself comes from config.ConfigSet
var ConfigSet = wire.NewSet(
	wire.Bind(new(usecase.NetworkResolver), new(*config.NetworkResolver)),
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.ProvideDeployer,
	wire.Bind(new(usecase.ContractDeployer), new(*blockchain.Deployer)),
	wire.Bind(new(usecase.DeploymentChecker), new(*blockchain.Deployer)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	InteractiveSet,
	ConfigSet,
	BlockchainSet,
)
