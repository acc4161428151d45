package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot  string
	DataDir      string
	ArtifactsDir string
	PlanPath     string // empty means the built-in Beldex plan

	// Context settings
	Network *Network // nil if not specified

	// Deployer key, hex encoded. Ignored in dry runs.
	DeployerKey string

	// Execution settings
	Debug          bool
	NonInteractive bool
	Timeout        time.Duration

	// Command-specific settings (only populated for relevant commands)
	DryRun bool

	// Resolved configurations
	ProjectFile *ProjectFile
}

// Network represents network configuration
type Network struct {
	Name    string `json:"name"`
	RPCURL  string `json:"rpcUrl"`
	ChainID uint64 `json:"chainId"` // 0 means read it from the RPC endpoint
}
