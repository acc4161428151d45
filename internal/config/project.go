package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/beldex-coin/beldex-deploy/internal/domain/config"
	"github.com/joho/godotenv"
)

// loadEnvFiles loads .env files so ${VAR} references in beldex.toml expand.
// Variables already present in the environment win.
func loadEnvFiles(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// loadProjectFile loads and parses beldex.toml.
// A missing file yields an empty configuration.
func loadProjectFile(projectRoot string) (*config.ProjectFile, error) {
	path := filepath.Join(projectRoot, ProjectFileName)

	cfg := &config.ProjectFile{}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ProjectFileName, err)
	}

	cfg.ArtifactsDir = os.ExpandEnv(cfg.ArtifactsDir)
	cfg.Plan = os.ExpandEnv(cfg.Plan)
	cfg.Deployer.PrivateKey = os.ExpandEnv(cfg.Deployer.PrivateKey)

	for name, network := range cfg.Networks {
		network.RPCURL = os.ExpandEnv(network.RPCURL)
		cfg.Networks[name] = network
	}

	return cfg, nil
}
