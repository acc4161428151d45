package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/beldex-coin/beldex-deploy/internal/domain/config"
	"github.com/google/wire"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ProjectFileName is the project configuration file looked up from the working directory
const ProjectFileName = "beldex.toml"

// DataDirName holds the manifest and local overrides
const DataDirName = ".beldex"

// ErrNoProjectFile is returned by FindProjectRoot when no beldex.toml exists up the tree
var ErrNoProjectFile = errors.New("not in a beldex project (" + ProjectFileName + " not found)")

// ConfigSet provides the runtime configuration for Wire
var ConfigSet = wire.NewSet(
	Provider,
	ProvideNetworkResolver,
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	loadEnvFiles(projectRoot)

	projectFile, err := loadProjectFile(projectRoot)
	if err != nil {
		return nil, err
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        filepath.Join(projectRoot, DataDirName),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		Timeout:        v.GetDuration("timeout"),
		DryRun:         v.GetBool("dry_run"),
		ProjectFile:    projectFile,
	}

	cfg.ArtifactsDir = resolvePath(projectRoot, firstNonEmpty(
		v.GetString("artifacts_dir"),
		projectFile.ArtifactsDir,
		config.DefaultArtifactsDir,
	))

	if plan := firstNonEmpty(v.GetString("plan"), projectFile.Plan); plan != "" {
		cfg.PlanPath = resolvePath(projectRoot, plan)
	}

	cfg.DeployerKey = firstNonEmpty(v.GetString("deployer_key"), projectFile.Deployer.PrivateKey)

	// Resolve network if specified
	if networkName := v.GetString("network"); networkName != "" {
		network, err := NewNetworkResolver(projectFile).Resolve(networkName)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve network %s: %w", networkName, err)
		}
		cfg.Network = network
	}

	return cfg, nil
}

// FindProjectRoot walks up from current directory to find beldex.toml
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, ProjectFileName)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoProjectFile
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Local overrides, e.g. a default network per checkout
	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, DataDirName))

	v.SetEnvPrefix("BELDEX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("timeout", "30m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			panic(err)
		}
	})

	return v
}

// ProvideNetworkResolver creates a NetworkResolver for Wire dependency injection
func ProvideNetworkResolver(cfg *config.RuntimeConfig) *NetworkResolver {
	return NewNetworkResolver(cfg.ProjectFile)
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
