package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/beldex-coin/beldex-deploy/internal/adapters/progress"
	"github.com/beldex-coin/beldex-deploy/internal/app"
	"github.com/beldex-coin/beldex-deploy/internal/config"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "beldex-deploy",
		Short: "Staged deployment of the Beldex bridge contracts",
		Long: `beldex-deploy deploys the Beldex bridge contracts in dependency order.

Contracts in the same stage are deployed concurrently; each stage starts only
after the previous one succeeded, so constructor arguments can refer to the
addresses of contracts deployed earlier.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := findProjectRoot(cmd)
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot, cmd)

			// Only deploy reports progress
			sink := progress.NewNopSink()
			if cmd.Name() == "deploy" {
				animate := isatty.IsTerminal(os.Stdout.Fd()) &&
					!v.GetBool("non_interactive") &&
					!v.GetBool("debug")
				sink = progress.NewDeployProgress(cmd.OutOrStdout(), animate)
			}

			// Initialize app with DI
			appInstance, cleanup, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			cancel := func() {}
			if appInstance.Config.Timeout > 0 {
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
			}
			// Release the connection and timeout whether or not the command fails
			if run := cmd.RunE; run != nil {
				cmd.RunE = func(cmd *cobra.Command, args []string) error {
					defer cleanup()
					defer cancel()
					return run(cmd, args)
				}
			} else {
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
					cleanup()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (e.g., development, sepolia)")
	rootCmd.PersistentFlags().String("config", "", "Path to beldex.toml (defaults to searching up from the working directory)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	deployCmd := NewDeployCmd()
	deployCmd.GroupID = "main"
	rootCmd.AddCommand(deployCmd)

	planCmd := NewPlanCmd()
	planCmd.GroupID = "main"
	rootCmd.AddCommand(planCmd)

	statusCmd := NewStatusCmd()
	statusCmd.GroupID = "main"
	rootCmd.AddCommand(statusCmd)

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "management"
	rootCmd.AddCommand(networksCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// findProjectRoot uses --config when given, otherwise searches for beldex.toml.
// Without one the working directory is the project root.
func findProjectRoot(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", err
		}
		if _, err := os.Stat(abs); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return filepath.Dir(abs), nil
	}

	root, err := config.FindProjectRoot()
	if errors.Is(err, config.ErrNoProjectFile) {
		return os.Getwd()
	}
	return root, err
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}

// ensureNetwork picks a network when none was given and prompts are allowed.
// A project with a single [networks.*] entry uses it without asking.
func ensureNetwork(cmd *cobra.Command, app *app.App) error {
	cfg := app.Config
	if cfg.Network != nil || cfg.DryRun || cfg.NonInteractive {
		return nil
	}

	var name string
	if configured := app.Networks.Configured(); len(configured) == 1 {
		name = configured[0]
	} else {
		selected, err := app.Selector.SelectNetwork(cmd.Context(), app.Networks.Names())
		if err != nil {
			return err
		}
		name = selected
	}

	network, err := app.Networks.Resolve(name)
	if err != nil {
		return err
	}
	cfg.Network = network
	return nil
}
