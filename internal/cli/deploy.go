package cli

import (
	"github.com/beldex-coin/beldex-deploy/internal/cli/render"
	"github.com/beldex-coin/beldex-deploy/internal/usecase"
	"github.com/spf13/cobra"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	var (
		resume bool
		yes    bool
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the contracts stage by stage",
		Long: `Deploy every contract of the plan to the selected network.

Stages run in order. Contracts within a stage are sent concurrently and the
next stage starts only when all of them are on chain. The first failure stops
the run; contracts deployed up to that point are recorded in .beldex/deployments.json.

Use --dry-run to run the whole plan against an in-process simulated chain.`,
		Example: `  beldex-deploy deploy --network development
  beldex-deploy deploy --network sepolia --resume
  beldex-deploy deploy --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if err := ensureNetwork(cmd, app); err != nil {
				return err
			}

			params := usecase.DeployContractsParams{
				Resume:    resume,
				AssumeYes: yes,
			}
			result, runErr := app.DeployContracts.Run(cmd.Context(), params)

			if s, ok := app.Progress.(interface{ Stop() }); ok {
				s.Stop()
			}

			render.NewDeployRenderer(cmd.OutOrStdout()).RenderResult(result, runErr)
			return runErr
		},
	}

	cmd.Flags().String("plan", "", "Deployment plan file (defaults to the built-in Beldex plan)")
	cmd.Flags().Bool("dry-run", false, "Deploy to an in-process simulated chain; nothing is broadcast or recorded")
	cmd.Flags().BoolVar(&resume, "resume", false, "Reuse contracts recorded for this network that still have code on chain")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
