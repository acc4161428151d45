package cli

import (
	"github.com/beldex-coin/beldex-deploy/internal/cli/render"
	"github.com/beldex-coin/beldex-deploy/internal/usecase"
	"github.com/spf13/cobra"
)

// NewPlanCmd creates the plan command
func NewPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the deployment plan without deploying",
		Long: `Validate the deployment plan and show its stages, constructor arguments
and whether every artifact can be found.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowPlan.Run(cmd.Context(), usecase.ShowPlanParams{})
			if err != nil {
				return err
			}

			return render.NewPlanRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().String("plan", "", "Deployment plan file (defaults to the built-in Beldex plan)")

	return cmd
}
