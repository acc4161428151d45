package cli

import (
	"github.com/beldex-coin/beldex-deploy/internal/cli/render"
	"github.com/beldex-coin/beldex-deploy/internal/usecase"
	"github.com/spf13/cobra"
)

// NewStatusCmd creates the status command
func NewStatusCmd() *cobra.Command {
	var offline bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show recorded deployments and whether they are still on chain",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if err := ensureNetwork(cmd, app); err != nil {
				return err
			}

			result, err := app.ShowStatus.Run(cmd.Context(), usecase.ShowStatusParams{Offline: offline})
			if err != nil {
				return err
			}

			return render.NewStatusRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "Only read the manifest, do not query the chain")

	return cmd
}
