package cli

import (
	"github.com/beldex-coin/beldex-deploy/internal/cli/render"
	"github.com/beldex-coin/beldex-deploy/internal/usecase"
	"github.com/spf13/cobra"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List available networks from beldex.toml",
		Long: `List all networks configured in the [networks] section of beldex.toml.

The development network (http://127.0.0.1:8545) is always available.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context(), usecase.ListNetworksParams{})
			if err != nil {
				return err
			}

			return render.NewNetworksRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	return cmd
}
