package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"device-compare/internal/app"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Start the HTTP API on APP_PORT. Configuration is read from config.yaml,
.env and the environment, exactly as for the standalone server binary.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if code := app.Run(); code != 0 {
				return fmt.Errorf("server exited with code %d", code)
			}
			return nil
		},
	}
}
