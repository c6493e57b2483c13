package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/smolbuf/internal/app"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect TEXT...",
		Short: "Show how each text would be stored",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			format, _ := cmd.Flags().GetString("format")

			return c.app.Inspect(cmd.Context(), args, app.InspectOptions{Format: format})
		},
	}
	cmd.Flags().StringP("format", "f", "text", "Output format: text, json or yaml")
	return cmd
}
