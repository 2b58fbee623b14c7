package cli

import (
	"fmt"

	"github.com/runoshun/glissue/internal/app"
	"github.com/runoshun/glissue/internal/usecase"
	"github.com/spf13/cobra"
)

// newLogsCommand creates the logs command.
func newLogsCommand(c *app.Container) *cobra.Command {
	var lines int

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the application log",
		Long: `Show the glissue log file.

Log verbosity is set by [log] level in the config file.`,
		Example: `  glissue logs
  glissue logs -n 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowLogsUseCase().Execute(cmd.Context(), usecase.ShowLogsInput{
				Lines: lines,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Content)
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 0, "Number of lines to show from the end (0 = all)")

	return cmd
}
