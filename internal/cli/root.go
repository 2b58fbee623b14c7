// Package cli provides the command-line interface for glissue.
package cli

import (
	"context"
	"fmt"

	"github.com/runoshun/glissue/internal/app"
	"github.com/runoshun/glissue/internal/usecase"
	"github.com/spf13/cobra"
)

// rootOptions holds the flags of the root command.
type rootOptions struct {
	Profile   string
	Milestone string
	Project   string
}

// NewRootCommand creates the root command for glissue.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var opts rootOptions

	root := &cobra.Command{
		Use:   "glissue",
		Short: "Create GitLab issues in a milestone from the terminal",
		Long: `glissue prompts for issue titles, descriptions and labels and creates
the issues in a GitLab project, attached to one milestone.

End a description line with \ to continue on the next line.
Press Ctrl-D to finish, Ctrl-C to abort.`,
		Example: `  glissue -p group/project -m 3
  glissue -c work -p 1234 -m 12`,
		Version: version,
		Args:    cobra.NoArgs,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// init runs before a config file exists; logs works without one
			if cmd.Name() == "init" || cmd.Name() == "logs" {
				return nil
			}

			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				// Reported by the commands that need the config
				return nil
			}
			for _, w := range cfg.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runIssueEntry(cmd.Context(), c, opts)
		},
	}

	root.Flags().StringVarP(&opts.Profile, "config", "c", "", "Profile name from the config file (empty = default profile)")
	root.Flags().StringVarP(&opts.Milestone, "milestone", "m", "", "Milestone iid (last number in the milestone URL)")
	root.Flags().StringVarP(&opts.Project, "project", "p", "", "Project ID or full path (group/project)")
	_ = root.MarkFlagRequired("milestone")
	_ = root.MarkFlagRequired("project")

	root.AddCommand(newConfigCommand(c))
	root.AddCommand(newLogsCommand(c))

	return root
}

// runIssueEntry resolves the session and runs the entry loop until input closes.
func runIssueEntry(ctx context.Context, c *app.Container, opts rootOptions) error {
	tracker, err := c.Tracker(opts.Profile)
	if err != nil {
		return err
	}

	start, err := c.StartSessionUseCase(tracker).Execute(ctx, usecase.StartSessionInput{
		ProjectRef:   opts.Project,
		MilestoneIID: opts.Milestone,
	})
	if err != nil {
		return err
	}
	s := start.Session
	c.Console.Print(fmt.Sprintf("Creating issues in project '%s' with milestone '%s' for user %s\n",
		s.Project.Name, opts.Milestone, s.User.DisplayName()))

	out, err := c.IssueEntryUseCase(tracker).Execute(ctx, usecase.IssueEntryInput{Session: s})
	if err != nil {
		return err
	}

	// Terminate the pending prompt line.
	c.Console.Print("\n")
	c.Logger.Info("cli", fmt.Sprintf("done: %d created, %d discarded", out.Created, out.Discarded))
	return nil
}
