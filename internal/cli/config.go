package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/runoshun/glissue/internal/app"
	"github.com/runoshun/glissue/internal/domain"
	"github.com/runoshun/glissue/internal/infra/config"
	"github.com/runoshun/glissue/internal/usecase"
	"github.com/spf13/cobra"
)

// secretReader is implemented by consoles that can read input without echo.
type secretReader interface {
	Interactive() bool
	ReadSecret(ctx context.Context, prompt string) (string, error)
}

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Manage glissue configuration profiles.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newConfigShowCommand(c))
	cmd.AddCommand(newConfigInitCommand(c))

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(c *app.Container) *cobra.Command {
	var profile string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display the config file location and the effective configuration.

Private tokens are masked. Use --profile to show the profile glissue -c would use.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowConfigUseCase().Execute(cmd.Context(), usecase.ShowConfigInput{
				Profile: profile,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(w, "[Loaded from]")
			if !out.Info.Exists {
				_, _ = fmt.Fprintf(w, "- %s (not found)\n", out.Info.Path)
				_, _ = fmt.Fprintln(w)
				_, _ = fmt.Fprintln(w, "Run 'glissue config init --url <url>' to create it.")
				return nil
			}
			_, _ = fmt.Fprintf(w, "- %s\n", out.Info.Path)
			_, _ = fmt.Fprintln(w)

			cfg := out.Config
			if out.Profile != nil {
				// Narrow the output to the resolved profile.
				narrowed := domain.NewDefaultConfig()
				narrowed.Default = out.Profile.Name
				narrowed.Log = cfg.Log
				narrowed.Profiles[out.Profile.Name] = *out.Profile
				cfg = narrowed
			}

			content, err := config.RenderTOML(cfg)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(w, "[Effective Config]")
			_, _ = fmt.Fprint(w, content)
			return nil
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "", "Show only this profile")

	return cmd
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(c *app.Container) *cobra.Command {
	var (
		profile  string
		url      string
		token    string
		timeout  int
		insecure bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a config file with one profile",
		Long: `Create a config file holding a single default profile.

When --token is omitted and stdin is a terminal, the token is read without echo.
The file is created with owner-only permissions since it stores the token.`,
		Example: `  glissue config init --url https://gitlab.com
  glissue config init --profile work --url https://gitlab.example.com --token glpat-xxxx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("token") {
				if sr, ok := c.Console.(secretReader); ok && sr.Interactive() {
					read, err := sr.ReadSecret(cmd.Context(), "Private token: ")
					if err != nil {
						return err
					}
					token = read
				}
			}

			p := domain.NewProfile(profile, url)
			p.PrivateToken = token
			p.Timeout = time.Duration(timeout) * time.Second
			p.SSLVerify = !insecure

			out, err := c.InitConfigUseCase().Execute(cmd.Context(), usecase.InitConfigInput{Profile: p})
			if err != nil {
				if errors.Is(err, domain.ErrConfigExists) {
					return fmt.Errorf("%w: %s", err, c.Config.ConfigPath)
				}
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", out.Path)
			return nil
		},
	}

	cmd.Flags().StringVar(&profile, "profile", usecase.DefaultProfileName, "Profile name")
	cmd.Flags().StringVar(&url, "url", "", "GitLab base URL (required)")
	cmd.Flags().StringVar(&token, "token", "", "Private access token")
	cmd.Flags().IntVar(&timeout, "timeout", int(domain.DefaultTimeout/time.Second), "Request timeout in seconds")
	cmd.Flags().BoolVar(&insecure, "insecure", false, "Skip TLS certificate verification")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}
