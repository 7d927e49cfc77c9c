package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/rolelens/rolelens/internal/adapters/outbound/config"
	"github.com/rolelens/rolelens/internal/adapters/outbound/lintrunner"
	"github.com/rolelens/rolelens/internal/adapters/outbound/tui"
	"github.com/rolelens/rolelens/internal/application"
	"github.com/spf13/cobra"
)

func newLintCmd() *cobra.Command {
	var (
		pretty      bool
		binary      string
		timeoutSecs int
	)

	cmd := &cobra.Command{
		Use:   "lint [path]",
		Short: "Run ansible-lint against a role",
		Long:  "Invoke ansible-lint with JSON output against the role and normalize the result. A linter that is missing or times out is reported inside the JSON body; the command still exits 0.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			svc := application.NewLintService(lintrunner.New(), config.New())

			opts := application.LintOptions{Binary: binary}
			if timeoutSecs > 0 {
				opts.Timeout = time.Duration(timeoutSecs) * time.Second
			}

			report, err := svc.LintRole(cmd.Context(), absPath, opts)
			if err != nil {
				return fmt.Errorf("linting role: %w", err)
			}

			if pretty {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderLint(report))
				return nil
			}
			return renderJSON(cmd, report)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Render a human-readable report instead of JSON")
	cmd.Flags().StringVar(&binary, "binary", "", "Linter binary to invoke (default from config, then ansible-lint)")
	cmd.Flags().IntVar(&timeoutSecs, "timeout", 0, "Time budget in seconds (default from config, then 60)")

	return cmd
}
