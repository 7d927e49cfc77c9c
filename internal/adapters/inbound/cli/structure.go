package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/rolelens/rolelens/internal/adapters/outbound/config"
	"github.com/rolelens/rolelens/internal/adapters/outbound/gitinfo"
	"github.com/rolelens/rolelens/internal/adapters/outbound/history"
	"github.com/rolelens/rolelens/internal/adapters/outbound/metadata"
	"github.com/rolelens/rolelens/internal/adapters/outbound/scanner"
	"github.com/rolelens/rolelens/internal/adapters/outbound/tui"
	"github.com/rolelens/rolelens/internal/application"
	"github.com/rolelens/rolelens/internal/domain"
	"github.com/spf13/cobra"
)

func newStructureCmd() *cobra.Command {
	var (
		pretty      bool
		saveHistory bool
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "structure [path]",
		Short: "Analyze a role's directory layout",
		Long:  "Check a role directory against the conventional Ansible layout and report issues and recommendations. The report itself always succeeds; problems with the role are data, not errors.",
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

			hist := history.New()
			if showHistory {
				entries, err := hist.Load(absPath)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			svc := application.NewStructureService(
				scanner.New(),
				metadata.New(),
				config.New(),
			)

			report, err := svc.AnalyzeRole(absPath)
			if err != nil {
				return fmt.Errorf("analyzing role: %w", err)
			}

			if saveHistory {
				entry := domain.HistoryEntry{
					Timestamp:           time.Now().Format(time.RFC3339),
					RolePath:            absPath,
					RoleName:            report.RoleName,
					DirectoriesPresent:  report.Summary.DirectoriesPresent,
					IssueCount:          report.Summary.IssueCount,
					RecommendationCount: report.Summary.RecommendationCount,
				}
				// Commit hash is informational; roles outside a repo
				// simply omit it.
				gi := gitinfo.New()
				if hash, err := gi.CommitHash(absPath); err == nil {
					entry.CommitHash = hash
				}
				if err := hist.Save(entry); err != nil {
					return fmt.Errorf("saving history: %w", err)
				}
			}

			if pretty {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderStructure(report))
				return nil
			}
			return renderJSON(cmd, report)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Render a human-readable report instead of JSON")
	cmd.Flags().BoolVar(&saveHistory, "save-history", false, "Append this review's summary to the local history")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show saved review history for the role")

	return cmd
}
