package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/rolelens/rolelens/internal/domain"
)

// LintService runs the external linter against a role and normalizes its
// output into a LintReport. Invocation failures become report data, never
// errors: the linter's environment must not crash the reviewer.
type LintService struct {
	runner       domain.CommandRunner
	configLoader domain.ConfigLoader
}

func NewLintService(runner domain.CommandRunner, configLoader domain.ConfigLoader) *LintService {
	return &LintService{runner: runner, configLoader: configLoader}
}

// LintOptions override the role's configured lint settings. Zero values
// fall through to config.
type LintOptions struct {
	Binary  string
	Timeout time.Duration
}

// LintRole invokes `<binary> --format json <rolePath>` within the time
// budget. The linter exiting nonzero is its normal way of signaling
// findings; only invocation-level failures flip Success to false.
func (s *LintService) LintRole(ctx context.Context, rolePath string, opts LintOptions) (*domain.LintReport, error) {
	cfg, err := s.configLoader.Load(rolePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	binary := opts.Binary
	if binary == "" {
		binary = cfg.Lint.BinaryOrDefault()
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = cfg.Lint.Timeout()
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	stdout, stderr, _, err := s.runner.Run(runCtx, binary, "--format", "json", rolePath)
	if err != nil {
		switch {
		case errors.Is(err, exec.ErrNotFound):
			return domain.LintFailure(fmt.Sprintf("%s not found. Install with: pip install ansible-lint", binary)), nil
		case errors.Is(runCtx.Err(), context.DeadlineExceeded):
			return domain.LintFailure(fmt.Sprintf("%s timed out after %d seconds", binary, int(timeout.Seconds()))), nil
		default:
			return domain.LintFailure(err.Error()), nil
		}
	}

	report := &domain.LintReport{
		Success:  true,
		Findings: &domain.Findings{},
	}

	if stdout != "" {
		var parsed any
		if jsonErr := json.Unmarshal([]byte(stdout), &parsed); jsonErr == nil {
			report.Findings = domain.StructuredFindings(parsed)
		} else {
			// Degraded but non-fatal: keep whatever the tool printed.
			report.Findings = domain.RawFindings(stdout)
		}
	}

	if stderr != "" {
		report.Stderr = stderr
	}

	if count, ok := report.Findings.Count(); ok {
		report.Summary = fmt.Sprintf("Found %d ansible-lint findings", count)
	} else {
		report.Summary = "ansible-lint completed"
	}

	return report, nil
}
