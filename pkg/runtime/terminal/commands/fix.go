package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vdanniel/github-security-checker/pkg/runtime/terminal/export"
	"github.com/vdanniel/github-security-checker/pkg/services/fixer"
	"github.com/vdanniel/github-security-checker/pkg/services/scanner"
)

type FixCmd struct {
	connectFlags
	branch string
	format string
	output io.Writer
}

func NewFixCmd(output io.Writer) *cobra.Command {
	fc := &FixCmd{output: output}
	cmd := &cobra.Command{
		Use:   "fix owner/repo finding-id",
		Short: "Apply the remediation mapped to a finding",
		Args:  cobra.ExactArgs(2),
		RunE:  fc.run,
	}

	cmd.Flags().StringVar(&fc.profilesPath, "profiles", defaultProfilesPath(), "Path to the profiles file")
	cmd.Flags().StringVar(&fc.profile, "profile", defaultProfile, "Profile to authenticate with")
	cmd.Flags().StringVar(&fc.branch, "branch", "", "Branch for branch protection fixes (default branch if empty)")
	cmd.Flags().StringVar(&fc.format, "format", "table", "Output format (table, json)")

	return cmd
}

func (fc *FixCmd) run(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(fc.format)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	client, err := fc.newClient(ctx)
	if err != nil {
		return err
	}

	fullName, findingID := args[0], args[1]
	owner, repo, err := scanner.SplitFullName(fullName)
	if err != nil {
		return err
	}

	branch := fc.branch
	if branch == "" {
		identity, err := client.GetRepository(ctx, owner, repo)
		if err != nil {
			return fmt.Errorf("resolve repository %s: %w", fullName, err)
		}
		branch = identity.DefaultBranch
	}

	result := fixer.NewDispatcher(client).Fix(ctx, owner, repo, findingID, branch)
	if err := export.NewReporter(fc.output, format).HandleFix(result); err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("remediation failed for %s", findingID)
	}
	return nil
}
