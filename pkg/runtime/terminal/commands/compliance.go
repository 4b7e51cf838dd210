package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vdanniel/github-security-checker/pkg/runtime/terminal/export"
	"github.com/vdanniel/github-security-checker/pkg/services/compliance"
)

type ComplianceCmd struct {
	connectFlags
	format string
	output io.Writer
}

func NewComplianceCmd(output io.Writer) *cobra.Command {
	cc := &ComplianceCmd{output: output}
	cmd := &cobra.Command{
		Use:   "compliance owner/repo [owner/repo...]",
		Short: "Scan repositories and map findings onto compliance controls",
		Args:  cobra.MinimumNArgs(1),
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.profilesPath, "profiles", defaultProfilesPath(), "Path to the profiles file")
	cmd.Flags().StringVar(&cc.profile, "profile", defaultProfile, "Profile to authenticate with")
	cmd.Flags().StringVar(&cc.settingsPath, "settings", "", "Path to a scan settings file")
	cmd.Flags().StringVar(&cc.format, "format", "table", "Output format (table, json, markdown)")

	return cmd
}

func (cc *ComplianceCmd) run(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(cc.format)
	if err != nil {
		return err
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx, cancel := context.WithTimeout(logger.WithContext(cmd.Context()), scanTimeout)
	defer cancel()

	scan, err := cc.newScanner(ctx)
	if err != nil {
		return err
	}

	results := scan.ScanMany(ctx, args)
	if len(results) == 0 {
		return fmt.Errorf("no repositories could be scanned")
	}

	report := compliance.MapCompliance(results)
	return export.NewReporter(cc.output, format).HandleCompliance(report)
}
