package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vdanniel/github-security-checker/pkg/runtime/terminal/export"
)

const scanTimeout = 5 * time.Minute

type ScanCmd struct {
	connectFlags
	format string
	output io.Writer
}

func NewScanCmd(output io.Writer) *cobra.Command {
	sc := &ScanCmd{output: output}
	cmd := &cobra.Command{
		Use:   "scan owner/repo [owner/repo...]",
		Short: "Scan repositories for security configuration issues",
		Args:  cobra.MinimumNArgs(1),
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.profilesPath, "profiles", defaultProfilesPath(), "Path to the profiles file")
	cmd.Flags().StringVar(&sc.profile, "profile", defaultProfile, "Profile to authenticate with")
	cmd.Flags().StringVar(&sc.settingsPath, "settings", "", "Path to a scan settings file")
	cmd.Flags().StringVar(&sc.format, "format", "table", "Output format (table, json, markdown)")

	return cmd
}

func (sc *ScanCmd) run(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(sc.format)
	if err != nil {
		return err
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx, cancel := context.WithTimeout(logger.WithContext(cmd.Context()), scanTimeout)
	defer cancel()

	scan, err := sc.newScanner(ctx)
	if err != nil {
		return err
	}

	results := scan.ScanMany(ctx, args)
	if err := export.NewReporter(sc.output, format).HandleScan(results); err != nil {
		return err
	}

	if len(results) < len(args) {
		return fmt.Errorf("scanned %d of %d repositories; see log for skipped entries", len(results), len(args))
	}
	return nil
}
