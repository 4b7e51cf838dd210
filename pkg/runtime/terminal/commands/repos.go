package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vdanniel/github-security-checker/pkg/services/provider"
)

type ReposCmd struct {
	connectFlags
	visibility string
	output     io.Writer
}

func NewReposCmd(output io.Writer) *cobra.Command {
	rc := &ReposCmd{output: output}
	cmd := &cobra.Command{
		Use:   "repos",
		Short: "List repositories available to the authenticated user",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.profilesPath, "profiles", defaultProfilesPath(), "Path to the profiles file")
	cmd.Flags().StringVar(&rc.profile, "profile", defaultProfile, "Profile to authenticate with")
	cmd.Flags().StringVar(&rc.settingsPath, "settings", "", "Path to a scan settings file")
	cmd.Flags().StringVar(&rc.visibility, "visibility", "all", "Filter by visibility (all, public, private)")

	return cmd
}

func (rc *ReposCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	scan, err := rc.newScanner(ctx)
	if err != nil {
		return err
	}

	repos, err := scan.ListRepositories(ctx, provider.ListOptions{Visibility: rc.visibility})
	if err != nil {
		return err
	}

	for _, r := range repos {
		fmt.Fprintf(rc.output, "%s\t%s\t%s\n", r.FullName, r.Visibility, r.DefaultBranch)
	}
	return nil
}
