// Package commands holds the CLI subcommands.
package commands

import (
	"context"
	"fmt"
	"os/user"

	"github.com/vdanniel/github-security-checker/pkg/services/config"
	"github.com/vdanniel/github-security-checker/pkg/services/github"
	"github.com/vdanniel/github-security-checker/pkg/services/scanner"
)

const defaultProfile = "default"

func defaultProfilesPath() string {
	usr, err := user.Current()
	if err != nil {
		return ".ghsecrc"
	}
	return fmt.Sprintf("%s/.ghsecrc", usr.HomeDir)
}

// connectFlags are the flags every command that talks to GitHub shares.
type connectFlags struct {
	profilesPath string
	profile      string
	settingsPath string
}

func (cf *connectFlags) newScanner(ctx context.Context) (*scanner.Scanner, error) {
	registry, err := config.NewRegistry(cf.profilesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles from %s: %w", cf.profilesPath, err)
	}
	profile, err := registry.GetProfile(ctx, cf.profile)
	if err != nil {
		return nil, err
	}

	client, err := github.NewClient(ctx, profile.Token, profile.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	opts, err := config.LoadSettings(cf.settingsPath)
	if err != nil {
		return nil, err
	}
	return scanner.New(client, opts), nil
}

func (cf *connectFlags) newClient(ctx context.Context) (*github.Client, error) {
	registry, err := config.NewRegistry(cf.profilesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles from %s: %w", cf.profilesPath, err)
	}
	profile, err := registry.GetProfile(ctx, cf.profile)
	if err != nil {
		return nil, err
	}
	return github.NewClient(ctx, profile.Token, profile.BaseURL)
}
