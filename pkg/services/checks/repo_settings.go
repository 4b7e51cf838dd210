package checks

import (
	"context"
	"errors"
	"fmt"

	"github.com/vdanniel/github-security-checker/pkg/models/domain"
	"github.com/vdanniel/github-security-checker/pkg/services/provider"
)

// SettingsProvider is the read surface the repository-settings check needs.
type SettingsProvider interface {
	provider.ActionsReader
	FileExists(ctx context.Context, owner, repo, path string) (bool, error)
}

type settingsSnapshot struct {
	repo          domain.Repository
	actions       domain.ActionsPolicy
	environments  []domain.Environment
	hasCodeowners bool
	hasGitignore  bool
	hasReadme     bool
}

func firstUnreviewedEnv(envs []domain.Environment) (domain.Environment, bool) {
	for _, e := range envs {
		if e.ReviewerCount == 0 {
			return e, true
		}
	}
	return domain.Environment{}, false
}

var settingsPredicates = []struct {
	finding domain.Finding
	fires   func(s settingsSnapshot) bool
}{
	{findingRSForkingEnabled, func(s settingsSnapshot) bool {
		return s.repo.Private && s.repo.AllowForking
	}},
	{findingRSAutoDeleteDisabled, func(s settingsSnapshot) bool {
		return !s.repo.DeleteBranchOnMerge
	}},
	{findingRSSignoffNotRequired, func(s settingsSnapshot) bool {
		return !s.repo.WebCommitSignoffRequired
	}},
	{findingRSWikiEnabled, func(s settingsSnapshot) bool {
		return s.repo.HasWiki
	}},
	{findingRSAutoMergeEnabled, func(s settingsSnapshot) bool {
		return s.repo.AllowAutoMerge
	}},
	{findingRSNoCodeowners, func(s settingsSnapshot) bool {
		return !s.hasCodeowners
	}},
	{findingRSNoGitignore, func(s settingsSnapshot) bool {
		return !s.hasGitignore
	}},
	{findingRSNoReadme, func(s settingsSnapshot) bool {
		return !s.hasReadme
	}},
	{findingRSWorkflowTokenWrite, func(s settingsSnapshot) bool {
		return s.actions.DefaultTokenPermission == "write"
	}},
	{findingRSWorkflowCanApprovePRs, func(s settingsSnapshot) bool {
		return s.actions.CanApprovePullRequests
	}},
	{findingRSActionsUnrestricted, func(s settingsSnapshot) bool {
		return s.actions.AllowedActions == "all"
	}},
	{findingRSEnvUnprotected, func(s settingsSnapshot) bool {
		_, found := firstUnreviewedEnv(s.environments)
		return found
	}},
	{findingRSEnvNoWaitTimer, func(s settingsSnapshot) bool {
		for _, e := range s.environments {
			if e.WaitTimerMins == 0 {
				return true
			}
		}
		return false
	}},
	{findingRSEnvNoBranchPolicy, func(s settingsSnapshot) bool {
		for _, e := range s.environments {
			if !e.HasBranchPolicy {
				return true
			}
		}
		return false
	}},
}

// RepositorySettings inspects repository metadata, governance files, the
// Actions policy, and deployment environments. The repository identity is
// passed in so the check does not repeat the scanner's lookup.
func RepositorySettings(ctx context.Context, p SettingsProvider, repo domain.Repository) ([]domain.Finding, error) {
	snap := settingsSnapshot{repo: repo}

	actions, err := p.GetActionsPolicy(ctx, repo.Owner, repo.Name)
	switch {
	case errors.Is(err, provider.ErrNotFound):
		// Actions disabled for the repository; the Actions predicates
		// evaluate against the zero policy and stay quiet.
	case err != nil:
		return nil, fmt.Errorf("read actions policy for %s: %w", repo.FullName, err)
	default:
		snap.actions = *actions
	}

	snap.environments, err = p.ListEnvironments(ctx, repo.Owner, repo.Name)
	if err != nil {
		return nil, fmt.Errorf("list environments for %s: %w", repo.FullName, err)
	}

	for _, probe := range []struct {
		path string
		dest *bool
	}{
		{".github/CODEOWNERS", &snap.hasCodeowners},
		{".gitignore", &snap.hasGitignore},
		{"README.md", &snap.hasReadme},
	} {
		exists, err := p.FileExists(ctx, repo.Owner, repo.Name, probe.path)
		if err != nil {
			return nil, fmt.Errorf("probe %s in %s: %w", probe.path, repo.FullName, err)
		}
		*probe.dest = exists
	}

	var findings []domain.Finding
	for _, pred := range settingsPredicates {
		if !pred.fires(snap) {
			continue
		}
		f := pred.finding
		if f.ID == findingRSEnvUnprotected.ID {
			if env, ok := firstUnreviewedEnv(snap.environments); ok {
				f.CurrentValue = env.Name
			}
		}
		findings = append(findings, f)
	}
	return findings, nil
}
