// Package scanner orchestrates the check battery for one repository and
// drives batches across many.
package scanner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/vdanniel/github-security-checker/pkg/models/domain"
	"github.com/vdanniel/github-security-checker/pkg/services/checks"
	"github.com/vdanniel/github-security-checker/pkg/services/provider"
)

type Options struct {
	SeverityThreshold domain.Severity
	IncludeArchived   bool
	IncludeForks      bool
}

func DefaultOptions() Options {
	return Options{SeverityThreshold: domain.SeverityLow}
}

type Scanner struct {
	provider provider.Client
	opts     Options
}

func New(p provider.Client, opts Options) *Scanner {
	if opts.SeverityThreshold == "" {
		opts.SeverityThreshold = domain.SeverityLow
	}
	return &Scanner{provider: p, opts: opts}
}

// ScanRepository resolves the repository identity, runs the four check
// modules concurrently, then filters and scores the merged findings.
//
// The checks run under an errgroup: the first genuine module error cancels
// the group context and is returned, abandoning whatever the remaining
// modules have in flight. A failed identity lookup or module is fatal for
// the repository; checks are equally required for a valid posture, so none
// is individually skippable.
func (s *Scanner) ScanRepository(ctx context.Context, owner, repo string) (*domain.ScanResult, error) {
	identity, err := s.provider.GetRepository(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("resolve repository %s/%s: %w", owner, repo, err)
	}

	// One slot per emitting unit keeps merge order fixed regardless of
	// completion order: branch protection, security features, dependency
	// alerts, access control, repository settings.
	var slots [5][]domain.Finding

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		slots[0], err = checks.BranchProtection(gctx, s.provider, owner, repo, identity.DefaultBranch)
		return err
	})
	g.Go(func() error {
		var err error
		slots[1], err = checks.SecurityFeatures(gctx, s.provider, owner, repo, identity.Private)
		if err != nil {
			return err
		}
		slots[2], err = checks.DependencyAlerts(gctx, s.provider, owner, repo)
		return err
	})
	g.Go(func() error {
		var err error
		slots[3], err = checks.AccessControl(gctx, s.provider, owner, repo)
		return err
	})
	g.Go(func() error {
		var err error
		slots[4], err = checks.RepositorySettings(gctx, s.provider, *identity)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []domain.Finding
	for _, slot := range slots {
		merged = append(merged, slot...)
	}
	retained := Filter(merged, s.opts.SeverityThreshold)

	return &domain.ScanResult{
		Repository: *identity,
		ScannedAt:  time.Now().UTC(),
		Findings:   retained,
		Score:      Score(retained),
		Summary:    summarize(retained),
	}, nil
}

// ScanMany scans repositories sequentially. A repository that fails to
// scan is logged and skipped; the returned slice holds only the
// successful scans, so callers compare lengths to detect partial failure.
func (s *Scanner) ScanMany(ctx context.Context, fullNames []string) []domain.ScanResult {
	logger := zerolog.Ctx(ctx)

	results := make([]domain.ScanResult, 0, len(fullNames))
	for _, fullName := range fullNames {
		owner, repo, err := SplitFullName(fullName)
		if err != nil {
			logger.Error().Err(err).Str("repo", fullName).Msg("skipping repository")
			continue
		}
		result, err := s.ScanRepository(ctx, owner, repo)
		if err != nil {
			logger.Error().Err(err).Str("repo", fullName).Msg("scan failed, skipping repository")
			continue
		}
		results = append(results, *result)
	}
	return results
}

// ListRepositories is a pass-through to the provider's listing capability
// with the archived/fork filters applied.
func (s *Scanner) ListRepositories(ctx context.Context, opts provider.ListOptions) ([]domain.Repository, error) {
	repos, err := s.provider.ListRepositories(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list repositories: %w", err)
	}

	var kept []domain.Repository
	for _, r := range repos {
		if r.Archived && !s.opts.IncludeArchived {
			continue
		}
		if r.Fork && !s.opts.IncludeForks {
			continue
		}
		kept = append(kept, r)
	}
	return kept, nil
}

// SplitFullName splits an owner/repo pair.
func SplitFullName(fullName string) (owner, repo string, err error) {
	parts := strings.SplitN(fullName, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository name %q, want owner/repo", fullName)
	}
	return parts[0], parts[1], nil
}
