// Package github implements the provider interfaces against the GitHub
// REST API.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github.com/vdanniel/github-security-checker/pkg/models/domain"
	"github.com/vdanniel/github-security-checker/pkg/services/provider"
)

type Client struct {
	gh *github.Client
}

var _ provider.Client = (*Client)(nil)

// NewClient builds an authenticated client. baseURL is empty for
// github.com and the API root for GitHub Enterprise instances.
func NewClient(ctx context.Context, token, baseURL string) (*Client, error) {
	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	))

	gh := github.NewClient(httpClient)
	if baseURL != "" {
		var err error
		gh, err = gh.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, fmt.Errorf("configure enterprise base URL: %w", err)
		}
	}
	return &Client{gh: gh}, nil
}

// translate converts GitHub API errors into the provider sentinels the
// checks key their not-found / plan-restricted logic on.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		switch ghErr.Response.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", provider.ErrNotFound, ghErr.Message)
		case http.StatusForbidden:
			return fmt.Errorf("%w: %s", provider.ErrForbidden, ghErr.Message)
		}
	}
	return err
}

func (c *Client) GetRepository(ctx context.Context, owner, repo string) (*domain.Repository, error) {
	r, _, err := c.gh.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, translate(err)
	}
	identity := mapRepository(r)
	return &identity, nil
}

func (c *Client) ListRepositories(ctx context.Context, opts provider.ListOptions) ([]domain.Repository, error) {
	visibility := opts.Visibility
	if visibility == "" {
		visibility = "all"
	}
	listOpts := &github.RepositoryListByAuthenticatedUserOptions{
		Visibility:  visibility,
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var repos []domain.Repository
	for {
		page, resp, err := c.gh.Repositories.ListByAuthenticatedUser(ctx, listOpts)
		if err != nil {
			return nil, translate(err)
		}
		for _, r := range page {
			repos = append(repos, mapRepository(r))
		}
		if resp.NextPage == 0 {
			break
		}
		listOpts.Page = resp.NextPage
	}
	return repos, nil
}

func (c *Client) FileExists(ctx context.Context, owner, repo, path string) (bool, error) {
	_, _, _, err := c.gh.Repositories.GetContents(ctx, owner, repo, path, nil)
	if err != nil {
		if errors.Is(translate(err), provider.ErrNotFound) {
			return false, nil
		}
		return false, translate(err)
	}
	return true, nil
}

func (c *Client) GetBranchProtection(ctx context.Context, owner, repo, branch string) (*domain.BranchProtection, error) {
	protection, _, err := c.gh.Repositories.GetBranchProtection(ctx, owner, repo, branch)
	if err != nil {
		return nil, translate(err)
	}
	return mapProtection(protection), nil
}

func (c *Client) GetSecurityFeatures(ctx context.Context, owner, repo string) (*domain.SecurityFeatures, error) {
	r, _, err := c.gh.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, translate(err)
	}

	features := domain.SecurityFeatures{}
	if saa := r.GetSecurityAndAnalysis(); saa != nil {
		features.AdvancedSecurity = statusEnabled(saa.GetAdvancedSecurity().GetStatus())
		features.SecretScanning = statusEnabled(saa.GetSecretScanning().GetStatus())
		features.PushProtection = statusEnabled(saa.GetSecretScanningPushProtection().GetStatus())
		features.ValidityChecks = statusEnabled(saa.GetSecretScanningValidityChecks().GetStatus())
	}
	// Advanced Security features are available to public repositories
	// without the block being present in security_and_analysis.
	if !r.GetPrivate() && !features.AdvancedSecurity {
		features.AdvancedSecurity = true
	}

	reporting, _, err := c.gh.Repositories.IsPrivateReportingEnabled(ctx, owner, repo)
	if err != nil && !errors.Is(translate(err), provider.ErrNotFound) {
		return nil, translate(err)
	}
	features.PrivateVulnReporting = reporting

	setup, _, err := c.gh.CodeScanning.GetDefaultSetupConfiguration(ctx, owner, repo)
	switch {
	case err != nil:
		terr := translate(err)
		if !errors.Is(terr, provider.ErrNotFound) && !errors.Is(terr, provider.ErrForbidden) {
			return nil, terr
		}
	case setup.GetState() == "configured":
		features.CodeScanningConfigured = true
	}

	return &features, nil
}

func (c *Client) VulnerabilityAlertsEnabled(ctx context.Context, owner, repo string) (bool, error) {
	enabled, _, err := c.gh.Repositories.GetVulnerabilityAlerts(ctx, owner, repo)
	if err != nil {
		return false, translate(err)
	}
	return enabled, nil
}

func (c *Client) AutomatedSecurityFixesEnabled(ctx context.Context, owner, repo string) (bool, error) {
	fixes, _, err := c.gh.Repositories.GetAutomatedSecurityFixes(ctx, owner, repo)
	if err != nil {
		if errors.Is(translate(err), provider.ErrNotFound) {
			return false, nil
		}
		return false, translate(err)
	}
	return fixes.GetEnabled(), nil
}

func (c *Client) ListCollaborators(ctx context.Context, owner, repo string) ([]domain.Collaborator, error) {
	outside := make(map[string]bool)
	if err := c.eachCollaborator(ctx, owner, repo, "outside", func(u *github.User) {
		outside[u.GetLogin()] = true
	}); err != nil {
		return nil, err
	}

	var collaborators []domain.Collaborator
	if err := c.eachCollaborator(ctx, owner, repo, "all", func(u *github.User) {
		collaborators = append(collaborators, domain.Collaborator{
			Login:      u.GetLogin(),
			Permission: highestPermission(u.GetPermissions()),
			Outside:    outside[u.GetLogin()],
		})
	}); err != nil {
		return nil, err
	}
	return collaborators, nil
}

func (c *Client) eachCollaborator(ctx context.Context, owner, repo, affiliation string, visit func(*github.User)) error {
	opts := &github.ListCollaboratorsOptions{
		Affiliation: affiliation,
		ListOptions: github.ListOptions{PerPage: 100},
	}
	for {
		page, resp, err := c.gh.Repositories.ListCollaborators(ctx, owner, repo, opts)
		if err != nil {
			return translate(err)
		}
		for _, u := range page {
			visit(u)
		}
		if resp.NextPage == 0 {
			return nil
		}
		opts.Page = resp.NextPage
	}
}

func (c *Client) ListDeployKeys(ctx context.Context, owner, repo string) ([]domain.DeployKey, error) {
	var keys []domain.DeployKey
	opts := &github.ListOptions{PerPage: 100}
	for {
		page, resp, err := c.gh.Repositories.ListKeys(ctx, owner, repo, opts)
		if err != nil {
			return nil, translate(err)
		}
		for _, k := range page {
			keys = append(keys, domain.DeployKey{
				ID:        k.GetID(),
				Title:     k.GetTitle(),
				ReadOnly:  k.GetReadOnly(),
				CreatedAt: k.GetCreatedAt().Time,
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return keys, nil
}

func (c *Client) ListWebhooks(ctx context.Context, owner, repo string) ([]domain.Webhook, error) {
	var hooks []domain.Webhook
	opts := &github.ListOptions{PerPage: 100}
	for {
		page, resp, err := c.gh.Repositories.ListHooks(ctx, owner, repo, opts)
		if err != nil {
			if errors.Is(translate(err), provider.ErrNotFound) {
				return nil, nil
			}
			return nil, translate(err)
		}
		for _, h := range page {
			cfg := h.GetConfig()
			hooks = append(hooks, domain.Webhook{
				ID:          h.GetID(),
				URL:         cfg.GetURL(),
				HasSecret:   cfg.GetSecret() != "",
				InsecureSSL: cfg.GetInsecureSSL() == "1",
				Active:      h.GetActive(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return hooks, nil
}

func (c *Client) GetActionsPolicy(ctx context.Context, owner, repo string) (*domain.ActionsPolicy, error) {
	perms, _, err := c.gh.Repositories.GetActionsPermissions(ctx, owner, repo)
	if err != nil {
		return nil, translate(err)
	}
	if !perms.GetEnabled() {
		return nil, provider.ErrNotFound
	}

	workflow, _, err := c.gh.Repositories.GetDefaultWorkflowPermissions(ctx, owner, repo)
	if err != nil {
		return nil, translate(err)
	}

	return &domain.ActionsPolicy{
		AllowedActions:         perms.GetAllowedActions(),
		DefaultTokenPermission: workflow.GetDefaultWorkflowPermissions(),
		CanApprovePullRequests: workflow.GetCanApprovePullRequestReviews(),
	}, nil
}

func (c *Client) ListEnvironments(ctx context.Context, owner, repo string) ([]domain.Environment, error) {
	var environments []domain.Environment
	opts := &github.EnvironmentListOptions{ListOptions: github.ListOptions{PerPage: 100}}
	for {
		page, resp, err := c.gh.Repositories.ListEnvironments(ctx, owner, repo, opts)
		if err != nil {
			return nil, translate(err)
		}
		for _, env := range page.Environments {
			environments = append(environments, mapEnvironment(env))
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return environments, nil
}
