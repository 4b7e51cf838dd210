package github

import (
	"context"

	"github.com/google/go-github/v62/github"

	"github.com/vdanniel/github-security-checker/pkg/models/domain"
)

func (c *Client) UpdateBranchProtection(ctx context.Context, owner, repo, branch string, policy domain.BranchProtection) error {
	req := &github.ProtectionRequest{
		EnforceAdmins:                  policy.EnforceAdmins,
		AllowForcePushes:               github.Bool(policy.AllowForcePushes),
		AllowDeletions:                 github.Bool(policy.AllowDeletions),
		RequireLinearHistory:           github.Bool(policy.RequireLinearHistory),
		RequiredConversationResolution: github.Bool(policy.RequireConversationResolution),
	}
	if policy.RequiredReviews != nil {
		req.RequiredPullRequestReviews = &github.PullRequestReviewsEnforcementRequest{
			RequiredApprovingReviewCount: policy.RequiredReviews.ApprovingCount,
			DismissStaleReviews:          policy.RequiredReviews.DismissStale,
			RequireCodeOwnerReviews:      policy.RequiredReviews.RequireCodeOwner,
		}
	}
	if policy.RequiredChecks != nil {
		contexts := policy.RequiredChecks.Contexts
		if contexts == nil {
			contexts = []string{}
		}
		req.RequiredStatusChecks = &github.RequiredStatusChecks{
			Strict:   policy.RequiredChecks.Strict,
			Contexts: &contexts,
		}
	}

	_, _, err := c.gh.Repositories.UpdateBranchProtection(ctx, owner, repo, branch, req)
	return translate(err)
}

func (c *Client) SetSecretScanning(ctx context.Context, owner, repo string, enabled bool) error {
	return c.editSecurityAndAnalysis(ctx, owner, repo, func(saa *github.SecurityAndAnalysis) {
		saa.SecretScanning = &github.SecretScanning{Status: github.String(statusString(enabled))}
	})
}

func (c *Client) SetPushProtection(ctx context.Context, owner, repo string, enabled bool) error {
	return c.editSecurityAndAnalysis(ctx, owner, repo, func(saa *github.SecurityAndAnalysis) {
		saa.SecretScanningPushProtection = &github.SecretScanningPushProtection{Status: github.String(statusString(enabled))}
	})
}

func (c *Client) editSecurityAndAnalysis(ctx context.Context, owner, repo string, set func(*github.SecurityAndAnalysis)) error {
	saa := &github.SecurityAndAnalysis{}
	set(saa)
	_, _, err := c.gh.Repositories.Edit(ctx, owner, repo, &github.Repository{SecurityAndAnalysis: saa})
	return translate(err)
}

func (c *Client) SetVulnerabilityAlerts(ctx context.Context, owner, repo string, enabled bool) error {
	var err error
	if enabled {
		_, err = c.gh.Repositories.EnableVulnerabilityAlerts(ctx, owner, repo)
	} else {
		_, err = c.gh.Repositories.DisableVulnerabilityAlerts(ctx, owner, repo)
	}
	return translate(err)
}

func (c *Client) SetAutomatedSecurityFixes(ctx context.Context, owner, repo string, enabled bool) error {
	var err error
	if enabled {
		_, err = c.gh.Repositories.EnableAutomatedSecurityFixes(ctx, owner, repo)
	} else {
		_, err = c.gh.Repositories.DisableAutomatedSecurityFixes(ctx, owner, repo)
	}
	return translate(err)
}

func (c *Client) SetWorkflowTokenPermission(ctx context.Context, owner, repo, permission string) error {
	_, _, err := c.gh.Repositories.EditDefaultWorkflowPermissions(ctx, owner, repo, github.DefaultWorkflowPermissionRepository{
		DefaultWorkflowPermissions: github.String(permission),
	})
	return translate(err)
}

func (c *Client) SetDeleteBranchOnMerge(ctx context.Context, owner, repo string, enabled bool) error {
	_, _, err := c.gh.Repositories.Edit(ctx, owner, repo, &github.Repository{
		DeleteBranchOnMerge: github.Bool(enabled),
	})
	return translate(err)
}

func (c *Client) SetAllowForking(ctx context.Context, owner, repo string, enabled bool) error {
	_, _, err := c.gh.Repositories.Edit(ctx, owner, repo, &github.Repository{
		AllowForking: github.Bool(enabled),
	})
	return translate(err)
}

func statusString(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
