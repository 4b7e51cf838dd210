package github

import (
	"github.com/google/go-github/v62/github"

	"github.com/vdanniel/github-security-checker/pkg/models/domain"
)

func mapRepository(r *github.Repository) domain.Repository {
	return domain.Repository{
		Owner:         r.GetOwner().GetLogin(),
		Name:          r.GetName(),
		FullName:      r.GetFullName(),
		Visibility:    r.GetVisibility(),
		DefaultBranch: r.GetDefaultBranch(),
		URL:           r.GetHTMLURL(),

		Private:                  r.GetPrivate(),
		Archived:                 r.GetArchived(),
		Fork:                     r.GetFork(),
		Description:              r.GetDescription(),
		HasWiki:                  r.GetHasWiki(),
		AllowForking:             r.GetAllowForking(),
		AllowAutoMerge:           r.GetAllowAutoMerge(),
		DeleteBranchOnMerge:      r.GetDeleteBranchOnMerge(),
		WebCommitSignoffRequired: r.GetWebCommitSignoffRequired(),
	}
}

func mapProtection(p *github.Protection) *domain.BranchProtection {
	bp := &domain.BranchProtection{
		RequireSignedCommits: p.GetRequiredSignatures().GetEnabled(),
	}
	if v := p.GetEnforceAdmins(); v != nil {
		bp.EnforceAdmins = v.Enabled
	}
	if v := p.GetAllowForcePushes(); v != nil {
		bp.AllowForcePushes = v.Enabled
	}
	if v := p.GetAllowDeletions(); v != nil {
		bp.AllowDeletions = v.Enabled
	}
	if v := p.GetRequireLinearHistory(); v != nil {
		bp.RequireLinearHistory = v.Enabled
	}
	if v := p.GetRequiredConversationResolution(); v != nil {
		bp.RequireConversationResolution = v.Enabled
	}

	if reviews := p.GetRequiredPullRequestReviews(); reviews != nil {
		bp.RequiredReviews = &domain.ReviewPolicy{
			ApprovingCount:   reviews.RequiredApprovingReviewCount,
			DismissStale:     reviews.DismissStaleReviews,
			RequireCodeOwner: reviews.RequireCodeOwnerReviews,
		}
	}
	if checks := p.GetRequiredStatusChecks(); checks != nil {
		policy := &domain.StatusCheckPolicy{Strict: checks.Strict}
		if checks.Contexts != nil {
			policy.Contexts = *checks.Contexts
		}
		bp.RequiredChecks = policy
	}
	return bp
}

func mapEnvironment(env *github.Environment) domain.Environment {
	e := domain.Environment{
		Name:            env.GetName(),
		HasBranchPolicy: env.GetDeploymentBranchPolicy() != nil,
	}
	for _, rule := range env.ProtectionRules {
		switch rule.GetType() {
		case "required_reviewers":
			e.ReviewerCount += len(rule.Reviewers)
		case "wait_timer":
			e.WaitTimerMins = rule.GetWaitTimer()
		}
	}
	return e
}

// statusEnabled interprets GitHub's enabled/disabled feature strings.
func statusEnabled(status string) bool {
	return status == "enabled"
}

// highestPermission collapses GitHub's permission map into the single
// strongest grant.
func highestPermission(perms map[string]bool) string {
	for _, p := range []string{"admin", "maintain", "push", "triage", "pull"} {
		if perms[p] {
			return p
		}
	}
	return "pull"
}
