// Package checks implements the fixed battery of repository configuration
// checks. Each check reads one facet of a repository through the provider
// interfaces and evaluates an ordered table of independent predicates
// against the snapshot; a firing predicate emits one catalog finding.
package checks

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/vdanniel/github-security-checker/pkg/models/domain"
	"github.com/vdanniel/github-security-checker/pkg/services/provider"
)

const requiredApprovals = 2

// branchPredicates is evaluated in order against a non-nil protection
// policy. Predicates share no state; the check output is the
// concatenation of whichever entries fired.
var branchPredicates = []struct {
	finding domain.Finding
	fires   func(bp *domain.BranchProtection) bool
}{
	{findingBPNoPRReviews, func(bp *domain.BranchProtection) bool {
		return bp.RequiredReviews == nil
	}},
	{findingBPInsufficientReviewers, func(bp *domain.BranchProtection) bool {
		return bp.RequiredReviews != nil && bp.RequiredReviews.ApprovingCount < requiredApprovals
	}},
	{findingBPStaleReviewsKept, func(bp *domain.BranchProtection) bool {
		return bp.RequiredReviews != nil && !bp.RequiredReviews.DismissStale
	}},
	{findingBPNoCodeOwnerReviews, func(bp *domain.BranchProtection) bool {
		return bp.RequiredReviews != nil && !bp.RequiredReviews.RequireCodeOwner
	}},
	{findingBPNoStatusChecks, func(bp *domain.BranchProtection) bool {
		return bp.RequiredChecks == nil || len(bp.RequiredChecks.Contexts) == 0
	}},
	{findingBPNonStrictChecks, func(bp *domain.BranchProtection) bool {
		return bp.RequiredChecks != nil && !bp.RequiredChecks.Strict
	}},
	{findingBPAdminsNotEnforced, func(bp *domain.BranchProtection) bool {
		return !bp.EnforceAdmins
	}},
	{findingBPForcePushAllowed, func(bp *domain.BranchProtection) bool {
		return bp.AllowForcePushes
	}},
	{findingBPDeletionsAllowed, func(bp *domain.BranchProtection) bool {
		return bp.AllowDeletions
	}},
	{findingBPUnsignedCommits, func(bp *domain.BranchProtection) bool {
		return !bp.RequireSignedCommits
	}},
	{findingBPNonLinearHistory, func(bp *domain.BranchProtection) bool {
		return !bp.RequireLinearHistory
	}},
	{findingBPUnresolvedConversations, func(bp *domain.BranchProtection) bool {
		return !bp.RequireConversationResolution
	}},
}

// BranchProtection inspects the protection policy of one branch. A branch
// with no policy at all yields the single critical finding and skips the
// predicate table; a plan-restricted refusal yields the informational
// not-available finding instead.
func BranchProtection(ctx context.Context, p provider.BranchProtectionReader, owner, repo, branch string) ([]domain.Finding, error) {
	bp, err := p.GetBranchProtection(ctx, owner, repo, branch)
	if errors.Is(err, provider.ErrNotFound) {
		return []domain.Finding{findingBPNotEnabled}, nil
	}
	if errors.Is(err, provider.ErrForbidden) {
		return []domain.Finding{findingBPNotAvailable}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read branch protection for %s/%s@%s: %w", owner, repo, branch, err)
	}

	var findings []domain.Finding
	for _, pred := range branchPredicates {
		if !pred.fires(bp) {
			continue
		}
		f := pred.finding
		if f.ID == findingBPInsufficientReviewers.ID {
			f.CurrentValue = strconv.Itoa(bp.RequiredReviews.ApprovingCount)
		}
		findings = append(findings, f)
	}
	return findings, nil
}
