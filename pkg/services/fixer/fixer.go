// Package fixer applies best-effort corrective configuration changes for
// a fixed subset of findings.
package fixer

import (
	"context"

	"github.com/vdanniel/github-security-checker/pkg/models/domain"
	"github.com/vdanniel/github-security-checker/pkg/services/provider"
)

// baselineProtection is the policy applied when enabling branch
// protection from scratch. Applying it repeatedly converges to the same
// state.
func baselineProtection() domain.BranchProtection {
	return domain.BranchProtection{
		RequiredReviews: &domain.ReviewPolicy{
			ApprovingCount: 2,
			DismissStale:   true,
		},
		RequiredChecks: &domain.StatusCheckPolicy{Strict: true},
		EnforceAdmins:  true,
	}
}

type fixAction struct {
	message string
	apply   func(ctx context.Context, w provider.Writer, owner, repo, branch string) error
}

// fixTable is the closed set of remediable findings. Every action is a
// single idempotent provider call; anything outside the table resolves to
// an unsupported-fix result without touching the provider.
var fixTable = map[string]fixAction{
	"bp-not-enabled": {
		message: "baseline branch protection applied",
		apply: func(ctx context.Context, w provider.Writer, owner, repo, branch string) error {
			return w.UpdateBranchProtection(ctx, owner, repo, branch, baselineProtection())
		},
	},
	"bp-admins-not-enforced": {
		message: "branch protection now enforced for administrators",
		apply: func(ctx context.Context, w provider.Writer, owner, repo, branch string) error {
			policy := baselineProtection()
			policy.EnforceAdmins = true
			return w.UpdateBranchProtection(ctx, owner, repo, branch, policy)
		},
	},
	"bp-force-push-allowed": {
		message: "force pushes disabled on the protected branch",
		apply: func(ctx context.Context, w provider.Writer, owner, repo, branch string) error {
			policy := baselineProtection()
			policy.AllowForcePushes = false
			return w.UpdateBranchProtection(ctx, owner, repo, branch, policy)
		},
	},
	"sf-secret-scanning-disabled": {
		message: "secret scanning enabled",
		apply: func(ctx context.Context, w provider.Writer, owner, repo, _ string) error {
			return w.SetSecretScanning(ctx, owner, repo, true)
		},
	},
	"sf-push-protection-disabled": {
		message: "secret scanning push protection enabled",
		apply: func(ctx context.Context, w provider.Writer, owner, repo, _ string) error {
			return w.SetPushProtection(ctx, owner, repo, true)
		},
	},
	"dep-vulnerability-alerts-disabled": {
		message: "dependency vulnerability alerts enabled",
		apply: func(ctx context.Context, w provider.Writer, owner, repo, _ string) error {
			return w.SetVulnerabilityAlerts(ctx, owner, repo, true)
		},
	},
	"dep-security-updates-disabled": {
		message: "automated security updates enabled",
		apply: func(ctx context.Context, w provider.Writer, owner, repo, _ string) error {
			return w.SetAutomatedSecurityFixes(ctx, owner, repo, true)
		},
	},
	"rs-workflow-token-write": {
		message: "default workflow token set to read-only",
		apply: func(ctx context.Context, w provider.Writer, owner, repo, _ string) error {
			return w.SetWorkflowTokenPermission(ctx, owner, repo, "read")
		},
	},
	"rs-auto-delete-disabled": {
		message: "automatic deletion of merged branches enabled",
		apply: func(ctx context.Context, w provider.Writer, owner, repo, _ string) error {
			return w.SetDeleteBranchOnMerge(ctx, owner, repo, true)
		},
	},
	"rs-forking-enabled": {
		message: "forking disabled",
		apply: func(ctx context.Context, w provider.Writer, owner, repo, _ string) error {
			return w.SetAllowForking(ctx, owner, repo, false)
		},
	},
}

type Dispatcher struct {
	writer provider.Writer
}

func NewDispatcher(w provider.Writer) *Dispatcher {
	return &Dispatcher{writer: w}
}

// Fix applies the remediation mapped to findingID. Provider errors are
// converted into a failed FixResult here; they never propagate. branch is
// only consulted by branch protection fixes and may be empty otherwise.
func (d *Dispatcher) Fix(ctx context.Context, owner, repo, findingID, branch string) domain.FixResult {
	action, ok := fixTable[findingID]
	if !ok {
		return domain.FixResult{
			Success:   false,
			FindingID: findingID,
			Error:     domain.ErrUnsupportedFix,
		}
	}

	if err := action.apply(ctx, d.writer, owner, repo, branch); err != nil {
		return domain.FixResult{
			Success:   false,
			FindingID: findingID,
			Error:     err.Error(),
		}
	}
	return domain.FixResult{
		Success:   true,
		FindingID: findingID,
		Message:   action.message,
	}
}

// Supported reports whether a remediation exists for findingID.
func Supported(findingID string) bool {
	_, ok := fixTable[findingID]
	return ok
}
