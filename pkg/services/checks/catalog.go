package checks

import (
	"github.com/vdanniel/github-security-checker/pkg/models/domain"
)

// The finding catalog is closed: every finding any check can emit is
// declared here, and the id doubles as the remediation lookup key. Checks
// copy these values and may fill in CurrentValue/ExpectedValue before
// emitting; the catalog entries themselves are never modified.

var (
	findingBPNotEnabled = domain.Finding{
		ID:               "bp-not-enabled",
		Category:         domain.CategoryBranchProtection,
		Severity:         domain.SeverityCritical,
		Title:            "Branch protection not enabled",
		Description:      "The default branch has no protection policy. Anyone with push access can commit directly, force-push, or delete the branch.",
		Recommendation:   "Enable branch protection with required pull request reviews and status checks.",
		DocumentationURL: "https://docs.github.com/en/repositories/configuring-branches-and-merges-in-your-repository/managing-protected-branches/about-protected-branches",
		ControlID:        "CC8.1",
	}
	findingBPNotAvailable = domain.Finding{
		ID:             "bp-not-available",
		Category:       domain.CategoryBranchProtection,
		Severity:       domain.SeverityInfo,
		Title:          "Branch protection not available",
		Description:    "Branch protection is not available for this repository on the current plan.",
		Recommendation: "Upgrade the plan or make the repository public to enable branch protection.",
	}
	findingBPNoPRReviews = domain.Finding{
		ID:             "bp-no-pr-reviews",
		Category:       domain.CategoryBranchProtection,
		Severity:       domain.SeverityHigh,
		Title:          "Pull request reviews not required",
		Description:    "Changes can be merged into the protected branch without any review.",
		Recommendation: "Require at least one approving pull request review before merging.",
		ControlID:      "CC8.1",
	}
	findingBPInsufficientReviewers = domain.Finding{
		ID:             "bp-insufficient-reviewers",
		Category:       domain.CategoryBranchProtection,
		Severity:       domain.SeverityMedium,
		Title:          "Too few required reviewers",
		Description:    "Fewer than two approving reviews are required before merging.",
		Recommendation: "Require at least two approving reviews for changes to the protected branch.",
		ControlID:      "CC8.1",
		ExpectedValue:  "2",
	}
	findingBPStaleReviewsKept = domain.Finding{
		ID:             "bp-stale-reviews-kept",
		Category:       domain.CategoryBranchProtection,
		Severity:       domain.SeverityMedium,
		Title:          "Stale reviews not dismissed",
		Description:    "Approvals are not dismissed when new commits are pushed, so reviewed and merged code can differ.",
		Recommendation: "Enable dismissal of stale pull request approvals on new commits.",
		ControlID:      "CC8.1",
	}
	findingBPNoCodeOwnerReviews = domain.Finding{
		ID:             "bp-no-codeowner-reviews",
		Category:       domain.CategoryBranchProtection,
		Severity:       domain.SeverityLow,
		Title:          "Code owner review not required",
		Description:    "Changes to owned paths can merge without a review from the code owners.",
		Recommendation: "Require review from code owners for protected branches.",
		ControlID:      "CC8.1",
	}
	findingBPNoStatusChecks = domain.Finding{
		ID:             "bp-no-status-checks",
		Category:       domain.CategoryBranchProtection,
		Severity:       domain.SeverityHigh,
		Title:          "Status checks not required",
		Description:    "Changes can merge without passing any CI status checks.",
		Recommendation: "Require status checks to pass before merging.",
		ControlID:      "CC8.1",
	}
	findingBPNonStrictChecks = domain.Finding{
		ID:             "bp-non-strict-checks",
		Category:       domain.CategoryBranchProtection,
		Severity:       domain.SeverityMedium,
		Title:          "Branches not required to be up to date",
		Description:    "Required status checks accept results from an out-of-date merge base.",
		Recommendation: "Require branches to be up to date before merging.",
		ControlID:      "CC8.1",
	}
	findingBPAdminsNotEnforced = domain.Finding{
		ID:             "bp-admins-not-enforced",
		Category:       domain.CategoryBranchProtection,
		Severity:       domain.SeverityMedium,
		Title:          "Administrators bypass protection",
		Description:    "Repository administrators are exempt from the branch protection rules.",
		Recommendation: "Enforce branch protection rules for administrators.",
		ControlID:      "CC6.1",
	}
	findingBPForcePushAllowed = domain.Finding{
		ID:             "bp-force-push-allowed",
		Category:       domain.CategoryBranchProtection,
		Severity:       domain.SeverityHigh,
		Title:          "Force pushes allowed",
		Description:    "History of the protected branch can be rewritten with a force push.",
		Recommendation: "Disable force pushes to the protected branch.",
		ControlID:      "CC6.1",
	}
	findingBPDeletionsAllowed = domain.Finding{
		ID:             "bp-deletions-allowed",
		Category:       domain.CategoryBranchProtection,
		Severity:       domain.SeverityMedium,
		Title:          "Branch deletion allowed",
		Description:    "The protected branch can be deleted by users with push access.",
		Recommendation: "Disable deletion of the protected branch.",
		ControlID:      "CC6.1",
	}
	findingBPUnsignedCommits = domain.Finding{
		ID:             "bp-unsigned-commits",
		Category:       domain.CategoryBranchProtection,
		Severity:       domain.SeverityLow,
		Title:          "Signed commits not required",
		Description:    "Commits on the protected branch are not required to carry a verified signature.",
		Recommendation: "Require signed commits on the protected branch.",
		ControlID:      "CC8.1",
	}
	findingBPNonLinearHistory = domain.Finding{
		ID:             "bp-non-linear-history",
		Category:       domain.CategoryBranchProtection,
		Severity:       domain.SeverityLow,
		Title:          "Linear history not required",
		Description:    "Merge commits are allowed on the protected branch, which complicates auditing.",
		Recommendation: "Require linear history on the protected branch.",
		ControlID:      "CC8.1",
	}
	findingBPUnresolvedConversations = domain.Finding{
		ID:             "bp-unresolved-conversations",
		Category:       domain.CategoryBranchProtection,
		Severity:       domain.SeverityLow,
		Title:          "Conversation resolution not required",
		Description:    "Pull requests can merge with unresolved review conversations.",
		Recommendation: "Require conversation resolution before merging.",
		ControlID:      "CC8.1",
	}
)

var (
	findingSFSecretScanningDisabled = domain.Finding{
		ID:               "sf-secret-scanning-disabled",
		Category:         domain.CategorySecrets,
		Severity:         domain.SeverityCritical,
		Title:            "Secret scanning disabled",
		Description:      "Committed credentials and tokens are not detected.",
		Recommendation:   "Enable secret scanning for the repository.",
		DocumentationURL: "https://docs.github.com/en/code-security/secret-scanning/about-secret-scanning",
		ControlID:        "CC6.8",
	}
	findingSFPushProtectionDisabled = domain.Finding{
		ID:             "sf-push-protection-disabled",
		Category:       domain.CategorySecrets,
		Severity:       domain.SeverityHigh,
		Title:          "Secret scanning push protection disabled",
		Description:    "Pushes containing known secret patterns are not blocked before they land.",
		Recommendation: "Enable push protection for secret scanning.",
		ControlID:      "CC6.8",
	}
	findingSFAdvancedSecurityDisabled = domain.Finding{
		ID:             "sf-advanced-security-disabled",
		Category:       domain.CategorySecurityFeatures,
		Severity:       domain.SeverityMedium,
		Title:          "Advanced Security disabled",
		Description:    "Code scanning and secret scanning features are unavailable for this private repository.",
		Recommendation: "Enable GitHub Advanced Security for the repository.",
		ControlID:      "CC7.1",
	}
	findingSFCodeScanningNotConfigured = domain.Finding{
		ID:             "sf-code-scanning-not-configured",
		Category:       domain.CategorySecurityFeatures,
		Severity:       domain.SeverityMedium,
		Title:          "Code scanning not configured",
		Description:    "No code scanning setup was found for the repository.",
		Recommendation: "Enable code scanning default setup or add a scanning workflow.",
		ControlID:      "CC7.1",
	}
	findingSFNoCodeQLWorkflow = domain.Finding{
		ID:             "sf-no-codeql-workflow",
		Category:       domain.CategorySecurityFeatures,
		Severity:       domain.SeverityLow,
		Title:          "No CodeQL workflow",
		Description:    "The repository has no .github/workflows/codeql.yml analysis workflow.",
		Recommendation: "Add a CodeQL analysis workflow or enable default setup.",
		ControlID:      "CC7.1",
	}
	findingSFNoSecurityPolicy = domain.Finding{
		ID:             "sf-no-security-policy",
		Category:       domain.CategorySecurityFeatures,
		Severity:       domain.SeverityLow,
		Title:          "No security policy",
		Description:    "The repository has no SECURITY.md describing how to report vulnerabilities.",
		Recommendation: "Add a SECURITY.md with a disclosure policy and a contact.",
		ControlID:      "CC7.1",
	}
	findingSFPrivateVulnReportingDisabled = domain.Finding{
		ID:             "sf-private-vuln-reporting-disabled",
		Category:       domain.CategorySecurityFeatures,
		Severity:       domain.SeverityMedium,
		Title:          "Private vulnerability reporting disabled",
		Description:    "Researchers cannot privately report vulnerabilities against this public repository.",
		Recommendation: "Enable private vulnerability reporting.",
		ControlID:      "CC7.1",
	}
	findingSFValidityChecksDisabled = domain.Finding{
		ID:             "sf-validity-checks-disabled",
		Category:       domain.CategorySecrets,
		Severity:       domain.SeverityLow,
		Title:          "Secret validity checks disabled",
		Description:    "Detected secrets are not checked against their provider to confirm whether they are still live.",
		Recommendation: "Enable validity checks for secret scanning alerts.",
		ControlID:      "CC6.8",
	}
	findingSFNoDependabotConfig = domain.Finding{
		ID:             "sf-no-dependabot-config",
		Category:       domain.CategoryDependencies,
		Severity:       domain.SeverityMedium,
		Title:          "No Dependabot configuration",
		Description:    "The repository has no .github/dependabot.yml, so dependency updates are not scheduled.",
		Recommendation: "Add a dependabot.yml covering the repository's package ecosystems.",
		ControlID:      "CC7.1",
	}

	findingDepAlertsDisabled = domain.Finding{
		ID:             "dep-vulnerability-alerts-disabled",
		Category:       domain.CategoryDependencies,
		Severity:       domain.SeverityHigh,
		Title:          "Dependency vulnerability alerts disabled",
		Description:    "Known-vulnerable dependencies will not raise alerts.",
		Recommendation: "Enable Dependabot vulnerability alerts.",
		ControlID:      "CC7.1",
	}
	findingDepSecurityUpdatesDisabled = domain.Finding{
		ID:             "dep-security-updates-disabled",
		Category:       domain.CategoryDependencies,
		Severity:       domain.SeverityMedium,
		Title:          "Automated security updates disabled",
		Description:    "Dependabot does not open pull requests fixing vulnerable dependencies.",
		Recommendation: "Enable Dependabot automated security updates.",
		ControlID:      "CC7.1",
	}
)

var (
	findingACTooManyAdmins = domain.Finding{
		ID:             "ac-too-many-admins",
		Category:       domain.CategoryAccessControl,
		Severity:       domain.SeverityMedium,
		Title:          "Too many administrators",
		Description:    "More than three collaborators hold admin permission on the repository.",
		Recommendation: "Reduce admin access to the smallest possible group.",
		ControlID:      "CC6.2",
		ExpectedValue:  "3",
	}
	findingACOutsideCollaboratorAdmin = domain.Finding{
		ID:             "ac-outside-collaborator-admin",
		Category:       domain.CategoryAccessControl,
		Severity:       domain.SeverityHigh,
		Title:          "Outside collaborator with admin access",
		Description:    "A collaborator outside the organization holds admin permission.",
		Recommendation: "Downgrade outside collaborators to the minimum permission they need.",
		ControlID:      "CC6.2",
	}
	findingACOutsideCollaboratorPush = domain.Finding{
		ID:             "ac-outside-collaborator-push",
		Category:       domain.CategoryAccessControl,
		Severity:       domain.SeverityMedium,
		Title:          "Outside collaborator with write access",
		Description:    "A collaborator outside the organization can push to the repository.",
		Recommendation: "Review outside collaborators and restrict write access.",
		ControlID:      "CC6.2",
	}
	findingACWritableDeployKey = domain.Finding{
		ID:             "ac-writable-deploy-key",
		Category:       domain.CategoryAccessControl,
		Severity:       domain.SeverityHigh,
		Title:          "Writable deploy key",
		Description:    "A deploy key with write access exists; leaking it grants push access without an identity.",
		Recommendation: "Replace writable deploy keys with read-only keys or a GitHub App.",
		ControlID:      "CC6.2",
	}
	findingACStaleDeployKey = domain.Finding{
		ID:             "ac-stale-deploy-key",
		Category:       domain.CategoryAccessControl,
		Severity:       domain.SeverityMedium,
		Title:          "Stale deploy key",
		Description:    "A deploy key older than one year is still active.",
		Recommendation: "Rotate deploy keys at least yearly and remove unused ones.",
		ControlID:      "CC6.2",
	}
	findingACWebhookInsecureTransport = domain.Finding{
		ID:             "ac-webhook-insecure-transport",
		Category:       domain.CategoryAccessControl,
		Severity:       domain.SeverityHigh,
		Title:          "Webhook delivers over plain HTTP",
		Description:    "A webhook payload URL does not use HTTPS, exposing event payloads in transit.",
		Recommendation: "Switch webhook payload URLs to HTTPS.",
		ControlID:      "CC6.6",
	}
	findingACWebhookNoSecret = domain.Finding{
		ID:             "ac-webhook-no-secret",
		Category:       domain.CategoryAccessControl,
		Severity:       domain.SeverityMedium,
		Title:          "Webhook without a secret",
		Description:    "A webhook has no shared secret, so the receiver cannot verify payload authenticity.",
		Recommendation: "Configure a webhook secret and verify signatures at the receiver.",
		ControlID:      "CC6.6",
	}
	findingACWebhookSSLDisabled = domain.Finding{
		ID:             "ac-webhook-ssl-verification-disabled",
		Category:       domain.CategoryAccessControl,
		Severity:       domain.SeverityHigh,
		Title:          "Webhook SSL verification disabled",
		Description:    "A webhook skips TLS certificate verification when delivering payloads.",
		Recommendation: "Enable SSL verification on the webhook.",
		ControlID:      "CC6.6",
	}
)

var (
	findingRSForkingEnabled = domain.Finding{
		ID:             "rs-forking-enabled",
		Category:       domain.CategoryRepositorySettings,
		Severity:       domain.SeverityMedium,
		Title:          "Forking enabled on private repository",
		Description:    "Private code can be forked into repositories outside this one's access controls.",
		Recommendation: "Disable forking of the private repository.",
		ControlID:      "CC6.1",
	}
	findingRSAutoDeleteDisabled = domain.Finding{
		ID:             "rs-auto-delete-disabled",
		Category:       domain.CategoryRepositorySettings,
		Severity:       domain.SeverityLow,
		Title:          "Merged branches not auto-deleted",
		Description:    "Head branches are kept after merge, accumulating stale refs with push access.",
		Recommendation: "Enable automatic deletion of head branches on merge.",
		ControlID:      "CC8.1",
	}
	findingRSSignoffNotRequired = domain.Finding{
		ID:             "rs-signoff-not-required",
		Category:       domain.CategoryRepositorySettings,
		Severity:       domain.SeverityLow,
		Title:          "Web commit sign-off not required",
		Description:    "Commits made through the web UI do not require a sign-off.",
		Recommendation: "Require contributors to sign off on web-based commits.",
		ControlID:      "CC8.1",
	}
	findingRSWikiEnabled = domain.Finding{
		ID:             "rs-wiki-enabled",
		Category:       domain.CategoryRepositorySettings,
		Severity:       domain.SeverityLow,
		Title:          "Wiki enabled",
		Description:    "The repository wiki is enabled; wikis have weaker access control than the repository itself.",
		Recommendation: "Disable the wiki if it is not used.",
	}
	findingRSAutoMergeEnabled = domain.Finding{
		ID:             "rs-auto-merge-enabled",
		Category:       domain.CategoryRepositorySettings,
		Severity:       domain.SeverityLow,
		Title:          "Auto-merge enabled",
		Description:    "Pull requests can merge automatically once requirements pass, without a final human action.",
		Recommendation: "Disable auto-merge unless the required checks fully gate the change.",
		ControlID:      "CC8.1",
	}
	findingRSNoCodeowners = domain.Finding{
		ID:             "rs-no-codeowners",
		Category:       domain.CategoryRepositorySettings,
		Severity:       domain.SeverityMedium,
		Title:          "No CODEOWNERS file",
		Description:    "The repository has no .github/CODEOWNERS, so review routing and required owner reviews cannot work.",
		Recommendation: "Add a CODEOWNERS file covering sensitive paths.",
		ControlID:      "CC8.1",
	}
	findingRSNoGitignore = domain.Finding{
		ID:             "rs-no-gitignore",
		Category:       domain.CategoryRepositorySettings,
		Severity:       domain.SeverityLow,
		Title:          "No .gitignore",
		Description:    "The repository has no .gitignore, raising the odds of committing local artifacts and credentials.",
		Recommendation: "Add a .gitignore appropriate for the repository's toolchain.",
	}
	findingRSNoReadme = domain.Finding{
		ID:             "rs-no-readme",
		Category:       domain.CategoryRepositorySettings,
		Severity:       domain.SeverityInfo,
		Title:          "No README",
		Description:    "The repository has no README.md.",
		Recommendation: "Add a README describing the project.",
	}
	findingRSWorkflowTokenWrite = domain.Finding{
		ID:             "rs-workflow-token-write",
		Category:       domain.CategoryRepositorySettings,
		Severity:       domain.SeverityHigh,
		Title:          "Workflow token defaults to write",
		Description:    "The default GITHUB_TOKEN for workflow runs has write access to the repository.",
		Recommendation: "Set the default workflow token permission to read-only and grant write per job.",
		ControlID:      "CC6.1",
		CurrentValue:   "write",
		ExpectedValue:  "read",
	}
	findingRSWorkflowCanApprovePRs = domain.Finding{
		ID:             "rs-workflow-can-approve-prs",
		Category:       domain.CategoryRepositorySettings,
		Severity:       domain.SeverityHigh,
		Title:          "Workflows can approve pull requests",
		Description:    "GitHub Actions runs are allowed to create and approve pull requests, enabling review self-approval.",
		Recommendation: "Disallow Actions from creating or approving pull requests.",
		ControlID:      "CC6.8",
	}
	findingRSActionsUnrestricted = domain.Finding{
		ID:             "rs-actions-unrestricted",
		Category:       domain.CategoryRepositorySettings,
		Severity:       domain.SeverityMedium,
		Title:          "All actions allowed",
		Description:    "Workflows may use any action from any author, including unpinned third-party code.",
		Recommendation: "Restrict allowed actions to verified creators or an explicit allow list.",
		ControlID:      "CC6.8",
	}
	findingRSEnvUnprotected = domain.Finding{
		ID:             "rs-env-unprotected",
		Category:       domain.CategoryRepositorySettings,
		Severity:       domain.SeverityMedium,
		Title:          "Deployment environment without reviewers",
		Description:    "A deployment environment has no required reviewers, so deployments run ungated.",
		Recommendation: "Require reviewers on deployment environments.",
		ControlID:      "CC8.1",
	}
	findingRSEnvNoWaitTimer = domain.Finding{
		ID:             "rs-env-no-wait-timer",
		Category:       domain.CategoryRepositorySettings,
		Severity:       domain.SeverityLow,
		Title:          "Deployment environment without wait timer",
		Description:    "A deployment environment deploys immediately with no delay window to catch mistakes.",
		Recommendation: "Add a wait timer to sensitive environments.",
	}
	findingRSEnvNoBranchPolicy = domain.Finding{
		ID:             "rs-env-no-branch-policy",
		Category:       domain.CategoryRepositorySettings,
		Severity:       domain.SeverityLow,
		Title:          "Deployment environment without branch policy",
		Description:    "Any branch can deploy to a deployment environment.",
		Recommendation: "Restrict environment deployments to protected branches.",
		ControlID:      "CC8.1",
	}
)
