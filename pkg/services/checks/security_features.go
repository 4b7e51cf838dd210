package checks

import (
	"context"
	"errors"
	"fmt"

	"github.com/vdanniel/github-security-checker/pkg/models/domain"
	"github.com/vdanniel/github-security-checker/pkg/services/provider"
)

// SecurityProvider is the read surface the security-features check needs.
type SecurityProvider interface {
	provider.SecurityFeaturesReader
	FileExists(ctx context.Context, owner, repo, path string) (bool, error)
}

// securitySnapshot is the assembled input for the security predicates.
type securitySnapshot struct {
	features            domain.SecurityFeatures
	private             bool
	hasSecurityPolicy   bool
	hasCodeQLWorkflow   bool
	hasDependabotConfig bool
}

var securityPredicates = []struct {
	finding domain.Finding
	fires   func(s securitySnapshot) bool
}{
	{findingSFSecretScanningDisabled, func(s securitySnapshot) bool {
		return !s.features.SecretScanning
	}},
	{findingSFPushProtectionDisabled, func(s securitySnapshot) bool {
		return !s.features.PushProtection
	}},
	{findingSFAdvancedSecurityDisabled, func(s securitySnapshot) bool {
		return s.private && !s.features.AdvancedSecurity
	}},
	{findingSFCodeScanningNotConfigured, func(s securitySnapshot) bool {
		return !s.features.CodeScanningConfigured
	}},
	{findingSFNoCodeQLWorkflow, func(s securitySnapshot) bool {
		return !s.hasCodeQLWorkflow
	}},
	{findingSFNoSecurityPolicy, func(s securitySnapshot) bool {
		return !s.hasSecurityPolicy
	}},
	{findingSFPrivateVulnReportingDisabled, func(s securitySnapshot) bool {
		return !s.private && !s.features.PrivateVulnReporting
	}},
	{findingSFValidityChecksDisabled, func(s securitySnapshot) bool {
		return s.features.SecretScanning && !s.features.ValidityChecks
	}},
	{findingSFNoDependabotConfig, func(s securitySnapshot) bool {
		return !s.hasDependabotConfig
	}},
}

// SecurityFeatures inspects scanning and reporting toggles plus the
// presence of the security policy and analysis configuration files.
// Missing files and a not-found feature state are check inputs, not
// failures.
func SecurityFeatures(ctx context.Context, p SecurityProvider, owner, repo string, private bool) ([]domain.Finding, error) {
	snap := securitySnapshot{private: private}

	features, err := p.GetSecurityFeatures(ctx, owner, repo)
	switch {
	case errors.Is(err, provider.ErrNotFound):
		// No security settings exposed at all; every toggle reads as off.
	case err != nil:
		return nil, fmt.Errorf("read security features for %s/%s: %w", owner, repo, err)
	default:
		snap.features = *features
	}

	for _, probe := range []struct {
		path string
		dest *bool
	}{
		{"SECURITY.md", &snap.hasSecurityPolicy},
		{".github/workflows/codeql.yml", &snap.hasCodeQLWorkflow},
		{".github/dependabot.yml", &snap.hasDependabotConfig},
	} {
		exists, err := p.FileExists(ctx, owner, repo, probe.path)
		if err != nil {
			return nil, fmt.Errorf("probe %s in %s/%s: %w", probe.path, owner, repo, err)
		}
		*probe.dest = exists
	}

	var findings []domain.Finding
	for _, pred := range securityPredicates {
		if pred.fires(snap) {
			findings = append(findings, pred.finding)
		}
	}
	return findings, nil
}

// DependencyAlerts is the dependency-alert sub-check: two toggles read
// directly from the provider.
func DependencyAlerts(ctx context.Context, p provider.SecurityFeaturesReader, owner, repo string) ([]domain.Finding, error) {
	alerts, err := p.VulnerabilityAlertsEnabled(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("read vulnerability alerts for %s/%s: %w", owner, repo, err)
	}
	fixes, err := p.AutomatedSecurityFixesEnabled(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("read automated security fixes for %s/%s: %w", owner, repo, err)
	}

	var findings []domain.Finding
	if !alerts {
		findings = append(findings, findingDepAlertsDisabled)
	}
	if !fixes {
		findings = append(findings, findingDepSecurityUpdatesDisabled)
	}
	return findings, nil
}
