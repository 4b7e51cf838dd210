// Package provider defines the repository configuration capability the
// engine runs against. The concrete GitHub client lives in
// services/github; checks and the fixer only see these interfaces.
package provider

import (
	"context"
	"errors"

	"github.com/vdanniel/github-security-checker/pkg/models/domain"
)

// ErrNotFound signals that a resource is absent or not configured. Checks
// treat it as data (e.g. no SECURITY.md, no protection policy), never as a
// failure.
var ErrNotFound = errors.New("resource not found")

// ErrForbidden signals that the platform refused access to a feature, e.g.
// branch protection on a plan tier that does not include it. Checks use it
// to tell "not available" apart from "not enabled".
var ErrForbidden = errors.New("resource forbidden")

type ListOptions struct {
	Visibility string // all, public, private
}

type RepositoryReader interface {
	GetRepository(ctx context.Context, owner, repo string) (*domain.Repository, error)
	ListRepositories(ctx context.Context, opts ListOptions) ([]domain.Repository, error)
	// FileExists reports whether a file exists at path on the default
	// branch. Absence is (false, nil), not an error.
	FileExists(ctx context.Context, owner, repo, path string) (bool, error)
}

type BranchProtectionReader interface {
	// GetBranchProtection returns ErrNotFound when the branch has no
	// protection policy and ErrForbidden when protection is unavailable
	// for the repository's plan.
	GetBranchProtection(ctx context.Context, owner, repo, branch string) (*domain.BranchProtection, error)
}

type SecurityFeaturesReader interface {
	GetSecurityFeatures(ctx context.Context, owner, repo string) (*domain.SecurityFeatures, error)
	VulnerabilityAlertsEnabled(ctx context.Context, owner, repo string) (bool, error)
	AutomatedSecurityFixesEnabled(ctx context.Context, owner, repo string) (bool, error)
}

type AccessControlReader interface {
	ListCollaborators(ctx context.Context, owner, repo string) ([]domain.Collaborator, error)
	ListDeployKeys(ctx context.Context, owner, repo string) ([]domain.DeployKey, error)
	ListWebhooks(ctx context.Context, owner, repo string) ([]domain.Webhook, error)
}

type ActionsReader interface {
	GetActionsPolicy(ctx context.Context, owner, repo string) (*domain.ActionsPolicy, error)
	ListEnvironments(ctx context.Context, owner, repo string) ([]domain.Environment, error)
}

// Writer is the mutating capability the remediation dispatcher needs.
// Every operation converges configuration to a desired state, so repeated
// application is safe.
type Writer interface {
	UpdateBranchProtection(ctx context.Context, owner, repo, branch string, policy domain.BranchProtection) error
	SetSecretScanning(ctx context.Context, owner, repo string, enabled bool) error
	SetPushProtection(ctx context.Context, owner, repo string, enabled bool) error
	SetVulnerabilityAlerts(ctx context.Context, owner, repo string, enabled bool) error
	SetAutomatedSecurityFixes(ctx context.Context, owner, repo string, enabled bool) error
	SetWorkflowTokenPermission(ctx context.Context, owner, repo, permission string) error
	SetDeleteBranchOnMerge(ctx context.Context, owner, repo string, enabled bool) error
	SetAllowForking(ctx context.Context, owner, repo string, enabled bool) error
}

// Client is the full configuration provider capability.
type Client interface {
	RepositoryReader
	BranchProtectionReader
	SecurityFeaturesReader
	AccessControlReader
	ActionsReader
	Writer
}
