package domain

import "time"

// Repository is the identity and settings snapshot of one repository,
// resolved once per scan.
type Repository struct {
	Owner         string `json:"owner"`
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	Visibility    string `json:"visibility"`
	DefaultBranch string `json:"default_branch"`
	URL           string `json:"url"`

	Private                  bool   `json:"private"`
	Archived                 bool   `json:"archived"`
	Fork                     bool   `json:"fork"`
	Description              string `json:"description,omitempty"`
	HasWiki                  bool   `json:"has_wiki"`
	AllowForking             bool   `json:"allow_forking"`
	AllowAutoMerge           bool   `json:"allow_auto_merge"`
	DeleteBranchOnMerge      bool   `json:"delete_branch_on_merge"`
	WebCommitSignoffRequired bool   `json:"web_commit_signoff_required"`
}

// BranchProtection is the protection policy of one branch. A nil policy
// (provider reports not-found) means protection is not enabled at all.
type BranchProtection struct {
	RequiredReviews               *ReviewPolicy
	RequiredChecks                *StatusCheckPolicy
	EnforceAdmins                 bool
	AllowForcePushes              bool
	AllowDeletions                bool
	RequireSignedCommits          bool
	RequireLinearHistory          bool
	RequireConversationResolution bool
}

type ReviewPolicy struct {
	ApprovingCount   int
	DismissStale     bool
	RequireCodeOwner bool
}

type StatusCheckPolicy struct {
	Strict   bool
	Contexts []string
}

// SecurityFeatures captures the repository's scanning and reporting
// feature toggles.
type SecurityFeatures struct {
	AdvancedSecurity       bool
	SecretScanning         bool
	PushProtection         bool
	ValidityChecks         bool
	PrivateVulnReporting   bool
	CodeScanningConfigured bool
}

type Collaborator struct {
	Login      string
	Permission string // admin, maintain, push, triage, pull
	Outside    bool
}

type DeployKey struct {
	ID        int64
	Title     string
	ReadOnly  bool
	CreatedAt time.Time
}

type Webhook struct {
	ID          int64
	URL         string
	HasSecret   bool
	InsecureSSL bool
	Active      bool
}

// ActionsPolicy is the repository's GitHub Actions configuration.
type ActionsPolicy struct {
	AllowedActions         string // all, local_only, selected
	DefaultTokenPermission string // read, write
	CanApprovePullRequests bool
}

type Environment struct {
	Name            string
	ReviewerCount   int
	WaitTimerMins   int
	HasBranchPolicy bool
}
