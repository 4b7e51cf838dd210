package domain

type Category string

const (
	CategoryBranchProtection   Category = "branch-protection"
	CategorySecurityFeatures   Category = "security-features"
	CategoryAccessControl      Category = "access-control"
	CategoryRepositorySettings Category = "repository-settings"
	CategorySecrets            Category = "secrets"
	CategoryDependencies       Category = "dependencies"
)

// Finding describes one detected configuration issue. Findings are value
// objects: once emitted by a check they are never mutated. Anything that
// needs a variant (e.g. repo-prefixed descriptions in a pooled compliance
// report) copies the finding instead.
type Finding struct {
	ID               string   `json:"id"`
	Category         Category `json:"category"`
	Severity         Severity `json:"severity"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Recommendation   string   `json:"recommendation"`
	DocumentationURL string   `json:"documentation_url,omitempty"`
	ControlID        string   `json:"control_id,omitempty"`
	CurrentValue     string   `json:"current_value,omitempty"`
	ExpectedValue    string   `json:"expected_value,omitempty"`
}

// WithDescription returns a copy of f with the description replaced.
func (f Finding) WithDescription(desc string) Finding {
	f.Description = desc
	return f
}
