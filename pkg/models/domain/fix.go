package domain

// ErrUnsupportedFix is the error string reported when a finding has no
// remediation action mapped to it.
const ErrUnsupportedFix = "UNSUPPORTED_FIX"

// FixResult is the one-shot outcome of a single remediation attempt.
type FixResult struct {
	Success   bool   `json:"success"`
	FindingID string `json:"finding_id"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}
