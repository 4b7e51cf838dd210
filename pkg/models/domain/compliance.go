package domain

import "time"

type ControlStatus string

const (
	StatusCompliant    ControlStatus = "compliant"
	StatusPartial      ControlStatus = "partial"
	StatusNonCompliant ControlStatus = "non-compliant"
)

// ComplianceControl is one external control with the findings and evidence
// pooled across every scanned repository. Pooled findings are copies of the
// originals with the repository name prefixed into the description.
type ComplianceControl struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      ControlStatus `json:"status"`
	Findings    []Finding     `json:"findings"`
	Evidence    []string      `json:"evidence"`
}

type ComplianceReport struct {
	GeneratedAt       time.Time           `json:"generated_at"`
	Repositories      []string            `json:"repositories"`
	Controls          []ComplianceControl `json:"controls"`
	OverallCompliance int                 `json:"overall_compliance"`
}
