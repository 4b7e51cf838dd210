package compliance

import (
	"fmt"
	"math"
	"time"

	"github.com/vdanniel/github-security-checker/pkg/models/domain"
)

// compliantFindingLimit is the most low/medium findings a control can pool
// and still rate compliant.
const compliantFindingLimit = 2

// MapCompliance derives a compliance report from a batch of scan results.
// It is deterministic given its inputs and the static catalog: findings
// pool onto controls via their control id, evidence accrues from the
// absence of specific findings, and status follows a fixed threshold rule.
//
// A control with no pooled findings and no evidence rates compliant under
// the threshold rule. That conflates "nothing to say" with "verified
// good"; it is preserved deliberately (see DESIGN.md).
func MapCompliance(results []domain.ScanResult) domain.ComplianceReport {
	pooled := make(map[string][]domain.Finding, len(controlCatalog))
	evidence := make(map[string][]string, len(controlCatalog))
	known := make(map[string]bool, len(controlCatalog))
	for _, c := range controlCatalog {
		known[c.ID] = true
	}

	repositories := make([]string, 0, len(results))
	for _, result := range results {
		repositories = append(repositories, result.Repository.FullName)

		present := make(map[string]bool, len(result.Findings))
		for _, f := range result.Findings {
			present[f.ID] = true
			if f.ControlID == "" || !known[f.ControlID] {
				continue
			}
			// Copy with a repo-prefixed description; the original
			// finding stays untouched.
			prefixed := f.WithDescription(fmt.Sprintf("[%s] %s", result.Repository.FullName, f.Description))
			pooled[f.ControlID] = append(pooled[f.ControlID], prefixed)
		}

		for _, rule := range evidenceRules {
			if !present[rule.findingID] {
				evidence[rule.controlID] = append(evidence[rule.controlID],
					fmt.Sprintf("%s: %s", result.Repository.FullName, rule.statement))
			}
		}
	}

	controls := make([]domain.ComplianceControl, 0, len(controlCatalog))
	compliant, partial := 0, 0
	for _, c := range controlCatalog {
		status := statusFor(pooled[c.ID])
		switch status {
		case domain.StatusCompliant:
			compliant++
		case domain.StatusPartial:
			partial++
		}
		controls = append(controls, domain.ComplianceControl{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Status:      status,
			Findings:    pooled[c.ID],
			Evidence:    evidence[c.ID],
		})
	}

	overall := int(math.Round(100 * (float64(compliant) + 0.5*float64(partial)) / float64(len(controlCatalog))))

	return domain.ComplianceReport{
		GeneratedAt:       time.Now().UTC(),
		Repositories:      repositories,
		Controls:          controls,
		OverallCompliance: overall,
	}
}

func statusFor(pooled []domain.Finding) domain.ControlStatus {
	severe := false
	for _, f := range pooled {
		if f.Severity == domain.SeverityCritical || f.Severity == domain.SeverityHigh {
			severe = true
			break
		}
	}
	switch {
	case !severe && len(pooled) <= compliantFindingLimit:
		return domain.StatusCompliant
	case !severe:
		return domain.StatusPartial
	default:
		return domain.StatusNonCompliant
	}
}
