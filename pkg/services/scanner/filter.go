package scanner

import "github.com/vdanniel/github-security-checker/pkg/models/domain"

// Filter retains findings at or above the threshold severity, preserving
// order. The default threshold of low drops info findings.
func Filter(findings []domain.Finding, threshold domain.Severity) []domain.Finding {
	var kept []domain.Finding
	for _, f := range findings {
		if f.Severity.AtLeast(threshold) {
			kept = append(kept, f)
		}
	}
	return kept
}

func summarize(findings []domain.Finding) domain.Summary {
	var s domain.Summary
	for _, f := range findings {
		switch f.Severity {
		case domain.SeverityCritical:
			s.Critical++
		case domain.SeverityHigh:
			s.High++
		case domain.SeverityMedium:
			s.Medium++
		case domain.SeverityLow:
			s.Low++
		case domain.SeverityInfo:
			s.Info++
		}
	}
	return s
}
