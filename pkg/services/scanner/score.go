package scanner

import "github.com/vdanniel/github-security-checker/pkg/models/domain"

// severityWeights is the fixed score penalty per retained finding.
var severityWeights = map[domain.Severity]int{
	domain.SeverityCritical: 25,
	domain.SeverityHigh:     15,
	domain.SeverityMedium:   8,
	domain.SeverityLow:      3,
	domain.SeverityInfo:     0,
}

// Score starts at 100 and subtracts the severity weight of every finding,
// clamped at 0. Repeated findings of the same severity subtract linearly.
func Score(findings []domain.Finding) int {
	score := 100
	for _, f := range findings {
		score -= severityWeights[f.Severity]
	}
	if score < 0 {
		return 0
	}
	return score
}
