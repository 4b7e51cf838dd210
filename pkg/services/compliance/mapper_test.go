package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdanniel/github-security-checker/pkg/models/domain"
)

func scanOf(fullName string, findings ...domain.Finding) domain.ScanResult {
	return domain.ScanResult{
		Repository: domain.Repository{FullName: fullName},
		Findings:   findings,
	}
}

func controlByID(t *testing.T, report domain.ComplianceReport, id string) domain.ComplianceControl {
	t.Helper()
	for _, c := range report.Controls {
		if c.ID == id {
			return c
		}
	}
	t.Fatalf("control %s not in report", id)
	return domain.ComplianceControl{}
}

func TestMapCompliance_SingleCriticalFindingFailsItsControl(t *testing.T) {
	finding := domain.Finding{
		ID:          "rs-workflow-token-write",
		Severity:    domain.SeverityCritical,
		Description: "workflow token defaults to write",
		ControlID:   "CC6.1",
	}
	report := MapCompliance([]domain.ScanResult{
		scanOf("acme/api", finding),
		scanOf("acme/web"),
		scanOf("acme/infra"),
	})

	cc61 := controlByID(t, report, "CC6.1")
	assert.Equal(t, domain.StatusNonCompliant, cc61.Status)
	require.Len(t, cc61.Findings, 1)
	assert.Equal(t, "[acme/api] workflow token defaults to write", cc61.Findings[0].Description)

	for _, id := range []string{"CC6.2", "CC6.6", "CC6.8", "CC7.1", "CC8.1"} {
		assert.Equal(t, domain.StatusCompliant, controlByID(t, report, id).Status, id)
	}
	// 5 compliant of 6 controls, no partial credit for the failed one.
	assert.Equal(t, 83, report.OverallCompliance)
	assert.Equal(t, []string{"acme/api", "acme/web", "acme/infra"}, report.Repositories)
}

func TestMapCompliance_EmptyBatchRatesEverythingCompliant(t *testing.T) {
	report := MapCompliance(nil)

	require.Len(t, report.Controls, len(controlCatalog))
	for _, c := range report.Controls {
		assert.Equal(t, domain.StatusCompliant, c.Status, c.ID)
		assert.Empty(t, c.Findings)
		assert.Empty(t, c.Evidence)
	}
	assert.Equal(t, 100, report.OverallCompliance)
	assert.Empty(t, report.Repositories)
	assert.False(t, report.GeneratedAt.IsZero())
}

func TestMapCompliance_LowSeverityVolumeDowngradesToPartial(t *testing.T) {
	low := func(id string) domain.Finding {
		return domain.Finding{ID: id, Severity: domain.SeverityLow, ControlID: "CC6.6", Description: id}
	}

	within := MapCompliance([]domain.ScanResult{
		scanOf("a/r1", low("f1"), low("f2")),
	})
	assert.Equal(t, domain.StatusCompliant, controlByID(t, within, "CC6.6").Status)

	over := MapCompliance([]domain.ScanResult{
		scanOf("a/r1", low("f1"), low("f2")),
		scanOf("a/r2", low("f1")),
	})
	cc66 := controlByID(t, over, "CC6.6")
	assert.Equal(t, domain.StatusPartial, cc66.Status)
	assert.Len(t, cc66.Findings, 3)
	// Partial earns half credit: round(100 * 5.5/6).
	assert.Equal(t, 92, over.OverallCompliance)
}

func TestMapCompliance_HighSeverityOutweighsVolume(t *testing.T) {
	report := MapCompliance([]domain.ScanResult{
		scanOf("a/r1", domain.Finding{ID: "f1", Severity: domain.SeverityHigh, ControlID: "CC7.1"}),
	})
	assert.Equal(t, domain.StatusNonCompliant, controlByID(t, report, "CC7.1").Status)
}

func TestMapCompliance_OriginalFindingsAreNotMutated(t *testing.T) {
	finding := domain.Finding{
		ID:          "sf-secret-scanning-disabled",
		Severity:    domain.SeverityHigh,
		Description: "secret scanning is off",
		ControlID:   "CC6.8",
	}
	results := []domain.ScanResult{scanOf("acme/api", finding)}

	report := MapCompliance(results)

	assert.Equal(t, "secret scanning is off", results[0].Findings[0].Description)
	assert.Equal(t, "[acme/api] secret scanning is off",
		controlByID(t, report, "CC6.8").Findings[0].Description)
}

func TestMapCompliance_EvidenceAccruesFromAbsence(t *testing.T) {
	report := MapCompliance([]domain.ScanResult{
		scanOf("acme/api", domain.Finding{
			ID:        "dep-vulnerability-alerts-disabled",
			Severity:  domain.SeverityHigh,
			ControlID: "CC7.1",
		}),
		scanOf("acme/web"),
	})

	cc71 := controlByID(t, report, "CC7.1")
	require.Len(t, cc71.Evidence, 1)
	assert.Equal(t, "acme/web: dependency vulnerability alerts are enabled", cc71.Evidence[0])

	// The clean repositories contribute evidence for every rule.
	cc81 := controlByID(t, report, "CC8.1")
	assert.Equal(t, []string{
		"acme/api: branch protection is enabled on the default branch",
		"acme/web: branch protection is enabled on the default branch",
	}, cc81.Evidence)
}

func TestMapCompliance_UnmappedFindingsStayOutOfControls(t *testing.T) {
	report := MapCompliance([]domain.ScanResult{
		scanOf("acme/api",
			domain.Finding{ID: "rs-no-readme", Severity: domain.SeverityInfo},
			domain.Finding{ID: "mystery", Severity: domain.SeverityCritical, ControlID: "CC9.9"},
		),
	})

	for _, c := range report.Controls {
		assert.Empty(t, c.Findings, c.ID)
	}
	assert.Equal(t, 100, report.OverallCompliance)
}

func TestMapCompliance_ControlOrderIsFixed(t *testing.T) {
	report := MapCompliance([]domain.ScanResult{scanOf("a/r")})

	ids := make([]string, 0, len(report.Controls))
	for _, c := range report.Controls {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"CC6.1", "CC6.2", "CC6.6", "CC6.8", "CC7.1", "CC8.1"}, ids)
}
