// Package compliance maps scan results onto a fixed catalog of SOC2
// Trust Services Criteria controls.
package compliance

// control is one catalog entry. The catalog is closed and immutable for
// the process lifetime; there is no registration API.
type control struct {
	ID          string
	Name        string
	Description string
}

// controlCatalog is evaluated in this order in every report.
var controlCatalog = []control{
	{
		ID:          "CC6.1",
		Name:        "Logical and Physical Access Controls",
		Description: "The entity implements logical access security software, infrastructure, and architectures over protected information assets.",
	},
	{
		ID:          "CC6.2",
		Name:        "Access Credentials Management",
		Description: "Prior to issuing system credentials, the entity registers and authorizes new internal and external users whose access is administered by the entity.",
	},
	{
		ID:          "CC6.6",
		Name:        "External Threat Protection",
		Description: "The entity implements logical access security measures to protect against threats from sources outside its system boundaries.",
	},
	{
		ID:          "CC6.8",
		Name:        "Unauthorized Software Prevention",
		Description: "The entity implements controls to prevent or detect and act upon the introduction of unauthorized or malicious software.",
	},
	{
		ID:          "CC7.1",
		Name:        "Vulnerability Detection and Monitoring",
		Description: "The entity uses detection and monitoring procedures to identify changes to configurations that introduce vulnerabilities.",
	},
	{
		ID:          "CC8.1",
		Name:        "Change Management",
		Description: "The entity authorizes, designs, develops, tests, approves, and implements changes to infrastructure, data, and software.",
	},
}

// evidenceRules associates the absence of a specific finding in a
// repository with positive evidence for a control. This side channel is
// independent of the pooled findings.
var evidenceRules = []struct {
	findingID string
	controlID string
	statement string
}{
	{"bp-not-enabled", "CC8.1", "branch protection is enabled on the default branch"},
	{"sf-secret-scanning-disabled", "CC6.8", "secret scanning is enabled"},
	{"dep-vulnerability-alerts-disabled", "CC7.1", "dependency vulnerability alerts are enabled"},
	{"ac-writable-deploy-key", "CC6.2", "no writable deploy keys are configured"},
	{"rs-workflow-token-write", "CC6.1", "the default workflow token is read-only"},
}
