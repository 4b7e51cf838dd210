package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/vdanniel/github-security-checker/pkg/models/domain"
)

type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

func ParseFormat(raw string) (Format, error) {
	switch Format(raw) {
	case FormatTable, FormatJSON, FormatMarkdown:
		return Format(raw), nil
	default:
		return "", fmt.Errorf("unknown format %q, want table, json or markdown", raw)
	}
}

// Reporter renders scan results and compliance reports. Rendering is a
// pure transform of the engine output.
type Reporter struct {
	writer io.Writer
	format Format
}

func NewReporter(writer io.Writer, format Format) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	if format == "" {
		format = FormatTable
	}
	return &Reporter{writer: writer, format: format}
}

func (r *Reporter) HandleScan(results []domain.ScanResult) error {
	switch r.format {
	case FormatJSON:
		return r.encodeJSON(results)
	case FormatMarkdown:
		return r.render(scanMarkdownTmpl, results)
	default:
		return r.render(scanTableTmpl, results)
	}
}

func (r *Reporter) HandleCompliance(report domain.ComplianceReport) error {
	switch r.format {
	case FormatJSON:
		return r.encodeJSON(report)
	case FormatMarkdown:
		return r.render(complianceMarkdownTmpl, report)
	default:
		return r.render(complianceTableTmpl, report)
	}
}

func (r *Reporter) HandleFix(result domain.FixResult) error {
	if r.format == FormatJSON {
		return r.encodeJSON(result)
	}
	if result.Success {
		_, err := fmt.Fprintf(r.writer, "fixed %s: %s\n", result.FindingID, result.Message)
		return err
	}
	_, err := fmt.Fprintf(r.writer, "fix %s failed: %s\n", result.FindingID, result.Error)
	return err
}

func (r *Reporter) encodeJSON(v any) error {
	enc := json.NewEncoder(r.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r *Reporter) render(text string, data any) error {
	funcMap := template.FuncMap{
		"upper": strings.ToUpper,
		"rule":  func() string { return strings.Repeat("-", 72) },
	}

	t, err := template.New("report").Funcs(funcMap).Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(r.writer, data)
}

const scanTableTmpl = `{{range .}}
{{.Repository.FullName}} (default branch: {{.Repository.DefaultBranch}})
Scanned: {{.ScannedAt.Format "2006-01-02 15:04:05"}}  Score: {{.Score}}/100
Findings: {{.Summary.Critical}} critical, {{.Summary.High}} high, {{.Summary.Medium}} medium, {{.Summary.Low}} low, {{.Summary.Info}} info
{{rule}}
{{range .Findings}}[{{upper (printf "%s" .Severity)}}] {{.ID}}: {{.Title}}
  {{.Description}}
  Fix: {{.Recommendation}}
{{end}}{{rule}}
{{end}}`

const scanMarkdownTmpl = `{{range .}}# Security scan: {{.Repository.FullName}}

- Scanned: {{.ScannedAt.Format "2006-01-02 15:04:05"}}
- Score: **{{.Score}}/100**
- Findings: {{.Summary.Critical}} critical / {{.Summary.High}} high / {{.Summary.Medium}} medium / {{.Summary.Low}} low / {{.Summary.Info}} info

| Severity | ID | Finding | Recommendation |
|----------|----|---------|----------------|
{{range .Findings}}| {{.Severity}} | {{.ID}} | {{.Title}} | {{.Recommendation}} |
{{end}}
{{end}}`

const complianceTableTmpl = `Compliance report ({{.GeneratedAt.Format "2006-01-02 15:04:05"}})
Repositories: {{range $i, $r := .Repositories}}{{if $i}}, {{end}}{{$r}}{{end}}
Overall compliance: {{.OverallCompliance}}%
{{rule}}
{{range .Controls}}{{.ID}} {{.Name}}: {{upper (printf "%s" .Status)}}
{{range .Findings}}  - {{.Description}}
{{end}}{{range .Evidence}}  + {{.}}
{{end}}{{end}}{{rule}}
`

const complianceMarkdownTmpl = `# Compliance report

Generated: {{.GeneratedAt.Format "2006-01-02 15:04:05"}}
Overall compliance: **{{.OverallCompliance}}%**

| Control | Name | Status | Findings |
|---------|------|--------|----------|
{{range .Controls}}| {{.ID}} | {{.Name}} | {{.Status}} | {{len .Findings}} |
{{end}}`
