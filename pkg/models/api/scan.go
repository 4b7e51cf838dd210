package api

// Request and response bodies for the web API. Domain types carry their
// own JSON tags; these wrappers only add the request shapes and envelope
// fields the HTTP surface needs.

type Repo struct {
	FullName      string `json:"full_name"`
	Visibility    string `json:"visibility"`
	DefaultBranch string `json:"default_branch"`
	URL           string `json:"url"`
}

type ScanRequest struct {
	Repositories []string `json:"repositories"`
}

type ScanResponse struct {
	Requested int `json:"requested"`
	Scanned   int `json:"scanned"`
	Results   any `json:"results"`
}

type FixRequest struct {
	Repository string `json:"repository"`
	FindingID  string `json:"finding_id"`
	Branch     string `json:"branch,omitempty"`
}

type Error struct {
	Error string `json:"error"`
}
