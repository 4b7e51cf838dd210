// Package scan exposes the engine operations over HTTP.
package scan

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/vdanniel/github-security-checker/pkg/models/api"
	"github.com/vdanniel/github-security-checker/pkg/models/domain"
	"github.com/vdanniel/github-security-checker/pkg/services/compliance"
	"github.com/vdanniel/github-security-checker/pkg/services/provider"
	"github.com/vdanniel/github-security-checker/pkg/services/scanner"
)

// Scanner is the engine surface the handlers consume.
type Scanner interface {
	ScanMany(ctx context.Context, fullNames []string) []domain.ScanResult
	ListRepositories(ctx context.Context, opts provider.ListOptions) ([]domain.Repository, error)
}

// Fixer dispatches one remediation.
type Fixer interface {
	Fix(ctx context.Context, owner, repo, findingID, branch string) domain.FixResult
}

// RepoResolver resolves a repository identity, used to default the branch
// for branch-level fixes.
type RepoResolver interface {
	GetRepository(ctx context.Context, owner, repo string) (*domain.Repository, error)
}

type Handler struct {
	scanner  Scanner
	fixer    Fixer
	resolver RepoResolver
}

func NewHandler(s Scanner, f Fixer, r RepoResolver) *Handler {
	return &Handler{scanner: s, fixer: f, resolver: r}
}

func (h *Handler) ListRepos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	visibility := r.URL.Query().Get("visibility")
	repos, err := h.scanner.ListRepositories(ctx, provider.ListOptions{Visibility: visibility})
	if err != nil {
		logger.Error().Err(err).Msg("failed to list repositories")
		writeJSON(w, http.StatusBadGateway, api.Error{Error: err.Error()})
		return
	}

	response := make([]api.Repo, 0, len(repos))
	for _, repo := range repos {
		response = append(response, api.Repo{
			FullName:      repo.FullName,
			Visibility:    repo.Visibility,
			DefaultBranch: repo.DefaultBranch,
			URL:           repo.URL,
		})
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) Scan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Repositories) == 0 {
		writeJSON(w, http.StatusBadRequest, api.Error{Error: "body must carry a non-empty repositories list"})
		return
	}

	results := h.scanner.ScanMany(ctx, req.Repositories)
	writeJSON(w, http.StatusOK, api.ScanResponse{
		Requested: len(req.Repositories),
		Scanned:   len(results),
		Results:   results,
	})
}

func (h *Handler) Compliance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Repositories) == 0 {
		writeJSON(w, http.StatusBadRequest, api.Error{Error: "body must carry a non-empty repositories list"})
		return
	}

	results := h.scanner.ScanMany(ctx, req.Repositories)
	if len(results) == 0 {
		writeJSON(w, http.StatusBadGateway, api.Error{Error: "no repositories could be scanned"})
		return
	}
	writeJSON(w, http.StatusOK, compliance.MapCompliance(results))
}

func (h *Handler) Fix(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.FixRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Repository == "" || req.FindingID == "" {
		writeJSON(w, http.StatusBadRequest, api.Error{Error: "body must carry repository and finding_id"})
		return
	}

	owner, repo, err := scanner.SplitFullName(req.Repository)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, api.Error{Error: err.Error()})
		return
	}

	branch := req.Branch
	if branch == "" {
		identity, err := h.resolver.GetRepository(ctx, owner, repo)
		if err != nil {
			logger.Error().Err(err).Str("repo", req.Repository).Msg("failed to resolve repository")
			writeJSON(w, http.StatusBadGateway, api.Error{Error: err.Error()})
			return
		}
		branch = identity.DefaultBranch
	}

	result := h.fixer.Fix(ctx, owner, repo, req.FindingID, branch)
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
