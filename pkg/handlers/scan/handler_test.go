package scan

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vdanniel/github-security-checker/pkg/models/api"
	"github.com/vdanniel/github-security-checker/pkg/models/domain"
	"github.com/vdanniel/github-security-checker/pkg/services/provider"
)

type mockScanner struct{ mock.Mock }

func (m *mockScanner) ScanMany(ctx context.Context, fullNames []string) []domain.ScanResult {
	args := m.Called(ctx, fullNames)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.ScanResult)
}

func (m *mockScanner) ListRepositories(ctx context.Context, opts provider.ListOptions) ([]domain.Repository, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Repository), args.Error(1)
}

type mockFixer struct{ mock.Mock }

func (m *mockFixer) Fix(ctx context.Context, owner, repo, findingID, branch string) domain.FixResult {
	args := m.Called(ctx, owner, repo, findingID, branch)
	return args.Get(0).(domain.FixResult)
}

type mockResolver struct{ mock.Mock }

func (m *mockResolver) GetRepository(ctx context.Context, owner, repo string) (*domain.Repository, error) {
	args := m.Called(ctx, owner, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Repository), args.Error(1)
}

func newHandler() (*Handler, *mockScanner, *mockFixer, *mockResolver) {
	s := new(mockScanner)
	f := new(mockFixer)
	r := new(mockResolver)
	return NewHandler(s, f, r), s, f, r
}

func postJSON(t *testing.T, handler http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestListRepos(t *testing.T) {
	h, s, _, _ := newHandler()
	s.On("ListRepositories", mock.Anything, provider.ListOptions{Visibility: "private"}).
		Return([]domain.Repository{
			{FullName: "acme/api", Visibility: "private", DefaultBranch: "main", URL: "https://github.com/acme/api"},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/repos?visibility=private", nil)
	rec := httptest.NewRecorder()
	h.ListRepos(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var repos []api.Repo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &repos))
	require.Len(t, repos, 1)
	assert.Equal(t, "acme/api", repos[0].FullName)
	assert.Equal(t, "main", repos[0].DefaultBranch)
}

func TestListRepos_ListingFailureIsBadGateway(t *testing.T) {
	h, s, _, _ := newHandler()
	s.On("ListRepositories", mock.Anything, mock.Anything).
		Return(nil, errors.New("token rejected"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/repos", nil)
	rec := httptest.NewRecorder()
	h.ListRepos(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var apiErr api.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, "token rejected", apiErr.Error)
}

func TestScan(t *testing.T) {
	h, s, _, _ := newHandler()
	s.On("ScanMany", mock.Anything, []string{"acme/api", "acme/web"}).
		Return([]domain.ScanResult{
			{Repository: domain.Repository{FullName: "acme/api"}, Score: 100},
		})

	rec := postJSON(t, h.Scan, api.ScanRequest{Repositories: []string{"acme/api", "acme/web"}})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Requested int               `json:"requested"`
		Scanned   int               `json:"scanned"`
		Results   []json.RawMessage `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Requested)
	assert.Equal(t, 1, resp.Scanned)
	assert.Len(t, resp.Results, 1)
}

func TestScan_EmptyBodyIsBadRequest(t *testing.T) {
	h, s, _, _ := newHandler()

	rec := postJSON(t, h.Scan, api.ScanRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{not json")))
	rec2 := httptest.NewRecorder()
	h.Scan(rec2, req)
	assert.Equal(t, http.StatusBadRequest, rec2.Code)

	s.AssertNotCalled(t, "ScanMany", mock.Anything, mock.Anything)
}

func TestCompliance(t *testing.T) {
	h, s, _, _ := newHandler()
	s.On("ScanMany", mock.Anything, []string{"acme/api"}).
		Return([]domain.ScanResult{{Repository: domain.Repository{FullName: "acme/api"}}})

	rec := postJSON(t, h.Compliance, api.ScanRequest{Repositories: []string{"acme/api"}})

	assert.Equal(t, http.StatusOK, rec.Code)

	var report domain.ComplianceReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, []string{"acme/api"}, report.Repositories)
	assert.Len(t, report.Controls, 6)
}

func TestCompliance_NoScansSucceededIsBadGateway(t *testing.T) {
	h, s, _, _ := newHandler()
	s.On("ScanMany", mock.Anything, []string{"acme/gone"}).Return([]domain.ScanResult{})

	rec := postJSON(t, h.Compliance, api.ScanRequest{Repositories: []string{"acme/gone"}})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestFix_WithExplicitBranch(t *testing.T) {
	h, _, f, r := newHandler()
	f.On("Fix", mock.Anything, "acme", "api", "bp-not-enabled", "develop").
		Return(domain.FixResult{Success: true, FindingID: "bp-not-enabled", Message: "baseline branch protection applied"})

	rec := postJSON(t, h.Fix, api.FixRequest{
		Repository: "acme/api",
		FindingID:  "bp-not-enabled",
		Branch:     "develop",
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var result domain.FixResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Success)
	r.AssertNotCalled(t, "GetRepository", mock.Anything, mock.Anything, mock.Anything)
}

func TestFix_DefaultsBranchFromRepository(t *testing.T) {
	h, _, f, r := newHandler()
	r.On("GetRepository", mock.Anything, "acme", "api").
		Return(&domain.Repository{FullName: "acme/api", DefaultBranch: "main"}, nil)
	f.On("Fix", mock.Anything, "acme", "api", "bp-not-enabled", "main").
		Return(domain.FixResult{Success: true, FindingID: "bp-not-enabled"})

	rec := postJSON(t, h.Fix, api.FixRequest{Repository: "acme/api", FindingID: "bp-not-enabled"})

	assert.Equal(t, http.StatusOK, rec.Code)
	f.AssertExpectations(t)
	r.AssertExpectations(t)
}

func TestFix_ResolutionFailureIsBadGateway(t *testing.T) {
	h, _, f, r := newHandler()
	r.On("GetRepository", mock.Anything, "acme", "gone").
		Return(nil, provider.ErrNotFound)

	rec := postJSON(t, h.Fix, api.FixRequest{Repository: "acme/gone", FindingID: "bp-not-enabled"})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	f.AssertNotCalled(t, "Fix", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFix_RequestValidation(t *testing.T) {
	cases := []struct {
		name string
		body api.FixRequest
	}{
		{"missing repository", api.FixRequest{FindingID: "bp-not-enabled"}},
		{"missing finding id", api.FixRequest{Repository: "acme/api"}},
		{"malformed full name", api.FixRequest{Repository: "just-a-name", FindingID: "bp-not-enabled"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, _, f, _ := newHandler()
			rec := postJSON(t, h.Fix, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			f.AssertNotCalled(t, "Fix", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestFix_UnsupportedFindingStillReturnsOK(t *testing.T) {
	h, _, f, _ := newHandler()
	f.On("Fix", mock.Anything, "acme", "api", "rs-no-readme", "develop").
		Return(domain.FixResult{Success: false, FindingID: "rs-no-readme", Error: domain.ErrUnsupportedFix})

	rec := postJSON(t, h.Fix, api.FixRequest{Repository: "acme/api", FindingID: "rs-no-readme", Branch: "develop"})

	assert.Equal(t, http.StatusOK, rec.Code)

	var result domain.FixResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.Equal(t, domain.ErrUnsupportedFix, result.Error)
}
