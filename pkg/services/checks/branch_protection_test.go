package checks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vdanniel/github-security-checker/pkg/models/domain"
	"github.com/vdanniel/github-security-checker/pkg/services/provider"
)

type mockProtectionReader struct{ mock.Mock }

func (m *mockProtectionReader) GetBranchProtection(ctx context.Context, owner, repo, branch string) (*domain.BranchProtection, error) {
	args := m.Called(ctx, owner, repo, branch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BranchProtection), args.Error(1)
}

func strictProtection() *domain.BranchProtection {
	return &domain.BranchProtection{
		RequiredReviews: &domain.ReviewPolicy{
			ApprovingCount:   2,
			DismissStale:     true,
			RequireCodeOwner: true,
		},
		RequiredChecks: &domain.StatusCheckPolicy{
			Strict:   true,
			Contexts: []string{"ci/build"},
		},
		EnforceAdmins:                 true,
		RequireSignedCommits:          true,
		RequireLinearHistory:          true,
		RequireConversationResolution: true,
	}
}

func TestBranchProtection_NotEnabled_SingleCriticalFinding(t *testing.T) {
	ctx := context.Background()
	p := new(mockProtectionReader)
	p.On("GetBranchProtection", mock.Anything, "acme", "api", "main").
		Return(nil, provider.ErrNotFound)

	findings, err := BranchProtection(ctx, p, "acme", "api", "main")
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "bp-not-enabled", findings[0].ID)
	assert.Equal(t, domain.SeverityCritical, findings[0].Severity)
	p.AssertExpectations(t)
}

func TestBranchProtection_PlanRestricted_InfoFinding(t *testing.T) {
	ctx := context.Background()
	p := new(mockProtectionReader)
	p.On("GetBranchProtection", mock.Anything, "acme", "api", "main").
		Return(nil, provider.ErrForbidden)

	findings, err := BranchProtection(ctx, p, "acme", "api", "main")
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "bp-not-available", findings[0].ID)
	assert.Equal(t, domain.SeverityInfo, findings[0].Severity)
}

func TestBranchProtection_GenuineErrorPropagates(t *testing.T) {
	ctx := context.Background()
	p := new(mockProtectionReader)
	p.On("GetBranchProtection", mock.Anything, "acme", "api", "main").
		Return(nil, errors.New("rate limited"))

	findings, err := BranchProtection(ctx, p, "acme", "api", "main")
	assert.Error(t, err)
	assert.Nil(t, findings)
}

func TestBranchProtection_StrictPolicy_NoFindings(t *testing.T) {
	ctx := context.Background()
	p := new(mockProtectionReader)
	p.On("GetBranchProtection", mock.Anything, "acme", "api", "main").
		Return(strictProtection(), nil)

	findings, err := BranchProtection(ctx, p, "acme", "api", "main")
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestBranchProtection_Predicates(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(bp *domain.BranchProtection)
		expected []string
	}{
		{
			name:     "no reviews required",
			mutate:   func(bp *domain.BranchProtection) { bp.RequiredReviews = nil },
			expected: []string{"bp-no-pr-reviews"},
		},
		{
			name:     "single reviewer",
			mutate:   func(bp *domain.BranchProtection) { bp.RequiredReviews.ApprovingCount = 1 },
			expected: []string{"bp-insufficient-reviewers"},
		},
		{
			name:     "stale reviews kept",
			mutate:   func(bp *domain.BranchProtection) { bp.RequiredReviews.DismissStale = false },
			expected: []string{"bp-stale-reviews-kept"},
		},
		{
			name:     "no code owner reviews",
			mutate:   func(bp *domain.BranchProtection) { bp.RequiredReviews.RequireCodeOwner = false },
			expected: []string{"bp-no-codeowner-reviews"},
		},
		{
			name:     "no status check contexts",
			mutate:   func(bp *domain.BranchProtection) { bp.RequiredChecks.Contexts = nil },
			expected: []string{"bp-no-status-checks"},
		},
		{
			name:     "non strict checks",
			mutate:   func(bp *domain.BranchProtection) { bp.RequiredChecks.Strict = false },
			expected: []string{"bp-non-strict-checks"},
		},
		{
			name:     "admins exempt",
			mutate:   func(bp *domain.BranchProtection) { bp.EnforceAdmins = false },
			expected: []string{"bp-admins-not-enforced"},
		},
		{
			name:     "force pushes allowed",
			mutate:   func(bp *domain.BranchProtection) { bp.AllowForcePushes = true },
			expected: []string{"bp-force-push-allowed"},
		},
		{
			name:     "deletions allowed",
			mutate:   func(bp *domain.BranchProtection) { bp.AllowDeletions = true },
			expected: []string{"bp-deletions-allowed"},
		},
		{
			name:     "unsigned commits",
			mutate:   func(bp *domain.BranchProtection) { bp.RequireSignedCommits = false },
			expected: []string{"bp-unsigned-commits"},
		},
		{
			name:     "non linear history",
			mutate:   func(bp *domain.BranchProtection) { bp.RequireLinearHistory = false },
			expected: []string{"bp-non-linear-history"},
		},
		{
			name:     "unresolved conversations allowed",
			mutate:   func(bp *domain.BranchProtection) { bp.RequireConversationResolution = false },
			expected: []string{"bp-unresolved-conversations"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bp := strictProtection()
			tt.mutate(bp)

			p := new(mockProtectionReader)
			p.On("GetBranchProtection", mock.Anything, "acme", "api", "main").
				Return(bp, nil)

			findings, err := BranchProtection(context.Background(), p, "acme", "api", "main")
			require.NoError(t, err)

			var ids []string
			for _, f := range findings {
				ids = append(ids, f.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestBranchProtection_InsufficientReviewersRecordsCount(t *testing.T) {
	bp := strictProtection()
	bp.RequiredReviews.ApprovingCount = 1

	p := new(mockProtectionReader)
	p.On("GetBranchProtection", mock.Anything, "acme", "api", "main").
		Return(bp, nil)

	findings, err := BranchProtection(context.Background(), p, "acme", "api", "main")
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "1", findings[0].CurrentValue)
	assert.Equal(t, "2", findings[0].ExpectedValue)
}
