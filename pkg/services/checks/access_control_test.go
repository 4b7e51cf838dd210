package checks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vdanniel/github-security-checker/pkg/models/domain"
)

type mockAccessReader struct{ mock.Mock }

func (m *mockAccessReader) ListCollaborators(ctx context.Context, owner, repo string) ([]domain.Collaborator, error) {
	args := m.Called(ctx, owner, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Collaborator), args.Error(1)
}

func (m *mockAccessReader) ListDeployKeys(ctx context.Context, owner, repo string) ([]domain.DeployKey, error) {
	args := m.Called(ctx, owner, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DeployKey), args.Error(1)
}

func (m *mockAccessReader) ListWebhooks(ctx context.Context, owner, repo string) ([]domain.Webhook, error) {
	args := m.Called(ctx, owner, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Webhook), args.Error(1)
}

func newAccessReader(collaborators []domain.Collaborator, keys []domain.DeployKey, hooks []domain.Webhook) *mockAccessReader {
	p := new(mockAccessReader)
	p.On("ListCollaborators", mock.Anything, "acme", "api").Return(collaborators, nil)
	p.On("ListDeployKeys", mock.Anything, "acme", "api").Return(keys, nil)
	p.On("ListWebhooks", mock.Anything, "acme", "api").Return(hooks, nil)
	return p
}

func TestAccessControl_EmptyListsProduceNoFindings(t *testing.T) {
	p := newAccessReader([]domain.Collaborator{}, []domain.DeployKey{}, []domain.Webhook{})

	findings, err := AccessControl(context.Background(), p, "acme", "api")
	require.NoError(t, err)
	assert.Empty(t, findings)
	p.AssertExpectations(t)
}

func TestAccessControl_Predicates(t *testing.T) {
	recent := time.Now().Add(-30 * 24 * time.Hour)
	stale := time.Now().Add(-2 * 365 * 24 * time.Hour)

	tests := []struct {
		name          string
		collaborators []domain.Collaborator
		keys          []domain.DeployKey
		hooks         []domain.Webhook
		expected      []string
	}{
		{
			name: "four admins",
			collaborators: []domain.Collaborator{
				{Login: "a", Permission: "admin"},
				{Login: "b", Permission: "admin"},
				{Login: "c", Permission: "admin"},
				{Login: "d", Permission: "admin"},
			},
			expected: []string{"ac-too-many-admins"},
		},
		{
			name: "outside admin",
			collaborators: []domain.Collaborator{
				{Login: "ext", Permission: "admin", Outside: true},
			},
			expected: []string{"ac-outside-collaborator-admin"},
		},
		{
			name: "outside writer",
			collaborators: []domain.Collaborator{
				{Login: "ext", Permission: "push", Outside: true},
			},
			expected: []string{"ac-outside-collaborator-push"},
		},
		{
			name:     "writable deploy key",
			keys:     []domain.DeployKey{{ID: 1, ReadOnly: false, CreatedAt: recent}},
			expected: []string{"ac-writable-deploy-key"},
		},
		{
			name:     "stale deploy key",
			keys:     []domain.DeployKey{{ID: 1, ReadOnly: true, CreatedAt: stale}},
			expected: []string{"ac-stale-deploy-key"},
		},
		{
			name:     "http webhook without secret",
			hooks:    []domain.Webhook{{ID: 1, URL: "http://ci.internal/hook", Active: true, HasSecret: false}},
			expected: []string{"ac-webhook-insecure-transport", "ac-webhook-no-secret"},
		},
		{
			name:     "webhook skipping ssl verification",
			hooks:    []domain.Webhook{{ID: 1, URL: "https://ci.internal/hook", Active: true, HasSecret: true, InsecureSSL: true}},
			expected: []string{"ac-webhook-ssl-verification-disabled"},
		},
		{
			name:  "inactive webhook is ignored",
			hooks: []domain.Webhook{{ID: 1, URL: "http://ci.internal/hook", Active: false}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newAccessReader(tt.collaborators, tt.keys, tt.hooks)

			findings, err := AccessControl(context.Background(), p, "acme", "api")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, findingIDs(findings))
		})
	}
}

func TestAccessControl_AdminCountRecorded(t *testing.T) {
	p := newAccessReader([]domain.Collaborator{
		{Login: "a", Permission: "admin"},
		{Login: "b", Permission: "admin"},
		{Login: "c", Permission: "admin"},
		{Login: "d", Permission: "admin"},
		{Login: "e", Permission: "admin"},
	}, nil, nil)

	findings, err := AccessControl(context.Background(), p, "acme", "api")
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "5", findings[0].CurrentValue)
}

func TestAccessControl_ListErrorPropagates(t *testing.T) {
	p := new(mockAccessReader)
	p.On("ListCollaborators", mock.Anything, "acme", "api").Return(nil, errors.New("forbidden"))

	_, err := AccessControl(context.Background(), p, "acme", "api")
	assert.Error(t, err)
}
