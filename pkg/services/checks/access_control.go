package checks

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vdanniel/github-security-checker/pkg/models/domain"
	"github.com/vdanniel/github-security-checker/pkg/services/provider"
)

const (
	maxAdmins       = 3
	deployKeyMaxAge = 365 * 24 * time.Hour
)

type accessSnapshot struct {
	collaborators []domain.Collaborator
	deployKeys    []domain.DeployKey
	webhooks      []domain.Webhook
	now           time.Time
}

var accessPredicates = []struct {
	finding domain.Finding
	fires   func(s accessSnapshot) bool
}{
	{findingACTooManyAdmins, func(s accessSnapshot) bool {
		admins := 0
		for _, c := range s.collaborators {
			if c.Permission == "admin" {
				admins++
			}
		}
		return admins > maxAdmins
	}},
	{findingACOutsideCollaboratorAdmin, func(s accessSnapshot) bool {
		for _, c := range s.collaborators {
			if c.Outside && c.Permission == "admin" {
				return true
			}
		}
		return false
	}},
	{findingACOutsideCollaboratorPush, func(s accessSnapshot) bool {
		for _, c := range s.collaborators {
			if c.Outside && (c.Permission == "push" || c.Permission == "maintain") {
				return true
			}
		}
		return false
	}},
	{findingACWritableDeployKey, func(s accessSnapshot) bool {
		for _, k := range s.deployKeys {
			if !k.ReadOnly {
				return true
			}
		}
		return false
	}},
	{findingACStaleDeployKey, func(s accessSnapshot) bool {
		for _, k := range s.deployKeys {
			if s.now.Sub(k.CreatedAt) > deployKeyMaxAge {
				return true
			}
		}
		return false
	}},
	{findingACWebhookInsecureTransport, func(s accessSnapshot) bool {
		for _, h := range s.webhooks {
			if h.Active && !strings.HasPrefix(h.URL, "https://") {
				return true
			}
		}
		return false
	}},
	{findingACWebhookNoSecret, func(s accessSnapshot) bool {
		for _, h := range s.webhooks {
			if h.Active && !h.HasSecret {
				return true
			}
		}
		return false
	}},
	{findingACWebhookSSLDisabled, func(s accessSnapshot) bool {
		for _, h := range s.webhooks {
			if h.Active && h.InsecureSSL {
				return true
			}
		}
		return false
	}},
}

// AccessControl inspects who and what can reach the repository:
// collaborators, deploy keys, and webhooks. Empty lists are normal data,
// not failures.
func AccessControl(ctx context.Context, p provider.AccessControlReader, owner, repo string) ([]domain.Finding, error) {
	var snap accessSnapshot
	var err error

	snap.collaborators, err = p.ListCollaborators(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("list collaborators for %s/%s: %w", owner, repo, err)
	}
	snap.deployKeys, err = p.ListDeployKeys(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("list deploy keys for %s/%s: %w", owner, repo, err)
	}
	snap.webhooks, err = p.ListWebhooks(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("list webhooks for %s/%s: %w", owner, repo, err)
	}
	snap.now = time.Now()

	var findings []domain.Finding
	for _, pred := range accessPredicates {
		if !pred.fires(snap) {
			continue
		}
		f := pred.finding
		if f.ID == findingACTooManyAdmins.ID {
			admins := 0
			for _, c := range snap.collaborators {
				if c.Permission == "admin" {
					admins++
				}
			}
			f.CurrentValue = strconv.Itoa(admins)
		}
		findings = append(findings, f)
	}
	return findings, nil
}
