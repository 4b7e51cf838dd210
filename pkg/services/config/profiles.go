// Package config loads token profiles and scan settings.
package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"
)

// Profile is one named credential entry. BaseURL is empty for github.com.
type Profile struct {
	Name    string
	Token   string
	BaseURL string
}

// Registry resolves token profiles from an ini file, one section per
// profile.
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (*Profile, error)
}

type fileRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &fileRegistry{cfg: cfg}, nil
}

func (fr *fileRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range fr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (fr *fileRegistry) GetProfile(_ context.Context, name string) (*Profile, error) {
	section := fr.cfg.Section(name)
	if section == nil || len(section.Keys()) == 0 {
		return nil, fmt.Errorf("profile %s not found", name)
	}

	token := section.Key("token").String()
	if token == "" {
		return nil, fmt.Errorf("profile %s has no token", name)
	}

	return &Profile{
		Name:    name,
		Token:   token,
		BaseURL: section.Key("base_url").String(),
	}, nil
}
