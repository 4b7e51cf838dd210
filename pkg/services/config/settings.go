package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/vdanniel/github-security-checker/pkg/models/domain"
	"github.com/vdanniel/github-security-checker/pkg/services/scanner"
)

// Settings is the scan configuration surface accepted from a config file.
type Settings struct {
	SeverityThreshold string `mapstructure:"severity_threshold"`
	IncludeArchived   bool   `mapstructure:"include_archived"`
	IncludeForks      bool   `mapstructure:"include_forks"`
}

// LoadSettings reads settings from path. An empty path yields defaults.
func LoadSettings(path string) (scanner.Options, error) {
	if path == "" {
		return scanner.DefaultOptions(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("severity_threshold", string(domain.SeverityLow))

	if err := v.ReadInConfig(); err != nil {
		return scanner.Options{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return scanner.Options{}, fmt.Errorf("failed to parse scan settings: %w", err)
	}

	threshold, err := domain.ParseSeverity(s.SeverityThreshold)
	if err != nil {
		return scanner.Options{}, fmt.Errorf("invalid severity threshold: %w", err)
	}

	return scanner.Options{
		SeverityThreshold: threshold,
		IncludeArchived:   s.IncludeArchived,
		IncludeForks:      s.IncludeForks,
	}, nil
}
