package usecase

import (
	"context"

	"github.com/runoshun/glissue/internal/domain"
)

// DefaultProfileName names the profile written when none is given.
const DefaultProfileName = "default"

// InitConfigInput contains the input for the InitConfig use case.
type InitConfigInput struct {
	Profile domain.Profile // Profile to write as the default (URL required)
}

// InitConfigOutput contains the output of the InitConfig use case.
type InitConfigOutput struct {
	Path string // Path to the created config file
}

// InitConfig writes a new configuration file holding one profile.
type InitConfig struct {
	configManager domain.ConfigManager
}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig(configManager domain.ConfigManager) *InitConfig {
	return &InitConfig{
		configManager: configManager,
	}
}

// Execute creates the configuration file.
func (uc *InitConfig) Execute(_ context.Context, in InitConfigInput) (*InitConfigOutput, error) {
	p := in.Profile
	if p.Name == "" {
		p.Name = DefaultProfileName
	}
	if p.URL == "" {
		return nil, domain.ErrEmptyURL
	}

	info := uc.configManager.GetConfigInfo()
	if info.Exists {
		return nil, domain.ErrConfigExists
	}
	if err := uc.configManager.InitConfig(p); err != nil {
		return nil, err
	}
	return &InitConfigOutput{Path: info.Path}, nil
}
