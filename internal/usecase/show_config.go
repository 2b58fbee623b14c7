package usecase

import (
	"context"

	"github.com/runoshun/glissue/internal/domain"
)

// ShowConfigInput contains the input for the ShowConfig use case.
type ShowConfigInput struct {
	Profile string // Profile to resolve (optional, empty = all profiles)
}

// ShowConfigOutput contains the output of the ShowConfig use case.
// Private tokens in Config and Profile are masked.
type ShowConfigOutput struct {
	Config  *domain.Config  // Effective config (nil when no file exists)
	Profile *domain.Profile // Resolved profile (set when Input.Profile is given)
	Info    domain.ConfigInfo
}

// ShowConfig displays configuration file information.
type ShowConfig struct {
	configManager domain.ConfigManager
	configLoader  domain.ConfigLoader
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(configManager domain.ConfigManager, configLoader domain.ConfigLoader) *ShowConfig {
	return &ShowConfig{
		configManager: configManager,
		configLoader:  configLoader,
	}
}

// Execute retrieves configuration file information.
func (uc *ShowConfig) Execute(_ context.Context, in ShowConfigInput) (*ShowConfigOutput, error) {
	out := &ShowConfigOutput{Info: uc.configManager.GetConfigInfo()}
	if !out.Info.Exists {
		if in.Profile != "" {
			return nil, domain.ErrConfigNotFound
		}
		return out, nil
	}

	cfg, err := uc.configLoader.Load()
	if err != nil {
		return nil, err
	}
	out.Config = cfg.Masked()

	if in.Profile != "" {
		p, err := out.Config.ResolveProfile(in.Profile)
		if err != nil {
			return nil, err
		}
		out.Profile = &p
	}
	return out, nil
}
