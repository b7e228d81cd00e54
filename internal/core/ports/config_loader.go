package ports

import "go.trai.ch/ucb/internal/core/domain"

// ConfigLoader defines the interface for loading workspace settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings file of the workspace at root.
	// A missing file yields domain.DefaultSettings.
	Load(root string) (domain.Settings, error)
}
