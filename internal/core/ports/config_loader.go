package ports

import "go.trai.ch/hdrgen/internal/core/domain"

// ConfigLoader defines the interface for loading per-framework translation configs.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads one config per framework directory below srcDir.
	// Framework directories without a config are left out of the result.
	Load(srcDir string) (domain.Configs, error)
}
