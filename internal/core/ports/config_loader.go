package ports

import "go.trai.ch/figc/internal/core/domain"

// ConfigLoader defines the interface for loading the build profile.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the profile from the given path. A missing file at the
	// default location yields the built-in defaults rather than an error.
	Load(path string) (domain.Profile, error)
}
