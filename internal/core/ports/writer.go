package ports

import "go.trai.ch/hdrgen/internal/core/domain"

// OutputWriter writes the generated sources of one framework.
//
//go:generate mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks
type OutputWriter interface {
	// Write replaces dir with the sources generated for the named framework.
	Write(dir, name string, lib *domain.Library, cfg *domain.Config) error
}
