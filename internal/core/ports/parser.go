// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/hdrgen/internal/core/domain"
)

//go:generate mockgen -source=parser.go -destination=mocks/mock_parser.go -package=mocks

// Parser produces translation units from an entry header.
// Implementations may hold a reusable index but no per-parse state.
type Parser interface {
	// Parse runs one independent parse for the given target and SDK.
	Parse(ctx context.Context, req domain.ParseRequest) (TranslationUnit, error)

	// Close releases the reusable parsing context.
	Close() error
}

// TranslationUnit is the traversable result of one parse.
type TranslationUnit interface {
	// Walk calls fn for every top-level entity in source order.
	// It stops at the first error returned by fn and returns it.
	Walk(fn func(Cursor) error) error

	// Diagnostics returns the number of diagnostics the parser tolerated.
	Diagnostics() int

	// Dispose releases the unit. It must not be used afterwards.
	Dispose()
}

// Cursor is a handle to one entity that is only valid during a Walk callback.
type Cursor interface {
	// Entity returns a copy of the kind, name and location of the entity.
	Entity() domain.Entity

	// Declaration returns a deep copy of the entity and its children.
	Declaration() domain.Declaration
}
