package ports

import "context"

// Formatter runs the whole-tree formatting pass over generated sources.
//
//go:generate mockgen -source=formatter.go -destination=mocks/mock_formatter.go -package=mocks
type Formatter interface {
	Format(ctx context.Context, root string) error
}
