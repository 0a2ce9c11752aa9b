// Package format runs the formatting pass over generated sources.
package format

import (
	"bytes"
	"context"
	"errors"
	"os"
	"runtime"

	"go.trai.ch/hdrgen/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
)

var options = &imports.Options{
	FormatOnly: true,
	Comments:   true,
	TabIndent:  true,
	TabWidth:   8,
}

// Formatter implements ports.Formatter.
type Formatter struct {
	limit int
}

// NewFormatter creates a Formatter that processes up to one file per CPU at a time.
func NewFormatter() *Formatter {
	return &Formatter{limit: runtime.NumCPU()}
}

// Format rewrites every Go file below root in canonical form. Files that
// are already formatted are left untouched.
func (f *Formatter) Format(ctx context.Context, root string) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.limit)

	var walkErr error
	for path := range goFiles(root, &walkErr) {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			return formatFile(gctx, path)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if walkErr != nil {
		return formatError("cannot walk generated sources", root, walkErr)
	}
	return ctx.Err()
}

func formatFile(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	//nolint:gosec // Path comes from walking the output root
	src, err := os.ReadFile(path)
	if err != nil {
		return formatError("cannot read generated source", path, err)
	}

	out, err := imports.Process(path, src, options)
	if err != nil {
		return formatError("cannot format generated source", path, err)
	}

	if bytes.Equal(src, out) {
		return nil
	}
	if err := os.WriteFile(path, out, domain.FilePerm); err != nil {
		return formatError("cannot write formatted source", path, err)
	}
	return nil
}

func formatError(msg, path string, cause error) error {
	return zerr.With(zerr.Wrap(errors.Join(domain.ErrFormatFailed, cause), msg), "path", path)
}
