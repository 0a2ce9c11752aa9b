// Package libclang drives libclang through go-clang to parse Objective-C headers.
package libclang

import (
	"context"

	"github.com/go-clang/clang-v13/clang"
	"go.trai.ch/hdrgen/internal/core/domain"
	"go.trai.ch/hdrgen/internal/core/ports"
	"go.trai.ch/zerr"
)

// parseFlags keeps preprocessing entities and conditional blocks, skips
// bodies and does not stop at individual diagnostics.
const parseFlags = clang.TranslationUnit_DetailedPreprocessingRecord |
	clang.TranslationUnit_Incomplete |
	clang.TranslationUnit_SkipFunctionBodies |
	clang.TranslationUnit_KeepGoing |
	clang.TranslationUnit_IncludeAttributedTypes |
	clang.TranslationUnit_VisitImplicitAttributes |
	clang.TranslationUnit_RetainExcludedConditionalBlocks

// Session implements ports.Parser. Its index is created once and only read
// by individual parses, which share nothing else.
type Session struct {
	index clang.Index
}

// NewSession creates a session with a fresh index.
func NewSession() *Session {
	return &Session{index: clang.NewIndex(1, 0)}
}

// Args returns the compiler arguments of one parse.
func Args(target domain.TargetTriple, sdkRoot string) []string {
	return []string{
		"-x", "objective-c",
		"--target=" + string(target),
		"-Wall",
		"-Wextra",
		"-fobjc-arc",
		"-fobjc-arc-exceptions",
		"-fobjc-abi-version=2",
		"-fapinotes",
		"-isysroot", sdkRoot,
	}
}

// Parse parses the entry header for one target. A running parse cannot be cancelled.
func (s *Session) Parse(ctx context.Context, req domain.ParseRequest) (ports.TranslationUnit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tu := s.index.ParseTranslationUnit(req.EntryHeader, Args(req.Target, req.SdkRoot), nil, uint32(parseFlags))
	if tu == (clang.TranslationUnit{}) {
		err := zerr.Wrap(domain.ErrParseFailed, "libclang returned no translation unit")
		err = zerr.With(err, "header", req.EntryHeader)
		err = zerr.With(err, "target", string(req.Target))
		return nil, zerr.With(err, "sdk", req.SdkRoot)
	}

	return &unit{tu: tu}, nil
}

// Close disposes the index.
func (s *Session) Close() error {
	s.index.Dispose()
	return nil
}

// unit implements ports.TranslationUnit.
type unit struct {
	tu clang.TranslationUnit
}

// Walk visits the top-level cursors in source order.
func (u *unit) Walk(fn func(ports.Cursor) error) error {
	var walkErr error
	u.tu.TranslationUnitCursor().Visit(func(c, _ clang.Cursor) clang.ChildVisitResult {
		if err := fn(cursor{c: c}); err != nil {
			walkErr = err
			return clang.ChildVisit_Break
		}
		return clang.ChildVisit_Continue
	})
	return walkErr
}

// Diagnostics returns the number of diagnostics libclang reported.
func (u *unit) Diagnostics() int {
	return int(u.tu.NumDiagnostics())
}

// Dispose releases the translation unit.
func (u *unit) Dispose() {
	u.tu.Dispose()
}
