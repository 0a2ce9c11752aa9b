// Package app implements the translation pipeline.
package app

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/hdrgen/internal/core/domain"
	"go.trai.ch/hdrgen/internal/core/ports"
	"go.trai.ch/hdrgen/internal/engine/validator"
	"go.trai.ch/hdrgen/internal/engine/visitor"
	"go.trai.ch/zerr"
)

// App runs the translation pipeline.
type App struct {
	locator   ports.SdkLocator
	loader    ports.ConfigLoader
	parser    ports.Parser
	grammar   ports.StatementParser
	writer    ports.OutputWriter
	formatter ports.Formatter
	logger    ports.Logger
	tracer    ports.Tracer

	shutdown func(context.Context) error
}

// New creates a new App instance.
func New(
	locator ports.SdkLocator,
	loader ports.ConfigLoader,
	parser ports.Parser,
	grammar ports.StatementParser,
	writer ports.OutputWriter,
	formatter ports.Formatter,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		locator:   locator,
		loader:    loader,
		parser:    parser,
		grammar:   grammar,
		writer:    writer,
		formatter: formatter,
		logger:    log,
		tracer:    tracer,
	}
}

// WithShutdown registers a function Close calls to flush telemetry.
func (a *App) WithShutdown(fn func(context.Context) error) *App {
	a.shutdown = fn
	return a
}

// TranslateOptions configures one run of the pipeline.
type TranslateOptions struct {
	// DeveloperDir is the development-tools root holding Platforms/.
	DeveloperDir string
	// SrcDir holds one directory per framework and receives generated/.
	SrcDir string
	// EntryHeader is the umbrella header; empty means <SrcDir>/framework-includes.h.
	EntryHeader string
	// Canonical is the platform whose result is written.
	Canonical domain.Platform
	// Targets is the target table; nil means DefaultTargets.
	Targets Targets
}

func (o TranslateOptions) entryHeader() string {
	if o.EntryHeader != "" {
		return o.EntryHeader
	}
	return filepath.Join(o.SrcDir, domain.DefaultEntryHeader)
}

func (o TranslateOptions) targets() Targets {
	if o.Targets != nil {
		return o.Targets
	}
	return DefaultTargets()
}

// Translate parses every configured target of every SDK, checks that the
// triples of a platform agree, then writes and formats the canonical result.
//
//nolint:cyclop // orchestration function
func (a *App) Translate(ctx context.Context, opts TranslateOptions) error {
	// 1. Configs
	var configs domain.Configs
	err := a.stage(ctx, "loading configs", func(_ context.Context, span ports.Span) error {
		var err error
		configs, err = a.loader.Load(opts.SrcDir)
		if err != nil {
			return zerr.Wrap(err, "failed to load configuration")
		}
		span.SetAttribute("frameworks", len(configs))
		return nil
	})
	if err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("loaded %d framework configs", len(configs)))

	// 2. SDKs
	sdks, err := a.discover(ctx, opts.DeveloperDir)
	if err != nil {
		return err
	}

	// 3. Parse and cross-check
	targets := opts.targets()
	var final domain.Libraries
	for _, sdk := range sdks {
		triples := targets.For(sdk.Platform)
		if len(triples) == 0 {
			a.logger.Info(fmt.Sprintf("skipping %s: no target triples", sdk.Platform))
			continue
		}

		result, err := a.translatePlatform(ctx, sdk, triples, opts.entryHeader(), configs)
		if err != nil {
			return err
		}
		if sdk.Platform == opts.Canonical {
			final = result
		}
	}

	if final == nil {
		return zerr.With(zerr.Wrap(domain.ErrNoCanonicalResult, "nothing to write"), "platform", opts.Canonical.String())
	}

	// 4. Output
	out := domain.GeneratedDir(opts.SrcDir)
	for _, name := range final.Names() {
		err := a.stage(ctx, "writing framework "+name, func(_ context.Context, span ports.Span) error {
			span.SetAttribute("files", len(final[name].Files))
			return a.writer.Write(filepath.Join(out, name), name, final[name], configs[name])
		})
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to write framework"), "framework", name)
		}
	}

	// 5. Formatting
	return a.stage(ctx, "formatting", func(ctx context.Context, _ ports.Span) error {
		return a.formatter.Format(ctx, out)
	})
}

func (a *App) discover(ctx context.Context, developerDir string) ([]domain.SdkPath, error) {
	var sdks []domain.SdkPath
	err := a.stage(ctx, "discovering sdks", func(_ context.Context, span ports.Span) error {
		var err error
		sdks, err = a.locator.Discover(developerDir)
		if err != nil {
			return err
		}
		span.SetAttribute("platforms", len(sdks))
		return nil
	})
	return sdks, err
}

// translatePlatform parses every triple of one SDK and returns the first
// result once all later ones matched it.
func (a *App) translatePlatform(
	ctx context.Context,
	sdk domain.SdkPath,
	triples []domain.TargetTriple,
	entryHeader string,
	configs domain.Configs,
) (domain.Libraries, error) {
	var result domain.Libraries
	err := a.stage(ctx, "parsing sdk "+sdk.Platform.String(), func(ctx context.Context, span ports.Span) error {
		span.SetAttribute("sdk", sdk.Path)
		root := domain.FrameworksDir(sdk.Path)

		for _, triple := range triples {
			if err := ctx.Err(); err != nil {
				return err
			}

			req := domain.ParseRequest{EntryHeader: entryHeader, Target: triple, SdkRoot: sdk.Path}
			libs, err := a.parse(ctx, req, root, configs)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to translate sdk"), "platform", sdk.Platform.String())
			}

			if result == nil {
				result = libs
				continue
			}
			if err := validator.Compare(result, libs); err != nil {
				err = zerr.With(err, "platform", sdk.Platform.String())
				err = zerr.With(err, "reference", string(triples[0]))
				return zerr.With(err, "target", string(triple))
			}
		}
		return nil
	})
	return result, err
}

// parse runs one independent parse and traversal. The unit is disposed before returning.
func (a *App) parse(ctx context.Context, req domain.ParseRequest, frameworksRoot string, configs domain.Configs) (domain.Libraries, error) {
	var libs domain.Libraries
	err := a.stage(ctx, "parsing target "+string(req.Target), func(ctx context.Context, span ports.Span) error {
		tu, err := a.parser.Parse(ctx, req)
		if err != nil {
			return err
		}
		defer tu.Dispose()

		if n := tu.Diagnostics(); n > 0 {
			span.SetAttribute("diagnostics", n)
			a.logger.Warn(fmt.Sprintf("%d diagnostics while parsing for %s", n, req.Target))
		}

		libs, err = visitor.Translate(tu, frameworksRoot, configs, a.grammar,
			visitor.WithPhaseHook(func(p visitor.Phase) {
				span.SetAttribute("phase", p.String())
			}),
		)
		if err != nil {
			return zerr.With(err, "target", string(req.Target))
		}
		return nil
	})
	return libs, err
}

// SdkTargets pairs a discovered SDK with the triples the pipeline would parse for it.
type SdkTargets struct {
	Sdk     domain.SdkPath
	Triples []domain.TargetTriple
}

// ListSdks discovers the SDKs below developerDir and resolves their triples.
func (a *App) ListSdks(ctx context.Context, developerDir string, targets Targets) ([]SdkTargets, error) {
	if targets == nil {
		targets = DefaultTargets()
	}

	sdks, err := a.discover(ctx, developerDir)
	if err != nil {
		return nil, err
	}

	out := make([]SdkTargets, 0, len(sdks))
	for _, sdk := range sdks {
		out = append(out, SdkTargets{Sdk: sdk, Triples: targets.For(sdk.Platform)})
	}
	return out, nil
}

// Close releases the parser and flushes telemetry.
func (a *App) Close() error {
	err := a.parser.Close()
	if a.shutdown != nil {
		if serr := a.shutdown(context.Background()); err == nil {
			err = serr
		}
	}
	return err
}

// stage runs fn inside a span named after a pipeline stage and records its error.
func (a *App) stage(ctx context.Context, name string, fn func(context.Context, ports.Span) error) error {
	ctx, span := a.tracer.Start(ctx, name)
	defer span.End()

	if err := fn(ctx, span); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
