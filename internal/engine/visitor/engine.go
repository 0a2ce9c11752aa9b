// Package visitor routes the top-level entities of one parse into the
// Library, File and Statement model.
//
// An Engine is built fresh for every parse. It starts in PhasePreprocessing,
// where inclusion directives of the umbrella chain register the headers of
// each tracked framework, and moves to PhaseDeclarations on the first entity
// that produces content. Entities outside the frameworks root, or belonging
// to a framework without a config, are skipped.
package visitor

import (
	"strings"

	"go.trai.ch/hdrgen/internal/core/domain"
	"go.trai.ch/hdrgen/internal/core/ports"
	"go.trai.ch/zerr"
)

// Option configures an Engine.
type Option func(*Engine)

// WithPhaseHook registers a callback invoked once when the engine leaves PhasePreprocessing.
func WithPhaseHook(fn func(Phase)) Option {
	return func(e *Engine) {
		e.onPhase = fn
	}
}

// Engine is the accumulator of a single traversal.
type Engine struct {
	frameworksRoot string
	configs        domain.Configs
	grammar        ports.StatementParser
	onPhase        func(Phase)

	phase     Phase
	libraries domain.Libraries
}

// New creates an engine with an empty library pre-allocated for every config.
func New(frameworksRoot string, configs domain.Configs, grammar ports.StatementParser, opts ...Option) *Engine {
	e := &Engine{
		frameworksRoot: frameworksRoot,
		configs:        configs,
		grammar:        grammar,
		phase:          PhasePreprocessing,
		libraries:      domain.NewLibraries(configs),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Libraries returns the accumulated result.
func (e *Engine) Libraries() domain.Libraries {
	return e.libraries
}

// Visit dispatches one top-level entity. The cursor is not retained.
func (e *Engine) Visit(c ports.Cursor) error {
	ent := c.Entity()

	id, ok, err := Identify(ent.Location.File, e.frameworksRoot)
	if err != nil {
		return zerr.With(err, "entity", ent.Name)
	}
	if !ok {
		return nil
	}

	cfg, ok := e.configs[id.Library]
	if !ok {
		return nil
	}

	switch Decide(Classify(ent.Kind), e.phase) {
	case ActionRegisterFile:
		return e.register(id.Library, ent)
	case ActionAppend:
		return e.append(id, c.Declaration(), cfg)
	default:
		return nil
	}
}

// register handles an inclusion directive seen in a header of library.
// Only inclusions of the library's own headers are validated and registered.
func (e *Engine) register(library string, ent domain.Entity) error {
	parts := strings.Split(ent.Name, "/")
	if parts[0] != library {
		return nil
	}

	if len(parts) != 2 {
		return inclusionError(library, ent, "expected Framework/Header.h")
	}

	header, ok := strings.CutSuffix(parts[1], domain.HeaderSuffix)
	if !ok || header == "" {
		return inclusionError(library, ent, "included header must end in "+domain.HeaderSuffix)
	}

	// The umbrella header names the framework itself and is not a file of its own.
	if header == library {
		return nil
	}

	e.libraries[library].EnsureFile(header)
	return nil
}

func (e *Engine) append(id domain.FileIdentity, decl domain.Declaration, cfg *domain.Config) error {
	e.enter(PhaseDeclarations)

	file, ok := e.libraries[id.Library].Files[id.File]
	if !ok {
		err := zerr.Wrap(domain.ErrFileNotRegistered, "cannot append statements")
		err = zerr.With(err, "library", id.Library)
		err = zerr.With(err, "file", id.File)
		return zerr.With(err, "location", decl.Location.String())
	}

	for _, stmt := range e.grammar.Parse(decl, cfg) {
		file.Add(stmt)
	}
	return nil
}

func (e *Engine) enter(phase Phase) {
	if e.phase == phase {
		return
	}
	e.phase = phase
	if e.onPhase != nil {
		e.onPhase(phase)
	}
}

// Translate walks one translation unit with a fresh engine and returns its result.
func Translate(
	tu ports.TranslationUnit,
	frameworksRoot string,
	configs domain.Configs,
	grammar ports.StatementParser,
	opts ...Option,
) (domain.Libraries, error) {
	e := New(frameworksRoot, configs, grammar, opts...)
	if err := tu.Walk(e.Visit); err != nil {
		return nil, err
	}
	return e.Libraries(), nil
}

func inclusionError(library string, ent domain.Entity, reason string) error {
	err := zerr.Wrap(domain.ErrInvalidInclusion, reason)
	err = zerr.With(err, "library", library)
	err = zerr.With(err, "inclusion", ent.Name)
	return zerr.With(err, "location", ent.Location.String())
}
